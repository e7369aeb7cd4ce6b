// Package presenter turns entities into JSON records that carry both stored
// and derived fields, and decodes those records back into entities.
package presenter

import (
	"fmt"
	"time"

	"eduhack/internal/ports/output"
	"eduhack/pkg/tz"
)

// View is the rendering context of a record.
type View struct {
	Now    time.Time
	Locale string
	T      output.T // may be nil; keys are rendered as is
}

func (v View) t(key string, data map[string]any) string {
	if v.T == nil {
		return key
	}
	return v.T.T(v.Locale, key, data)
}

func parseTime(field, raw string) (time.Time, error) {
	t, err := tz.Parse(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", field, err)
	}
	return t, nil
}
