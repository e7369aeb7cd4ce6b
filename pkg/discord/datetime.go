package discord

import (
	"eduhack/pkg/tz"
)

const displayLayout = "02/01/2006 15:04"

// FormatDateTime turns a wire timestamp into the short display form used in
// embeds. Unparsable or empty input is returned unchanged.
func FormatDateTime(raw string) string {
	t, err := tz.Parse(raw)
	if err != nil || t.IsZero() {
		return raw
	}
	return t.In(tz.Location).Format(displayLayout)
}
