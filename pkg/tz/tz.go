package tz

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

// Layout is the wire format of every timestamp: RFC 3339 with the offset of Location.
const Layout = time.RFC3339

// LocalLayout is also accepted on input and read as wall time in Location.
const LocalLayout = "2006-01-02 15:04:05"

// Location is the zone timestamps are rendered and parsed in. UTC until Set is called.
var Location = time.UTC

// Set loads the named IANA zone (e.g. "America/Bogota") as Location.
func Set(name string) error {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("tz: load %s: %w", name, err)
	}
	Location = loc
	return nil
}

// Format renders t in Location; the zero time renders as "".
func Format(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(Location).Format(Layout)
}

// Parse reads an RFC 3339 timestamp, or a LocalLayout one within Location.
// Local wall times that occur twice in Location resolve to the first one.
func Parse(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(Layout, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(LocalLayout, s, Location)
	if err != nil {
		return time.Time{}, fmt.Errorf("tz: invalid timestamp %q (expected %s)", s, Layout)
	}
	return t, nil
}
