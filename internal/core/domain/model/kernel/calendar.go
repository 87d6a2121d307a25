package kernel

import "time"

const dayKeyLayout = "2006-01-02"

// DayKey formats t as a yyyy-MM-dd calendar day in loc. The zone is resolved at
// call time, so the same instant may map to different days under different zones.
func DayKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(dayKeyLayout)
}

// HourLabel formats t as an "HH:00" label in loc.
func HourLabel(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format("15") + ":00"
}

// IsDayKey reports whether s is a well-formed yyyy-MM-dd day key.
func IsDayKey(s string) bool {
	_, err := time.Parse(dayKeyLayout, s)
	return err == nil
}
