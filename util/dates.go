package util

import "time"

const Layout = "2006-01-02"

// ParseDate parses a date in YYYY-MM-DD form.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(Layout, s)
}

// YearFrac is the ACT/365 year fraction between two dates.
func YearFrac(t0, t1 time.Time) float64 {
	return t1.Sub(t0).Hours() / (365.0 * 24.0)
}
