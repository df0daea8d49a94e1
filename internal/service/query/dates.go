package query

import "time"

const dateLayout = "2006-01-02"

// displayLayout matches how the UI renders dates in listings; text search on
// a date column compares against this rendering, not the ISO value.
const displayLayout = "2 Jan 2006"

// DateRange bounds a filter by inclusive YYYY-MM-DD dates. Either bound may
// be empty, leaving that side open.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// IsZero reports whether no bound is set.
func (r DateRange) IsZero() bool {
	return r.Start == "" && r.End == ""
}

// Contains reports whether the supplied YYYY-MM-DD date falls inside the
// range. Unparseable item dates never match; an unparseable bound is treated
// as open.
func (r DateRange) Contains(date string) bool {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return false
	}
	if start, err := time.Parse(dateLayout, r.Start); r.Start != "" && err == nil {
		if day.Before(start) {
			return false
		}
	}
	if end, err := time.Parse(dateLayout, r.End); r.End != "" && err == nil {
		if day.After(end) {
			return false
		}
	}
	return true
}

// FormatDisplayDate renders an ISO date the way listings display it, e.g.
// "2024-01-05" becomes "5 Jan 2024". Unparseable input renders as empty.
func FormatDisplayDate(date string) string {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return ""
	}
	return day.Format(displayLayout)
}
