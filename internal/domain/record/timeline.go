package record

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// DateGroup holds the records sharing one date string. Valid is false when
// Date could not be parsed; such groups sort after every valid one.
type DateGroup struct {
	Date    string    `json:"date"`
	Parsed  time.Time `json:"-"`
	Valid   bool      `json:"valid"`
	Records []Record  `json:"records"`
}

// ParseDate reads an ISO-8601 calendar date (YYYY-MM-DD) as midnight UTC.
// RFC 3339 timestamps are accepted too and reduced to their UTC date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(DateLayout, s, time.UTC); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		y, m, d := t.UTC().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("invalid record date %q", s)
}

// GroupByDate partitions records by exact date-string equality and orders
// the groups most recent first. Records keep their input order inside a
// group, and keys that parse to the same day keep first-seen order.
func GroupByDate(records []Record) []DateGroup {
	index := make(map[string]int)
	var groups []DateGroup
	for _, r := range records {
		i, ok := index[r.Date]
		if !ok {
			g := DateGroup{Date: r.Date}
			if t, err := ParseDate(r.Date); err == nil {
				g.Parsed = t
				g.Valid = true
			}
			i = len(groups)
			index[r.Date] = i
			groups = append(groups, g)
		}
		groups[i].Records = append(groups[i].Records, r)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		a, b := groups[i], groups[j]
		if a.Valid != b.Valid {
			return a.Valid
		}
		if !a.Valid {
			return false
		}
		return a.Parsed.After(b.Parsed)
	})
	return groups
}
