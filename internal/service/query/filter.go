package query

import (
	"strings"

	"github.com/mamadbah2/dairyledger/internal/domain/models"
)

// Options describes one filtering pass. The text search and the date range
// compose: both narrow the result, while the search fields match with OR
// semantics among themselves.
//
// When ActiveIDs is non-nil the date range works in activity mode: rows are
// kept by membership of their RowID in the set, which the caller computes
// from transactions and payments in range. Otherwise the range applies
// directly to the row's own "date" column.
type Options struct {
	Search    string
	Fields    []string
	Range     DateRange
	ActiveIDs map[string]struct{}
}

// Apply filters rows by text search and date range, returning a new slice.
func Apply[R Row](rows []R, opts Options) []R {
	filtered := make([]R, 0, len(rows))
	term := strings.ToLower(opts.Search)

	for _, row := range rows {
		if term != "" && !matchesAny(row, opts.Fields, term) {
			continue
		}
		if !opts.Range.IsZero() {
			if opts.ActiveIDs != nil {
				if _, ok := opts.ActiveIDs[row.RowID()]; !ok {
					continue
				}
			} else {
				date, ok := row.Field("date")
				if !ok || !opts.Range.Contains(date.Text) {
					continue
				}
			}
		}
		filtered = append(filtered, row)
	}

	return filtered
}

func matchesAny(row Row, fields []string, lowerTerm string) bool {
	for _, name := range fields {
		field, ok := row.Field(name)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(field.searchText()), lowerTerm) {
			return true
		}
	}
	return false
}

// ActiveCustomerIDs collects the IDs of customers referenced by any
// transaction or payment dated inside the range. It backs activity-mode
// filtering on the dashboard and customer listings, which answer "who traded
// in this period" rather than filtering by a date the row itself carries.
func ActiveCustomerIDs(transactions []models.Transaction, payments []models.Payment, r DateRange) map[string]struct{} {
	active := make(map[string]struct{})
	for _, t := range transactions {
		if r.Contains(t.Date) {
			active[t.CustomerID] = struct{}{}
		}
	}
	for _, p := range payments {
		if r.Contains(p.Date) {
			active[p.CustomerID] = struct{}{}
		}
	}
	return active
}
