package query

import "sort"

// Direction orders ascending or descending.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// SortConfig names the column to order by and the direction.
type SortConfig struct {
	Column    string    `json:"column"`
	Direction Direction `json:"direction"`
}

// Sort orders rows by the configured column without mutating the input. The
// sort is stable; rows whose primary keys compare equal keep their relative
// order, except for date and id columns where ties break on the row ID with
// the larger ID first. That tie-break is a fixed rule independent of the
// primary direction, so entries created later always surface first on
// same-date ties.
func Sort[R Row](rows []R, cfg SortConfig) []R {
	out := make([]R, len(rows))
	copy(out, rows)

	if cfg.Column == "" {
		return out
	}

	idTieBreak := cfg.Column == "date" || cfg.Column == "id"

	sort.SliceStable(out, func(i, j int) bool {
		a, okA := out[i].Field(cfg.Column)
		b, okB := out[j].Field(cfg.Column)
		if !okA || !okB {
			return false
		}

		c := compare(a, b)
		if cfg.Direction == Descending {
			c = -c
		}

		if c == 0 && idTieBreak {
			idA, idB := out[i].RowID(), out[j].RowID()
			if idA != idB {
				return idA > idB
			}
		}

		return c < 0
	})

	return out
}
