package ledger

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/mamadbah2/dairyledger/internal/domain/models"
)

// EntityKind selects which ID sequence an allocation draws from.
type EntityKind string

const (
	KindCustomer    EntityKind = "customer"
	KindTransaction EntityKind = "transaction"
	KindPayment     EntityKind = "payment"
)

var idPrefixes = map[EntityKind]string{
	KindCustomer:    "C",
	KindTransaction: "T",
	KindPayment:     "P",
}

// Allocator hands out sequential, typed, zero-padded IDs such as "C01" or
// "T15". Counters live only in memory and are rebuilt from the data itself at
// explicit reinitialize points, so the counter can never drift from the
// records. IDs are never reused after deletion.
type Allocator struct {
	counters map[EntityKind]int
}

// NewAllocator returns an allocator with all counters at zero.
func NewAllocator() *Allocator {
	return &Allocator{counters: map[EntityKind]int{
		KindCustomer:    0,
		KindTransaction: 0,
		KindPayment:     0,
	}}
}

// Reinitialize rebuilds every counter by scanning the existing records for
// the highest numeric suffix per prefix. Must run once after any bulk load,
// import or merge, before the next allocation.
func (a *Allocator) Reinitialize(customers []models.Customer, transactions []models.Transaction, payments []models.Payment) {
	ids := func(kind EntityKind) []string {
		switch kind {
		case KindCustomer:
			out := make([]string, len(customers))
			for i, c := range customers {
				out[i] = c.ID
			}
			return out
		case KindTransaction:
			out := make([]string, len(transactions))
			for i, t := range transactions {
				out[i] = t.ID
			}
			return out
		default:
			out := make([]string, len(payments))
			for i, p := range payments {
				out[i] = p.ID
			}
			return out
		}
	}

	for kind, prefix := range idPrefixes {
		pattern := regexp.MustCompile(`^` + prefix + `(\d+)$`)
		max := 0
		for _, id := range ids(kind) {
			match := pattern.FindStringSubmatch(id)
			if match == nil {
				continue
			}
			if n, err := strconv.Atoi(match[1]); err == nil && n > max {
				max = n
			}
		}
		a.counters[kind] = max
	}
}

// Next increments the counter for the kind and returns the formatted ID.
// Padding is a minimum of two digits, so the sequence runs C01..C99, C100 and
// onwards. The counter mutates on every call; never call speculatively.
func (a *Allocator) Next(kind EntityKind) string {
	a.counters[kind]++
	return fmt.Sprintf("%s%02d", idPrefixes[kind], a.counters[kind])
}

// Reset zeroes every counter, used when all data is deleted.
func (a *Allocator) Reset() {
	for kind := range a.counters {
		a.counters[kind] = 0
	}
}

// Counters returns a copy of the current counter values.
func (a *Allocator) Counters() map[EntityKind]int {
	out := make(map[EntityKind]int, len(a.counters))
	for kind, n := range a.counters {
		out[kind] = n
	}
	return out
}
