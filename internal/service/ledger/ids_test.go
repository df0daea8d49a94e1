package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mamadbah2/dairyledger/internal/domain/models"
)

func customersWithIDs(ids ...string) []models.Customer {
	out := make([]models.Customer, len(ids))
	for i, id := range ids {
		out[i] = models.Customer{ID: id}
	}
	return out
}

func TestAllocatorStartsAtOne(t *testing.T) {
	a := NewAllocator()

	assert.Equal(t, "C01", a.Next(KindCustomer))
	assert.Equal(t, "T01", a.Next(KindTransaction))
	assert.Equal(t, "P01", a.Next(KindPayment))
}

func TestAllocatorSequencesAreIndependent(t *testing.T) {
	a := NewAllocator()

	assert.Equal(t, "C01", a.Next(KindCustomer))
	assert.Equal(t, "C02", a.Next(KindCustomer))
	assert.Equal(t, "T01", a.Next(KindTransaction))
}

func TestAllocatorPaddingWidensPastNinetyNine(t *testing.T) {
	a := NewAllocator()
	a.Reinitialize(customersWithIDs("C99"), nil, nil)

	assert.Equal(t, "C100", a.Next(KindCustomer))
	assert.Equal(t, "C101", a.Next(KindCustomer))
}

func TestAllocatorReinitializeScansHighestSuffix(t *testing.T) {
	a := NewAllocator()
	a.Reinitialize(customersWithIDs("C01", "C07", "C03"), nil, nil)

	assert.Equal(t, "C08", a.Next(KindCustomer))
}

func TestAllocatorReinitializeIgnoresForeignIDs(t *testing.T) {
	a := NewAllocator()
	a.Reinitialize(customersWithIDs("C02", "X99", "C", "Cab", "T05"), nil, nil)

	assert.Equal(t, "C03", a.Next(KindCustomer))
}

func TestAllocatorReinitializeIsIdempotent(t *testing.T) {
	customers := customersWithIDs("C01", "C05")
	transactions := []models.Transaction{{ID: "T12"}}
	payments := []models.Payment{{ID: "P03"}}

	a := NewAllocator()
	a.Reinitialize(customers, transactions, payments)
	first := a.Counters()
	a.Reinitialize(customers, transactions, payments)

	assert.Equal(t, first, a.Counters())
	assert.Equal(t, 5, first[KindCustomer])
	assert.Equal(t, 12, first[KindTransaction])
	assert.Equal(t, 3, first[KindPayment])
}

func TestAllocatorNeverReusesAfterDeletion(t *testing.T) {
	a := NewAllocator()
	a.Reinitialize(customersWithIDs("C01", "C02", "C03"), nil, nil)

	// C02 was deleted; the gap stays a gap.
	assert.Equal(t, "C04", a.Next(KindCustomer))
}

func TestAllocatorReset(t *testing.T) {
	a := NewAllocator()
	a.Next(KindCustomer)
	a.Next(KindTransaction)
	a.Reset()

	assert.Equal(t, "C01", a.Next(KindCustomer))
	assert.Equal(t, "T01", a.Next(KindTransaction))
}
