package query

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dateRow(id, date string) stubRow {
	return stubRow{id: id, fields: map[string]Field{
		"id":   IDField(id),
		"date": DateField(date),
	}}
}

func rowIDs[R Row](rows []R) []string {
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.RowID())
	}
	return ids
}

func TestSortByTextIsCaseInsensitive(t *testing.T) {
	rows := []stubRow{
		{id: "C01", fields: map[string]Field{"name": TextField("banana")}},
		{id: "C02", fields: map[string]Field{"name": TextField("Apple")}},
	}

	got := Sort(rows, SortConfig{Column: "name", Direction: Ascending})
	assert.Equal(t, []string{"C02", "C01"}, rowIDs(got))
}

func TestSortByNumberIsNumeric(t *testing.T) {
	rows := []stubRow{
		{id: "T01", fields: map[string]Field{"quantity": NumberField(decimal.NewFromInt(10))}},
		{id: "T02", fields: map[string]Field{"quantity": NumberField(decimal.NewFromInt(9))}},
	}

	// Lexicographic order would put "10" before "9".
	got := Sort(rows, SortConfig{Column: "quantity", Direction: Ascending})
	assert.Equal(t, []string{"T02", "T01"}, rowIDs(got))
}

func TestSortDescendingReversesOrder(t *testing.T) {
	rows := []stubRow{
		{id: "T01", fields: map[string]Field{"quantity": NumberField(decimal.NewFromInt(5))}},
		{id: "T02", fields: map[string]Field{"quantity": NumberField(decimal.NewFromInt(8))}},
	}

	got := Sort(rows, SortConfig{Column: "quantity", Direction: Descending})
	assert.Equal(t, []string{"T02", "T01"}, rowIDs(got))
}

func TestSortDateTieBreaksOnLargerIDBothDirections(t *testing.T) {
	rows := []stubRow{
		dateRow("T01", "2024-01-10"),
		dateRow("T02", "2024-01-10"),
		dateRow("T03", "2024-01-05"),
	}

	asc := Sort(rows, SortConfig{Column: "date", Direction: Ascending})
	assert.Equal(t, []string{"T03", "T02", "T01"}, rowIDs(asc))

	desc := Sort(rows, SortConfig{Column: "date", Direction: Descending})
	assert.Equal(t, []string{"T02", "T01", "T03"}, rowIDs(desc))
}

func TestSortNonKeyTiesAreStable(t *testing.T) {
	rows := []stubRow{
		{id: "C03", fields: map[string]Field{"name": TextField("Rajesh")}},
		{id: "C01", fields: map[string]Field{"name": TextField("Rajesh")}},
		{id: "C02", fields: map[string]Field{"name": TextField("Rajesh")}},
	}

	got := Sort(rows, SortConfig{Column: "name", Direction: Ascending})
	assert.Equal(t, []string{"C03", "C01", "C02"}, rowIDs(got))
}

func TestSortDoesNotMutateInput(t *testing.T) {
	rows := []stubRow{
		dateRow("T01", "2024-01-10"),
		dateRow("T02", "2024-01-05"),
	}

	got := Sort(rows, SortConfig{Column: "date", Direction: Ascending})
	require.Equal(t, []string{"T02", "T01"}, rowIDs(got))
	assert.Equal(t, []string{"T01", "T02"}, rowIDs(rows))
}

func TestSortEmptyColumnKeepsOrder(t *testing.T) {
	rows := []stubRow{dateRow("T02", "2024-01-05"), dateRow("T01", "2024-01-10")}

	got := Sort(rows, SortConfig{})
	assert.Equal(t, []string{"T02", "T01"}, rowIDs(got))
}
