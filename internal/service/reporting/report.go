package reporting

import (
	"regexp"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mamadbah2/dairyledger/internal/domain/models"
	"github.com/mamadbah2/dairyledger/internal/service/query"
)

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// GeneratePeriodReport sums traded quantities, values and settlements over a
// date range and builds the sparse daily bought/sold series for charting.
func GeneratePeriodReport(transactions []models.Transaction, payments []models.Payment, r query.DateRange) models.PeriodReport {
	report := models.PeriodReport{
		TotalBought:      decimal.Zero,
		TotalSold:        decimal.Zero,
		TotalBoughtValue: decimal.Zero,
		TotalSoldValue:   decimal.Zero,
		TotalPaid:        decimal.Zero,
		TotalReceived:    decimal.Zero,
	}

	type dayTotals struct {
		bought decimal.Decimal
		sold   decimal.Decimal
	}
	daily := make(map[string]dayTotals)

	for _, t := range transactions {
		if !r.IsZero() && !r.Contains(t.Date) {
			continue
		}

		value := t.TotalAmount()
		day := daily[t.Date]

		switch t.Type {
		case models.TransactionBuy:
			report.TotalBought = report.TotalBought.Add(t.Quantity)
			report.TotalBoughtValue = report.TotalBoughtValue.Add(value)
			day.bought = day.bought.Add(t.Quantity)
		case models.TransactionSell:
			report.TotalSold = report.TotalSold.Add(t.Quantity)
			report.TotalSoldValue = report.TotalSoldValue.Add(value)
			day.sold = day.sold.Add(t.Quantity)
		}
		daily[t.Date] = day
	}

	for _, p := range payments {
		if !r.IsZero() && !r.Contains(p.Date) {
			continue
		}
		switch p.Type {
		case models.PaymentPaidToSeller:
			report.TotalPaid = report.TotalPaid.Add(p.Amount)
		case models.PaymentReceivedFromBuyer:
			report.TotalReceived = report.TotalReceived.Add(p.Amount)
		}
	}

	report.GrossProfitLoss = report.TotalSoldValue.Sub(report.TotalBoughtValue)

	dates := make([]string, 0, len(daily))
	for date := range daily {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	series := models.DailySeries{
		Dates:  dates,
		Bought: make([]decimal.Decimal, len(dates)),
		Sold:   make([]decimal.Decimal, len(dates)),
	}
	for i, date := range dates {
		series.Bought[i] = daily[date].bought
		series.Sold[i] = daily[date].sold
	}
	report.Series = series

	return report
}

// MilkTypeTotals sums quantity and value per milk type across the supplied
// transactions, sorted by milk type name. The transaction listing shows these
// for the filtered set, not just the visible page.
func MilkTypeTotals(transactions []models.Transaction) []models.MilkTypeTotal {
	byType := make(map[string]models.MilkTypeTotal)
	for _, t := range transactions {
		if t.MilkType == "" {
			continue
		}
		total, ok := byType[t.MilkType]
		if !ok {
			total = models.MilkTypeTotal{
				MilkType: t.MilkType,
				Quantity: decimal.Zero,
				Amount:   decimal.Zero,
			}
		}
		total.Quantity = total.Quantity.Add(t.Quantity)
		total.Amount = total.Amount.Add(t.TotalAmount())
		byType[t.MilkType] = total
	}

	totals := make([]models.MilkTypeTotal, 0, len(byType))
	for _, total := range byType {
		totals = append(totals, total)
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].MilkType < totals[j].MilkType })
	return totals
}

// CustomersWithoutTransactionsOn lists customers with no transaction dated on
// the given day, used to spot missed pickups and deliveries. A date not in
// YYYY-MM-DD form yields an empty result.
func CustomersWithoutTransactionsOn(customers []models.Customer, transactions []models.Transaction, date string) []models.Customer {
	if !isoDatePattern.MatchString(date) {
		return nil
	}

	seen := make(map[string]struct{})
	for _, t := range transactions {
		if t.Date == date {
			seen[t.CustomerID] = struct{}{}
		}
	}

	missing := make([]models.Customer, 0, len(customers))
	for _, c := range customers {
		if _, ok := seen[c.ID]; !ok {
			missing = append(missing, c)
		}
	}
	return missing
}
