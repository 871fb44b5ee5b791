package report

import (
	"sort"
	"time"

	"github.com/resinworks/backend/internal/domain/order"
	"github.com/shopspring/decimal"
)

// MonthKey formats a date as its month bucket, e.g. "2024-03".
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// MonthlyEntry is the profit total for one calendar month.
type MonthlyEntry struct {
	Month  string          `json:"month"`
	Profit decimal.Decimal `json:"profit"`
}

// MonthlyProfit aggregates profit into calendar-month buckets:
//
//   - each delivered sale item adds its price to the month of its sale date
//   - each delivered resin lot adds its net profit (gross revenue minus
//     cost) to the month of its end date
//
// Delivered lots still missing an end date have no month to land in and
// are skipped. Entries are returned sorted by month ascending.
func MonthlyProfit(items []order.SaleItem, lots []order.ResinLot) []MonthlyEntry {
	buckets := make(map[string]decimal.Decimal)

	for i := range items {
		if !items[i].Delivered {
			continue
		}
		key := MonthKey(items[i].SaleDate)
		buckets[key] = buckets[key].Add(items[i].Price)
	}

	for i := range lots {
		if !lots[i].IsDelivered() || lots[i].EndDate == nil {
			continue
		}
		profit, _ := lots[i].NetProfit()
		key := MonthKey(*lots[i].EndDate)
		buckets[key] = buckets[key].Add(profit)
	}

	entries := make([]MonthlyEntry, 0, len(buckets))
	for month, profit := range buckets {
		entries = append(entries, MonthlyEntry{Month: month, Profit: profit})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Month < entries[j].Month
	})

	return entries
}
