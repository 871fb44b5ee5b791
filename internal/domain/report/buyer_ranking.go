package report

import (
	"sort"
	"strings"

	"github.com/resinworks/backend/internal/domain/order"
	"github.com/shopspring/decimal"
)

// BuyerTotal is one row of the buyer ranking.
type BuyerTotal struct {
	Name      string          `json:"name"`
	Total     decimal.Decimal `json:"total"`
	Purchases int             `json:"purchases"`
}

// BuyerRanking totals what each buyer has spent across all sale items,
// sorted by total spent descending. Items without a buyer name or with a
// non-positive price are ignored. Buyer names are matched after trimming
// but the first spelling encountered is kept for display.
func BuyerRanking(items []order.SaleItem) []BuyerTotal {
	index := make(map[string]int)
	var rows []BuyerTotal

	for i := range items {
		name := strings.TrimSpace(items[i].BuyerName)
		if name == "" || !items[i].Price.IsPositive() {
			continue
		}

		key := strings.ToLower(name)
		idx, seen := index[key]
		if !seen {
			index[key] = len(rows)
			rows = append(rows, BuyerTotal{Name: name})
			idx = index[key]
		}
		rows[idx].Total = rows[idx].Total.Add(items[i].Price)
		rows[idx].Purchases++
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].Total.Equal(rows[j].Total) {
			return rows[i].Total.GreaterThan(rows[j].Total)
		}
		return rows[i].Name < rows[j].Name
	})

	return rows
}
