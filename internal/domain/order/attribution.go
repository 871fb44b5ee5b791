package order

import "github.com/shopspring/decimal"

// AttributeRevenue computes the gross revenue of a lot: the sum of the
// prices of every sale item whose sale date falls inside the lot's
// [PurchaseDate, EndDate] interval. Both boundaries are inclusive and
// compared at calendar-date precision. A lot without an end date is open
// and includes every sale on or after its purchase date.
//
// The function is pure: it never mutates the lot or the items, and lots
// with overlapping intervals each count the same sale in full.
func AttributeRevenue(lot *ResinLot, items []SaleItem) decimal.Decimal {
	total := decimal.Zero
	for i := range items {
		if Attributable(lot, &items[i]) {
			total = total.Add(items[i].Price)
		}
	}
	return total
}

// Attributable reports whether a sale item's date falls inside the lot's
// attribution interval.
func Attributable(lot *ResinLot, item *SaleItem) bool {
	if !SameOrAfter(item.SaleDate, lot.PurchaseDate) {
		return false
	}
	if lot.EndDate != nil && !SameOrBefore(item.SaleDate, *lot.EndDate) {
		return false
	}
	return true
}
