package pricing

import "github.com/shopspring/decimal"

// Effective returns the unit price a buyer actually pays: the offer price when
// one is set and undercuts the list price, the list price otherwise. Every
// consumer (cart subtotals, totals, checkout messages, catalog views) derives
// amounts through this function; the value is recomputed on read and never
// stored on the entity.
func Effective(price int, offerPrice *int) int {
	if offerPrice != nil && *offerPrice < price {
		return *offerPrice
	}
	return price
}

// HasOffer reports whether the offer price is set and actually discounts.
// An offerPrice at or above the list price is ignored.
func HasOffer(price int, offerPrice *int) bool {
	return offerPrice != nil && *offerPrice < price
}

// DiscountPercent returns the rounded discount percentage for display, or 0
// when no valid offer applies.
func DiscountPercent(price int, offerPrice *int) int {
	if price <= 0 || !HasOffer(price, offerPrice) {
		return 0
	}
	diff := decimal.NewFromInt(int64(price - *offerPrice))
	pct := diff.Div(decimal.NewFromInt(int64(price))).Mul(decimal.NewFromInt(100))
	return int(pct.Round(0).IntPart())
}
