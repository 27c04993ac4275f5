package cart

import (
	"time"

	"github.com/shopspring/decimal"
)

// Line is one add-to-cart action. Lines are never merged by product;
// scanning the same barcode twice yields two lines.
type Line struct {
	ID         string           `json:"id"`
	SessionID  string           `json:"sessionId"`
	ProductID  int64            `json:"productId"`
	Quantity   decimal.Decimal  `json:"quantity"`
	Weight     *decimal.Decimal `json:"weight,omitempty"`
	UnitPrice  decimal.Decimal  `json:"unitPrice"`
	TotalPrice decimal.Decimal  `json:"totalPrice"`
	CreatedAt  time.Time        `json:"createdAt"`
}

// EffectiveQuantity is what the unit price is multiplied by: the
// weight for weighed goods, the quantity otherwise.
func (l Line) EffectiveQuantity() decimal.Decimal {
	if l.Weight != nil {
		return *l.Weight
	}
	return l.Quantity
}

// Summary is the derived view of a session's cart. It is recomputed
// on every read and never stored.
type Summary struct {
	SessionID string          `json:"sessionId"`
	Items     []Line          `json:"items"`
	ItemCount int64           `json:"itemCount"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Tax       decimal.Decimal `json:"tax"`
	Discount  decimal.Decimal `json:"discount"`
	Total     decimal.Decimal `json:"total"`
}

// Pricing holds the summary formula rates.
type Pricing struct {
	TaxRate           decimal.Decimal
	DiscountRate      decimal.Decimal
	DiscountThreshold decimal.Decimal
}

// DefaultPricing returns the production rates: 5% tax, 15% discount
// strictly above a 500.00 subtotal.
func DefaultPricing() Pricing {
	return Pricing{
		TaxRate:           decimal.New(5, -2),
		DiscountRate:      decimal.New(15, -2),
		DiscountThreshold: decimal.New(500, 0),
	}
}

// PricingFromRates builds a Pricing from float configuration values.
func PricingFromRates(taxRate, discountRate, threshold float64) Pricing {
	return Pricing{
		TaxRate:           decimal.NewFromFloat(taxRate),
		DiscountRate:      decimal.NewFromFloat(discountRate),
		DiscountThreshold: decimal.NewFromFloat(threshold),
	}
}

// Summarize derives the summary for a session's lines. Monetary
// fields are rounded to two decimals at the point of computation;
// intermediate sums stay unrounded.
func (p Pricing) Summarize(sessionID string, lines []Line) Summary {
	subtotal := decimal.Zero
	quantitySum := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.TotalPrice)
		quantitySum = quantitySum.Add(line.Quantity)
	}

	discount := decimal.Zero
	if subtotal.GreaterThan(p.DiscountThreshold) {
		discount = subtotal.Mul(p.DiscountRate).Round(2)
	}
	tax := subtotal.Mul(p.TaxRate).Round(2)

	items := lines
	if items == nil {
		items = []Line{}
	}

	return Summary{
		SessionID: sessionID,
		Items:     items,
		ItemCount: quantitySum.Round(0).IntPart(),
		Subtotal:  subtotal.Round(2),
		Tax:       tax,
		Discount:  discount,
		Total:     subtotal.Add(tax).Sub(discount).Round(2),
	}
}

// lineTotal computes a line's price snapshot from its effective quantity.
func lineTotal(unitPrice, effectiveQuantity decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(effectiveQuantity).Round(2)
}
