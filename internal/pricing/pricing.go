// Package pricing computes cart totals. Compute is a pure function and is
// called on every cart mutation, so it keeps full decimal precision and
// leaves rounding to the presentation layer.
package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Coupon is one of a closed set of discount tokens. Unrecognized input
// normalizes to CouponNone rather than failing.
type Coupon string

const (
	CouponNone     Coupon = ""
	CouponSave10   Coupon = "SAVE10"
	CouponSave20   Coupon = "SAVE20"
	CouponFreeShip Coupon = "FREESHIP"
)

// ParseCoupon normalizes entered coupon text. Unknown codes are a no-op,
// not an error.
func ParseCoupon(raw string) Coupon {
	switch Coupon(strings.ToUpper(strings.TrimSpace(raw))) {
	case CouponSave10:
		return CouponSave10
	case CouponSave20:
		return CouponSave20
	case CouponFreeShip:
		return CouponFreeShip
	}
	return CouponNone
}

// Line is one product+quantity pairing priced at its add-time unit price.
type Line struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
}

// Totals is the full breakdown for a cart.
type Totals struct {
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	AfterDiscount decimal.Decimal `json:"afterDiscount"`
	Tax           decimal.Decimal `json:"tax"`
	Shipping      decimal.Decimal `json:"shipping"`
	Total         decimal.Decimal `json:"total"`
}

var (
	save10Rate      = decimal.NewFromFloat(0.10)
	save20Rate      = decimal.NewFromFloat(0.20)
	taxRate         = decimal.NewFromFloat(0.08)
	flatShipping    = decimal.NewFromInt(5)
	freeShipMinimum = decimal.NewFromInt(100)
)

// Compute derives the totals breakdown for the given lines and coupon.
//
//	subtotal      = sum(unitPrice * quantity)
//	discount      = 10% / 20% of subtotal for SAVE10 / SAVE20, else 0
//	afterDiscount = max(0, subtotal - discount)
//	tax           = afterDiscount * 8%
//	shipping      = 0 with FREESHIP or afterDiscount >= 100, else 5 if cart non-empty
func Compute(lines []Line, coupon Coupon) Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}

	discount := decimal.Zero
	switch coupon {
	case CouponSave10:
		discount = subtotal.Mul(save10Rate)
	case CouponSave20:
		discount = subtotal.Mul(save20Rate)
	}

	afterDiscount := subtotal.Sub(discount)
	if afterDiscount.IsNegative() {
		afterDiscount = decimal.Zero
	}

	tax := afterDiscount.Mul(taxRate)

	shipping := decimal.Zero
	if coupon != CouponFreeShip && afterDiscount.LessThan(freeShipMinimum) && len(lines) > 0 {
		shipping = flatShipping
	}

	return Totals{
		Subtotal:      subtotal,
		Discount:      discount,
		AfterDiscount: afterDiscount,
		Tax:           tax,
		Shipping:      shipping,
		Total:         afterDiscount.Add(tax).Add(shipping),
	}
}
