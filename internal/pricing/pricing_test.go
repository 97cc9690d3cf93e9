package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func line(id string, price float64, qty int) Line {
	return Line{ProductID: id, UnitPrice: decimal.NewFromFloat(price), Quantity: qty}
}

func assertEq(t *testing.T, field string, got decimal.Decimal, want float64) {
	t.Helper()
	if !got.Equal(decimal.NewFromFloat(want)) {
		t.Fatalf("%s = %s, want %v", field, got, want)
	}
}

func TestComputeSave10(t *testing.T) {
	totals := Compute([]Line{line("p1", 100.00, 1)}, CouponSave10)

	assertEq(t, "subtotal", totals.Subtotal, 100.00)
	assertEq(t, "discount", totals.Discount, 10.00)
	assertEq(t, "afterDiscount", totals.AfterDiscount, 90.00)
	assertEq(t, "tax", totals.Tax, 7.20)
	assertEq(t, "shipping", totals.Shipping, 5)
	assertEq(t, "total", totals.Total, 102.20)
}

func TestComputeFreeShip(t *testing.T) {
	totals := Compute([]Line{line("p1", 25.00, 2)}, CouponFreeShip)

	assertEq(t, "subtotal", totals.Subtotal, 50.00)
	assertEq(t, "discount", totals.Discount, 0)
	assertEq(t, "tax", totals.Tax, 4.00)
	assertEq(t, "shipping", totals.Shipping, 0)
	assertEq(t, "total", totals.Total, 54.00)
}

func TestComputeEmptyCart(t *testing.T) {
	for _, coupon := range []Coupon{CouponNone, CouponSave10, CouponSave20, CouponFreeShip} {
		totals := Compute(nil, coupon)
		assertEq(t, "subtotal", totals.Subtotal, 0)
		assertEq(t, "shipping", totals.Shipping, 0)
		assertEq(t, "total", totals.Total, 0)
	}
}

func TestComputeFreeShippingThreshold(t *testing.T) {
	// afterDiscount >= 100 waives shipping without any coupon.
	totals := Compute([]Line{line("p1", 100.00, 1)}, CouponNone)
	assertEq(t, "shipping", totals.Shipping, 0)

	// SAVE10 drops the same cart below the threshold again.
	totals = Compute([]Line{line("p1", 100.00, 1)}, CouponSave10)
	assertEq(t, "shipping", totals.Shipping, 5)
}

func TestComputeAfterDiscountNeverNegative(t *testing.T) {
	// A pathological negative price must not push totals below zero.
	totals := Compute([]Line{line("p1", -10.00, 1)}, CouponNone)
	if totals.AfterDiscount.IsNegative() {
		t.Fatalf("afterDiscount negative: %s", totals.AfterDiscount)
	}
}

func TestComputeRetainsPrecision(t *testing.T) {
	// 3 * 0.10 discount on 33.33 yields 3.333; no rounding inside the engine.
	totals := Compute([]Line{line("p1", 33.33, 1)}, CouponSave10)
	assertEq(t, "discount", totals.Discount, 3.333)
	assertEq(t, "afterDiscount", totals.AfterDiscount, 29.997)
}

func TestParseCoupon(t *testing.T) {
	cases := []struct {
		in   string
		want Coupon
	}{
		{"SAVE10", CouponSave10},
		{" save20 ", CouponSave20},
		{"freeship", CouponFreeShip},
		{"BOGUS", CouponNone},
		{"", CouponNone},
	}
	for _, c := range cases {
		if got := ParseCoupon(c.in); got != c.want {
			t.Fatalf("ParseCoupon(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
