// Package cart holds the client-session cart accumulator: per-identity lines
// persisted through an explicit keyed Store, priced via the pricing engine on
// every mutation. It is not a server resource; the API only ever receives the
// {productId, qty} pairs produced at checkout.
package cart

import (
	"ai-store/internal/domain"
	"ai-store/internal/pricing"
)

// Line is a cart line; the name and unit price are snapshotted from the
// product at add time and never re-fetched.
type Line = pricing.Line

// GuestKey is the identity key used before anyone is logged in.
const GuestKey = "guest"

// Session is one client's cart bound to an identity key. Identity changes are
// explicit calls (SwitchIdentity, Logout) rather than observed side effects.
type Session struct {
	store  Store
	key    string
	lines  []Line
	coupon string
	// applied is the coupon in effect; re-applying the same valid code is a
	// no-op, applying an invalid one clears it.
	applied pricing.Coupon
}

// NewSession binds a session to key, loading any persisted cart for it.
func NewSession(store Store, key string) *Session {
	s := &Session{store: store, key: key}
	if lines, ok := store.Load(key); ok {
		s.lines = lines
	}
	return s
}

// AddLine merges qty of the product into the cart. An existing line for the
// same product grows instead of duplicating; qty below 1 counts as 1.
func (s *Session) AddLine(p domain.Product, qty int) {
	if qty < 1 {
		qty = 1
	}
	for i := range s.lines {
		if s.lines[i].ProductID == p.ID {
			s.lines[i].Quantity += qty
			s.persist()
			return
		}
	}
	s.lines = append(s.lines, Line{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Quantity:  qty,
	})
	s.persist()
}

// RemoveLine drops the line for productID if present.
func (s *Session) RemoveLine(productID string) {
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.persist()
			return
		}
	}
}

// SetQuantity overwrites a line's quantity; qty <= 0 removes the line.
func (s *Session) SetQuantity(productID string, qty int) {
	if qty <= 0 {
		s.RemoveLine(productID)
		return
	}
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines[i].Quantity = qty
			s.persist()
			return
		}
	}
}

// Clear empties the cart and resets coupon state.
func (s *Session) Clear() {
	s.lines = nil
	s.coupon = ""
	s.applied = pricing.CouponNone
	s.persist()
}

// SetCouponText records the entered coupon text without applying it.
func (s *Session) SetCouponText(text string) {
	s.coupon = text
}

// ApplyCoupon applies the entered text. Unknown codes clear any previously
// applied coupon rather than erroring.
func (s *Session) ApplyCoupon() pricing.Coupon {
	s.applied = pricing.ParseCoupon(s.coupon)
	return s.applied
}

// AppliedCoupon returns the coupon currently in effect.
func (s *Session) AppliedCoupon() pricing.Coupon {
	return s.applied
}

// Lines returns a copy of the current cart lines.
func (s *Session) Lines() []Line {
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Totals prices the current cart with the applied coupon.
func (s *Session) Totals() pricing.Totals {
	return pricing.Compute(s.lines, s.applied)
}

// SwitchIdentity rebinds the session to key, swapping to that identity's
// persisted cart or an empty one. Coupon state is left alone.
func (s *Session) SwitchIdentity(key string) {
	s.key = key
	if lines, ok := s.store.Load(key); ok {
		s.lines = lines
	} else {
		s.lines = nil
	}
}

// Logout purges the outgoing identity's persisted cart and drops back to the
// guest identity with an empty cart.
func (s *Session) Logout() {
	s.store.Delete(s.key)
	s.key = GuestKey
	s.lines = nil
}

// Checkout emits the {productId, qty} pairs for order creation and resets
// coupon state. The lines themselves stay put so a failed order can be
// retried; call Clear once the order is accepted.
func (s *Session) Checkout() []domain.OrderItem {
	items := make([]domain.OrderItem, 0, len(s.lines))
	for _, l := range s.lines {
		items = append(items, domain.OrderItem{ProductID: l.ProductID, Qty: l.Quantity})
	}
	s.coupon = ""
	s.applied = pricing.CouponNone
	return items
}

func (s *Session) persist() {
	s.store.Save(s.key, s.lines)
}
