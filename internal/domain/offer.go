package domain

import "github.com/shopspring/decimal"

type Offer struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description,omitempty"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	Active          bool            `json:"active"`
}
