package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartSnapshot is the export-oriented view of the cart, written alongside the
// item list on every mutation and offered to the user as a download.
type CartSnapshot struct {
	CartID      string          `json:"cartId"`
	Timestamp   time.Time       `json:"timestamp"`
	Items       []OrderLineItem `json:"items"`
	TotalItems  int             `json:"totalItems"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Currency    string          `json:"currency"`
	ExportedAt  *time.Time      `json:"exportedAt,omitempty"`
}
