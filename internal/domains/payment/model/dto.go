package model

import "github.com/shopspring/decimal"

// PayFeesRequest carries a late-fee payment attempt from the web layer
type PayFeesRequest struct {
	PatronID string `json:"patron_id"`
	BookID   int64  `json:"book_id"`
}

// RefundRequest carries a refund attempt from the web layer
type RefundRequest struct {
	TransactionID string          `json:"transaction_id"`
	Amount        decimal.Decimal `json:"amount"`
}
