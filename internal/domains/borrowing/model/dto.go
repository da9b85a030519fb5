package model

// BorrowRequest carries a borrow attempt from the web layer
type BorrowRequest struct {
	PatronID string `json:"patron_id"`
	BookID   int64  `json:"book_id"`
}

// ReturnRequest carries a return attempt from the web layer
type ReturnRequest struct {
	PatronID string `json:"patron_id"`
	BookID   int64  `json:"book_id"`
}
