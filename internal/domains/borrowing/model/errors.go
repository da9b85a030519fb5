package model

import (
	"errors"
	"fmt"
)

var ErrRecordNotFound = errors.New("borrow record not found")

// Patron-facing failure messages. Unavailability and the borrow limit are
// deliberately distinct outcomes.
var (
	MsgBookUnavailable = "No copies of this book are currently available."
	MsgBorrowLimit     = fmt.Sprintf("Patron has reached the maximum borrowing limit of %d books.", MaxOutstandingLoans)
	MsgNotBorrowing    = "This patron is not currently borrowing this book."
)
