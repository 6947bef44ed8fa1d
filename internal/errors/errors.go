package errors

import "errors"

var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInvalidAccount    = errors.New("invalid account number")
	ErrInvalidType       = errors.New("invalid transaction type")
	ErrInvalidStatus     = errors.New("invalid transaction status")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrInsufficientFunds = errors.New("insufficient funds")
)
