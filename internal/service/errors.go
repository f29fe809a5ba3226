package service

import "errors"

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrUserNotFound     = errors.New("user not found")

	ErrInvalidOrderAmount = errors.New("invalid order amount")
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderAlreadyPaid   = errors.New("order already paid")
	ErrPaymentNotFound    = errors.New("payment not found")

	// covers both true absence and records owned by someone else; callers
	// are not told which
	ErrRecordNotFound = errors.New("record not found or access denied")
)
