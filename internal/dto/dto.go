package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CheckoutItem struct {
	ProductID uint            `json:"productId"`
	Quantity  int32           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type CheckoutRequest struct {
	CustomerName string `json:"customerName"`
	PhoneNumber  string `json:"phoneNumber"`

	AddressLine string `json:"addressLine"`
	City        string `json:"city"`
	PostalCode  string `json:"postalCode"`

	CardholderName string `json:"cardholderName"`
	// number and cvv are used transiently and never persisted
	CardNumber string `json:"cardNumber"`
	ExpiryDate string `json:"expiryDate"`
	CVV        string `json:"cvv"`

	Amount *decimal.Decimal `json:"amount"`
	Items  []*CheckoutItem  `json:"items"`
}

type CheckoutResponse struct {
	Success bool   `json:"success"`
	OrderID uint   `json:"orderId"`
	Message string `json:"message"`
}

type PaymentRequest struct {
	OrderID        uint            `json:"orderId"`
	Amount         decimal.Decimal `json:"amount"`
	CardholderName string          `json:"cardholderName"`
	CardNumber     string          `json:"cardNumber"`
}

type PaymentResponse struct {
	PaymentID uint            `json:"paymentId"`
	OrderID   uint            `json:"orderId"`
	Status    string          `json:"status"`
	Amount    decimal.Decimal `json:"amount"`
	PaidAt    time.Time       `json:"paidAt"`
}

type AddressRequest struct {
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	AddressLine string `json:"addressLine"`
	City        string `json:"city"`
	PostalCode  string `json:"postalCode"`
	IsDefault   *bool  `json:"isDefault"`
}

type SavedCardRequest struct {
	CardholderName string `json:"cardholderName"`
	Last4          string `json:"last4"`
	ExpiryMonth    string `json:"expiryMonth"`
	ExpiryYear     string `json:"expiryYear"`
	CardBrand      string `json:"cardBrand"`
	IsDefault      *bool  `json:"isDefault"`
}

type CreateOrderRequest struct {
	CustomerName string           `json:"customerName"`
	PhoneNumber  string           `json:"phoneNumber"`
	AddressLine  string           `json:"addressLine"`
	City         string           `json:"city"`
	PostalCode   string           `json:"postalCode"`
	Amount       *decimal.Decimal `json:"amount"`
}
