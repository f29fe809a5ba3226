package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderStatusPending   = "PENDING"
	OrderStatusPaid      = "PAID"
	OrderStatusCancelled = "CANCELLED"
)

const PaymentStatusPaid = "PAID"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:64;uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"size:128" json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type Product struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	Name         string          `gorm:"size:255;not null" json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageURL     string          `gorm:"size:512" json:"imageUrl"`
	Featured     bool            `json:"featured"`
	MainCategory string          `gorm:"size:64;index" json:"mainCategory"`
	SubCategory  string          `gorm:"size:64" json:"subCategory"`
}

type Order struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	UserID       uint            `gorm:"index;not null" json:"userId"`
	CustomerName string          `gorm:"size:128" json:"customerName"`
	PhoneNumber  string          `gorm:"size:32" json:"phoneNumber"`
	AddressLine  string          `gorm:"size:255" json:"addressLine"`
	City         string          `gorm:"size:64" json:"city"`
	PostalCode   string          `gorm:"size:16" json:"postalCode"`
	Amount       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Status       string          `gorm:"size:32;index;not null" json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`

	// items are owned by the order and go away with it
	Items []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"items"`
}

type OrderItem struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OrderID uint `gorm:"index;not null" json:"orderId"`
	// nil when the product could not be resolved at checkout time;
	// the line is kept as an orphaned snapshot
	ProductID *uint `gorm:"index" json:"productId"`

	// snapshot of the product at purchase time, never resynced
	ProductName     string `gorm:"size:255" json:"productName"`
	ProductImageURL string `gorm:"size:512" json:"productImageUrl"`

	Quantity  int32           `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	CreatedAt time.Time       `json:"createdAt"`
}

// LineTotal is quantity x unit price at purchase time.
func (i *OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt32(i.Quantity))
}

type Payment struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	OrderID        uint            `gorm:"index;not null" json:"orderId"`
	TransactionRef string          `gorm:"size:64;uniqueIndex;not null" json:"transactionRef"`
	Amount         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	CardholderName string          `gorm:"size:128" json:"cardholderName"`
	// last 4 digits only, full card numbers are never stored
	Last4     string    `gorm:"size:4;not null" json:"last4"`
	Status    string    `gorm:"size:32;not null" json:"status"`
	PaidAt    time.Time `json:"paidAt"`
	CreatedAt time.Time `json:"createdAt"`
}

type Address struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"userId"`
	FullName    string    `gorm:"size:128" json:"fullName"`
	PhoneNumber string    `gorm:"size:32" json:"phoneNumber"`
	AddressLine string    `gorm:"size:255" json:"addressLine"`
	City        string    `gorm:"size:64" json:"city"`
	PostalCode  string    `gorm:"size:16" json:"postalCode"`
	IsDefault   bool      `gorm:"index;not null;default:false" json:"isDefault"`
	CreatedAt   time.Time `json:"createdAt"`
}

type SavedCard struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"index;not null" json:"userId"`
	CardholderName string    `gorm:"size:128" json:"cardholderName"`
	Last4          string    `gorm:"size:4;not null" json:"last4"`
	ExpiryMonth    string    `gorm:"size:2" json:"expiryMonth"`
	ExpiryYear     string    `gorm:"size:2" json:"expiryYear"`
	CardBrand      string    `gorm:"size:32" json:"cardBrand"`
	IsDefault      bool      `gorm:"index;not null;default:false" json:"isDefault"`
	CreatedAt      time.Time `json:"createdAt"`
}
