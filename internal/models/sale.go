package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is a read projection of a completed order for reporting.
type Sale struct {
	ID          string          `json:"id"`
	OrderID     string          `json:"orderId"`
	Items       []OrderItem     `json:"items"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	SaleDate    time.Time       `json:"saleDate"`
	CreatedAt   time.Time       `json:"createdAt"`
}
