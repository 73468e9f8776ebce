package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase is an append-only ledger entry for acquired raw material.
// Entries are never mutated after creation, only deleted to correct a
// data-entry mistake.
type Purchase struct {
	ID             string          `json:"id"`
	RawProductID   string          `json:"rawProductId"`
	RawProductName string          `json:"rawProductName"`
	Quantity       float64         `json:"quantity"`
	CostPerUnit    decimal.Decimal `json:"costPerUnit"`
	TotalCost      decimal.Decimal `json:"totalCost"`
	Supplier       string          `json:"supplier"`
	PurchaseDate   time.Time       `json:"purchaseDate"`
	CreatedAt      time.Time       `json:"createdAt"`
}

type PurchaseForm struct {
	RawProductID string          `json:"rawProductId"`
	Quantity     float64         `json:"quantity"`
	CostPerUnit  decimal.Decimal `json:"costPerUnit"`
	Supplier     string          `json:"supplier"`
}
