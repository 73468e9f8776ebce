package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type RawProduct struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Unit         string          `json:"unit"`
	CostPerUnit  decimal.Decimal `json:"costPerUnit"`
	CurrentStock float64         `json:"currentStock"`
	MinimumStock float64         `json:"minimumStock"`
	Supplier     string          `json:"supplier,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// IsLowStock reports whether stock has fallen to or below the minimum.
// The boundary is inclusive: stock exactly at the threshold counts.
func (p RawProduct) IsLowStock() bool {
	return p.CurrentStock <= p.MinimumStock
}

// LowStock filters the products that need restocking.
func LowStock(products []RawProduct) []RawProduct {
	var low []RawProduct
	for _, p := range products {
		if p.IsLowStock() {
			low = append(low, p)
		}
	}
	return low
}

type RawProductForm struct {
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Unit         string          `json:"unit"`
	CostPerUnit  decimal.Decimal `json:"costPerUnit"`
	CurrentStock float64         `json:"currentStock"`
	MinimumStock float64         `json:"minimumStock"`
	Supplier     string          `json:"supplier,omitempty"`
}

type RawProductPatch struct {
	Name         *string          `json:"name,omitempty"`
	Category     *string          `json:"category,omitempty"`
	Unit         *string          `json:"unit,omitempty"`
	CostPerUnit  *decimal.Decimal `json:"costPerUnit,omitempty"`
	CurrentStock *float64         `json:"currentStock,omitempty"`
	MinimumStock *float64         `json:"minimumStock,omitempty"`
	Supplier     *string          `json:"supplier,omitempty"`
}

// StockDirection selects whether a stock adjustment adds to or
// subtracts from the current level.
type StockDirection string

const (
	StockAdd      StockDirection = "add"
	StockSubtract StockDirection = "subtract"
)
