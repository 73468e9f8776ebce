package models

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

type MenuItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Image       string          `json:"image,omitempty"`
	Available   bool            `json:"available"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// MenuItemForm is the payload for creating a menu item.
type MenuItemForm struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Available   bool            `json:"available"`
}

// MenuItemPatch carries a partial update. Nil fields are left untouched
// by the server.
type MenuItemPatch struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Available   *bool            `json:"available,omitempty"`
}

// GroupByCategory buckets menu items by their category label, preserving
// the incoming order within each bucket. Category names are returned
// sorted so rendering is stable across fetches.
func GroupByCategory(items []MenuItem) (categories []string, grouped map[string][]MenuItem) {
	grouped = make(map[string][]MenuItem)
	for _, item := range items {
		if _, ok := grouped[item.Category]; !ok {
			categories = append(categories, item.Category)
		}
		grouped[item.Category] = append(grouped[item.Category], item)
	}
	sort.Strings(categories)
	return categories, grouped
}
