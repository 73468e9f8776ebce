package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type EventType string

const (
	EventMarriage  EventType = "marriage"
	EventReception EventType = "reception"
	EventOther     EventType = "other"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderPreparing OrderStatus = "preparing"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// OrderItem is a denormalized snapshot of a menu item at order time.
// Subtotal is fixed when the order is created, so historical orders are
// immune to later price changes.
type OrderItem struct {
	MenuItemID   string          `json:"menuItemId"`
	MenuItemName string          `json:"menuItemName"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

type Order struct {
	ID              string          `json:"id"`
	CustomerName    string          `json:"customerName"`
	CustomerEmail   string          `json:"customerEmail"`
	CustomerPhone   string          `json:"customerPhone"`
	EventType       EventType       `json:"eventType"`
	EventDate       time.Time       `json:"eventDate"`
	GuestCount      int             `json:"guestCount"`
	Items           []OrderItem     `json:"items"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	SpecialRequests string          `json:"specialRequests,omitempty"`
	Status          OrderStatus     `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// OrderSelection is a single line of an order form: which menu item and
// how many. Pricing is resolved against the fetched menu at submit time.
type OrderSelection struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
}

// OrderForm is everything the customer fills in before submission.
// EventDate is date-only, formatted 2006-01-02.
type OrderForm struct {
	CustomerName    string           `json:"customerName"`
	CustomerEmail   string           `json:"customerEmail"`
	CustomerPhone   string           `json:"customerPhone"`
	EventType       EventType        `json:"eventType"`
	EventDate       string           `json:"eventDate"`
	GuestCount      int              `json:"guestCount"`
	Items           []OrderSelection `json:"items"`
	SpecialRequests string           `json:"specialRequests,omitempty"`
}

// BuildOrderItems resolves form selections against the fetched menu,
// snapshotting name and unit price and computing each subtotal as
// quantity times price. Selections referring to unknown menu items fail
// the whole build.
func BuildOrderItems(menu []MenuItem, selections []OrderSelection) ([]OrderItem, error) {
	byID := make(map[string]MenuItem, len(menu))
	for _, item := range menu {
		byID[item.ID] = item
	}

	items := make([]OrderItem, 0, len(selections))
	for _, sel := range selections {
		item, ok := byID[sel.MenuItemID]
		if !ok {
			return nil, fmt.Errorf("menu item %q not found", sel.MenuItemID)
		}
		subtotal := item.Price.Mul(decimal.NewFromInt(int64(sel.Quantity)))
		items = append(items, OrderItem{
			MenuItemID:   item.ID,
			MenuItemName: item.Name,
			Quantity:     sel.Quantity,
			Price:        item.Price,
			Subtotal:     subtotal,
		})
	}
	return items, nil
}

// OrderTotal sums the persisted subtotals of the given items.
func OrderTotal(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal)
	}
	return total
}

// VerifyOrderTotals checks that every subtotal equals quantity times
// unit price and that total equals the sum of subtotals. Nothing in the
// Order type enforces this, so the create path checks it explicitly
// before submission.
func VerifyOrderTotals(items []OrderItem, total decimal.Decimal) error {
	sum := decimal.Zero
	for _, item := range items {
		expected := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		if !item.Subtotal.Equal(expected) {
			return fmt.Errorf("subtotal for %q is %s, want %s", item.MenuItemName, item.Subtotal, expected)
		}
		sum = sum.Add(item.Subtotal)
	}
	if !sum.Equal(total) {
		return fmt.Errorf("order total %s does not match item sum %s", total, sum)
	}
	return nil
}

// CountByStatus tallies orders per status for summary headers.
func CountByStatus(orders []Order) map[OrderStatus]int {
	counts := make(map[OrderStatus]int)
	for _, o := range orders {
		counts[o.Status]++
	}
	return counts
}
