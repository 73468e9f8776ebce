// Package validation holds the client-side checks that run before any
// network call. A failed check blocks submission entirely; the server
// never sees the request.
package validation

import (
	"fmt"
	"strings"

	"spicytrolly/internal/models"
)

// Error marks input rejected before submission, as opposed to a
// transport or auth failure. Field names the offending form field.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &Error{Field: field, Message: "is required"}
	}
	return nil
}

func MenuItemForm(f models.MenuItemForm) error {
	if err := required("name", f.Name); err != nil {
		return err
	}
	if err := required("category", f.Category); err != nil {
		return err
	}
	if f.Price.Sign() <= 0 {
		return &Error{Field: "price", Message: "must be greater than zero"}
	}
	return nil
}

func OrderForm(f models.OrderForm) error {
	if err := required("customerName", f.CustomerName); err != nil {
		return err
	}
	if err := required("customerEmail", f.CustomerEmail); err != nil {
		return err
	}
	if err := required("customerPhone", f.CustomerPhone); err != nil {
		return err
	}
	switch f.EventType {
	case models.EventMarriage, models.EventReception, models.EventOther:
	default:
		return &Error{Field: "eventType", Message: "must be marriage, reception or other"}
	}
	if err := required("eventDate", f.EventDate); err != nil {
		return err
	}
	if f.GuestCount <= 0 {
		return &Error{Field: "guestCount", Message: "must be greater than zero"}
	}
	if len(f.Items) == 0 {
		return &Error{Field: "items", Message: "at least one item must be selected"}
	}
	for _, sel := range f.Items {
		if sel.MenuItemID == "" {
			return &Error{Field: "items", Message: "menu item id is required"}
		}
		if sel.Quantity <= 0 {
			return &Error{Field: "items", Message: "quantity must be greater than zero"}
		}
	}
	return nil
}

func RawProductForm(f models.RawProductForm) error {
	if err := required("name", f.Name); err != nil {
		return err
	}
	if err := required("unit", f.Unit); err != nil {
		return err
	}
	if f.CostPerUnit.Sign() <= 0 {
		return &Error{Field: "costPerUnit", Message: "must be greater than zero"}
	}
	if f.CurrentStock < 0 {
		return &Error{Field: "currentStock", Message: "must not be negative"}
	}
	if f.MinimumStock < 0 {
		return &Error{Field: "minimumStock", Message: "must not be negative"}
	}
	return nil
}

func PurchaseForm(f models.PurchaseForm) error {
	if err := required("rawProductId", f.RawProductID); err != nil {
		return err
	}
	if f.Quantity <= 0 {
		return &Error{Field: "quantity", Message: "must be greater than zero"}
	}
	if f.CostPerUnit.Sign() <= 0 {
		return &Error{Field: "costPerUnit", Message: "must be greater than zero"}
	}
	return nil
}

func Credentials(c models.Credentials) error {
	if err := required("email", c.Email); err != nil {
		return err
	}
	return required("password", c.Password)
}

// StockAdjustment validates a stock update before it is sent. A zero
// quantity is allowed and leaves the stock level unchanged.
func StockAdjustment(quantity float64, direction models.StockDirection) error {
	if quantity < 0 {
		return &Error{Field: "quantity", Message: "must not be negative"}
	}
	switch direction {
	case models.StockAdd, models.StockSubtract:
	default:
		return &Error{Field: "type", Message: "must be add or subtract"}
	}
	return nil
}
