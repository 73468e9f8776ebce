package api

import (
	"context"

	"github.com/shopspring/decimal"

	"spicytrolly/internal/models"
	"spicytrolly/internal/validation"
)

type OrderService struct {
	c *Client
}

// createOrderRequest is the wire form of an order submission. Item
// snapshots and the total are computed client-side so the request is
// self-contained; the server remains the authority afterwards.
type createOrderRequest struct {
	CustomerName    string             `json:"customerName"`
	CustomerEmail   string             `json:"customerEmail"`
	CustomerPhone   string             `json:"customerPhone"`
	EventType       models.EventType   `json:"eventType"`
	EventDate       string             `json:"eventDate"`
	GuestCount      int                `json:"guestCount"`
	Items           []models.OrderItem `json:"items"`
	TotalAmount     decimal.Decimal    `json:"totalAmount"`
	SpecialRequests string             `json:"specialRequests,omitempty"`
}

func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	var out []models.Order
	if err := s.c.get(ctx, "/orders", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (*models.Order, error) {
	var out models.Order
	if err := s.c.get(ctx, "/orders/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create validates the form, prices the selections against the given
// menu and submits the order as a single atomic call. The computed
// total is checked against the item subtotals before anything goes on
// the wire.
func (s *OrderService) Create(ctx context.Context, form models.OrderForm, menu []models.MenuItem) (*models.Order, error) {
	if err := validation.OrderForm(form); err != nil {
		return nil, err
	}

	items, err := models.BuildOrderItems(menu, form.Items)
	if err != nil {
		return nil, &validation.Error{Field: "items", Message: err.Error()}
	}
	total := models.OrderTotal(items)
	if err := models.VerifyOrderTotals(items, total); err != nil {
		return nil, &validation.Error{Field: "totalAmount", Message: err.Error()}
	}

	req := createOrderRequest{
		CustomerName:    form.CustomerName,
		CustomerEmail:   form.CustomerEmail,
		CustomerPhone:   form.CustomerPhone,
		EventType:       form.EventType,
		EventDate:       form.EventDate,
		GuestCount:      form.GuestCount,
		Items:           items,
		TotalAmount:     total,
		SpecialRequests: form.SpecialRequests,
	}

	var out models.Order
	if err := s.c.post(ctx, "/orders", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateStatus sends the requested transition. The server is the
// authority on which transitions are legal; the client does not
// enforce a transition graph.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (*models.Order, error) {
	body := map[string]models.OrderStatus{"status": status}
	var out models.Order
	if err := s.c.patch(ctx, "/orders/"+id+"/status", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	return s.c.delete(ctx, "/orders/"+id)
}
