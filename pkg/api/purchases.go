package api

import (
	"context"

	"spicytrolly/internal/models"
	"spicytrolly/internal/validation"
)

// PurchaseService records raw-material acquisitions. Purchases are an
// append-only ledger: there is no update operation, only create and
// delete.
type PurchaseService struct {
	c *Client
}

func (s *PurchaseService) List(ctx context.Context) ([]models.Purchase, error) {
	var out []models.Purchase
	if err := s.c.get(ctx, "/purchases", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PurchaseService) Create(ctx context.Context, form models.PurchaseForm) (*models.Purchase, error) {
	if err := validation.PurchaseForm(form); err != nil {
		return nil, err
	}
	var out models.Purchase
	if err := s.c.post(ctx, "/purchases", form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *PurchaseService) Delete(ctx context.Context, id string) error {
	return s.c.delete(ctx, "/purchases/"+id)
}
