package api

import (
	"context"

	"spicytrolly/internal/models"
	"spicytrolly/internal/validation"
)

type RawProductService struct {
	c *Client
}

type stockUpdateRequest struct {
	Quantity  float64               `json:"quantity"`
	Direction models.StockDirection `json:"type"`
}

func (s *RawProductService) List(ctx context.Context) ([]models.RawProduct, error) {
	var out []models.RawProduct
	if err := s.c.get(ctx, "/raw-products", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *RawProductService) Get(ctx context.Context, id string) (*models.RawProduct, error) {
	var out models.RawProduct
	if err := s.c.get(ctx, "/raw-products/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *RawProductService) Create(ctx context.Context, form models.RawProductForm) (*models.RawProduct, error) {
	if err := validation.RawProductForm(form); err != nil {
		return nil, err
	}
	var out models.RawProduct
	if err := s.c.post(ctx, "/raw-products", form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *RawProductService) Update(ctx context.Context, id string, patch models.RawProductPatch) (*models.RawProduct, error) {
	if patch.CostPerUnit != nil && patch.CostPerUnit.Sign() <= 0 {
		return nil, &validation.Error{Field: "costPerUnit", Message: "must be greater than zero"}
	}
	var out models.RawProduct
	if err := s.c.put(ctx, "/raw-products/"+id, patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *RawProductService) Delete(ctx context.Context, id string) error {
	return s.c.delete(ctx, "/raw-products/"+id)
}

// UpdateStock adjusts the stock level by quantity in the given
// direction. The server does the arithmetic; a zero quantity is legal
// and leaves the level unchanged.
func (s *RawProductService) UpdateStock(ctx context.Context, id string, quantity float64, direction models.StockDirection) (*models.RawProduct, error) {
	if err := validation.StockAdjustment(quantity, direction); err != nil {
		return nil, err
	}
	body := stockUpdateRequest{Quantity: quantity, Direction: direction}
	var out models.RawProduct
	if err := s.c.patch(ctx, "/raw-products/"+id+"/stock", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
