package api

import (
	"context"

	"spicytrolly/internal/models"
	"spicytrolly/internal/validation"
)

type MenuService struct {
	c *Client
}

func (s *MenuService) List(ctx context.Context) ([]models.MenuItem, error) {
	var out []models.MenuItem
	if err := s.c.get(ctx, "/menu", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *MenuService) Get(ctx context.Context, id string) (*models.MenuItem, error) {
	var out models.MenuItem
	if err := s.c.get(ctx, "/menu/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *MenuService) Create(ctx context.Context, form models.MenuItemForm) (*models.MenuItem, error) {
	if err := validation.MenuItemForm(form); err != nil {
		return nil, err
	}
	var out models.MenuItem
	if err := s.c.post(ctx, "/menu", form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *MenuService) Update(ctx context.Context, id string, patch models.MenuItemPatch) (*models.MenuItem, error) {
	if patch.Price != nil && patch.Price.Sign() <= 0 {
		return nil, &validation.Error{Field: "price", Message: "must be greater than zero"}
	}
	var out models.MenuItem
	if err := s.c.put(ctx, "/menu/"+id, patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *MenuService) Delete(ctx context.Context, id string) error {
	return s.c.delete(ctx, "/menu/"+id)
}

func (s *MenuService) Categories(ctx context.Context) ([]string, error) {
	var out []string
	if err := s.c.get(ctx, "/menu/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
