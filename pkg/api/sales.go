package api

import (
	"context"
	"net/url"
	"time"

	"spicytrolly/internal/models"
)

const dateLayout = "2006-01-02"

type SaleService struct {
	c *Client
}

func (s *SaleService) List(ctx context.Context) ([]models.Sale, error) {
	var out []models.Sale
	if err := s.c.get(ctx, "/sales", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListRange fetches sales between start and end, inclusive, using
// date-only filtering.
func (s *SaleService) ListRange(ctx context.Context, start, end time.Time) ([]models.Sale, error) {
	query := url.Values{}
	query.Set("startDate", start.Format(dateLayout))
	query.Set("endDate", end.Format(dateLayout))

	var out []models.Sale
	if err := s.c.get(ctx, "/sales", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}
