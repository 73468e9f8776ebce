package api

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"spicytrolly/internal/models"
)

// ReportService fetches server-side aggregations. All computation
// happens on the backend; these calls only shape the query.
type ReportService struct {
	c *Client
}

func (s *ReportService) DailySales(ctx context.Context, date time.Time) (*models.DailySalesReport, error) {
	query := url.Values{}
	query.Set("date", date.Format(dateLayout))

	var out models.DailySalesReport
	if err := s.c.get(ctx, "/reports/daily-sales", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ReportService) MonthlySales(ctx context.Context, month time.Month, year int) (*models.MonthlySalesReport, error) {
	query := url.Values{}
	query.Set("month", strconv.Itoa(int(month)))
	query.Set("year", strconv.Itoa(year))

	var out models.MonthlySalesReport
	if err := s.c.get(ctx, "/reports/monthly-sales", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ReportService) ProfitLoss(ctx context.Context, start, end time.Time) (*models.ProfitLossReport, error) {
	query := url.Values{}
	query.Set("startDate", start.Format(dateLayout))
	query.Set("endDate", end.Format(dateLayout))

	var out models.ProfitLossReport
	if err := s.c.get(ctx, "/reports/profit-loss", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ReportService) TopSelling(ctx context.Context, period models.ReportPeriod) ([]models.TopSellingItem, error) {
	query := url.Values{}
	query.Set("period", string(period))

	var out []models.TopSellingItem
	if err := s.c.get(ctx, "/reports/top-selling", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ReportService) SalesChart(ctx context.Context, period models.ReportPeriod) (*models.SalesChart, error) {
	query := url.Values{}
	query.Set("period", string(period))

	var out models.SalesChart
	if err := s.c.get(ctx, "/reports/sales-chart", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
