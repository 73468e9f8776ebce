package models

import "github.com/shopspring/decimal"

type ReportPeriod string

const (
	PeriodDaily   ReportPeriod = "daily"
	PeriodWeekly  ReportPeriod = "weekly"
	PeriodMonthly ReportPeriod = "monthly"
)

type TopSellingItem struct {
	ItemName string          `json:"itemName"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

type DailySalesReport struct {
	Date            string           `json:"date"`
	TotalSales      decimal.Decimal  `json:"totalSales"`
	TotalOrders     int              `json:"totalOrders"`
	TopSellingItems []TopSellingItem `json:"topSellingItems"`
}

type MonthlySalesReport struct {
	Month          string             `json:"month"`
	Year           int                `json:"year"`
	TotalSales     decimal.Decimal    `json:"totalSales"`
	TotalOrders    int                `json:"totalOrders"`
	DailyBreakdown []DailySalesReport `json:"dailyBreakdown"`
}

type ProfitLossReport struct {
	Period       string          `json:"period"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	TotalCosts   decimal.Decimal `json:"totalCosts"`
	GrossProfit  decimal.Decimal `json:"grossProfit"`
	NetProfit    decimal.Decimal `json:"netProfit"`
	ProfitMargin float64         `json:"profitMargin"`
}

// SalesChart is the label/value series the dashboard chart renders.
type SalesChart struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}
