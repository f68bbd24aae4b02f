package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesSummary aggregates the shop's sales position for the dashboard.
type SalesSummary struct {
	TotalSales     int64           `json:"total_sales"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	TotalPaid      decimal.Decimal `json:"total_paid"`
	OutstandingDue decimal.Decimal `json:"outstanding_due"`
	PaidCount      int64           `json:"paid_count"`
	PartialCount   int64           `json:"partial_count"`
	UnpaidCount    int64           `json:"unpaid_count"`
}

// AnalyticsRepository defines the interface for dashboard aggregations
type AnalyticsRepository interface {
	// SalesSummary aggregates over all sales in the shop scope.
	SalesSummary(ctx context.Context) (*SalesSummary, error)
	// SalesSummarySince aggregates over sales created at or after the
	// given time (e.g. start of today).
	SalesSummarySince(ctx context.Context, since time.Time) (*SalesSummary, error)
}
