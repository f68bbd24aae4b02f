package repository

import (
	"context"
	"time"

	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/entity"
	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/enum"
	domainRepo "github.com/zakirya592/rk-co-pos-sub002/internal/domain/repository"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) SalesSummary(ctx context.Context) (*domainRepo.SalesSummary, error) {
	return r.summarize(ctx, nil)
}

func (r *analyticsRepository) SalesSummarySince(ctx context.Context, since time.Time) (*domainRepo.SalesSummary, error) {
	return r.summarize(ctx, &since)
}

func (r *analyticsRepository) summarize(ctx context.Context, since *time.Time) (*domainRepo.SalesSummary, error) {
	query := r.db.WithContext(ctx).Model(&entity.Sale{}).Scopes(ShopScope(ctx))
	if since != nil {
		query = query.Where("created_at >= ?", *since)
	}

	var summary domainRepo.SalesSummary
	err := query.
		Select(`COUNT(*) AS total_sales,
			COALESCE(SUM(grand_total), 0) AS total_revenue,
			COALESCE(SUM(paid_amount), 0) AS total_paid,
			COALESCE(SUM(due_amount), 0) AS outstanding_due,
			COUNT(*) FILTER (WHERE payment_status = ?) AS paid_count,
			COUNT(*) FILTER (WHERE payment_status = ?) AS partial_count,
			COUNT(*) FILTER (WHERE payment_status = ?) AS unpaid_count`,
			enum.PaymentStatusPaid, enum.PaymentStatusPartial, enum.PaymentStatusUnpaid).
		Scan(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}
