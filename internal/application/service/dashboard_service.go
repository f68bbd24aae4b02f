package service

import (
	"context"
	"time"

	"github.com/zakirya592/rk-co-pos-sub002/internal/domain/repository"
)

// DashboardService aggregates the shop's position for the landing screen
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(analyticsRepo repository.AnalyticsRepository) *DashboardService {
	return &DashboardService{analyticsRepo: analyticsRepo}
}

// DashboardStats bundles the overall and today's sales summaries.
type DashboardStats struct {
	Overall *repository.SalesSummary `json:"overall"`
	Today   *repository.SalesSummary `json:"today"`
}

// GetStats returns the dashboard aggregates for the shop in scope
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	overall, err := s.analyticsRepo.SalesSummary(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	today, err := s.analyticsRepo.SalesSummarySince(ctx, startOfDay)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		Overall: overall,
		Today:   today,
	}, nil
}
