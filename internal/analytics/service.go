package analytics

import (
	"context"
	"time"
)

type Repository interface {
	Counts(ctx context.Context) (*Counts, error)
	Revenue(ctx context.Context) (*Revenue, error)
	CategoryBreakdown(ctx context.Context) ([]CategoryStat, error)
	MonthlyRevenue(ctx context.Context, since time.Time) ([]MonthlyBucket, error)
}

type AnalyticsService struct {
	repo Repository
}

func NewAnalyticsService(repo Repository) *AnalyticsService {
	return &AnalyticsService{repo: repo}
}

// Dashboard assembles the full dashboard payload. Empty collections
// yield zero figures and empty slices, never nulls.
func (s *AnalyticsService) Dashboard(ctx context.Context) (*DashboardData, error) {
	counts, err := s.repo.Counts(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.repo.Revenue(ctx)
	if err != nil {
		return nil, err
	}
	if revenue == nil {
		revenue = &Revenue{}
	}
	categories, err := s.repo.CategoryBreakdown(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []CategoryStat{}
	}
	since := time.Now().AddDate(0, -6, 0)
	monthly, err := s.repo.MonthlyRevenue(ctx, since)
	if err != nil {
		return nil, err
	}
	if monthly == nil {
		monthly = []MonthlyBucket{}
	}

	return &DashboardData{
		Counts:            *counts,
		Revenue:           *revenue,
		CategoryBreakdown: categories,
		MonthlyRevenue:    monthly,
	}, nil
}
