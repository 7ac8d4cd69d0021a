package analytics

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAnalyticsRepo struct {
	counts  Counts
	revenue *Revenue
	byCat   []CategoryStat
	monthly []MonthlyBucket
	since   time.Time
}

func (r *fakeAnalyticsRepo) Counts(_ context.Context) (*Counts, error) {
	counts := r.counts
	return &counts, nil
}

func (r *fakeAnalyticsRepo) Revenue(_ context.Context) (*Revenue, error) {
	return r.revenue, nil
}

func (r *fakeAnalyticsRepo) CategoryBreakdown(_ context.Context) ([]CategoryStat, error) {
	return r.byCat, nil
}

func (r *fakeAnalyticsRepo) MonthlyRevenue(_ context.Context, since time.Time) ([]MonthlyBucket, error) {
	r.since = since
	return r.monthly, nil
}

func TestDashboardEmptyDatabase(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	svc := NewAnalyticsService(repo)

	data, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Counts{}, data.Counts)
	assert.Equal(t, Revenue{}, data.Revenue)
	assert.NotNil(t, data.CategoryBreakdown)
	assert.Empty(t, data.CategoryBreakdown)
	assert.NotNil(t, data.MonthlyRevenue)
	assert.Empty(t, data.MonthlyRevenue)
}

func TestDashboardAssembles(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		counts:  Counts{Children: 12, Donations: 40, Volunteers: 7, Sponsors: 3},
		revenue: &Revenue{TotalRevenue: 12000, AvgDonation: 300},
		byCat:   []CategoryStat{{Category: "Education", Total: 8000, Count: 25}},
		monthly: []MonthlyBucket{{ID: MonthKey{Month: 3, Year: 2026}, Total: 2000}},
	}
	svc := NewAnalyticsService(repo)

	data, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), data.Counts.Children)
	assert.Equal(t, 12000.0, data.Revenue.TotalRevenue)
	require.Len(t, data.CategoryBreakdown, 1)
	assert.Equal(t, "Education", data.CategoryBreakdown[0].Category)
	require.Len(t, data.MonthlyRevenue, 1)
	assert.Equal(t, 2026, data.MonthlyRevenue[0].ID.Year)
}

// The category list serializes under "categories"; dashboard clients key on
// that name.
func TestDashboardPayloadKeys(t *testing.T) {
	svc := NewAnalyticsService(&fakeAnalyticsRepo{
		byCat: []CategoryStat{{Category: "Health", Total: 150, Count: 2}},
	})

	data, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	raw, err := json.Marshal(data)
	require.NoError(t, err)

	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Contains(t, payload, "counts")
	assert.Contains(t, payload, "revenue")
	assert.Contains(t, payload, "categories")
	assert.Contains(t, payload, "monthlyRevenue")
	assert.NotContains(t, payload, "categoryBreakdown")
}

func TestDashboardMonthlyWindow(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	svc := NewAnalyticsService(repo)

	_, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	want := time.Now().AddDate(0, -6, 0)
	assert.WithinDuration(t, want, repo.since, time.Minute)
}
