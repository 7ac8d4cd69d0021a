package sponsors

import (
	"context"
	"testing"

	"ZamCare/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSponsorRepo struct {
	sponsors []*Sponsor
}

func (r *fakeSponsorRepo) Insert(_ context.Context, sponsor *Sponsor) error {
	r.sponsors = append(r.sponsors, sponsor)
	return nil
}

func (r *fakeSponsorRepo) FindAll(_ context.Context) ([]*Sponsor, error) {
	return r.sponsors, nil
}

func TestCreateSponsor(t *testing.T) {
	repo := &fakeSponsorRepo{}
	svc := NewSponsorService(repo, zap.NewNop())

	sponsor, err := svc.Create(context.Background(), CreateSponsorRequest{
		Name: "Copperbelt Mining Ltd", Email: "csr@cbmining.example", Frequency: "monthly", Amount: 1000,
	})
	require.NoError(t, err)
	assert.Equal(t, "monthly", sponsor.Frequency)
	assert.Len(t, repo.sponsors, 1)
}

func TestCreateSponsorValidation(t *testing.T) {
	svc := NewSponsorService(&fakeSponsorRepo{}, zap.NewNop())

	_, err := svc.Create(context.Background(), CreateSponsorRequest{})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Validation))
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "email")

	_, err = svc.Create(context.Background(), CreateSponsorRequest{
		Name: "x", Email: "x@example.com", Frequency: "weekly",
	})
	assert.True(t, apperr.IsKind(err, apperr.Validation))
}

func TestCreateSponsorFrequencyOptional(t *testing.T) {
	svc := NewSponsorService(&fakeSponsorRepo{}, zap.NewNop())

	sponsor, err := svc.Create(context.Background(), CreateSponsorRequest{
		Name: "x", Email: "x@example.com",
	})
	require.NoError(t, err)
	assert.Empty(t, sponsor.Frequency)
}
