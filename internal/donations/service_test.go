package donations

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"ZamCare/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeDonationRepo struct {
	donations []*Donation
	overall   *OverallStats
	byCat     []CategoryTotal
	insertErr error
}

func (r *fakeDonationRepo) Insert(_ context.Context, donation *Donation) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.donations = append(r.donations, donation)
	return nil
}

func (r *fakeDonationRepo) FindAllWithDonor(_ context.Context) ([]*DonationWithDonor, error) {
	return []*DonationWithDonor{}, nil
}

func (r *fakeDonationRepo) OverallStats(_ context.Context) (*OverallStats, error) {
	return r.overall, nil
}

func (r *fakeDonationRepo) CategoryStats(_ context.Context) ([]CategoryTotal, error) {
	return r.byCat, nil
}

type recordingNotifier struct {
	calls []string
}

func (n *recordingNotifier) Notify(_ context.Context, _ primitive.ObjectID, title, _, _, _ string) {
	n.calls = append(n.calls, title)
}

func floatPtr(v float64) *float64 { return &v }

var txnPattern = regexp.MustCompile(`^TXN-[A-Z0-9]{9}$`)

func TestCreateDonationDefaults(t *testing.T) {
	repo := &fakeDonationRepo{}
	notifier := &recordingNotifier{}
	svc := NewDonationService(repo, notifier, zap.NewNop())

	donation, err := svc.Create(context.Background(), CreateDonationRequest{Amount: floatPtr(150)},
		primitive.NewObjectID(), "Chileshe Banda")
	require.NoError(t, err)
	assert.Equal(t, "ZMW", donation.Currency)
	assert.Equal(t, "Completed", donation.Status)
	assert.Equal(t, "One-time", donation.Type)
	assert.Equal(t, "General", donation.Category)
	assert.Equal(t, "Chileshe Banda", donation.DonorName)
	assert.Regexp(t, txnPattern, donation.TransactionID)
	assert.Equal(t, []string{"Donation Received"}, notifier.calls)
}

func TestCreateDonationRequiresAmount(t *testing.T) {
	svc := NewDonationService(&fakeDonationRepo{}, &recordingNotifier{}, zap.NewNop())

	_, err := svc.Create(context.Background(), CreateDonationRequest{}, primitive.NewObjectID(), "x")
	assert.True(t, apperr.IsKind(err, apperr.Validation))
}

func TestCreateDonationAnonymousHidesName(t *testing.T) {
	svc := NewDonationService(&fakeDonationRepo{}, &recordingNotifier{}, zap.NewNop())

	donation, err := svc.Create(context.Background(),
		CreateDonationRequest{Amount: floatPtr(50), IsAnonymous: true},
		primitive.NewObjectID(), "Chileshe Banda")
	require.NoError(t, err)
	assert.Empty(t, donation.DonorName)
	assert.True(t, donation.IsAnonymous)
}

func TestCreateDonationIgnoresCallerTransactionID(t *testing.T) {
	svc := NewDonationService(&fakeDonationRepo{}, &recordingNotifier{}, zap.NewNop())

	donation, err := svc.Create(context.Background(),
		CreateDonationRequest{Amount: floatPtr(50), TransactionID: "TXN-FORGED123"},
		primitive.NewObjectID(), "x")
	require.NoError(t, err)
	assert.NotEqual(t, "TXN-FORGED123", donation.TransactionID)
	assert.Regexp(t, txnPattern, donation.TransactionID)
}

func TestCreateDonationInvalidEnums(t *testing.T) {
	svc := NewDonationService(&fakeDonationRepo{}, &recordingNotifier{}, zap.NewNop())

	_, err := svc.Create(context.Background(),
		CreateDonationRequest{Amount: floatPtr(50), Status: "Refunded", Category: "Crypto"},
		primitive.NewObjectID(), "x")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Validation))
	assert.Contains(t, err.Error(), "status")
	assert.Contains(t, err.Error(), "category")
}

func TestCreateDonationInsertErrorSkipsNotification(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := NewDonationService(&fakeDonationRepo{insertErr: errors.New("down")}, notifier, zap.NewNop())

	_, err := svc.Create(context.Background(), CreateDonationRequest{Amount: floatPtr(50)},
		primitive.NewObjectID(), "x")
	require.Error(t, err)
	assert.Empty(t, notifier.calls)
}

func TestStatsEmptyCollection(t *testing.T) {
	svc := NewDonationService(&fakeDonationRepo{}, &recordingNotifier{}, zap.NewNop())

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, OverallStats{}, stats.Overall)
	assert.NotNil(t, stats.Categories)
	assert.Empty(t, stats.Categories)
}

func TestStatsPassesThrough(t *testing.T) {
	repo := &fakeDonationRepo{
		overall: &OverallStats{TotalAmount: 900, AvgDonation: 300, MinDonation: 100, MaxDonation: 500, Count: 3},
		byCat:   []CategoryTotal{{Category: "Education", Total: 400}, {Category: "General", Total: 500}},
	}
	svc := NewDonationService(repo, &recordingNotifier{}, zap.NewNop())

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Overall.Count)
	assert.Len(t, stats.Categories, 2)
}

func TestTransactionIDsDiffer(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := newTransactionID()
		assert.Regexp(t, txnPattern, id)
		assert.False(t, seen[id])
		seen[id] = true
	}
}
