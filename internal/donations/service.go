package donations

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ZamCare/pkg/apperr"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type Repository interface {
	Insert(ctx context.Context, donation *Donation) error
	FindAllWithDonor(ctx context.Context) ([]*DonationWithDonor, error)
	OverallStats(ctx context.Context) (*OverallStats, error)
	CategoryStats(ctx context.Context) ([]CategoryTotal, error)
}

// Notifier delivers best-effort in-app notifications. Implementations must
// never return delivery failures to the triggering operation.
type Notifier interface {
	Notify(ctx context.Context, userID primitive.ObjectID, title, message, notifType, link string)
}

type DonationService struct {
	repo     Repository
	notifier Notifier
	logger   *zap.Logger
}

func NewDonationService(repo Repository, notifier Notifier, logger *zap.Logger) *DonationService {
	return &DonationService{repo: repo, notifier: notifier, logger: logger}
}

// newTransactionID derives the simulated payment reference:
// "TXN-" + 9 uppercase alphanumerics.
func newTransactionID() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "TXN-" + raw[:9]
}

func (s *DonationService) List(ctx context.Context) ([]*DonationWithDonor, error) {
	return s.repo.FindAllWithDonor(ctx)
}

func (s *DonationService) Create(ctx context.Context, req CreateDonationRequest, donorID primitive.ObjectID, donorName string) (*Donation, error) {
	if req.Amount == nil {
		return nil, apperr.Invalid("Please add a donation amount", "amount")
	}

	donation := &Donation{
		ID:            primitive.NewObjectID(),
		Donor:         donorID,
		Amount:        *req.Amount,
		Currency:      req.Currency,
		Status:        req.Status,
		Type:          req.Type,
		Category:      req.Category,
		TransactionID: newTransactionID(),
		IsAnonymous:   req.IsAnonymous,
		Notes:         req.Notes,
		CreatedAt:     time.Now(),
	}
	if donation.Currency == "" {
		donation.Currency = "ZMW"
	}
	if donation.Status == "" {
		donation.Status = "Completed"
	}
	if donation.Type == "" {
		donation.Type = "One-time"
	}
	if donation.Category == "" {
		donation.Category = "General"
	}
	if !req.IsAnonymous {
		donation.DonorName = donorName
	}

	var fields []string
	if !isOneOf(donation.Status, donationStatuses) {
		fields = append(fields, "status")
	}
	if !isOneOf(donation.Type, donationTypes) {
		fields = append(fields, "type")
	}
	if !isOneOf(donation.Category, donationCategories) {
		fields = append(fields, "category")
	}
	if len(fields) > 0 {
		return nil, apperr.Invalid("Invalid field values", fields...)
	}

	if err := s.repo.Insert(ctx, donation); err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, donorID, "Donation Received",
		fmt.Sprintf("Thank you for your donation of %.2f %s", donation.Amount, donation.Currency),
		"Donation", "/donations")

	return donation, nil
}

// Stats recomputes the public donation figures on every call. Zero donations
// yield zeroed overall numbers and an empty category list, never an error.
func (s *DonationService) Stats(ctx context.Context) (*Stats, error) {
	overall, err := s.repo.OverallStats(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.repo.CategoryStats(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{Categories: categories}
	if overall != nil {
		stats.Overall = *overall
	}
	if stats.Categories == nil {
		stats.Categories = []CategoryTotal{}
	}
	return stats, nil
}
