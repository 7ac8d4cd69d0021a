package sponsors

import (
	"context"
	"time"

	"ZamCare/pkg/apperr"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type Repository interface {
	Insert(ctx context.Context, sponsor *Sponsor) error
	FindAll(ctx context.Context) ([]*Sponsor, error)
}

type SponsorService struct {
	repo   Repository
	logger *zap.Logger
}

func NewSponsorService(repo Repository, logger *zap.Logger) *SponsorService {
	return &SponsorService{repo: repo, logger: logger}
}

func (s *SponsorService) List(ctx context.Context) ([]*Sponsor, error) {
	return s.repo.FindAll(ctx)
}

func (s *SponsorService) Create(ctx context.Context, req CreateSponsorRequest) (*Sponsor, error) {
	var fields []string
	if req.Name == "" {
		fields = append(fields, "name")
	}
	if req.Email == "" {
		fields = append(fields, "email")
	}
	if len(fields) > 0 {
		return nil, apperr.Invalid("Missing required fields", fields...)
	}
	if req.Frequency != "" {
		valid := false
		for _, f := range frequencies {
			if req.Frequency == f {
				valid = true
			}
		}
		if !valid {
			return nil, apperr.Invalid("Invalid frequency", "frequency")
		}
	}

	sponsor := &Sponsor{
		ID:        primitive.NewObjectID(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Company:   req.Company,
		Amount:    req.Amount,
		Frequency: req.Frequency,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Insert(ctx, sponsor); err != nil {
		return nil, err
	}
	return sponsor, nil
}
