package children

import (
	"context"
	"time"

	"ZamCare/pkg/apperr"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type Repository interface {
	Insert(ctx context.Context, child *Child) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*Child, error)
	FindAll(ctx context.Context) ([]*Child, error)
	Replace(ctx context.Context, child *Child) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type ChildService struct {
	repo   Repository
	logger *zap.Logger
}

func NewChildService(repo Repository, logger *zap.Logger) *ChildService {
	return &ChildService{repo: repo, logger: logger}
}

// parseID maps malformed hex to NotFound: an unparseable ID can never
// resolve to a record.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperr.Newf(apperr.NotFound, "Child not found with id of %s", id)
	}
	return oid, nil
}

func (s *ChildService) List(ctx context.Context) ([]*Child, error) {
	return s.repo.FindAll(ctx)
}

func (s *ChildService) Get(ctx context.Context, id string) (*Child, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	child, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if child == nil {
		return nil, apperr.Newf(apperr.NotFound, "Child not found with id of %s", id)
	}
	return child, nil
}

func (s *ChildService) Create(ctx context.Context, req CreateChildRequest) (*Child, error) {
	var fields []string
	if req.Name == "" {
		fields = append(fields, "name")
	}
	if req.Age == nil {
		fields = append(fields, "age")
	}
	if len(fields) > 0 {
		return nil, apperr.Invalid("Missing required fields", fields...)
	}

	child := &Child{
		ID:              primitive.NewObjectID(),
		Name:            req.Name,
		Age:             *req.Age,
		Gender:          req.Gender,
		Background:      req.Background,
		Needs:           req.Needs,
		Hobbies:         req.Hobbies,
		School:          req.School,
		HealthStatus:    req.HealthStatus,
		PhotoID:         req.PhotoID,
		PhotoURL:        req.PhotoURL,
		Status:          req.Status,
		SponsorshipCost: defaultSponsorshipCost,
		ProgressReports: []ProgressReport{},
		CreatedAt:       time.Now(),
	}
	if req.SponsorshipCost != nil {
		child.SponsorshipCost = *req.SponsorshipCost
	}
	applyChildDefaults(child)
	if err := validateChild(child); err != nil {
		return nil, err
	}

	if err := s.repo.Insert(ctx, child); err != nil {
		return nil, err
	}
	return child, nil
}

func (s *ChildService) Update(ctx context.Context, id string, req UpdateChildRequest) (*Child, error) {
	child, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		child.Name = *req.Name
	}
	if req.Age != nil {
		child.Age = *req.Age
	}
	if req.Gender != nil {
		child.Gender = *req.Gender
	}
	if req.Background != nil {
		child.Background = *req.Background
	}
	if req.Needs != nil {
		child.Needs = *req.Needs
	}
	if req.Hobbies != nil {
		child.Hobbies = *req.Hobbies
	}
	if req.School != nil {
		child.School = *req.School
	}
	if req.HealthStatus != nil {
		child.HealthStatus = *req.HealthStatus
	}
	if req.PhotoID != nil {
		child.PhotoID = *req.PhotoID
	}
	if req.PhotoURL != nil {
		child.PhotoURL = *req.PhotoURL
	}
	if req.Status != nil {
		child.Status = *req.Status
	}
	if req.SponsorshipCost != nil {
		child.SponsorshipCost = *req.SponsorshipCost
	}
	if err := validateChild(child); err != nil {
		return nil, err
	}

	if err := s.repo.Replace(ctx, child); err != nil {
		return nil, err
	}
	return child, nil
}

func (s *ChildService) Delete(ctx context.Context, id string) error {
	child, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, child.ID)
}

// AddProgressReport prepends the new report so the list stays
// most-recent-first, stamps the author, and returns the full list.
func (s *ChildService) AddProgressReport(ctx context.Context, id string, req AddReportRequest, author primitive.ObjectID) ([]ProgressReport, error) {
	child, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var fields []string
	if req.Title == "" {
		fields = append(fields, "title")
	}
	if req.Content == "" {
		fields = append(fields, "content")
	}
	if len(fields) > 0 {
		return nil, apperr.Invalid("Missing required fields", fields...)
	}
	category := req.Category
	if category == "" {
		category = "Personal"
	}
	if !isOneOf(category, reportCategories) {
		return nil, apperr.Invalid("Invalid report category", "category")
	}

	report := ProgressReport{
		Date:     time.Now(),
		Title:    req.Title,
		Content:  req.Content,
		Category: category,
		Author:   author,
	}
	child.ProgressReports = append([]ProgressReport{report}, child.ProgressReports...)

	if err := s.repo.Replace(ctx, child); err != nil {
		return nil, err
	}
	return child.ProgressReports, nil
}

func applyChildDefaults(child *Child) {
	if child.Gender == "" {
		child.Gender = "Unknown"
	}
	if child.HealthStatus == "" {
		child.HealthStatus = "Good"
	}
	if child.Status == "" {
		child.Status = "Available"
	}
	if child.School.AcademicPerformance == "" && child.School.Name != "" {
		child.School.AcademicPerformance = "Average"
	}
}

func validateChild(child *Child) error {
	var fields []string
	if !isOneOf(child.Gender, genders) {
		fields = append(fields, "gender")
	}
	if !isOneOf(child.HealthStatus, healthStatuses) {
		fields = append(fields, "healthStatus")
	}
	if !isOneOf(child.Status, childStatuses) {
		fields = append(fields, "status")
	}
	if child.School.AcademicPerformance != "" && !isOneOf(child.School.AcademicPerformance, academicPerformance) {
		fields = append(fields, "school.academicPerformance")
	}
	if len(fields) > 0 {
		return apperr.Invalid("Invalid field values", fields...)
	}
	return nil
}
