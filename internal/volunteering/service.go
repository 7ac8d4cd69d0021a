package volunteering

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"ZamCare/pkg/apperr"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type Repository interface {
	InsertTask(ctx context.Context, task *Task) error
	FindTaskByID(ctx context.Context, id primitive.ObjectID) (*Task, error)
	FindAllTasksWithVolunteers(ctx context.Context) ([]*TaskWithVolunteers, error)
	FindTaskByIDWithVolunteers(ctx context.Context, id primitive.ObjectID) (*TaskWithVolunteers, error)
	ReplaceTask(ctx context.Context, task *Task) error
	AddVolunteerToTask(ctx context.Context, taskID, volunteerID primitive.ObjectID) error

	InsertVolunteer(ctx context.Context, volunteer *Volunteer) error
	FindVolunteerByID(ctx context.Context, id primitive.ObjectID) (*Volunteer, error)
	FindAllVolunteersWithTasks(ctx context.Context) ([]*VolunteerWithTasks, error)
	FindVolunteerByIDWithTasks(ctx context.Context, id primitive.ObjectID) (*VolunteerWithTasks, error)
	ReplaceVolunteer(ctx context.Context, volunteer *Volunteer) error
	AddTaskToVolunteer(ctx context.Context, volunteerID, taskID primitive.ObjectID) error
}

// Notifier delivers best-effort in-app notifications.
type Notifier interface {
	Notify(ctx context.Context, userID primitive.ObjectID, title, message, notifType, link string)
}

// Mailer sends best-effort email; failures are logged, never propagated.
type Mailer interface {
	Send(to, subject, html string) error
}

type VolunteeringService struct {
	repo     Repository
	notifier Notifier
	mailer   Mailer
	logger   *zap.Logger
}

func NewVolunteeringService(repo Repository, notifier Notifier, mailer Mailer, logger *zap.Logger) *VolunteeringService {
	return &VolunteeringService{repo: repo, notifier: notifier, mailer: mailer, logger: logger}
}

func taskNotFound(id string) error {
	return apperr.Newf(apperr.NotFound, "Task not found with id of %s", id)
}

func volunteerNotFound() error {
	return apperr.New(apperr.NotFound, "Volunteer not found")
}

// Task operations

func (s *VolunteeringService) ListTasks(ctx context.Context) ([]*TaskWithVolunteers, error) {
	return s.repo.FindAllTasksWithVolunteers(ctx)
}

func (s *VolunteeringService) GetTask(ctx context.Context, id string) (*TaskWithVolunteers, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, taskNotFound(id)
	}
	task, err := s.repo.FindTaskByIDWithVolunteers(ctx, oid)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, taskNotFound(id)
	}
	return task, nil
}

func (s *VolunteeringService) CreateTask(ctx context.Context, req CreateTaskRequest) (*Task, error) {
	var fields []string
	if req.Title == "" {
		fields = append(fields, "title")
	}
	if req.Description == "" {
		fields = append(fields, "description")
	}
	if req.Date == nil {
		fields = append(fields, "date")
	}
	if len(fields) > 0 {
		return nil, apperr.Invalid("Missing required fields", fields...)
	}

	task := &Task{
		ID:                 primitive.NewObjectID(),
		Title:              req.Title,
		Description:        req.Description,
		Location:           req.Location,
		Date:               *req.Date,
		Duration:           req.Duration,
		Difficulty:         req.Difficulty,
		AssignedVolunteers: []primitive.ObjectID{},
		Status:             req.Status,
		Category:           req.Category,
		CreatedAt:          time.Now(),
	}
	if task.Difficulty == "" {
		task.Difficulty = "Medium"
	}
	if task.Status == "" {
		task.Status = "Open"
	}
	if task.Category == "" {
		task.Category = "General"
	}
	if err := validateTask(task); err != nil {
		return nil, err
	}

	if err := s.repo.InsertTask(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *VolunteeringService) UpdateTask(ctx context.Context, id string, req UpdateTaskRequest) (*Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, taskNotFound(id)
	}
	task, err := s.repo.FindTaskByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, taskNotFound(id)
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Location != nil {
		task.Location = *req.Location
	}
	if req.Date != nil {
		task.Date = *req.Date
	}
	if req.Duration != nil {
		task.Duration = *req.Duration
	}
	if req.Difficulty != nil {
		task.Difficulty = *req.Difficulty
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.Category != nil {
		task.Category = *req.Category
	}
	if err := validateTask(task); err != nil {
		return nil, err
	}

	if err := s.repo.ReplaceTask(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// AssignVolunteer links the task and volunteer in both mirror arrays.
// Assigning an already-assigned pair is a no-op, not an error.
func (s *VolunteeringService) AssignVolunteer(ctx context.Context, taskID, volunteerID string) (*Task, error) {
	taskOID, taskErr := primitive.ObjectIDFromHex(taskID)
	volOID, volErr := primitive.ObjectIDFromHex(volunteerID)
	if taskErr != nil || volErr != nil {
		return nil, apperr.New(apperr.NotFound, "Task or Volunteer not found")
	}

	task, err := s.repo.FindTaskByID(ctx, taskOID)
	if err != nil {
		return nil, err
	}
	volunteer, err := s.repo.FindVolunteerByID(ctx, volOID)
	if err != nil {
		return nil, err
	}
	if task == nil || volunteer == nil {
		return nil, apperr.New(apperr.NotFound, "Task or Volunteer not found")
	}

	if err := s.repo.AddVolunteerToTask(ctx, taskOID, volOID); err != nil {
		return nil, err
	}
	if err := s.repo.AddTaskToVolunteer(ctx, volOID, taskOID); err != nil {
		return nil, err
	}

	if volunteer.User != nil {
		s.notifier.Notify(ctx, *volunteer.User, "New Task Assignment",
			fmt.Sprintf("You have been assigned to the task %q", task.Title),
			"Volunteer", "/tasks/"+taskID)
	}

	updated, err := s.repo.FindTaskByID(ctx, taskOID)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Volunteer operations

func (s *VolunteeringService) ListVolunteers(ctx context.Context) ([]*VolunteerWithTasks, error) {
	return s.repo.FindAllVolunteersWithTasks(ctx)
}

func (s *VolunteeringService) GetVolunteer(ctx context.Context, id string) (*VolunteerWithTasks, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, volunteerNotFound()
	}
	volunteer, err := s.repo.FindVolunteerByIDWithTasks(ctx, oid)
	if err != nil {
		return nil, err
	}
	if volunteer == nil {
		return nil, volunteerNotFound()
	}
	return volunteer, nil
}

// CreateVolunteer handles the public application form. A logged-in
// applicant gets linked to their account; the acknowledgement email is
// best-effort and never fails the signup.
func (s *VolunteeringService) CreateVolunteer(ctx context.Context, req CreateVolunteerRequest, userID *primitive.ObjectID) (*Volunteer, error) {
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

	volunteer := &Volunteer{
		ID:            primitive.NewObjectID(),
		User:          userID,
		Name:          req.Name,
		Email:         req.Email,
		Message:       req.Message,
		Phone:         req.Phone,
		Skills:        req.Skills,
		Availability:  req.Availability,
		Interests:     req.Interests,
		Status:        "Pending",
		AssignedTasks: []primitive.ObjectID{},
		TotalHours:    0,
		CreatedAt:     time.Now(),
	}
	if err := s.repo.InsertVolunteer(ctx, volunteer); err != nil {
		return nil, err
	}

	if err := s.mailer.Send(volunteer.Email, "Thank you for volunteering",
		fmt.Sprintf("<p>Hi %s, we received your volunteer application and will be in touch soon.</p>", volunteer.Name)); err != nil {
		s.logger.Warn("Volunteer acknowledgement email failed", zap.Error(err), zap.String("email", volunteer.Email))
	}

	return volunteer, nil
}

func (s *VolunteeringService) UpdateVolunteer(ctx context.Context, id string, req UpdateVolunteerRequest) (*Volunteer, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, volunteerNotFound()
	}
	volunteer, err := s.repo.FindVolunteerByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if volunteer == nil {
		return nil, volunteerNotFound()
	}

	if req.Name != nil {
		volunteer.Name = *req.Name
	}
	if req.Email != nil {
		volunteer.Email = *req.Email
	}
	if req.Message != nil {
		volunteer.Message = *req.Message
	}
	if req.Phone != nil {
		volunteer.Phone = *req.Phone
	}
	if req.Skills != nil {
		volunteer.Skills = *req.Skills
	}
	if req.Availability != nil {
		volunteer.Availability = *req.Availability
	}
	if req.Interests != nil {
		volunteer.Interests = *req.Interests
	}
	if req.Status != nil {
		if !isOneOf(*req.Status, volunteerStatuses) {
			return nil, apperr.Invalid("Invalid status", "status")
		}
		volunteer.Status = *req.Status
	}

	if err := s.repo.ReplaceVolunteer(ctx, volunteer); err != nil {
		return nil, err
	}
	return volunteer, nil
}

// LogHours adds the delta to the volunteer's running total. Negative deltas
// are allowed as corrections; the value just has to parse as a finite number.
func (s *VolunteeringService) LogHours(ctx context.Context, id, hours string) (float64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, volunteerNotFound()
	}
	volunteer, err := s.repo.FindVolunteerByID(ctx, oid)
	if err != nil {
		return 0, err
	}
	if volunteer == nil {
		return 0, volunteerNotFound()
	}

	delta, err := strconv.ParseFloat(hours, 64)
	if err != nil || math.IsNaN(delta) || math.IsInf(delta, 0) {
		return 0, apperr.Invalid("Hours must be a number", "hours")
	}

	volunteer.TotalHours += delta
	if err := s.repo.ReplaceVolunteer(ctx, volunteer); err != nil {
		return 0, err
	}
	return volunteer.TotalHours, nil
}

func validateTask(task *Task) error {
	var fields []string
	if !isOneOf(task.Difficulty, taskDifficulties) {
		fields = append(fields, "difficulty")
	}
	if !isOneOf(task.Status, taskStatuses) {
		fields = append(fields, "status")
	}
	if !isOneOf(task.Category, taskCategories) {
		fields = append(fields, "category")
	}
	if len(fields) > 0 {
		return apperr.Invalid("Invalid field values", fields...)
	}
	return nil
}
