package stories

import (
	"context"
	"time"

	"ZamCare/pkg/apperr"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type Repository interface {
	Insert(ctx context.Context, story *Story) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*Story, error)
	FindPublishedWithChild(ctx context.Context) ([]*StoryWithChild, error)
	FindByIDWithChild(ctx context.Context, id primitive.ObjectID) (*StoryWithChild, error)
	Replace(ctx context.Context, story *Story) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type StoryService struct {
	repo   Repository
	logger *zap.Logger
}

func NewStoryService(repo Repository, logger *zap.Logger) *StoryService {
	return &StoryService{repo: repo, logger: logger}
}

func notFound(id string) error {
	return apperr.Newf(apperr.NotFound, "Story not found with id of %s", id)
}

// List returns only published stories; drafts never leave the admin surface.
func (s *StoryService) List(ctx context.Context) ([]*StoryWithChild, error) {
	return s.repo.FindPublishedWithChild(ctx)
}

func (s *StoryService) Get(ctx context.Context, id string) (*StoryWithChild, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, notFound(id)
	}
	story, err := s.repo.FindByIDWithChild(ctx, oid)
	if err != nil {
		return nil, err
	}
	if story == nil {
		return nil, notFound(id)
	}
	return story, nil
}

func (s *StoryService) Create(ctx context.Context, req CreateStoryRequest, author primitive.ObjectID) (*Story, error) {
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
	if len(req.Title) > maxTitleLength {
		return nil, apperr.Invalid("Title cannot be more than 100 characters", "title")
	}

	story := &Story{
		ID:          primitive.NewObjectID(),
		Title:       req.Title,
		Content:     req.Content,
		Author:      author,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		IsPublished: req.IsPublished,
		CreatedAt:   time.Now(),
	}
	if story.Category == "" {
		story.Category = "General"
	}
	if !isOneOf(story.Category, storyCategories) {
		return nil, apperr.Invalid("Invalid category", "category")
	}
	if req.Child != "" {
		childID, err := primitive.ObjectIDFromHex(req.Child)
		if err != nil {
			return nil, apperr.Invalid("Invalid child reference", "child")
		}
		story.Child = &childID
	}

	if err := s.repo.Insert(ctx, story); err != nil {
		return nil, err
	}
	return story, nil
}

func (s *StoryService) Update(ctx context.Context, id string, req UpdateStoryRequest) (*Story, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, notFound(id)
	}
	story, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if story == nil {
		return nil, notFound(id)
	}

	if req.Title != nil {
		if *req.Title == "" || len(*req.Title) > maxTitleLength {
			return nil, apperr.Invalid("Invalid title", "title")
		}
		story.Title = *req.Title
	}
	if req.Content != nil {
		story.Content = *req.Content
	}
	if req.ImageURL != nil {
		story.ImageURL = *req.ImageURL
	}
	if req.Category != nil {
		if !isOneOf(*req.Category, storyCategories) {
			return nil, apperr.Invalid("Invalid category", "category")
		}
		story.Category = *req.Category
	}
	if req.IsPublished != nil {
		story.IsPublished = *req.IsPublished
	}
	if req.Child != nil {
		if *req.Child == "" {
			story.Child = nil
		} else {
			childID, err := primitive.ObjectIDFromHex(*req.Child)
			if err != nil {
				return nil, apperr.Invalid("Invalid child reference", "child")
			}
			story.Child = &childID
		}
	}

	if err := s.repo.Replace(ctx, story); err != nil {
		return nil, err
	}
	return story, nil
}

func (s *StoryService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return notFound(id)
	}
	story, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return err
	}
	if story == nil {
		return notFound(id)
	}
	return s.repo.Delete(ctx, oid)
}
