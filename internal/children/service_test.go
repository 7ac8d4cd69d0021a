package children

import (
	"context"
	"testing"

	"ZamCare/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeChildRepo struct {
	children map[primitive.ObjectID]*Child
}

func newFakeChildRepo() *fakeChildRepo {
	return &fakeChildRepo{children: map[primitive.ObjectID]*Child{}}
}

func (r *fakeChildRepo) Insert(_ context.Context, child *Child) error {
	copied := *child
	r.children[child.ID] = &copied
	return nil
}

func (r *fakeChildRepo) FindByID(_ context.Context, id primitive.ObjectID) (*Child, error) {
	child, ok := r.children[id]
	if !ok {
		return nil, nil
	}
	copied := *child
	return &copied, nil
}

func (r *fakeChildRepo) FindAll(_ context.Context) ([]*Child, error) {
	out := []*Child{}
	for _, c := range r.children {
		copied := *c
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeChildRepo) Replace(_ context.Context, child *Child) error {
	copied := *child
	r.children[child.ID] = &copied
	return nil
}

func (r *fakeChildRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(r.children, id)
	return nil
}

func newTestChildService() (*ChildService, *fakeChildRepo) {
	repo := newFakeChildRepo()
	return NewChildService(repo, zap.NewNop()), repo
}

func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestCreateChildDefaults(t *testing.T) {
	svc, _ := newTestChildService()

	child, err := svc.Create(context.Background(), CreateChildRequest{Name: "Mutale", Age: intPtr(9)})
	require.NoError(t, err)
	assert.Equal(t, "Unknown", child.Gender)
	assert.Equal(t, "Good", child.HealthStatus)
	assert.Equal(t, "Available", child.Status)
	assert.Equal(t, float64(500), child.SponsorshipCost)
	assert.NotNil(t, child.ProgressReports)
	assert.Empty(t, child.ProgressReports)
}

func TestCreateChildMissingFields(t *testing.T) {
	svc, _ := newTestChildService()

	_, err := svc.Create(context.Background(), CreateChildRequest{})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Validation))
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "age")
}

func TestCreateChildInvalidEnum(t *testing.T) {
	svc, _ := newTestChildService()

	_, err := svc.Create(context.Background(), CreateChildRequest{
		Name: "Mutale", Age: intPtr(9), Gender: "Other",
	})
	assert.True(t, apperr.IsKind(err, apperr.Validation))
}

func TestCreateChildAcademicDefaultOnlyWithSchool(t *testing.T) {
	svc, _ := newTestChildService()

	withSchool, err := svc.Create(context.Background(), CreateChildRequest{
		Name: "Mutale", Age: intPtr(9), School: School{Name: "Kalingalinga Primary"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Average", withSchool.School.AcademicPerformance)

	withoutSchool, err := svc.Create(context.Background(), CreateChildRequest{Name: "Luyando", Age: intPtr(7)})
	require.NoError(t, err)
	assert.Empty(t, withoutSchool.School.AcademicPerformance)
}

func TestGetChildBadID(t *testing.T) {
	svc, _ := newTestChildService()

	_, err := svc.Get(context.Background(), "not-a-hex-id")
	assert.True(t, apperr.IsKind(err, apperr.NotFound))

	_, err = svc.Get(context.Background(), primitive.NewObjectID().Hex())
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}

func TestUpdateChildMergesOnlyProvidedFields(t *testing.T) {
	svc, _ := newTestChildService()

	child, err := svc.Create(context.Background(), CreateChildRequest{Name: "Mutale", Age: intPtr(9)})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), child.ID.Hex(), UpdateChildRequest{
		Status:          strPtr("Sponsored"),
		SponsorshipCost: floatPtr(650),
	})
	require.NoError(t, err)
	assert.Equal(t, "Mutale", updated.Name)
	assert.Equal(t, 9, updated.Age)
	assert.Equal(t, "Sponsored", updated.Status)
	assert.Equal(t, float64(650), updated.SponsorshipCost)
}

func TestDeleteChild(t *testing.T) {
	svc, repo := newTestChildService()

	child, err := svc.Create(context.Background(), CreateChildRequest{Name: "Mutale", Age: intPtr(9)})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), child.ID.Hex()))
	assert.Empty(t, repo.children)

	err = svc.Delete(context.Background(), child.ID.Hex())
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}

func TestAddProgressReportPrepends(t *testing.T) {
	svc, _ := newTestChildService()
	author := primitive.NewObjectID()

	child, err := svc.Create(context.Background(), CreateChildRequest{Name: "Mutale", Age: intPtr(9)})
	require.NoError(t, err)

	first, err := svc.AddProgressReport(context.Background(), child.ID.Hex(),
		AddReportRequest{Title: "Term 1", Content: "Settling in well"}, author)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, "Personal", first[0].Category)
	assert.Equal(t, author, first[0].Author)

	second, err := svc.AddProgressReport(context.Background(), child.ID.Hex(),
		AddReportRequest{Title: "Term 2", Content: "Top of the class", Category: "Academic"}, author)
	require.NoError(t, err)
	require.Len(t, second, 2)
	assert.Equal(t, "Term 2", second[0].Title)
	assert.Equal(t, "Term 1", second[1].Title)
}

func TestAddProgressReportValidation(t *testing.T) {
	svc, _ := newTestChildService()
	author := primitive.NewObjectID()

	child, err := svc.Create(context.Background(), CreateChildRequest{Name: "Mutale", Age: intPtr(9)})
	require.NoError(t, err)

	_, err = svc.AddProgressReport(context.Background(), child.ID.Hex(), AddReportRequest{}, author)
	assert.True(t, apperr.IsKind(err, apperr.Validation))

	_, err = svc.AddProgressReport(context.Background(), child.ID.Hex(),
		AddReportRequest{Title: "x", Content: "y", Category: "Gossip"}, author)
	assert.True(t, apperr.IsKind(err, apperr.Validation))
}
