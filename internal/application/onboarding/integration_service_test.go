package onboarding

import (
	"context"
	"errors"
	"testing"

	"github.com/onboard/backend/internal/domain/onboarding"
	"github.com/onboard/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockIntegrationRepository is a mock implementation of IntegrationRepository
type MockIntegrationRepository struct {
	mock.Mock
}

func (m *MockIntegrationRepository) FindAll(ctx context.Context) ([]onboarding.Integration, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]onboarding.Integration), args.Error(1)
}

func (m *MockIntegrationRepository) FindByID(ctx context.Context, id string) (*onboarding.Integration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*onboarding.Integration), args.Error(1)
}

func (m *MockIntegrationRepository) Create(ctx context.Context, integration *onboarding.Integration) error {
	args := m.Called(ctx, integration)
	return args.Error(0)
}

func (m *MockIntegrationRepository) Update(ctx context.Context, id string, changes onboarding.IntegrationChanges) (*onboarding.Integration, error) {
	args := m.Called(ctx, id, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*onboarding.Integration), args.Error(1)
}

func (m *MockIntegrationRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockIntegrationRepository) AddTask(ctx context.Context, integrationID string, task *onboarding.Task) error {
	args := m.Called(ctx, integrationID, task)
	return args.Error(0)
}

func (m *MockIntegrationRepository) UpdateTask(ctx context.Context, integrationID, taskID string, changes onboarding.TaskChanges) (*onboarding.Task, error) {
	args := m.Called(ctx, integrationID, taskID, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*onboarding.Task), args.Error(1)
}

func (m *MockIntegrationRepository) DeleteTask(ctx context.Context, integrationID, taskID string) error {
	args := m.Called(ctx, integrationID, taskID)
	return args.Error(0)
}

func TestIntegrationService_Create_AppliesDefaults(t *testing.T) {
	repo := new(MockIntegrationRepository)
	service := NewIntegrationService(repo)
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*onboarding.Integration")).Return(nil)

	resp, err := service.Create(ctx, CreateIntegrationRequest{
		Account:          "Acme Health",
		Contact:          "Jane Doe",
		AccountExecutive: "John Smith",
		KickoffDate:      "2026-03-01",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Medium", resp.Priority)
	assert.Equal(t, "New Integrations", resp.Stage)
	assert.NotNil(t, resp.Tasks)
	assert.Empty(t, resp.Tasks)
	assert.Empty(t, resp.IntegrationScopeDocURL)
	repo.AssertExpectations(t)
}

func TestIntegrationService_Create_MissingRequiredField(t *testing.T) {
	repo := new(MockIntegrationRepository)
	service := NewIntegrationService(repo)

	_, err := service.Create(context.Background(), CreateIntegrationRequest{
		Contact:          "Jane Doe",
		AccountExecutive: "John Smith",
		KickoffDate:      "2026-03-01",
	})
	assert.Error(t, err)
	repo.AssertNotCalled(t, "Create")
}

func TestIntegrationService_Create_WithTasks(t *testing.T) {
	repo := new(MockIntegrationRepository)
	service := NewIntegrationService(repo)
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*onboarding.Integration")).Return(nil)

	resp, err := service.Create(ctx, CreateIntegrationRequest{
		Account:          "Acme Health",
		Contact:          "Jane Doe",
		AccountExecutive: "John Smith",
		KickoffDate:      "2026-03-01",
		Priority:         "Highest",
		Tasks: []TaskInput{
			{Title: "Kickoff call", Team: "Sales"},
			{ID: "t-1", Title: "Contract review", Status: "In Progress"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Highest", resp.Priority)
	require.Len(t, resp.Tasks, 2)
	assert.NotEmpty(t, resp.Tasks[0].ID)
	assert.Equal(t, "Not Started", resp.Tasks[0].Status)
	assert.Equal(t, "t-1", resp.Tasks[1].ID)
	assert.Equal(t, "In Progress", resp.Tasks[1].Status)
}

func TestIntegrationService_Update_NotFound(t *testing.T) {
	repo := new(MockIntegrationRepository)
	service := NewIntegrationService(repo)
	ctx := context.Background()

	repo.On("Update", ctx, "missing", mock.Anything).Return(nil, shared.ErrNotFound)

	stage := "Review"
	_, err := service.Update(ctx, "missing", UpdateIntegrationRequest{Stage: &stage})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestIntegrationService_Update_ConvertsChanges(t *testing.T) {
	repo := new(MockIntegrationRepository)
	service := NewIntegrationService(repo)
	ctx := context.Background()

	existing, err := onboarding.NewIntegration("Acme Health", "Jane Doe", "John Smith", "2026-03-01")
	require.NoError(t, err)

	repo.On("Update", ctx, existing.ID, mock.MatchedBy(func(ch onboarding.IntegrationChanges) bool {
		return ch.Stage != nil && *ch.Stage == onboarding.StageInProgress &&
			ch.Account == nil && ch.Tasks == nil
	})).Return(existing, nil)

	stage := "In Progress"
	_, err = service.Update(ctx, existing.ID, UpdateIntegrationRequest{Stage: &stage})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestIntegrationService_Delete_Propagates(t *testing.T) {
	repo := new(MockIntegrationRepository)
	service := NewIntegrationService(repo)
	ctx := context.Background()

	repo.On("Delete", ctx, "abc").Return(shared.ErrNotFound)
	assert.ErrorIs(t, service.Delete(ctx, "abc"), shared.ErrNotFound)

	repo.On("Delete", ctx, "def").Return(errors.New("connection reset"))
	assert.EqualError(t, service.Delete(ctx, "def"), "connection reset")
}

func TestIntegrationService_AddTask_Defaults(t *testing.T) {
	repo := new(MockIntegrationRepository)
	service := NewIntegrationService(repo)
	ctx := context.Background()

	repo.On("AddTask", ctx, "int-1", mock.AnythingOfType("*onboarding.Task")).Return(nil)

	resp, err := service.AddTask(ctx, "int-1", CreateTaskRequest{Title: "Data mapping"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Not Started", resp.Status)
	assert.Equal(t, "Operations", resp.Team)
}

func TestIntegrationService_UpdateTask(t *testing.T) {
	repo := new(MockIntegrationRepository)
	service := NewIntegrationService(repo)
	ctx := context.Background()

	updated := onboarding.NewTask("Data mapping")
	updated.Status = onboarding.TaskCompleted

	repo.On("UpdateTask", ctx, "int-1", updated.ID, mock.MatchedBy(func(ch onboarding.TaskChanges) bool {
		return ch.Status != nil && *ch.Status == onboarding.TaskCompleted && ch.Title == nil
	})).Return(updated, nil)

	status := "Completed"
	resp, err := service.UpdateTask(ctx, "int-1", updated.ID, UpdateTaskRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "Completed", resp.Status)
	repo.AssertExpectations(t)
}
