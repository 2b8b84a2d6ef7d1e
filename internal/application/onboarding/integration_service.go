package onboarding

import (
	"context"

	"github.com/onboard/backend/internal/domain/onboarding"
)

// IntegrationService handles integration and task business operations
type IntegrationService struct {
	repo onboarding.IntegrationRepository
}

// NewIntegrationService creates a new IntegrationService
func NewIntegrationService(repo onboarding.IntegrationRepository) *IntegrationService {
	return &IntegrationService{repo: repo}
}

// List returns all integrations ordered by priority then recency
func (s *IntegrationService) List(ctx context.Context) ([]IntegrationResponse, error) {
	integrations, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]IntegrationResponse, len(integrations))
	for i := range integrations {
		responses[i] = ToIntegrationResponse(&integrations[i])
	}
	return responses, nil
}

// GetByID retrieves a single integration with its tasks
func (s *IntegrationService) GetByID(ctx context.Context, id string) (*IntegrationResponse, error) {
	integration, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToIntegrationResponse(integration)
	return &response, nil
}

// Create creates a new integration, applying defaults for anything the
// caller left out
func (s *IntegrationService) Create(ctx context.Context, req CreateIntegrationRequest) (*IntegrationResponse, error) {
	integration, err := onboarding.NewIntegration(req.Account, req.Contact, req.AccountExecutive, req.KickoffDate)
	if err != nil {
		return nil, err
	}

	if req.IntegrationType != "" {
		integration.IntegrationType = onboarding.IntegrationType(req.IntegrationType)
	}
	if req.Priority != "" {
		integration.Priority = onboarding.Priority(req.Priority)
	}
	if req.Stage != "" {
		integration.Stage = onboarding.Stage(req.Stage)
	}
	integration.IntegrationScopeDocURL = req.IntegrationScopeDocURL
	integration.AttioRecordID = req.AttioRecordID
	integration.AttioAccountURL = req.AttioAccountURL
	if len(req.Tasks) > 0 {
		integration.Tasks = toDomainTasks(req.Tasks)
	}

	if err := s.repo.Create(ctx, integration); err != nil {
		return nil, err
	}

	response := ToIntegrationResponse(integration)
	return &response, nil
}

// Update merges a partial update into an existing integration. A task
// list in the request replaces the stored task set wholesale.
func (s *IntegrationService) Update(ctx context.Context, id string, req UpdateIntegrationRequest) (*IntegrationResponse, error) {
	changes := onboarding.IntegrationChanges{
		Account:                req.Account,
		Contact:                req.Contact,
		AccountExecutive:       req.AccountExecutive,
		IntegrationScopeDocURL: req.IntegrationScopeDocURL,
		AttioRecordID:          req.AttioRecordID,
		AttioAccountURL:        req.AttioAccountURL,
		KickoffDate:            req.KickoffDate,
	}
	if req.IntegrationType != nil {
		t := onboarding.IntegrationType(*req.IntegrationType)
		changes.IntegrationType = &t
	}
	if req.Priority != nil {
		p := onboarding.Priority(*req.Priority)
		changes.Priority = &p
	}
	if req.Stage != nil {
		st := onboarding.Stage(*req.Stage)
		changes.Stage = &st
	}
	if req.Tasks != nil {
		tasks := toDomainTasks(*req.Tasks)
		changes.Tasks = &tasks
	}

	integration, err := s.repo.Update(ctx, id, changes)
	if err != nil {
		return nil, err
	}

	response := ToIntegrationResponse(integration)
	return &response, nil
}

// Delete removes an integration and all of its tasks
func (s *IntegrationService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// AddTask appends a new task to an integration
func (s *IntegrationService) AddTask(ctx context.Context, integrationID string, req CreateTaskRequest) (*TaskResponse, error) {
	task := onboarding.NewTask(req.Title)
	task.Description = req.Description
	task.AssignedTo = req.AssignedTo
	task.Deadline = req.Deadline
	if req.Status != "" {
		task.Status = onboarding.TaskStatus(req.Status)
	}
	if req.Team != "" {
		task.Team = onboarding.Team(req.Team)
	}

	if err := s.repo.AddTask(ctx, integrationID, task); err != nil {
		return nil, err
	}

	response := ToTaskResponse(task)
	return &response, nil
}

// UpdateTask merges a partial update into a single task
func (s *IntegrationService) UpdateTask(ctx context.Context, integrationID, taskID string, req UpdateTaskRequest) (*TaskResponse, error) {
	changes := onboarding.TaskChanges{
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		Deadline:    req.Deadline,
	}
	if req.Status != nil {
		st := onboarding.TaskStatus(*req.Status)
		changes.Status = &st
	}
	if req.Team != nil {
		tm := onboarding.Team(*req.Team)
		changes.Team = &tm
	}

	task, err := s.repo.UpdateTask(ctx, integrationID, taskID, changes)
	if err != nil {
		return nil, err
	}

	response := ToTaskResponse(task)
	return &response, nil
}

// DeleteTask removes a single task from an integration
func (s *IntegrationService) DeleteTask(ctx context.Context, integrationID, taskID string) error {
	return s.repo.DeleteTask(ctx, integrationID, taskID)
}
