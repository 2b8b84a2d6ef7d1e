package persistence

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/onboard/backend/internal/domain/onboarding"
	"github.com/onboard/backend/internal/domain/shared"
)

// MemoryIntegrationRepository is an in-memory IntegrationRepository used by
// the "memory" database driver and by tests. It mirrors the ordering and
// task replacement semantics of the GORM implementation.
type MemoryIntegrationRepository struct {
	mu           sync.RWMutex
	integrations map[string]*onboarding.Integration
}

var _ onboarding.IntegrationRepository = (*MemoryIntegrationRepository)(nil)

// NewMemoryIntegrationRepository creates an empty in-memory repository
func NewMemoryIntegrationRepository() *MemoryIntegrationRepository {
	return &MemoryIntegrationRepository{
		integrations: make(map[string]*onboarding.Integration),
	}
}

// FindAll returns all integrations ordered by priority, then newest first
func (r *MemoryIntegrationRepository) FindAll(ctx context.Context) ([]onboarding.Integration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	integrations := make([]onboarding.Integration, 0, len(r.integrations))
	for _, integration := range r.integrations {
		integrations = append(integrations, *cloneIntegration(integration))
	}

	sort.SliceStable(integrations, func(i, j int) bool {
		if integrations[i].Priority.Rank() != integrations[j].Priority.Rank() {
			return integrations[i].Priority.Rank() < integrations[j].Priority.Rank()
		}
		return integrations[i].CreatedAt.After(integrations[j].CreatedAt)
	})

	return integrations, nil
}

// FindByID finds an integration by its ID
func (r *MemoryIntegrationRepository) FindByID(ctx context.Context, id string) (*onboarding.Integration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	integration, ok := r.integrations[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return cloneIntegration(integration), nil
}

// Create stores a new integration
func (r *MemoryIntegrationRepository) Create(ctx context.Context, integration *onboarding.Integration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.integrations[integration.ID] = cloneIntegration(integration)
	return nil
}

// Update applies partial changes to a stored integration
func (r *MemoryIntegrationRepository) Update(ctx context.Context, id string, changes onboarding.IntegrationChanges) (*onboarding.Integration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	integration, ok := r.integrations[id]
	if !ok {
		return nil, shared.ErrNotFound
	}

	integration.Apply(changes)
	return cloneIntegration(integration), nil
}

// Delete removes an integration and its tasks
func (r *MemoryIntegrationRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.integrations[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.integrations, id)
	return nil
}

// AddTask appends a task to an existing integration
func (r *MemoryIntegrationRepository) AddTask(ctx context.Context, integrationID string, task *onboarding.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	integration, ok := r.integrations[integrationID]
	if !ok {
		return shared.ErrNotFound
	}

	integration.Tasks = append(integration.Tasks, *task)
	integration.UpdatedAt = time.Now().UTC()
	return nil
}

// UpdateTask applies partial changes to a task of an integration
func (r *MemoryIntegrationRepository) UpdateTask(ctx context.Context, integrationID, taskID string, changes onboarding.TaskChanges) (*onboarding.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	integration, ok := r.integrations[integrationID]
	if !ok {
		return nil, shared.ErrNotFound
	}

	task := integration.FindTask(taskID)
	if task == nil {
		return nil, shared.ErrNotFound
	}

	task.Apply(changes)
	integration.UpdatedAt = time.Now().UTC()

	updated := *task
	return &updated, nil
}

// DeleteTask removes a task from an integration
func (r *MemoryIntegrationRepository) DeleteTask(ctx context.Context, integrationID, taskID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	integration, ok := r.integrations[integrationID]
	if !ok {
		return shared.ErrNotFound
	}

	for i := range integration.Tasks {
		if integration.Tasks[i].ID == taskID {
			integration.Tasks = append(integration.Tasks[:i], integration.Tasks[i+1:]...)
			integration.UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return shared.ErrNotFound
}

// cloneIntegration returns a deep copy so callers cannot mutate stored state
func cloneIntegration(integration *onboarding.Integration) *onboarding.Integration {
	clone := *integration
	clone.Tasks = make([]onboarding.Task, len(integration.Tasks))
	copy(clone.Tasks, integration.Tasks)
	return &clone
}
