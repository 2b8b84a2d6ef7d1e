package onboarding

import "context"

// IntegrationRepository defines persistence operations for integrations
// and their owned tasks. Implementations map absence to shared.ErrNotFound
// and propagate every other failure unwrapped.
type IntegrationRepository interface {
	// FindAll returns every integration with its tasks, ordered by
	// priority rank (Highest first) then creation time descending.
	FindAll(ctx context.Context) ([]Integration, error)

	// FindByID returns the integration with its tasks
	FindByID(ctx context.Context, id string) (*Integration, error)

	// Create persists a new integration together with any tasks it carries
	Create(ctx context.Context, integration *Integration) error

	// Update merges a partial change set into the stored integration and
	// returns the updated record. When the change set carries a task list
	// the stored task set is replaced wholesale in the same transaction.
	Update(ctx context.Context, id string, changes IntegrationChanges) (*Integration, error)

	// Delete removes the integration and all of its tasks
	Delete(ctx context.Context, id string) error

	// AddTask appends a task to an existing integration
	AddTask(ctx context.Context, integrationID string, task *Task) error

	// UpdateTask merges a partial change set into a single task
	UpdateTask(ctx context.Context, integrationID, taskID string, changes TaskChanges) (*Task, error)

	// DeleteTask removes a single task from an integration
	DeleteTask(ctx context.Context, integrationID, taskID string) error
}
