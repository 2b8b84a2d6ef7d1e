package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/onboard/backend/internal/domain/onboarding"
	"github.com/onboard/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryIntegrationRepository_CreateAndFindByID(t *testing.T) {
	repo := NewMemoryIntegrationRepository()
	ctx := context.Background()

	integration := newTestIntegration(t, "Pacific Medical Group")
	require.NoError(t, repo.Create(ctx, integration))

	retrieved, err := repo.FindByID(ctx, integration.ID)
	require.NoError(t, err)
	assert.Equal(t, integration.ID, retrieved.ID)
	assert.Equal(t, "Pacific Medical Group", retrieved.Account)
}

func TestMemoryIntegrationRepository_FindByID_NotFound(t *testing.T) {
	repo := NewMemoryIntegrationRepository()

	_, err := repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestMemoryIntegrationRepository_FindAll_Ordering(t *testing.T) {
	repo := NewMemoryIntegrationRepository()
	ctx := context.Background()

	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	create := func(account string, priority onboarding.Priority, createdAt time.Time) {
		integration := newTestIntegration(t, account)
		integration.Priority = priority
		integration.CreatedAt = createdAt
		require.NoError(t, repo.Create(ctx, integration))
	}

	create("Low Old", onboarding.PriorityLow, base)
	create("Highest", onboarding.PriorityHighest, base.Add(time.Hour))
	create("Medium New", onboarding.PriorityMedium, base.Add(3*time.Hour))
	create("Medium Old", onboarding.PriorityMedium, base.Add(2*time.Hour))
	create("High", onboarding.PriorityHigh, base)

	integrations, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, integrations, 5)

	accounts := make([]string, len(integrations))
	for i, integration := range integrations {
		accounts[i] = integration.Account
	}
	assert.Equal(t, []string{"Highest", "High", "Medium New", "Medium Old", "Low Old"}, accounts)
}

func TestMemoryIntegrationRepository_Update_ReplacesTasks(t *testing.T) {
	repo := NewMemoryIntegrationRepository()
	ctx := context.Background()

	integration := newTestIntegration(t, "Unity Medical Center")
	integration.Tasks = []onboarding.Task{*onboarding.NewTask("Old task")}
	require.NoError(t, repo.Create(ctx, integration))

	newTasks := []onboarding.Task{{Title: "Replacement task"}}
	updated, err := repo.Update(ctx, integration.ID, onboarding.IntegrationChanges{Tasks: &newTasks})
	require.NoError(t, err)

	require.Len(t, updated.Tasks, 1)
	assert.Equal(t, "Replacement task", updated.Tasks[0].Title)
	assert.NotEmpty(t, updated.Tasks[0].ID)
}

func TestMemoryIntegrationRepository_Update_NotFound(t *testing.T) {
	repo := NewMemoryIntegrationRepository()

	stage := onboarding.StageReview
	_, err := repo.Update(context.Background(), "missing", onboarding.IntegrationChanges{Stage: &stage})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestMemoryIntegrationRepository_Delete(t *testing.T) {
	repo := NewMemoryIntegrationRepository()
	ctx := context.Background()

	integration := newTestIntegration(t, "Beacon Health Partners")
	require.NoError(t, repo.Create(ctx, integration))

	require.NoError(t, repo.Delete(ctx, integration.ID))

	_, err := repo.FindByID(ctx, integration.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, integration.ID), shared.ErrNotFound)
}

func TestMemoryIntegrationRepository_TaskLifecycle(t *testing.T) {
	repo := NewMemoryIntegrationRepository()
	ctx := context.Background()

	integration := newTestIntegration(t, "Premier Health Systems")
	require.NoError(t, repo.Create(ctx, integration))

	task := onboarding.NewTask("Data migration planning")
	require.NoError(t, repo.AddTask(ctx, integration.ID, task))

	status := onboarding.TaskCompleted
	updated, err := repo.UpdateTask(ctx, integration.ID, task.ID, onboarding.TaskChanges{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, onboarding.TaskCompleted, updated.Status)

	require.NoError(t, repo.DeleteTask(ctx, integration.ID, task.ID))

	retrieved, err := repo.FindByID(ctx, integration.ID)
	require.NoError(t, err)
	assert.Empty(t, retrieved.Tasks)

	assert.ErrorIs(t, repo.DeleteTask(ctx, integration.ID, task.ID), shared.ErrNotFound)
}

func TestMemoryIntegrationRepository_ReadIsolation(t *testing.T) {
	repo := NewMemoryIntegrationRepository()
	ctx := context.Background()

	integration := newTestIntegration(t, "Heritage Healthcare")
	integration.Tasks = []onboarding.Task{*onboarding.NewTask("Contract sign-off")}
	require.NoError(t, repo.Create(ctx, integration))

	retrieved, err := repo.FindByID(ctx, integration.ID)
	require.NoError(t, err)

	// Mutating the returned value must not change the stored copy
	retrieved.Account = "Mutated"
	retrieved.Tasks[0].Title = "Mutated task"

	fresh, err := repo.FindByID(ctx, integration.ID)
	require.NoError(t, err)
	assert.Equal(t, "Heritage Healthcare", fresh.Account)
	assert.Equal(t, "Contract sign-off", fresh.Tasks[0].Title)
}

func TestSeedDemoData(t *testing.T) {
	repo := NewMemoryIntegrationRepository()
	ctx := context.Background()

	require.NoError(t, SeedDemoData(ctx, repo))

	integrations, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, integrations)

	// Every seeded record has the required fields and a valid stage
	for _, integration := range integrations {
		assert.NotEmpty(t, integration.ID)
		assert.NotEmpty(t, integration.Account)
		assert.NotEmpty(t, integration.Contact)
		assert.NotEmpty(t, integration.AccountExecutive)
		assert.NotEmpty(t, integration.KickoffDate)
		assert.Contains(t, []onboarding.Stage{
			onboarding.StageNew,
			onboarding.StageInProgress,
			onboarding.StageReview,
			onboarding.StageCompleted,
		}, integration.Stage)
	}
}
