package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/onboard/backend/internal/domain/onboarding"
	"github.com/onboard/backend/internal/domain/shared"
	"github.com/onboard/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// priorityOrder sorts Highest first and unknown values last.
// The CASE expression is portable across postgres and sqlite.
const priorityOrder = "CASE priority " +
	"WHEN 'Highest' THEN 0 " +
	"WHEN 'High' THEN 1 " +
	"WHEN 'Medium' THEN 2 " +
	"WHEN 'Low' THEN 3 " +
	"ELSE 4 END, created_at DESC"

// GormIntegrationRepository implements IntegrationRepository using GORM
type GormIntegrationRepository struct {
	db *gorm.DB
}

var _ onboarding.IntegrationRepository = (*GormIntegrationRepository)(nil)

// NewGormIntegrationRepository creates a new GormIntegrationRepository
func NewGormIntegrationRepository(db *gorm.DB) *GormIntegrationRepository {
	return &GormIntegrationRepository{db: db}
}

// FindAll returns all integrations ordered by priority, then newest first.
// Tasks are loaded in creation order.
func (r *GormIntegrationRepository) FindAll(ctx context.Context) ([]onboarding.Integration, error) {
	var integrationModels []models.IntegrationModel
	if err := r.db.WithContext(ctx).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Order(priorityOrder).
		Find(&integrationModels).Error; err != nil {
		return nil, err
	}

	integrations := make([]onboarding.Integration, len(integrationModels))
	for i := range integrationModels {
		integrations[i] = *integrationModels[i].ToDomain()
	}
	return integrations, nil
}

// FindByID finds an integration by its ID, including its tasks
func (r *GormIntegrationRepository) FindByID(ctx context.Context, id string) (*onboarding.Integration, error) {
	var model models.IntegrationModel
	if err := r.db.WithContext(ctx).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Create persists a new integration together with its tasks
func (r *GormIntegrationRepository) Create(ctx context.Context, integration *onboarding.Integration) error {
	model := models.IntegrationModelFromDomain(integration)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update applies partial changes to an integration. A task list in the
// changes replaces all persisted tasks for the integration.
func (r *GormIntegrationRepository) Update(ctx context.Context, id string, changes onboarding.IntegrationChanges) (*onboarding.Integration, error) {
	var updated *onboarding.Integration

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.IntegrationModel
		if err := tx.
			Preload("Tasks", func(db *gorm.DB) *gorm.DB {
				return db.Order("created_at ASC")
			}).
			First(&model, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}

		integration := model.ToDomain()
		integration.Apply(changes)

		newModel := models.IntegrationModelFromDomain(integration)
		if err := tx.Omit("Tasks").Save(newModel).Error; err != nil {
			return err
		}

		if changes.Tasks != nil {
			if err := tx.Where("integration_id = ?", id).Delete(&models.TaskModel{}).Error; err != nil {
				return err
			}
			if len(newModel.Tasks) > 0 {
				if err := tx.Create(&newModel.Tasks).Error; err != nil {
					return err
				}
			}
		}

		updated = integration
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes an integration and all of its tasks
func (r *GormIntegrationRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("integration_id = ?", id).Delete(&models.TaskModel{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.IntegrationModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// AddTask appends a task to an existing integration
func (r *GormIntegrationRepository) AddTask(ctx context.Context, integrationID string, task *onboarding.Task) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.IntegrationModel
		if err := tx.First(&model, "id = ?", integrationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}

		taskModel := models.TaskModelFromDomain(task, integrationID)
		if err := tx.Create(taskModel).Error; err != nil {
			return err
		}

		return touchIntegration(tx, integrationID)
	})
}

// UpdateTask applies partial changes to a task of an integration
func (r *GormIntegrationRepository) UpdateTask(ctx context.Context, integrationID, taskID string, changes onboarding.TaskChanges) (*onboarding.Task, error) {
	var updated *onboarding.Task

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var taskModel models.TaskModel
		if err := tx.
			Where("id = ? AND integration_id = ?", taskID, integrationID).
			First(&taskModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}

		task := taskModel.ToDomain()
		task.Apply(changes)

		newModel := models.TaskModelFromDomain(task, integrationID)
		if err := tx.Save(newModel).Error; err != nil {
			return err
		}

		if err := touchIntegration(tx, integrationID); err != nil {
			return err
		}

		updated = task
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteTask removes a task from an integration
func (r *GormIntegrationRepository) DeleteTask(ctx context.Context, integrationID, taskID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where("id = ? AND integration_id = ?", taskID, integrationID).
			Delete(&models.TaskModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}

		return touchIntegration(tx, integrationID)
	})
}

// touchIntegration bumps the parent integration's updated_at so task
// mutations are reflected on the aggregate
func touchIntegration(tx *gorm.DB, integrationID string) error {
	return tx.Model(&models.IntegrationModel{}).
		Where("id = ?", integrationID).
		Update("updated_at", time.Now().UTC()).Error
}
