package models

import (
	"time"

	"github.com/onboard/backend/internal/domain/onboarding"
)

// IntegrationModel is the persistence model for the Integration domain entity.
type IntegrationModel struct {
	BaseModel
	Account                string                     `gorm:"type:text;not null"`
	Contact                string                     `gorm:"type:text;not null"`
	AccountExecutive       string                     `gorm:"column:account_executive;type:text;not null"`
	IntegrationType        onboarding.IntegrationType `gorm:"column:integration_type;type:text"`
	IntegrationScopeDocURL string                     `gorm:"column:integration_scope_doc_url;type:text"`
	AttioAccountURL        string                     `gorm:"column:attio_account_url;type:text"`
	AttioRecordID          string                     `gorm:"column:attio_record_id;type:text"`
	Priority               onboarding.Priority        `gorm:"type:text;not null;default:'Medium';index:idx_integrations_priority"`
	KickoffDate            string                     `gorm:"column:kickoff_date;type:text;not null"`
	Stage                  onboarding.Stage           `gorm:"type:text;not null;default:'New Integrations';index:idx_integrations_stage"`
	Tasks                  []TaskModel                `gorm:"foreignKey:IntegrationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (IntegrationModel) TableName() string {
	return "integrations"
}

// ToDomain converts the persistence model to a domain Integration entity.
func (m *IntegrationModel) ToDomain() *onboarding.Integration {
	tasks := make([]onboarding.Task, 0, len(m.Tasks))
	for i := range m.Tasks {
		tasks = append(tasks, *m.Tasks[i].ToDomain())
	}

	return &onboarding.Integration{
		BaseEntity:             m.BaseModel.ToDomain(),
		Account:                m.Account,
		Contact:                m.Contact,
		AccountExecutive:       m.AccountExecutive,
		IntegrationType:        m.IntegrationType,
		IntegrationScopeDocURL: m.IntegrationScopeDocURL,
		AttioAccountURL:        m.AttioAccountURL,
		AttioRecordID:          m.AttioRecordID,
		Priority:               m.Priority,
		KickoffDate:            m.KickoffDate,
		Stage:                  m.Stage,
		Tasks:                  tasks,
	}
}

// FromDomain populates the persistence model from a domain Integration entity.
func (m *IntegrationModel) FromDomain(i *onboarding.Integration) {
	m.FromDomainBaseEntity(i.BaseEntity)
	m.Account = i.Account
	m.Contact = i.Contact
	m.AccountExecutive = i.AccountExecutive
	m.IntegrationType = i.IntegrationType
	m.IntegrationScopeDocURL = i.IntegrationScopeDocURL
	m.AttioAccountURL = i.AttioAccountURL
	m.AttioRecordID = i.AttioRecordID
	m.Priority = i.Priority
	m.KickoffDate = i.KickoffDate
	m.Stage = i.Stage

	m.Tasks = make([]TaskModel, 0, len(i.Tasks))
	for idx := range i.Tasks {
		var tm TaskModel
		tm.FromDomain(&i.Tasks[idx], i.ID)
		m.Tasks = append(m.Tasks, tm)
	}
}

// IntegrationModelFromDomain creates a new persistence model from a domain Integration entity.
func IntegrationModelFromDomain(i *onboarding.Integration) *IntegrationModel {
	m := &IntegrationModel{}
	m.FromDomain(i)
	return m
}

// TaskModel is the persistence model for the Task entity.
// The deadline is stored in the due_date column.
type TaskModel struct {
	ID            string                `gorm:"type:text;primary_key"`
	IntegrationID string                `gorm:"column:integration_id;type:text;not null;index:idx_tasks_integration_id"`
	Title         string                `gorm:"type:text;not null"`
	Description   string                `gorm:"type:text"`
	Status        onboarding.TaskStatus `gorm:"type:text;not null;default:'Not Started'"`
	AssignedTo    string                `gorm:"column:assigned_to;type:text"`
	Team          onboarding.Team       `gorm:"type:text"`
	DueDate       string                `gorm:"column:due_date;type:text"`
	CreatedAt     time.Time             `gorm:"not null"`
	UpdatedAt     time.Time             `gorm:"not null"`
}

// TableName returns the table name for GORM
func (TaskModel) TableName() string {
	return "tasks"
}

// ToDomain converts the persistence model to a domain Task entity.
func (m *TaskModel) ToDomain() *onboarding.Task {
	return &onboarding.Task{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Status:      m.Status,
		AssignedTo:  m.AssignedTo,
		Team:        m.Team,
		Deadline:    m.DueDate,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromDomain populates the persistence model from a domain Task entity.
func (m *TaskModel) FromDomain(t *onboarding.Task, integrationID string) {
	m.ID = t.ID
	m.IntegrationID = integrationID
	m.Title = t.Title
	m.Description = t.Description
	m.Status = t.Status
	m.AssignedTo = t.AssignedTo
	m.Team = t.Team
	m.DueDate = t.Deadline
	m.CreatedAt = t.CreatedAt
	m.UpdatedAt = t.UpdatedAt
}

// TaskModelFromDomain creates a new persistence model from a domain Task entity.
func TaskModelFromDomain(t *onboarding.Task, integrationID string) *TaskModel {
	m := &TaskModel{}
	m.FromDomain(t, integrationID)
	return m
}
