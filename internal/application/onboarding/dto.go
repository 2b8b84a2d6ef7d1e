package onboarding

import (
	"time"

	"github.com/onboard/backend/internal/domain/onboarding"
)

// CreateIntegrationRequest carries the fields accepted when creating an
// integration. Only account, contact, accountExecutive and kickoffDate
// are required; everything else falls back to documented defaults.
type CreateIntegrationRequest struct {
	Account                string
	Contact                string
	AccountExecutive       string
	IntegrationType        string
	IntegrationScopeDocURL string
	AttioRecordID          string
	AttioAccountURL        string
	Priority               string
	KickoffDate            string
	Stage                  string
	Tasks                  []TaskInput
}

// UpdateIntegrationRequest carries a partial update; nil fields are
// untouched. A non-nil Tasks slice replaces the stored task set.
type UpdateIntegrationRequest struct {
	Account                *string
	Contact                *string
	AccountExecutive       *string
	IntegrationType        *string
	IntegrationScopeDocURL *string
	AttioRecordID          *string
	AttioAccountURL        *string
	Priority               *string
	KickoffDate            *string
	Stage                  *string
	Tasks                  *[]TaskInput
}

// TaskInput is a task as supplied by callers. An empty ID means the
// store assigns one.
type TaskInput struct {
	ID          string
	Title       string
	Description string
	Status      string
	AssignedTo  string
	Team        string
	Deadline    string
}

// CreateTaskRequest carries the fields accepted when adding a task
type CreateTaskRequest struct {
	Title       string
	Description string
	Status      string
	AssignedTo  string
	Team        string
	Deadline    string
}

// UpdateTaskRequest carries a partial task update
type UpdateTaskRequest struct {
	Title       *string
	Description *string
	Status      *string
	AssignedTo  *string
	Team        *string
	Deadline    *string
}

// TaskResponse is the wire shape of a task
type TaskResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	AssignedTo  string `json:"assignedTo"`
	Team        string `json:"team"`
	Status      string `json:"status"`
	Deadline    string `json:"deadline"`
	Description string `json:"description,omitempty"`
}

// IntegrationResponse is the wire shape of an integration
type IntegrationResponse struct {
	ID                     string         `json:"id"`
	Account                string         `json:"account"`
	Contact                string         `json:"contact"`
	AccountExecutive       string         `json:"accountExecutive"`
	IntegrationType        string         `json:"integrationType"`
	IntegrationScopeDocURL string         `json:"integrationScopeDocUrl"`
	Priority               string         `json:"priority"`
	Tasks                  []TaskResponse `json:"tasks"`
	KickoffDate            string         `json:"kickoffDate"`
	Stage                  string         `json:"stage"`
	CreatedAt              time.Time      `json:"createdAt"`
	UpdatedAt              time.Time      `json:"updatedAt"`
	AttioRecordID          string         `json:"attioRecordId,omitempty"`
	AttioAccountURL        string         `json:"attioAccountUrl,omitempty"`
}

// ToTaskResponse converts a domain task to its wire shape
func ToTaskResponse(t *onboarding.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		AssignedTo:  t.AssignedTo,
		Team:        string(t.Team),
		Status:      string(t.Status),
		Deadline:    t.Deadline,
		Description: t.Description,
	}
}

// ToIntegrationResponse converts a domain integration to its wire shape
func ToIntegrationResponse(i *onboarding.Integration) IntegrationResponse {
	tasks := make([]TaskResponse, len(i.Tasks))
	for idx := range i.Tasks {
		tasks[idx] = ToTaskResponse(&i.Tasks[idx])
	}
	return IntegrationResponse{
		ID:                     i.ID,
		Account:                i.Account,
		Contact:                i.Contact,
		AccountExecutive:       i.AccountExecutive,
		IntegrationType:        string(i.IntegrationType),
		IntegrationScopeDocURL: i.IntegrationScopeDocURL,
		Priority:               string(i.Priority),
		Tasks:                  tasks,
		KickoffDate:            i.KickoffDate,
		Stage:                  string(i.Stage),
		CreatedAt:              i.CreatedAt,
		UpdatedAt:              i.UpdatedAt,
		AttioRecordID:          i.AttioRecordID,
		AttioAccountURL:        i.AttioAccountURL,
	}
}

func toDomainTask(in TaskInput) onboarding.Task {
	task := onboarding.Task{
		ID:          in.ID,
		Title:       in.Title,
		Description: in.Description,
		Status:      onboarding.TaskStatus(in.Status),
		AssignedTo:  in.AssignedTo,
		Team:        onboarding.Team(in.Team),
		Deadline:    in.Deadline,
	}
	task.EnsureIdentity()
	return task
}

func toDomainTasks(in []TaskInput) []onboarding.Task {
	tasks := make([]onboarding.Task, len(in))
	for idx, t := range in {
		tasks[idx] = toDomainTask(t)
	}
	return tasks
}
