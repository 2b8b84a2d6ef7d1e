package onboarding

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the lifecycle state of a task
type TaskStatus string

const (
	TaskNotStarted TaskStatus = "Not Started"
	TaskInProgress TaskStatus = "In Progress"
	TaskCompleted  TaskStatus = "Completed"
	TaskBlocked    TaskStatus = "Blocked"
)

// Team represents the internal team a task is assigned to
type Team string

const (
	TeamSales      Team = "Sales"
	TeamOperations Team = "Operations"
	TeamLegal      Team = "Legal"
	TeamFinance    Team = "Finance"
	TeamProduct    Team = "Product"
)

// Task is a checklist item owned by exactly one integration
type Task struct {
	ID          string
	Title       string
	Description string
	Status      TaskStatus
	AssignedTo  string
	Team        Team
	Deadline    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTask creates a task with generated identity and defaults
func NewTask(title string) *Task {
	now := time.Now().UTC()
	return &Task{
		ID:        uuid.NewString(),
		Title:     title,
		Status:    TaskNotStarted,
		Team:      TeamOperations,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// EnsureIdentity fills in generated fields on tasks supplied by callers.
// Caller-provided IDs are honored; empty ones get a fresh identity.
func (t *Task) EnsureIdentity() {
	now := time.Now().UTC()
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Status == "" {
		t.Status = TaskNotStarted
	}
	if t.Team == "" {
		t.Team = TeamOperations
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}
}

// TaskChanges captures a partial task update; nil fields are untouched
type TaskChanges struct {
	Title       *string
	Description *string
	Status      *TaskStatus
	AssignedTo  *string
	Team        *Team
	Deadline    *string
}

// Apply merges the supplied changes and bumps the update timestamp
func (t *Task) Apply(ch TaskChanges) {
	if ch.Title != nil {
		t.Title = *ch.Title
	}
	if ch.Description != nil {
		t.Description = *ch.Description
	}
	if ch.Status != nil {
		t.Status = *ch.Status
	}
	if ch.AssignedTo != nil {
		t.AssignedTo = *ch.AssignedTo
	}
	if ch.Team != nil {
		t.Team = *ch.Team
	}
	if ch.Deadline != nil {
		t.Deadline = *ch.Deadline
	}
	t.UpdatedAt = time.Now().UTC()
}
