package onboarding

import (
	"fmt"
	"strings"

	"github.com/onboard/backend/internal/domain/shared"
)

// Priority represents how urgently an integration should be worked
type Priority string

const (
	PriorityHighest Priority = "Highest"
	PriorityHigh    Priority = "High"
	PriorityMedium  Priority = "Medium"
	PriorityLow     Priority = "Low"
)

// Rank returns the sort rank of a priority; lower sorts first.
// Unknown values rank after all known ones.
func (p Priority) Rank() int {
	switch p {
	case PriorityHighest:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

// Stage represents where an integration sits on the onboarding board
type Stage string

const (
	StageNew        Stage = "New Integrations"
	StageInProgress Stage = "In Progress"
	StageReview     Stage = "Review"
	StageCompleted  Stage = "Completed"
)

// IntegrationType represents the product category being onboarded
type IntegrationType string

const (
	TypePriorAuth        IntegrationType = "AI Automated Prior Authorizations"
	TypeDMEAutomation    IntegrationType = "AI Automation for DME"
	TypeDMERCM           IntegrationType = "Full Service DME RCM"
	TypePopulationHealth IntegrationType = "AI Population Health Analytics"
)

// Integration is the aggregate root for a customer onboarding engagement.
// Tasks are owned by the integration and never exist without one.
type Integration struct {
	shared.BaseEntity
	Account                string
	Contact                string
	AccountExecutive       string
	IntegrationType        IntegrationType
	IntegrationScopeDocURL string
	AttioRecordID          string
	AttioAccountURL        string
	Priority               Priority
	KickoffDate            string
	Stage                  Stage
	Tasks                  []Task
}

// NewIntegration creates an integration with the required fields and
// documented defaults for everything else.
func NewIntegration(account, contact, accountExecutive, kickoffDate string) (*Integration, error) {
	if err := validateRequired("account", account); err != nil {
		return nil, err
	}
	if err := validateRequired("contact", contact); err != nil {
		return nil, err
	}
	if err := validateRequired("accountExecutive", accountExecutive); err != nil {
		return nil, err
	}
	if err := validateRequired("kickoffDate", kickoffDate); err != nil {
		return nil, err
	}

	return &Integration{
		BaseEntity:       shared.NewBaseEntity(),
		Account:          account,
		Contact:          contact,
		AccountExecutive: accountExecutive,
		KickoffDate:      kickoffDate,
		Priority:         PriorityMedium,
		Stage:            StageNew,
		Tasks:            []Task{},
	}, nil
}

// IntegrationChanges captures a partial update. Nil fields are left
// untouched. A non-nil Tasks slice replaces the whole task set.
type IntegrationChanges struct {
	Account                *string
	Contact                *string
	AccountExecutive       *string
	IntegrationType        *IntegrationType
	IntegrationScopeDocURL *string
	AttioRecordID          *string
	AttioAccountURL        *string
	Priority               *Priority
	KickoffDate            *string
	Stage                  *Stage
	Tasks                  *[]Task
}

// Apply merges the supplied changes into the integration and bumps the
// update timestamp. Task replacement assigns IDs to tasks that arrive
// without one; supplied IDs are kept as given.
func (i *Integration) Apply(ch IntegrationChanges) {
	if ch.Account != nil {
		i.Account = *ch.Account
	}
	if ch.Contact != nil {
		i.Contact = *ch.Contact
	}
	if ch.AccountExecutive != nil {
		i.AccountExecutive = *ch.AccountExecutive
	}
	if ch.IntegrationType != nil {
		i.IntegrationType = *ch.IntegrationType
	}
	if ch.IntegrationScopeDocURL != nil {
		i.IntegrationScopeDocURL = *ch.IntegrationScopeDocURL
	}
	if ch.AttioRecordID != nil {
		i.AttioRecordID = *ch.AttioRecordID
	}
	if ch.AttioAccountURL != nil {
		i.AttioAccountURL = *ch.AttioAccountURL
	}
	if ch.Priority != nil {
		i.Priority = *ch.Priority
	}
	if ch.KickoffDate != nil {
		i.KickoffDate = *ch.KickoffDate
	}
	if ch.Stage != nil {
		i.Stage = *ch.Stage
	}
	if ch.Tasks != nil {
		replaced := make([]Task, len(*ch.Tasks))
		for idx, t := range *ch.Tasks {
			t.EnsureIdentity()
			replaced[idx] = t
		}
		i.Tasks = replaced
	}
	i.Touch()
}

// FindTask returns the task with the given ID, or nil
func (i *Integration) FindTask(taskID string) *Task {
	for idx := range i.Tasks {
		if i.Tasks[idx].ID == taskID {
			return &i.Tasks[idx]
		}
	}
	return nil
}

func validateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("Field %q is required", field))
	}
	return nil
}
