package persistence

import (
	"context"
	"time"

	"github.com/onboard/backend/internal/domain/onboarding"
	"github.com/onboard/backend/internal/domain/shared"
)

// SeedDemoData loads a demo dataset into the repository. It is used by the
// memory driver so the API serves data without external dependencies.
func SeedDemoData(ctx context.Context, repo onboarding.IntegrationRepository) error {
	for _, integration := range demoIntegrations() {
		if err := repo.Create(ctx, integration); err != nil {
			return err
		}
	}
	return nil
}

func demoIntegrations() []*onboarding.Integration {
	return []*onboarding.Integration{
		{
			BaseEntity: shared.BaseEntity{
				ID:        "1",
				CreatedAt: ts("2026-01-28T10:00:00Z"),
				UpdatedAt: ts("2026-01-29T09:30:00Z"),
			},
			Account:                "Pacific Medical Group",
			Contact:                "Dr. Amanda Chen",
			AccountExecutive:       "John Smith",
			IntegrationType:        onboarding.TypePriorAuth,
			IntegrationScopeDocURL: "https://docs.google.com/document/d/pacific-medical",
			AttioRecordID:          "pacific-medical-001",
			AttioAccountURL:        "https://app.attio.com/companies/pacific-medical-001",
			Priority:               onboarding.PriorityHigh,
			KickoffDate:            "2026-02-10",
			Stage:                  onboarding.StageNew,
			Tasks: []onboarding.Task{
				{
					ID:          "1-1",
					Title:       "Initial kickoff call",
					Description: "Schedule and conduct initial kickoff meeting",
					Status:      onboarding.TaskNotStarted,
					AssignedTo:  "Sarah Johnson",
					Team:        onboarding.TeamOperations,
					Deadline:    "2026-02-05",
					CreatedAt:   ts("2026-01-28T10:00:00Z"),
					UpdatedAt:   ts("2026-01-28T10:00:00Z"),
				},
			},
		},
		{
			BaseEntity: shared.BaseEntity{
				ID:        "2",
				CreatedAt: ts("2026-01-27T14:00:00Z"),
				UpdatedAt: ts("2026-01-28T16:45:00Z"),
			},
			Account:                "Sunrise Health Network",
			Contact:                "Michael Torres",
			AccountExecutive:       "Emily Chen",
			IntegrationType:        onboarding.TypeDMERCM,
			IntegrationScopeDocURL: "https://docs.google.com/document/d/sunrise-health",
			AttioRecordID:          "sunrise-health-002",
			AttioAccountURL:        "https://app.attio.com/companies/sunrise-health-002",
			Priority:               onboarding.PriorityMedium,
			KickoffDate:            "2026-02-12",
			Stage:                  onboarding.StageNew,
			Tasks: []onboarding.Task{
				{
					ID:          "2-1",
					Title:       "Technical discovery",
					Description: "Conduct technical discovery session",
					Status:      onboarding.TaskNotStarted,
					AssignedTo:  "Robert Lee",
					Team:        onboarding.TeamProduct,
					Deadline:    "2026-02-08",
					CreatedAt:   ts("2026-01-27T14:00:00Z"),
					UpdatedAt:   ts("2026-01-27T14:00:00Z"),
				},
			},
		},
		{
			BaseEntity: shared.BaseEntity{
				ID:        "3",
				CreatedAt: ts("2026-01-26T11:00:00Z"),
				UpdatedAt: ts("2026-01-29T08:15:00Z"),
			},
			Account:                "Valley Care Physicians",
			Contact:                "Dr. Rebecca Martinez",
			AccountExecutive:       "David Martinez",
			IntegrationType:        onboarding.TypePopulationHealth,
			IntegrationScopeDocURL: "https://docs.google.com/document/d/valley-care",
			AttioRecordID:          "valley-care-003",
			AttioAccountURL:        "https://app.attio.com/companies/valley-care-003",
			Priority:               onboarding.PriorityLow,
			KickoffDate:            "2026-02-15",
			Stage:                  onboarding.StageNew,
			Tasks:                  []onboarding.Task{},
		},
		{
			BaseEntity: shared.BaseEntity{
				ID:        "4",
				CreatedAt: ts("2026-01-25T09:00:00Z"),
				UpdatedAt: ts("2026-01-28T14:30:00Z"),
			},
			Account:                "Coastal Medical Associates",
			Contact:                "James Wilson",
			AccountExecutive:       "Sarah Kim",
			IntegrationType:        onboarding.TypeDMEAutomation,
			IntegrationScopeDocURL: "https://docs.google.com/document/d/coastal-medical",
			AttioRecordID:          "coastal-medical-004",
			AttioAccountURL:        "https://app.attio.com/companies/coastal-medical-004",
			Priority:               onboarding.PriorityMedium,
			KickoffDate:            "2026-02-18",
			Stage:                  onboarding.StageNew,
			Tasks:                  []onboarding.Task{},
		},
		{
			BaseEntity: shared.BaseEntity{
				ID:        "6",
				CreatedAt: ts("2026-01-15T10:00:00Z"),
				UpdatedAt: ts("2026-01-29T09:30:00Z"),
			},
			Account:                "Acme Healthcare",
			Contact:                "Dr. Sarah Mitchell",
			AccountExecutive:       "Emily Chen",
			IntegrationType:        onboarding.TypePriorAuth,
			IntegrationScopeDocURL: "https://docs.google.com/document/d/acme-healthcare",
			AttioRecordID:          "acme-healthcare-006",
			AttioAccountURL:        "https://app.attio.com/companies/acme-healthcare-006",
			Priority:               onboarding.PriorityHigh,
			KickoffDate:            "2026-01-20",
			Stage:                  onboarding.StageInProgress,
			Tasks: []onboarding.Task{
				{
					ID:          "6-1",
					Title:       "Initial requirements gathering",
					Description: "Gather technical requirements and integration points",
					Status:      onboarding.TaskCompleted,
					AssignedTo:  "Sarah Johnson",
					Team:        onboarding.TeamOperations,
					Deadline:    "2026-01-25",
					CreatedAt:   ts("2026-01-15T10:00:00Z"),
					UpdatedAt:   ts("2026-01-26T10:00:00Z"),
				},
				{
					ID:          "6-2",
					Title:       "API integration setup",
					Description: "Set up API connections and test endpoints",
					Status:      onboarding.TaskInProgress,
					AssignedTo:  "Robert Lee",
					Team:        onboarding.TeamProduct,
					Deadline:    "2026-02-10",
					CreatedAt:   ts("2026-01-15T10:05:00Z"),
					UpdatedAt:   ts("2026-01-29T09:30:00Z"),
				},
			},
		},
		{
			BaseEntity: shared.BaseEntity{
				ID:        "8",
				CreatedAt: ts("2026-01-12T11:00:00Z"),
				UpdatedAt: ts("2026-01-29T08:15:00Z"),
			},
			Account:                "Unity Medical Center",
			Contact:                "Dr. Patricia Davis",
			AccountExecutive:       "Sarah Kim",
			IntegrationType:        onboarding.TypePopulationHealth,
			IntegrationScopeDocURL: "https://docs.google.com/document/d/unity-medical",
			AttioRecordID:          "unity-medical-008",
			AttioAccountURL:        "https://app.attio.com/companies/unity-medical-008",
			Priority:               onboarding.PriorityHigh,
			KickoffDate:            "2026-01-18",
			Stage:                  onboarding.StageInProgress,
			Tasks: []onboarding.Task{
				{
					ID:          "8-1",
					Title:       "Security compliance review",
					Description: "Complete HIPAA compliance documentation",
					Status:      onboarding.TaskInProgress,
					AssignedTo:  "Tom Anderson",
					Team:        onboarding.TeamLegal,
					Deadline:    "2026-02-05",
					CreatedAt:   ts("2026-01-12T11:00:00Z"),
					UpdatedAt:   ts("2026-01-29T08:15:00Z"),
				},
				{
					ID:          "8-2",
					Title:       "User training materials",
					Description: "Create training documentation and videos",
					Status:      onboarding.TaskNotStarted,
					AssignedTo:  "Jennifer Lee",
					Team:        onboarding.TeamOperations,
					Deadline:    "2026-02-15",
					CreatedAt:   ts("2026-01-12T11:05:00Z"),
					UpdatedAt:   ts("2026-01-12T11:05:00Z"),
				},
			},
		},
		{
			BaseEntity: shared.BaseEntity{
				ID:        "13",
				CreatedAt: ts("2026-01-02T11:00:00Z"),
				UpdatedAt: ts("2026-01-29T08:15:00Z"),
			},
			Account:                "HealthFirst Solutions",
			Contact:                "Jennifer Lee",
			AccountExecutive:       "John Smith",
			IntegrationType:        onboarding.TypePopulationHealth,
			IntegrationScopeDocURL: "https://docs.google.com/document/d/healthfirst",
			AttioRecordID:          "healthfirst-013",
			AttioAccountURL:        "https://app.attio.com/companies/healthfirst-013",
			Priority:               onboarding.PriorityHigh,
			KickoffDate:            "2026-01-05",
			Stage:                  onboarding.StageReview,
			Tasks: []onboarding.Task{
				{
					ID:          "13-1",
					Title:       "Final UAT",
					Description: "Complete user acceptance testing",
					Status:      onboarding.TaskInProgress,
					AssignedTo:  "Lisa Wang",
					Team:        onboarding.TeamOperations,
					Deadline:    "2026-02-01",
					CreatedAt:   ts("2026-01-02T11:00:00Z"),
					UpdatedAt:   ts("2026-01-29T08:15:00Z"),
				},
				{
					ID:          "13-2",
					Title:       "Go-live checklist",
					Description: "Complete pre-launch checklist",
					Status:      onboarding.TaskNotStarted,
					AssignedTo:  "Sarah Johnson",
					Team:        onboarding.TeamOperations,
					Deadline:    "2026-02-05",
					CreatedAt:   ts("2026-01-02T11:05:00Z"),
					UpdatedAt:   ts("2026-01-02T11:05:00Z"),
				},
			},
		},
		{
			BaseEntity: shared.BaseEntity{
				ID:        "17",
				CreatedAt: ts("2025-12-10T14:00:00Z"),
				UpdatedAt: ts("2026-01-22T16:45:00Z"),
			},
			Account:                "MediCare Plus",
			Contact:                "Michael Johnson",
			AccountExecutive:       "John Smith",
			IntegrationType:        onboarding.TypeDMERCM,
			IntegrationScopeDocURL: "https://docs.google.com/document/d/medicare-plus",
			AttioRecordID:          "medicare-plus-017",
			AttioAccountURL:        "https://app.attio.com/companies/medicare-plus-017",
			Priority:               onboarding.PriorityHigh,
			KickoffDate:            "2025-12-15",
			Stage:                  onboarding.StageCompleted,
			Tasks: []onboarding.Task{
				{
					ID:          "17-1",
					Title:       "Go-live support",
					Description: "Provide go-live support",
					Status:      onboarding.TaskCompleted,
					AssignedTo:  "Sarah Johnson",
					Team:        onboarding.TeamOperations,
					Deadline:    "2026-01-20",
					CreatedAt:   ts("2025-12-10T14:00:00Z"),
					UpdatedAt:   ts("2026-01-22T16:45:00Z"),
				},
			},
		},
	}
}

func ts(value string) time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return t
}
