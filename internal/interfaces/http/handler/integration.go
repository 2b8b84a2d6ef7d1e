package handler

import (
	"github.com/gin-gonic/gin"
	onboardingapp "github.com/onboard/backend/internal/application/onboarding"
	"github.com/onboard/backend/internal/interfaces/http/middleware"
)

// IntegrationHandler handles integration and task API endpoints
type IntegrationHandler struct {
	BaseHandler
	integrationService *onboardingapp.IntegrationService
}

// NewIntegrationHandler creates a new IntegrationHandler
func NewIntegrationHandler(integrationService *onboardingapp.IntegrationService) *IntegrationHandler {
	return &IntegrationHandler{
		integrationService: integrationService,
	}
}

// TaskPayload is a task as supplied inside an integration request.
// An omitted ID means the server assigns one.
type TaskPayload struct {
	ID          string `json:"id"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status" binding:"omitempty,oneof='Not Started' 'In Progress' Completed Blocked"`
	AssignedTo  string `json:"assignedTo"`
	Team        string `json:"team" binding:"omitempty,oneof=Sales Operations Legal Finance Product"`
	Deadline    string `json:"deadline" binding:"omitempty,calendardate"`
}

// CreateIntegrationRequest represents a request to create an integration
type CreateIntegrationRequest struct {
	Account                string        `json:"account" binding:"required"`
	Contact                string        `json:"contact" binding:"required"`
	AccountExecutive       string        `json:"accountExecutive" binding:"required"`
	IntegrationType        string        `json:"integrationType" binding:"omitempty,oneof='AI Automated Prior Authorizations' 'AI Automation for DME' 'Full Service DME RCM' 'AI Population Health Analytics'"`
	IntegrationScopeDocURL string        `json:"integrationScopeDocUrl"`
	AttioRecordID          string        `json:"attioRecordId"`
	AttioAccountURL        string        `json:"attioAccountUrl"`
	Priority               string        `json:"priority" binding:"omitempty,oneof=Highest High Medium Low"`
	KickoffDate            string        `json:"kickoffDate" binding:"required,calendardate"`
	Stage                  string        `json:"stage" binding:"omitempty,oneof='New Integrations' 'In Progress' Review Completed"`
	Tasks                  []TaskPayload `json:"tasks" binding:"omitempty,dive"`
}

// UpdateIntegrationRequest represents a partial integration update.
// Omitted fields are untouched; a present tasks array replaces the
// stored task set wholesale.
type UpdateIntegrationRequest struct {
	Account                *string        `json:"account" binding:"omitempty,min=1"`
	Contact                *string        `json:"contact" binding:"omitempty,min=1"`
	AccountExecutive       *string        `json:"accountExecutive" binding:"omitempty,min=1"`
	IntegrationType        *string        `json:"integrationType" binding:"omitempty,oneof='AI Automated Prior Authorizations' 'AI Automation for DME' 'Full Service DME RCM' 'AI Population Health Analytics'"`
	IntegrationScopeDocURL *string        `json:"integrationScopeDocUrl"`
	AttioRecordID          *string        `json:"attioRecordId"`
	AttioAccountURL        *string        `json:"attioAccountUrl"`
	Priority               *string        `json:"priority" binding:"omitempty,oneof=Highest High Medium Low"`
	KickoffDate            *string        `json:"kickoffDate" binding:"omitempty,min=1,calendardate"`
	Stage                  *string        `json:"stage" binding:"omitempty,oneof='New Integrations' 'In Progress' Review Completed"`
	Tasks                  *[]TaskPayload `json:"tasks" binding:"omitempty,dive"`
}

// CreateTaskRequest represents a request to add a task to an integration
type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status" binding:"omitempty,oneof='Not Started' 'In Progress' Completed Blocked"`
	AssignedTo  string `json:"assignedTo"`
	Team        string `json:"team" binding:"omitempty,oneof=Sales Operations Legal Finance Product"`
	Deadline    string `json:"deadline" binding:"omitempty,calendardate"`
}

// UpdateTaskRequest represents a partial task update
type UpdateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1"`
	Description *string `json:"description"`
	Status      *string `json:"status" binding:"omitempty,oneof='Not Started' 'In Progress' Completed Blocked"`
	AssignedTo  *string `json:"assignedTo"`
	Team        *string `json:"team" binding:"omitempty,oneof=Sales Operations Legal Finance Product"`
	Deadline    *string `json:"deadline" binding:"omitempty,calendardate"`
}

// List returns all integrations ordered by priority then recency
func (h *IntegrationHandler) List(c *gin.Context) {
	integrations, err := h.integrationService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, integrations)
}

// Get returns a single integration with its tasks
func (h *IntegrationHandler) Get(c *gin.Context) {
	integration, err := h.integrationService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, integration)
}

// Create creates a new integration
func (h *IntegrationHandler) Create(c *gin.Context) {
	var req CreateIntegrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	appReq := onboardingapp.CreateIntegrationRequest{
		Account:                req.Account,
		Contact:                req.Contact,
		AccountExecutive:       req.AccountExecutive,
		IntegrationType:        req.IntegrationType,
		IntegrationScopeDocURL: req.IntegrationScopeDocURL,
		AttioRecordID:          req.AttioRecordID,
		AttioAccountURL:        req.AttioAccountURL,
		Priority:               req.Priority,
		KickoffDate:            req.KickoffDate,
		Stage:                  req.Stage,
		Tasks:                  toTaskInputs(req.Tasks),
	}

	integration, err := h.integrationService.Create(c.Request.Context(), appReq)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, integration)
}

// Update applies a partial update to an integration
func (h *IntegrationHandler) Update(c *gin.Context) {
	var req UpdateIntegrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	appReq := onboardingapp.UpdateIntegrationRequest{
		Account:                req.Account,
		Contact:                req.Contact,
		AccountExecutive:       req.AccountExecutive,
		IntegrationType:        req.IntegrationType,
		IntegrationScopeDocURL: req.IntegrationScopeDocURL,
		AttioRecordID:          req.AttioRecordID,
		AttioAccountURL:        req.AttioAccountURL,
		Priority:               req.Priority,
		KickoffDate:            req.KickoffDate,
		Stage:                  req.Stage,
	}
	if req.Tasks != nil {
		inputs := toTaskInputs(*req.Tasks)
		appReq.Tasks = &inputs
	}

	integration, err := h.integrationService.Update(c.Request.Context(), c.Param("id"), appReq)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, integration)
}

// Delete removes an integration and all of its tasks
func (h *IntegrationHandler) Delete(c *gin.Context) {
	if err := h.integrationService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Message(c, "Integration deleted successfully")
}

// AddTask appends a new task to an integration
func (h *IntegrationHandler) AddTask(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	task, err := h.integrationService.AddTask(c.Request.Context(), c.Param("id"), onboardingapp.CreateTaskRequest{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		AssignedTo:  req.AssignedTo,
		Team:        req.Team,
		Deadline:    req.Deadline,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, task)
}

// UpdateTask applies a partial update to a single task
func (h *IntegrationHandler) UpdateTask(c *gin.Context) {
	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	task, err := h.integrationService.UpdateTask(c.Request.Context(), c.Param("id"), c.Param("taskId"), onboardingapp.UpdateTaskRequest{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		AssignedTo:  req.AssignedTo,
		Team:        req.Team,
		Deadline:    req.Deadline,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, task)
}

// DeleteTask removes a single task from an integration
func (h *IntegrationHandler) DeleteTask(c *gin.Context) {
	if err := h.integrationService.DeleteTask(c.Request.Context(), c.Param("id"), c.Param("taskId")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Message(c, "Task deleted successfully")
}

func toTaskInputs(payloads []TaskPayload) []onboardingapp.TaskInput {
	inputs := make([]onboardingapp.TaskInput, len(payloads))
	for i, p := range payloads {
		inputs[i] = onboardingapp.TaskInput{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			Status:      p.Status,
			AssignedTo:  p.AssignedTo,
			Team:        p.Team,
			Deadline:    p.Deadline,
		}
	}
	return inputs
}
