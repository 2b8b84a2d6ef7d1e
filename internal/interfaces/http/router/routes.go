package router

import (
	"github.com/onboard/backend/internal/interfaces/http/handler"
)

// IntegrationRoutes builds the route group for integrations and their
// nested tasks
func IntegrationRoutes(h *handler.IntegrationHandler) *DomainGroup {
	group := NewDomainGroup("integrations", "/integrations")
	group.GET("", h.List)
	group.POST("", h.Create)
	group.GET("/:id", h.Get)
	group.PATCH("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
	group.POST("/:id/tasks", h.AddTask)
	group.PATCH("/:id/tasks/:taskId", h.UpdateTask)
	group.DELETE("/:id/tasks/:taskId", h.DeleteTask)
	return group
}

// DealRoutes builds the read-only route group for CRM deals
func DealRoutes(h *handler.DealHandler) *DomainGroup {
	group := NewDomainGroup("deals", "/deals")
	group.GET("", h.List)
	group.GET("/:id", h.Get)
	return group
}
