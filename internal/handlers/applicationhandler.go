package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Garimajunejaa/jobportall/internal/dtos"
	"github.com/Garimajunejaa/jobportall/internal/middleware"
	"github.com/Garimajunejaa/jobportall/internal/services"
)

type ApplicationHandler struct {
	Applications *services.ApplicationService
}

func NewApplicationHandler(applications *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{Applications: applications}
}

// Apply is POST /application/apply/:id (student only); :id is the job.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	jobID, ok := pathID(c)
	if !ok {
		return
	}
	if _, err := h.Applications.Apply(c.Request.Context(), middleware.UserID(c), jobID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Successfully applied for the job!",
	})
}

// AppliedJobs is GET /application/get: the caller's applications.
func (h *ApplicationHandler) AppliedJobs(c *gin.Context) {
	applications, err := h.Applications.AppliedJobs(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"applications": applications,
	})
}

// Applicants is GET /application/:id/applicants (recruiter only); :id is the
// job.
func (h *ApplicationHandler) Applicants(c *gin.Context) {
	jobID, ok := pathID(c)
	if !ok {
		return
	}
	applications, err := h.Applications.Applicants(c.Request.Context(), middleware.UserID(c), jobID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"applications": applications,
	})
}

// UpdateStatus is PUT /application/status/:id/update (recruiter only).
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	applicationID, ok := pathID(c)
	if !ok {
		return
	}
	var req dtos.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	application, err := h.Applications.UpdateStatus(c.Request.Context(), applicationID, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Application status updated to " + application.Status,
	})
}
