package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Garimajunejaa/jobportall/internal/dtos"
	"github.com/Garimajunejaa/jobportall/internal/middleware"
	"github.com/Garimajunejaa/jobportall/internal/services"
)

type JobHandler struct {
	Jobs *services.JobService
}

func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{Jobs: jobs}
}

// Post is POST /job/post (recruiter only).
func (h *JobHandler) Post(c *gin.Context) {
	var req dtos.PostJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	job, err := h.Jobs.Post(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "New job created successfully.",
		"job":     job,
	})
}

// All is GET /job/all with an optional keyword query parameter.
func (h *JobHandler) All(c *gin.Context) {
	jobs, err := h.Jobs.All(c.Request.Context(), c.Query("keyword"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"jobs":    jobs,
	})
}

// Get is GET /job/get/:id.
func (h *JobHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	job, err := h.Jobs.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"job":     job,
	})
}

// AdminJobs is GET /job/getadminjobs (recruiter only).
func (h *JobHandler) AdminJobs(c *gin.Context) {
	jobs, err := h.Jobs.AdminJobs(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"jobs":    jobs,
	})
}

// Filter is POST /job/filter.
func (h *JobHandler) Filter(c *gin.Context) {
	var req dtos.FilterJobsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	jobs, err := h.Jobs.Filter(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(jobs),
		"jobs":    jobs,
	})
}

// Recommendations is GET /job/recommendations (student only).
func (h *JobHandler) Recommendations(c *gin.Context) {
	jobs, err := h.Jobs.Recommendations(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"recommendedJobs": jobs,
	})
}

// Dashboard is GET /job/dashboard (recruiter only).
func (h *JobHandler) Dashboard(c *gin.Context) {
	stats, err := h.Jobs.Dashboard(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats":   stats,
	})
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid id",
		})
		return 0, false
	}
	return uint(id), true
}
