package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Garimajunejaa/jobportall/internal/dtos"
	"github.com/Garimajunejaa/jobportall/internal/middleware"
	"github.com/Garimajunejaa/jobportall/internal/services"
)

type CompanyHandler struct {
	Companies *services.CompanyService
}

func NewCompanyHandler(companies *services.CompanyService) *CompanyHandler {
	return &CompanyHandler{Companies: companies}
}

// Register is POST /company/register (recruiter only).
func (h *CompanyHandler) Register(c *gin.Context) {
	var req dtos.RegisterCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	company, err := h.Companies.Register(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Company registered successfully.",
		"company": company,
	})
}

// List is GET /company/get: companies owned by the caller.
func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.Companies.ListByRecruiter(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"companies": companies,
	})
}

// Get is GET /company/get/:id.
func (h *CompanyHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	company, err := h.Companies.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"company": company,
	})
}

// Update is PUT /company/update/:id (recruiter only, multipart for the logo).
func (h *CompanyHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dtos.UpdateCompanyRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err)
		return
	}
	logo, _ := c.FormFile("file")

	company, err := h.Companies.Update(c.Request.Context(), middleware.UserID(c), id, &req, logo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Company information updated.",
		"company": company,
	})
}
