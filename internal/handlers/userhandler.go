package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Garimajunejaa/jobportall/internal/dtos"
	"github.com/Garimajunejaa/jobportall/internal/middleware"
	"github.com/Garimajunejaa/jobportall/internal/services"
)

type UserHandler struct {
	Users        *services.UserService
	Applications *services.ApplicationService
}

func NewUserHandler(users *services.UserService, applications *services.ApplicationService) *UserHandler {
	return &UserHandler{Users: users, Applications: applications}
}

// Register is POST /user/register. Multipart so an optional profile photo
// can come with the form fields.
func (h *UserHandler) Register(c *gin.Context) {
	var req dtos.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err)
		return
	}
	// Photo is optional; FormFile errors just mean none was attached.
	photo, _ := c.FormFile("file")

	if _, err := h.Users.Register(c.Request.Context(), &req, photo); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Account created successfully.",
	})
}

// Login is POST /user/login. The token is returned in the body and set as an
// http-only cookie for browser clients.
func (h *UserHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	token, user, err := h.Users.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.SetCookie(middleware.CookieName, token, int(h.Users.Tokens.TTL().Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Welcome back " + user.Fullname,
		"token":   token,
		"user":    user,
	})
}

// Logout is GET /user/logout. Clearing the cookie is all a stateless session
// allows; an already-issued token stays valid until it expires.
func (h *UserHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.CookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out successfully.",
	})
}

// UpdateProfile is POST /user/profile/update (multipart, authenticated).
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req dtos.UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err)
		return
	}
	resume, _ := c.FormFile("file")

	user, err := h.Users.UpdateProfile(c.Request.Context(), middleware.UserID(c), &req, resume)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile updated successfully.",
		"user":    user,
	})
}

// AppliedJobs is GET /user/applications: the caller's applications with job
// and company expanded.
func (h *UserHandler) AppliedJobs(c *gin.Context) {
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
