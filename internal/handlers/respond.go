package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Garimajunejaa/jobportall/internal/common"
)

// respondError translates a service error into the JSON envelope. This is
// the only place error codes become HTTP statuses.
func respondError(c *gin.Context, err error) {
	c.JSON(common.HTTPStatus(err), gin.H{
		"success": false,
		"message": common.Message(err),
	})
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": "Invalid request: " + err.Error(),
	})
}

// HealthCheck reports liveness.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
