package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lifecal/backend/internal/model"
)

// Root is a liveness endpoint.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, model.HealthResponse{
		Message: "All-In-One Life Management API",
	})
}
