package api

import (
	"net/http"

	"whatsapp-template-linter/internal/database"
	"whatsapp-template-linter/internal/models"

	"github.com/gin-gonic/gin"
)

type RunHandler struct{}

func NewRunHandler() *RunHandler {
	return &RunHandler{}
}

// GetRuns lists stored lint runs, newest first. Optional ?name= filters
// by template name.
func (h *RunHandler) GetRuns(c *gin.Context) {
	query := database.DB.Order("created_at DESC").Limit(100)
	if name := c.Query("name"); name != "" {
		query = query.Where("template_name = ?", name)
	}

	var runs []models.LintRun
	if err := query.Find(&runs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, runs)
}

// GetRun fetches one stored lint run by id.
func (h *RunHandler) GetRun(c *gin.Context) {
	var run models.LintRun
	if err := database.DB.First(&run, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lint run not found"})
		return
	}
	c.JSON(http.StatusOK, run)
}
