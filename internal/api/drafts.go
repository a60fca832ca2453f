package api

import (
	"net/http"

	"whatsapp-template-linter/internal/database"
	"whatsapp-template-linter/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

type DraftHandler struct{}

func NewDraftHandler() *DraftHandler {
	return &DraftHandler{}
}

// SaveDraft upserts the raw text of a named draft.
func (h *DraftHandler) SaveDraft(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
		Raw  string `json:"raw" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft := models.TemplateDraft{Name: req.Name, Raw: req.Raw}
	err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"raw", "updated_at"}),
	}).Create(&draft).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, draft)
}

// GetDrafts lists saved drafts, most recently touched first.
func (h *DraftHandler) GetDrafts(c *gin.Context) {
	var drafts []models.TemplateDraft
	if err := database.DB.Order("updated_at DESC").Find(&drafts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, drafts)
}

// GetDraft fetches one draft by name.
func (h *DraftHandler) GetDraft(c *gin.Context) {
	var draft models.TemplateDraft
	if err := database.DB.First(&draft, "name = ?", c.Param("name")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Draft not found"})
		return
	}
	c.JSON(http.StatusOK, draft)
}

// DeleteDraft removes a draft by name.
func (h *DraftHandler) DeleteDraft(c *gin.Context) {
	if err := database.DB.Delete(&models.TemplateDraft{}, "name = ?", c.Param("name")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "Draft deleted"})
}
