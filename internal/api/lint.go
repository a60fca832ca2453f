package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"whatsapp-template-linter/internal/database"
	"whatsapp-template-linter/internal/models"
	"whatsapp-template-linter/internal/rules"
	"whatsapp-template-linter/internal/schema"
	"whatsapp-template-linter/internal/stats"
	"whatsapp-template-linter/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type LintHandler struct {
	Hub *ws.Hub
}

func NewLintHandler(hub *ws.Hub) *LintHandler {
	return &LintHandler{Hub: hub}
}

// parseBody parses the raw request body into a template, writing the
// appropriate 4xx response on failure.
func parseBody(c *gin.Context) (*schema.Template, bool) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return nil, false
	}

	t, err := schema.Parse(raw)
	if err != nil {
		var parseErr *schema.ParseError
		var schemaErr *schema.SchemaError
		switch {
		case errors.As(err, &parseErr):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":  parseErr.Message,
				"line":   parseErr.Line,
				"column": parseErr.Column,
			})
		case errors.As(err, &schemaErr):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": schemaErr.Reason,
				"field": schemaErr.Field,
			})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return nil, false
	}
	return t, true
}

// Lint runs the full pipeline over a raw template document, stores the
// run and broadcasts it to connected editors.
func (h *LintHandler) Lint(c *gin.Context) {
	t, ok := parseBody(c)
	if !ok {
		return
	}

	report := rules.Validate(t)
	st := stats.Compute(t)

	run := models.LintRun{
		TemplateName: t.Name,
		Language:     t.Language,
		Category:     string(t.Category),
		Valid:        report.IsValid,
		ErrorCount:   len(report.Errors),
		WarningCount: len(report.Warnings),
		InfoCount:    len(report.Info),
	}
	if payload, err := json.Marshal(report); err == nil {
		run.Report = string(payload)
	}
	if err := database.DB.Create(&run).Error; err != nil {
		logrus.Errorf("Failed to store lint run for %s: %v", t.Name, err)
	} else if h.Hub != nil {
		h.Hub.NotifyReport(run)
	}

	c.JSON(http.StatusOK, gin.H{"report": report, "stats": st})
}

// Validate runs the rule engine only, without persisting anything.
func (h *LintHandler) Validate(c *gin.Context) {
	t, ok := parseBody(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, rules.Validate(t))
}

// Stats returns the read-only statistics projection of a template.
func (h *LintHandler) Stats(c *gin.Context) {
	t, ok := parseBody(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, stats.Compute(t))
}
