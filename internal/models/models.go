package models

import (
	"time"
)

// LintRun records one validation of a template, with the serialized
// report for later inspection from the dashboard.
type LintRun struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	TemplateName string    `gorm:"type:varchar(512);index" json:"template_name"`
	Language     string    `gorm:"type:varchar(50)" json:"language"`
	Category     string    `gorm:"type:varchar(100)" json:"category"`
	Valid        bool      `json:"valid"`
	ErrorCount   int       `json:"error_count"`
	WarningCount int       `json:"warning_count"`
	InfoCount    int       `json:"info_count"`
	Report       string    `gorm:"type:text" json:"report"` // JSON ValidationReport
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (LintRun) TableName() string {
	return "lint_runs"
}

// TemplateDraft stores the raw text of a template a user is working
// on, so drafts survive editor reloads.
type TemplateDraft struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(512);uniqueIndex" json:"name"`
	Raw       string    `gorm:"type:text" json:"raw"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (TemplateDraft) TableName() string {
	return "template_drafts"
}
