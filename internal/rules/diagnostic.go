package rules

// Severity classifies how a diagnostic affects submission readiness.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Diagnostic is one reported issue. Values are immutable once created.
type Diagnostic struct {
	Field      string   `json:"field"`
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion,omitempty"`
	Severity   Severity `json:"severity"`
}

func errorf(field, message string) Diagnostic {
	return Diagnostic{Field: field, Message: message, Severity: SeverityError}
}

func warn(field, message, suggestion string) Diagnostic {
	return Diagnostic{Field: field, Message: message, Suggestion: suggestion, Severity: SeverityWarning}
}

func info(field, message, suggestion string) Diagnostic {
	return Diagnostic{Field: field, Message: message, Suggestion: suggestion, Severity: SeverityInfo}
}

// Report is the outcome of one validation call. Diagnostics are
// partitioned by severity in the order the passes produced them.
type Report struct {
	IsValid  bool         `json:"is_valid"`
	Errors   []Diagnostic `json:"errors"`
	Warnings []Diagnostic `json:"warnings"`
	Info     []Diagnostic `json:"info"`
}

// buildReport partitions diagnostics by severity, preserving pass order
// then insertion order within a pass, so reports are reproducible.
func buildReport(diags []Diagnostic) Report {
	r := Report{
		Errors:   []Diagnostic{},
		Warnings: []Diagnostic{},
		Info:     []Diagnostic{},
	}
	for _, d := range diags {
		switch d.Severity {
		case SeverityError:
			r.Errors = append(r.Errors, d)
		case SeverityWarning:
			r.Warnings = append(r.Warnings, d)
		default:
			r.Info = append(r.Info, d)
		}
	}
	r.IsValid = len(r.Errors) == 0
	return r
}
