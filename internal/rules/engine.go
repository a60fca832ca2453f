package rules

import (
	"fmt"

	"whatsapp-template-linter/internal/schema"
)

// pass is one semantic check over a structurally valid template. Every
// pass is total: it appends diagnostics and never fails.
type pass func(*schema.Template) []Diagnostic

// The fixed pass order determines only the sequence of diagnostics in
// the report, never validity.
var passes = []pass{
	checkStructure,
	checkCategory,
	checkCombinations,
	checkVariables,
	checkLimits,
	checkButtons,
	checkMedia,
	checkTTL,
}

// Validate runs every rule pass over the template and aggregates the
// diagnostics into a report. Passes never short-circuit each other, so
// a single call surfaces everything detectable at once. The function is
// pure: same template in, same report out, no shared state.
func Validate(t *schema.Template) Report {
	var diags []Diagnostic
	for _, p := range passes {
		diags = append(diags, p(t)...)
	}
	return buildReport(diags)
}

// componentRank gives the canonical HEADER→BODY→FOOTER→BUTTONS order.
func componentRank(ct schema.ComponentType) int {
	switch ct {
	case schema.ComponentHeader:
		return 0
	case schema.ComponentBody:
		return 1
	case schema.ComponentFooter:
		return 2
	default:
		return 3
	}
}

// checkStructure verifies BODY presence and warns when components
// deviate from the canonical order. Order never affects validity.
func checkStructure(t *schema.Template) []Diagnostic {
	var diags []Diagnostic

	if t.Body() == nil {
		diags = append(diags, errorf("body", "a template requires exactly one BODY component"))
	}

	prev := -1
	for _, c := range t.Components {
		rank := componentRank(c.ComponentType())
		if rank < prev {
			diags = append(diags, warn("components",
				"components are not in the canonical HEADER, BODY, FOOTER, BUTTONS order",
				"Reorder components to match the canonical order"))
			break
		}
		prev = rank
	}
	return diags
}

// checkTTL is the outer safety net on the message send TTL: absence is
// only advisory, and the absolute window applies regardless of
// category (the category pass enforces the narrower windows).
func checkTTL(t *schema.Template) []Diagnostic {
	ttl := t.MessageSendTTLSeconds
	if ttl == nil {
		return []Diagnostic{info("messageSendTtlSeconds",
			"no message send TTL is set",
			"Set message_send_ttl_seconds to control how long an undelivered message is retried")}
	}
	if *ttl < schema.MinTTLSeconds || *ttl > schema.MaxTTLSeconds {
		return []Diagnostic{errorf("messageSendTtlSeconds",
			fmt.Sprintf("message send TTL must be between %d and %d seconds", schema.MinTTLSeconds, schema.MaxTTLSeconds))}
	}
	return nil
}
