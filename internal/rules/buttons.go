package rules

import (
	"fmt"

	"whatsapp-template-linter/internal/schema"
)

// checkButtons recomputes the per-type button caps and the QUICK_REPLY
// grouping rule. Contiguity is judged by index adjacency in the
// original button order; the engine never reorders buttons.
func checkButtons(t *schema.Template) []Diagnostic {
	buttons := t.Buttons()
	if buttons == nil {
		return nil
	}

	var diags []Diagnostic

	if n := len(buttons.Buttons); n > schema.MaxButtons {
		diags = append(diags, errorf("buttons",
			fmt.Sprintf("a template supports at most %d buttons, found %d", schema.MaxButtons, n)))
	}

	counts := map[schema.ButtonType]int{}
	firstQR, lastQR := -1, -1
	for i, b := range buttons.Buttons {
		counts[b.ButtonType()]++
		if b.ButtonType() == schema.ButtonQuickReply {
			if firstQR == -1 {
				firstQR = i
			}
			lastQR = i
		}
	}

	if n := counts[schema.ButtonPhoneNumber]; n > 1 {
		diags = append(diags, errorf("buttons",
			fmt.Sprintf("at most one PHONE_NUMBER button is allowed, found %d", n)))
	}
	if n := counts[schema.ButtonURL]; n > 2 {
		diags = append(diags, errorf("buttons",
			fmt.Sprintf("at most two URL buttons are allowed, found %d", n)))
	}
	if n := counts[schema.ButtonCopyCode]; n > 1 {
		diags = append(diags, errorf("buttons",
			fmt.Sprintf("at most one COPY_CODE button is allowed, found %d", n)))
	}

	if n := counts[schema.ButtonQuickReply]; n > 0 && lastQR-firstQR+1 != n {
		diags = append(diags, errorf("buttons",
			"QUICK_REPLY buttons must be adjacent to each other"))
	}
	return diags
}
