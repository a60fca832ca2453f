package rules

import (
	"fmt"

	"whatsapp-template-linter/internal/schema"
)

// placeholderField is one text field that supports {{n}} substitution.
type placeholderField struct {
	path string
	text string
}

// placeholderFields collects the fields the variable rules apply to:
// TEXT header text, body text, and URL button URLs. Footer text and
// fixed-label buttons never carry placeholders.
func placeholderFields(t *schema.Template) []placeholderField {
	var fields []placeholderField
	if header := t.Header(); header != nil && header.Format == schema.FormatText {
		fields = append(fields, placeholderField{"header.text", header.Text})
	}
	if body := t.Body(); body != nil {
		fields = append(fields, placeholderField{"body.text", body.Text})
	}
	if buttons := t.Buttons(); buttons != nil {
		for i, b := range buttons.Buttons {
			if u, ok := b.(*schema.URLButton); ok {
				fields = append(fields, placeholderField{fmt.Sprintf("buttons[%d].url", i), u.URL})
			}
		}
	}
	return fields
}

// checkVariables re-validates placeholder numbering on every
// substitutable field. Numbering must run 1..k with no gaps; duplicate
// indices are legal (the same value may back two placeholders) but are
// flagged for review.
func checkVariables(t *schema.Template) []Diagnostic {
	var diags []Diagnostic
	for _, f := range placeholderFields(t) {
		indices, err := schema.ScanPlaceholders(f.text)
		if err != nil {
			diags = append(diags, errorf(f.path, err.Error()))
			continue
		}
		if len(indices) == 0 {
			continue
		}
		if ok, found := schema.CheckSequential(indices); !ok {
			diags = append(diags, errorf(f.path,
				fmt.Sprintf("placeholders must be numbered sequentially from {{1}} with no gaps. Found: %s", found)))
		}
		if dups := schema.DuplicatePlaceholders(indices); len(dups) > 0 {
			diags = append(diags, warn(f.path,
				fmt.Sprintf("placeholder(s) used more than once: %s", schema.FormatPlaceholders(dups)),
				"Reusing a placeholder is allowed but is usually a copy mistake"))
		}
	}
	return diags
}
