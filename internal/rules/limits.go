package rules

import (
	"fmt"
	"unicode/utf8"

	"whatsapp-template-linter/internal/schema"
)

// checkLength emits an error when text exceeds the limit and a
// proximity warning when it is within 10% of it. The warning is a UX
// nudge, not a platform requirement.
func checkLength(path, text string, limit int) []Diagnostic {
	n := utf8.RuneCountInString(text)
	switch {
	case n > limit:
		return []Diagnostic{errorf(path,
			fmt.Sprintf("text is %d characters, exceeding the %d character limit", n, limit))}
	case n*10 > limit*9:
		return []Diagnostic{warn(path,
			fmt.Sprintf("text is %d characters, close to the %d character limit", n, limit),
			"Shorten the text to leave room for substituted values")}
	}
	return nil
}

// checkLimits re-validates every per-field character limit.
func checkLimits(t *schema.Template) []Diagnostic {
	var diags []Diagnostic

	if header := t.Header(); header != nil && header.Format == schema.FormatText {
		diags = append(diags, checkLength("header.text", header.Text, schema.MaxHeaderTextLength)...)
	}
	if body := t.Body(); body != nil {
		diags = append(diags, checkLength("body.text", body.Text, schema.MaxBodyTextLength)...)
	}
	if footer := t.Footer(); footer != nil {
		diags = append(diags, checkLength("footer.text", footer.Text, schema.MaxFooterTextLength)...)
	}
	if buttons := t.Buttons(); buttons != nil {
		for i, b := range buttons.Buttons {
			if text := buttonLabel(b); text != "" {
				path := fmt.Sprintf("buttons[%d].text", i)
				diags = append(diags, checkLength(path, text, schema.MaxButtonTextLength)...)
			}
		}
	}
	return diags
}

// buttonLabel returns the user-supplied label of a button, or "" for
// fixed-label variants.
func buttonLabel(b schema.Button) string {
	switch btn := b.(type) {
	case *schema.QuickReplyButton:
		return btn.Text
	case *schema.URLButton:
		return btn.Text
	case *schema.PhoneNumberButton:
		return btn.Text
	case *schema.OTPButton:
		return btn.Text
	case *schema.CatalogButton:
		return btn.Text
	case *schema.MPMButton:
		return btn.Text
	case *schema.FlowButton:
		return btn.Text
	case *schema.OrderDetailsButton:
		return btn.Text
	case *schema.VoiceCallButton:
		return btn.Text
	default:
		return ""
	}
}
