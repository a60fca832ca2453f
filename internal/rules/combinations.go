package rules

import (
	"fmt"

	"whatsapp-template-linter/internal/schema"
)

// checkCombinations re-raises the header cross-field constraint with a
// richer message than the structural layer's first-failure report, and
// verifies the conditionally required fields of OTP buttons.
func checkCombinations(t *schema.Template) []Diagnostic {
	var diags []Diagnostic

	if header := t.Header(); header != nil {
		if header.Format == schema.FormatText && header.Text == "" {
			diags = append(diags, errorf("header.text",
				"a TEXT header has no text to display"))
		}
		if header.Format.IsMedia() && (header.Example == nil || header.Example.HeaderURL == "") {
			diags = append(diags, errorf("header.example.header_url",
				fmt.Sprintf("a %s header requires an example media URL for review", header.Format)))
		}
	}

	if buttons := t.Buttons(); buttons != nil {
		for i, b := range buttons.Buttons {
			otp, ok := b.(*schema.OTPButton)
			if !ok {
				continue
			}
			switch otp.OTPType {
			case schema.OTPOneTap:
				if otp.PackageName == "" {
					diags = append(diags, errorf(fmt.Sprintf("buttons[%d].package_name", i),
						"ONE_TAP OTP buttons require the Android package_name of the receiving app"))
				}
			case schema.OTPZeroTap:
				if !otp.ZeroTapTermsAccepted {
					diags = append(diags, errorf(fmt.Sprintf("buttons[%d].zero_tap_terms_accepted", i),
						"ZERO_TAP OTP buttons require zero_tap_terms_accepted to be true"))
				}
			}
		}
	}
	return diags
}
