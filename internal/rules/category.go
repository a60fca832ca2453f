package rules

import (
	"fmt"

	"whatsapp-template-linter/internal/schema"
)

// Category-specific TTL windows, in seconds. The structural layer only
// enforces the absolute [30, 2592000] window; approval additionally
// requires these per-category bounds.
const (
	authTTLMin      = 30
	authTTLMax      = 900
	utilityTTLMin   = 30
	utilityTTLMax   = 43_200
	marketingTTLMin = 43_200
	marketingTTLMax = 2_592_000
)

// checkCategory applies the policy rules of the declared category.
func checkCategory(t *schema.Template) []Diagnostic {
	switch t.Category {
	case schema.CategoryAuthentication:
		return checkAuthenticationPolicy(t)
	case schema.CategoryUtility:
		return checkUtilityPolicy(t)
	case schema.CategoryMarketing:
		return checkMarketingPolicy(t)
	}
	return nil
}

func ttlWindowError(ttl *int, min, max int, category schema.Category) *Diagnostic {
	if ttl == nil || (*ttl >= min && *ttl <= max) {
		return nil
	}
	d := errorf("messageSendTtlSeconds",
		fmt.Sprintf("%s templates require a TTL between %d and %d seconds", category, min, max))
	return &d
}

func checkAuthenticationPolicy(t *schema.Template) []Diagnostic {
	var diags []Diagnostic

	if d := ttlWindowError(t.MessageSendTTLSeconds, authTTLMin, authTTLMax, t.Category); d != nil {
		diags = append(diags, *d)
	}

	if buttons := t.Buttons(); buttons != nil {
		hasOTP := false
		for _, b := range buttons.Buttons {
			if b.ButtonType() == schema.ButtonOTP {
				hasOTP = true
				break
			}
		}
		if !hasOTP {
			diags = append(diags, warn("buttons",
				"authentication templates normally deliver the code through an OTP button",
				"Add an OTP button (COPY_CODE, ONE_TAP or ZERO_TAP)"))
		}
	}

	if body := t.Body(); body != nil && !body.AddSecurityRecommendation {
		diags = append(diags, info("body.add_security_recommendation",
			"security recommendation text is not enabled",
			"Set add_security_recommendation to advise users not to share the code"))
	}
	return diags
}

func checkUtilityPolicy(t *schema.Template) []Diagnostic {
	var diags []Diagnostic

	if d := ttlWindowError(t.MessageSendTTLSeconds, utilityTTLMin, utilityTTLMax, t.Category); d != nil {
		diags = append(diags, *d)
	}

	if t.SubCategory == "ORDER_STATUS" && t.Buttons() != nil {
		diags = append(diags, warn("buttons",
			"buttons are atypical for order-status messages",
			"Consider removing buttons from ORDER_STATUS templates"))
	}
	return diags
}

func checkMarketingPolicy(t *schema.Template) []Diagnostic {
	var diags []Diagnostic

	if d := ttlWindowError(t.MessageSendTTLSeconds, marketingTTLMin, marketingTTLMax, t.Category); d != nil {
		diags = append(diags, *d)
	}

	if t.Header() == nil {
		diags = append(diags, info("header",
			"marketing templates without a header tend to underperform",
			"Media headers perform better; consider adding an IMAGE or VIDEO header"))
	}
	if t.Buttons() == nil {
		diags = append(diags, info("buttons",
			"marketing templates without buttons tend to underperform",
			"CTAs perform better; consider adding a URL or QUICK_REPLY button"))
	}
	return diags
}
