// Package stats is a read-only projection over a validated template.
// It feeds editor displays and plays no part in the validation verdict.
package stats

import (
	"unicode/utf8"

	"whatsapp-template-linter/internal/schema"
)

// SizeClass buckets a template by total character count.
type SizeClass string

const (
	SizeSmall     SizeClass = "Small"
	SizeMedium    SizeClass = "Medium"
	SizeLarge     SizeClass = "Large"
	SizeVeryLarge SizeClass = "VeryLarge"
)

type Stats struct {
	TotalCharacters int            `json:"total_characters"`
	ComponentCounts map[string]int `json:"component_counts"`
	VariableCount   int            `json:"variable_count"`
	ButtonCount     int            `json:"button_count"`
	SizeClass       SizeClass      `json:"size_class"`
}

// Compute derives the statistics of a template. Characters are counted
// as runes over every user-visible text field, including button labels.
func Compute(t *schema.Template) Stats {
	s := Stats{ComponentCounts: map[string]int{}}

	countText := func(text string) {
		s.TotalCharacters += utf8.RuneCountInString(text)
		if indices, err := schema.ScanPlaceholders(text); err == nil {
			s.VariableCount += len(indices)
		}
	}

	for _, c := range t.Components {
		s.ComponentCounts[string(c.ComponentType())]++
		switch comp := c.(type) {
		case *schema.Header:
			countText(comp.Text)
		case *schema.Body:
			countText(comp.Text)
		case *schema.Footer:
			countText(comp.Text)
		case *schema.Buttons:
			s.ButtonCount += len(comp.Buttons)
			for _, b := range comp.Buttons {
				countText(buttonText(b))
				if u, ok := b.(*schema.URLButton); ok {
					if indices, err := schema.ScanPlaceholders(u.URL); err == nil {
						s.VariableCount += len(indices)
					}
				}
			}
		}
	}

	switch {
	case s.TotalCharacters < 100:
		s.SizeClass = SizeSmall
	case s.TotalCharacters < 500:
		s.SizeClass = SizeMedium
	case s.TotalCharacters < 1000:
		s.SizeClass = SizeLarge
	default:
		s.SizeClass = SizeVeryLarge
	}
	return s
}

func buttonText(b schema.Button) string {
	switch btn := b.(type) {
	case *schema.QuickReplyButton:
		return btn.Text
	case *schema.URLButton:
		return btn.Text
	case *schema.PhoneNumberButton:
		return btn.Text
	case *schema.CopyCodeButton:
		return btn.Example
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
