package stats

import (
	"strings"
	"testing"

	"whatsapp-template-linter/internal/schema"

	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	tpl := &schema.Template{
		Name:     "promo",
		Language: "en",
		Category: schema.CategoryMarketing,
		Components: []schema.Component{
			&schema.Header{Format: schema.FormatText, Text: "Hello {{1}}"}, // 11 chars, 1 var
			&schema.Body{Text: "Deal {{1}} ends {{2}}"},                    // 21 chars, 2 vars
			&schema.Footer{Text: "Bye"},                                    // 3 chars
			&schema.Buttons{Buttons: []schema.Button{
				&schema.QuickReplyButton{Text: "More"},                            // 4 chars
				&schema.URLButton{Text: "Shop", URL: "https://example.com/{{1}}"}, // 4 chars, 1 var in URL
			}},
		},
	}

	s := Compute(tpl)
	assert.Equal(t, 43, s.TotalCharacters)
	assert.Equal(t, 4, s.VariableCount)
	assert.Equal(t, 2, s.ButtonCount)
	assert.Equal(t, SizeSmall, s.SizeClass)
	assert.Equal(t, map[string]int{
		"HEADER": 1, "BODY": 1, "FOOTER": 1, "BUTTONS": 1,
	}, s.ComponentCounts)
}

func TestSizeClasses(t *testing.T) {
	tests := []struct {
		chars int
		want  SizeClass
	}{
		{0, SizeSmall},
		{99, SizeSmall},
		{100, SizeMedium},
		{499, SizeMedium},
		{500, SizeLarge},
		{999, SizeLarge},
		{1000, SizeVeryLarge},
	}

	for _, tt := range tests {
		tpl := &schema.Template{
			Category: schema.CategoryUtility,
			Components: []schema.Component{
				&schema.Body{Text: strings.Repeat("a", tt.chars)},
			},
		}
		assert.Equal(t, tt.want, Compute(tpl).SizeClass, "chars=%d", tt.chars)
	}
}

func TestComputeCountsMultiByteRunes(t *testing.T) {
	tpl := &schema.Template{
		Category: schema.CategoryUtility,
		Components: []schema.Component{
			&schema.Body{Text: "héllo wörld"}, // 11 runes
		},
	}
	assert.Equal(t, 11, Compute(tpl).TotalCharacters)
}
