package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalUtility = `{"name":"order_confirm","language":"en_US","category":"UTILITY",
 "components":[{"type":"BODY","text":"Order {{1}} confirmed."}]}`

func TestParseMinimalTemplate(t *testing.T) {
	tpl, err := Parse([]byte(minimalUtility))
	require.NoError(t, err)

	assert.Equal(t, "order_confirm", tpl.Name)
	assert.Equal(t, "en_US", tpl.Language)
	assert.Equal(t, CategoryUtility, tpl.Category)
	require.Len(t, tpl.Components, 1)

	body := tpl.Body()
	require.NotNil(t, body)
	assert.Equal(t, "Order {{1}} confirmed.", body.Text)
	assert.Nil(t, tpl.Header())
	assert.Nil(t, tpl.Footer())
	assert.Nil(t, tpl.Buttons())
}

func TestParseSyntaxErrorPosition(t *testing.T) {
	_, err := Parse([]byte("{\n  \"name\": oops\n}"))
	require.Error(t, err)

	parseErr, ok := err.(*ParseError)
	require.True(t, ok, "expected *ParseError, got %T", err)
	assert.Equal(t, 2, parseErr.Line)
	assert.Positive(t, parseErr.Column)
}

func TestPosition(t *testing.T) {
	raw := []byte("ab\ncdef\ng")

	tests := []struct {
		offset       int64
		line, column int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{3, 2, 1},
		{5, 2, 3},
		{8, 3, 1},
	}
	for _, tt := range tests {
		line, col := Position(raw, tt.offset)
		assert.Equal(t, tt.line, line, "offset %d", tt.offset)
		assert.Equal(t, tt.column, col, "offset %d", tt.offset)
	}
}

// parseSchemaField asserts that input fails with a SchemaError on the
// given field.
func parseSchemaField(t *testing.T, input, field string) {
	t.Helper()
	_, err := Parse([]byte(input))
	require.Error(t, err)
	schemaErr, ok := err.(*SchemaError)
	require.True(t, ok, "expected *SchemaError, got %T: %v", err, err)
	assert.Equal(t, field, schemaErr.Field)
}

func TestParseTemplateLevelViolations(t *testing.T) {
	tests := []struct {
		name  string
		input string
		field string
	}{
		{
			"name with invalid characters",
			`{"name":"x!","language":"en","category":"MARKETING","components":[{"type":"BODY","text":"hi"}]}`,
			"name",
		},
		{
			"missing name",
			`{"language":"en","category":"MARKETING","components":[{"type":"BODY","text":"hi"}]}`,
			"name",
		},
		{
			"uppercase name",
			`{"name":"MyTemplate","language":"en","category":"MARKETING","components":[{"type":"BODY","text":"hi"}]}`,
			"name",
		},
		{
			"bad language",
			`{"name":"t","language":"english","category":"MARKETING","components":[{"type":"BODY","text":"hi"}]}`,
			"language",
		},
		{
			"bad category",
			`{"name":"t","language":"en","category":"PROMO","components":[{"type":"BODY","text":"hi"}]}`,
			"category",
		},
		{
			"ttl below minimum",
			`{"name":"t","language":"en","category":"UTILITY","message_send_ttl_seconds":10,"components":[{"type":"BODY","text":"hi"}]}`,
			"messageSendTtlSeconds",
		},
		{
			"ttl above maximum",
			`{"name":"t","language":"en","category":"UTILITY","message_send_ttl_seconds":3000000,"components":[{"type":"BODY","text":"hi"}]}`,
			"messageSendTtlSeconds",
		},
		{
			"no components",
			`{"name":"t","language":"en","category":"UTILITY","components":[]}`,
			"components",
		},
		{
			"two bodies",
			`{"name":"t","language":"en","category":"UTILITY","components":[{"type":"BODY","text":"a"},{"type":"BODY","text":"b"}]}`,
			"components",
		},
		{
			"unknown component type",
			`{"name":"t","language":"en","category":"UTILITY","components":[{"type":"SIDEBAR","text":"a"}]}`,
			"components[0].type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parseSchemaField(t, tt.input, tt.field)
		})
	}
}

func wrap(components string) string {
	return `{"name":"t","language":"en","category":"UTILITY","components":[` + components + `]}`
}

func TestParseComponentViolations(t *testing.T) {
	tests := []struct {
		name       string
		components string
		field      string
	}{
		{
			"text header without text",
			`{"type":"HEADER","format":"TEXT"},{"type":"BODY","text":"hi"}`,
			"header.text",
		},
		{
			"image header without example",
			`{"type":"HEADER","format":"IMAGE"},{"type":"BODY","text":"hi"}`,
			"header.example.header_url",
		},
		{
			"unknown header format",
			`{"type":"HEADER","format":"AUDIO"},{"type":"BODY","text":"hi"}`,
			"header.format",
		},
		{
			"body placeholder gap",
			`{"type":"BODY","text":"Hi {{1}}, {{3}}"}`,
			"body.text",
		},
		{
			"malformed placeholder",
			`{"type":"BODY","text":"Hi {{abc}}"}`,
			"body.text",
		},
		{
			"footer with placeholder",
			`{"type":"BODY","text":"hi"},{"type":"FOOTER","text":"Bye {{1}}"}`,
			"footer.text",
		},
		{
			"footer code expiration out of range",
			`{"type":"BODY","text":"hi"},{"type":"FOOTER","text":"Bye","code_expiration_minutes":90}`,
			"footer.code_expiration_minutes",
		},
		{
			"empty buttons",
			`{"type":"BODY","text":"hi"},{"type":"BUTTONS","buttons":[]}`,
			"buttons",
		},
		{
			"unknown button type",
			`{"type":"BODY","text":"hi"},{"type":"BUTTONS","buttons":[{"type":"DIAL","text":"Go"}]}`,
			"buttons[0].type",
		},
		{
			"url button without url",
			`{"type":"BODY","text":"hi"},{"type":"BUTTONS","buttons":[{"type":"URL","text":"Go"}]}`,
			"buttons[0].url",
		},
		{
			"url button with relative url",
			`{"type":"BODY","text":"hi"},{"type":"BUTTONS","buttons":[{"type":"URL","text":"Go","url":"/path/only"}]}`,
			"buttons[0].url",
		},
		{
			"phone button with bad number",
			`{"type":"BODY","text":"hi"},{"type":"BUTTONS","buttons":[{"type":"PHONE_NUMBER","text":"Call","phone_number":"12345"}]}`,
			"buttons[0].phone_number",
		},
		{
			"otp button without otp_type",
			`{"type":"BODY","text":"hi"},{"type":"BUTTONS","buttons":[{"type":"OTP"}]}`,
			"buttons[0].otp_type",
		},
		{
			"copy code button without example",
			`{"type":"BODY","text":"hi"},{"type":"BUTTONS","buttons":[{"type":"COPY_CODE"}]}`,
			"buttons[0].example",
		},
		{
			"quick replies split by url button",
			`{"type":"BODY","text":"hi"},{"type":"BUTTONS","buttons":[{"type":"QUICK_REPLY","text":"Yes"},{"type":"URL","text":"Go","url":"https://example.com"},{"type":"QUICK_REPLY","text":"No"}]}`,
			"buttons",
		},
		{
			"two phone buttons",
			`{"type":"BODY","text":"hi"},{"type":"BUTTONS","buttons":[{"type":"PHONE_NUMBER","text":"A","phone_number":"+15551234567"},{"type":"PHONE_NUMBER","text":"B","phone_number":"+15557654321"}]}`,
			"buttons",
		},
		{
			"button text too long",
			`{"type":"BODY","text":"hi"},{"type":"BUTTONS","buttons":[{"type":"QUICK_REPLY","text":"This label is far too long for a button"}]}`,
			"buttons[0].text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parseSchemaField(t, wrap(tt.components), tt.field)
		})
	}
}

func TestParseFullTemplate(t *testing.T) {
	input := `{
		"name": "seasonal_promo",
		"language": "en_US",
		"category": "MARKETING",
		"components": [
			{"type": "HEADER", "format": "IMAGE", "example": {"header_url": "https://cdn.example.com/promo.png"}},
			{"type": "BODY", "text": "Hello {{1}}, our {{2}} sale is on!"},
			{"type": "FOOTER", "text": "Reply STOP to opt out"},
			{"type": "BUTTONS", "buttons": [
				{"type": "QUICK_REPLY", "text": "Tell me more"},
				{"type": "URL", "text": "Shop now", "url": "https://example.com/shop/{{1}}", "example": ["summer"]}
			]}
		]
	}`

	tpl, err := Parse([]byte(input))
	require.NoError(t, err)
	require.Len(t, tpl.Components, 4)

	header := tpl.Header()
	require.NotNil(t, header)
	assert.Equal(t, FormatImage, header.Format)
	require.NotNil(t, header.Example)
	assert.Equal(t, "https://cdn.example.com/promo.png", header.Example.HeaderURL)

	buttons := tpl.Buttons()
	require.NotNil(t, buttons)
	require.Len(t, buttons.Buttons, 2)

	urlBtn, ok := buttons.Buttons[1].(*URLButton)
	require.True(t, ok)
	assert.Equal(t, "https://example.com/shop/{{1}}", urlBtn.URL)
	assert.Equal(t, []string{"summer"}, urlBtn.Example)
}

func TestParseAuthenticationTemplate(t *testing.T) {
	input := `{
		"name": "login_code",
		"language": "en",
		"category": "AUTHENTICATION",
		"message_send_ttl_seconds": 600,
		"components": [
			{"type": "BODY", "text": "{{1}} is your verification code.", "add_security_recommendation": true},
			{"type": "FOOTER", "text": "Code expires soon", "code_expiration_minutes": 10},
			{"type": "BUTTONS", "buttons": [{"type": "OTP", "otp_type": "COPY_CODE"}]}
		]
	}`

	tpl, err := Parse([]byte(input))
	require.NoError(t, err)
	assert.Equal(t, CategoryAuthentication, tpl.Category)
	require.NotNil(t, tpl.MessageSendTTLSeconds)
	assert.Equal(t, 600, *tpl.MessageSendTTLSeconds)

	footer := tpl.Footer()
	require.NotNil(t, footer)
	require.NotNil(t, footer.CodeExpirationMinutes)
	assert.Equal(t, 10, *footer.CodeExpirationMinutes)

	otp, ok := tpl.Buttons().Buttons[0].(*OTPButton)
	require.True(t, ok)
	assert.Equal(t, OTPCopyCode, otp.OTPType)
}
