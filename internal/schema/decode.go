package schema

import (
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"unicode/utf8"
)

// SchemaError reports the first point at which an input document fails
// to match the template schema. Deeper analysis is not useful until the
// basic shape is fixed, so only one violation is ever reported.
type SchemaError struct {
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema violation at %s: %s", e.Field, e.Reason)
}

func schemaErrf(field, format string, args ...interface{}) *SchemaError {
	return &SchemaError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

var (
	nameRe     = regexp.MustCompile(`^[a-z0-9_]+$`)
	languageRe = regexp.MustCompile(`^[a-z]{2}(_[A-Z]{2})?$`)
	phoneRe    = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)
)

// Raw wire shapes. Components and buttons are decoded in two steps so
// the "type" discriminator can be inspected before committing to a
// variant.

type templateJSON struct {
	Name                  string            `json:"name"`
	Language              string            `json:"language"`
	Category              string            `json:"category"`
	SubCategory           string            `json:"sub_category"`
	MessageSendTTLSeconds *int              `json:"message_send_ttl_seconds"`
	Components            []json.RawMessage `json:"components"`
}

type componentHead struct {
	Type string `json:"type"`
}

type headerJSON struct {
	Format  string `json:"format"`
	Text    string `json:"text"`
	Example *struct {
		HeaderURL  string   `json:"header_url"`
		HeaderText []string `json:"header_text"`
	} `json:"example"`
}

type bodyJSON struct {
	Text                      string `json:"text"`
	AddSecurityRecommendation bool   `json:"add_security_recommendation"`
	Example                   *struct {
		BodyText [][]string `json:"body_text"`
	} `json:"example"`
}

type footerJSON struct {
	Text                  string `json:"text"`
	CodeExpirationMinutes *int   `json:"code_expiration_minutes"`
}

type buttonsJSON struct {
	Buttons []json.RawMessage `json:"buttons"`
}

type buttonJSON struct {
	Type                 string   `json:"type"`
	Text                 string   `json:"text"`
	URL                  string   `json:"url"`
	PhoneNumber          string   `json:"phone_number"`
	Example              []string `json:"example"`
	OTPType              string   `json:"otp_type"`
	PackageName          string   `json:"package_name"`
	SignatureHash        string   `json:"signature_hash"`
	ZeroTapTermsAccepted bool     `json:"zero_tap_terms_accepted"`
	FlowID               string   `json:"flow_id"`
	FlowAction           string   `json:"flow_action"`
}

// Decode narrows a raw template document into a typed Template,
// returning a *SchemaError on the first structural violation.
func Decode(raw []byte) (*Template, error) {
	var doc templateJSON
	if err := json.Unmarshal(raw, &doc); err != nil {
		if typeErr, ok := err.(*json.UnmarshalTypeError); ok {
			return nil, schemaErrf(typeErr.Field, "expected %s, got %s", typeErr.Type, typeErr.Value)
		}
		return nil, err
	}

	if doc.Name == "" {
		return nil, schemaErrf("name", "name is required")
	}
	if utf8.RuneCountInString(doc.Name) > MaxNameLength {
		return nil, schemaErrf("name", "name exceeds %d characters", MaxNameLength)
	}
	if !nameRe.MatchString(doc.Name) {
		return nil, schemaErrf("name", "name must contain only lowercase letters, digits and underscores")
	}
	if doc.Language == "" {
		return nil, schemaErrf("language", "language is required")
	}
	if !languageRe.MatchString(doc.Language) {
		return nil, schemaErrf("language", "language must be a locale code like en or en_US")
	}

	var category Category
	switch Category(doc.Category) {
	case CategoryMarketing, CategoryUtility, CategoryAuthentication:
		category = Category(doc.Category)
	default:
		return nil, schemaErrf("category", "category must be MARKETING, UTILITY or AUTHENTICATION")
	}

	if ttl := doc.MessageSendTTLSeconds; ttl != nil {
		if *ttl < MinTTLSeconds || *ttl > MaxTTLSeconds {
			return nil, schemaErrf("messageSendTtlSeconds", "TTL must be between %d and %d seconds", MinTTLSeconds, MaxTTLSeconds)
		}
	}

	t := &Template{
		Name:                  doc.Name,
		Language:              doc.Language,
		Category:              category,
		SubCategory:           doc.SubCategory,
		MessageSendTTLSeconds: doc.MessageSendTTLSeconds,
	}

	for i, rawComp := range doc.Components {
		comp, err := decodeComponent(i, rawComp)
		if err != nil {
			return nil, err
		}
		t.Components = append(t.Components, comp)
	}

	if err := checkComposition(t); err != nil {
		return nil, err
	}
	return t, nil
}

func decodeComponent(i int, raw json.RawMessage) (Component, error) {
	field := fmt.Sprintf("components[%d]", i)

	var head componentHead
	if err := json.Unmarshal(raw, &head); err != nil {
		return nil, schemaErrf(field, "component must be an object with a type")
	}

	switch ComponentType(head.Type) {
	case ComponentHeader:
		return decodeHeader(raw)
	case ComponentBody:
		return decodeBody(raw)
	case ComponentFooter:
		return decodeFooter(raw)
	case ComponentButtons:
		return decodeButtons(raw)
	default:
		return nil, schemaErrf(field+".type", "unknown component type %q", head.Type)
	}
}

func decodeHeader(raw json.RawMessage) (Component, error) {
	var h headerJSON
	if err := json.Unmarshal(raw, &h); err != nil {
		return nil, schemaErrf("header", "malformed HEADER component")
	}

	format := FormatText
	if h.Format != "" {
		switch HeaderFormat(h.Format) {
		case FormatText, FormatImage, FormatVideo, FormatDocument, FormatLocation:
			format = HeaderFormat(h.Format)
		default:
			return nil, schemaErrf("header.format", "unknown header format %q", h.Format)
		}
	}

	header := &Header{Format: format, Text: h.Text}
	if h.Example != nil {
		header.Example = &HeaderExample{HeaderURL: h.Example.HeaderURL, HeaderText: h.Example.HeaderText}
	}

	if format == FormatText {
		if h.Text == "" {
			return nil, schemaErrf("header.text", "TEXT headers require text")
		}
		if err := checkTemplateText("header.text", h.Text, MaxHeaderTextLength); err != nil {
			return nil, err
		}
	}
	if format.IsMedia() && (header.Example == nil || header.Example.HeaderURL == "") {
		return nil, schemaErrf("header.example.header_url", "%s headers require an example media URL", format)
	}
	return header, nil
}

func decodeBody(raw json.RawMessage) (Component, error) {
	var b bodyJSON
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, schemaErrf("body", "malformed BODY component")
	}
	if b.Text == "" {
		return nil, schemaErrf("body.text", "body text is required")
	}
	if err := checkTemplateText("body.text", b.Text, MaxBodyTextLength); err != nil {
		return nil, err
	}

	body := &Body{Text: b.Text, AddSecurityRecommendation: b.AddSecurityRecommendation}
	if b.Example != nil {
		body.Example = b.Example.BodyText
	}
	return body, nil
}

func decodeFooter(raw json.RawMessage) (Component, error) {
	var f footerJSON
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, schemaErrf("footer", "malformed FOOTER component")
	}
	if f.Text == "" {
		return nil, schemaErrf("footer.text", "footer text is required")
	}
	if utf8.RuneCountInString(f.Text) > MaxFooterTextLength {
		return nil, schemaErrf("footer.text", "footer text exceeds %d characters", MaxFooterTextLength)
	}
	// Footers render as-is; placeholders are not substituted there.
	if indices, err := ScanPlaceholders(f.Text); err != nil || len(indices) > 0 {
		return nil, schemaErrf("footer.text", "footer text must not contain {{n}} placeholders")
	}
	if f.CodeExpirationMinutes != nil && (*f.CodeExpirationMinutes < 1 || *f.CodeExpirationMinutes > 60) {
		return nil, schemaErrf("footer.code_expiration_minutes", "code expiration must be between 1 and 60 minutes")
	}
	return &Footer{Text: f.Text, CodeExpirationMinutes: f.CodeExpirationMinutes}, nil
}

func decodeButtons(raw json.RawMessage) (Component, error) {
	var bs buttonsJSON
	if err := json.Unmarshal(raw, &bs); err != nil {
		return nil, schemaErrf("buttons", "malformed BUTTONS component")
	}
	if len(bs.Buttons) == 0 {
		return nil, schemaErrf("buttons", "BUTTONS component requires at least one button")
	}
	if len(bs.Buttons) > MaxButtons {
		return nil, schemaErrf("buttons", "a template supports at most %d buttons", MaxButtons)
	}

	buttons := &Buttons{}
	for i, rawBtn := range bs.Buttons {
		btn, err := decodeButton(i, rawBtn)
		if err != nil {
			return nil, err
		}
		buttons.Buttons = append(buttons.Buttons, btn)
	}
	return buttons, nil
}

func decodeButton(i int, raw json.RawMessage) (Button, error) {
	field := func(name string) string { return fmt.Sprintf("buttons[%d].%s", i, name) }

	var b buttonJSON
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, schemaErrf(fmt.Sprintf("buttons[%d]", i), "button must be an object with a type")
	}

	requireText := func() error {
		if b.Text == "" {
			return schemaErrf(field("text"), "button text is required")
		}
		if utf8.RuneCountInString(b.Text) > MaxButtonTextLength {
			return schemaErrf(field("text"), "button text exceeds %d characters", MaxButtonTextLength)
		}
		return nil
	}

	switch ButtonType(b.Type) {
	case ButtonQuickReply:
		if err := requireText(); err != nil {
			return nil, err
		}
		return &QuickReplyButton{Text: b.Text}, nil

	case ButtonURL:
		if err := requireText(); err != nil {
			return nil, err
		}
		if b.URL == "" {
			return nil, schemaErrf(field("url"), "URL buttons require a url")
		}
		if utf8.RuneCountInString(b.URL) > MaxURLLength {
			return nil, schemaErrf(field("url"), "url exceeds %d characters", MaxURLLength)
		}
		if u, err := url.Parse(b.URL); err != nil || !u.IsAbs() || u.Host == "" {
			return nil, schemaErrf(field("url"), "url must be a well-formed absolute URL")
		}
		if err := checkPlaceholderText(field("url"), b.URL); err != nil {
			return nil, err
		}
		return &URLButton{Text: b.Text, URL: b.URL, Example: b.Example}, nil

	case ButtonPhoneNumber:
		if err := requireText(); err != nil {
			return nil, err
		}
		if b.PhoneNumber == "" {
			return nil, schemaErrf(field("phone_number"), "PHONE_NUMBER buttons require a phone_number")
		}
		if !phoneRe.MatchString(b.PhoneNumber) {
			return nil, schemaErrf(field("phone_number"), "phone number must be in E.164 format, e.g. +15551234567")
		}
		return &PhoneNumberButton{Text: b.Text, PhoneNumber: b.PhoneNumber}, nil

	case ButtonCopyCode:
		if len(b.Example) == 0 || b.Example[0] == "" {
			return nil, schemaErrf(field("example"), "COPY_CODE buttons require an example code")
		}
		return &CopyCodeButton{Example: b.Example[0]}, nil

	case ButtonOTP:
		switch OTPType(b.OTPType) {
		case OTPCopyCode, OTPOneTap, OTPZeroTap:
		default:
			return nil, schemaErrf(field("otp_type"), "otp_type must be COPY_CODE, ONE_TAP or ZERO_TAP")
		}
		return &OTPButton{
			OTPType:              OTPType(b.OTPType),
			Text:                 b.Text,
			PackageName:          b.PackageName,
			SignatureHash:        b.SignatureHash,
			ZeroTapTermsAccepted: b.ZeroTapTermsAccepted,
		}, nil

	case ButtonCatalog:
		if err := requireText(); err != nil {
			return nil, err
		}
		return &CatalogButton{Text: b.Text}, nil

	case ButtonMPM:
		if err := requireText(); err != nil {
			return nil, err
		}
		return &MPMButton{Text: b.Text}, nil

	case ButtonFlow:
		if err := requireText(); err != nil {
			return nil, err
		}
		return &FlowButton{Text: b.Text, FlowID: b.FlowID, FlowAction: b.FlowAction}, nil

	case ButtonOrderDetails:
		if err := requireText(); err != nil {
			return nil, err
		}
		return &OrderDetailsButton{Text: b.Text}, nil

	case ButtonVoiceCall:
		if err := requireText(); err != nil {
			return nil, err
		}
		return &VoiceCallButton{Text: b.Text}, nil

	default:
		return nil, schemaErrf(field("type"), "unknown button type %q", b.Type)
	}
}

// checkTemplateText applies the shared constraints of substitutable
// text fields: max length, placeholder well-formedness, sequentiality.
func checkTemplateText(field, text string, maxLen int) error {
	if utf8.RuneCountInString(text) > maxLen {
		return schemaErrf(field, "text exceeds %d characters", maxLen)
	}
	return checkPlaceholderText(field, text)
}

func checkPlaceholderText(field, text string) error {
	indices, err := ScanPlaceholders(text)
	if err != nil {
		return schemaErrf(field, "%s", err.Error())
	}
	if ok, found := CheckSequential(indices); !ok {
		return schemaErrf(field, "placeholders must be numbered sequentially from {{1}}. Found: %s", found)
	}
	return nil
}

// checkComposition enforces the template-level component invariants:
// exactly one BODY, at most one each of the others, quick replies
// grouped together, and the per-type button caps. The rule engine
// re-checks the button constraints exhaustively for richer reporting;
// here the first violation wins.
func checkComposition(t *Template) error {
	counts := map[ComponentType]int{}
	for _, c := range t.Components {
		counts[c.ComponentType()]++
	}
	if counts[ComponentBody] != 1 {
		return schemaErrf("components", "a template requires exactly one BODY component")
	}
	for _, ct := range []ComponentType{ComponentHeader, ComponentFooter, ComponentButtons} {
		if counts[ct] > 1 {
			return schemaErrf("components", "at most one %s component is allowed", ct)
		}
	}

	if buttons := t.Buttons(); buttons != nil {
		var byType = map[ButtonType]int{}
		firstQR, lastQR := -1, -1
		for i, b := range buttons.Buttons {
			byType[b.ButtonType()]++
			if b.ButtonType() == ButtonQuickReply {
				if firstQR == -1 {
					firstQR = i
				}
				lastQR = i
			}
		}
		if n := byType[ButtonQuickReply]; n > 0 && lastQR-firstQR+1 != n {
			return schemaErrf("buttons", "QUICK_REPLY buttons must be grouped together")
		}
		if byType[ButtonPhoneNumber] > 1 {
			return schemaErrf("buttons", "at most one PHONE_NUMBER button is allowed")
		}
		if byType[ButtonURL] > 2 {
			return schemaErrf("buttons", "at most two URL buttons are allowed")
		}
		if byType[ButtonCopyCode] > 1 {
			return schemaErrf("buttons", "at most one COPY_CODE button is allowed")
		}
	}
	return nil
}
