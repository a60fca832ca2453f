package schema

// ButtonType discriminates the button variants inside a BUTTONS
// component.
type ButtonType string

const (
	ButtonQuickReply   ButtonType = "QUICK_REPLY"
	ButtonURL          ButtonType = "URL"
	ButtonPhoneNumber  ButtonType = "PHONE_NUMBER"
	ButtonCopyCode     ButtonType = "COPY_CODE"
	ButtonOTP          ButtonType = "OTP"
	ButtonCatalog      ButtonType = "CATALOG"
	ButtonMPM          ButtonType = "MPM"
	ButtonFlow         ButtonType = "FLOW"
	ButtonOrderDetails ButtonType = "ORDER_DETAILS"
	ButtonVoiceCall    ButtonType = "VOICE_CALL"
)

// Button is one action button of a template. Unknown types are a
// schema violation at decode time, so consumers can match exhaustively
// over the concrete types below.
type Button interface {
	ButtonType() ButtonType
}

type QuickReplyButton struct {
	Text string
}

func (*QuickReplyButton) ButtonType() ButtonType { return ButtonQuickReply }

type URLButton struct {
	Text string
	URL  string
	// Example holds sample values for {{n}} placeholders in the URL.
	Example []string
}

func (*URLButton) ButtonType() ButtonType { return ButtonURL }

type PhoneNumberButton struct {
	Text        string
	PhoneNumber string
}

func (*PhoneNumberButton) ButtonType() ButtonType { return ButtonPhoneNumber }

// CopyCodeButton has a fixed label on the client; only the sample code
// travels with the template.
type CopyCodeButton struct {
	Example string
}

func (*CopyCodeButton) ButtonType() ButtonType { return ButtonCopyCode }

// OTPType selects the delivery mechanism of an OTP button.
type OTPType string

const (
	OTPCopyCode OTPType = "COPY_CODE"
	OTPOneTap   OTPType = "ONE_TAP"
	OTPZeroTap  OTPType = "ZERO_TAP"
)

type OTPButton struct {
	OTPType OTPType
	Text    string
	// PackageName and SignatureHash identify the Android app for
	// ONE_TAP and ZERO_TAP handover.
	PackageName          string
	SignatureHash        string
	ZeroTapTermsAccepted bool
}

func (*OTPButton) ButtonType() ButtonType { return ButtonOTP }

type CatalogButton struct {
	Text string
}

func (*CatalogButton) ButtonType() ButtonType { return ButtonCatalog }

type MPMButton struct {
	Text string
}

func (*MPMButton) ButtonType() ButtonType { return ButtonMPM }

type FlowButton struct {
	Text       string
	FlowID     string
	FlowAction string
}

func (*FlowButton) ButtonType() ButtonType { return ButtonFlow }

type OrderDetailsButton struct {
	Text string
}

func (*OrderDetailsButton) ButtonType() ButtonType { return ButtonOrderDetails }

type VoiceCallButton struct {
	Text string
}

func (*VoiceCallButton) ButtonType() ButtonType { return ButtonVoiceCall }
