package model

const (
	EntityName = "whatsapp"

	// Content placeholders for non-text inbound messages. The provider only
	// delivers a media id, never the rendered content.
	ContentImagePlaceholder       = "[Image received]"
	ContentDocumentPlaceholder    = "[Document received]"
	ContentAudioPlaceholder       = "[Audio received]"
	ContentUnsupportedPlaceholder = "[Unsupported message type]"

	MessageTypeText     = "text"
	MessageTypeImage    = "image"
	MessageTypeDocument = "document"
	MessageTypeAudio    = "audio"

	WebhookSubscribeMode = "subscribe"
)

// GatewayConfig is the single runtime configuration record of the messaging
// gateway. It lives in process memory only.
type GatewayConfig struct {
	AccessToken   string
	PhoneNumberID string
	VerifyToken   string
	WebhookURL    string
}

// IsConfigured reports whether the gateway can reach the provider. The
// verify token is only needed for the webhook handshake, so it does not
// participate here.
func (c GatewayConfig) IsConfigured() bool {
	return c.AccessToken != "" && c.PhoneNumberID != ""
}

// WebhookPayload is the provider's nested envelope for inbound events.
type WebhookPayload struct {
	Object string  `json:"object"`
	Entry  []Entry `json:"entry"`
}

type Entry struct {
	ID      string   `json:"id"`
	Changes []Change `json:"changes"`
}

type Change struct {
	Field string `json:"field"`
	Value Value  `json:"value"`
}

// Value carries at most one conversation's update per call in this system's
// usage pattern; processing takes the first message, contact, or status.
type Value struct {
	MessagingProduct string            `json:"messaging_product"`
	Metadata         Metadata          `json:"metadata"`
	Contacts         []Contact         `json:"contacts"`
	Messages         []IncomingMessage `json:"messages"`
	Statuses         []StatusUpdate    `json:"statuses"`
}

type Metadata struct {
	DisplayPhoneNumber string `json:"display_phone_number"`
	PhoneNumberID      string `json:"phone_number_id"`
}

type Contact struct {
	WaID    string  `json:"wa_id"`
	Profile Profile `json:"profile"`
}

type Profile struct {
	Name string `json:"name"`
}

type IncomingMessage struct {
	ID        string     `json:"id"`
	From      string     `json:"from"`
	Timestamp string     `json:"timestamp"`
	Type      string     `json:"type"`
	Text      *TextBody  `json:"text,omitempty"`
	Image     *MediaBody `json:"image,omitempty"`
	Document  *MediaBody `json:"document,omitempty"`
	Audio     *MediaBody `json:"audio,omitempty"`
}

type TextBody struct {
	Body string `json:"body"`
}

type MediaBody struct {
	ID       string `json:"id"`
	MimeType string `json:"mime_type"`
	Caption  string `json:"caption,omitempty"`
}

type StatusUpdate struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	RecipientID string `json:"recipient_id"`
}

// SendResult is the provider's response to an outbound send.
type SendResult struct {
	MessagingProduct string          `json:"messaging_product"`
	Contacts         []ResultContact `json:"contacts"`
	Messages         []ResultMessage `json:"messages"`
}

type ResultContact struct {
	Input string `json:"input"`
	WaID  string `json:"wa_id"`
}

type ResultMessage struct {
	ID string `json:"id"`
}

// MessageID returns the provider id of the first accepted message.
func (r SendResult) MessageID() string {
	if len(r.Messages) == 0 {
		return ""
	}

	return r.Messages[0].ID
}

// BusinessProfile is the safe subset of the provider profile exposed by the
// status endpoint.
type BusinessProfile struct {
	VerifiedName   string `json:"verified_name"`
	CodeVerStatus  string `json:"code_verification_status"`
	DisplayNumber  string `json:"display_phone_number"`
	QualityRating  string `json:"quality_rating"`
	PlatformTypeID string `json:"id"`
}
