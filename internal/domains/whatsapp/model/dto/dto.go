package dto

import (
	"casa/internal/domains/whatsapp/model"
)

type SetConfigRequest struct {
	AccessToken   string `json:"access_token"    validate:"required"`
	PhoneNumberID string `json:"phone_number_id" validate:"required"`
	VerifyToken   string `json:"verify_token"    validate:"omitempty"`
	WebhookURL    string `json:"webhook_url"     validate:"omitempty,url"`
}

func (c *SetConfigRequest) ToModel() model.GatewayConfig {
	return model.GatewayConfig{
		AccessToken:   c.AccessToken,
		PhoneNumberID: c.PhoneNumberID,
		VerifyToken:   c.VerifyToken,
		WebhookURL:    c.WebhookURL,
	}
}

type SendTextRequest struct {
	To        string `json:"to"         validate:"required"`
	Message   string `json:"message"    validate:"required"`
	GuestID   string `json:"guest_id"   validate:"omitempty"`
	BookingID string `json:"booking_id" validate:"omitempty"`
}

type SendTemplateRequest struct {
	To           string   `json:"to"            validate:"required"`
	TemplateName string   `json:"template_name" validate:"required"`
	LanguageCode string   `json:"language_code" validate:"omitempty"`
	Parameters   []string `json:"parameters"    validate:"omitempty"`
	GuestID      string   `json:"guest_id"      validate:"omitempty"`
	BookingID    string   `json:"booking_id"    validate:"omitempty"`
}

// SendResponse carries the provider's raw send result plus the id of the
// Message record persisted locally.
type SendResponse struct {
	model.SendResult
	MessageRecordID string `json:"message_record_id,omitempty"`
}

// StatusResponse reports whether the gateway is configured and, when it is,
// a safe subset of the provider profile. Credentials never appear here.
type StatusResponse struct {
	Configured    bool                   `json:"configured"`
	PhoneNumberID string                 `json:"phone_number_id,omitempty"`
	WebhookURL    string                 `json:"webhook_url,omitempty"`
	Profile       *model.BusinessProfile `json:"profile,omitempty"`
}
