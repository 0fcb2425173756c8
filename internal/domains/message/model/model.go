package model

import (
	"time"
)

const (
	EntityName = "message"

	TypeGeneral             = "general"
	TypeCheckInInstructions = "check_in_instructions"
	TypeReminder            = "reminder"
	TypeComplaint           = "complaint"

	ChannelInternal = "internal"
	ChannelWhatsApp = "whatsapp"
	ChannelEmail    = "email"
	ChannelSMS      = "sms"

	DirectionIncoming = "incoming"
	DirectionOutgoing = "outgoing"

	StatusSent      = "sent"
	StatusDelivered = "delivered"
	StatusRead      = "read"
	StatusFailed    = "failed"
	StatusReceived  = "received"
)

type Message struct {
	ID                string
	GuestID           string
	BookingID         string
	Subject           string
	Content           string
	Type              string
	Channel           string
	Direction         string
	WhatsAppMessageID string
	WhatsAppStatus    string
	FromNumber        string
	ToNumber          string
	IsRead            bool
	SentAt            time.Time
}
