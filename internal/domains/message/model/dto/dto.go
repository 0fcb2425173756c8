package dto

import (
	bookingModel "casa/internal/domains/booking/model"
	bookingDto "casa/internal/domains/booking/model/dto"
	guestModel "casa/internal/domains/guest/model"
	guestDto "casa/internal/domains/guest/model/dto"
	"casa/internal/domains/message/model"
	"casa/shared/constant"
	"casa/shared/timezone"

	"github.com/google/uuid"
)

type CreateMessageRequest struct {
	GuestID   string `json:"guest_id"   validate:"omitempty"`
	BookingID string `json:"booking_id" validate:"omitempty"`
	Subject   string `json:"subject"    validate:"omitempty,max=200"`
	Content   string `json:"content"    validate:"required"`
	Type      string `json:"type"       validate:"omitempty,oneof=general check_in_instructions reminder complaint"`
	Channel   string `json:"channel"    validate:"omitempty,oneof=internal whatsapp email sms"`
	Direction string `json:"direction"  validate:"omitempty,oneof=incoming outgoing"`
}

func (c *CreateMessageRequest) ToModel() model.Message {
	messageType := c.Type
	if messageType == "" {
		messageType = model.TypeGeneral
	}

	channel := c.Channel
	if channel == "" {
		channel = model.ChannelInternal
	}

	direction := c.Direction
	if direction == "" {
		direction = model.DirectionOutgoing
	}

	return model.Message{
		ID:        uuid.NewString(),
		GuestID:   c.GuestID,
		BookingID: c.BookingID,
		Subject:   c.Subject,
		Content:   c.Content,
		Type:      messageType,
		Channel:   channel,
		Direction: direction,
		IsRead:    false,
		SentAt:    timezone.Now(),
	}
}

type UpdateMessageRequest struct {
	Subject        *string `json:"subject"         validate:"omitempty,max=200"`
	Content        *string `json:"content"         validate:"omitempty"`
	Type           *string `json:"type"            validate:"omitempty,oneof=general check_in_instructions reminder complaint"`
	IsRead         *bool   `json:"is_read"         validate:"omitempty"`
	WhatsAppStatus *string `json:"whatsapp_status" validate:"omitempty,oneof=sent delivered read failed received"`
}

// ApplyTo merges the supplied fields over the existing record. The id and
// the sent timestamp are never part of the merge.
func (u *UpdateMessageRequest) ApplyTo(message *model.Message) {
	if u.Subject != nil {
		message.Subject = *u.Subject
	}

	if u.Content != nil {
		message.Content = *u.Content
	}

	if u.Type != nil {
		message.Type = *u.Type
	}

	if u.IsRead != nil {
		message.IsRead = *u.IsRead
	}

	if u.WhatsAppStatus != nil {
		message.WhatsAppStatus = *u.WhatsAppStatus
	}
}

type MessageResponse struct {
	ID                string `json:"id"`
	GuestID           string `json:"guest_id,omitempty"`
	BookingID         string `json:"booking_id,omitempty"`
	Subject           string `json:"subject,omitempty"`
	Content           string `json:"content"`
	Type              string `json:"type"`
	Channel           string `json:"channel"`
	Direction         string `json:"direction"`
	WhatsAppMessageID string `json:"whatsapp_message_id,omitempty"`
	WhatsAppStatus    string `json:"whatsapp_status,omitempty"`
	FromNumber        string `json:"from_number,omitempty"`
	ToNumber          string `json:"to_number,omitempty"`
	IsRead            bool   `json:"is_read"`
	SentAt            string `json:"sent_at"`
}

func (r *MessageResponse) FromModel(mod model.Message) {
	r.ID = mod.ID
	r.GuestID = mod.GuestID
	r.BookingID = mod.BookingID
	r.Subject = mod.Subject
	r.Content = mod.Content
	r.Type = mod.Type
	r.Channel = mod.Channel
	r.Direction = mod.Direction
	r.WhatsAppMessageID = mod.WhatsAppMessageID
	r.WhatsAppStatus = mod.WhatsAppStatus
	r.FromNumber = mod.FromNumber
	r.ToNumber = mod.ToNumber
	r.IsRead = mod.IsRead
	r.SentAt = mod.SentAt.Format(constant.DateFormat)
}

// MessageDetailResponse is the joined view of a message with its resolved
// guest and booking. Relations left nil could not be resolved; the message
// itself is always present.
type MessageDetailResponse struct {
	MessageResponse
	Guest   *guestDto.GuestResponse     `json:"guest,omitempty"`
	Booking *bookingDto.BookingResponse `json:"booking,omitempty"`
}

func (r *MessageDetailResponse) FromModels(message model.Message, guest *guestModel.Guest, booking *bookingModel.Booking) {
	r.MessageResponse.FromModel(message)

	if guest != nil {
		r.Guest = &guestDto.GuestResponse{}
		r.Guest.FromModel(*guest)
	}

	if booking != nil {
		r.Booking = &bookingDto.BookingResponse{}
		r.Booking.FromModel(*booking)
	}
}

type GetMessagesResponse struct {
	Messages  []MessageDetailResponse `json:"messages"`
	TotalData int                     `json:"total_data"`
}
