package service

import (
	"context"
	"fmt"
	"sync"

	"casa/config"
	"casa/infras/otel"
	guestRepo "casa/internal/domains/guest/repository"
	messageModel "casa/internal/domains/message/model"
	messageRepo "casa/internal/domains/message/repository"
	"casa/internal/domains/whatsapp/client"
	"casa/internal/domains/whatsapp/model"
	"casa/internal/domains/whatsapp/model/dto"
	"casa/shared/constant"
	"casa/shared/failure"
	"casa/shared/phone"
	"casa/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const defaultTemplateLanguage = "pt_BR"

type WhatsApp interface {
	SetConfig(ctx context.Context, req dto.SetConfigRequest)
	Status(ctx context.Context) (dto.StatusResponse, error)
	SendText(ctx context.Context, req dto.SendTextRequest) (dto.SendResponse, error)
	SendTemplate(ctx context.Context, req dto.SendTemplateRequest) (dto.SendResponse, error)
	VerifyWebhook(ctx context.Context, mode, token, challenge string) string
	ProcessIncoming(ctx context.Context, value model.Value)
	ProcessStatusUpdate(ctx context.Context, value model.Value)
}

type serviceImpl struct {
	mu          sync.RWMutex
	cfg         model.GatewayConfig
	client      client.Client
	messageRepo messageRepo.Message
	guestRepo   guestRepo.Guest
	otel        otel.Otel
}

// New builds the gateway, seeding its configuration from the environment.
// The configuration can be replaced at runtime through SetConfig.
func New(cfg *config.Config, client client.Client, messageRepo messageRepo.Message, guestRepo guestRepo.Guest, otel otel.Otel) WhatsApp {
	return &serviceImpl{
		cfg: model.GatewayConfig{
			AccessToken:   cfg.External.WhatsApp.AccessToken,
			PhoneNumberID: cfg.External.WhatsApp.PhoneNumberID,
			VerifyToken:   cfg.External.WhatsApp.VerifyToken,
			WebhookURL:    cfg.External.WhatsApp.WebhookURL,
		},
		client:      client,
		messageRepo: messageRepo,
		guestRepo:   guestRepo,
		otel:        otel,
	}
}

func (s *serviceImpl) config() model.GatewayConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.cfg
}

func (s *serviceImpl) SetConfig(ctx context.Context, req dto.SetConfigRequest) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetConfig")
	defer scope.End()

	s.mu.Lock()
	s.cfg = req.ToModel()
	s.mu.Unlock()

	log.Info().Msg("whatsapp gateway configuration updated")
}

func (s *serviceImpl) Status(ctx context.Context) (res dto.StatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Status")
	defer scope.End()
	defer scope.TraceIfError(err)

	cfg := s.config()

	res.Configured = cfg.IsConfigured()
	if !res.Configured {
		return res, nil
	}

	res.PhoneNumberID = cfg.PhoneNumberID
	res.WebhookURL = cfg.WebhookURL

	profile, err := s.client.GetBusinessProfile(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch whatsapp business profile")

		return res, err
	}

	res.Profile = &profile

	return res, nil
}

func (s *serviceImpl) SendText(ctx context.Context, req dto.SendTextRequest) (res dto.SendResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SendText")
	defer scope.End()
	defer scope.TraceIfError(err)

	cfg := s.config()
	if !cfg.IsConfigured() {
		return res, failure.GatewayNotConfigured // nolint:wrapcheck
	}

	result, err := s.client.SendMessage(ctx, cfg, client.NewTextPayload(req.To, req.Message))
	if err != nil {
		log.Error().Err(err).Msg("failed to send whatsapp message")

		return res, err
	}

	res.SendResult = result
	res.MessageRecordID = s.persistOutgoing(ctx, cfg, req.To, req.Message, result.MessageID(), req.GuestID, req.BookingID)

	return res, nil
}

func (s *serviceImpl) SendTemplate(ctx context.Context, req dto.SendTemplateRequest) (res dto.SendResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SendTemplate")
	defer scope.End()
	defer scope.TraceIfError(err)

	cfg := s.config()
	if !cfg.IsConfigured() {
		return res, failure.GatewayNotConfigured // nolint:wrapcheck
	}

	languageCode := req.LanguageCode
	if languageCode == constant.Empty {
		languageCode = defaultTemplateLanguage
	}

	result, err := s.client.SendMessage(ctx, cfg, client.NewTemplatePayload(req.To, req.TemplateName, languageCode, req.Parameters))
	if err != nil {
		log.Error().Err(err).Msg("failed to send whatsapp template")

		return res, err
	}

	// The rendered text is only known by the provider, so the local record
	// carries a label instead of the template body.
	content := fmt.Sprintf("Template: %s", req.TemplateName)

	res.SendResult = result
	res.MessageRecordID = s.persistOutgoing(ctx, cfg, req.To, content, result.MessageID(), req.GuestID, req.BookingID)

	return res, nil
}

// persistOutgoing records a successfully dispatched message. A persistence
// failure must never mask the successful send, so it is logged and the
// record id comes back empty.
func (s *serviceImpl) persistOutgoing(ctx context.Context, cfg model.GatewayConfig, to, content, externalID, guestID, bookingID string) string {
	message := messageModel.Message{
		ID:                uuid.NewString(),
		GuestID:           guestID,
		BookingID:         bookingID,
		Content:           content,
		Type:              messageModel.TypeGeneral,
		Channel:           messageModel.ChannelWhatsApp,
		Direction:         messageModel.DirectionOutgoing,
		WhatsAppMessageID: externalID,
		WhatsAppStatus:    messageModel.StatusSent,
		FromNumber:        cfg.PhoneNumberID,
		ToNumber:          to,
		SentAt:            timezone.Now(),
	}

	if err := s.messageRepo.Insert(ctx, message); err != nil {
		log.Error().Err(err).Str("external_id", externalID).Msg("failed to persist outgoing whatsapp message")

		return constant.Empty
	}

	return message.ID
}

// VerifyWebhook answers the provider's subscription handshake. The challenge
// comes back only when the gateway is configured, the mode is "subscribe"
// and the token matches; everything else yields an empty string.
func (s *serviceImpl) VerifyWebhook(ctx context.Context, mode, token, challenge string) string {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VerifyWebhook")
	defer scope.End()

	cfg := s.config()

	if !cfg.IsConfigured() || mode != model.WebhookSubscribeMode || token != cfg.VerifyToken {
		log.Warn().Str("mode", mode).Msg("whatsapp webhook verification rejected")

		return constant.Empty
	}

	return challenge
}

// ProcessIncoming ingests an inbound message event. Webhook processing is
// best effort: every internal error is logged and swallowed so the provider
// always gets its acknowledgment.
func (s *serviceImpl) ProcessIncoming(ctx context.Context, value model.Value) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ProcessIncoming")
	defer scope.End()

	if len(value.Messages) == 0 {
		return
	}

	incoming := value.Messages[0]

	var contact model.Contact
	if len(value.Contacts) > 0 {
		contact = value.Contacts[0]
	}

	guestID := s.matchGuestByPhone(ctx, contact.WaID)

	message := messageModel.Message{
		ID:                uuid.NewString(),
		GuestID:           guestID,
		Content:           incomingContent(incoming),
		Type:              messageModel.TypeGeneral,
		Channel:           messageModel.ChannelWhatsApp,
		Direction:         messageModel.DirectionIncoming,
		WhatsAppMessageID: incoming.ID,
		WhatsAppStatus:    messageModel.StatusReceived,
		FromNumber:        incoming.From,
		ToNumber:          s.config().PhoneNumberID,
		SentAt:            timezone.Now(),
	}

	if err := s.messageRepo.Insert(ctx, message); err != nil {
		log.Error().Err(err).Str("external_id", incoming.ID).Msg("failed to persist incoming whatsapp message")
	}
}

func (s *serviceImpl) matchGuestByPhone(ctx context.Context, waID string) string {
	if waID == constant.Empty {
		return constant.Empty
	}

	canonical := phone.Normalize(waID)

	guest, found, err := s.guestRepo.GetByPhone(ctx, canonical)
	if err != nil {
		log.Error().Err(err).Msg("failed to match guest by phone")

		return constant.Empty
	}

	if !found {
		log.Info().Str("phone", canonical).Msg("inbound whatsapp contact matches no guest")

		return constant.Empty
	}

	return guest.ID
}

func incomingContent(incoming model.IncomingMessage) string {
	switch incoming.Type {
	case model.MessageTypeText:
		if incoming.Text != nil {
			return incoming.Text.Body
		}

		return constant.Empty
	case model.MessageTypeImage:
		return model.ContentImagePlaceholder
	case model.MessageTypeDocument:
		return model.ContentDocumentPlaceholder
	case model.MessageTypeAudio:
		return model.ContentAudioPlaceholder
	default:
		return model.ContentUnsupportedPlaceholder
	}
}

// ProcessStatusUpdate applies a provider delivery-status event to the
// matching local record. A missing match is logged, never an error.
func (s *serviceImpl) ProcessStatusUpdate(ctx context.Context, value model.Value) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ProcessStatusUpdate")
	defer scope.End()

	if len(value.Statuses) == 0 {
		return
	}

	status := value.Statuses[0]

	message, found, err := s.messageRepo.GetByExternalID(ctx, status.ID)
	if err != nil {
		log.Error().Err(err).Str("external_id", status.ID).Msg("failed to look up message for status update")

		return
	}

	if !found {
		log.Warn().Str("external_id", status.ID).Msg("status update matches no local message")

		return
	}

	message.WhatsAppStatus = status.Status

	if _, err := s.messageRepo.Update(ctx, message); err != nil {
		log.Error().Err(err).Str("external_id", status.ID).Msg("failed to apply whatsapp status update")
	}
}
