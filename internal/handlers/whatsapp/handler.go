package whatsapp

import (
	"encoding/json"
	"net/http"

	"casa/infras/otel"
	"casa/internal/domains/whatsapp/model"
	"casa/internal/domains/whatsapp/model/dto"
	"casa/internal/domains/whatsapp/service"
	"casa/shared/constant"
	"casa/shared/validator"
	"casa/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	queryParamHubMode        = "hub.mode"
	queryParamHubVerifyToken = "hub.verify_token"
	queryParamHubChallenge   = "hub.challenge"
)

type Handler struct {
	service service.WhatsApp
	otel    otel.Otel
}

func New(service service.WhatsApp, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/whatsapp", func(routerGroup chi.Router) {
		routerGroup.Post("/config", handler.SetConfig)
		routerGroup.Get("/status", handler.GetStatus)
		routerGroup.Post("/send", handler.SendText)
		routerGroup.Post("/send-template", handler.SendTemplate)
		routerGroup.Get("/webhook", handler.VerifyWebhook)
		routerGroup.Post("/webhook", handler.ReceiveWebhook)
	})
}

// SetConfig replaces the gateway configuration at runtime.
// @Summary Configure the WhatsApp gateway
// @Description Set the provider credentials used for outbound sends and webhook verification.
// @Tags WhatsApp
// @Accept json
// @Produce json
// @Param request body dto.SetConfigRequest true "Gateway Configuration"
// @Success 200 {object} response.Message "Configuration updated"
// @Failure 400 {object} response.Error
// @Router /v1/whatsapp/config [post]
func (handler *Handler) SetConfig(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetConfig")
	defer scope.End()

	req := dto.SetConfigRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	handler.service.SetConfig(ctx, req)

	scope.AddEvent("WhatsApp configuration updated successfully")

	response.WithMessage(writer, http.StatusOK, "WhatsApp configuration updated successfully")
}

// GetStatus reports the gateway state.
// @Summary Get WhatsApp gateway status
// @Description Report whether the gateway is configured and, when it is, a safe subset of the provider business profile.
// @Tags WhatsApp
// @Accept json
// @Produce json
// @Success 200 {object} dto.StatusResponse "Gateway status"
// @Failure 502 {object} response.Error
// @Router /v1/whatsapp/status [get]
func (handler *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStatus")
	defer scope.End()

	res, err := handler.service.Status(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get whatsapp status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("WhatsApp status retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// SendText dispatches a text message through the gateway.
// @Summary Send a WhatsApp text message
// @Description Send a text message to a phone number and persist the outgoing message record.
// @Tags WhatsApp
// @Accept json
// @Produce json
// @Param request body dto.SendTextRequest true "Send Text Request"
// @Success 200 {object} dto.SendResponse "Provider send result"
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/whatsapp/send [post]
func (handler *Handler) SendText(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendText")
	defer scope.End()

	req := dto.SendTextRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.SendText(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to send whatsapp message")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("WhatsApp message sent successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// SendTemplate dispatches a template message through the gateway.
// @Summary Send a WhatsApp template message
// @Description Send a pre-approved template with optional positional body parameters.
// @Tags WhatsApp
// @Accept json
// @Produce json
// @Param request body dto.SendTemplateRequest true "Send Template Request"
// @Success 200 {object} dto.SendResponse "Provider send result"
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/whatsapp/send-template [post]
func (handler *Handler) SendTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendTemplate")
	defer scope.End()

	req := dto.SendTemplateRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.SendTemplate(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to send whatsapp template")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("WhatsApp template sent successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// VerifyWebhook answers the provider's subscription handshake.
// @Summary Verify the WhatsApp webhook
// @Description Echo the hub.challenge value when the mode and verify token match the gateway configuration.
// @Tags WhatsApp
// @Produce plain
// @Param hub.mode query string true "Handshake mode"
// @Param hub.verify_token query string true "Verification token"
// @Param hub.challenge query string true "Challenge to echo"
// @Success 200 {string} string "Challenge echoed"
// @Failure 403 {object} response.Error
// @Router /v1/whatsapp/webhook [get]
func (handler *Handler) VerifyWebhook(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VerifyWebhook")
	defer scope.End()

	query := r.URL.Query()

	challenge := handler.service.VerifyWebhook(
		ctx,
		query.Get(queryParamHubMode),
		query.Get(queryParamHubVerifyToken),
		query.Get(queryParamHubChallenge),
	)

	if challenge == constant.Empty {
		log.Warn().Msg("whatsapp webhook verification failed")

		w.WriteHeader(http.StatusForbidden)

		return
	}

	scope.AddEvent("WhatsApp webhook verified successfully")

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(challenge))
}

// ReceiveWebhook ingests inbound message and status events. The provider
// expects a 200 acknowledgment no matter what, so this never reports a
// processing failure.
// @Summary Receive WhatsApp webhook events
// @Description Ingest inbound messages and delivery status updates from the provider.
// @Tags WhatsApp
// @Accept json
// @Produce json
// @Success 200 {object} response.Message "Event acknowledged"
// @Router /v1/whatsapp/webhook [post]
func (handler *Handler) ReceiveWebhook(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReceiveWebhook")
	defer scope.End()

	payload := model.WebhookPayload{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode whatsapp webhook payload")

		response.WithMessage(w, http.StatusOK, "EVENT_RECEIVED")

		return
	}

	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			if len(change.Value.Messages) > 0 {
				handler.service.ProcessIncoming(ctx, change.Value)
			}

			if len(change.Value.Statuses) > 0 {
				handler.service.ProcessStatusUpdate(ctx, change.Value)
			}
		}
	}

	scope.AddEvent("WhatsApp webhook processed")

	response.WithMessage(w, http.StatusOK, "EVENT_RECEIVED")
}
