package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"casa/config"
	"casa/infras/otel"
	"casa/internal/domains/whatsapp/model"
	"casa/shared/constant"
	"casa/shared/failure"
)

//go:generate go run go.uber.org/mock/mockgen -destination mocks/client_mock.go -package client_mock . Client

// Client is the outbound boundary to the WhatsApp Business Cloud API.
type Client interface {
	SendMessage(ctx context.Context, cfg model.GatewayConfig, payload SendMessagePayload) (model.SendResult, error)
	GetBusinessProfile(ctx context.Context, cfg model.GatewayConfig) (model.BusinessProfile, error)
}

// SendMessagePayload is the Graph API request body for POST /{phone_number_id}/messages.
type SendMessagePayload struct {
	MessagingProduct string           `json:"messaging_product"`
	To               string           `json:"to"`
	Type             string           `json:"type"`
	Text             *TextPayload     `json:"text,omitempty"`
	Template         *TemplatePayload `json:"template,omitempty"`
}

type TextPayload struct {
	Body string `json:"body"`
}

type TemplatePayload struct {
	Name       string             `json:"name"`
	Language   LanguagePayload    `json:"language"`
	Components []ComponentPayload `json:"components,omitempty"`
}

type LanguagePayload struct {
	Code string `json:"code"`
}

type ComponentPayload struct {
	Type       string             `json:"type"`
	Parameters []ParameterPayload `json:"parameters"`
}

type ParameterPayload struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// NewTextPayload builds the request body for a plain text send.
func NewTextPayload(to, body string) SendMessagePayload {
	return SendMessagePayload{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "text",
		Text:             &TextPayload{Body: body},
	}
}

// NewTemplatePayload builds the request body for a template send with
// optional positional body text parameters.
func NewTemplatePayload(to, name, languageCode string, parameters []string) SendMessagePayload {
	template := &TemplatePayload{
		Name:     name,
		Language: LanguagePayload{Code: languageCode},
	}

	if len(parameters) > 0 {
		component := ComponentPayload{
			Type:       "body",
			Parameters: make([]ParameterPayload, len(parameters)),
		}

		for i, parameter := range parameters {
			component.Parameters[i] = ParameterPayload{Type: "text", Text: parameter}
		}

		template.Components = []ComponentPayload{component}
	}

	return SendMessagePayload{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "template",
		Template:         template,
	}
}

type graphError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error"`
}

type clientImpl struct {
	httpClient *http.Client
	baseURL    string
	otel       otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Client {
	return &clientImpl{
		httpClient: &http.Client{},
		baseURL:    cfg.External.WhatsApp.APIBaseURL,
		otel:       otel,
	}
}

func (c *clientImpl) SendMessage(ctx context.Context, cfg model.GatewayConfig, payload SendMessagePayload) (res model.SendResult, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".SendMessage")
	defer scope.End()
	defer scope.TraceIfError(err)

	url := fmt.Sprintf("%s/%s/messages", c.baseURL, cfg.PhoneNumberID)

	if err = c.do(ctx, http.MethodPost, url, cfg.AccessToken, payload, &res); err != nil {
		return res, err
	}

	return res, nil
}

func (c *clientImpl) GetBusinessProfile(ctx context.Context, cfg model.GatewayConfig) (res model.BusinessProfile, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".GetBusinessProfile")
	defer scope.End()
	defer scope.TraceIfError(err)

	url := fmt.Sprintf("%s/%s", c.baseURL, cfg.PhoneNumberID)

	if err = c.do(ctx, http.MethodGet, url, cfg.AccessToken, nil, &res); err != nil {
		return res, err
	}

	return res, nil
}

// do issues a Graph API request and decodes the JSON response into out.
// Non-2xx responses become provider errors carrying the Graph error message
// when the body has one, else the raw status.
func (c *clientImpl) do(ctx context.Context, method, url, accessToken string, payload, out any) error {
	var body *bytes.Buffer

	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode provider request: %w", err)
		}

		body = bytes.NewBuffer(encoded)
	} else {
		body = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to build provider request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return failure.BadGateway(fmt.Sprintf("provider request failed: %v", err)) // nolint:wrapcheck
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var gErr graphError
		if decodeErr := json.NewDecoder(resp.Body).Decode(&gErr); decodeErr == nil && gErr.Error.Message != "" {
			return failure.BadGateway(gErr.Error.Message) // nolint:wrapcheck
		}

		return failure.BadGateway(fmt.Sprintf("provider returned %s", resp.Status)) // nolint:wrapcheck
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode provider response: %w", err)
	}

	return nil
}
