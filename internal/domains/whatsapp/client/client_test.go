package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"casa/config"
	"casa/infras/otel/mocks"
	"casa/internal/domains/whatsapp/client"
	"casa/internal/domains/whatsapp/model"
	"casa/shared/failure"
)

func gatewayConfig() model.GatewayConfig {
	return model.GatewayConfig{
		AccessToken:   "test-token",
		PhoneNumberID: "15550100",
	}
}

func newClient(baseURL string) client.Client {
	cfg := &config.Config{}
	cfg.External.WhatsApp.APIBaseURL = baseURL

	return client.New(cfg, mocks.NewOtel())
}

func TestClient_SendMessage(t *testing.T) {
	t.Run("accepted send decodes the provider result", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/15550100/messages", r.URL.Path)
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

			var payload client.SendMessagePayload
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "whatsapp", payload.MessagingProduct)
			assert.Equal(t, "text", payload.Type)
			assert.Equal(t, "hello", payload.Text.Body)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"messaging_product":"whatsapp","messages":[{"id":"wamid.abc"}]}`))
		}))
		defer server.Close()

		res, err := newClient(server.URL).SendMessage(context.Background(), gatewayConfig(), client.NewTextPayload("5511912345678", "hello"))

		assert.NoError(t, err)
		assert.Equal(t, "wamid.abc", res.MessageID())
	})

	t.Run("graph error body surfaces the provider message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"message":"Invalid OAuth access token","type":"OAuthException","code":190}}`))
		}))
		defer server.Close()

		_, err := newClient(server.URL).SendMessage(context.Background(), gatewayConfig(), client.NewTextPayload("5511912345678", "hello"))

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
		assert.Contains(t, err.Error(), "Invalid OAuth access token")
	})

	t.Run("undecodable error body falls back to the raw status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("upstream blew up"))
		}))
		defer server.Close()

		_, err := newClient(server.URL).SendMessage(context.Background(), gatewayConfig(), client.NewTextPayload("5511912345678", "hello"))

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
		assert.Contains(t, err.Error(), "provider returned")
	})

	t.Run("unreachable provider yields a gateway failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		server.Close()

		_, err := newClient(server.URL).SendMessage(context.Background(), gatewayConfig(), client.NewTextPayload("5511912345678", "hello"))

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
	})
}

func TestClient_GetBusinessProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/15550100", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"verified_name":"Casa Rentals","quality_rating":"GREEN"}`))
	}))
	defer server.Close()

	res, err := newClient(server.URL).GetBusinessProfile(context.Background(), gatewayConfig())

	assert.NoError(t, err)
	assert.Equal(t, "Casa Rentals", res.VerifiedName)
	assert.Equal(t, "GREEN", res.QualityRating)
}

func TestNewTemplatePayload(t *testing.T) {
	t.Run("positional parameters become a body component", func(t *testing.T) {
		payload := client.NewTemplatePayload("5511912345678", "checkin_reminder", "pt_BR", []string{"Maria", "2024-01-10"})

		assert.Equal(t, "template", payload.Type)
		assert.Equal(t, "checkin_reminder", payload.Template.Name)
		assert.Equal(t, "pt_BR", payload.Template.Language.Code)
		assert.Len(t, payload.Template.Components, 1)
		assert.Equal(t, "body", payload.Template.Components[0].Type)
		assert.Len(t, payload.Template.Components[0].Parameters, 2)
		assert.Equal(t, "Maria", payload.Template.Components[0].Parameters[0].Text)
	})

	t.Run("no parameters means no components", func(t *testing.T) {
		payload := client.NewTemplatePayload("5511912345678", "welcome", "en_US", nil)

		assert.Empty(t, payload.Template.Components)
	})
}
