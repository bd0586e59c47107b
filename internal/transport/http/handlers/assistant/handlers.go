package assistanthandler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hrpro/internal/assistant"
	"hrpro/internal/transport/http/api"
	"hrpro/internal/transport/http/middleware"
)

type Handler struct {
	Assistant *assistant.Service
}

func NewHandler(svc *assistant.Service) *Handler {
	return &Handler{Assistant: svc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/assistant/chat", h.handleChat)
}

type chatRequest struct {
	Prompt string `json:"prompt"`
}

// handleChat relays one stateless exchange. Service failures arrive as a
// failed exchange carrying the fixed error reply, never as an HTTP error,
// so the client transcript always continues.
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload chatRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || strings.TrimSpace(payload.Prompt) == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "a prompt is required", middleware.GetRequestID(r.Context()))
		return
	}

	exchange := h.Assistant.Ask(r.Context(), payload.Prompt)
	api.Success(w, exchange, middleware.GetRequestID(r.Context()))
}
