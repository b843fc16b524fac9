package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-inventory-agent/internal/application/chat"
	"github.com/go-inventory-agent/internal/domain"
)

// ChatHandler handles assistant queries. A nil service means no model is
// configured; the endpoint then reports unavailable.
type ChatHandler struct {
	svc chat.Service
}

func NewChatHandler(svc chat.Service) *ChatHandler { return &ChatHandler{svc: svc} }

func (h *ChatHandler) Ask(w http.ResponseWriter, r *http.Request) {
	if h.svc == nil {
		writeError(w, http.StatusServiceUnavailable, "assistant is not configured")
		return
	}
	var req domain.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	response, err := h.svc.ProcessQuery(r.Context(), req.Query)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ChatEnvelope{Response: response, Status: "success"})
}
