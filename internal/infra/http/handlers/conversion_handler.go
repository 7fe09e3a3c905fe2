package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/vyaparify/checkout-api/internal/infra/http/middleware"
	"github.com/vyaparify/checkout-api/internal/infra/integration/meta"
)

// ConversionHandler relays browser conversion events to the Meta Conversions
// API with identifiers hashed server-side.
type ConversionHandler struct {
	Client *meta.Client
	Log    *zap.Logger
}

func NewConversionHandler(client *meta.Client, log *zap.Logger) *ConversionHandler {
	return &ConversionHandler{Client: client, Log: log}
}

type conversionRequest struct {
	EventName      string                 `json:"eventName"`
	EventTime      int64                  `json:"eventTime,omitempty"`
	UserData       meta.UserData          `json:"userData,omitempty"`
	CustomData     map[string]interface{} `json:"customData,omitempty"`
	EventSourceURL string                 `json:"eventSourceUrl,omitempty"`
	ActionSource   string                 `json:"actionSource,omitempty"`
}

func (h *ConversionHandler) HandleConversion(w http.ResponseWriter, r *http.Request) {
	if h.Client == nil || !h.Client.Configured() {
		// 200 on purpose so the tracking script stays quiet on
		// unconfigured environments.
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": false,
			"message": "Meta API not configured",
		})
		return
	}

	var req conversionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.EventName == "" {
		writeError(w, http.StatusBadRequest, "Event name is required")
		return
	}

	err := h.Client.SendEvent(
		r.Context(),
		req.EventName,
		req.EventTime,
		req.UserData,
		req.CustomData,
		req.EventSourceURL,
		req.ActionSource,
		getClientIP(r),
		r.Header.Get("User-Agent"),
	)
	if err != nil {
		h.Log.Error("meta conversion relay failed",
			zap.String("event", req.EventName), zap.Error(err))
		middleware.RecordIntegrationError("meta")
		writeError(w, http.StatusInternalServerError, "Failed to send event to Meta")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
