package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/vyaparify/checkout-api/internal/infra/http/middleware"
	"github.com/vyaparify/checkout-api/internal/usecase"
)

type LeadHandler struct {
	CreateLeadUC *usecase.CreateLeadUseCase
	rateLimiter  *RateLimiter
}

func NewLeadHandler(uc *usecase.CreateLeadUseCase) *LeadHandler {
	return &LeadHandler{
		CreateLeadUC: uc,
		rateLimiter:  NewRateLimiter(10, time.Minute), // 10 req/min per IP
	}
}

func (h *LeadHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeError(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
		return
	}

	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	submission, err := h.CreateLeadUC.Execute(r.Context(), input)
	if err != nil {
		if usecase.IsDomainError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to create lead")
		return
	}

	middleware.RecordLeadCaptured(submission.Source)
	writeJSON(w, http.StatusOK, submission)
}
