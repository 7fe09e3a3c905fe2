package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/vyaparify/checkout-api/internal/infra/http/middleware"
	"github.com/vyaparify/checkout-api/internal/usecase"
)

type PaymentHandler struct {
	VerifyPaymentUC *usecase.VerifyPaymentUseCase
}

func NewPaymentHandler(uc *usecase.VerifyPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{VerifyPaymentUC: uc}
}

func (h *PaymentHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	var input usecase.VerifyPaymentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	output, err := h.VerifyPaymentUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if !output.Verified {
		middleware.RecordPaymentVerified("mismatch")
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"verified": false,
			"error":    "Invalid signature",
		})
		return
	}

	middleware.RecordPaymentVerified("ok")
	writeJSON(w, http.StatusOK, output)
}
