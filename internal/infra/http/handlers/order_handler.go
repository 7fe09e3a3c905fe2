package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/vyaparify/checkout-api/internal/infra/http/middleware"
	"github.com/vyaparify/checkout-api/internal/usecase"
)

type OrderHandler struct {
	CreateOrderUC *usecase.CreateOrderUseCase
}

func NewOrderHandler(uc *usecase.CreateOrderUseCase) *OrderHandler {
	return &OrderHandler{CreateOrderUC: uc}
}

func (h *OrderHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateOrderInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	output, err := h.CreateOrderUC.Execute(r.Context(), input)
	if err != nil {
		if usecase.IsDomainError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if techErr, ok := err.(*usecase.TechnicalError); ok && techErr.Code == "ORDER_CREATION_FAILED" {
			middleware.RecordIntegrationError("razorpay")
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.RecordOrderCreated()
	writeJSON(w, http.StatusOK, output)
}
