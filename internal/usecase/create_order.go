package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/vyaparify/checkout-api/internal/infra/integration/razorpay"
)

const (
	orderCurrency    = "INR"
	receiptPrefix    = "vyaparify"
	premiumPlanLabel = "Vyaparify Premium Annual"
	paiseMultiplier  = 100
)

// CreateOrderUseCase turns a whole-rupee amount into a gateway order the
// browser widget can open.
type CreateOrderUseCase struct {
	Gateway PaymentGateway
	Log     *zap.Logger
}

func NewCreateOrderUseCase(gateway PaymentGateway, log *zap.Logger) *CreateOrderUseCase {
	return &CreateOrderUseCase{Gateway: gateway, Log: log}
}

func (uc *CreateOrderUseCase) Execute(ctx context.Context, input CreateOrderInput) (*CreateOrderOutput, error) {
	if uc.Gateway == nil {
		return nil, &TechnicalError{
			Code:    "GATEWAY_NOT_CONFIGURED",
			Message: "Payment gateway not configured",
		}
	}

	if input.Amount <= 0 {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: "amount must be a positive integer",
		}
	}

	order, err := uc.Gateway.CreateOrder(ctx, razorpay.CreateOrderInput{
		Amount:   input.Amount * paiseMultiplier,
		Currency: orderCurrency,
		Receipt:  fmt.Sprintf("%s_%d", receiptPrefix, time.Now().UnixMilli()),
		Notes: map[string]string{
			"customerName":  input.CustomerInfo.DisplayName(),
			"customerEmail": input.CustomerInfo.Email,
			"customerPhone": input.CustomerInfo.Phone,
			"plan":          premiumPlanLabel,
		},
	})
	if err != nil {
		uc.Log.Error("order creation failed", zap.Int("amount", input.Amount), zap.Error(err))
		return nil, &TechnicalError{
			Code:    "ORDER_CREATION_FAILED",
			Message: "Failed to create order",
		}
	}

	return &CreateOrderOutput{
		ID:       order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		KeyID:    uc.Gateway.KeyID(),
	}, nil
}
