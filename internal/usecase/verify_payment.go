package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/vyaparify/checkout-api/internal/infra/integration/razorpay"
)

// VerifyPaymentUseCase confirms a checkout callback came from the gateway by
// recomputing the HMAC-SHA256 signature with the shared key secret.
type VerifyPaymentUseCase struct {
	KeySecret string
	Log       *zap.Logger
}

func NewVerifyPaymentUseCase(keySecret string, log *zap.Logger) *VerifyPaymentUseCase {
	return &VerifyPaymentUseCase{KeySecret: keySecret, Log: log}
}

func (uc *VerifyPaymentUseCase) Execute(_ context.Context, input VerifyPaymentInput) (*VerifyPaymentOutput, error) {
	if uc.KeySecret == "" {
		return nil, &TechnicalError{
			Code:    "GATEWAY_NOT_CONFIGURED",
			Message: "Payment gateway not configured",
		}
	}

	if !razorpay.VerifyPaymentSignature(input.OrderID, input.PaymentID, input.Signature, uc.KeySecret) {
		uc.Log.Warn("payment signature mismatch",
			zap.String("order_id", input.OrderID),
			zap.String("payment_id", input.PaymentID))
		return &VerifyPaymentOutput{Verified: false}, nil
	}

	return &VerifyPaymentOutput{
		Verified:  true,
		PaymentID: input.PaymentID,
	}, nil
}
