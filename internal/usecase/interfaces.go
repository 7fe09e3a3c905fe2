package usecase

import (
	"context"

	"github.com/vyaparify/checkout-api/internal/infra/integration/razorpay"
	"github.com/vyaparify/checkout-api/internal/infra/integration/zoho"
	"github.com/vyaparify/checkout-api/internal/infra/queue"
)

type PaymentGateway interface {
	CreateOrder(ctx context.Context, input razorpay.CreateOrderInput) (*razorpay.Order, error)
	KeyID() string
}

type LeadProducerInterface interface {
	PublishLeadCaptured(ctx context.Context, event queue.LeadEvent) error
}

type CRMClientInterface interface {
	Configured() bool
	SendLead(ctx context.Context, payload zoho.LeadPayload) error
}

type MailSenderInterface interface {
	SendPaymentConfirmation(to, name string, amount int, paymentID string) error
}
