package queue

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/vyaparify/checkout-api/internal/infra/integration/zoho"
)

// CRMForwarder is the contract the worker delivers lead events through.
type CRMForwarder interface {
	SendLead(ctx context.Context, payload zoho.LeadPayload) error
}

// Worker drains the CRM-sync queue and forwards each lead to the CRM webhook.
// Delivery stays at-most-once: a failed forward is nacked without requeue and
// lands in the DLQ for inspection, never retried automatically.
type Worker struct {
	Channel   *amqp.Channel
	Forwarder CRMForwarder
	Log       *zap.Logger
}

func NewWorker(ch *amqp.Channel, forwarder CRMForwarder, log *zap.Logger) *Worker {
	return &Worker{
		Channel:   ch,
		Forwarder: forwarder,
		Log:       log,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		w.Log.Fatal("failed to register CRM-sync consumer", zap.Error(err))
	}

	for d := range msgs {
		var event LeadEvent
		if err := json.Unmarshal(d.Body, &event); err != nil {
			w.Log.Error("malformed lead event, rejecting", zap.Error(err))
			d.Nack(false, false)
			continue
		}

		if err := w.Process(context.Background(), event); err != nil {
			w.Log.Error("CRM forward failed",
				zap.String("email", event.Email),
				zap.Error(err))
			d.Nack(false, false)
			continue
		}

		w.Log.Info("lead forwarded to CRM",
			zap.String("email", event.Email),
			zap.String("source", event.Source))
		d.Ack(false)
	}
}

func (w *Worker) Process(ctx context.Context, event LeadEvent) error {
	return w.Forwarder.SendLead(ctx, zoho.LeadPayload{
		Name:      event.Name,
		Email:     event.Email,
		Phone:     event.Phone,
		Source:    event.Source,
		Amount:    event.Amount,
		Status:    event.Status,
		Timestamp: event.CapturedAt,
	})
}
