package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/vyaparify/checkout-api/internal/entity"
	"github.com/vyaparify/checkout-api/internal/infra/integration/zoho"
	"github.com/vyaparify/checkout-api/internal/infra/queue"
)

// CreateLeadUseCase captures a lead: validates, persists an initiated
// submission and forwards it to the CRM best-effort. CRM delivery goes through
// the queue when one is wired, otherwise straight to the webhook in a
// goroutine. Forward failures are logged, never surfaced.
type CreateLeadUseCase struct {
	Repo  entity.SubmissionRepositoryInterface
	Queue LeadProducerInterface
	CRM   CRMClientInterface
	Log   *zap.Logger
}

func NewCreateLeadUseCase(
	repo entity.SubmissionRepositoryInterface,
	producer LeadProducerInterface,
	crm CRMClientInterface,
	log *zap.Logger,
) *CreateLeadUseCase {
	return &CreateLeadUseCase{
		Repo:  repo,
		Queue: producer,
		CRM:   crm,
		Log:   log,
	}
}

func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*entity.Submission, error) {
	if errs := ValidateCreateLeadInput(input); len(errs) > 0 {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: validationMessage(errs),
		}
	}

	submission, err := entity.NewSubmission(
		input.FullName,
		input.Email,
		input.Phone,
		entity.DefaultAmount,
		entity.StatusInitiated,
		input.Source,
	)
	if err != nil {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}

	if err := uc.Repo.Create(ctx, submission); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to persist lead: " + err.Error(),
		}
	}

	uc.forwardToCRM(submission)

	return submission, nil
}

func (uc *CreateLeadUseCase) forwardToCRM(s *entity.Submission) {
	event := queue.LeadEvent{
		Name:       s.FullName,
		Email:      s.Email,
		Phone:      s.Phone,
		Source:     s.Source,
		Amount:     s.Amount,
		Status:     s.Status,
		CapturedAt: s.CreatedAt.UTC().Format(time.RFC3339),
	}

	if uc.Queue != nil {
		// Durable path: worker on q.crm-sync delivers to Zoho Flow.
		if err := uc.Queue.PublishLeadCaptured(context.Background(), event); err != nil {
			uc.Log.Error("failed to enqueue lead for CRM sync",
				zap.String("email", s.Email), zap.Error(err))
		}
		return
	}

	if uc.CRM == nil || !uc.CRM.Configured() {
		uc.Log.Debug("CRM webhook not configured, skipping forward")
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := uc.CRM.SendLead(ctx, zoho.LeadPayload{
			Name:      event.Name,
			Email:     event.Email,
			Phone:     event.Phone,
			Source:    event.Source,
			Amount:    event.Amount,
			Status:    event.Status,
			Timestamp: event.CapturedAt,
		}); err != nil {
			uc.Log.Error("failed to forward lead to CRM",
				zap.String("email", s.Email), zap.Error(err))
		}
	}()
}
