package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/vyaparify/checkout-api/internal/entity"
)

// RecordSubmissionUseCase persists the outcome of a checkout attempt: a fresh
// submission, plus a status/gateway-id update when order or payment ids are
// already known. On a successful payment it fires the confirmation email
// best-effort.
type RecordSubmissionUseCase struct {
	Repo   entity.SubmissionRepositoryInterface
	Mailer MailSenderInterface
	Log    *zap.Logger
}

func NewRecordSubmissionUseCase(
	repo entity.SubmissionRepositoryInterface,
	mailer MailSenderInterface,
	log *zap.Logger,
) *RecordSubmissionUseCase {
	return &RecordSubmissionUseCase{Repo: repo, Mailer: mailer, Log: log}
}

func (uc *RecordSubmissionUseCase) Execute(ctx context.Context, input RecordSubmissionInput) (*entity.Submission, error) {
	if errs := ValidateCreateLeadInput(CreateLeadInput{
		FullName: input.FullName,
		Email:    input.Email,
		Phone:    input.Phone,
	}); len(errs) > 0 {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: validationMessage(errs),
		}
	}

	if input.Status != "" && !entity.ValidStatus(input.Status) {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: "invalid status: " + input.Status,
		}
	}

	source := input.Source
	if source == "" {
		source = "checkout"
	}

	submission, err := entity.NewSubmission(
		input.FullName,
		input.Email,
		input.Phone,
		input.Amount,
		input.Status, // defaults to pending inside the factory
		source,
	)
	if err != nil {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}

	if err := uc.Repo.Create(ctx, submission); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to persist submission: " + err.Error(),
		}
	}

	if input.RazorpayOrderID != "" || input.RazorpayPaymentID != "" {
		err := uc.Repo.UpdateStatus(ctx, submission.ID, submission.Status, input.RazorpayOrderID, input.RazorpayPaymentID)
		if err != nil {
			return nil, &TechnicalError{
				Code:    "DATABASE_ERROR",
				Message: "failed to attach gateway ids: " + err.Error(),
			}
		}
		submission.RazorpayOrderID = input.RazorpayOrderID
		submission.RazorpayPaymentID = input.RazorpayPaymentID
	}

	if submission.Status == entity.StatusSuccess && uc.Mailer != nil {
		go func(s entity.Submission) {
			if err := uc.Mailer.SendPaymentConfirmation(s.Email, s.FullName, s.Amount, s.RazorpayPaymentID); err != nil {
				uc.Log.Error("failed to send confirmation email",
					zap.String("email", s.Email), zap.Error(err))
			}
		}(*submission)
	}

	return submission, nil
}
