package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vyaparify/checkout-api/internal/entity"
)

type stubMailer struct {
	sent chan string
}

func (s *stubMailer) SendPaymentConfirmation(to, name string, amount int, paymentID string) error {
	s.sent <- to
	return nil
}

func TestRecordSubmission(t *testing.T) {
	t.Run("defaults to pending checkout submission", func(t *testing.T) {
		repo := new(MockSubmissionRepository)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)

		uc := NewRecordSubmissionUseCase(repo, nil, zap.NewNop())
		s, err := uc.Execute(context.Background(), RecordSubmissionInput{
			FullName: "Asha",
			Email:    "a@x.com",
			Phone:    "9876543210",
		})

		require.NoError(t, err)
		assert.Equal(t, entity.StatusPending, s.Status)
		assert.Equal(t, "checkout", s.Source)
		assert.Equal(t, entity.DefaultAmount, s.Amount)
		repo.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("attaches gateway ids when supplied", func(t *testing.T) {
		repo := new(MockSubmissionRepository)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)
		repo.On("UpdateStatus", mock.Anything, mock.Anything, entity.StatusSuccess, "order_1", "pay_1").Return(nil)

		uc := NewRecordSubmissionUseCase(repo, nil, zap.NewNop())
		s, err := uc.Execute(context.Background(), RecordSubmissionInput{
			FullName:          "Asha",
			Email:             "a@x.com",
			Phone:             "9876543210",
			Amount:            7999,
			Status:            entity.StatusSuccess,
			RazorpayOrderID:   "order_1",
			RazorpayPaymentID: "pay_1",
		})

		require.NoError(t, err)
		assert.Equal(t, entity.StatusSuccess, s.Status)
		assert.Equal(t, "order_1", s.RazorpayOrderID)
		assert.Equal(t, "pay_1", s.RazorpayPaymentID)
		repo.AssertExpectations(t)
	})

	t.Run("invalid status is a domain error", func(t *testing.T) {
		uc := NewRecordSubmissionUseCase(new(MockSubmissionRepository), nil, zap.NewNop())
		_, err := uc.Execute(context.Background(), RecordSubmissionInput{
			FullName: "Asha",
			Email:    "a@x.com",
			Phone:    "9876543210",
			Status:   "refunded",
		})

		require.Error(t, err)
		assert.True(t, IsDomainError(err))
	})

	t.Run("successful payment triggers confirmation email", func(t *testing.T) {
		repo := new(MockSubmissionRepository)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)
		repo.On("UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		mailer := &stubMailer{sent: make(chan string, 1)}
		uc := NewRecordSubmissionUseCase(repo, mailer, zap.NewNop())

		_, err := uc.Execute(context.Background(), RecordSubmissionInput{
			FullName:          "Asha",
			Email:             "a@x.com",
			Phone:             "9876543210",
			Status:            entity.StatusSuccess,
			RazorpayPaymentID: "pay_1",
		})
		require.NoError(t, err)

		select {
		case to := <-mailer.sent:
			assert.Equal(t, "a@x.com", to)
		case <-time.After(2 * time.Second):
			t.Fatal("confirmation email was never sent")
		}
	})

	t.Run("pending submission sends no email", func(t *testing.T) {
		repo := new(MockSubmissionRepository)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)

		mailer := &stubMailer{sent: make(chan string, 1)}
		uc := NewRecordSubmissionUseCase(repo, mailer, zap.NewNop())

		_, err := uc.Execute(context.Background(), RecordSubmissionInput{
			FullName: "Asha",
			Email:    "a@x.com",
			Phone:    "9876543210",
		})
		require.NoError(t, err)

		select {
		case <-mailer.sent:
			t.Fatal("email sent for a pending submission")
		case <-time.After(100 * time.Millisecond):
		}
	})
}
