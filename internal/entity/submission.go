package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Status values a submission moves through. A lead starts as StatusInitiated,
// becomes StatusPending once a gateway order exists and ends in one of the
// terminal states. Terminal states are never left.
const (
	StatusInitiated = "initiated"
	StatusPending   = "pending"
	StatusSuccess   = "success"
	StatusFailed    = "failed"
	StatusCancelled = "cancelled"
	StatusError     = "error"
)

// DefaultAmount is the price of the Vyaparify Premium Annual plan in whole rupees.
const DefaultAmount = 7999

var ErrSubmissionNotFound = errors.New("submission not found")

// Submission is one lead/payment attempt captured by the funnel.
type Submission struct {
	ID                string    `json:"id"`
	FullName          string    `json:"fullName"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	Amount            int       `json:"amount"`
	Status            string    `json:"status"`
	Source            string    `json:"source"`
	RazorpayOrderID   string    `json:"razorpayOrderId,omitempty"`
	RazorpayPaymentID string    `json:"razorpayPaymentId,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

// NewSubmission builds a submission with a fresh id and timestamp.
// Source and status fall back to defaults when empty.
func NewSubmission(fullName, email, phone string, amount int, status, source string) (*Submission, error) {
	if status == "" {
		status = StatusPending
	}
	if source == "" {
		source = "unknown"
	}
	if amount <= 0 {
		amount = DefaultAmount
	}

	s := &Submission{
		ID:        uuid.New().String(),
		FullName:  fullName,
		Email:     email,
		Phone:     phone,
		Amount:    amount,
		Status:    status,
		Source:    source,
		CreatedAt: time.Now(),
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Submission) Validate() error {
	if s.FullName == "" {
		return errors.New("fullName is required")
	}
	if s.Email == "" {
		return errors.New("email is required")
	}
	if s.Phone == "" {
		return errors.New("phone is required")
	}
	if !ValidStatus(s.Status) {
		return errors.New("invalid status: " + s.Status)
	}
	return nil
}

func ValidStatus(status string) bool {
	switch status {
	case StatusInitiated, StatusPending, StatusSuccess, StatusFailed, StatusCancelled, StatusError:
		return true
	}
	return false
}

// IsTerminal reports whether the status admits no further transition.
func IsTerminal(status string) bool {
	switch status {
	case StatusSuccess, StatusFailed, StatusCancelled, StatusError:
		return true
	}
	return false
}

// SubmissionRepositoryInterface is the storage contract for submissions.
// UpdateStatus leaves the stored order/payment ids untouched when the
// corresponding argument is empty, and returns ErrSubmissionNotFound for an
// unknown id.
type SubmissionRepositoryInterface interface {
	Create(ctx context.Context, s *Submission) error
	UpdateStatus(ctx context.Context, id, status, orderID, paymentID string) error
	ListRecent(ctx context.Context, limit int) ([]*Submission, error)
}
