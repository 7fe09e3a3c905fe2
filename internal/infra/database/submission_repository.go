package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vyaparify/checkout-api/internal/entity"
)

type SubmissionRepository struct {
	DB *sql.DB
}

func NewSubmissionRepository(db *sql.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

func (r *SubmissionRepository) Create(ctx context.Context, s *entity.Submission) error {
	query := `
		INSERT INTO payment_submissions (
			id,
			full_name,
			email,
			phone,
			amount,
			status,
			source,
			razorpay_order_id,
			razorpay_payment_id,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), NULLIF($9, ''), $10)
	`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		s.ID,
		s.FullName,
		s.Email,
		s.Phone,
		s.Amount,
		s.Status,
		s.Source,
		s.RazorpayOrderID,
		s.RazorpayPaymentID,
		s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert submission: %w", err)
	}

	return nil
}

// UpdateStatus overwrites the status and, only when non-empty values are
// supplied, the gateway ids. COALESCE keeps previously stored ids from being
// nulled by a status-only update.
func (r *SubmissionRepository) UpdateStatus(ctx context.Context, id, status, orderID, paymentID string) error {
	query := `
		UPDATE payment_submissions SET
			status = $2,
			razorpay_order_id = COALESCE(NULLIF($3, ''), razorpay_order_id),
			razorpay_payment_id = COALESCE(NULLIF($4, ''), razorpay_payment_id)
		WHERE id = $1
	`

	result, err := r.DB.ExecContext(ctx, query, id, status, orderID, paymentID)
	if err != nil {
		return fmt.Errorf("failed to update submission %s: %w", id, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return entity.ErrSubmissionNotFound
	}

	return nil
}

func (r *SubmissionRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Submission, error) {
	query := `
		SELECT
			id,
			full_name,
			email,
			phone,
			amount,
			status,
			source,
			razorpay_order_id,
			razorpay_payment_id,
			created_at
		FROM payment_submissions
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	var submissions []*entity.Submission
	for rows.Next() {
		var s entity.Submission
		var source, orderID, paymentID sql.NullString

		err := rows.Scan(
			&s.ID,
			&s.FullName,
			&s.Email,
			&s.Phone,
			&s.Amount,
			&s.Status,
			&source,
			&orderID,
			&paymentID,
			&s.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		s.Source = source.String
		s.RazorpayOrderID = orderID.String
		s.RazorpayPaymentID = paymentID.String
		submissions = append(submissions, &s)
	}

	return submissions, rows.Err()
}
