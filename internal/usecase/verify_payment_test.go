package usecase

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func signPayment(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyPayment(t *testing.T) {
	const secret = "test-key-secret"

	t.Run("matching signature verifies", func(t *testing.T) {
		uc := NewVerifyPaymentUseCase(secret, zap.NewNop())
		out, err := uc.Execute(context.Background(), VerifyPaymentInput{
			OrderID:   "order_123",
			PaymentID: "pay_456",
			Signature: signPayment("order_123", "pay_456", secret),
		})

		require.NoError(t, err)
		assert.True(t, out.Verified)
		assert.Equal(t, "pay_456", out.PaymentID)
	})

	t.Run("verification is deterministic", func(t *testing.T) {
		uc := NewVerifyPaymentUseCase(secret, zap.NewNop())
		input := VerifyPaymentInput{
			OrderID:   "order_123",
			PaymentID: "pay_456",
			Signature: signPayment("order_123", "pay_456", secret),
		}

		for i := 0; i < 5; i++ {
			out, err := uc.Execute(context.Background(), input)
			require.NoError(t, err)
			assert.True(t, out.Verified)
		}
	})

	t.Run("any single changed input flips the result", func(t *testing.T) {
		uc := NewVerifyPaymentUseCase(secret, zap.NewNop())
		good := signPayment("order_123", "pay_456", secret)

		cases := []VerifyPaymentInput{
			{OrderID: "order_124", PaymentID: "pay_456", Signature: good},
			{OrderID: "order_123", PaymentID: "pay_457", Signature: good},
			{OrderID: "order_123", PaymentID: "pay_456", Signature: good[:len(good)-1] + "0"},
		}

		for _, input := range cases {
			out, err := uc.Execute(context.Background(), input)
			require.NoError(t, err)
			assert.False(t, out.Verified)
		}
	})

	t.Run("wrong secret never verifies", func(t *testing.T) {
		uc := NewVerifyPaymentUseCase("another-secret", zap.NewNop())
		out, err := uc.Execute(context.Background(), VerifyPaymentInput{
			OrderID:   "order_123",
			PaymentID: "pay_456",
			Signature: signPayment("order_123", "pay_456", secret),
		})

		require.NoError(t, err)
		assert.False(t, out.Verified)
	})

	t.Run("missing secret fails fast", func(t *testing.T) {
		uc := NewVerifyPaymentUseCase("", zap.NewNop())
		_, err := uc.Execute(context.Background(), VerifyPaymentInput{
			OrderID:   "order_123",
			PaymentID: "pay_456",
			Signature: "whatever",
		})

		require.Error(t, err)
		assert.True(t, IsTechnicalError(err))
	})
}
