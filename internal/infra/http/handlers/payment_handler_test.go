package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/vyaparify/checkout-api/internal/usecase"
)

func signPayment(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestPaymentHandlerVerified(t *testing.T) {
	const secret = "test_secret"
	handler := NewPaymentHandler(usecase.NewVerifyPaymentUseCase(secret, zap.NewNop()))

	w := postJSON(t, handler.HandleVerify, "/api/razorpay/verify-payment", map[string]string{
		"razorpay_order_id":   "order_1",
		"razorpay_payment_id": "pay_1",
		"razorpay_signature":  signPayment("order_1", "pay_1", secret),
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"verified":true`)
	assert.Contains(t, w.Body.String(), "pay_1")
}

func TestPaymentHandlerBadSignature(t *testing.T) {
	handler := NewPaymentHandler(usecase.NewVerifyPaymentUseCase("test_secret", zap.NewNop()))

	w := postJSON(t, handler.HandleVerify, "/api/razorpay/verify-payment", map[string]string{
		"razorpay_order_id":   "order_1",
		"razorpay_payment_id": "pay_1",
		"razorpay_signature":  signPayment("order_1", "pay_1", "other_secret"),
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"verified":false`)
	assert.Contains(t, w.Body.String(), "Invalid signature")
}

func TestPaymentHandlerSecretMissing(t *testing.T) {
	handler := NewPaymentHandler(usecase.NewVerifyPaymentUseCase("", zap.NewNop()))

	w := postJSON(t, handler.HandleVerify, "/api/razorpay/verify-payment", map[string]string{
		"razorpay_order_id":   "order_1",
		"razorpay_payment_id": "pay_1",
		"razorpay_signature":  "sig",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
