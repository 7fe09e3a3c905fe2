package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vyaparify/checkout-api/internal/infra/integration/razorpay"
)

type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) CreateOrder(ctx context.Context, input razorpay.CreateOrderInput) (*razorpay.Order, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*razorpay.Order), args.Error(1)
}

func (m *MockPaymentGateway) KeyID() string {
	return "rzp_test_key"
}

func TestCreateOrder(t *testing.T) {
	t.Run("converts rupees to paise and fills the order", func(t *testing.T) {
		gateway := new(MockPaymentGateway)
		gateway.On("CreateOrder", mock.Anything, mock.MatchedBy(func(in razorpay.CreateOrderInput) bool {
			return in.Amount == 799900 &&
				in.Currency == "INR" &&
				strings.HasPrefix(in.Receipt, "vyaparify_") &&
				in.Notes["plan"] == "Vyaparify Premium Annual" &&
				in.Notes["customerName"] == "Asha" &&
				in.Notes["customerEmail"] == "a@x.com"
		})).Return(&razorpay.Order{ID: "order_123", Amount: 799900, Currency: "INR"}, nil)

		uc := NewCreateOrderUseCase(gateway, zap.NewNop())
		out, err := uc.Execute(context.Background(), CreateOrderInput{
			Amount: 7999,
			CustomerInfo: CustomerInfo{
				FullName: "Asha",
				Email:    "a@x.com",
				Phone:    "9876543210",
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "order_123", out.ID)
		assert.Equal(t, 799900, out.Amount)
		assert.Equal(t, "INR", out.Currency)
		assert.Equal(t, "rzp_test_key", out.KeyID)
		gateway.AssertExpectations(t)
	})

	t.Run("accepts legacy name field", func(t *testing.T) {
		gateway := new(MockPaymentGateway)
		gateway.On("CreateOrder", mock.Anything, mock.MatchedBy(func(in razorpay.CreateOrderInput) bool {
			return in.Notes["customerName"] == "Ravi"
		})).Return(&razorpay.Order{ID: "order_456", Amount: 100, Currency: "INR"}, nil)

		uc := NewCreateOrderUseCase(gateway, zap.NewNop())
		_, err := uc.Execute(context.Background(), CreateOrderInput{
			Amount:       1,
			CustomerInfo: CustomerInfo{Name: "Ravi"},
		})

		require.NoError(t, err)
	})

	t.Run("unconfigured gateway fails fast", func(t *testing.T) {
		uc := NewCreateOrderUseCase(nil, zap.NewNop())
		_, err := uc.Execute(context.Background(), CreateOrderInput{Amount: 7999})

		require.Error(t, err)
		assert.True(t, IsTechnicalError(err))
		assert.Equal(t, "Payment gateway not configured", err.Error())
	})

	t.Run("non-positive amount is a domain error", func(t *testing.T) {
		uc := NewCreateOrderUseCase(new(MockPaymentGateway), zap.NewNop())
		_, err := uc.Execute(context.Background(), CreateOrderInput{Amount: 0})

		require.Error(t, err)
		assert.True(t, IsDomainError(err))
	})

	t.Run("gateway rejection is a generic failure", func(t *testing.T) {
		gateway := new(MockPaymentGateway)
		gateway.On("CreateOrder", mock.Anything, mock.Anything).Return(nil, assert.AnError)

		uc := NewCreateOrderUseCase(gateway, zap.NewNop())
		_, err := uc.Execute(context.Background(), CreateOrderInput{Amount: 7999})

		require.Error(t, err)
		assert.True(t, IsTechnicalError(err))
		assert.Equal(t, "Failed to create order", err.Error())
	})
}
