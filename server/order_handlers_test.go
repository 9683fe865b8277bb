package server_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/example/foodcourt/pkg/auth"
	"github.com/example/foodcourt/pkg/cart"
	"github.com/example/foodcourt/pkg/checkout"
	"github.com/example/foodcourt/pkg/config"
	"github.com/example/foodcourt/pkg/mocks"
	"github.com/example/foodcourt/pkg/models"
	"github.com/example/foodcourt/pkg/payment"
	"github.com/example/foodcourt/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type webhookFixture struct {
	provider *mocks.PaymentProvider
	orders   *mocks.OrderStore
	carts    *mocks.CartStore
	handler  http.Handler
}

func newWebhookFixture(t *testing.T) *webhookFixture {
	f := &webhookFixture{
		provider: mocks.NewPaymentProvider(t),
		orders:   mocks.NewOrderStore(t),
		carts:    mocks.NewCartStore(t),
	}

	checkoutSvc := checkout.NewService(
		mocks.NewRestaurantStore(t), f.orders, f.carts, f.provider, nil,
		checkout.Config{}, zap.NewNop())

	tokens := auth.NewTokenManager(&config.JWTConfig{Secret: "test", TTL: time.Hour})
	srv := server.New(&config.Config{}, zap.NewNop(), tokens,
		nil, nil, checkoutSvc, cart.NewService(f.carts), nil)
	f.handler = srv.Handler()
	return f
}

func TestWebhookEndpoint(t *testing.T) {
	rawBody := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)

	t.Run("bad_signature_is_rejected_with_400", func(t *testing.T) {
		f := newWebhookFixture(t)
		f.provider.On("VerifyWebhook", rawBody, "bad-sig").
			Return(nil, payment.ErrSignature).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/order/webhook", bytes.NewReader(rawBody))
		req.Header.Set("Stripe-Signature", "bad-sig")
		rec := httptest.NewRecorder()
		f.handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("verified_completed_event_confirms_order", func(t *testing.T) {
		f := newWebhookFixture(t)
		order := &models.Order{
			ID:     primitive.NewObjectID(),
			UserID: primitive.NewObjectID(),
			Status: models.StatusPending,
		}

		// The handler must hand the exact raw bytes to verification.
		f.provider.On("VerifyWebhook", rawBody, "good-sig").Return(&payment.Event{
			Type:        payment.EventCheckoutCompleted,
			AmountTotal: 150000,
			Metadata:    map[string]string{"orderId": order.ID.Hex()},
		}, nil).Once()
		f.orders.On("FindOrderByID", mock.Anything, order.ID).Return(order, nil).Once()
		f.orders.On("UpdateOrderStatus", mock.Anything, order.ID, models.StatusConfirmed, int64(150000)).
			Return(nil).Once()
		f.carts.On("ClearCart", mock.Anything, order.UserID.Hex()).Return(nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/order/webhook", bytes.NewReader(rawBody))
		req.Header.Set("Stripe-Signature", "good-sig")
		rec := httptest.NewRecorder()
		f.handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("verified_event_for_unknown_order_still_returns_200", func(t *testing.T) {
		f := newWebhookFixture(t)
		orderID := primitive.NewObjectID()

		f.provider.On("VerifyWebhook", rawBody, "good-sig").Return(&payment.Event{
			Type:     payment.EventCheckoutCompleted,
			Metadata: map[string]string{"orderId": orderID.Hex()},
		}, nil).Once()
		f.orders.On("FindOrderByID", mock.Anything, orderID).
			Return(nil, assert.AnError).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/order/webhook", bytes.NewReader(rawBody))
		req.Header.Set("Stripe-Signature", "good-sig")
		rec := httptest.NewRecorder()
		f.handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	f := newWebhookFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/order/get-order", nil)
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	f := newWebhookFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
