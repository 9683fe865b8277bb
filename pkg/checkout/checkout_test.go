package checkout_test

import (
	"context"
	"errors"
	"testing"

	"github.com/example/foodcourt/pkg/checkout"
	"github.com/example/foodcourt/pkg/events"
	"github.com/example/foodcourt/pkg/mocks"
	"github.com/example/foodcourt/pkg/models"
	"github.com/example/foodcourt/pkg/payment"
	"github.com/example/foodcourt/pkg/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var testConfig = checkout.Config{
	ShippingCountries: []string{"GB", "US", "CA"},
	SuccessURL:        "http://localhost:5173/order/status",
	CancelURL:         "http://localhost:5173/cart",
}

type fixture struct {
	restaurants *mocks.RestaurantStore
	orders      *mocks.OrderStore
	carts       *mocks.CartStore
	provider    *mocks.PaymentProvider
	publisher   *mocks.EventPublisher
	service     *checkout.Service
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		restaurants: mocks.NewRestaurantStore(t),
		orders:      mocks.NewOrderStore(t),
		carts:       mocks.NewCartStore(t),
		provider:    mocks.NewPaymentProvider(t),
		publisher:   mocks.NewEventPublisher(t),
	}
	f.service = checkout.NewService(
		f.restaurants, f.orders, f.carts, f.provider, f.publisher, testConfig, zap.NewNop())
	return f
}

func testRestaurant(menuIDs ...primitive.ObjectID) *models.Restaurant {
	return &models.Restaurant{
		ID:      primitive.NewObjectID(),
		UserID:  primitive.NewObjectID(),
		Name:    "Testaurant",
		MenuIDs: menuIDs,
	}
}

func TestCreateSession(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()
	menuItem := models.MenuItem{ID: primitive.NewObjectID(), Title: "Biryani", Image: "biryani.jpg", Price: 250}

	t.Run("persists_pending_order_only_after_session_created", func(t *testing.T) {
		f := newFixture(t)
		r := testRestaurant(menuItem.ID)

		f.restaurants.On("FindRestaurantByID", ctx, r.ID).Return(r, nil).Once()
		f.restaurants.On("FindMenuItemsByIDs", ctx, r.MenuIDs).
			Return([]models.MenuItem{menuItem}, nil).Once()

		var sessionMetadata map[string]string
		f.provider.On("CreateSession", ctx, mock.MatchedBy(func(in payment.SessionInput) bool {
			sessionMetadata = in.Metadata
			return len(in.LineItems) == 1 &&
				in.LineItems[0].UnitAmount == 25000 &&
				in.SuccessURL == testConfig.SuccessURL
		})).Return(&payment.Session{ID: "cs_123", URL: "https://pay.example/cs_123"}, nil).Once()

		var inserted *models.Order
		f.orders.On("InsertOrder", ctx, mock.AnythingOfType("*models.Order")).
			Run(func(args mock.Arguments) {
				inserted = args.Get(1).(*models.Order)
			}).Return(nil).Once()

		session, err := f.service.CreateSession(ctx, checkout.CheckoutRequest{
			UserID:       userID,
			RestaurantID: r.ID,
			CartItems:    []models.CartItem{{MenuID: menuItem.ID.Hex(), Quantity: 2}},
		})
		require.NoError(t, err)
		assert.Equal(t, "https://pay.example/cs_123", session.URL)

		require.NotNil(t, inserted)
		assert.Equal(t, models.StatusPending, inserted.Status)
		assert.Equal(t, userID, inserted.UserID)
		assert.Zero(t, inserted.TotalAmount)
		// Session metadata carries the persisted order's identity.
		assert.Equal(t, inserted.ID.Hex(), sessionMetadata["orderId"])
	})

	t.Run("session_failure_persists_nothing", func(t *testing.T) {
		f := newFixture(t)
		r := testRestaurant(menuItem.ID)

		f.restaurants.On("FindRestaurantByID", ctx, r.ID).Return(r, nil).Once()
		f.restaurants.On("FindMenuItemsByIDs", ctx, r.MenuIDs).
			Return([]models.MenuItem{menuItem}, nil).Once()
		f.provider.On("CreateSession", ctx, mock.Anything).
			Return(nil, payment.ErrNoSessionURL).Once()

		_, err := f.service.CreateSession(ctx, checkout.CheckoutRequest{
			UserID:       userID,
			RestaurantID: r.ID,
			CartItems:    []models.CartItem{{MenuID: menuItem.ID.Hex(), Quantity: 1}},
		})
		assert.ErrorIs(t, err, checkout.ErrSessionCreation)
		f.orders.AssertNotCalled(t, "InsertOrder", mock.Anything, mock.Anything)
	})

	t.Run("unknown_restaurant_aborts_checkout", func(t *testing.T) {
		f := newFixture(t)
		missing := primitive.NewObjectID()

		f.restaurants.On("FindRestaurantByID", ctx, missing).
			Return(nil, errors.New("no documents")).Once()

		_, err := f.service.CreateSession(ctx, checkout.CheckoutRequest{
			UserID:       userID,
			RestaurantID: missing,
			CartItems:    []models.CartItem{{MenuID: menuItem.ID.Hex(), Quantity: 1}},
		})
		assert.ErrorIs(t, err, checkout.ErrRestaurantNotFound)
	})

	t.Run("stale_cart_aborts_before_session_creation", func(t *testing.T) {
		f := newFixture(t)
		r := testRestaurant(menuItem.ID)

		f.restaurants.On("FindRestaurantByID", ctx, r.ID).Return(r, nil).Once()
		f.restaurants.On("FindMenuItemsByIDs", ctx, r.MenuIDs).
			Return([]models.MenuItem{menuItem}, nil).Once()

		_, err := f.service.CreateSession(ctx, checkout.CheckoutRequest{
			UserID:       userID,
			RestaurantID: r.ID,
			CartItems:    []models.CartItem{{MenuID: primitive.NewObjectID().Hex(), Quantity: 1}},
		})
		assert.ErrorIs(t, err, pricing.ErrMenuItemNotFound)
		f.provider.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything)
		f.orders.AssertNotCalled(t, "InsertOrder", mock.Anything, mock.Anything)
	})
}

func TestHandleWebhook(t *testing.T) {
	ctx := context.Background()
	payload := []byte(`{"raw":"body"}`)

	t.Run("rejects_bad_signature_without_mutation", func(t *testing.T) {
		f := newFixture(t)
		f.provider.On("VerifyWebhook", payload, "bad-sig").
			Return(nil, payment.ErrSignature).Once()

		err := f.service.HandleWebhook(ctx, payload, "bad-sig")
		assert.ErrorIs(t, err, payment.ErrSignature)
		f.orders.AssertNotCalled(t, "FindOrderByID", mock.Anything, mock.Anything)
		f.orders.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("confirms_order_and_records_settled_amount", func(t *testing.T) {
		f := newFixture(t)
		order := &models.Order{
			ID:           primitive.NewObjectID(),
			UserID:       primitive.NewObjectID(),
			RestaurantID: primitive.NewObjectID(),
			Status:       models.StatusPending,
		}

		f.provider.On("VerifyWebhook", payload, "sig").Return(&payment.Event{
			Type:        payment.EventCheckoutCompleted,
			SessionID:   "cs_123",
			AmountTotal: 150000,
			Metadata:    map[string]string{"orderId": order.ID.Hex()},
		}, nil).Once()
		f.orders.On("FindOrderByID", ctx, order.ID).Return(order, nil).Once()
		f.orders.On("UpdateOrderStatus", ctx, order.ID, models.StatusConfirmed, int64(150000)).
			Return(nil).Once()
		f.carts.On("ClearCart", ctx, order.UserID.Hex()).Return(nil).Once()
		f.publisher.On("PublishOrderStatus", ctx, mock.MatchedBy(func(e events.OrderStatusChanged) bool {
			return e.OrderID == order.ID.Hex() &&
				e.Status == string(models.StatusConfirmed) &&
				e.TotalAmount == 150000
		})).Return(nil).Once()

		err := f.service.HandleWebhook(ctx, payload, "sig")
		assert.NoError(t, err)
	})

	t.Run("unknown_order_is_acknowledged_without_update", func(t *testing.T) {
		f := newFixture(t)
		orderID := primitive.NewObjectID()

		f.provider.On("VerifyWebhook", payload, "sig").Return(&payment.Event{
			Type:     payment.EventCheckoutCompleted,
			Metadata: map[string]string{"orderId": orderID.Hex()},
		}, nil).Once()
		f.orders.On("FindOrderByID", ctx, orderID).
			Return(nil, errors.New("no documents")).Once()

		err := f.service.HandleWebhook(ctx, payload, "sig")
		assert.NoError(t, err)
		f.orders.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("other_event_types_are_ignored", func(t *testing.T) {
		f := newFixture(t)
		f.provider.On("VerifyWebhook", payload, "sig").
			Return(&payment.Event{Type: "payment_intent.created"}, nil).Once()

		err := f.service.HandleWebhook(ctx, payload, "sig")
		assert.NoError(t, err)
		f.orders.AssertNotCalled(t, "FindOrderByID", mock.Anything, mock.Anything)
	})

	t.Run("duplicate_delivery_of_settled_order_is_acknowledged", func(t *testing.T) {
		f := newFixture(t)
		order := &models.Order{
			ID:     primitive.NewObjectID(),
			UserID: primitive.NewObjectID(),
			Status: models.StatusConfirmed,
		}

		f.provider.On("VerifyWebhook", payload, "sig").Return(&payment.Event{
			Type:        payment.EventCheckoutCompleted,
			AmountTotal: 150000,
			Metadata:    map[string]string{"orderId": order.ID.Hex()},
		}, nil).Once()
		f.orders.On("FindOrderByID", ctx, order.ID).Return(order, nil).Once()

		err := f.service.HandleWebhook(ctx, payload, "sig")
		assert.NoError(t, err)
		f.orders.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		f.carts.AssertNotCalled(t, "ClearCart", mock.Anything, mock.Anything)
	})
}
