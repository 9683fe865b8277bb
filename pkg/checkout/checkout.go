// Package checkout implements the order lifecycle: turn a cart into a
// pending order backed by a hosted payment session, then settle the order
// from the processor's signed webhook callback.
package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/example/foodcourt/pkg/events"
	"github.com/example/foodcourt/pkg/models"
	"github.com/example/foodcourt/pkg/payment"
	"github.com/example/foodcourt/pkg/pricing"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrSessionCreation    = errors.New("failed to create payment session")
)

// metadataOrderID is the session metadata key carrying the order identity so
// the webhook can find the order without a separate lookup table.
const metadataOrderID = "orderId"

// RestaurantStore resolves restaurants and their menu catalogs.
type RestaurantStore interface {
	FindRestaurantByID(ctx context.Context, id primitive.ObjectID) (*models.Restaurant, error)
	FindMenuItemsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.MenuItem, error)
}

// OrderStore persists and mutates order records.
type OrderStore interface {
	InsertOrder(ctx context.Context, order *models.Order) error
	FindOrderByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus, totalAmount int64) error
}

// CartStore clears a user's transient cart once their order settles.
type CartStore interface {
	ClearCart(ctx context.Context, userID string) error
}

type Config struct {
	ShippingCountries []string
	SuccessURL        string
	CancelURL         string
}

type Service struct {
	restaurants RestaurantStore
	orders      OrderStore
	carts       CartStore
	provider    payment.Provider
	publisher   events.Publisher
	config      Config
	logger      *zap.Logger
}

func NewService(
	restaurants RestaurantStore,
	orders OrderStore,
	carts CartStore,
	provider payment.Provider,
	publisher events.Publisher,
	cfg Config,
	logger *zap.Logger,
) *Service {
	return &Service{
		restaurants: restaurants,
		orders:      orders,
		carts:       carts,
		provider:    provider,
		publisher:   publisher,
		config:      cfg,
		logger:      logger,
	}
}

// CheckoutRequest is a cart plus delivery details bound to one restaurant.
type CheckoutRequest struct {
	UserID          primitive.ObjectID
	RestaurantID    primitive.ObjectID
	DeliveryDetails models.DeliveryDetails
	CartItems       []models.CartItem
}

// CreateSession runs the checkout sequence: resolve the restaurant, build a
// pending order in memory, price the cart against the authoritative catalog,
// create the hosted payment session, and persist the order only once a
// usable session exists. Nothing is persisted on any failure before that.
func (s *Service) CreateSession(ctx context.Context, req CheckoutRequest) (*payment.Session, error) {
	restaurant, err := s.restaurants.FindRestaurantByID(ctx, req.RestaurantID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRestaurantNotFound, req.RestaurantID.Hex())
	}

	menuItems, err := s.restaurants.FindMenuItemsByIDs(ctx, restaurant.MenuIDs)
	if err != nil {
		return nil, fmt.Errorf("load menu catalog: %w", err)
	}

	lineItems, err := pricing.Build(req.CartItems, menuItems)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		ID:              primitive.NewObjectID(),
		UserID:          req.UserID,
		RestaurantID:    restaurant.ID,
		DeliveryDetails: req.DeliveryDetails,
		CartItems:       req.CartItems,
		Status:          models.StatusPending,
	}

	images := make([]string, 0, len(menuItems))
	for _, item := range menuItems {
		images = append(images, item.Image)
	}
	imageManifest, _ := json.Marshal(images)

	session, err := s.provider.CreateSession(ctx, payment.SessionInput{
		LineItems:         lineItems,
		ShippingCountries: s.config.ShippingCountries,
		SuccessURL:        s.config.SuccessURL,
		CancelURL:         s.config.CancelURL,
		Metadata: map[string]string{
			metadataOrderID: order.ID.Hex(),
			"images":        string(imageManifest),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionCreation, err)
	}

	// TODO: expire the session via the processor API if this insert fails,
	// otherwise the customer can pay against an order that was never recorded.
	if err := s.orders.InsertOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("persist pending order: %w", err)
	}

	s.logger.Info("checkout session created",
		zap.String("order_id", order.ID.Hex()),
		zap.String("session_id", session.ID),
		zap.String("restaurant_id", restaurant.ID.Hex()))

	return session, nil
}

// HandleWebhook reconciles an order from a verified processor event. The raw
// body must be passed through unparsed for signature verification. Once the
// event is authenticated the call succeeds even if no matching order exists,
// since the processor retries on failure and a missing order cannot be fixed
// by redelivery.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, sigHeader string) error {
	event, err := s.provider.VerifyWebhook(payload, sigHeader)
	if err != nil {
		return err
	}

	if event.Type != payment.EventCheckoutCompleted {
		s.logger.Debug("ignoring webhook event", zap.String("type", event.Type))
		return nil
	}

	orderID, err := primitive.ObjectIDFromHex(event.Metadata[metadataOrderID])
	if err != nil {
		s.logger.Warn("webhook event carries no usable order id",
			zap.String("session_id", event.SessionID))
		return nil
	}

	order, err := s.orders.FindOrderByID(ctx, orderID)
	if err != nil {
		s.logger.Warn("webhook references unknown order",
			zap.String("order_id", orderID.Hex()),
			zap.Error(err))
		return nil
	}

	if err := order.Transition(models.StatusConfirmed); err != nil {
		// Duplicate delivery of an already-settled session.
		s.logger.Info("order already settled, acknowledging redelivery",
			zap.String("order_id", orderID.Hex()),
			zap.String("status", string(order.Status)))
		return nil
	}

	if err := s.orders.UpdateOrderStatus(ctx, orderID, models.StatusConfirmed, event.AmountTotal); err != nil {
		return fmt.Errorf("confirm order %s: %w", orderID.Hex(), err)
	}

	if err := s.carts.ClearCart(ctx, order.UserID.Hex()); err != nil {
		s.logger.Error("failed to clear cart after confirmation",
			zap.String("user_id", order.UserID.Hex()),
			zap.Error(err))
	}

	if s.publisher != nil {
		_ = s.publisher.PublishOrderStatus(ctx, events.OrderStatusChanged{
			OrderID:      orderID.Hex(),
			RestaurantID: order.RestaurantID.Hex(),
			UserID:       order.UserID.Hex(),
			Status:       string(models.StatusConfirmed),
			TotalAmount:  event.AmountTotal,
			Timestamp:    time.Now(),
		})
	}

	s.logger.Info("order confirmed",
		zap.String("order_id", orderID.Hex()),
		zap.Int64("total_amount", event.AmountTotal))
	return nil
}
