// Package restaurant implements restaurant ownership, menu management,
// search, and the owner-facing order operations.
package restaurant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/example/foodcourt/pkg/events"
	"github.com/example/foodcourt/pkg/imagestore"
	"github.com/example/foodcourt/pkg/models"
	"github.com/example/foodcourt/pkg/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var (
	ErrAlreadyExists = errors.New("restaurant already exists for this user")
	ErrNotFound      = errors.New("restaurant not found")
	ErrMenuNotFound  = errors.New("menu item not found")
	ErrOrderNotFound = errors.New("order not found")
	ErrBadStatus     = errors.New("unknown order status")
)

// Store is the slice of the repository this service needs.
type Store interface {
	InsertRestaurant(ctx context.Context, r *models.Restaurant) error
	FindRestaurantByID(ctx context.Context, id primitive.ObjectID) (*models.Restaurant, error)
	FindRestaurantByOwner(ctx context.Context, userID primitive.ObjectID) (*models.Restaurant, error)
	UpdateRestaurant(ctx context.Context, id primitive.ObjectID, set bson.M) error
	AppendRestaurantMenu(ctx context.Context, id, menuID primitive.ObjectID) error
	SearchRestaurants(ctx context.Context, query string, cuisines []string) ([]models.Restaurant, error)
	InsertMenuItem(ctx context.Context, item *models.MenuItem) error
	UpdateMenuItem(ctx context.Context, id primitive.ObjectID, set bson.M) error
	FindMenuItemsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.MenuItem, error)
	FindOrdersByRestaurant(ctx context.Context, restaurantID primitive.ObjectID) ([]models.Order, error)
	FindOrderByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus, totalAmount int64) error
}

type Service struct {
	store     Store
	images    imagestore.Uploader
	publisher events.Publisher
	logger    *zap.Logger
}

func NewService(store Store, images imagestore.Uploader, publisher events.Publisher, logger *zap.Logger) *Service {
	return &Service{store: store, images: images, publisher: publisher, logger: logger}
}

type RestaurantInput struct {
	Name         string
	City         string
	Country      string
	DeliveryTime int
	Cuisines     []string
	Image        []byte
}

// Create adds the owner's restaurant. A user owns at most one restaurant;
// a second create is rejected.
func (s *Service) Create(ctx context.Context, userID primitive.ObjectID, in RestaurantInput) (*models.Restaurant, error) {
	if _, err := s.store.FindRestaurantByOwner(ctx, userID); err == nil {
		return nil, ErrAlreadyExists
	}

	imageURL, err := s.images.Upload(ctx, in.Image)
	if err != nil {
		return nil, fmt.Errorf("upload banner image: %w", err)
	}

	r := &models.Restaurant{
		UserID:       userID,
		Name:         in.Name,
		City:         in.City,
		Country:      in.Country,
		DeliveryTime: in.DeliveryTime,
		Cuisines:     in.Cuisines,
		Image:        imageURL,
	}
	if err := s.store.InsertRestaurant(ctx, r); err != nil {
		return nil, fmt.Errorf("create restaurant: %w", err)
	}
	return r, nil
}

// GetMine returns the caller's restaurant with its menu resolved.
func (s *Service) GetMine(ctx context.Context, userID primitive.ObjectID) (*models.Restaurant, error) {
	r, err := s.store.FindRestaurantByOwner(ctx, userID)
	if err != nil {
		return nil, ErrNotFound
	}
	return s.withMenus(ctx, r)
}

func (s *Service) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Restaurant, error) {
	r, err := s.store.FindRestaurantByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return s.withMenus(ctx, r)
}

func (s *Service) withMenus(ctx context.Context, r *models.Restaurant) (*models.Restaurant, error) {
	menus, err := s.store.FindMenuItemsByIDs(ctx, r.MenuIDs)
	if err != nil {
		return nil, fmt.Errorf("resolve menus: %w", err)
	}
	r.Menus = menus
	return r, nil
}

func (s *Service) Update(ctx context.Context, userID primitive.ObjectID, in RestaurantInput) (*models.Restaurant, error) {
	r, err := s.store.FindRestaurantByOwner(ctx, userID)
	if err != nil {
		return nil, ErrNotFound
	}

	set := bson.M{}
	if in.Name != "" {
		set["restaurantName"] = in.Name
	}
	if in.City != "" {
		set["city"] = in.City
	}
	if in.Country != "" {
		set["country"] = in.Country
	}
	if in.DeliveryTime > 0 {
		set["deliveryTime"] = in.DeliveryTime
	}
	if len(in.Cuisines) > 0 {
		set["cuisines"] = in.Cuisines
	}
	if len(in.Image) > 0 {
		imageURL, err := s.images.Upload(ctx, in.Image)
		if err != nil {
			return nil, fmt.Errorf("upload banner image: %w", err)
		}
		set["imageUrl"] = imageURL
	}

	if err := s.store.UpdateRestaurant(ctx, r.ID, set); err != nil {
		return nil, err
	}
	return s.store.FindRestaurantByID(ctx, r.ID)
}

// Search matches query case-insensitively across restaurant name, city,
// country and cuisines; cuisines narrows results to any-intersection.
func (s *Service) Search(ctx context.Context, query string, cuisines []string) ([]models.Restaurant, error) {
	return s.store.SearchRestaurants(ctx, query, cuisines)
}

// Orders lists the caller's restaurant orders, newest first.
func (s *Service) Orders(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	r, err := s.store.FindRestaurantByOwner(ctx, userID)
	if err != nil {
		return nil, ErrNotFound
	}
	return s.store.FindOrdersByRestaurant(ctx, r.ID)
}

// UpdateOrderStatus moves an order through the closed transition table;
// arbitrary status strings and out-of-order transitions are rejected.
func (s *Service) UpdateOrderStatus(ctx context.Context, orderID primitive.ObjectID, status string) (*models.Order, error) {
	next, ok := models.ParseOrderStatus(status)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBadStatus, status)
	}

	order, err := s.store.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	if err := order.Transition(next); err != nil {
		return nil, err
	}
	if err := s.store.UpdateOrderStatus(ctx, orderID, next, 0); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.PublishOrderStatus(ctx, events.OrderStatusChanged{
			OrderID:      order.ID.Hex(),
			RestaurantID: order.RestaurantID.Hex(),
			UserID:       order.UserID.Hex(),
			Status:       string(next),
			Timestamp:    time.Now(),
		})
	}
	return order, nil
}

type MenuInput struct {
	Title       string
	Description string
	Price       int64
	Image       []byte
}

// AddMenu creates a menu item and appends it to the owner's restaurant.
func (s *Service) AddMenu(ctx context.Context, userID primitive.ObjectID, in MenuInput) (*models.MenuItem, error) {
	imageURL, err := s.images.Upload(ctx, in.Image)
	if err != nil {
		return nil, fmt.Errorf("upload menu image: %w", err)
	}

	item := &models.MenuItem{
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Image:       imageURL,
	}
	if err := s.store.InsertMenuItem(ctx, item); err != nil {
		return nil, fmt.Errorf("create menu item: %w", err)
	}

	r, err := s.store.FindRestaurantByOwner(ctx, userID)
	if err == nil {
		if err := s.store.AppendRestaurantMenu(ctx, r.ID, item.ID); err != nil {
			s.logger.Error("failed to attach menu to restaurant",
				zap.String("menu_id", item.ID.Hex()),
				zap.String("restaurant_id", r.ID.Hex()),
				zap.Error(err))
		}
	}
	return item, nil
}

func (s *Service) EditMenu(ctx context.Context, menuID primitive.ObjectID, in MenuInput) (*models.MenuItem, error) {
	set := bson.M{}
	if in.Title != "" {
		set["title"] = in.Title
	}
	if in.Description != "" {
		set["description"] = in.Description
	}
	if in.Price > 0 {
		set["price"] = in.Price
	}
	if len(in.Image) > 0 {
		imageURL, err := s.images.Upload(ctx, in.Image)
		if err != nil {
			return nil, fmt.Errorf("upload menu image: %w", err)
		}
		set["image"] = imageURL
	}

	if err := s.store.UpdateMenuItem(ctx, menuID, set); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMenuNotFound
		}
		return nil, err
	}

	items, err := s.store.FindMenuItemsByIDs(ctx, []primitive.ObjectID{menuID})
	if err != nil || len(items) == 0 {
		return nil, ErrMenuNotFound
	}
	return &items[0], nil
}
