package mocks

import (
	"context"

	"github.com/example/foodcourt/pkg/models"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RestaurantStore struct {
	mock.Mock
}

func NewRestaurantStore(t mockConstructorTestingT) *RestaurantStore {
	m := &RestaurantStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *RestaurantStore) FindRestaurantByID(ctx context.Context, id primitive.ObjectID) (*models.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Restaurant), args.Error(1)
}

func (m *RestaurantStore) FindMenuItemsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.MenuItem, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MenuItem), args.Error(1)
}

type OrderStore struct {
	mock.Mock
}

func NewOrderStore(t mockConstructorTestingT) *OrderStore {
	m := &OrderStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderStore) InsertOrder(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *OrderStore) FindOrderByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *OrderStore) UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus, totalAmount int64) error {
	args := m.Called(ctx, id, status, totalAmount)
	return args.Error(0)
}

type CartStore struct {
	mock.Mock
}

func NewCartStore(t mockConstructorTestingT) *CartStore {
	m := &CartStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CartStore) GetCart(ctx context.Context, userID string) ([]models.CartItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CartItem), args.Error(1)
}

func (m *CartStore) SaveCart(ctx context.Context, userID string, items []models.CartItem) error {
	args := m.Called(ctx, userID, items)
	return args.Error(0)
}

func (m *CartStore) ClearCart(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
