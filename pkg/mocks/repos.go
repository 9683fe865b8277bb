package mocks

import (
	"context"
	"time"

	"github.com/example/foodcourt/pkg/models"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserStore mocks the user service's repository slice.
type UserStore struct {
	mock.Mock
}

func NewUserStore(t mockConstructorTestingT) *UserStore {
	m := &UserStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *UserStore) InsertUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserStore) FindUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return m.userResult(m.Called(ctx, id))
}

func (m *UserStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.userResult(m.Called(ctx, email))
}

func (m *UserStore) FindUserByVerificationCode(ctx context.Context, code string) (*models.User, error) {
	return m.userResult(m.Called(ctx, code))
}

func (m *UserStore) FindUserByResetToken(ctx context.Context, token string) (*models.User, error) {
	return m.userResult(m.Called(ctx, token))
}

func (m *UserStore) UpdateUser(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	args := m.Called(ctx, id, set)
	return args.Error(0)
}

func (m *UserStore) MarkUserVerified(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *UserStore) ResetUserPassword(ctx context.Context, id primitive.ObjectID, hashedPassword string) error {
	args := m.Called(ctx, id, hashedPassword)
	return args.Error(0)
}

func (m *UserStore) UpdateUserLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *UserStore) userResult(args mock.Arguments) (*models.User, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// RestaurantRepo mocks the restaurant service's repository slice.
type RestaurantRepo struct {
	mock.Mock
}

func NewRestaurantRepo(t mockConstructorTestingT) *RestaurantRepo {
	m := &RestaurantRepo{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *RestaurantRepo) InsertRestaurant(ctx context.Context, r *models.Restaurant) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *RestaurantRepo) FindRestaurantByID(ctx context.Context, id primitive.ObjectID) (*models.Restaurant, error) {
	return m.restaurantResult(m.Called(ctx, id))
}

func (m *RestaurantRepo) FindRestaurantByOwner(ctx context.Context, userID primitive.ObjectID) (*models.Restaurant, error) {
	return m.restaurantResult(m.Called(ctx, userID))
}

func (m *RestaurantRepo) UpdateRestaurant(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	args := m.Called(ctx, id, set)
	return args.Error(0)
}

func (m *RestaurantRepo) AppendRestaurantMenu(ctx context.Context, id, menuID primitive.ObjectID) error {
	args := m.Called(ctx, id, menuID)
	return args.Error(0)
}

func (m *RestaurantRepo) SearchRestaurants(ctx context.Context, query string, cuisines []string) ([]models.Restaurant, error) {
	args := m.Called(ctx, query, cuisines)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Restaurant), args.Error(1)
}

func (m *RestaurantRepo) InsertMenuItem(ctx context.Context, item *models.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *RestaurantRepo) UpdateMenuItem(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	args := m.Called(ctx, id, set)
	return args.Error(0)
}

func (m *RestaurantRepo) FindMenuItemsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.MenuItem, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MenuItem), args.Error(1)
}

func (m *RestaurantRepo) FindOrdersByRestaurant(ctx context.Context, restaurantID primitive.ObjectID) ([]models.Order, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *RestaurantRepo) FindOrderByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *RestaurantRepo) UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus, totalAmount int64) error {
	args := m.Called(ctx, id, status, totalAmount)
	return args.Error(0)
}

func (m *RestaurantRepo) restaurantResult(args mock.Arguments) (*models.Restaurant, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Restaurant), args.Error(1)
}
