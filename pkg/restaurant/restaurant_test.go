package restaurant_test

import (
	"context"
	"errors"
	"testing"

	"github.com/example/foodcourt/pkg/mocks"
	"github.com/example/foodcourt/pkg/models"
	"github.com/example/foodcourt/pkg/restaurant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func TestCreate(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()
	input := restaurant.RestaurantInput{
		Name:         "Spice Garden",
		City:         "Chennai",
		Country:      "India",
		DeliveryTime: 30,
		Cuisines:     []string{"Indian"},
		Image:        []byte("img"),
	}

	t.Run("rejects_second_restaurant_for_same_owner", func(t *testing.T) {
		store := mocks.NewRestaurantRepo(t)
		images := mocks.NewImageUploader(t)
		svc := restaurant.NewService(store, images, nil, zap.NewNop())

		store.On("FindRestaurantByOwner", ctx, userID).
			Return(&models.Restaurant{ID: primitive.NewObjectID(), UserID: userID}, nil).Once()

		_, err := svc.Create(ctx, userID, input)
		assert.ErrorIs(t, err, restaurant.ErrAlreadyExists)
		images.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
	})

	t.Run("creates_with_uploaded_banner", func(t *testing.T) {
		store := mocks.NewRestaurantRepo(t)
		images := mocks.NewImageUploader(t)
		svc := restaurant.NewService(store, images, nil, zap.NewNop())

		store.On("FindRestaurantByOwner", ctx, userID).
			Return(nil, errors.New("no documents")).Once()
		images.On("Upload", ctx, []byte("img")).
			Return("https://img.example/banner.jpg", nil).Once()
		store.On("InsertRestaurant", ctx, mock.MatchedBy(func(r *models.Restaurant) bool {
			return r.UserID == userID && r.Image == "https://img.example/banner.jpg"
		})).Return(nil).Once()

		r, err := svc.Create(ctx, userID, input)
		require.NoError(t, err)
		assert.Equal(t, "Spice Garden", r.Name)
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("moves_order_through_transition_table", func(t *testing.T) {
		store := mocks.NewRestaurantRepo(t)
		publisher := mocks.NewEventPublisher(t)
		svc := restaurant.NewService(store, mocks.NewImageUploader(t), publisher, zap.NewNop())

		order := &models.Order{
			ID:           primitive.NewObjectID(),
			UserID:       primitive.NewObjectID(),
			RestaurantID: primitive.NewObjectID(),
			Status:       models.StatusConfirmed,
		}
		store.On("FindOrderByID", ctx, order.ID).Return(order, nil).Once()
		store.On("UpdateOrderStatus", ctx, order.ID, models.StatusPreparing, int64(0)).
			Return(nil).Once()
		publisher.On("PublishOrderStatus", ctx, mock.Anything).Return(nil).Once()

		updated, err := svc.UpdateOrderStatus(ctx, order.ID, "preparing")
		require.NoError(t, err)
		assert.Equal(t, models.StatusPreparing, updated.Status)
	})

	t.Run("rejects_out_of_order_transition", func(t *testing.T) {
		store := mocks.NewRestaurantRepo(t)
		svc := restaurant.NewService(store, mocks.NewImageUploader(t), nil, zap.NewNop())

		order := &models.Order{ID: primitive.NewObjectID(), Status: models.StatusPending}
		store.On("FindOrderByID", ctx, order.ID).Return(order, nil).Once()

		_, err := svc.UpdateOrderStatus(ctx, order.ID, "delivered")
		assert.ErrorIs(t, err, models.ErrInvalidTransition)
		store.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects_arbitrary_status_string", func(t *testing.T) {
		store := mocks.NewRestaurantRepo(t)
		svc := restaurant.NewService(store, mocks.NewImageUploader(t), nil, zap.NewNop())

		_, err := svc.UpdateOrderStatus(ctx, primitive.NewObjectID(), "totally-bogus")
		assert.ErrorIs(t, err, restaurant.ErrBadStatus)
		store.AssertNotCalled(t, "FindOrderByID", mock.Anything, mock.Anything)
	})
}

func TestSearch(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewRestaurantRepo(t)
	svc := restaurant.NewService(store, mocks.NewImageUploader(t), nil, zap.NewNop())

	expected := []models.Restaurant{{Name: "Pizza Palace"}}
	store.On("SearchRestaurants", ctx, "pizza", []string{"Italian"}).
		Return(expected, nil).Once()

	results, err := svc.Search(ctx, "pizza", []string{"Italian"})
	require.NoError(t, err)
	assert.Equal(t, expected, results)
}

func TestAddMenu(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()

	store := mocks.NewRestaurantRepo(t)
	images := mocks.NewImageUploader(t)
	svc := restaurant.NewService(store, images, nil, zap.NewNop())

	r := &models.Restaurant{ID: primitive.NewObjectID(), UserID: userID}

	images.On("Upload", ctx, []byte("img")).Return("https://img.example/menu.jpg", nil).Once()
	store.On("InsertMenuItem", ctx, mock.MatchedBy(func(item *models.MenuItem) bool {
		return item.Title == "Idli" && item.Image == "https://img.example/menu.jpg"
	})).Return(nil).Once()
	store.On("FindRestaurantByOwner", ctx, userID).Return(r, nil).Once()
	store.On("AppendRestaurantMenu", ctx, r.ID, mock.Anything).Return(nil).Once()

	item, err := svc.AddMenu(ctx, userID, restaurant.MenuInput{
		Title: "Idli", Description: "Steamed rice cakes", Price: 80, Image: []byte("img"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(80), item.Price)
}
