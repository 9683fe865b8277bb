package repository

import (
	"context"
	"errors"
	"time"

	"github.com/example/foodcourt/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (m *MongoRepository) InsertOrder(ctx context.Context, order *models.Order) error {
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	_, err := m.orders().InsertOne(ctx, order)
	return err
}

func (m *MongoRepository) FindOrderByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	err := m.orders().FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (m *MongoRepository) FindOrdersByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	return m.findOrders(ctx, bson.M{"user": userID})
}

func (m *MongoRepository) FindOrdersByRestaurant(ctx context.Context, restaurantID primitive.ObjectID) ([]models.Order, error) {
	return m.findOrders(ctx, bson.M{"restaurant": restaurantID})
}

func (m *MongoRepository) findOrders(ctx context.Context, filter bson.M) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := m.orders().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}

	// Resolve restaurant and user references into the response documents.
	for i := range orders {
		if r, err := m.FindRestaurantByID(ctx, orders[i].RestaurantID); err == nil {
			orders[i].Restaurant = r
		}
		if u, err := m.FindUserByID(ctx, orders[i].UserID); err == nil {
			orders[i].User = u
		}
	}
	return orders, nil
}

func (m *MongoRepository) UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus, totalAmount int64) error {
	set := bson.M{"status": status, "updatedAt": time.Now()}
	if totalAmount > 0 {
		set["totalAmount"] = totalAmount
	}

	res, err := m.orders().UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
