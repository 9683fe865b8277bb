package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/example/foodcourt/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func (m *MongoRepository) InsertRestaurant(ctx context.Context, r *models.Restaurant) error {
	now := time.Now()
	r.CreatedAt = now
	r.UpdatedAt = now
	if r.MenuIDs == nil {
		r.MenuIDs = []primitive.ObjectID{}
	}

	res, err := m.restaurants().InsertOne(ctx, r)
	if err != nil {
		return err
	}
	r.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (m *MongoRepository) FindRestaurantByID(ctx context.Context, id primitive.ObjectID) (*models.Restaurant, error) {
	return m.findRestaurant(ctx, bson.M{"_id": id})
}

func (m *MongoRepository) FindRestaurantByOwner(ctx context.Context, userID primitive.ObjectID) (*models.Restaurant, error) {
	return m.findRestaurant(ctx, bson.M{"user": userID})
}

func (m *MongoRepository) findRestaurant(ctx context.Context, filter bson.M) (*models.Restaurant, error) {
	var r models.Restaurant
	err := m.restaurants().FindOne(ctx, filter).Decode(&r)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (m *MongoRepository) UpdateRestaurant(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	set["updatedAt"] = time.Now()
	res, err := m.restaurants().UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoRepository) AppendRestaurantMenu(ctx context.Context, id, menuID primitive.ObjectID) error {
	res, err := m.restaurants().UpdateByID(ctx, id, bson.M{
		"$push": bson.M{"menus": menuID},
		"$set":  bson.M{"updatedAt": time.Now()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// BuildSearchFilter builds the restaurant search predicate: a case-insensitive
// substring match of query across name, city, country and cuisines, optionally
// narrowed to restaurants whose cuisine set intersects cuisines.
func BuildSearchFilter(query string, cuisines []string) bson.M {
	filter := bson.M{}

	if query != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"restaurantName": pattern},
			bson.M{"city": pattern},
			bson.M{"country": pattern},
			bson.M{"cuisines": pattern},
		}
	}
	if len(cuisines) > 0 {
		filter["cuisines"] = bson.M{"$in": cuisines}
	}
	return filter
}

func (m *MongoRepository) SearchRestaurants(ctx context.Context, query string, cuisines []string) ([]models.Restaurant, error) {
	cursor, err := m.restaurants().Find(ctx, BuildSearchFilter(query, cuisines))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	restaurants := []models.Restaurant{}
	if err := cursor.All(ctx, &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}
