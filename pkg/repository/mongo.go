package repository

import (
	"context"
	"errors"
	"time"

	"github.com/example/foodcourt/pkg/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("document not found")

type MongoRepository struct {
	client   *mongo.Client
	database *mongo.Database
	config   *config.MongoDBConfig
}

func NewMongoRepository(cfg *config.MongoDBConfig) (*MongoRepository, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}

	return &MongoRepository{
		client:   client,
		database: client.Database(cfg.Database),
		config:   cfg,
	}, nil
}

func (m *MongoRepository) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}

func (m *MongoRepository) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func (m *MongoRepository) users() *mongo.Collection {
	return m.database.Collection("users")
}

func (m *MongoRepository) restaurants() *mongo.Collection {
	return m.database.Collection("restaurants")
}

func (m *MongoRepository) menus() *mongo.Collection {
	return m.database.Collection("menus")
}

func (m *MongoRepository) orders() *mongo.Collection {
	return m.database.Collection("orders")
}
