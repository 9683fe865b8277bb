package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MenuItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Price       int64              `bson:"price" json:"price"` // major currency units
	Image       string             `bson:"image" json:"image"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Restaurant is owned by exactly one user; a user owns at most one restaurant.
type Restaurant struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	UserID       primitive.ObjectID   `bson:"user" json:"userId"`
	Name         string               `bson:"restaurantName" json:"restaurantName"`
	City         string               `bson:"city" json:"city"`
	Country      string               `bson:"country" json:"country"`
	DeliveryTime int                  `bson:"deliveryTime" json:"deliveryTime"` // minutes
	Cuisines     []string             `bson:"cuisines" json:"cuisines"`
	Image        string               `bson:"imageUrl" json:"imageUrl"`
	MenuIDs      []primitive.ObjectID `bson:"menus" json:"-"`
	Menus        []MenuItem           `bson:"-" json:"menus,omitempty"`
	CreatedAt    time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time            `bson:"updatedAt" json:"updatedAt"`
}
