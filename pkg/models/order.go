package models

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusOutForDelivery OrderStatus = "outfordelivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

var ErrInvalidTransition = errors.New("invalid order status transition")

// transitions is the closed set of allowed status changes. Cancellation is
// allowed from any non-terminal state.
var transitions = map[OrderStatus][]OrderStatus{
	StatusPending:        {StatusConfirmed, StatusCancelled},
	StatusConfirmed:      {StatusPreparing, StatusCancelled},
	StatusPreparing:      {StatusOutForDelivery, StatusCancelled},
	StatusOutForDelivery: {StatusDelivered, StatusCancelled},
}

func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case StatusPending, StatusConfirmed, StatusPreparing,
		StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return OrderStatus(s), true
	}
	return "", false
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type DeliveryDetails struct {
	Name    string `bson:"name" json:"name"`
	Email   string `bson:"email" json:"email"`
	Address string `bson:"address" json:"address"`
	City    string `bson:"city" json:"city"`
	Country string `bson:"country" json:"country"`
	Contact string `bson:"contact" json:"contact"`
}

// CartItem is a snapshot of a menu line at checkout time. Price is in major
// currency units as shown to the client.
type CartItem struct {
	MenuID   string `bson:"menuId" json:"menuId"`
	Name     string `bson:"name" json:"name"`
	Image    string `bson:"image" json:"image"`
	Price    int64  `bson:"price" json:"price"`
	Quantity int64  `bson:"quantity" json:"quantity"`
}

// Order tracks a checkout from pending through settlement. TotalAmount is the
// processor-settled amount in minor currency units and is authoritative only
// once Status is confirmed.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID `bson:"user" json:"userId"`
	RestaurantID    primitive.ObjectID `bson:"restaurant" json:"restaurantId"`
	DeliveryDetails DeliveryDetails    `bson:"deliveryDetails" json:"deliveryDetails"`
	CartItems       []CartItem         `bson:"cartItems" json:"cartItems"`
	Status          OrderStatus        `bson:"status" json:"status"`
	TotalAmount     int64              `bson:"totalAmount,omitempty" json:"totalAmount"`
	Restaurant      *Restaurant        `bson:"-" json:"restaurant,omitempty"`
	User            *User              `bson:"-" json:"user,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Transition moves the order to next, rejecting anything outside the
// transition table.
func (o *Order) Transition(next OrderStatus) error {
	if !o.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, next)
	}
	o.Status = next
	return nil
}
