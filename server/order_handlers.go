package server

import (
	"io"
	"net/http"

	"github.com/example/foodcourt/pkg/checkout"
	"github.com/example/foodcourt/pkg/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type checkoutCartItem struct {
	MenuID   string `json:"menuId" validate:"required"`
	Name     string `json:"name"`
	Image    string `json:"image"`
	Price    int64  `json:"price"`
	Quantity int64  `json:"quantity" validate:"required,gte=1"`
}

type deliveryDetailsRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	Country string `json:"country"`
	Contact string `json:"contact"`
}

type checkoutSessionRequest struct {
	CartItems       []checkoutCartItem     `json:"cartItems" validate:"required,min=1,dive"`
	DeliveryDetails deliveryDetailsRequest `json:"deliveryDetails" validate:"required"`
	RestaurantID    string                 `json:"restaurantId" validate:"required"`
}

func (s *Server) createCheckoutSession(c *gin.Context) {
	userID, ok := s.currentUserID(c)
	if !ok {
		return
	}

	var req checkoutSessionRequest
	if !s.bindAndValidate(c, &req) {
		return
	}

	restaurantID, err := primitive.ObjectIDFromHex(req.RestaurantID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid restaurant id"})
		return
	}

	cartItems := make([]models.CartItem, 0, len(req.CartItems))
	for _, item := range req.CartItems {
		cartItems = append(cartItems, models.CartItem{
			MenuID:   item.MenuID,
			Name:     item.Name,
			Image:    item.Image,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	session, err := s.checkout.CreateSession(c.Request.Context(), checkout.CheckoutRequest{
		UserID:       userID,
		RestaurantID: restaurantID,
		DeliveryDetails: models.DeliveryDetails{
			Name:    req.DeliveryDetails.Name,
			Email:   req.DeliveryDetails.Email,
			Address: req.DeliveryDetails.Address,
			City:    req.DeliveryDetails.City,
			Country: req.DeliveryDetails.Country,
			Contact: req.DeliveryDetails.Contact,
		},
		CartItems: cartItems,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": gin.H{"id": session.ID, "url": session.URL}})
}

func (s *Server) getOrders(c *gin.Context) {
	userID, ok := s.currentUserID(c)
	if !ok {
		return
	}

	orders, err := s.orders.FindOrdersByUser(c.Request.Context(), userID)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
}

// webhook handles the processor callback. The body is read raw and passed
// through unparsed so signature verification sees the exact received bytes.
func (s *Server) webhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.String(http.StatusBadRequest, "failed to read body")
		return
	}

	sigHeader := c.GetHeader("Stripe-Signature")
	if err := s.checkout.HandleWebhook(c.Request.Context(), payload, sigHeader); err != nil {
		s.writeError(c, err)
		return
	}
	c.String(http.StatusOK, "received")
}
