package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/example/foodcourt/pkg/auth"
	"github.com/example/foodcourt/pkg/cart"
	"github.com/example/foodcourt/pkg/models"
	"github.com/gin-gonic/gin"
)

func (s *Server) getCart(c *gin.Context) {
	items, err := s.carts.Get(c.Request.Context(), auth.UserID(c))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "cartItems": items})
}

type addToCartRequest struct {
	MenuID   string `json:"menuId" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Image    string `json:"image"`
	Price    int64  `json:"price" validate:"gte=0"`
	Quantity int64  `json:"quantity" validate:"gte=1"`
}

func (s *Server) addToCart(c *gin.Context) {
	var req addToCartRequest
	if !s.bindAndValidate(c, &req) {
		return
	}

	items, err := s.carts.Add(c.Request.Context(), auth.UserID(c), models.CartItem{
		MenuID:   req.MenuID,
		Name:     req.Name,
		Image:    req.Image,
		Price:    req.Price,
		Quantity: req.Quantity,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "cartItems": items})
}

func (s *Server) incrementCartItem(c *gin.Context) {
	s.adjustCartItem(c, s.carts.Increment)
}

func (s *Server) decrementCartItem(c *gin.Context) {
	s.adjustCartItem(c, s.carts.Decrement)
}

func (s *Server) adjustCartItem(c *gin.Context, op func(ctx context.Context, userID, menuID string) ([]models.CartItem, error)) {
	items, err := op(c.Request.Context(), auth.UserID(c), c.Param("menuId"))
	if errors.Is(err, cart.ErrItemNotInCart) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "item not in cart"})
		return
	}
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "cartItems": items})
}

func (s *Server) clearCart(c *gin.Context) {
	if err := s.carts.Clear(c.Request.Context(), auth.UserID(c)); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "cartItems": []models.CartItem{}})
}
