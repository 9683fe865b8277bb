package server

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/example/foodcourt/pkg/restaurant"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (s *Server) createRestaurant(c *gin.Context) {
	userID, ok := s.currentUserID(c)
	if !ok {
		return
	}

	in, ok := s.restaurantForm(c, true)
	if !ok {
		return
	}

	r, err := s.restaurants.Create(c.Request.Context(), userID, in)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"message":    "restaurant added",
		"restaurant": r,
	})
}

func (s *Server) getMyRestaurant(c *gin.Context) {
	userID, ok := s.currentUserID(c)
	if !ok {
		return
	}

	r, err := s.restaurants.GetMine(c.Request.Context(), userID)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "restaurant": r})
}

func (s *Server) updateRestaurant(c *gin.Context) {
	userID, ok := s.currentUserID(c)
	if !ok {
		return
	}

	in, ok := s.restaurantForm(c, false)
	if !ok {
		return
	}

	r, err := s.restaurants.Update(c.Request.Context(), userID, in)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "restaurant updated successfully",
		"restaurant": r,
	})
}

func (s *Server) getRestaurant(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid restaurant id"})
		return
	}

	r, err := s.restaurants.GetByID(c.Request.Context(), id)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "restaurant": r})
}

func (s *Server) searchRestaurants(c *gin.Context) {
	query := c.Query("searchQuery")
	var cuisines []string
	for _, cuisine := range strings.Split(c.Query("selectedCuisines"), ",") {
		if cuisine = strings.TrimSpace(cuisine); cuisine != "" {
			cuisines = append(cuisines, cuisine)
		}
	}

	results, err := s.restaurants.Search(c.Request.Context(), query, cuisines)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": results})
}

func (s *Server) getRestaurantOrders(c *gin.Context) {
	userID, ok := s.currentUserID(c)
	if !ok {
		return
	}

	orders, err := s.restaurants.Orders(c.Request.Context(), userID)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (s *Server) updateOrderStatus(c *gin.Context) {
	orderID, err := primitive.ObjectIDFromHex(c.Param("orderId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid order id"})
		return
	}

	var req updateOrderStatusRequest
	if !s.bindAndValidate(c, &req) {
		return
	}

	order, err := s.restaurants.UpdateOrderStatus(c.Request.Context(), orderID, req.Status)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "order status updated",
		"status":  order.Status,
	})
}

// restaurantForm reads the multipart create/update payload. The image is
// required only on create.
func (s *Server) restaurantForm(c *gin.Context, imageRequired bool) (restaurant.RestaurantInput, bool) {
	var in restaurant.RestaurantInput

	in.Name = c.PostForm("restaurantName")
	in.City = c.PostForm("city")
	in.Country = c.PostForm("country")
	in.DeliveryTime, _ = strconv.Atoi(c.PostForm("deliveryTime"))
	if raw := c.PostForm("cuisines"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &in.Cuisines); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "cuisines must be a JSON array"})
			return in, false
		}
	}

	image, ok := s.formImage(c, imageRequired)
	if !ok {
		return in, false
	}
	in.Image = image
	return in, true
}

// formImage reads the uploaded imageFile, enforcing presence when required.
func (s *Server) formImage(c *gin.Context, required bool) ([]byte, bool) {
	fileHeader, err := c.FormFile("imageFile")
	if err != nil {
		if required {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "image is required"})
			return nil, false
		}
		return nil, true
	}

	data, err := readMultipartFile(fileHeader)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "failed to read image"})
		return nil, false
	}
	return data, true
}

func readMultipartFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
