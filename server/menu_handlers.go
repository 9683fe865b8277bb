package server

import (
	"net/http"
	"strconv"

	"github.com/example/foodcourt/pkg/restaurant"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (s *Server) addMenu(c *gin.Context) {
	userID, ok := s.currentUserID(c)
	if !ok {
		return
	}

	in, ok := s.menuForm(c, true)
	if !ok {
		return
	}

	item, err := s.restaurants.AddMenu(c.Request.Context(), userID, in)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "menu added successfully",
		"menu":    item,
	})
}

func (s *Server) editMenu(c *gin.Context) {
	menuID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid menu id"})
		return
	}

	in, ok := s.menuForm(c, false)
	if !ok {
		return
	}

	item, err := s.restaurants.EditMenu(c.Request.Context(), menuID, in)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "menu updated successfully",
		"menu":    item,
	})
}

func (s *Server) menuForm(c *gin.Context, imageRequired bool) (restaurant.MenuInput, bool) {
	var in restaurant.MenuInput

	in.Title = c.PostForm("title")
	in.Description = c.PostForm("description")
	in.Price, _ = strconv.ParseInt(c.PostForm("price"), 10, 64)

	image, ok := s.formImage(c, imageRequired)
	if !ok {
		return in, false
	}
	in.Image = image
	return in, true
}
