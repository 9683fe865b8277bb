package server

import (
	"errors"
	"net/http"

	"github.com/example/foodcourt/pkg/checkout"
	"github.com/example/foodcourt/pkg/models"
	"github.com/example/foodcourt/pkg/payment"
	"github.com/example/foodcourt/pkg/pricing"
	"github.com/example/foodcourt/pkg/restaurant"
	"github.com/example/foodcourt/pkg/user"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// writeError maps service errors onto HTTP status codes and a JSON body.
// Anything unmapped is a 500 with a generic message.
func (s *Server) writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, user.ErrEmailTaken),
		errors.Is(err, restaurant.ErrAlreadyExists):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, restaurant.ErrNotFound),
		errors.Is(err, restaurant.ErrMenuNotFound),
		errors.Is(err, restaurant.ErrOrderNotFound),
		errors.Is(err, checkout.ErrRestaurantNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, user.ErrInvalidCredentials),
		errors.Is(err, user.ErrInvalidCode),
		errors.Is(err, user.ErrInvalidResetToken),
		errors.Is(err, pricing.ErrMenuItemNotFound),
		errors.Is(err, checkout.ErrSessionCreation),
		errors.Is(err, restaurant.ErrBadStatus),
		errors.Is(err, models.ErrInvalidTransition):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, payment.ErrSignature):
		status = http.StatusBadRequest
		message = "webhook signature verification failed"
	default:
		s.logger.Error("request failed", zap.Error(err))
	}

	c.JSON(status, gin.H{"success": false, "message": message})
}
