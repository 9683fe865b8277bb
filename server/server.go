// Package server assembles the HTTP surface: routing, auth middleware,
// request validation and the mapping from service errors to responses.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/example/foodcourt/pkg/auth"
	"github.com/example/foodcourt/pkg/cart"
	"github.com/example/foodcourt/pkg/checkout"
	"github.com/example/foodcourt/pkg/config"
	"github.com/example/foodcourt/pkg/models"
	"github.com/example/foodcourt/pkg/restaurant"
	"github.com/example/foodcourt/pkg/user"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// OrderLister reads a user's order history.
type OrderLister interface {
	FindOrdersByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error)
}

type Server struct {
	config      *config.Config
	logger      *zap.Logger
	router      *gin.Engine
	tokens      *auth.TokenManager
	users       *user.Service
	restaurants *restaurant.Service
	checkout    *checkout.Service
	carts       *cart.Service
	orders      OrderLister
}

func New(
	cfg *config.Config,
	logger *zap.Logger,
	tokens *auth.TokenManager,
	users *user.Service,
	restaurants *restaurant.Service,
	checkoutSvc *checkout.Service,
	carts *cart.Service,
	orders OrderLister,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(loggerMiddleware(logger))

	s := &Server{
		config:      cfg,
		logger:      logger,
		router:      router,
		tokens:      tokens,
		users:       users,
		restaurants: restaurants,
		checkout:    checkoutSvc,
		carts:       carts,
		orders:      orders,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authed := auth.Middleware(s.tokens)

	api := s.router.Group("/api")
	{
		users := api.Group("/user")
		{
			users.POST("/signup", s.signup)
			users.POST("/login", s.login)
			users.POST("/logout", s.logout)
			users.POST("/verify-email", s.verifyEmail)
			users.POST("/forgot-password", s.forgotPassword)
			users.POST("/reset-password/:token", s.resetPassword)
			users.GET("/check-auth", authed, s.checkAuth)
			users.PUT("/profile/update", authed, s.updateProfile)
		}

		restaurants := api.Group("/restaurant")
		{
			restaurants.POST("/create", authed, s.createRestaurant)
			restaurants.GET("/", authed, s.getMyRestaurant)
			restaurants.PUT("/update", authed, s.updateRestaurant)
			restaurants.GET("/order", authed, s.getRestaurantOrders)
			restaurants.PUT("/order/:orderId/status", authed, s.updateOrderStatus)
			restaurants.GET("/search", authed, s.searchRestaurants)
			restaurants.GET("/:id", authed, s.getRestaurant)
		}

		menus := api.Group("/menu")
		{
			menus.POST("/add", authed, s.addMenu)
			menus.PUT("/edit/:id", authed, s.editMenu)
		}

		orders := api.Group("/order")
		{
			orders.GET("/get-order", authed, s.getOrders)
			orders.POST("/checkout/create-checkout-session", authed, s.createCheckoutSession)
			// Authenticated by the processor's signature, not by bearer token.
			orders.POST("/webhook", s.webhook)
		}

		carts := api.Group("/cart", authed)
		{
			carts.GET("", s.getCart)
			carts.POST("/add", s.addToCart)
			carts.PATCH("/increment/:menuId", s.incrementCartItem)
			carts.PATCH("/decrement/:menuId", s.decrementCartItem)
			carts.DELETE("", s.clearCart)
		}
	}

	// Swagger
	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// Handler exposes the router so the caller can wrap it (CORS, TLS).
func (s *Server) Handler() http.Handler {
	return s.router
}

func loggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
