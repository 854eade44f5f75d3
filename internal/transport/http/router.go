package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/aroundhq/aroundb/internal/transport/http/handler"
	"github.com/aroundhq/aroundb/internal/transport/http/middleware"
	"github.com/gin-gonic/gin"

	sloggin "github.com/samber/slog-gin"
)

// NewRouter wires the full route table. Ordering matters: /signup and
// /signin are registered outside the auth groups so they stay reachable
// without a token; everything under /users and /cards sits behind the
// auth gate.
func NewRouter(logger *slog.Logger, authHandler *handler.AuthHandler, userHandler *handler.UserHandler, cardHandler *handler.CardHandler, tokens middleware.TokenVerifier) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	r.POST("/signup", authHandler.Signup)
	r.POST("/signin", authHandler.Signin)

	authMW := middleware.Auth(tokens)

	users := r.Group("/users", authMW)
	users.GET("", userHandler.List)
	users.GET("/me", userHandler.Me)
	users.GET("/:userId", userHandler.GetByID)
	users.PATCH("/me", userHandler.UpdateProfile)
	users.PATCH("/me/avatar", userHandler.UpdateAvatar)

	cards := r.Group("/cards", authMW)
	cards.GET("", cardHandler.List)
	cards.POST("", cardHandler.Create)
	cards.DELETE("/:cardId", cardHandler.Delete)
	cards.PUT("/:cardId/likes", cardHandler.Like)
	cards.POST("/:cardId/likes", cardHandler.Like)
	cards.DELETE("/:cardId/likes", cardHandler.Unlike)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Resource not found"})
	})

	return r
}
