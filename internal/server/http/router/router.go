package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/AlexisMGL/HappyCheese/internal/server/http/handlers"
	"github.com/AlexisMGL/HappyCheese/internal/server/http/middleware"
)

// Setup configures the gin router with handlers and middleware. Catalog
// edits, status changes, deletions and deposit transactions sit behind the
// admin gate; browsing and order placement only need a session.
func Setup(facade handlers.DairyFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	clientHandler := handlers.NewClientHandler(facade)
	consignHandler := handlers.NewConsignHandler(facade)

	engine.GET("/healthz", func(c *gin.Context) {
		if facade.Loading() {
			c.Status(http.StatusServiceUnavailable)
			return
		}
		c.Status(http.StatusOK)
	})

	api := engine.Group("/api")
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.GET("/auth/profile", authHandler.Profile)
	authed.PUT("/auth/profile", authHandler.UpdateProfile)
	authed.POST("/auth/password", authHandler.ChangePassword)

	authed.GET("/items", catalogHandler.List)
	authed.GET("/orders", orderHandler.List)
	authed.POST("/orders", orderHandler.Create)

	admin := authed.Group("")
	admin.Use(middleware.AdminRequired(facade))
	admin.POST("/items", catalogHandler.Create)
	admin.PUT("/items/:id", catalogHandler.Update)
	admin.DELETE("/items/:id", catalogHandler.Delete)
	admin.PATCH("/orders/:id/status", orderHandler.UpdateStatus)
	admin.DELETE("/orders/:id", orderHandler.Delete)
	admin.GET("/clients", clientHandler.List)
	admin.POST("/clients", clientHandler.Create)
	admin.DELETE("/clients/:id", clientHandler.Delete)
	admin.GET("/consigns/types", consignHandler.ListTypes)
	admin.POST("/consigns/types", consignHandler.CreateType)
	admin.DELETE("/consigns/types/:id", consignHandler.DeleteType)
	admin.GET("/consigns/totals", consignHandler.Totals)
	admin.POST("/consigns/assign", consignHandler.Assign)
	admin.POST("/consigns/return", consignHandler.Return)

	return engine
}
