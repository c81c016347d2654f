package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/AlexisMGL/HappyCheese/internal/app"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Provide(newRouter)

func newRouter(facade *app.DairyFacade, logger *slog.Logger) *gin.Engine {
	return Setup(facade, logger)
}
