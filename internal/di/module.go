package di

import (
	"go.uber.org/fx"

	"github.com/AlexisMGL/HappyCheese/internal/app"
	"github.com/AlexisMGL/HappyCheese/internal/config"
	"github.com/AlexisMGL/HappyCheese/internal/logger"
	"github.com/AlexisMGL/HappyCheese/internal/pkg/auth"
	"github.com/AlexisMGL/HappyCheese/internal/server/http/router"
	"github.com/AlexisMGL/HappyCheese/internal/storage/postgres"
	"github.com/AlexisMGL/HappyCheese/internal/store"
	"github.com/AlexisMGL/HappyCheese/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		store.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
