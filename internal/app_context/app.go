package appcontext

import (
	"github.com/timelogger/timelogger/internal/config"
	"github.com/timelogger/timelogger/internal/repository"
	"github.com/timelogger/timelogger/internal/service"
	"go.uber.org/zap"
)

// Application contains core dependencies for the app.
type Application struct {
	// Config holds application settings provided from .env file.
	Config *config.Config

	Logger *zap.SugaredLogger

	// Repository provides access to data storage operations.
	Repository *repository.Repository

	// Service holds the validation and business rules applied on top of the
	// repositories.
	Service *service.Service
}
