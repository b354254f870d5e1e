package main

import (
	appcontext "github.com/timelogger/timelogger/internal/app_context"
	"github.com/timelogger/timelogger/internal/config"
	"github.com/timelogger/timelogger/internal/controller"
	"github.com/timelogger/timelogger/internal/database"
	"github.com/timelogger/timelogger/internal/env"
	"github.com/timelogger/timelogger/internal/repository"
	"github.com/timelogger/timelogger/internal/route"
	"github.com/timelogger/timelogger/internal/service"
	"github.com/timelogger/timelogger/internal/util"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// this function run before main
func init() {
	env.LoadEnv(".env")
}

func main() {
	cfg := config.GetConfig()

	logger := util.NewLogger(cfg.ENV)
	defer logger.Sync()
	logger.Debugf("Configuration: %+v", cfg)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	sqlDb, err := db.DB()
	if err != nil {
		logger.Panic(err)
	}
	defer sqlDb.Close()
	logger.Info("Database connected")

	repo := repository.NewRepository(db, logger)
	svc := service.NewService(repo, logger)
	app := appcontext.Application{
		Config:     &cfg,
		Logger:     logger,
		Repository: repo,
		Service:    svc,
	}

	if cfg.IsProduction() {
		logger.Info("Running in production mode")
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Requested-With", "Accept"}
	r.Use(cors.New(corsConfig))

	_controller := controller.NewController(&app)

	r.GET("/", _controller.Index.Index)

	rV1 := r.Group("/")
	route.V1_Customers(rV1, _controller.Customer)
	route.V1_Developers(rV1, _controller.Developer)
	route.V1_ProjectStages(rV1, _controller.ProjectStage)
	route.V1_Projects(rV1, _controller.Project)
	route.V1_TimeLogs(rV1, _controller.TimeLog)

	if err := r.Run("0.0.0.0:" + app.Config.Port); err != nil {
		logger.Panicf("Error running server: %v", err)
	}
}
