package main

import (
	"time"

	"github.com/timelogger/timelogger/internal/config"
	constant "github.com/timelogger/timelogger/internal/constant"
	"github.com/timelogger/timelogger/internal/database"
	"github.com/timelogger/timelogger/internal/env"
	"github.com/timelogger/timelogger/internal/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func init() {
	env.LoadEnv(".env")
}

func main() {
	logger := zap.Must(zap.NewDevelopment()).Sugar()
	defer logger.Sync()
	cfg := config.GetConfig()

	logger.Infof("Database configuration: %+v", cfg.DB)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	migrateErr := db.AutoMigrate(
		&model.Customer{},
		&model.Developer{},
		&model.ProjectStage{},
		&model.Project{},
		&model.TimeLog{},
	)
	if migrateErr != nil {
		logger.Panic(migrateErr)
	}

	if err := seed(db); err != nil {
		logger.Panic(err)
	}

	logger.Info("Migration complete")
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// seed installs the reference data the business rules depend on (the stage
// ids pinned by constant.StageID) plus a small sample data set. It is a no-op
// once stages exist.
func seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.ProjectStage{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	stages := []model.ProjectStage{
		{ID: uint(constant.StageAwaiting), Name: "Awaiting"},
		{ID: uint(constant.StageStarted), Name: "Started"},
		{ID: uint(constant.StageClosed), Name: "Closed"},
	}
	if err := db.Create(&stages).Error; err != nil {
		return err
	}

	developers := []model.Developer{
		{Name: "John"},
		{Name: "Rose"},
	}
	if err := db.Create(&developers).Error; err != nil {
		return err
	}

	customers := []model.Customer{
		{Name: "Visma"},
		{Name: "Farfetch"},
	}
	if err := db.Create(&customers).Error; err != nil {
		return err
	}

	projects := []model.Project{
		{Name: "e-conomic Interview", CustomerID: customers[0].ID, Deadline: date(2023, 2, 16), ProjectStageID: uint(constant.StageStarted)},
		{Name: "Project A", CustomerID: customers[1].ID, Deadline: date(2023, 2, 25), ProjectStageID: uint(constant.StageAwaiting)},
		{Name: "Project B", CustomerID: customers[1].ID, Deadline: date(2024, 4, 11), ProjectStageID: uint(constant.StageAwaiting)},
		{Name: "Project C", CustomerID: customers[1].ID, Deadline: date(2025, 6, 30), ProjectStageID: uint(constant.StageClosed)},
	}
	if err := db.Create(&projects).Error; err != nil {
		return err
	}

	timeLogs := []model.TimeLog{
		{ProjectID: projects[0].ID, DeveloperID: developers[0].ID, LogDate: date(2023, 2, 1), TimeSpent: 30, Description: "Develop new feature"},
		{ProjectID: projects[0].ID, DeveloperID: developers[0].ID, LogDate: date(2023, 2, 2), TimeSpent: 90, Description: "Develop new feature"},
		{ProjectID: projects[0].ID, DeveloperID: developers[1].ID, LogDate: date(2023, 2, 3), TimeSpent: 30, Description: "Develop new feature"},
		{ProjectID: projects[0].ID, DeveloperID: developers[0].ID, LogDate: date(2023, 2, 3), TimeSpent: 60, Description: "Develop new feature"},
		{ProjectID: projects[0].ID, DeveloperID: developers[1].ID, LogDate: date(2023, 2, 4), TimeSpent: 30, Description: "Develop new feature"},
		{ProjectID: projects[0].ID, DeveloperID: developers[0].ID, LogDate: date(2023, 2, 4), TimeSpent: 90, Description: "Develop new feature"},
		{ProjectID: projects[0].ID, DeveloperID: developers[0].ID, LogDate: date(2023, 2, 4), TimeSpent: 60, Description: "Develop new feature"},
		{ProjectID: projects[0].ID, DeveloperID: developers[1].ID, LogDate: date(2023, 2, 5), TimeSpent: 60, Description: "Develop new feature"},
	}
	return db.Create(&timeLogs).Error
}
