package repository

import (
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type baseRepository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

type Repository struct {
	// DB is exposed for callers that need to run several operations in one
	// transaction. Pass the tx handle into the repository functions below.
	DB           *gorm.DB
	Customer     *CustomerRepository
	Developer    *DeveloperRepository
	ProjectStage *ProjectStageRepository
	Project      *ProjectRepository
	TimeLog      *TimeLogRepository
}

func newBaseRepository(db *gorm.DB, logger *zap.SugaredLogger) *baseRepository {
	return &baseRepository{db: db, logger: logger}
}

func NewRepository(db *gorm.DB, logger *zap.SugaredLogger) *Repository {
	br := newBaseRepository(db, logger)

	return &Repository{
		DB:           db,
		Customer:     &CustomerRepository{baseRepository: br},
		Developer:    &DeveloperRepository{baseRepository: br},
		ProjectStage: &ProjectStageRepository{baseRepository: br},
		Project:      &ProjectRepository{baseRepository: br},
		TimeLog:      &TimeLogRepository{baseRepository: br},
	}
}

func (b baseRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}

	return b.db
}
