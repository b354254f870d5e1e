package service

import (
	"github.com/timelogger/timelogger/internal/repository"
	"go.uber.org/zap"
)

type baseService struct {
	logger *zap.SugaredLogger
}

type Service struct {
	Customer     *CustomerService
	Developer    *DeveloperService
	ProjectStage *ProjectStageService
	Project      *ProjectService
	TimeLog      *TimeLogService
}

func NewService(repo *repository.Repository, logger *zap.SugaredLogger) *Service {
	return &Service{
		Customer:     NewCustomerService(logger, repo.Customer),
		Developer:    NewDeveloperService(logger, repo.Developer),
		ProjectStage: NewProjectStageService(logger, repo.ProjectStage),
		Project:      NewProjectService(logger, repo.Project, repo.ProjectStage, repo.Customer),
		TimeLog:      NewTimeLogService(logger, repo.TimeLog, repo.Project, repo.Developer),
	}
}
