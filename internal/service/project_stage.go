package service

import (
	"context"

	"github.com/timelogger/timelogger/internal/apperror"
	"github.com/timelogger/timelogger/internal/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ProjectStageStore interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]model.ProjectStage, error)
	GetById(ctx context.Context, tx *gorm.DB, id uint) (*model.ProjectStage, error)
	Create(ctx context.Context, tx *gorm.DB, stage *model.ProjectStage) (*model.ProjectStage, error)
	Update(ctx context.Context, tx *gorm.DB, stage *model.ProjectStage) (*model.ProjectStage, error)
	Delete(ctx context.Context, tx *gorm.DB, id uint) (*model.ProjectStage, error)
}

type ProjectStageService struct {
	*baseService
	stages ProjectStageStore
}

func NewProjectStageService(logger *zap.SugaredLogger, stages ProjectStageStore) *ProjectStageService {
	return &ProjectStageService{baseService: &baseService{logger: logger}, stages: stages}
}

type ProjectStageRequest struct {
	ProjectStageName string `json:"projectStageName" form:"projectStageName"`
}

type ProjectStageResponse struct {
	ProjectStageID   uint   `json:"projectStageId"`
	ProjectStageName string `json:"projectStageName"`
}

func newProjectStageResponse(ps model.ProjectStage) ProjectStageResponse {
	return ProjectStageResponse{ProjectStageID: ps.ID, ProjectStageName: ps.Name}
}

func (pss ProjectStageService) validateRequest(req ProjectStageRequest) error {
	if !validName(req.ProjectStageName) {
		return apperror.New("project stage name is not valid")
	}
	return nil
}

func (pss ProjectStageService) GetAll(ctx context.Context, pageIndex, pageSize int) (*PaginatedList[ProjectStageResponse], error) {
	if err := ValidatePageValues(pageIndex, pageSize); err != nil {
		return nil, err
	}

	stages, err := pss.stages.GetAll(ctx, nil)
	if err != nil {
		return nil, err
	}

	page, err := Paginate(stages, pageIndex, pageSize)
	if err != nil {
		return nil, err
	}

	return MapPage(page, newProjectStageResponse), nil
}

func (pss ProjectStageService) GetById(ctx context.Context, id uint) (*ProjectStageResponse, error) {
	stage, err := pss.stages.GetById(ctx, nil, id)
	if err != nil || stage == nil {
		return nil, err
	}

	resp := newProjectStageResponse(*stage)
	return &resp, nil
}

func (pss ProjectStageService) Add(ctx context.Context, req ProjectStageRequest) (*ProjectStageResponse, error) {
	if err := pss.validateRequest(req); err != nil {
		return nil, err
	}

	created, err := pss.stages.Create(ctx, nil, &model.ProjectStage{Name: req.ProjectStageName})
	if err != nil {
		return nil, err
	}

	resp := newProjectStageResponse(*created)
	return &resp, nil
}

func (pss ProjectStageService) Update(ctx context.Context, id uint, req ProjectStageRequest) (*ProjectStageResponse, error) {
	if err := pss.validateRequest(req); err != nil {
		return nil, err
	}

	existing, err := pss.stages.GetById(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NotFound("Invalid ProjectStageId")
	}

	existing.Name = req.ProjectStageName

	updated, err := pss.stages.Update(ctx, nil, existing)
	if err != nil {
		return nil, err
	}

	resp := newProjectStageResponse(*updated)
	return &resp, nil
}

func (pss ProjectStageService) Delete(ctx context.Context, id uint) (*ProjectStageResponse, error) {
	existing, err := pss.stages.GetById(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NotFound("Invalid ProjectStageId")
	}

	deleted, err := pss.stages.Delete(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, apperror.NotFound("Invalid ProjectStageId")
	}

	resp := newProjectStageResponse(*deleted)
	return &resp, nil
}
