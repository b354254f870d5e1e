package service

import (
	"context"

	"github.com/timelogger/timelogger/internal/apperror"
	"github.com/timelogger/timelogger/internal/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type DeveloperStore interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]model.Developer, error)
	GetById(ctx context.Context, tx *gorm.DB, id uint) (*model.Developer, error)
	Create(ctx context.Context, tx *gorm.DB, developer *model.Developer) (*model.Developer, error)
	Update(ctx context.Context, tx *gorm.DB, developer *model.Developer) (*model.Developer, error)
	Delete(ctx context.Context, tx *gorm.DB, id uint) (*model.Developer, error)
}

type DeveloperService struct {
	*baseService
	developers DeveloperStore
}

func NewDeveloperService(logger *zap.SugaredLogger, developers DeveloperStore) *DeveloperService {
	return &DeveloperService{baseService: &baseService{logger: logger}, developers: developers}
}

type DeveloperRequest struct {
	DeveloperName string `json:"developerName" form:"developerName"`
}

type DeveloperResponse struct {
	DeveloperID   uint   `json:"developerId"`
	DeveloperName string `json:"developerName"`
}

func newDeveloperResponse(d model.Developer) DeveloperResponse {
	return DeveloperResponse{DeveloperID: d.ID, DeveloperName: d.Name}
}

func (ds DeveloperService) validateRequest(req DeveloperRequest) error {
	if !validName(req.DeveloperName) {
		return apperror.New("developer name is not valid")
	}
	return nil
}

func (ds DeveloperService) GetAll(ctx context.Context, pageIndex, pageSize int) (*PaginatedList[DeveloperResponse], error) {
	if err := ValidatePageValues(pageIndex, pageSize); err != nil {
		return nil, err
	}

	developers, err := ds.developers.GetAll(ctx, nil)
	if err != nil {
		return nil, err
	}

	page, err := Paginate(developers, pageIndex, pageSize)
	if err != nil {
		return nil, err
	}

	return MapPage(page, newDeveloperResponse), nil
}

func (ds DeveloperService) GetById(ctx context.Context, id uint) (*DeveloperResponse, error) {
	developer, err := ds.developers.GetById(ctx, nil, id)
	if err != nil || developer == nil {
		return nil, err
	}

	resp := newDeveloperResponse(*developer)
	return &resp, nil
}

func (ds DeveloperService) Add(ctx context.Context, req DeveloperRequest) (*DeveloperResponse, error) {
	if err := ds.validateRequest(req); err != nil {
		return nil, err
	}

	created, err := ds.developers.Create(ctx, nil, &model.Developer{Name: req.DeveloperName})
	if err != nil {
		return nil, err
	}

	resp := newDeveloperResponse(*created)
	return &resp, nil
}

func (ds DeveloperService) Update(ctx context.Context, id uint, req DeveloperRequest) (*DeveloperResponse, error) {
	if err := ds.validateRequest(req); err != nil {
		return nil, err
	}

	existing, err := ds.developers.GetById(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NotFound("Invalid DeveloperId")
	}

	existing.Name = req.DeveloperName

	updated, err := ds.developers.Update(ctx, nil, existing)
	if err != nil {
		return nil, err
	}

	resp := newDeveloperResponse(*updated)
	return &resp, nil
}

func (ds DeveloperService) Delete(ctx context.Context, id uint) (*DeveloperResponse, error) {
	existing, err := ds.developers.GetById(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NotFound("Invalid DeveloperId")
	}

	deleted, err := ds.developers.Delete(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, apperror.NotFound("Invalid DeveloperId")
	}

	resp := newDeveloperResponse(*deleted)
	return &resp, nil
}
