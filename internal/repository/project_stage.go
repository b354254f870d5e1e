package repository

import (
	"context"
	"errors"

	constant "github.com/timelogger/timelogger/internal/constant"
	"github.com/timelogger/timelogger/internal/model"
	"gorm.io/gorm"
)

type ProjectStageRepository struct {
	*baseRepository
}

func (psr ProjectStageRepository) GetAll(ctx context.Context, tx *gorm.DB) ([]model.ProjectStage, error) {
	db := psr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var stages []model.ProjectStage
	if err := db.WithContext(ctx).Model(&model.ProjectStage{}).Order("id asc").Find(&stages).Error; err != nil {
		return nil, err
	}

	return stages, nil
}

func (psr ProjectStageRepository) GetById(ctx context.Context, tx *gorm.DB, id uint) (*model.ProjectStage, error) {
	psr.logger.Debugf("Get project stage by id: %d", id)

	db := psr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var stage model.ProjectStage
	if err := db.WithContext(ctx).Model(&model.ProjectStage{}).First(&stage, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &stage, nil
}

func (psr ProjectStageRepository) Create(ctx context.Context, tx *gorm.DB, stage *model.ProjectStage) (*model.ProjectStage, error) {
	psr.logger.Debugf("Create project stage with data: %v", stage)

	db := psr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.ProjectStage{}).Create(stage).Error; err != nil {
		return nil, err
	}

	return stage, nil
}

func (psr ProjectStageRepository) Update(ctx context.Context, tx *gorm.DB, stage *model.ProjectStage) (*model.ProjectStage, error) {
	psr.logger.Debugf("Update project stage with id: %d", stage.ID)

	db := psr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Save(stage).Error; err != nil {
		return nil, err
	}

	return stage, nil
}

func (psr ProjectStageRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) (*model.ProjectStage, error) {
	psr.logger.Debugf("Delete project stage with id: %d", id)

	existing, err := psr.GetById(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	db := psr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Delete(&model.ProjectStage{}, id).Error; err != nil {
		return nil, err
	}

	return existing, nil
}
