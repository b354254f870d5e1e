package repository

import (
	"context"
	"errors"

	constant "github.com/timelogger/timelogger/internal/constant"
	"github.com/timelogger/timelogger/internal/model"
	"gorm.io/gorm"
)

type DeveloperRepository struct {
	*baseRepository
}

func (dr DeveloperRepository) GetAll(ctx context.Context, tx *gorm.DB) ([]model.Developer, error) {
	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var developers []model.Developer
	if err := db.WithContext(ctx).Model(&model.Developer{}).Order("id asc").Find(&developers).Error; err != nil {
		return nil, err
	}

	return developers, nil
}

func (dr DeveloperRepository) GetById(ctx context.Context, tx *gorm.DB, id uint) (*model.Developer, error) {
	dr.logger.Debugf("Get developer by id: %d", id)

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var developer model.Developer
	if err := db.WithContext(ctx).Model(&model.Developer{}).First(&developer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &developer, nil
}

func (dr DeveloperRepository) Create(ctx context.Context, tx *gorm.DB, developer *model.Developer) (*model.Developer, error) {
	dr.logger.Debugf("Create developer with data: %v", developer)

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Developer{}).Create(developer).Error; err != nil {
		return nil, err
	}

	return developer, nil
}

func (dr DeveloperRepository) Update(ctx context.Context, tx *gorm.DB, developer *model.Developer) (*model.Developer, error) {
	dr.logger.Debugf("Update developer with id: %d", developer.ID)

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Save(developer).Error; err != nil {
		return nil, err
	}

	return developer, nil
}

func (dr DeveloperRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) (*model.Developer, error) {
	dr.logger.Debugf("Delete developer with id: %d", id)

	existing, err := dr.GetById(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Delete(&model.Developer{}, id).Error; err != nil {
		return nil, err
	}

	return existing, nil
}
