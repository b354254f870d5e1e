package repository

import (
	"context"
	"errors"

	constant "github.com/timelogger/timelogger/internal/constant"
	"github.com/timelogger/timelogger/internal/model"
	"gorm.io/gorm"
)

type TimeLogRepository struct {
	*baseRepository
}

// GetAll eagerly resolves the developer, the project and the project's
// customer of every time log in one query set.
func (tlr TimeLogRepository) GetAll(ctx context.Context, tx *gorm.DB) ([]model.TimeLog, error) {
	db := tlr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var timeLogs []model.TimeLog
	if err := db.WithContext(ctx).Model(&model.TimeLog{}).
		Preload("Developer").
		Preload("Project").
		Preload("Project.Customer").
		Order("id asc").
		Find(&timeLogs).Error; err != nil {
		return nil, err
	}

	return timeLogs, nil
}

func (tlr TimeLogRepository) GetById(ctx context.Context, tx *gorm.DB, id uint) (*model.TimeLog, error) {
	tlr.logger.Debugf("Get time log by id: %d", id)

	db := tlr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var timeLog model.TimeLog
	if err := db.WithContext(ctx).Model(&model.TimeLog{}).
		Preload("Developer").
		Preload("Project").
		Preload("Project.Customer").
		First(&timeLog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &timeLog, nil
}

func (tlr TimeLogRepository) Create(ctx context.Context, tx *gorm.DB, timeLog *model.TimeLog) (*model.TimeLog, error) {
	tlr.logger.Debugf("Create time log with data: %v", timeLog)

	db := tlr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.TimeLog{}).Create(timeLog).Error; err != nil {
		return nil, err
	}

	return tlr.GetById(ctx, tx, timeLog.ID)
}

func (tlr TimeLogRepository) Update(ctx context.Context, tx *gorm.DB, timeLog *model.TimeLog) (*model.TimeLog, error) {
	tlr.logger.Debugf("Update time log with id: %d", timeLog.ID)

	db := tlr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Omit("Developer", "Project").Save(timeLog).Error; err != nil {
		return nil, err
	}

	return tlr.GetById(ctx, tx, timeLog.ID)
}

func (tlr TimeLogRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) (*model.TimeLog, error) {
	tlr.logger.Debugf("Delete time log with id: %d", id)

	existing, err := tlr.GetById(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	db := tlr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Delete(&model.TimeLog{}, id).Error; err != nil {
		return nil, err
	}

	return existing, nil
}
