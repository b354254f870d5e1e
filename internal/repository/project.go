package repository

import (
	"context"
	"errors"

	constant "github.com/timelogger/timelogger/internal/constant"
	"github.com/timelogger/timelogger/internal/model"
	"gorm.io/gorm"
)

type ProjectRepository struct {
	*baseRepository
}

// GetAll eagerly resolves the customer and stage of every project so the
// service can flatten their names into responses without extra lookups.
func (pr ProjectRepository) GetAll(ctx context.Context, tx *gorm.DB) ([]model.Project, error) {
	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var projects []model.Project
	if err := db.WithContext(ctx).Model(&model.Project{}).
		Preload("Customer").
		Preload("ProjectStage").
		Order("id asc").
		Find(&projects).Error; err != nil {
		return nil, err
	}

	return projects, nil
}

func (pr ProjectRepository) GetById(ctx context.Context, tx *gorm.DB, id uint) (*model.Project, error) {
	pr.logger.Debugf("Get project by id: %d", id)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var project model.Project
	if err := db.WithContext(ctx).Model(&model.Project{}).
		Preload("Customer").
		Preload("ProjectStage").
		First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &project, nil
}

func (pr ProjectRepository) Create(ctx context.Context, tx *gorm.DB, project *model.Project) (*model.Project, error) {
	pr.logger.Debugf("Create project with data: %v", project)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Project{}).Create(project).Error; err != nil {
		return nil, err
	}

	return pr.GetById(ctx, tx, project.ID)
}

func (pr ProjectRepository) Update(ctx context.Context, tx *gorm.DB, project *model.Project) (*model.Project, error) {
	pr.logger.Debugf("Update project with id: %d", project.ID)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	// Omit navigation fields so a stale preloaded customer or stage is never
	// written back alongside the row.
	if err := db.WithContext(ctx).Omit("Customer", "ProjectStage").Save(project).Error; err != nil {
		return nil, err
	}

	return pr.GetById(ctx, tx, project.ID)
}

func (pr ProjectRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) (*model.Project, error) {
	pr.logger.Debugf("Delete project with id: %d", id)

	existing, err := pr.GetById(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Delete(&model.Project{}, id).Error; err != nil {
		return nil, err
	}

	return existing, nil
}
