package service

import (
	"context"
	"sort"
	"time"

	"github.com/timelogger/timelogger/internal/apperror"
	"github.com/timelogger/timelogger/internal/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ProjectStore interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]model.Project, error)
	GetById(ctx context.Context, tx *gorm.DB, id uint) (*model.Project, error)
	Create(ctx context.Context, tx *gorm.DB, project *model.Project) (*model.Project, error)
	Update(ctx context.Context, tx *gorm.DB, project *model.Project) (*model.Project, error)
	Delete(ctx context.Context, tx *gorm.DB, id uint) (*model.Project, error)
}

type ProjectService struct {
	*baseService
	projects  ProjectStore
	stages    ProjectStageStore
	customers CustomerStore
}

func NewProjectService(logger *zap.SugaredLogger, projects ProjectStore, stages ProjectStageStore, customers CustomerStore) *ProjectService {
	return &ProjectService{
		baseService: &baseService{logger: logger},
		projects:    projects,
		stages:      stages,
		customers:   customers,
	}
}

type ProjectRequest struct {
	ProjectName    string    `json:"projectName" form:"projectName"`
	ProjectStageID uint      `json:"projectStageId" form:"projectStageId"`
	Deadline       time.Time `json:"deadline" form:"deadline" binding:"required"`
	CustomerID     uint      `json:"customerId" form:"customerId"`
}

type ProjectResponse struct {
	ProjectID        uint      `json:"projectId"`
	ProjectName      string    `json:"projectName"`
	ProjectStageID   uint      `json:"projectStageId"`
	ProjectStageName string    `json:"projectStageName"`
	Deadline         time.Time `json:"deadline"`
	CustomerID       uint      `json:"customerId"`
	CustomerName     string    `json:"customerName"`
}

// newProjectResponse flattens the related stage and customer names into the
// record. Relations left unset by the store read project as empty names.
func newProjectResponse(p model.Project) ProjectResponse {
	return ProjectResponse{
		ProjectID:        p.ID,
		ProjectName:      p.Name,
		ProjectStageID:   p.ProjectStageID,
		ProjectStageName: p.ProjectStage.Name,
		Deadline:         p.Deadline,
		CustomerID:       p.CustomerID,
		CustomerName:     p.Customer.Name,
	}
}

// validateRequest checks name, then stage existence, then customer existence.
// The first failure wins.
func (ps ProjectService) validateRequest(ctx context.Context, req ProjectRequest) error {
	if !validName(req.ProjectName) {
		return apperror.New("project name is not valid")
	}

	stage, err := ps.stages.GetById(ctx, nil, req.ProjectStageID)
	if err != nil {
		return err
	}
	if stage == nil {
		return apperror.New("project stage is not valid")
	}

	customer, err := ps.customers.GetById(ctx, nil, req.CustomerID)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.New("customer is invalid")
	}

	return nil
}

// sortProjects orders by deadline unless sortBy selects the name field.
// "desc" reverses; any other direction means ascending. The sort is stable so
// equal keys keep their stored order.
func sortProjects(projects []model.Project, sortBy, sortDirection string) {
	var less func(a, b model.Project) bool
	switch sortBy {
	case "projectName", "name":
		less = func(a, b model.Project) bool { return a.Name < b.Name }
	default:
		less = func(a, b model.Project) bool { return a.Deadline.Before(b.Deadline) }
	}

	desc := sortDirection == "desc"
	sort.SliceStable(projects, func(i, j int) bool {
		if desc {
			return less(projects[j], projects[i])
		}
		return less(projects[i], projects[j])
	})
}

func (ps ProjectService) GetAll(ctx context.Context, pageIndex, pageSize int, sortBy, sortDirection string) (*PaginatedList[ProjectResponse], error) {
	if err := ValidatePageValues(pageIndex, pageSize); err != nil {
		return nil, err
	}

	projects, err := ps.projects.GetAll(ctx, nil)
	if err != nil {
		return nil, err
	}

	sortProjects(projects, sortBy, sortDirection)

	page, err := Paginate(projects, pageIndex, pageSize)
	if err != nil {
		return nil, err
	}

	return MapPage(page, newProjectResponse), nil
}

func (ps ProjectService) GetById(ctx context.Context, id uint) (*ProjectResponse, error) {
	project, err := ps.projects.GetById(ctx, nil, id)
	if err != nil || project == nil {
		return nil, err
	}

	resp := newProjectResponse(*project)
	return &resp, nil
}

func (ps ProjectService) Add(ctx context.Context, req ProjectRequest) (*ProjectResponse, error) {
	if err := ps.validateRequest(ctx, req); err != nil {
		return nil, err
	}

	created, err := ps.projects.Create(ctx, nil, &model.Project{
		Name:           req.ProjectName,
		ProjectStageID: req.ProjectStageID,
		Deadline:       req.Deadline,
		CustomerID:     req.CustomerID,
	})
	if err != nil {
		return nil, err
	}

	resp := newProjectResponse(*created)
	return &resp, nil
}

func (ps ProjectService) Update(ctx context.Context, id uint, req ProjectRequest) (*ProjectResponse, error) {
	if err := ps.validateRequest(ctx, req); err != nil {
		return nil, err
	}

	existing, err := ps.projects.GetById(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NotFound("Invalid ProjectId")
	}

	existing.Name = req.ProjectName
	existing.ProjectStageID = req.ProjectStageID
	existing.Deadline = req.Deadline
	existing.CustomerID = req.CustomerID

	updated, err := ps.projects.Update(ctx, nil, existing)
	if err != nil {
		return nil, err
	}

	resp := newProjectResponse(*updated)
	return &resp, nil
}

func (ps ProjectService) Delete(ctx context.Context, id uint) (*ProjectResponse, error) {
	existing, err := ps.projects.GetById(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NotFound("Invalid ProjectId")
	}

	deleted, err := ps.projects.Delete(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, apperror.NotFound("Invalid ProjectId")
	}

	resp := newProjectResponse(*deleted)
	return &resp, nil
}
