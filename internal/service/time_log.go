package service

import (
	"context"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/timelogger/timelogger/internal/apperror"
	constant "github.com/timelogger/timelogger/internal/constant"
	"github.com/timelogger/timelogger/internal/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	minimumTimeSpent     = 30
	maxDescriptionLength = 120
)

type TimeLogStore interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]model.TimeLog, error)
	GetById(ctx context.Context, tx *gorm.DB, id uint) (*model.TimeLog, error)
	Create(ctx context.Context, tx *gorm.DB, timeLog *model.TimeLog) (*model.TimeLog, error)
	Update(ctx context.Context, tx *gorm.DB, timeLog *model.TimeLog) (*model.TimeLog, error)
	Delete(ctx context.Context, tx *gorm.DB, id uint) (*model.TimeLog, error)
}

type TimeLogService struct {
	*baseService
	timeLogs   TimeLogStore
	projects   ProjectStore
	developers DeveloperStore
}

func NewTimeLogService(logger *zap.SugaredLogger, timeLogs TimeLogStore, projects ProjectStore, developers DeveloperStore) *TimeLogService {
	return &TimeLogService{
		baseService: &baseService{logger: logger},
		timeLogs:    timeLogs,
		projects:    projects,
		developers:  developers,
	}
}

type TimeLogRequest struct {
	ProjectID   uint      `json:"projectId" form:"projectId"`
	DeveloperID uint      `json:"developerId" form:"developerId"`
	LogDate     time.Time `json:"logDate" form:"logDate" binding:"required"`
	TimeSpent   int       `json:"timeSpent" form:"timeSpent"`
	Description string    `json:"description" form:"description"`
}

// TimeLogSearchRequest filters are a conjunction; an absent filter always
// matches.
type TimeLogSearchRequest struct {
	ProjectID   *uint      `form:"ProjectId"`
	DeveloperID *uint      `form:"DeveloperId"`
	InitialDate *time.Time `form:"InitialDate" time_format:"2006-01-02"`
	FinalDate   *time.Time `form:"FinalDate" time_format:"2006-01-02"`
}

type TimeLogResponse struct {
	TimeLogID     uint      `json:"timeLogId"`
	ProjectName   string    `json:"projectName"`
	CustomerName  string    `json:"customerName"`
	DeveloperName string    `json:"developerName"`
	TimeSpent     int       `json:"timeSpent"`
	Deadline      time.Time `json:"deadline"`
	LogDate       time.Time `json:"logDate"`
	Description   string    `json:"description"`
}

// newTimeLogResponse flattens the developer name plus the project's name,
// deadline and owning customer's name into the record. Unset relations read
// as empty names.
func newTimeLogResponse(t model.TimeLog) TimeLogResponse {
	return TimeLogResponse{
		TimeLogID:     t.ID,
		ProjectName:   t.Project.Name,
		CustomerName:  t.Project.Customer.Name,
		DeveloperName: t.Developer.Name,
		TimeSpent:     t.TimeSpent,
		Deadline:      t.Project.Deadline,
		LogDate:       t.LogDate,
		Description:   t.Description,
	}
}

// validateRequest applies the time log rules in a fixed order, stopping at
// the first failure: minimum duration, description length, project existence,
// closed-project guard, developer existence.
func (ts TimeLogService) validateRequest(ctx context.Context, req TimeLogRequest) error {
	if req.TimeSpent < minimumTimeSpent {
		return apperror.New("time spent must be at least 30 minutes")
	}

	if req.Description != "" && utf8.RuneCountInString(req.Description) > maxDescriptionLength {
		return apperror.New("description exceeds 120 characters")
	}

	project, err := ts.projects.GetById(ctx, nil, req.ProjectID)
	if err != nil {
		return err
	}
	if project == nil {
		return apperror.New("project is not valid")
	}
	if constant.StageID(project.ProjectStageID) == constant.StageClosed {
		return apperror.New("project is already closed")
	}

	developer, err := ts.developers.GetById(ctx, nil, req.DeveloperID)
	if err != nil {
		return err
	}
	if developer == nil {
		return apperror.New("developer is not valid")
	}

	return nil
}

// sortTimeLogsByNewest orders by descending identity, most recently created
// first. Time log listings are not user-sortable.
func sortTimeLogsByNewest(timeLogs []model.TimeLog) {
	sort.SliceStable(timeLogs, func(i, j int) bool {
		return timeLogs[i].ID > timeLogs[j].ID
	})
}

func matchesSearch(t model.TimeLog, search TimeLogSearchRequest) bool {
	if search.ProjectID != nil && t.ProjectID != *search.ProjectID {
		return false
	}
	if search.DeveloperID != nil && t.DeveloperID != *search.DeveloperID {
		return false
	}
	if search.InitialDate != nil && t.LogDate.Before(*search.InitialDate) {
		return false
	}
	if search.FinalDate != nil && t.LogDate.After(*search.FinalDate) {
		return false
	}
	return true
}

func (ts TimeLogService) GetAll(ctx context.Context, pageIndex, pageSize int) (*PaginatedList[TimeLogResponse], error) {
	if err := ValidatePageValues(pageIndex, pageSize); err != nil {
		return nil, err
	}

	timeLogs, err := ts.timeLogs.GetAll(ctx, nil)
	if err != nil {
		return nil, err
	}

	sortTimeLogsByNewest(timeLogs)

	page, err := Paginate(timeLogs, pageIndex, pageSize)
	if err != nil {
		return nil, err
	}

	return MapPage(page, newTimeLogResponse), nil
}

func (ts TimeLogService) Search(ctx context.Context, search TimeLogSearchRequest, pageIndex, pageSize int) (*PaginatedList[TimeLogResponse], error) {
	if err := ValidatePageValues(pageIndex, pageSize); err != nil {
		return nil, err
	}

	timeLogs, err := ts.timeLogs.GetAll(ctx, nil)
	if err != nil {
		return nil, err
	}

	filtered := make([]model.TimeLog, 0, len(timeLogs))
	for _, timeLog := range timeLogs {
		if matchesSearch(timeLog, search) {
			filtered = append(filtered, timeLog)
		}
	}

	sortTimeLogsByNewest(filtered)

	page, err := Paginate(filtered, pageIndex, pageSize)
	if err != nil {
		return nil, err
	}

	return MapPage(page, newTimeLogResponse), nil
}

func (ts TimeLogService) GetById(ctx context.Context, id uint) (*TimeLogResponse, error) {
	timeLog, err := ts.timeLogs.GetById(ctx, nil, id)
	if err != nil || timeLog == nil {
		return nil, err
	}

	resp := newTimeLogResponse(*timeLog)
	return &resp, nil
}

func (ts TimeLogService) Add(ctx context.Context, req TimeLogRequest) (*TimeLogResponse, error) {
	if err := ts.validateRequest(ctx, req); err != nil {
		return nil, err
	}

	created, err := ts.timeLogs.Create(ctx, nil, &model.TimeLog{
		ProjectID:   req.ProjectID,
		DeveloperID: req.DeveloperID,
		LogDate:     req.LogDate,
		TimeSpent:   req.TimeSpent,
		Description: req.Description,
	})
	if err != nil {
		return nil, err
	}

	resp := newTimeLogResponse(*created)
	return &resp, nil
}

func (ts TimeLogService) Update(ctx context.Context, id uint, req TimeLogRequest) (*TimeLogResponse, error) {
	if err := ts.validateRequest(ctx, req); err != nil {
		return nil, err
	}

	existing, err := ts.timeLogs.GetById(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NotFound("Invalid TimeLogId")
	}

	existing.ProjectID = req.ProjectID
	existing.DeveloperID = req.DeveloperID
	existing.LogDate = req.LogDate
	existing.TimeSpent = req.TimeSpent
	existing.Description = req.Description

	updated, err := ts.timeLogs.Update(ctx, nil, existing)
	if err != nil {
		return nil, err
	}

	resp := newTimeLogResponse(*updated)
	return &resp, nil
}

func (ts TimeLogService) Delete(ctx context.Context, id uint) (*TimeLogResponse, error) {
	existing, err := ts.timeLogs.GetById(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NotFound("Invalid TimeLogId")
	}

	deleted, err := ts.timeLogs.Delete(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, apperror.NotFound("Invalid TimeLogId")
	}

	resp := newTimeLogResponse(*deleted)
	return &resp, nil
}
