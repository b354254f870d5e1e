package service

import (
	"context"

	"github.com/timelogger/timelogger/internal/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// In-memory stores standing in for the gorm repositories. They ignore the tx
// handle and copy rows on the way out so tests cannot mutate shared state.

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

type fakeCustomerStore struct {
	rows   []model.Customer
	nextID uint
}

func newFakeCustomerStore(rows ...model.Customer) *fakeCustomerStore {
	next := uint(1)
	for _, r := range rows {
		if r.ID >= next {
			next = r.ID + 1
		}
	}
	return &fakeCustomerStore{rows: rows, nextID: next}
}

func (f *fakeCustomerStore) GetAll(ctx context.Context, tx *gorm.DB) ([]model.Customer, error) {
	return append([]model.Customer(nil), f.rows...), nil
}

func (f *fakeCustomerStore) GetById(ctx context.Context, tx *gorm.DB, id uint) (*model.Customer, error) {
	for _, r := range f.rows {
		if r.ID == id {
			row := r
			return &row, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerStore) Create(ctx context.Context, tx *gorm.DB, customer *model.Customer) (*model.Customer, error) {
	customer.ID = f.nextID
	f.nextID++
	f.rows = append(f.rows, *customer)
	return customer, nil
}

func (f *fakeCustomerStore) Update(ctx context.Context, tx *gorm.DB, customer *model.Customer) (*model.Customer, error) {
	for i, r := range f.rows {
		if r.ID == customer.ID {
			f.rows[i] = *customer
			return customer, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerStore) Delete(ctx context.Context, tx *gorm.DB, id uint) (*model.Customer, error) {
	for i, r := range f.rows {
		if r.ID == id {
			row := r
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return &row, nil
		}
	}
	return nil, nil
}

type fakeDeveloperStore struct {
	rows   []model.Developer
	nextID uint
}

func newFakeDeveloperStore(rows ...model.Developer) *fakeDeveloperStore {
	next := uint(1)
	for _, r := range rows {
		if r.ID >= next {
			next = r.ID + 1
		}
	}
	return &fakeDeveloperStore{rows: rows, nextID: next}
}

func (f *fakeDeveloperStore) GetAll(ctx context.Context, tx *gorm.DB) ([]model.Developer, error) {
	return append([]model.Developer(nil), f.rows...), nil
}

func (f *fakeDeveloperStore) GetById(ctx context.Context, tx *gorm.DB, id uint) (*model.Developer, error) {
	for _, r := range f.rows {
		if r.ID == id {
			row := r
			return &row, nil
		}
	}
	return nil, nil
}

func (f *fakeDeveloperStore) Create(ctx context.Context, tx *gorm.DB, developer *model.Developer) (*model.Developer, error) {
	developer.ID = f.nextID
	f.nextID++
	f.rows = append(f.rows, *developer)
	return developer, nil
}

func (f *fakeDeveloperStore) Update(ctx context.Context, tx *gorm.DB, developer *model.Developer) (*model.Developer, error) {
	for i, r := range f.rows {
		if r.ID == developer.ID {
			f.rows[i] = *developer
			return developer, nil
		}
	}
	return nil, nil
}

func (f *fakeDeveloperStore) Delete(ctx context.Context, tx *gorm.DB, id uint) (*model.Developer, error) {
	for i, r := range f.rows {
		if r.ID == id {
			row := r
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return &row, nil
		}
	}
	return nil, nil
}

type fakeProjectStageStore struct {
	rows   []model.ProjectStage
	nextID uint
}

func newFakeProjectStageStore(rows ...model.ProjectStage) *fakeProjectStageStore {
	next := uint(1)
	for _, r := range rows {
		if r.ID >= next {
			next = r.ID + 1
		}
	}
	return &fakeProjectStageStore{rows: rows, nextID: next}
}

func (f *fakeProjectStageStore) GetAll(ctx context.Context, tx *gorm.DB) ([]model.ProjectStage, error) {
	return append([]model.ProjectStage(nil), f.rows...), nil
}

func (f *fakeProjectStageStore) GetById(ctx context.Context, tx *gorm.DB, id uint) (*model.ProjectStage, error) {
	for _, r := range f.rows {
		if r.ID == id {
			row := r
			return &row, nil
		}
	}
	return nil, nil
}

func (f *fakeProjectStageStore) Create(ctx context.Context, tx *gorm.DB, stage *model.ProjectStage) (*model.ProjectStage, error) {
	stage.ID = f.nextID
	f.nextID++
	f.rows = append(f.rows, *stage)
	return stage, nil
}

func (f *fakeProjectStageStore) Update(ctx context.Context, tx *gorm.DB, stage *model.ProjectStage) (*model.ProjectStage, error) {
	for i, r := range f.rows {
		if r.ID == stage.ID {
			f.rows[i] = *stage
			return stage, nil
		}
	}
	return nil, nil
}

func (f *fakeProjectStageStore) Delete(ctx context.Context, tx *gorm.DB, id uint) (*model.ProjectStage, error) {
	for i, r := range f.rows {
		if r.ID == id {
			row := r
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return &row, nil
		}
	}
	return nil, nil
}

type fakeProjectStore struct {
	rows   []model.Project
	nextID uint
}

func newFakeProjectStore(rows ...model.Project) *fakeProjectStore {
	next := uint(1)
	for _, r := range rows {
		if r.ID >= next {
			next = r.ID + 1
		}
	}
	return &fakeProjectStore{rows: rows, nextID: next}
}

func (f *fakeProjectStore) GetAll(ctx context.Context, tx *gorm.DB) ([]model.Project, error) {
	return append([]model.Project(nil), f.rows...), nil
}

func (f *fakeProjectStore) GetById(ctx context.Context, tx *gorm.DB, id uint) (*model.Project, error) {
	for _, r := range f.rows {
		if r.ID == id {
			row := r
			return &row, nil
		}
	}
	return nil, nil
}

func (f *fakeProjectStore) Create(ctx context.Context, tx *gorm.DB, project *model.Project) (*model.Project, error) {
	project.ID = f.nextID
	f.nextID++
	f.rows = append(f.rows, *project)
	return project, nil
}

func (f *fakeProjectStore) Update(ctx context.Context, tx *gorm.DB, project *model.Project) (*model.Project, error) {
	for i, r := range f.rows {
		if r.ID == project.ID {
			f.rows[i] = *project
			return project, nil
		}
	}
	return nil, nil
}

func (f *fakeProjectStore) Delete(ctx context.Context, tx *gorm.DB, id uint) (*model.Project, error) {
	for i, r := range f.rows {
		if r.ID == id {
			row := r
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return &row, nil
		}
	}
	return nil, nil
}

type fakeTimeLogStore struct {
	rows   []model.TimeLog
	nextID uint
}

func newFakeTimeLogStore(rows ...model.TimeLog) *fakeTimeLogStore {
	next := uint(1)
	for _, r := range rows {
		if r.ID >= next {
			next = r.ID + 1
		}
	}
	return &fakeTimeLogStore{rows: rows, nextID: next}
}

func (f *fakeTimeLogStore) GetAll(ctx context.Context, tx *gorm.DB) ([]model.TimeLog, error) {
	return append([]model.TimeLog(nil), f.rows...), nil
}

func (f *fakeTimeLogStore) GetById(ctx context.Context, tx *gorm.DB, id uint) (*model.TimeLog, error) {
	for _, r := range f.rows {
		if r.ID == id {
			row := r
			return &row, nil
		}
	}
	return nil, nil
}

func (f *fakeTimeLogStore) Create(ctx context.Context, tx *gorm.DB, timeLog *model.TimeLog) (*model.TimeLog, error) {
	timeLog.ID = f.nextID
	f.nextID++
	f.rows = append(f.rows, *timeLog)
	return timeLog, nil
}

func (f *fakeTimeLogStore) Update(ctx context.Context, tx *gorm.DB, timeLog *model.TimeLog) (*model.TimeLog, error) {
	for i, r := range f.rows {
		if r.ID == timeLog.ID {
			f.rows[i] = *timeLog
			return timeLog, nil
		}
	}
	return nil, nil
}

func (f *fakeTimeLogStore) Delete(ctx context.Context, tx *gorm.DB, id uint) (*model.TimeLog, error) {
	for i, r := range f.rows {
		if r.ID == id {
			row := r
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return &row, nil
		}
	}
	return nil, nil
}
