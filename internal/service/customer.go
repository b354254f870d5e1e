package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/timelogger/timelogger/internal/apperror"
	"github.com/timelogger/timelogger/internal/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const maxNameLength = 30

// CustomerStore is the slice of the customer repository the service needs.
type CustomerStore interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]model.Customer, error)
	GetById(ctx context.Context, tx *gorm.DB, id uint) (*model.Customer, error)
	Create(ctx context.Context, tx *gorm.DB, customer *model.Customer) (*model.Customer, error)
	Update(ctx context.Context, tx *gorm.DB, customer *model.Customer) (*model.Customer, error)
	Delete(ctx context.Context, tx *gorm.DB, id uint) (*model.Customer, error)
}

type CustomerService struct {
	*baseService
	customers CustomerStore
}

func NewCustomerService(logger *zap.SugaredLogger, customers CustomerStore) *CustomerService {
	return &CustomerService{baseService: &baseService{logger: logger}, customers: customers}
}

type CustomerRequest struct {
	CustomerName string `json:"customerName" form:"customerName"`
}

type CustomerResponse struct {
	CustomerID   uint   `json:"customerId"`
	CustomerName string `json:"customerName"`
}

func newCustomerResponse(c model.Customer) CustomerResponse {
	return CustomerResponse{CustomerID: c.ID, CustomerName: c.Name}
}

// validName rejects blank or whitespace-only names and names longer than 30
// characters. The limit counts runes, not bytes.
func validName(name string) bool {
	return strings.TrimSpace(name) != "" && utf8.RuneCountInString(name) <= maxNameLength
}

func (cs CustomerService) validateRequest(req CustomerRequest) error {
	if !validName(req.CustomerName) {
		return apperror.New("customer name is not valid")
	}
	return nil
}

func (cs CustomerService) GetAll(ctx context.Context, pageIndex, pageSize int) (*PaginatedList[CustomerResponse], error) {
	if err := ValidatePageValues(pageIndex, pageSize); err != nil {
		return nil, err
	}

	customers, err := cs.customers.GetAll(ctx, nil)
	if err != nil {
		return nil, err
	}

	page, err := Paginate(customers, pageIndex, pageSize)
	if err != nil {
		return nil, err
	}

	return MapPage(page, newCustomerResponse), nil
}

func (cs CustomerService) GetById(ctx context.Context, id uint) (*CustomerResponse, error) {
	customer, err := cs.customers.GetById(ctx, nil, id)
	if err != nil || customer == nil {
		return nil, err
	}

	resp := newCustomerResponse(*customer)
	return &resp, nil
}

func (cs CustomerService) Add(ctx context.Context, req CustomerRequest) (*CustomerResponse, error) {
	if err := cs.validateRequest(req); err != nil {
		return nil, err
	}

	created, err := cs.customers.Create(ctx, nil, &model.Customer{Name: req.CustomerName})
	if err != nil {
		return nil, err
	}

	resp := newCustomerResponse(*created)
	return &resp, nil
}

// Update overwrites every writable field of the stored row; callers resend
// unchanged fields.
func (cs CustomerService) Update(ctx context.Context, id uint, req CustomerRequest) (*CustomerResponse, error) {
	if err := cs.validateRequest(req); err != nil {
		return nil, err
	}

	existing, err := cs.customers.GetById(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NotFound("Invalid CustomerId")
	}

	existing.Name = req.CustomerName

	updated, err := cs.customers.Update(ctx, nil, existing)
	if err != nil {
		return nil, err
	}

	resp := newCustomerResponse(*updated)
	return &resp, nil
}

func (cs CustomerService) Delete(ctx context.Context, id uint) (*CustomerResponse, error) {
	existing, err := cs.customers.GetById(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NotFound("Invalid CustomerId")
	}

	deleted, err := cs.customers.Delete(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, apperror.NotFound("Invalid CustomerId")
	}

	resp := newCustomerResponse(*deleted)
	return &resp, nil
}
