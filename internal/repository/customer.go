package repository

import (
	"context"
	"errors"

	constant "github.com/timelogger/timelogger/internal/constant"
	"github.com/timelogger/timelogger/internal/model"
	"gorm.io/gorm"
)

type CustomerRepository struct {
	*baseRepository
}

func (cr CustomerRepository) GetAll(ctx context.Context, tx *gorm.DB) ([]model.Customer, error) {
	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var customers []model.Customer
	if err := db.WithContext(ctx).Model(&model.Customer{}).Order("id asc").Find(&customers).Error; err != nil {
		return nil, err
	}

	return customers, nil
}

func (cr CustomerRepository) GetById(ctx context.Context, tx *gorm.DB, id uint) (*model.Customer, error) {
	cr.logger.Debugf("Get customer by id: %d", id)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var customer model.Customer
	if err := db.WithContext(ctx).Model(&model.Customer{}).First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &customer, nil
}

func (cr CustomerRepository) Create(ctx context.Context, tx *gorm.DB, customer *model.Customer) (*model.Customer, error) {
	cr.logger.Debugf("Create customer with data: %v", customer)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Customer{}).Create(customer).Error; err != nil {
		return nil, err
	}

	return customer, nil
}

func (cr CustomerRepository) Update(ctx context.Context, tx *gorm.DB, customer *model.Customer) (*model.Customer, error) {
	cr.logger.Debugf("Update customer with id: %d", customer.ID)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Save(customer).Error; err != nil {
		return nil, err
	}

	return customer, nil
}

func (cr CustomerRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) (*model.Customer, error) {
	cr.logger.Debugf("Delete customer with id: %d", id)

	existing, err := cr.GetById(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Delete(&model.Customer{}, id).Error; err != nil {
		return nil, err
	}

	return existing, nil
}
