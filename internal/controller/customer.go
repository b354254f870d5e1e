package controller

import (
	"net/http"

	"github.com/timelogger/timelogger/internal/service"
	"github.com/timelogger/timelogger/internal/util"
	"github.com/gin-gonic/gin"
)

type CustomerController struct {
	*baseController
}

func (cc CustomerController) GetAllCustomers(ctx *gin.Context) {
	var query pageQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		cc.failBadRequest(ctx, err)
		return
	}

	customers, err := cc.app.Service.Customer.GetAll(ctx, query.PageIndex, query.PageSize)
	if err != nil {
		cc.failFromError(ctx, err, "Failed to get customers")
		return
	}
	if len(customers.Items) == 0 {
		util.ResponseFailed(ctx, http.StatusNotFound, "No customers found", nil, nil)
		return
	}

	util.ResponseSuccess(ctx, customers)
}

func (cc CustomerController) GetCustomerById(ctx *gin.Context) {
	var params idParam
	if err := ctx.ShouldBindUri(&params); err != nil {
		cc.failBadRequest(ctx, err)
		return
	}

	customer, err := cc.app.Service.Customer.GetById(ctx, params.ID)
	if err != nil {
		cc.failFromError(ctx, err, "Failed to get customer")
		return
	}
	if customer == nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Customer not found", nil, nil)
		return
	}

	util.ResponseSuccess(ctx, customer)
}

func (cc CustomerController) AddCustomer(ctx *gin.Context) {
	var body service.CustomerRequest
	if err := ctx.ShouldBind(&body); err != nil {
		cc.failBadRequest(ctx, err)
		return
	}

	customer, err := cc.app.Service.Customer.Add(ctx, body)
	if err != nil {
		cc.failFromError(ctx, err, "Failed to add customer")
		return
	}

	util.ResponseSuccess(ctx, customer)
}

func (cc CustomerController) UpdateCustomer(ctx *gin.Context) {
	var query idQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		cc.failBadRequest(ctx, err)
		return
	}

	var body service.CustomerRequest
	if err := ctx.ShouldBind(&body); err != nil {
		cc.failBadRequest(ctx, err)
		return
	}

	customer, err := cc.app.Service.Customer.Update(ctx, query.ID, body)
	if err != nil {
		cc.failFromError(ctx, err, "Failed to update customer")
		return
	}

	util.ResponseSuccess(ctx, customer)
}

func (cc CustomerController) DeleteCustomer(ctx *gin.Context) {
	var params idParam
	if err := ctx.ShouldBindUri(&params); err != nil {
		cc.failBadRequest(ctx, err)
		return
	}

	customer, err := cc.app.Service.Customer.Delete(ctx, params.ID)
	if err != nil {
		cc.failFromError(ctx, err, "Failed to delete customer")
		return
	}

	util.ResponseSuccess(ctx, customer)
}
