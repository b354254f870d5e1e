package controller

import (
	"net/http"

	"github.com/timelogger/timelogger/internal/service"
	"github.com/timelogger/timelogger/internal/util"
	"github.com/gin-gonic/gin"
)

type DeveloperController struct {
	*baseController
}

func (dc DeveloperController) GetAllDevelopers(ctx *gin.Context) {
	var query pageQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		dc.failBadRequest(ctx, err)
		return
	}

	developers, err := dc.app.Service.Developer.GetAll(ctx, query.PageIndex, query.PageSize)
	if err != nil {
		dc.failFromError(ctx, err, "Failed to get developers")
		return
	}
	if len(developers.Items) == 0 {
		util.ResponseFailed(ctx, http.StatusNotFound, "No developers found", nil, nil)
		return
	}

	util.ResponseSuccess(ctx, developers)
}

func (dc DeveloperController) GetDeveloperById(ctx *gin.Context) {
	var params idParam
	if err := ctx.ShouldBindUri(&params); err != nil {
		dc.failBadRequest(ctx, err)
		return
	}

	developer, err := dc.app.Service.Developer.GetById(ctx, params.ID)
	if err != nil {
		dc.failFromError(ctx, err, "Failed to get developer")
		return
	}
	if developer == nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Developer not found", nil, nil)
		return
	}

	util.ResponseSuccess(ctx, developer)
}

func (dc DeveloperController) AddDeveloper(ctx *gin.Context) {
	var body service.DeveloperRequest
	if err := ctx.ShouldBind(&body); err != nil {
		dc.failBadRequest(ctx, err)
		return
	}

	developer, err := dc.app.Service.Developer.Add(ctx, body)
	if err != nil {
		dc.failFromError(ctx, err, "Failed to add developer")
		return
	}

	util.ResponseSuccess(ctx, developer)
}

func (dc DeveloperController) UpdateDeveloper(ctx *gin.Context) {
	var query idQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		dc.failBadRequest(ctx, err)
		return
	}

	var body service.DeveloperRequest
	if err := ctx.ShouldBind(&body); err != nil {
		dc.failBadRequest(ctx, err)
		return
	}

	developer, err := dc.app.Service.Developer.Update(ctx, query.ID, body)
	if err != nil {
		dc.failFromError(ctx, err, "Failed to update developer")
		return
	}

	util.ResponseSuccess(ctx, developer)
}

func (dc DeveloperController) DeleteDeveloper(ctx *gin.Context) {
	var params idParam
	if err := ctx.ShouldBindUri(&params); err != nil {
		dc.failBadRequest(ctx, err)
		return
	}

	developer, err := dc.app.Service.Developer.Delete(ctx, params.ID)
	if err != nil {
		dc.failFromError(ctx, err, "Failed to delete developer")
		return
	}

	util.ResponseSuccess(ctx, developer)
}
