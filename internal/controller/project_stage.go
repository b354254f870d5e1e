package controller

import (
	"net/http"

	"github.com/timelogger/timelogger/internal/service"
	"github.com/timelogger/timelogger/internal/util"
	"github.com/gin-gonic/gin"
)

type ProjectStageController struct {
	*baseController
}

func (psc ProjectStageController) GetAllProjectStages(ctx *gin.Context) {
	var query pageQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		psc.failBadRequest(ctx, err)
		return
	}

	stages, err := psc.app.Service.ProjectStage.GetAll(ctx, query.PageIndex, query.PageSize)
	if err != nil {
		psc.failFromError(ctx, err, "Failed to get project stages")
		return
	}
	if len(stages.Items) == 0 {
		util.ResponseFailed(ctx, http.StatusNotFound, "No project stages found", nil, nil)
		return
	}

	util.ResponseSuccess(ctx, stages)
}

func (psc ProjectStageController) GetProjectStageById(ctx *gin.Context) {
	var params idParam
	if err := ctx.ShouldBindUri(&params); err != nil {
		psc.failBadRequest(ctx, err)
		return
	}

	stage, err := psc.app.Service.ProjectStage.GetById(ctx, params.ID)
	if err != nil {
		psc.failFromError(ctx, err, "Failed to get project stage")
		return
	}
	if stage == nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Project stage not found", nil, nil)
		return
	}

	util.ResponseSuccess(ctx, stage)
}

func (psc ProjectStageController) AddProjectStage(ctx *gin.Context) {
	var body service.ProjectStageRequest
	if err := ctx.ShouldBind(&body); err != nil {
		psc.failBadRequest(ctx, err)
		return
	}

	stage, err := psc.app.Service.ProjectStage.Add(ctx, body)
	if err != nil {
		psc.failFromError(ctx, err, "Failed to add project stage")
		return
	}

	util.ResponseSuccess(ctx, stage)
}

func (psc ProjectStageController) UpdateProjectStage(ctx *gin.Context) {
	var query idQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		psc.failBadRequest(ctx, err)
		return
	}

	var body service.ProjectStageRequest
	if err := ctx.ShouldBind(&body); err != nil {
		psc.failBadRequest(ctx, err)
		return
	}

	stage, err := psc.app.Service.ProjectStage.Update(ctx, query.ID, body)
	if err != nil {
		psc.failFromError(ctx, err, "Failed to update project stage")
		return
	}

	util.ResponseSuccess(ctx, stage)
}

func (psc ProjectStageController) DeleteProjectStage(ctx *gin.Context) {
	var params idParam
	if err := ctx.ShouldBindUri(&params); err != nil {
		psc.failBadRequest(ctx, err)
		return
	}

	stage, err := psc.app.Service.ProjectStage.Delete(ctx, params.ID)
	if err != nil {
		psc.failFromError(ctx, err, "Failed to delete project stage")
		return
	}

	util.ResponseSuccess(ctx, stage)
}
