package controller

import (
	"net/http"

	"github.com/timelogger/timelogger/internal/service"
	"github.com/timelogger/timelogger/internal/util"
	"github.com/gin-gonic/gin"
)

type ProjectController struct {
	*baseController
}

func (pc ProjectController) GetAllProjects(ctx *gin.Context) {
	var query struct {
		pageQuery
		SortBy        string `form:"sortBy"`
		SortDirection string `form:"sortDirection"`
	}
	if err := ctx.ShouldBindQuery(&query); err != nil {
		pc.failBadRequest(ctx, err)
		return
	}

	projects, err := pc.app.Service.Project.GetAll(ctx, query.PageIndex, query.PageSize, query.SortBy, query.SortDirection)
	if err != nil {
		pc.failFromError(ctx, err, "Failed to get projects")
		return
	}
	if len(projects.Items) == 0 {
		util.ResponseFailed(ctx, http.StatusNotFound, "No projects found", nil, nil)
		return
	}

	util.ResponseSuccess(ctx, projects)
}

func (pc ProjectController) GetProjectById(ctx *gin.Context) {
	var params idParam
	if err := ctx.ShouldBindUri(&params); err != nil {
		pc.failBadRequest(ctx, err)
		return
	}

	project, err := pc.app.Service.Project.GetById(ctx, params.ID)
	if err != nil {
		pc.failFromError(ctx, err, "Failed to get project")
		return
	}
	if project == nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", nil, nil)
		return
	}

	util.ResponseSuccess(ctx, project)
}

func (pc ProjectController) AddProject(ctx *gin.Context) {
	var body service.ProjectRequest
	if err := ctx.ShouldBind(&body); err != nil {
		pc.failBadRequest(ctx, err)
		return
	}

	project, err := pc.app.Service.Project.Add(ctx, body)
	if err != nil {
		pc.failFromError(ctx, err, "Failed to add project")
		return
	}

	util.ResponseSuccess(ctx, project)
}

func (pc ProjectController) UpdateProject(ctx *gin.Context) {
	var query idQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		pc.failBadRequest(ctx, err)
		return
	}

	var body service.ProjectRequest
	if err := ctx.ShouldBind(&body); err != nil {
		pc.failBadRequest(ctx, err)
		return
	}

	project, err := pc.app.Service.Project.Update(ctx, query.ID, body)
	if err != nil {
		pc.failFromError(ctx, err, "Failed to update project")
		return
	}

	util.ResponseSuccess(ctx, project)
}

func (pc ProjectController) DeleteProject(ctx *gin.Context) {
	var params idParam
	if err := ctx.ShouldBindUri(&params); err != nil {
		pc.failBadRequest(ctx, err)
		return
	}

	project, err := pc.app.Service.Project.Delete(ctx, params.ID)
	if err != nil {
		pc.failFromError(ctx, err, "Failed to delete project")
		return
	}

	util.ResponseSuccess(ctx, project)
}
