package controller

import (
	"net/http"

	"github.com/timelogger/timelogger/internal/service"
	"github.com/timelogger/timelogger/internal/util"
	"github.com/gin-gonic/gin"
)

type TimeLogController struct {
	*baseController
}

func (tlc TimeLogController) GetAllTimeLogs(ctx *gin.Context) {
	var query pageQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		tlc.failBadRequest(ctx, err)
		return
	}

	timeLogs, err := tlc.app.Service.TimeLog.GetAll(ctx, query.PageIndex, query.PageSize)
	if err != nil {
		tlc.failFromError(ctx, err, "Failed to get time logs")
		return
	}
	if len(timeLogs.Items) == 0 {
		util.ResponseFailed(ctx, http.StatusNotFound, "No time logs found", nil, nil)
		return
	}

	util.ResponseSuccess(ctx, timeLogs)
}

func (tlc TimeLogController) SearchTimeLogs(ctx *gin.Context) {
	var query pageQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		tlc.failBadRequest(ctx, err)
		return
	}

	var search service.TimeLogSearchRequest
	if err := ctx.ShouldBindQuery(&search); err != nil {
		tlc.failBadRequest(ctx, err)
		return
	}

	timeLogs, err := tlc.app.Service.TimeLog.Search(ctx, search, query.PageIndex, query.PageSize)
	if err != nil {
		tlc.failFromError(ctx, err, "Failed to search time logs")
		return
	}
	if len(timeLogs.Items) == 0 {
		util.ResponseFailed(ctx, http.StatusNotFound, "No time logs found", nil, nil)
		return
	}

	util.ResponseSuccess(ctx, timeLogs)
}

func (tlc TimeLogController) GetTimeLogById(ctx *gin.Context) {
	var params idParam
	if err := ctx.ShouldBindUri(&params); err != nil {
		tlc.failBadRequest(ctx, err)
		return
	}

	timeLog, err := tlc.app.Service.TimeLog.GetById(ctx, params.ID)
	if err != nil {
		tlc.failFromError(ctx, err, "Failed to get time log")
		return
	}
	if timeLog == nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Time log not found", nil, nil)
		return
	}

	util.ResponseSuccess(ctx, timeLog)
}

func (tlc TimeLogController) AddTimeLog(ctx *gin.Context) {
	var body service.TimeLogRequest
	if err := ctx.ShouldBind(&body); err != nil {
		tlc.failBadRequest(ctx, err)
		return
	}

	timeLog, err := tlc.app.Service.TimeLog.Add(ctx, body)
	if err != nil {
		tlc.failFromError(ctx, err, "Failed to add time log")
		return
	}

	util.ResponseSuccess(ctx, timeLog)
}

func (tlc TimeLogController) UpdateTimeLog(ctx *gin.Context) {
	var query idQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		tlc.failBadRequest(ctx, err)
		return
	}

	var body service.TimeLogRequest
	if err := ctx.ShouldBind(&body); err != nil {
		tlc.failBadRequest(ctx, err)
		return
	}

	timeLog, err := tlc.app.Service.TimeLog.Update(ctx, query.ID, body)
	if err != nil {
		tlc.failFromError(ctx, err, "Failed to update time log")
		return
	}

	util.ResponseSuccess(ctx, timeLog)
}

func (tlc TimeLogController) DeleteTimeLog(ctx *gin.Context) {
	var params idParam
	if err := ctx.ShouldBindUri(&params); err != nil {
		tlc.failBadRequest(ctx, err)
		return
	}

	timeLog, err := tlc.app.Service.TimeLog.Delete(ctx, params.ID)
	if err != nil {
		tlc.failFromError(ctx, err, "Failed to delete time log")
		return
	}

	util.ResponseSuccess(ctx, timeLog)
}
