package controller

import (
	"net/http"

	appcontext "github.com/timelogger/timelogger/internal/app_context"
	"github.com/timelogger/timelogger/internal/apperror"
	"github.com/timelogger/timelogger/internal/util"
	"github.com/gin-gonic/gin"
)

type baseController struct {
	app *appcontext.Application
}

type Controller struct {
	Index        *IndexController
	Customer     *CustomerController
	Developer    *DeveloperController
	ProjectStage *ProjectStageController
	Project      *ProjectController
	TimeLog      *TimeLogController
}

func newBaseController(app *appcontext.Application) *baseController {
	return &baseController{app: app}
}

func NewController(app *appcontext.Application) *Controller {
	bc := newBaseController(app)

	return &Controller{
		Index:        &IndexController{baseController: bc},
		Customer:     &CustomerController{baseController: bc},
		Developer:    &DeveloperController{baseController: bc},
		ProjectStage: &ProjectStageController{baseController: bc},
		Project:      &ProjectController{baseController: bc},
		TimeLog:      &TimeLogController{baseController: bc},
	}
}

// pageQuery carries the paging parameters common to every list endpoint.
type pageQuery struct {
	PageIndex int `form:"pageIndex,default=1"`
	PageSize  int `form:"pageSize,default=10"`
}

type idParam struct {
	ID uint `uri:"id" binding:"required"`
}

type idQuery struct {
	ID uint `form:"id" binding:"required"`
}

// failFromError maps a domain error to 400 (validation) or 404 (not found)
// carrying its message verbatim; anything else is a fault and becomes a 500.
func (b *baseController) failFromError(ctx *gin.Context, err error, fallback string) {
	if domainErr, ok := apperror.As(err); ok {
		code := http.StatusBadRequest
		if domainErr.Kind == apperror.KindNotFound {
			code = http.StatusNotFound
		}
		util.ResponseFailed(ctx, code, domainErr.Message, util.GenerateErrorMessages(domainErr), nil)
		return
	}

	b.app.Logger.Error(err)
	util.ResponseFailed(ctx, http.StatusInternalServerError, fallback, util.GenerateErrorMessages(err), nil)
}

func (b *baseController) failBadRequest(ctx *gin.Context, err error) {
	util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
}
