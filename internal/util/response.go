package util

import (
	"net/http"

	constant "github.com/timelogger/timelogger/internal/constant"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Errors  any    `json:"errors,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func ResponseSuccess(ctx *gin.Context, data any) {
	if data == nil {
		data = gin.H{}
	}

	ctx.JSON(http.StatusOK, Response{
		Success: true,
		Message: constant.REQUEST_SUCCESSFUL,
		Data:    data,
	})
	ctx.Abort()
}

func ResponseFailed(ctx *gin.Context, code int, message string, err any, data any) {
	if message == "" {
		message = constant.REQUEST_UNSUCCESSFUL
	}

	if e, ok := err.(error); ok {
		err = GenerateErrorMessages(e)
	}
	if err == nil {
		err = gin.H{}
	}
	if data == nil {
		data = gin.H{}
	}

	ctx.JSON(code, Response{
		Success: false,
		Message: message,
		Errors:  err,
		Data:    data,
	})
	ctx.Abort()
}
