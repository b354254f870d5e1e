package route

import (
	"github.com/timelogger/timelogger/internal/controller"
	"github.com/gin-gonic/gin"
)

func V1_TimeLogs(r *gin.RouterGroup, tlc *controller.TimeLogController) {
	v1 := r.Group("/v1/TimeLog")
	{
		v1.GET("", tlc.GetAllTimeLogs)
		v1.GET("/search", tlc.SearchTimeLogs)
		v1.GET("/:id", tlc.GetTimeLogById)
		v1.POST("", tlc.AddTimeLog)
		v1.PUT("", tlc.UpdateTimeLog)
		v1.DELETE("/:id", tlc.DeleteTimeLog)
	}
}
