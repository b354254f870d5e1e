package route

import (
	"github.com/timelogger/timelogger/internal/controller"
	"github.com/gin-gonic/gin"
)

func V1_Developers(r *gin.RouterGroup, dc *controller.DeveloperController) {
	v1 := r.Group("/v1/Developer")
	{
		v1.GET("", dc.GetAllDevelopers)
		v1.GET("/:id", dc.GetDeveloperById)
		v1.POST("", dc.AddDeveloper)
		v1.PUT("", dc.UpdateDeveloper)
		v1.DELETE("/:id", dc.DeleteDeveloper)
	}
}
