package route

import (
	"github.com/timelogger/timelogger/internal/controller"
	"github.com/gin-gonic/gin"
)

func V1_ProjectStages(r *gin.RouterGroup, psc *controller.ProjectStageController) {
	v1 := r.Group("/v1/ProjectStage")
	{
		v1.GET("", psc.GetAllProjectStages)
		v1.GET("/:id", psc.GetProjectStageById)
		v1.POST("", psc.AddProjectStage)
		v1.PUT("", psc.UpdateProjectStage)
		v1.DELETE("/:id", psc.DeleteProjectStage)
	}
}
