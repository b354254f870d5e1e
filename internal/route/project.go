package route

import (
	"github.com/timelogger/timelogger/internal/controller"
	"github.com/gin-gonic/gin"
)

func V1_Projects(r *gin.RouterGroup, pc *controller.ProjectController) {
	v1 := r.Group("/v1/Project")
	{
		v1.GET("", pc.GetAllProjects)
		v1.GET("/:id", pc.GetProjectById)
		v1.POST("", pc.AddProject)
		v1.PUT("", pc.UpdateProject)
		v1.DELETE("/:id", pc.DeleteProject)
	}
}
