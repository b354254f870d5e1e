package route

import (
	"github.com/timelogger/timelogger/internal/controller"
	"github.com/gin-gonic/gin"
)

func V1_Customers(r *gin.RouterGroup, cc *controller.CustomerController) {
	v1 := r.Group("/v1/Customer")
	{
		v1.GET("", cc.GetAllCustomers)
		v1.GET("/:id", cc.GetCustomerById)
		v1.POST("", cc.AddCustomer)
		v1.PUT("", cc.UpdateCustomer)
		v1.DELETE("/:id", cc.DeleteCustomer)
	}
}
