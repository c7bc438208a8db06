package routes

import (
	"adhkari/controllers"

	"github.com/gin-gonic/gin"
)

// SetupDhikrRoutes registers the content browsing and completion endpoints
func SetupDhikrRoutes(rg *gin.RouterGroup) {
	rg.GET("/dhikr/categories", controllers.GetCategories)
	rg.GET("/dhikr", controllers.ListDhikr)
	rg.GET("/dhikr/:id", controllers.GetDhikr)
	rg.POST("/dhikr/:id/complete", controllers.CompleteDhikr)
}
