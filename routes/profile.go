package routes

import (
	"adhkari/controllers"

	"github.com/gin-gonic/gin"
)

func GetProfileRouteHandler(c *gin.Context) {
	controllers.GetProfile(c)
}

func UpdateLanguageRouteHandler(c *gin.Context) {
	controllers.UpdateLanguage(c)
}

func UpdatePreferencesRouteHandler(c *gin.Context) {
	controllers.UpdatePreferences(c)
}
