package routes

import (
	"adhkari/controllers"

	"github.com/gin-gonic/gin"
)

func GetPrayerTimesRouteHandler(c *gin.Context) {
	controllers.GetPrayerTimes(c)
}
