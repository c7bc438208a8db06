package routes

import (
	"adhkari/controllers"

	"github.com/gin-gonic/gin"
)

func ListGiftsRouteHandler(c *gin.Context) {
	controllers.ListGifts(c)
}

func ClaimGiftRouteHandler(c *gin.Context) {
	controllers.ClaimGift(c)
}
