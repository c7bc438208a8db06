package routes

import (
	"adhkari/controllers"
	"adhkari/middlewares"

	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes sets up admin routes. Every mutation is RBAC-checked and
// writes an audit log entry.
func SetupAdminRoutes(router *gin.Engine) {
	admin := router.Group("/admin")
	admin.Use(middlewares.AdminAuthMiddleware())
	{
		// User management
		admin.GET("/users", middlewares.RBACMiddleware("user", "read"), controllers.AdminListUsers)
		admin.PUT("/users/:id/tier", middlewares.RBACMiddleware("user", "update"), controllers.AdminUpdateUserTier)

		// Content management
		admin.POST("/dhikr", middlewares.RBACMiddleware("content", "create"), controllers.AdminCreateDhikr)
		admin.DELETE("/dhikr/:id", middlewares.RBACMiddleware("content", "delete"), controllers.AdminDeleteDhikr)

		// Gift management
		admin.GET("/gifts", controllers.AdminListGifts)
		admin.POST("/gifts", middlewares.RBACMiddleware("gift", "create"), controllers.AdminCreateGift)
		admin.DELETE("/gifts/:id", middlewares.RBACMiddleware("gift", "delete"), controllers.AdminDeleteGift)

		// Audit trail
		admin.GET("/logs", middlewares.RBACMiddleware("auditlog", "read"), controllers.AdminListLogs)
	}
}
