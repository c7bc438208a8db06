package main

import (
	"log"
	"strconv"

	"adhkari/config"
	"adhkari/controllers"
	"adhkari/db"
	"adhkari/middlewares"
	"adhkari/routes"
	"adhkari/services"
	"adhkari/utils"
	"adhkari/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load the configuration from the specified YAML file
	cfg, err := config.LoadConfig("./config/config.prod.yml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	utils.SetJWTSecret(cfg.JWT.Secret)
	utils.SetJWTExpiry(cfg.JWT.Expiry)
	services.InitTranslationService(cfg)
	controllers.InitPrayerTimesController(cfg)

	// Connect to MongoDB using the URI from the configuration
	if err := db.ConnectMongoDB(cfg.Database.URI); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Println("Connected to MongoDB")

	if err := middlewares.InitCasbin(cfg.Database.URI); err != nil {
		log.Fatalf("Failed to initialize RBAC: %v", err)
	}

	// Seed starter content on first boot
	utils.SeedDefaultContent()

	// Set up the Gin router and configure routes
	router := setupRouter()
	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter() *gin.Engine {
	router := gin.Default()

	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	router.OPTIONS("/*path", func(c *gin.Context) { c.Status(204) })

	// Public routes for authentication
	router.POST("/signup", routes.SignUpRouteHandler)
	router.POST("/login", routes.LoginRouteHandler)

	// Protected routes (JWT auth)
	auth := router.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.GET("/user/profile", routes.GetProfileRouteHandler)
		auth.PUT("/user/language", routes.UpdateLanguageRouteHandler)
		auth.PUT("/user/preferences", routes.UpdatePreferencesRouteHandler)

		routes.SetupDhikrRoutes(auth)

		auth.GET("/gifts", routes.ListGiftsRouteHandler)
		auth.POST("/gifts/:id/claim", routes.ClaimGiftRouteHandler)

		auth.GET("/prayertimes", routes.GetPrayerTimesRouteHandler)

		// WebSocket feed for live engagement updates
		auth.GET("/ws/engagement", websocket.EngagementWebSocketHandler)
	}

	// Admin routes carry their own auth middleware
	routes.SetupAdminRoutes(router)

	return router
}
