package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"drepalife-app/internal/config"
	"drepalife-app/internal/handlers"
	"drepalife-app/internal/middleware"
	"drepalife-app/internal/models"
)

// NewRouter builds the development API: CORS plus the platform routes.
func NewRouter(db *gorm.DB, cfg *config.DevAPIConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Origin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	SetupRoutes(router, db, cfg)
	return router
}

// SetupRoutes mounts the documented platform endpoints.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.DevAPIConfig) {
	authHandler := handlers.NewAuthHandler(db, cfg)
	tipHandler := handlers.NewHealthTipHandler(db)
	consultHandler := handlers.NewConsultHandler(db)
	genotypeHandler := handlers.NewGenotypeHandler(db)

	authRequired := middleware.Authenticate(cfg.JWTSecret)

	users := router.Group("/api/users")
	{
		users.POST("/register", authHandler.Register)
		users.POST("/login", authHandler.Login)
	}

	router.POST("/api/genotype-matches", authRequired, genotypeHandler.CreateMatch)

	router.POST("/consult", consultHandler.Consult)

	tips := router.Group("/health-tips")
	{
		tips.GET("", tipHandler.ListHealthTips)

		editors := tips.Group("")
		editors.Use(authRequired, middleware.RequireRole(models.RoleHealthExpert, models.RoleAdmin))
		{
			editors.POST("", tipHandler.CreateHealthTip)
			editors.PUT("/:id", tipHandler.UpdateHealthTip)
			editors.DELETE("/:id", tipHandler.DeleteHealthTip)
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})
}
