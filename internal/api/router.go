package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cardinalnav/campus-backend-go/internal/config"
	"github.com/cardinalnav/campus-backend-go/internal/handler"
	"github.com/cardinalnav/campus-backend-go/internal/middleware"
	"github.com/cardinalnav/campus-backend-go/internal/service"
)

// SetupRouter assembles the HTTP API.
func SetupRouter(cfg *config.Config, navigator *service.Navigator) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Campus Nav API is running",
		})
	})

	campusHandler := handler.NewCampusHandler(navigator)
	navHandler := handler.NewNavHandler(navigator)
	authHandler := handler.NewAuthHandler([]byte(cfg.JWTSecret))

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(300, time.Minute))
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/register", authHandler.Register)
		}

		campusGroup := api.Group("/campus")
		{
			campusGroup.GET("", campusHandler.GetState)
			campusGroup.GET("/buildings", campusHandler.ListBuildings)
			campusGroup.PUT("/building/:id", campusHandler.SelectBuilding)
			campusGroup.PUT("/floor/:id", campusHandler.SelectFloor)
			campusGroup.GET("/rooms", campusHandler.GetRooms)
			campusGroup.GET("/export", campusHandler.Export)

			// Setup mode: map editing and import require a token.
			setup := campusGroup.Group("")
			setup.Use(middleware.Auth([]byte(cfg.JWTSecret)))
			{
				setup.POST("/rooms", campusHandler.AddRoom)
				setup.DELETE("/rooms/:id", campusHandler.DeleteRoom)
				setup.POST("/import", campusHandler.Import)
			}
		}

		navGroup := api.Group("/nav")
		{
			navGroup.GET("", navHandler.GetState)
			navGroup.POST("/start", navHandler.Start)
			navGroup.POST("/stop", navHandler.Stop)
			navGroup.POST("/checkin/:roomId", navHandler.CheckIn)
		}

		location := api.Group("/location")
		{
			location.GET("", navHandler.GetLocation)
			location.POST("/fix", navHandler.PushFix)
		}
	}

	return r
}
