package routes

import (
	"time"

	"mahatta/handlers"
	"mahatta/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterNurRoutes registers the assistant session endpoints.
func RegisterNurRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/nur")
	{
		api.GET("/options", hb.NurOptions)
		api.POST("/sessions", hb.CreateSession)

		session := api.Group("/sessions/:id")
		session.GET("", hb.GetSession)
		session.DELETE("", hb.CloseSession)
		session.POST("/restart", hb.RestartSession)
		session.POST("/reopen", hb.ReopenSession)
		session.POST("/room", hb.SelectRoom)
		session.POST("/patterns/toggle", hb.TogglePattern)
		session.POST("/patterns/confirm", hb.ConfirmPatterns)
		session.POST("/colors/toggle", hb.ToggleColor)
		session.POST("/colors/confirm", hb.ConfirmColors)
		session.POST("/mood", hb.SelectMood)
		session.POST("/quick-actions", hb.QuickAction)
		session.POST("/cart", hb.AddToCart)
		session.POST("/wishlist", hb.ToggleWishlist)
	}
}

// RegisterStorefrontRoutes registers the catalog and cart endpoints.
func RegisterStorefrontRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/wallpapers", hb.ListWallpapers)
		api.GET("/wallpapers/:id", hb.GetWallpaper)
		api.GET("/cart", hb.GetCart)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.Health)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", middleware.ShopperHeader},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.ShopperMiddleware())

	RegisterNurRoutes(r, hb)
	RegisterStorefrontRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
