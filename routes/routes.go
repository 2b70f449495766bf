package routes

import (
	"net/http"
	"time"

	"sewakit/handlers"
	"sewakit/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Sewakit"})
	})
}

// RegisterCatalogRoutes registers the catalog browsing endpoint.
func RegisterCatalogRoutes(r *gin.Engine, catalogHandler *handlers.CatalogHandler) {
	api := r.Group("/api/catalog")
	{
		api.Use(middleware.JWTAuthUserMiddleware())
		api.GET("", catalogHandler.GetCatalog)
	}
}

// RegisterWizardRoutes sets up the endpoints for the booking wizard.
func RegisterWizardRoutes(r *gin.Engine, wizardHandler *handlers.WizardHandler) {
	api := r.Group("/api/wizard")
	{
		api.Use(middleware.JWTAuthUserMiddleware())

		api.POST("/session", wizardHandler.StartSession)
		api.GET("/session/:sessionID", wizardHandler.GetSession)
		api.DELETE("/session/:sessionID", wizardHandler.Cancel)

		// Step 1: date range.
		api.PUT("/session/:sessionID/dates", wizardHandler.SetDates)

		// Step 2: item selection.
		api.POST("/session/:sessionID/items", wizardHandler.AddItem)
		api.PUT("/session/:sessionID/items", wizardHandler.UpdateQuantity)
		api.DELETE("/session/:sessionID/items/:kind/:itemID", wizardHandler.RemoveItem)

		// Navigation.
		api.POST("/session/:sessionID/next", wizardHandler.Next)
		api.POST("/session/:sessionID/previous", wizardHandler.Previous)
		api.POST("/session/:sessionID/goto", wizardHandler.GoTo)

		// Step 3: priced summary and submission.
		api.GET("/session/:sessionID/summary", wizardHandler.Summary)
		api.POST("/session/:sessionID/confirm", wizardHandler.Confirm)
	}
}

// RegisterRoutes wires every route group onto the router.
func RegisterRoutes(r *gin.Engine, wizardHandler *handlers.WizardHandler, catalogHandler *handlers.CatalogHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterCatalogRoutes(r, catalogHandler)
	RegisterWizardRoutes(r, wizardHandler)
}
