package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	mid "github.com/cloud-compass/compass/backend/internal/server/middleware"
	"github.com/cloud-compass/compass/backend/internal/server/routes"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		assets, relationships := c.(*mid.AppContext).App.Store.Counts()
		return c.JSON(http.StatusOK, map[string]any{
			"status":        "ok",
			"assets":        assets,
			"relationships": relationships,
		})
	})

	apiRoutes := e.Group("/api")

	// Graph view routes
	apiRoutes.GET("/graph", routes.GetGraphHandler)
	apiRoutes.GET("/assets/:id", routes.GetAssetDetailHandler)
	apiRoutes.GET("/relationships", routes.GetRelationshipsHandler)

	// Ingestion routes
	apiRoutes.POST("/scans", routes.UploadScanHandler)

	// AI insight routes
	apiRoutes.POST("/assets/:id/summary", routes.SummarizeAssetHandler)
	apiRoutes.POST("/assets/:id/suggestions", routes.SuggestRelationshipsHandler)
	apiRoutes.POST("/relationships", routes.AcceptSuggestionHandler)
}
