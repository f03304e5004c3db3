package routes

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cloud-compass/compass/backend/internal/server/middleware"
	"github.com/cloud-compass/compass/backend/pkg/insight"
	"github.com/cloud-compass/compass/backend/pkg/logger"
)

// SuggestRelationshipsHandler asks the AI collaborator for potential risk
// relationships from one asset. Suggestions are proposals only: nothing
// is added to the inventory until the user accepts one via
// AcceptSuggestionHandler.
func SuggestRelationshipsHandler(c echo.Context) error {
	type suggestionsResponse struct {
		Message     string               `json:"message,omitempty"`
		AssetID     string               `json:"assetId,omitempty"`
		Suggestions []insight.Suggestion `json:"suggestions,omitempty"`
	}

	id := c.Param("id")
	app := c.(*middleware.AppContext).App

	asset, ok := app.Store.Asset(id)
	if !ok {
		return c.JSON(http.StatusNotFound, suggestionsResponse{
			Message: "Asset not found",
		})
	}

	suggestions, err := app.Analyzer.SuggestRelationships(c.Request().Context(), asset.ID, asset.Metadata)
	if err != nil {
		var reqErr *insight.RequestError
		if errors.As(err, &reqErr) {
			logger.Error("AI suggestions failed", "asset", id, "err", err)
			return c.JSON(http.StatusBadGateway, suggestionsResponse{
				Message: "AI suggestions are unavailable right now",
				AssetID: id,
			})
		}
		logger.Error("AI suggestions failed", "asset", id, "err", err)
		return c.JSON(http.StatusInternalServerError, suggestionsResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, suggestionsResponse{
		AssetID:     asset.ID,
		Suggestions: suggestions,
	})
}
