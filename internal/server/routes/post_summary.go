package routes

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cloud-compass/compass/backend/internal/server/middleware"
	"github.com/cloud-compass/compass/backend/pkg/insight"
	"github.com/cloud-compass/compass/backend/pkg/logger"
)

// SummarizeAssetHandler generates an AI security summary for one asset.
// The response always names the asset the summary was computed for, so a
// client that switched selection while the request was in flight can
// discard the stale reply (last request wins by id comparison).
func SummarizeAssetHandler(c echo.Context) error {
	type summaryResponse struct {
		Message string `json:"message,omitempty"`
		AssetID string `json:"assetId,omitempty"`
		Summary string `json:"summary,omitempty"`
	}

	id := c.Param("id")
	app := c.(*middleware.AppContext).App

	asset, ok := app.Store.Asset(id)
	if !ok {
		return c.JSON(http.StatusNotFound, summaryResponse{
			Message: "Asset not found",
		})
	}

	summary, err := app.Analyzer.SummarizeAsset(c.Request().Context(), asset)
	if err != nil {
		var reqErr *insight.RequestError
		if errors.As(err, &reqErr) {
			logger.Error("AI summary failed", "asset", id, "err", err)
			return c.JSON(http.StatusBadGateway, summaryResponse{
				Message: "AI summary is unavailable right now",
				AssetID: id,
			})
		}
		logger.Error("AI summary failed", "asset", id, "err", err)
		return c.JSON(http.StatusInternalServerError, summaryResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, summaryResponse{
		AssetID: asset.ID,
		Summary: summary,
	})
}
