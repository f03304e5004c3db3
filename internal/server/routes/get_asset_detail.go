package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cloud-compass/compass/backend/internal/server/middleware"
	"github.com/cloud-compass/compass/backend/pkg/inventory"
)

// GetAssetDetailHandler resolves the detail view for one asset: the asset
// itself plus its incident relationships, partitioned into outgoing and
// incoming and paired with the resolved other assets.
func GetAssetDetailHandler(c echo.Context) error {
	type detailResponse struct {
		Message string            `json:"message,omitempty"`
		Detail  *inventory.Detail `json:"detail,omitempty"`
	}

	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, detailResponse{
			Message: "Missing asset id",
		})
	}

	store := c.(*middleware.AppContext).App.Store
	detail, ok := inventory.DeriveDetail(store.Assets(), store.Relationships(), id)
	if !ok {
		return c.JSON(http.StatusNotFound, detailResponse{
			Message: "Asset not found",
		})
	}

	return c.JSON(http.StatusOK, detailResponse{Detail: &detail})
}
