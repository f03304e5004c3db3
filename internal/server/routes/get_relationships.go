package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cloud-compass/compass/backend/internal/server/middleware"
	"github.com/cloud-compass/compass/backend/pkg/model"
)

// GetRelationshipsHandler returns the full relationship list in store
// order, including edges whose endpoints are not currently present.
func GetRelationshipsHandler(c echo.Context) error {
	type relationshipsResponse struct {
		Relationships []model.Relationship `json:"relationships"`
	}

	store := c.(*middleware.AppContext).App.Store
	return c.JSON(http.StatusOK, relationshipsResponse{
		Relationships: store.Relationships(),
	})
}
