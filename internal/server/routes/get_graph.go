package routes

import (
	"net/http"
	"sort"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cloud-compass/compass/backend/internal/server/middleware"
	"github.com/cloud-compass/compass/backend/pkg/inventory"
	"github.com/cloud-compass/compass/backend/pkg/model"
)

// GetGraphHandler returns the visible subgraph for the current search and
// filter criteria, plus the type/cloud facets the sidebar offers.
func GetGraphHandler(c echo.Context) error {
	type graphResponse struct {
		Assets        []model.Asset        `json:"assets"`
		Relationships []model.Relationship `json:"relationships"`
		AssetTypes    []string             `json:"assetTypes"`
		Clouds        []string             `json:"clouds"`
	}

	criteria := inventory.Criteria{
		Search: c.QueryParam("search"),
		Types:  splitCSV(c.QueryParam("types")),
		Clouds: splitCSV(c.QueryParam("clouds")),
	}

	store := c.(*middleware.AppContext).App.Store
	assets := store.Assets()
	relationships := store.Relationships()

	view := inventory.FilterView(assets, relationships, criteria)

	return c.JSON(http.StatusOK, graphResponse{
		Assets:        view.Assets,
		Relationships: view.Relationships,
		AssetTypes:    facetValues(assets, func(a model.Asset) string { return a.Type }),
		Clouds:        facetValues(assets, func(a model.Asset) string { return a.Cloud }),
	})
}

func splitCSV(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// facetValues collects the distinct non-empty values of one asset field,
// sorted for stable sidebar rendering.
func facetValues(assets []model.Asset, field func(model.Asset) string) []string {
	seen := make(map[string]struct{})
	values := make([]string, 0)
	for _, a := range assets {
		v := field(a)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
