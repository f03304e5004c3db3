package routes

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/cloud-compass/compass/backend/internal/queue"
	"github.com/cloud-compass/compass/backend/internal/server/middleware"
	"github.com/cloud-compass/compass/backend/pkg/logger"
	"github.com/cloud-compass/compass/backend/pkg/model"
)

// AcceptSuggestionHandler turns one accepted AI suggestion into a stored
// relationship. Each acceptance creates exactly one relationship with a
// freshly generated id and ai provenance; the endpoints are not required
// to resolve in the current inventory since dangling edges are tolerated.
func AcceptSuggestionHandler(c echo.Context) error {
	type acceptSuggestionBody struct {
		FromAssetID      string `json:"fromAssetId" validate:"required"`
		ToAssetID        string `json:"toAssetId" validate:"required"`
		RelationshipType string `json:"relationshipType" validate:"required"`
	}

	type acceptSuggestionResponse struct {
		Message      string              `json:"message"`
		Relationship *model.Relationship `json:"relationship,omitempty"`
	}

	data := new(acceptSuggestionBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, acceptSuggestionResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, acceptSuggestionResponse{
			Message: "Invalid request body",
		})
	}

	relID, err := gonanoid.New()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, acceptSuggestionResponse{
			Message: "Internal server error",
		})
	}

	rel := model.Relationship{
		ID:           "rel-ai-" + relID,
		From:         data.FromAssetID,
		To:           data.ToAssetID,
		Type:         data.RelationshipType,
		DiscoveredBy: model.DiscoveredByAI,
		CreatedAt:    time.Now().UTC(),
	}

	app := c.(*middleware.AppContext).App
	app.Store.AppendRelationship(rel)

	logger.Info("Accepted AI suggestion", "from", rel.From, "to", rel.To, "type", rel.Type)
	queue.PublishEvent(app.Queue, queue.Event{
		Kind:       queue.EventRelationshipAdded,
		AssetID:    rel.From,
		RelationID: rel.ID,
	})

	return c.JSON(http.StatusCreated, acceptSuggestionResponse{
		Message:      "Relationship added",
		Relationship: &rel,
	})
}
