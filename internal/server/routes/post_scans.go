package routes

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cloud-compass/compass/backend/internal/queue"
	"github.com/cloud-compass/compass/backend/internal/server/middleware"
	"github.com/cloud-compass/compass/backend/pkg/inventory"
	"github.com/cloud-compass/compass/backend/pkg/logger"
	"github.com/cloud-compass/compass/backend/pkg/scan"
)

// UploadScanHandler ingests one or more uploaded scan documents
// (multipart/form-data, field "files"). Parsing, validation, and the
// store merge are all-or-nothing: any malformed document or element
// rejects the whole upload and leaves the inventory untouched.
func UploadScanHandler(c echo.Context) error {
	type uploadResponse struct {
		Message  string `json:"message"`
		Ingested int    `json:"ingested,omitempty"`
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, uploadResponse{
			Message: "Invalid request body",
		})
	}
	uploads := form.File["files"]
	if len(uploads) == 0 {
		return c.JSON(http.StatusBadRequest, uploadResponse{
			Message: "No files provided",
		})
	}

	docs := make([]scan.Document, 0, len(uploads))
	for _, file := range uploads {
		src, err := file.Open()
		if err != nil {
			return c.JSON(http.StatusBadRequest, uploadResponse{
				Message: "Could not open file",
			})
		}
		defer src.Close()
		docs = append(docs, scan.Document{Name: file.Filename, Reader: src})
	}

	ctx := c.Request().Context()
	assets, err := scan.ParseAll(ctx, docs)
	if err != nil {
		var formatErr *scan.FormatError
		var readErr *scan.FileReadError
		switch {
		case errors.As(err, &formatErr):
			return c.JSON(http.StatusBadRequest, uploadResponse{
				Message: formatErr.Error(),
			})
		case errors.As(err, &readErr):
			return c.JSON(http.StatusBadRequest, uploadResponse{
				Message: readErr.Error(),
			})
		default:
			logger.Error("Failed to parse scan upload", "err", err)
			return c.JSON(http.StatusInternalServerError, uploadResponse{
				Message: "Internal server error",
			})
		}
	}

	app := c.(*middleware.AppContext).App
	if err := app.Store.Ingest(assets); err != nil {
		var verr *inventory.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, uploadResponse{
				Message: verr.Error(),
			})
		}
		logger.Error("Failed to ingest scan upload", "err", err)
		return c.JSON(http.StatusInternalServerError, uploadResponse{
			Message: "Internal server error",
		})
	}

	logger.Info("Ingested scan upload", "files", len(uploads), "assets", len(assets))
	queue.PublishEvent(app.Queue, queue.Event{
		Kind:       queue.EventAssetsIngested,
		AssetCount: len(assets),
	})

	return c.JSON(http.StatusOK, uploadResponse{
		Message:  "Scan data ingested successfully",
		Ingested: len(assets),
	})
}
