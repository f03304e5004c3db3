package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/cloud-compass/compass/backend/internal/queue"
	"github.com/cloud-compass/compass/backend/internal/seed"
	mid "github.com/cloud-compass/compass/backend/internal/server/middleware"
	"github.com/cloud-compass/compass/backend/internal/util"
	"github.com/cloud-compass/compass/backend/pkg/insight"
	"github.com/cloud-compass/compass/backend/pkg/inventory"
	"github.com/cloud-compass/compass/backend/pkg/logger"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

func Init() {
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := inventory.NewStore()
	if util.GetEnvBool("SEED_DATA", true) {
		if err := seed.Load(store); err != nil {
			logger.Fatal("Failed to load seed inventory", "err", err)
		}
		assets, rels := store.Counts()
		logger.Info("Loaded seed inventory", "assets", assets, "relationships", rels)
	}

	analyzer := insight.NewAnalyzer(newAIClient(), insight.AnalyzerParams{
		MaxRetries:          int(util.GetEnvNumeric("AI_MAX_RETRIES", 2)),
		MetadataTokenBudget: int(util.GetEnvNumeric("AI_METADATA_TOKENS", 4096)),
	})

	app := &mid.App{
		Store:    store,
		Analyzer: analyzer,
	}

	if conn := queue.Init(); conn != nil {
		defer conn.Close()
		ch, err := conn.Channel()
		if err != nil {
			logger.Fatal("Failed to open channel", "err", err)
		}
		if err := queue.SetupQueues(ch); err != nil {
			logger.Fatal("Failed to declare queues", "err", err)
		}
		app.Queue = ch
	}

	e.Use(mid.AppContextMiddleware(app))
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("64M"))

	RegisterRoutes(e)

	go func() {
		port := util.GetEnvString("PORT", "8080")
		logger.Info("Starting server", "port", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed shutting down server", "err", err)
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown server", "err", err)
	}
}
