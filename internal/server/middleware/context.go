package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rabbitmq/amqp091-go"

	"github.com/cloud-compass/compass/backend/pkg/insight"
	"github.com/cloud-compass/compass/backend/pkg/inventory"
)

// App bundles the shared state every handler needs: the in-memory
// inventory store, the AI analyzer, and the optional event channel.
type App struct {
	Store    *inventory.Store
	Analyzer *insight.Analyzer
	Queue    *amqp091.Channel
}

// AppContext wraps the echo context with application state.
type AppContext struct {
	echo.Context
	App *App
}

// AppContextMiddleware injects the shared application state into every
// request context.
func AppContextMiddleware(app *App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			return next(&AppContext{c, app})
		}
	}
}
