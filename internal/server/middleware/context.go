package middleware

import (
	"conceptgraph/internal/session"
	"conceptgraph/pkg/ai"
	"conceptgraph/pkg/graph"
	"conceptgraph/pkg/store"

	"github.com/labstack/echo/v4"
)

// App bundles the long-lived dependencies handlers need.
type App struct {
	Sessions *session.Store
	Hub      *session.Hub
	AiClient ai.GraphAIClient
	Store    store.GraphStore
	Graph    *graph.GraphClient

	UploadDir string
	MaxFiles  int
}

// AppContext wraps the echo context with application state.
type AppContext struct {
	echo.Context
	App *App
}

// AppContextMiddleware attaches the shared App to every request context.
func AppContextMiddleware(app *App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &AppContext{c, app}
			return next(cc)
		}
	}
}
