package server

import (
	"conceptgraph/internal/server/routes"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api")

	apiRoutes.POST("/upload", routes.UploadFilesHandler)
	apiRoutes.GET("/sessions/:id", routes.GetSessionHandler)
	apiRoutes.GET("/graph/:id", routes.GetGraphHandler)
	apiRoutes.GET("/graph/:id/html", routes.GetGraphHTMLHandler)

	e.GET("/ws/:id", routes.ProgressWSHandler)
}
