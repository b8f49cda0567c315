package routes

import (
	"net/http"

	"conceptgraph/internal/server/middleware"

	"github.com/labstack/echo/v4"
)

// GetSessionHandler returns the current state of an upload session.
func GetSessionHandler(c echo.Context) error {
	type errorResponse struct {
		Message string `json:"message"`
	}

	app := c.(*middleware.AppContext).App

	sess, ok := app.Sessions.Get(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, errorResponse{
			Message: "Session not found",
		})
	}
	return c.JSON(http.StatusOK, sess)
}
