package routes

import (
	"net/http"

	"conceptgraph/internal/server/middleware"
	"conceptgraph/internal/session"
	"conceptgraph/pkg/graph"
	"conceptgraph/pkg/logger"

	"github.com/labstack/echo/v4"
)

// GetGraphHandler returns the visualization projection of a finished
// session's graph. While the session is still processing it answers 202;
// a failed session answers 500 with the recorded error.
func GetGraphHandler(c echo.Context) error {
	type getGraphParams struct {
		MinDegree *int `query:"min_degree" validate:"omitempty,gte=0"`
	}
	type statusResponse struct {
		Status  string `json:"status,omitempty"`
		Message string `json:"message"`
	}

	params := new(getGraphParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, statusResponse{Message: "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, statusResponse{Message: "Invalid request params"})
	}

	app := c.(*middleware.AppContext).App

	sess, ok := app.Sessions.Get(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, statusResponse{
			Message: "Session not found",
		})
	}
	if sess.Status == session.StatusError {
		return c.JSON(http.StatusInternalServerError, statusResponse{
			Message: sess.Error,
		})
	}
	if sess.Status != session.StatusComplete {
		return c.JSON(http.StatusAccepted, statusResponse{
			Status:  string(session.StatusProcessing),
			Message: "Graph not ready yet",
		})
	}

	built, err := app.Store.LoadGraph(c.Request().Context(), sess.ID)
	if err != nil {
		logger.Error("Failed to load graph", "session", sess.ID, "err", err)
		return c.JSON(http.StatusInternalServerError, statusResponse{
			Message: "Failed to load graph",
		})
	}

	return c.JSON(http.StatusOK, graph.Project(built, minDegreeOrDefault(params.MinDegree)))
}

// GetGraphHTMLHandler renders a finished session's graph as a standalone
// interactive HTML page. Status gating matches GetGraphHandler.
func GetGraphHTMLHandler(c echo.Context) error {
	type getGraphHTMLParams struct {
		MinDegree *int   `query:"min_degree" validate:"omitempty,gte=0"`
		Title     string `query:"title"`
	}
	type statusResponse struct {
		Status  string `json:"status,omitempty"`
		Message string `json:"message"`
	}

	params := new(getGraphHTMLParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, statusResponse{Message: "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, statusResponse{Message: "Invalid request params"})
	}

	app := c.(*middleware.AppContext).App

	sess, ok := app.Sessions.Get(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, statusResponse{
			Message: "Session not found",
		})
	}
	if sess.Status == session.StatusError {
		return c.JSON(http.StatusInternalServerError, statusResponse{
			Message: sess.Error,
		})
	}
	if sess.Status != session.StatusComplete {
		return c.JSON(http.StatusAccepted, statusResponse{
			Status:  string(session.StatusProcessing),
			Message: "Graph not ready yet",
		})
	}

	built, err := app.Store.LoadGraph(c.Request().Context(), sess.ID)
	if err != nil {
		logger.Error("Failed to load graph", "session", sess.ID, "err", err)
		return c.JSON(http.StatusInternalServerError, statusResponse{
			Message: "Failed to load graph",
		})
	}

	page, _, _, err := graph.GenerateHTML(built, params.Title, minDegreeOrDefault(params.MinDegree))
	if err != nil {
		logger.Error("Failed to render graph page", "session", sess.ID, "err", err)
		return c.JSON(http.StatusInternalServerError, statusResponse{
			Message: "Failed to render graph",
		})
	}
	return c.HTML(http.StatusOK, page)
}

func minDegreeOrDefault(v *int) int {
	if v == nil {
		return graph.DefaultMinDegree
	}
	return *v
}
