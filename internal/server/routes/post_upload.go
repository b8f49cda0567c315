package routes

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"conceptgraph/internal/server/middleware"
	"conceptgraph/internal/session"
	"conceptgraph/pkg/graph"
	"conceptgraph/pkg/loader"
	loaderio "conceptgraph/pkg/loader/io"
	"conceptgraph/pkg/loader/pdf"
	"conceptgraph/pkg/loader/text"
	"conceptgraph/pkg/logger"

	"github.com/labstack/echo/v4"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// UploadFilesHandler accepts a multipart batch of documents, registers a
// session, and kicks off graph construction in the background.
func UploadFilesHandler(c echo.Context) error {
	type uploadResponse struct {
		Message   string `json:"message,omitempty"`
		SessionID string `json:"session_id,omitempty"`
		Status    string `json:"status,omitempty"`
		FileCount int    `json:"file_count,omitempty"`
	}

	app := c.(*middleware.AppContext).App

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
	if len(uploads) > app.MaxFiles {
		return c.JSON(http.StatusBadRequest, uploadResponse{
			Message: fmt.Sprintf("Too many files (%d). Maximum is %d.", len(uploads), app.MaxFiles),
		})
	}

	type upload struct {
		name  string
		index int
	}
	valid := make([]upload, 0, len(uploads))
	seen := make(map[string]bool)
	for i, f := range uploads {
		name, ok := sanitizeFilename(f.Filename)
		if !ok || !loader.Supported(name) || seen[name] {
			continue
		}
		seen[name] = true
		valid = append(valid, upload{name: name, index: i})
	}
	if len(valid) == 0 {
		return c.JSON(http.StatusBadRequest, uploadResponse{
			Message: "No supported files found. Accepted types: PDF, TXT, MD",
		})
	}

	sessionID, err := gonanoid.New()
	if err != nil {
		logger.Error("Failed to generate session ID", "err", err)
		return c.JSON(http.StatusInternalServerError, uploadResponse{
			Message: "Internal server error",
		})
	}

	filesDir := filepath.Join(app.UploadDir, sessionID, "files")
	if err := os.MkdirAll(filesDir, 0o755); err != nil {
		logger.Error("Failed to create session dir", "err", err)
		return c.JSON(http.StatusInternalServerError, uploadResponse{
			Message: "Internal server error",
		})
	}

	names := make([]string, 0, len(valid))
	for _, v := range valid {
		if err := saveUpload(uploads[v.index], filepath.Join(filesDir, v.name)); err != nil {
			logger.Error("Failed to save upload", "file", v.name, "err", err)
			return c.JSON(http.StatusInternalServerError, uploadResponse{
				Message: "Internal server error",
			})
		}
		names = append(names, v.name)
	}

	app.Sessions.Put(&session.Session{
		ID:        sessionID,
		Status:    session.StatusProcessing,
		Files:     names,
		FileCount: len(names),
		CreatedAt: time.Now(),
	})

	go processSession(app, sessionID, buildDocuments(filesDir, names))

	return c.JSON(http.StatusOK, uploadResponse{
		SessionID: sessionID,
		Status:    string(session.StatusProcessing),
		FileCount: len(names),
	})
}

// sanitizeFilename strips any directory components and rejects hidden or
// empty names.
func sanitizeFilename(name string) (string, bool) {
	name = filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == ".." || strings.HasPrefix(name, ".") {
		return "", false
	}
	return name, true
}

func saveUpload(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, src)
	return err
}

// buildDocuments pairs each saved file with the page loader matching its
// extension.
func buildDocuments(filesDir string, names []string) []loader.Document {
	fileLoader := loaderio.NewIOGraphFileLoader()
	pdfLoader := pdf.NewPDFGraphLoader(fileLoader)
	textLoader := text.NewTextGraphLoader(fileLoader, 0)

	docs := make([]loader.Document, 0, len(names))
	for _, name := range names {
		var pages loader.GraphPageLoader = textLoader
		if strings.EqualFold(filepath.Ext(name), ".pdf") {
			pages = pdfLoader
		}
		docs = append(docs, loader.NewDocument(loader.NewDocumentParams{
			ID:       name,
			Name:     name,
			FilePath: filepath.Join(filesDir, name),
			Loader:   pages,
		}))
	}
	return docs
}

// processSession runs the pipeline for one session, relaying progress to
// websocket subscribers and recording the terminal state.
func processSession(app *middleware.App, sessionID string, docs []loader.Document) {
	ctx := context.Background()

	onProgress := func(stage string, percent int, detail string) {
		if stage == graph.StageComplete {
			return
		}
		app.Hub.Publish(sessionID, session.Event{
			Type:    "progress",
			Stage:   stage,
			Percent: percent,
			Detail:  detail,
		})
	}

	_, err := app.Graph.BuildGraph(ctx, docs, sessionID, app.AiClient, app.Store, onProgress)
	if err != nil {
		logger.Error("Session processing failed", "session", sessionID, "err", err)
		app.Sessions.SetStatus(sessionID, session.StatusError, err.Error())
		app.Hub.Publish(sessionID, session.Event{Type: "error", Message: err.Error()})
		return
	}

	app.Sessions.SetStatus(sessionID, session.StatusComplete, "")
	app.Hub.Publish(sessionID, session.Event{
		Type:     "complete",
		Percent:  100,
		GraphURL: "/api/graph/" + sessionID,
	})
}
