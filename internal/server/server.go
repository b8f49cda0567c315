package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mid "conceptgraph/internal/server/middleware"
	"conceptgraph/internal/session"
	"conceptgraph/internal/util"
	"conceptgraph/pkg/ai"
	oai "conceptgraph/pkg/ai/ollama"
	gai "conceptgraph/pkg/ai/openai"
	"conceptgraph/pkg/graph"
	"conceptgraph/pkg/logger"
	"conceptgraph/pkg/store"
	filestore "conceptgraph/pkg/store/file"
	s3store "conceptgraph/pkg/store/s3"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
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

// Init wires the application together from environment configuration and
// runs the HTTP server until interrupted.
func Init() {
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sessions, err := session.NewStore(int(util.GetEnvNumeric("SESSION_CAPACITY", 1024)))
	if err != nil {
		logger.Fatal("Failed to create session store", "err", err)
	}
	hub, err := session.NewHub()
	if err != nil {
		logger.Fatal("Failed to create progress hub", "err", err)
	}

	graphStore, err := newGraphStore(ctx)
	if err != nil {
		logger.Fatal("Failed to create graph store", "err", err)
	}

	app := &mid.App{
		Sessions: sessions,
		Hub:      hub,
		AiClient: NewAIClient(),
		Store:    graphStore,
		Graph: graph.NewGraphClient(graph.NewGraphClientParams{
			WindowSize:      int(util.GetEnvNumeric("WINDOW_SIZE", 0)),
			WindowOverlap:   int(util.GetEnvNumeric("WINDOW_OVERLAP", 0)),
			WindowsPerDoc:   int(util.GetEnvNumeric("WINDOWS_PER_DOC", 0)),
			TokenEncoder:    util.GetEnv("TOKEN_ENCODER"),
			MaxPromptTokens: int(util.GetEnvNumeric("MAX_PROMPT_TOKENS", 0)),
			ParallelDocs:    int(util.GetEnvNumeric("PARALLEL_DOCS", 2)),
			MaxRetries:      int(util.GetEnvNumeric("MAX_RETRIES", 3)),
		}),
		UploadDir: util.GetEnvString("UPLOAD_DIR", "sessions"),
		MaxFiles:  int(util.GetEnvNumeric("MAX_FILES", 80)),
	}

	e.Use(mid.AppContextMiddleware(app))
	e.Use(middleware.CORS())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("1G"))

	RegisterRoutes(e)

	go func() {
		port := util.GetEnv("PORT")
		if port == "" {
			port = "8080"
		}
		logger.Info("Starting server", "port", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed shutting down server", "err", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shutdown server", "err", err)
	}
}

// NewAIClient selects the model backend via AI_ADAPTER ("openai" or "ollama").
func NewAIClient() ai.GraphAIClient {
	switch util.GetEnv("AI_ADAPTER") {
	case "ollama":
		client, err := oai.NewGraphOllamaClient(oai.NewGraphOllamaClientParams{
			ExtractionModel: util.GetEnvString("AI_EXTRACT_MODEL", "llama3.1"),

			BaseURL: util.GetEnv("AI_CHAT_URL"),
			ApiKey:  util.GetEnv("AI_CHAT_KEY"),

			MaxConcurrentRequests: int64(util.GetEnvNumeric("AI_PARALLEL_REQ", 15)),
		})
		if err != nil {
			logger.Fatal("Failed to create Ollama client", "err", err)
		}
		return client
	default:
		return gai.NewGraphOpenAIClient(gai.NewGraphOpenAIClientParams{
			ExtractionModel: util.GetEnvString("AI_EXTRACT_MODEL", "gpt-4o-mini"),

			ChatURL: util.GetEnv("AI_CHAT_URL"),
			ChatKey: util.GetEnv("AI_CHAT_KEY"),
		})
	}
}

// newGraphStore selects graph persistence via GRAPH_STORE ("file" or "s3").
func newGraphStore(ctx context.Context) (store.GraphStore, error) {
	switch util.GetEnv("GRAPH_STORE") {
	case "s3":
		return s3store.NewS3GraphStore(ctx, s3store.NewS3GraphStoreParams{
			Region:    util.GetEnv("AWS_REGION"),
			Endpoint:  util.GetEnv("AWS_ENDPOINT"),
			AccessKey: util.GetEnv("AWS_ACCESS_KEY"),
			SecretKey: util.GetEnv("AWS_SECRET_KEY"),
			Bucket:    util.GetEnv("AWS_BUCKET"),
			Prefix:    util.GetEnvString("AWS_PREFIX", "graphs"),
		})
	default:
		return filestore.NewFileGraphStore(util.GetEnvString("GRAPH_DIR", "graphs"))
	}
}
