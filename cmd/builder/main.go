package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"conceptgraph/internal/server"
	"conceptgraph/internal/util"
	"conceptgraph/pkg/graph"
	"conceptgraph/pkg/loader"
	loaderio "conceptgraph/pkg/loader/io"
	"conceptgraph/pkg/loader/pdf"
	"conceptgraph/pkg/loader/text"
	"conceptgraph/pkg/logger"
	"conceptgraph/pkg/logger/console"
	"conceptgraph/pkg/store/file"
)

// builder ingests a directory of papers and writes the graph JSON plus an
// interactive HTML visualization next to it.
func main() {
	var (
		dir       = flag.String("dir", "", "directory containing the source documents")
		out       = flag.String("out", "", "output directory (defaults to the source directory)")
		name      = flag.String("name", "knowledge_graph", "base name of the output artifacts")
		title     = flag.String("title", "Concept Graph", "title of the HTML visualization")
		minDegree = flag.Int("min-degree", graph.DefaultMinDegree, "minimum node degree for the visualization")

		windowSize    = flag.Int("window-size", 0, "segmentation window size in characters (0 = default)")
		windowOverlap = flag.Int("overlap", 0, "overlap between windows in characters (0 = default)")
	)
	flag.Parse()

	util.LoadEnv()
	logger.Init(console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: util.GetEnvBool("DEBUG", false),
	}))

	if *dir == "" {
		logger.Fatal("Missing required -dir flag")
	}
	outDir := *out
	if outDir == "" {
		outDir = *dir
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	docs, err := collectDocuments(*dir)
	if err != nil {
		logger.Fatal("Failed to scan directory", "dir", *dir, "err", err)
	}
	if len(docs) == 0 {
		logger.Fatal("No supported documents found", "dir", *dir)
	}
	logger.Info("Building graph", "documents", len(docs), "dir", *dir)

	storeClient, err := file.NewFileGraphStore(outDir)
	if err != nil {
		logger.Fatal("Failed to create output store", "err", err)
	}

	client := graph.NewGraphClient(graph.NewGraphClientParams{
		WindowSize:    *windowSize,
		WindowOverlap: *windowOverlap,
		ParallelDocs:  int(util.GetEnvNumeric("PARALLEL_DOCS", 2)),
		MaxRetries:    int(util.GetEnvNumeric("MAX_RETRIES", 3)),
	})

	aiClient := server.NewAIClient()
	built, err := client.BuildGraph(ctx, docs, *name, aiClient, storeClient, func(stage string, percent int, detail string) {
		logger.Info("Progress", "stage", stage, "percent", percent, "detail", detail)
	})
	if err != nil {
		logger.Fatal("Graph build failed", "err", err)
	}

	page, nodes, links, err := graph.GenerateHTML(built, *title, *minDegree)
	if err != nil {
		logger.Fatal("Failed to render visualization", "err", err)
	}
	htmlPath := filepath.Join(outDir, *name+".html")
	if err := os.WriteFile(htmlPath, []byte(page), 0o644); err != nil {
		logger.Fatal("Failed to write visualization", "path", htmlPath, "err", err)
	}

	metrics := aiClient.GetMetrics()
	logger.Info("Graph build completed",
		"concepts", built.Metadata.TotalConcepts,
		"edges", built.Metadata.TotalEdges,
		"viz_nodes", nodes,
		"viz_links", links,
		"tokens", metrics.TotalTokens,
		"html", htmlPath,
	)
}

func collectDocuments(dir string) ([]loader.Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	fileLoader := loaderio.NewIOGraphFileLoader()
	pdfLoader := pdf.NewPDFGraphLoader(fileLoader)
	textLoader := text.NewTextGraphLoader(fileLoader, 0)

	docs := make([]loader.Document, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !loader.Supported(entry.Name()) {
			continue
		}
		var pages loader.GraphPageLoader = textLoader
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			pages = pdfLoader
		}
		docs = append(docs, loader.NewDocument(loader.NewDocumentParams{
			ID:       entry.Name(),
			Name:     entry.Name(),
			FilePath: filepath.Join(dir, entry.Name()),
			Loader:   pages,
		}))
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })
	return docs, nil
}
