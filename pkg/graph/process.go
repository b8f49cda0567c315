package graph

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"conceptgraph/internal/util"
	"conceptgraph/pkg/ai"
	"conceptgraph/pkg/common"
	"conceptgraph/pkg/loader"
	"conceptgraph/pkg/logger"
	"conceptgraph/pkg/segment"
	"conceptgraph/pkg/store"

	"github.com/pkoukk/tiktoken-go"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultWindowsPerDoc caps the windows sent to the model per document
	// (first half and last half, so intro and conclusion are both covered).
	DefaultWindowsPerDoc = 4
	// DefaultMaxPromptTokens caps the extraction prompt length.
	DefaultMaxPromptTokens = 8000
)

// Progress stages reported during BuildGraph.
const (
	StageIngesting  = "ingesting"
	StageExtracting = "extracting"
	StageBuilding   = "building"
	StageComplete   = "complete"
)

// ProgressFunc receives build progress updates. Percent runs 0-100 across
// the whole build; detail is a human-readable note about the current step.
type ProgressFunc func(stage string, percent int, detail string)

// BuildGraph runs the full pipeline over the given documents: page
// extraction, segmentation, concurrent concept extraction, merging, edge
// deduplication, and persistence under key via storeClient.
//
// Documents whose extraction keeps failing after retries contribute an
// empty extraction instead of failing the build; unreadable documents are
// skipped the same way. onProgress may be nil.
func (g *GraphClient) BuildGraph(
	ctx context.Context,
	docs []loader.Document,
	key string,
	aiClient ai.GraphAIClient,
	storeClient store.GraphStore,
	onProgress ProgressFunc,
) (common.Graph, error) {
	if onProgress == nil {
		onProgress = func(string, int, string) {}
	}

	logger.Info("[Graph] Processing", "total_docs", len(docs), "key", key)
	onProgress(StageIngesting, 0, fmt.Sprintf("Reading %d documents", len(docs)))

	type docWindows struct {
		doc  loader.Document
		text string
	}

	prepared := make([]docWindows, 0, len(docs))
	for i, doc := range docs {
		if ctx.Err() != nil {
			return common.Graph{}, ctx.Err()
		}

		pages, err := doc.GetPages(ctx)
		if err != nil {
			logger.Warn("[Graph] Skipping unreadable document", "doc", doc.Name, "error", err)
			continue
		}
		windows, err := segment.Segment(pages, g.windowSize, g.windowOverlap)
		if err != nil {
			return common.Graph{}, fmt.Errorf("failed to segment %s: %w", doc.Name, err)
		}
		if len(windows) == 0 {
			logger.Warn("[Graph] No usable text", "doc", doc.Name)
			continue
		}

		selected := selectRepresentativeWindows(windows, g.windowsPerDoc)
		text, err := g.truncateToBudget(joinWindows(selected))
		if err != nil {
			return common.Graph{}, err
		}
		prepared = append(prepared, docWindows{doc: doc, text: text})

		onProgress(StageIngesting, scaled(0, 33, i+1, len(docs)), fmt.Sprintf("Read %s", doc.Name))
	}

	if len(prepared) == 0 {
		return common.Graph{}, fmt.Errorf("no text could be extracted from the provided documents")
	}

	onProgress(StageExtracting, 33, fmt.Sprintf("Extracting concepts from %d documents", len(prepared)))

	extractions := make(map[string]common.Extraction, len(prepared))
	var (
		mergeMu sync.Mutex
		done    int
	)

	eg, gCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.parallelDocs)
	for _, p := range prepared {
		p := p
		eg.Go(func() error {
			select {
			case <-gCtx.Done():
				return gCtx.Err()
			default:
			}

			extraction, err := util.RetryWithContext(gCtx, g.maxRetries, func(ctx context.Context) (common.Extraction, error) {
				return extractFromDocument(ctx, p.doc.Name, p.text, aiClient)
			})
			if err != nil {
				if gCtx.Err() != nil {
					return gCtx.Err()
				}
				logger.Error("[Graph] Extraction failed", "doc", p.doc.Name, "error", err)
				extraction = common.Extraction{}
			}

			mergeMu.Lock()
			extractions[p.doc.ID] = extraction
			done++
			onProgress(StageExtracting, scaled(33, 67, done, len(prepared)), fmt.Sprintf("Extracted %s", p.doc.Name))
			mergeMu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return common.Graph{}, fmt.Errorf("failed to extract concepts:\n%w", err)
	}

	onProgress(StageBuilding, 67, "Merging concepts")

	concepts, candidates := Merge(extractions, g.normalizer)
	graph := Build(concepts, candidates)

	onProgress(StageBuilding, 90, "Saving graph")

	if storeClient != nil {
		if err := storeClient.SaveGraph(ctx, key, graph); err != nil {
			return common.Graph{}, fmt.Errorf("failed to save graph: %w", err)
		}
	}

	logger.Info("[Graph] Build completed",
		"concepts", graph.Metadata.TotalConcepts,
		"edges", graph.Metadata.TotalEdges,
		"documents", graph.Metadata.TotalDocuments,
	)
	onProgress(StageComplete, 100, "Graph build completed")

	return graph, nil
}

// selectRepresentativeWindows picks the first and last windows of a
// document (intro and conclusion). Documents with at most maxWindows
// windows are used in full.
func selectRepresentativeWindows(windows []common.TextWindow, maxWindows int) []common.TextWindow {
	if len(windows) <= maxWindows {
		return windows
	}
	half := maxWindows / 2
	selected := make([]common.TextWindow, 0, maxWindows)
	selected = append(selected, windows[:half]...)
	selected = append(selected, windows[len(windows)-half:]...)
	return selected
}

func joinWindows(windows []common.TextWindow) string {
	texts := make([]string, 0, len(windows))
	for _, w := range windows {
		texts = append(texts, w.Text)
	}
	return strings.Join(texts, "\n\n---\n\n")
}

// truncateToBudget cuts the text down to the configured prompt token
// budget using the client's tiktoken encoding.
func (g *GraphClient) truncateToBudget(text string) (string, error) {
	enc, err := tiktoken.GetEncoding(g.tokenEncoder)
	if err != nil {
		return "", fmt.Errorf("failed to load token encoder %s: %w", g.tokenEncoder, err)
	}
	tokens := enc.Encode(text, nil, nil)
	if len(tokens) <= g.maxPromptTokens {
		return text, nil
	}
	return enc.Decode(tokens[:g.maxPromptTokens]), nil
}

func scaled(from, to, done, total int) int {
	if total <= 0 {
		return to
	}
	return from + (to-from)*done/total
}
