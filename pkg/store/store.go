package store

import (
	"context"

	"conceptgraph/pkg/common"
)

// GraphStore persists built graphs as JSON artifacts keyed by an opaque
// identifier (typically the session or collection name).
type GraphStore interface {
	SaveGraph(ctx context.Context, key string, graph common.Graph) error
	LoadGraph(ctx context.Context, key string) (common.Graph, error)
}
