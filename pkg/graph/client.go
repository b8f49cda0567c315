package graph

import (
	"conceptgraph/pkg/normalize"
	"conceptgraph/pkg/segment"
)

// GraphClient is the main client for building concept graphs from
// documents. It manages windowing parameters, token budgeting, and
// processing parallelism.
//
// A GraphClient should be created using NewGraphClient.
type GraphClient struct {
	windowSize    int
	windowOverlap int
	windowsPerDoc int

	tokenEncoder    string
	maxPromptTokens int

	parallelDocs int
	maxRetries   int

	normalizer *normalize.Normalizer
}

// NewGraphClientParams defines the configuration parameters for creating
// a new GraphClient.
//
// WindowSize and WindowOverlap control segmentation; WindowsPerDoc caps
// how many windows per document are sent to the model. TokenEncoder names
// the tiktoken encoding used for prompt budgeting, and MaxPromptTokens
// caps the extraction prompt length. Synonyms overrides the default
// synonym table for name normalization.
type NewGraphClientParams struct {
	WindowSize    int
	WindowOverlap int
	WindowsPerDoc int

	TokenEncoder    string
	MaxPromptTokens int

	ParallelDocs int
	MaxRetries   int

	Synonyms map[string]string
}

// NewGraphClient creates and returns a new GraphClient configured with
// the provided parameters. Zero values fall back to defaults.
//
// Example:
//
//	client := graph.NewGraphClient(graph.NewGraphClientParams{
//		TokenEncoder: "o200k_base",
//		ParallelDocs: 2,
//	})
func NewGraphClient(params NewGraphClientParams) *GraphClient {
	windowSize := params.WindowSize
	if windowSize <= 0 {
		windowSize = segment.DefaultWindowSize
	}
	windowOverlap := params.WindowOverlap
	if windowOverlap <= 0 {
		windowOverlap = segment.DefaultOverlap
	}
	windowsPerDoc := params.WindowsPerDoc
	if windowsPerDoc <= 0 {
		windowsPerDoc = DefaultWindowsPerDoc
	}
	tokenEncoder := params.TokenEncoder
	if tokenEncoder == "" {
		tokenEncoder = "o200k_base"
	}
	maxPromptTokens := params.MaxPromptTokens
	if maxPromptTokens <= 0 {
		maxPromptTokens = DefaultMaxPromptTokens
	}
	parallelDocs := params.ParallelDocs
	if parallelDocs <= 0 {
		parallelDocs = 2
	}
	maxRetries := params.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}
	synonyms := params.Synonyms
	if synonyms == nil {
		synonyms = normalize.DefaultSynonyms
	}

	return &GraphClient{
		windowSize:    windowSize,
		windowOverlap: windowOverlap,
		windowsPerDoc: windowsPerDoc,

		tokenEncoder:    tokenEncoder,
		maxPromptTokens: maxPromptTokens,

		parallelDocs: parallelDocs,
		maxRetries:   maxRetries,

		normalizer: normalize.NewNormalizer(synonyms),
	}
}
