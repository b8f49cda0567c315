package graph

import (
	"sort"
	"time"

	"conceptgraph/pkg/common"
)

type edgeKey struct {
	source   string
	target   string
	relation common.RelationType
}

// Build deduplicates edge candidates and assembles the durable graph
// artifact. Candidates sharing the same (source, target, relation) triple
// collapse into one edge whose details list holds each distinct non-empty
// detail in first-seen order, and whose source documents are the union of
// the contributing documents in first-seen order.
//
// Aside from the created timestamp, Build is deterministic given its
// inputs: concepts are emitted in canonical-name order and edges in
// first-seen candidate order.
func Build(concepts map[string]common.Concept, candidates []common.EdgeCandidate) common.Graph {
	seen := make(map[edgeKey]int)
	edges := make([]common.Edge, 0)

	for _, c := range candidates {
		key := edgeKey{source: c.Source, target: c.Target, relation: c.Relation}
		idx, ok := seen[key]
		if !ok {
			edge := common.Edge{
				Source:          c.Source,
				Target:          c.Target,
				Relation:        c.Relation,
				Details:         []string{},
				SourceDocuments: []string{c.Document},
			}
			if c.Detail != "" {
				edge.Details = append(edge.Details, c.Detail)
			}
			seen[key] = len(edges)
			edges = append(edges, edge)
			continue
		}

		edge := edges[idx]
		if c.Detail != "" && !containsString(edge.Details, c.Detail) {
			edge.Details = append(edge.Details, c.Detail)
		}
		if !containsString(edge.SourceDocuments, c.Document) {
			edge.SourceDocuments = append(edge.SourceDocuments, c.Document)
		}
		edges[idx] = edge
	}

	conceptList := make([]common.Concept, 0, len(concepts))
	for _, concept := range concepts {
		conceptList = append(conceptList, concept)
	}
	sort.Slice(conceptList, func(i, j int) bool {
		return conceptList[i].CanonicalName < conceptList[j].CanonicalName
	})

	documents := make(map[string]bool)
	for _, concept := range conceptList {
		for _, doc := range concept.SourceDocuments {
			documents[doc] = true
		}
	}

	return common.Graph{
		Metadata: common.GraphMetadata{
			Created:        time.Now().Format("2006-01-02 15:04:05"),
			TotalConcepts:  len(conceptList),
			TotalEdges:     len(edges),
			TotalDocuments: len(documents),
		},
		Concepts: conceptList,
		Edges:    edges,
	}
}
