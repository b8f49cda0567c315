package graph

import "conceptgraph/pkg/common"

// DefaultMinDegree is the default degree threshold for node visibility in
// the visualization projection.
const DefaultMinDegree = 2

// defaultNodeColor is used for concept types absent from TypeColors.
const defaultNodeColor = "#95A5A6"

// TypeColors maps concept types to their rendering color.
var TypeColors = map[common.ConceptType]string{
	common.ConceptTypeObject:     "#4A90D9",
	common.ConceptTypeTheorem:    "#E74C3C",
	common.ConceptTypeConjecture: "#F39C12",
	common.ConceptTypeTechnique:  "#2ECC71",
	common.ConceptTypeIdentity:   "#9B59B6",
	common.ConceptTypeFormula:    "#1ABC9C",
	common.ConceptTypePerson:     "#E67E22",
	common.ConceptTypeDefinition: "#3498DB",
}

// Project filters a graph down to a renderable subset.
//
// A concept's degree counts every edge instance touching it as source or
// target. Nodes with degree >= minDegree are visible; if fewer than 5
// nodes qualify the threshold falls back to 1, and if the set is still
// smaller than 5 every concept is included. Links are kept only when both
// endpoints are visible; links with an excluded endpoint are dropped, not
// rewired.
func Project(graph common.Graph, minDegree int) common.VizData {
	degree := make(map[string]int)
	for _, e := range graph.Edges {
		degree[e.Source]++
		degree[e.Target]++
	}

	keep := visibleSet(graph.Concepts, degree, minDegree)
	if len(keep) < 5 {
		keep = visibleSet(graph.Concepts, degree, 1)
	}
	if len(keep) < 5 {
		keep = make(map[string]bool, len(graph.Concepts))
		for _, c := range graph.Concepts {
			keep[c.CanonicalName] = true
		}
	}

	nodes := make([]common.VizNode, 0, len(keep))
	for _, c := range graph.Concepts {
		if !keep[c.CanonicalName] {
			continue
		}
		color, ok := TypeColors[c.Type]
		if !ok {
			color = defaultNodeColor
		}
		nodes = append(nodes, common.VizNode{
			ID:          c.CanonicalName,
			Label:       c.DisplayName,
			Type:        string(c.Type),
			Documents:   len(c.SourceDocuments),
			Degree:      degree[c.CanonicalName],
			Description: c.Description,
			Color:       color,
		})
	}

	links := make([]common.VizLink, 0, len(graph.Edges))
	for _, e := range graph.Edges {
		if !keep[e.Source] || !keep[e.Target] {
			continue
		}
		detail := ""
		if len(e.Details) > 0 {
			detail = e.Details[0]
		}
		links = append(links, common.VizLink{
			Source:   e.Source,
			Target:   e.Target,
			Relation: string(e.Relation),
			Detail:   detail,
		})
	}

	return common.VizData{Nodes: nodes, Links: links}
}

func visibleSet(concepts []common.Concept, degree map[string]int, minDegree int) map[string]bool {
	keep := make(map[string]bool)
	for _, c := range concepts {
		if degree[c.CanonicalName] >= minDegree {
			keep[c.CanonicalName] = true
		}
	}
	return keep
}
