package graph

import (
	"testing"

	"conceptgraph/pkg/common"
)

func vizFixture() common.Graph {
	concepts := []common.Concept{
		{CanonicalName: "hub", DisplayName: "Hub", Type: common.ConceptTypeTheorem, SourceDocuments: []string{"a", "b"}},
		{CanonicalName: "one", DisplayName: "One", Type: common.ConceptTypeObject, SourceDocuments: []string{"a"}},
		{CanonicalName: "two", DisplayName: "Two", Type: common.ConceptTypeObject, SourceDocuments: []string{"a"}},
		{CanonicalName: "three", DisplayName: "Three", Type: common.ConceptTypeObject, SourceDocuments: []string{"b"}},
		{CanonicalName: "lonely", DisplayName: "Lonely", Type: "exotic", SourceDocuments: []string{"b"}},
	}
	edges := []common.Edge{
		{Source: "hub", Target: "one", Relation: "uses", Details: []string{"hub applies one"}},
		{Source: "hub", Target: "two", Relation: "uses"},
		{Source: "hub", Target: "three", Relation: "proves"},
	}
	return common.Graph{Concepts: concepts, Edges: edges}
}

func TestProjectFallsBackBelowFiveNodes(t *testing.T) {
	// Only "hub" has degree >= 2, and only four nodes have degree >= 1,
	// so both thresholds underfill and every concept is included.
	got := Project(vizFixture(), DefaultMinDegree)

	if len(got.Nodes) != 5 {
		t.Fatalf("Project() returned %d nodes, want all 5 via fallback", len(got.Nodes))
	}
	if len(got.Links) != 3 {
		t.Errorf("Project() returned %d links, want 3", len(got.Links))
	}
}

func TestProjectDegreeThreshold(t *testing.T) {
	graph := vizFixture()
	// Densify until exactly five nodes clear minDegree 2; "five" (degree 1)
	// and "lonely" (degree 0) stay below it, so no fallback fires.
	graph.Concepts = append(graph.Concepts,
		common.Concept{CanonicalName: "four", DisplayName: "Four", Type: common.ConceptTypeObject},
		common.Concept{CanonicalName: "five", DisplayName: "Five", Type: common.ConceptTypeObject},
	)
	graph.Edges = append(graph.Edges,
		common.Edge{Source: "one", Target: "two", Relation: "related_to"},
		common.Edge{Source: "two", Target: "three", Relation: "related_to"},
		common.Edge{Source: "three", Target: "four", Relation: "related_to"},
		common.Edge{Source: "four", Target: "hub", Relation: "related_to"},
		common.Edge{Source: "five", Target: "hub", Relation: "related_to"},
	)

	got := Project(graph, 2)

	for _, n := range got.Nodes {
		if n.Degree < 2 {
			t.Errorf("node %q has degree %d, want >= 2", n.ID, n.Degree)
		}
	}
	if len(got.Nodes) != 5 {
		t.Errorf("Project() returned %d nodes, want the 5 with degree >= 2", len(got.Nodes))
	}
	for _, l := range got.Links {
		if l.Source == "five" || l.Target == "five" || l.Source == "lonely" || l.Target == "lonely" {
			t.Errorf("link %v touches an excluded node", l)
		}
	}
}

func TestProjectMiddleTierExcludesIsolatedNodes(t *testing.T) {
	// No node reaches degree 2, but six reach degree 1, so the fallback
	// stops at threshold 1 and the isolated concept stays hidden.
	graph := common.Graph{
		Concepts: []common.Concept{
			{CanonicalName: "a"}, {CanonicalName: "b"},
			{CanonicalName: "c"}, {CanonicalName: "d"},
			{CanonicalName: "e"}, {CanonicalName: "f"},
			{CanonicalName: "isolated"},
		},
		Edges: []common.Edge{
			{Source: "a", Target: "b", Relation: "related_to"},
			{Source: "c", Target: "d", Relation: "related_to"},
			{Source: "e", Target: "f", Relation: "related_to"},
		},
	}

	got := Project(graph, 2)

	if len(got.Nodes) != 6 {
		t.Fatalf("Project() returned %d nodes, want the 6 with degree >= 1", len(got.Nodes))
	}
	for _, n := range got.Nodes {
		if n.ID == "isolated" {
			t.Error("degree-0 node included, want it excluded at threshold 1")
		}
	}
	if len(got.Links) != 3 {
		t.Errorf("Project() returned %d links, want 3", len(got.Links))
	}
}

func TestProjectNodeAttributes(t *testing.T) {
	got := Project(vizFixture(), DefaultMinDegree)

	byID := make(map[string]common.VizNode)
	for _, n := range got.Nodes {
		byID[n.ID] = n
	}

	hub := byID["hub"]
	if hub.Degree != 3 {
		t.Errorf("hub degree = %d, want 3", hub.Degree)
	}
	if hub.Documents != 2 {
		t.Errorf("hub documents = %d, want 2", hub.Documents)
	}
	if want := TypeColors[common.ConceptTypeTheorem]; hub.Color != want {
		t.Errorf("hub color = %q, want %q", hub.Color, want)
	}
	// Unknown type falls back to the neutral color.
	if byID["lonely"].Color != defaultNodeColor {
		t.Errorf("unknown-type color = %q, want %q", byID["lonely"].Color, defaultNodeColor)
	}
}

func TestProjectLinkDetail(t *testing.T) {
	got := Project(vizFixture(), DefaultMinDegree)

	details := make(map[string]string)
	for _, l := range got.Links {
		details[l.Source+"/"+l.Target] = l.Detail
	}
	if details["hub/one"] != "hub applies one" {
		t.Errorf("link detail = %q, want first stored detail", details["hub/one"])
	}
	if details["hub/two"] != "" {
		t.Errorf("link detail = %q, want empty for detail-less edge", details["hub/two"])
	}
}

func TestProjectEmptyGraph(t *testing.T) {
	got := Project(common.Graph{}, DefaultMinDegree)
	if len(got.Nodes) != 0 || len(got.Links) != 0 {
		t.Errorf("Project(empty) = %d nodes, %d links, want empty", len(got.Nodes), len(got.Links))
	}
}
