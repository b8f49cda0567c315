package graph

import (
	"strings"
	"testing"
)

func TestGenerateHTML(t *testing.T) {
	html, nodes, links, err := GenerateHTML(vizFixture(), "Partition Theory", DefaultMinDegree)
	if err != nil {
		t.Fatalf("GenerateHTML() error = %v", err)
	}
	if nodes != 5 || links != 3 {
		t.Errorf("GenerateHTML() = %d nodes, %d links, want 5 and 3", nodes, links)
	}
	if !strings.Contains(html, "<title>Partition Theory</title>") {
		t.Error("rendered page missing title")
	}
	if !strings.Contains(html, `"id":"hub"`) {
		t.Error("rendered page missing embedded graph data")
	}
	if !strings.Contains(html, `d3.forceSimulation`) {
		t.Error("rendered page missing D3 setup")
	}
}

func TestGenerateHTMLDefaultTitle(t *testing.T) {
	html, _, _, err := GenerateHTML(vizFixture(), "", DefaultMinDegree)
	if err != nil {
		t.Fatalf("GenerateHTML() error = %v", err)
	}
	if !strings.Contains(html, "<title>Concept Graph</title>") {
		t.Error("rendered page missing default title")
	}
}
