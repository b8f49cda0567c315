package loader

import "testing"

func TestNewDocumentDefaultsName(t *testing.T) {
	doc := NewDocument(NewDocumentParams{ID: "1", FilePath: "/data/papers/ramanujan.pdf"})
	if doc.Name != "ramanujan.pdf" {
		t.Errorf("Name = %q, want %q", doc.Name, "ramanujan.pdf")
	}

	doc = NewDocument(NewDocumentParams{ID: "2", Name: "Partition survey", FilePath: "/data/x.txt"})
	if doc.Name != "Partition survey" {
		t.Errorf("Name = %q, want explicit name kept", doc.Name)
	}
}

func TestSupported(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"paper.pdf", true},
		{"notes.TXT", true},
		{"README.md", true},
		{"a/b/c.markdown", true},
		{"archive.zip", false},
		{"noext", false},
	}

	for _, tt := range tests {
		if got := Supported(tt.path); got != tt.want {
			t.Errorf("Supported(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
