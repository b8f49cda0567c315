package routes

import (
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{name: "plain name", input: "paper.pdf", want: "paper.pdf", ok: true},
		{name: "unix path stripped", input: "../../etc/passwd.txt", want: "passwd.txt", ok: true},
		{name: "windows path stripped", input: `C:\docs\notes.md`, want: "notes.md", ok: true},
		{name: "empty", input: "", ok: false},
		{name: "whitespace", input: "   ", ok: false},
		{name: "dot", input: ".", ok: false},
		{name: "dotdot", input: "..", ok: false},
		{name: "hidden file", input: ".env", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := sanitizeFilename(tt.input)
			if ok != tt.ok {
				t.Fatalf("sanitizeFilename(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestBuildDocumentsPicksLoaderByExtension(t *testing.T) {
	docs := buildDocuments("/tmp/session/files", []string{"a.pdf", "b.md", "c.txt"})

	if len(docs) != 3 {
		t.Fatalf("buildDocuments() returned %d documents, want 3", len(docs))
	}
	for _, d := range docs {
		if d.Loader == nil {
			t.Errorf("document %s has no page loader", d.Name)
		}
	}
	if docs[0].Loader == docs[1].Loader {
		t.Error("pdf and markdown documents share a loader")
	}
	if docs[1].Loader != docs[2].Loader {
		t.Error("markdown and txt documents should share the text loader")
	}
}
