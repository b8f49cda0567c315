package loader

import (
	"context"
	"path/filepath"
	"strings"

	"conceptgraph/pkg/common"
)

// Document represents a source file that can be resolved into pages for
// graph construction. The actual content is retrieved via the associated
// GraphPageLoader.
type Document struct {
	ID       string
	Name     string
	FilePath string
	Loader   GraphPageLoader
}

// NewDocumentParams defines the input parameters for creating a Document.
type NewDocumentParams struct {
	ID       string
	Name     string
	FilePath string
	Loader   GraphPageLoader
}

// NewDocument creates a Document from the provided parameters. The Name
// defaults to the file's base name when empty.
func NewDocument(params NewDocumentParams) Document {
	name := params.Name
	if name == "" {
		name = filepath.Base(params.FilePath)
	}
	return Document{
		ID:       params.ID,
		Name:     name,
		FilePath: params.FilePath,
		Loader:   params.Loader,
	}
}

// GetPages resolves the document into pages using its Loader.
//
// Example:
//
//	pages, err := doc.GetPages(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
func (d *Document) GetPages(ctx context.Context) ([]common.Page, error) {
	return d.Loader.GetPages(ctx, *d)
}

// GraphPageLoader defines the interface for resolving a Document into
// pages. Implementations handle format-specific extraction (PDF text
// extraction, plaintext sectioning).
type GraphPageLoader interface {
	GetPages(ctx context.Context, doc Document) ([]common.Page, error)
}

// GraphFileLoader defines the interface for fetching a document's raw
// bytes. Implementations may read from disk, object storage, or other
// sources.
type GraphFileLoader interface {
	GetFileBytes(ctx context.Context, doc Document) ([]byte, error)
}

// CacheKey returns the cache identity of a document.
func CacheKey(doc Document) string {
	return doc.ID + ":" + doc.FilePath
}

// SupportedExtensions lists the file extensions the loaders can process.
var SupportedExtensions = map[string]bool{
	".pdf":      true,
	".txt":      true,
	".md":       true,
	".text":     true,
	".markdown": true,
}

// Supported reports whether the file at path has a processable extension.
func Supported(path string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(path))]
}
