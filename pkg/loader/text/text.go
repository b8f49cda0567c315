package text

import (
	"context"
	"strings"

	"conceptgraph/pkg/common"
	"conceptgraph/pkg/loader"
)

// DefaultSectionSize is the rough character length of one plaintext section.
const DefaultSectionSize = 3000

// TextGraphLoader resolves plaintext and markdown files into pseudo-pages
// so everything downstream of page extraction works unchanged. The file is
// split into sections of roughly SectionSize characters, breaking at
// paragraph boundaries when one is close enough.
type TextGraphLoader struct {
	files       loader.GraphFileLoader
	sectionSize int
}

// NewTextGraphLoader creates a plaintext page loader backed by the given
// file loader. A sectionSize of 0 or less means DefaultSectionSize.
func NewTextGraphLoader(files loader.GraphFileLoader, sectionSize int) *TextGraphLoader {
	if sectionSize <= 0 {
		sectionSize = DefaultSectionSize
	}
	return &TextGraphLoader{
		files:       files,
		sectionSize: sectionSize,
	}
}

// GetPages splits the file content into numbered sections.
func (l *TextGraphLoader) GetPages(ctx context.Context, doc loader.Document) ([]common.Page, error) {
	content, err := l.files.GetFileBytes(ctx, doc)
	if err != nil {
		return nil, err
	}
	return sectionText(string(content), l.sectionSize), nil
}

func sectionText(text string, size int) []common.Page {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	sections := make([]common.Page, 0)
	number := 1
	start := 0
	for start < len(text) {
		end := start + size
		if end >= len(text) {
			if chunk := strings.TrimSpace(text[start:]); chunk != "" {
				sections = append(sections, common.Page{Number: number, Text: chunk})
			}
			break
		}

		// Prefer a paragraph break in the window around the target size.
		lo := start + size/2
		hi := end + 500
		if hi > len(text) {
			hi = len(text)
		}
		if idx := strings.LastIndex(text[lo:hi], "\n\n"); idx >= 0 {
			end = lo + idx
		}

		if chunk := strings.TrimSpace(text[start:end]); chunk != "" {
			sections = append(sections, common.Page{Number: number, Text: chunk})
			number++
		}
		start = end
	}

	return sections
}
