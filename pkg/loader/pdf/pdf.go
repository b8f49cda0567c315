package pdf

import (
	"context"
	"sync"

	"conceptgraph/pkg/common"
	"conceptgraph/pkg/loader"

	"golang.org/x/sync/singleflight"
)

// PDFGraphLoader extracts per-page text from PDF files.
type PDFGraphLoader struct {
	files loader.GraphFileLoader

	cache   map[string][]common.Page
	cacheMu sync.RWMutex
	group   singleflight.Group
}

// NewPDFGraphLoader creates a PDF page loader backed by the given file loader.
func NewPDFGraphLoader(files loader.GraphFileLoader) *PDFGraphLoader {
	return &PDFGraphLoader{
		files: files,
		cache: make(map[string][]common.Page),
	}
}

// GetPages extracts the text of each PDF page. Pages without any text are
// dropped while keeping the page numbering of the ones that remain.
func (l *PDFGraphLoader) GetPages(ctx context.Context, doc loader.Document) ([]common.Page, error) {
	key := loader.CacheKey(doc)

	l.cacheMu.RLock()
	if cached, ok := l.cache[key]; ok {
		l.cacheMu.RUnlock()
		return cached, nil
	}
	l.cacheMu.RUnlock()

	result, err, _ := l.group.Do(key, func() (any, error) {
		l.cacheMu.RLock()
		if cached, ok := l.cache[key]; ok {
			l.cacheMu.RUnlock()
			return cached, nil
		}
		l.cacheMu.RUnlock()

		content, err := l.files.GetFileBytes(ctx, doc)
		if err != nil {
			return nil, err
		}

		pages, err := parsePDF(ctx, content)
		if err != nil {
			return nil, err
		}

		l.cacheMu.Lock()
		l.cache[key] = pages
		l.cacheMu.Unlock()

		return pages, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]common.Page), nil
}
