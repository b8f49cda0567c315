package segment

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"conceptgraph/pkg/common"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// DefaultWindowSize is the target window size in characters.
	DefaultWindowSize = 1500
	// DefaultOverlap is the overlap between consecutive windows.
	DefaultOverlap = 200

	// Windows at or below this length are discarded as noise
	// (stray headers, page furniture).
	minWindowLength = 50
)

var sentenceSeps = []string{". ", ".\n", ";\n"}

// Segment splits extracted pages into overlapping text windows.
//
// Page texts are concatenated in input order into a running buffer, each
// span tagged with a page marker. Whenever the buffer reaches targetSize
// characters a window is cut, preferring the last paragraph break within
// [overlap, targetSize], then the last sentence separator in the same
// range, and finally a hard cut at targetSize. The hard cut guarantees
// forward progress on text with no natural breaks, so segmentation
// terminates for any finite input.
//
// After a cut the buffer keeps the trailing overlap region, and the page
// markers still present in it determine the locators of the next window.
// Empty or whitespace-only input yields an empty result.
func Segment(pages []common.Page, targetSize, overlap int) ([]common.TextWindow, error) {
	if targetSize <= 0 {
		targetSize = DefaultWindowSize
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= targetSize {
		overlap = targetSize - 1
	}

	windows := make([]common.TextWindow, 0)
	current := ""
	locators := make(map[int]bool)
	var seenPages []int

	emit := func(text string, pageSet map[int]bool) error {
		if len(text) <= minWindowLength {
			return nil
		}
		id, err := gonanoid.New()
		if err != nil {
			return err
		}
		windows = append(windows, common.TextWindow{
			ID:       id,
			Text:     text,
			Locators: sortedKeys(pageSet),
		})
		return nil
	}

	for _, page := range pages {
		text := strings.TrimSpace(strings.ReplaceAll(page.Text, "\x00", ""))
		if text == "" {
			continue
		}
		current += fmt.Sprintf("\n[Page %d]\n%s", page.Number, text)
		locators[page.Number] = true
		seenPages = append(seenPages, page.Number)

		for len(current) >= targetSize {
			breakAt := cutPoint(current, targetSize, overlap)
			if err := emit(strings.TrimSpace(current[:breakAt]), locators); err != nil {
				return nil, err
			}
			current = current[breakAt-overlap:]
			locators = rescanLocators(current, seenPages)
		}
	}

	if err := emit(strings.TrimSpace(current), locators); err != nil {
		return nil, err
	}

	return windows, nil
}

// cutPoint picks the break position for the next window. Paragraph breaks
// win over sentence separators, which win over the hard cut at targetSize.
// The returned position is always strictly greater than overlap.
func cutPoint(text string, targetSize, overlap int) int {
	window := text[overlap:targetSize]

	if idx := strings.LastIndex(window, "\n\n"); idx > 0 {
		return overlap + idx
	}

	for _, sep := range sentenceSeps {
		if idx := strings.LastIndex(window, sep); idx > 0 {
			return overlap + idx + len(sep)
		}
	}

	breakAt := targetSize
	for breakAt < len(text) && breakAt > overlap+1 && !utf8.RuneStart(text[breakAt]) {
		breakAt--
	}
	return breakAt
}

// rescanLocators returns the page numbers whose markers survive in the
// retained overlap region.
func rescanLocators(current string, seenPages []int) map[int]bool {
	locators := make(map[int]bool)
	for _, n := range seenPages {
		if strings.Contains(current, fmt.Sprintf("[Page %d]", n)) {
			locators[n] = true
		}
	}
	return locators
}

func sortedKeys(set map[int]bool) []int {
	keys := make([]int, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
