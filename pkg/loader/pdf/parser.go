package pdf

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"conceptgraph/pkg/common"
)

var reNewlines = regexp.MustCompile(`\n{3,}`)

// parsePDF shells out to pdftotext and splits the output on the form-feed
// page breaks it emits, yielding one entry per non-empty page. Page numbers
// follow the PDF's own numbering, so dropped empty pages leave gaps.
func parsePDF(ctx context.Context, input []byte) ([]common.Page, error) {
	tmpDir, err := os.MkdirTemp("", "pdfextract-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	pdfPath := filepath.Join(tmpDir, "input.pdf")
	if err := os.WriteFile(pdfPath, input, 0o600); err != nil {
		return nil, fmt.Errorf("failed to write temp PDF: %w", err)
	}

	if _, err := exec.LookPath("pdftotext"); err != nil {
		return nil, fmt.Errorf("pdftotext not found in PATH: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(
		ctx,
		"pdftotext",
		"-enc", "UTF-8",
		"-eol", "unix",
		"-q",
		pdfPath,
		"-",
	)
	cmd.Env = append(os.Environ(), "LANG=C.UTF-8", "LC_ALL=C.UTF-8")

	out, err := cmd.CombinedOutput()
	if ctx.Err() == context.DeadlineExceeded {
		return nil, fmt.Errorf("pdftotext timed out")
	}
	if err != nil {
		return nil, fmt.Errorf("pdftotext failed: %w: %s", err, bytes.TrimSpace(out))
	}

	return splitPages(string(out)), nil
}

func splitPages(text string) []common.Page {
	pages := make([]common.Page, 0)
	for i, raw := range strings.Split(text, "\f") {
		cleaned := strings.TrimSpace(reNewlines.ReplaceAllString(raw, "\n\n"))
		if cleaned == "" {
			continue
		}
		pages = append(pages, common.Page{Number: i + 1, Text: cleaned})
	}
	return pages
}
