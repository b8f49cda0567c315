package segment

import (
	"reflect"
	"strings"
	"testing"

	"conceptgraph/pkg/common"
)

func TestSegmentDegenerateInput(t *testing.T) {
	tests := []struct {
		name  string
		pages []common.Page
	}{
		{
			name:  "no pages",
			pages: nil,
		},
		{
			name:  "empty pages",
			pages: []common.Page{{Number: 1, Text: ""}},
		},
		{
			name:  "whitespace only",
			pages: []common.Page{{Number: 1, Text: "   \n\t "}, {Number: 2, Text: "\n"}},
		},
		{
			name:  "below minimum viable length",
			pages: []common.Page{{Number: 1, Text: "Hello world."}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Segment(tt.pages, 100, 10)
			if err != nil {
				t.Fatalf("Segment() error = %v", err)
			}
			if len(got) != 0 {
				t.Errorf("Segment() returned %d windows, want 0", len(got))
			}
		})
	}
}

func TestSegmentSinglePageTrailingWindow(t *testing.T) {
	text := "This passage is long enough to survive the minimum window length filter."
	got, err := Segment([]common.Page{{Number: 3, Text: text}}, 1000, 100)
	if err != nil {
		t.Fatalf("Segment() error = %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("Segment() returned %d windows, want 1", len(got))
	}
	if !strings.Contains(got[0].Text, text) {
		t.Errorf("window text %q does not contain page text", got[0].Text)
	}
	if !reflect.DeepEqual(got[0].Locators, []int{3}) {
		t.Errorf("window locators = %v, want [3]", got[0].Locators)
	}
	if got[0].ID == "" {
		t.Error("window ID is empty")
	}
}

func TestSegmentPrefersParagraphBreak(t *testing.T) {
	first := strings.Repeat("a", 70)
	second := strings.Repeat("b", 80)
	pages := []common.Page{{Number: 1, Text: first + "\n\n" + second}}

	got, err := Segment(pages, 100, 10)
	if err != nil {
		t.Fatalf("Segment() error = %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("Segment() returned %d windows, want 2", len(got))
	}
	if want := "[Page 1]\n" + first; got[0].Text != want {
		t.Errorf("first window = %q, want cut at paragraph break %q", got[0].Text, want)
	}
	if !strings.HasSuffix(got[1].Text, second) {
		t.Errorf("second window %q should end with the second paragraph", got[1].Text)
	}
}

func TestSegmentFallsBackToSentenceBreak(t *testing.T) {
	first := strings.Repeat("a", 65)
	second := strings.Repeat("b", 100)
	pages := []common.Page{{Number: 1, Text: first + ". " + second}}

	got, err := Segment(pages, 100, 10)
	if err != nil {
		t.Fatalf("Segment() error = %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("Segment() returned %d windows, want 2", len(got))
	}
	if want := "[Page 1]\n" + first + "."; got[0].Text != want {
		t.Errorf("first window = %q, want cut after sentence %q", got[0].Text, want)
	}
}

func TestSegmentHardCutTerminates(t *testing.T) {
	// Adversarial input: no paragraph or sentence breaks at all.
	pages := []common.Page{{Number: 1, Text: strings.Repeat("x", 500)}}

	got, err := Segment(pages, 100, 10)
	if err != nil {
		t.Fatalf("Segment() error = %v", err)
	}

	if len(got) != 6 {
		t.Errorf("Segment() returned %d windows, want 6", len(got))
	}
	for i, w := range got {
		if len(w.Text) <= 50 {
			t.Errorf("window[%d] length %d, want > 50", i, len(w.Text))
		}
		if len(w.Text) > 100 {
			t.Errorf("window[%d] length %d exceeds target size", i, len(w.Text))
		}
	}
}

func TestSegmentOverlapCoversContent(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 40; i++ {
		sb.WriteString("Sentence number ")
		sb.WriteString(strings.Repeat("w", i%7+1))
		sb.WriteString(" ends here. ")
	}
	pages := []common.Page{{Number: 1, Text: sb.String()}}

	got, err := Segment(pages, 200, 40)
	if err != nil {
		t.Fatalf("Segment() error = %v", err)
	}
	if len(got) < 2 {
		t.Fatalf("Segment() returned %d windows, want several", len(got))
	}

	// Everything before the final sub-minimum trailing region must be
	// covered by some window.
	joined := strings.Join(windowTexts(got), " ")
	covered := sb.String()[:sb.Len()-60]
	for _, word := range strings.Fields(covered) {
		if !strings.Contains(joined, word) {
			t.Errorf("word %q missing from segmented output", word)
		}
	}
}

func TestSegmentLocatorsSpanPages(t *testing.T) {
	pages := []common.Page{
		{Number: 1, Text: "First page content that is reasonably descriptive."},
		{Number: 2, Text: "Second page content continuing the same discussion."},
	}

	got, err := Segment(pages, 1000, 100)
	if err != nil {
		t.Fatalf("Segment() error = %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("Segment() returned %d windows, want 1", len(got))
	}
	if !reflect.DeepEqual(got[0].Locators, []int{1, 2}) {
		t.Errorf("window locators = %v, want [1 2]", got[0].Locators)
	}
}

func windowTexts(windows []common.TextWindow) []string {
	texts := make([]string, 0, len(windows))
	for _, w := range windows {
		texts = append(texts, w.Text)
	}
	return texts
}
