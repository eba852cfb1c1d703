package catalog_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fizikfinito/fizikfinito/internal/domain/catalog"
)

func stateWithText(text string) catalog.State {
	return catalog.State{
		Category:    "Mekanik",
		ContentType: catalog.ContentExperiment,
		Experiment:  &catalog.Experiment{Name: "Deney", Topic: "Konu", ExperimentText: text},
	}
}

func TestDisplayText_TruncatesCollapsedLongText(t *testing.T) {
	long := strings.Repeat("a", 300)
	s := stateWithText(long)

	got := s.DisplayText()
	if utf8.RuneCountInString(got) != 253 {
		t.Errorf("collapsed length = %d, want 253 (250 + ellipsis)", utf8.RuneCountInString(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("collapsed text %q does not end with ellipsis", got[len(got)-10:])
	}

	s.Expanded = true
	if got := s.DisplayText(); got != long {
		t.Errorf("expanded length = %d, want full 300", utf8.RuneCountInString(got))
	}
}

func TestDisplayText_ShortTextNeverTruncated(t *testing.T) {
	s := stateWithText(strings.Repeat("b", 250))

	if got := s.DisplayText(); got != s.Experiment.ExperimentText {
		t.Errorf("DisplayText = %q, want untouched 250-char text", got)
	}
	if s.Truncatable() {
		t.Error("Truncatable = true for a 250-char text, want false")
	}
}

func TestDisplayText_CountsRunesNotBytes(t *testing.T) {
	// 300 Turkish letters, each 2 bytes in UTF-8.
	long := strings.Repeat("ş", 300)
	s := stateWithText(long)

	got := s.DisplayText()
	if n := utf8.RuneCountInString(got); n != 253 {
		t.Errorf("collapsed rune length = %d, want 253", n)
	}
	if !strings.HasPrefix(got, strings.Repeat("ş", 250)) {
		t.Error("truncation split the text at the wrong rune boundary")
	}
}

func TestFullText_PendingSentinelSubstituted(t *testing.T) {
	s := stateWithText("?")
	if got := s.FullText(); got != catalog.ComingSoon {
		t.Errorf("FullText = %q, want coming-soon placeholder", got)
	}

	s = stateWithText(" ? ")
	if got := s.FullText(); got != catalog.ComingSoon {
		t.Errorf("FullText = %q, want placeholder for padded sentinel", got)
	}
}

func TestFullText_MaterialsTab(t *testing.T) {
	s := stateWithText("deney yazisi")
	s.Experiment.MaterialsText = "ip, makara"
	s.ContentType = catalog.ContentMaterials

	if got := s.FullText(); got != "ip, makara" {
		t.Errorf("FullText = %q, want materials text on materials tab", got)
	}
}

func TestFullText_NoExperiment(t *testing.T) {
	s := catalog.State{Category: "Mekanik", ContentType: catalog.ContentExperiment}
	if got := s.FullText(); got != "" {
		t.Errorf("FullText = %q, want empty with no selection", got)
	}
}

func TestEmbedURL(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"https://youtube.com/shorts/abc", "https://youtube.com/embed/abc", true},
		{"https://www.youtube.com/embed/xyz", "https://www.youtube.com/embed/xyz", true},
		{"?", "", false},
		{"  ", "", false},
	}
	for _, tt := range tests {
		got, ok := catalog.EmbedURL(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("EmbedURL(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
