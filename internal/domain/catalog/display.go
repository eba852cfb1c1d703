package catalog

import "strings"

const (
	// PendingSentinel marks content the editors have not written yet.
	PendingSentinel = "?"

	// ComingSoon is shown in place of pending content.
	ComingSoon = "Çok yakında eklenecektir. Lütfen beklemede kalın"

	// truncateAt is the collapsed display length in characters.
	truncateAt = 250
)

// FullText returns the complete text body for the active tab, with the
// pending sentinel already substituted.
func (s State) FullText() string {
	if s.Experiment == nil {
		return ""
	}
	text := s.Experiment.ExperimentText
	if s.ContentType == ContentMaterials {
		text = s.Experiment.MaterialsText
	}
	if strings.TrimSpace(text) == PendingSentinel {
		return ComingSoon
	}
	return text
}

// DisplayText applies the read-more truncation rule to the active text:
// collapsed texts longer than 250 characters are cut to 250 plus an
// ellipsis. Truncation counts characters, not bytes.
func (s State) DisplayText() string {
	return truncate(s.FullText(), s.Expanded)
}

// Truncatable reports whether the active text is long enough for the
// read-more toggle to be shown at all.
func (s State) Truncatable() bool {
	return len([]rune(s.FullText())) > truncateAt
}

func truncate(text string, expanded bool) string {
	runes := []rune(text)
	if expanded || len(runes) <= truncateAt {
		return text
	}
	return string(runes[:truncateAt]) + "..."
}

// EmbedURL converts a raw video URL into an embeddable player URL.
// Pending videos ("?") produce ok=false, and YouTube shorts links are
// rewritten to their /embed/ form.
func EmbedURL(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == PendingSentinel {
		return "", false
	}
	return strings.Replace(raw, "/shorts/", "/embed/", 1), true
}

// Embed returns the player URL for the selected experiment, if any.
func (s State) Embed() (string, bool) {
	if s.Experiment == nil {
		return "", false
	}
	return EmbedURL(s.Experiment.VideoURL)
}
