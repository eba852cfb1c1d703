package catalog

import (
	"net/url"
	"regexp"
	"strings"
)

var whitespace = regexp.MustCompile(`\s+`)

// Slug converts a catalog name to its URL segment: surrounding whitespace
// trimmed, inner runs of whitespace collapsed to a single dash. Turkish
// letters pass through untouched; the browser percent-encodes them.
func Slug(name string) string {
	return whitespace.ReplaceAllString(strings.TrimSpace(name), "-")
}

// Path computes the canonical URL path for a state: the slugged explicit
// selections joined in order category/subcategory/topic/experiment. A
// defaulted subcategory stays out of the path (switching categories yields
// a one-segment URL) unless an experiment is selected, which needs the full
// four segments to deep-link. Topic and experiment only appear together.
func Path(s State) string {
	var b strings.Builder
	b.WriteString("/")
	if s.Category == "" {
		return b.String()
	}
	b.WriteString(url.PathEscape(Slug(s.Category)))
	if s.Subcategory == nil || (s.SubDefaulted && s.Experiment == nil) {
		return b.String()
	}
	b.WriteString("/" + url.PathEscape(Slug(s.Subcategory.Name)))
	if s.Experiment == nil {
		return b.String()
	}
	b.WriteString("/" + url.PathEscape(Slug(s.Experiment.Topic)))
	b.WriteString("/" + url.PathEscape(Slug(s.Experiment.Name)))
	return b.String()
}

// Segments splits a request path into its decoded segments, at most four.
// Empty segments (doubled slashes, trailing slash) are dropped.
func Segments(path string) []string {
	var out []string
	for _, seg := range strings.Split(path, "/") {
		if seg == "" {
			continue
		}
		if dec, err := url.PathUnescape(seg); err == nil {
			seg = dec
		}
		out = append(out, seg)
		if len(out) == 4 {
			break
		}
	}
	return out
}

// matchesSegment reports whether a catalog name matches a decoded URL
// segment, either literally or through its slug (dashes for spaces).
func matchesSegment(name, seg string) bool {
	return name == seg || Slug(name) == seg
}
