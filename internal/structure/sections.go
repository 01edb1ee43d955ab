package structure

import (
	"regexp"
	"strings"
)

// Runs larger than this are eligible as section-heading candidates.
const sectionHeadingMinSize = 12.0

var (
	numberedHeadingRe = regexp.MustCompile(`^\d+\.\d+`)
	allCapsHeadingRe  = regexp.MustCompile(`^[A-Z][A-Z\s]+$`)
)

// rawSection is a section accumulator with page offsets relative to the
// owning chapter's slice.
type rawSection struct {
	title     string
	content   string
	startPage int
	endPage   int
}

// splitSections partitions a chapter's page slice into sections in a single
// forward pass. A page opens a new section when it carries a heading
// candidate and the running accumulator already holds content; a chapter with
// no heading candidate at all collapses to one synthetic "Content" section
// spanning the whole slice.
func splitSections(slice []Page) []rawSection {
	var sections []rawSection
	current := rawSection{}
	sawHeading := false

	for i, page := range slice {
		heading := findHeadingCandidate(page)
		if heading != "" {
			sawHeading = true
		}
		if heading != "" && strings.TrimSpace(current.content) != "" {
			sections = append(sections, current)
			current = rawSection{title: heading, content: page.Text, startPage: i, endPage: i}
			continue
		}
		current.content += "\n" + page.Text
		current.endPage = i
	}
	if strings.TrimSpace(current.content) != "" {
		sections = append(sections, current)
	}

	if len(sections) == 0 || !sawHeading {
		end := len(slice) - 1
		if end < 0 {
			end = 0
		}
		return []rawSection{{
			title:   "Content",
			content: joinPageText(slice),
			endPage: end,
		}}
	}
	return sections
}

// findHeadingCandidate returns the first run on the page that looks like a
// section heading: oversized and either decimal-numbered ("3.2 Foo") or an
// all-caps line.
func findHeadingCandidate(page Page) string {
	for _, run := range page.Runs {
		if run.FontSize <= sectionHeadingMinSize {
			continue
		}
		text := strings.TrimSpace(run.Text)
		if text == "" {
			continue
		}
		if numberedHeadingRe.MatchString(text) || allCapsHeadingRe.MatchString(text) {
			return text
		}
	}
	return ""
}

func joinPageText(slice []Page) string {
	parts := make([]string, 0, len(slice))
	for _, page := range slice {
		parts = append(parts, page.Text)
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}
