package structure

import (
	"fmt"
	"strings"
)

const (
	// Runs larger than this on a chapter's first page contribute to its title.
	chapterTitleMinSize = 14.0
	chapterTitleMaxLen  = 100
)

// buildChapter turns a contiguous page slice into a Chapter. startPageNumber
// is the 1-based document page number of the slice's first page.
func buildChapter(slice []Page, startPageNumber int, id string) Chapter {
	ch := Chapter{
		ID:        id,
		Title:     chapterTitle(slice),
		Sections:  []Section{},
		StartPage: startPageNumber,
		EndPage:   startPageNumber + len(slice) - 1,
	}

	for i, raw := range splitSections(slice) {
		sec := Section{
			ID:              fmt.Sprintf("%s-section-%d", id, i),
			Title:           raw.title,
			Content:         raw.content,
			Subsections:     []Section{},
			StartPage:       startPageNumber + raw.startPage,
			EndPage:         startPageNumber + raw.endPage,
			Concepts:        ExtractConcepts(raw.content),
			EstimatedTokens: EstimateTokens(raw.content),
		}
		if sec.Title == "" {
			sec.Title = fmt.Sprintf("Section %d", i+1)
		}
		ch.EstimatedTokens += sec.EstimatedTokens
		ch.Sections = append(ch.Sections, sec)
	}
	return ch
}

// chapterTitle joins the oversized runs on the slice's first page. Falls back
// to "Chapter" when the page has no run above the size threshold.
func chapterTitle(slice []Page) string {
	if len(slice) == 0 {
		return "Chapter"
	}
	var parts []string
	for _, run := range slice[0].Runs {
		if run.FontSize > chapterTitleMinSize {
			parts = append(parts, run.Text)
		}
	}
	title := strings.TrimSpace(strings.Join(parts, " "))
	if title == "" {
		return "Chapter"
	}
	if r := []rune(title); len(r) > chapterTitleMaxLen {
		title = string(r[:chapterTitleMaxLen])
	}
	return title
}
