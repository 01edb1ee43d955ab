package structure

import "strings"

// TextRun is a positioned piece of text with its font signature, as produced
// by the rendering layer for one page.
type TextRun struct {
	Text     string  `json:"text"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	FontSize float64 `json:"font_size"`
	FontName string  `json:"font_name"`
}

// Page is one physical page: its runs in reading order plus the space-joined
// text of those runs.
type Page struct {
	PageNumber int       `json:"page_number"`
	Text       string    `json:"text"`
	Runs       []TextRun `json:"runs"`
}

// NewPage builds a Page from its runs; Text is always the space-joined run
// text so the two never drift apart.
func NewPage(pageNumber int, runs []TextRun) Page {
	parts := make([]string, 0, len(runs))
	for _, r := range runs {
		parts = append(parts, r.Text)
	}
	return Page{
		PageNumber: pageNumber,
		Text:       strings.Join(parts, " "),
		Runs:       runs,
	}
}

// TOCEntry is one flattened bookmark. Level 0 marks a top-level chapter entry.
type TOCEntry struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	PageNumber int    `json:"page_number"`
	Level      int    `json:"level"`
}

// Section is a contiguous page range within a chapter.
type Section struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	Subsections     []Section `json:"subsections"`
	StartPage       int       `json:"start_page"`
	EndPage         int       `json:"end_page"`
	Concepts        []string  `json:"concepts"`
	EstimatedTokens int       `json:"estimated_tokens"`
}

// Chapter is a contiguous page range of the document. Adjacent chapters tile
// the page space without gaps or overlaps.
type Chapter struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Sections        []Section `json:"sections"`
	StartPage       int       `json:"start_page"`
	EndPage         int       `json:"end_page"`
	EstimatedTokens int       `json:"estimated_tokens"`
}

// DocumentStructure is the sole output artifact of an extraction run.
type DocumentStructure struct {
	Title           string     `json:"title"`
	Author          string     `json:"author,omitempty"`
	Chapters        []Chapter  `json:"chapters"`
	TableOfContents []TOCEntry `json:"table_of_contents"`
	TotalPages      int        `json:"total_pages"`
	EstimatedTokens int        `json:"estimated_tokens"`
}
