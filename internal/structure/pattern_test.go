package structure

import "testing"

func run(text string, size float64, font string) TextRun {
	return TextRun{Text: text, FontSize: size, FontName: font, Height: size}
}

func TestAnalyzeHeadingPatterns_LargestTwoSizes(t *testing.T) {
	pages := []Page{
		NewPage(1, []TextRun{
			run("Chapter 1", 24, "Times-Bold"),
			run("1.1 Intro", 16, "Times-Bold"),
			run("body text", 11, "Times-Roman"),
			run("more body", 11, "Times-Roman"),
		}),
		NewPage(2, []TextRun{
			run("even more body", 11, "Times-Roman"),
		}),
	}

	chapter, section := analyzeHeadingPatterns(pages)
	if chapter == nil || section == nil {
		t.Fatalf("expected both patterns, got chapter=%v section=%v", chapter, section)
	}
	if chapter.FontSize != 24 || chapter.FontName != "Times-Bold" {
		t.Errorf("chapter pattern: expected 24/Times-Bold, got %.1f/%s", chapter.FontSize, chapter.FontName)
	}
	if section.FontSize != 16 || section.FontName != "Times-Bold" {
		t.Errorf("section pattern: expected 16/Times-Bold, got %.1f/%s", section.FontSize, section.FontName)
	}
}

func TestAnalyzeHeadingPatterns_RoundsSizesToOneDecimal(t *testing.T) {
	pages := []Page{
		NewPage(1, []TextRun{
			run("a", 23.96, "F1"),
			run("b", 24.04, "F1"),
			run("c", 11, "F2"),
		}),
	}

	chapter, section := analyzeHeadingPatterns(pages)
	if chapter == nil {
		t.Fatal("expected a chapter pattern")
	}
	if chapter.FontSize != 24.0 {
		t.Errorf("expected rounded size 24.0, got %.2f", chapter.FontSize)
	}
	if section == nil || section.FontSize != 11 {
		t.Errorf("expected section pattern at size 11, got %v", section)
	}
}

func TestAnalyzeHeadingPatterns_TieBrokenByFontName(t *testing.T) {
	pages := []Page{
		NewPage(1, []TextRun{
			run("a", 18, "Zapf"),
			run("b", 18, "Arial"),
		}),
	}

	chapter, section := analyzeHeadingPatterns(pages)
	if chapter == nil || chapter.FontName != "Arial" {
		t.Errorf("expected Arial to win the size tie, got %v", chapter)
	}
	if section == nil || section.FontName != "Zapf" {
		t.Errorf("expected Zapf as second pattern, got %v", section)
	}
}

func TestAnalyzeHeadingPatterns_NoRuns(t *testing.T) {
	pages := []Page{NewPage(1, nil), NewPage(2, nil)}
	chapter, section := analyzeHeadingPatterns(pages)
	if chapter != nil || section != nil {
		t.Errorf("expected nil patterns for run-less document, got %v, %v", chapter, section)
	}
}

func TestAnalyzeHeadingPatterns_SingleFont(t *testing.T) {
	pages := []Page{NewPage(1, []TextRun{run("only", 12, "Mono")})}
	chapter, section := analyzeHeadingPatterns(pages)
	if chapter == nil || chapter.FontSize != 12 {
		t.Fatalf("expected chapter pattern 12/Mono, got %v", chapter)
	}
	if section != nil {
		t.Errorf("expected no section pattern with a single font key, got %v", section)
	}
}
