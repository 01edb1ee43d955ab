package provider

import (
	"context"
	"strings"
	"testing"
)

func TestOpenText_ParagraphsBecomeBodyRuns(t *testing.T) {
	input := "First paragraph line one.\nFirst paragraph line two.\n\nSecond paragraph.\n\nThird paragraph."
	doc, err := OpenText(strings.NewReader(input), "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	meta, _ := doc.Metadata(context.Background())
	if meta.Title != "notes" {
		t.Errorf("expected title %q, got %q", "notes", meta.Title)
	}
	if doc.PageCount() != 1 {
		t.Fatalf("expected 1 page, got %d", doc.PageCount())
	}

	page, err := doc.Page(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Runs) != 3 {
		t.Fatalf("expected 3 paragraph runs, got %d", len(page.Runs))
	}
	if page.Runs[0].Text != "First paragraph line one.\nFirst paragraph line two." {
		t.Errorf("unexpected first paragraph: %q", page.Runs[0].Text)
	}
	if page.Runs[1].Text != "Second paragraph." {
		t.Errorf("unexpected second paragraph: %q", page.Runs[1].Text)
	}

	outline, _ := doc.Outline(context.Background())
	if len(outline) != 0 {
		t.Errorf("expected no outline for plain text, got %d nodes", len(outline))
	}
}

func TestOpenText_LongInputPaginates(t *testing.T) {
	para := strings.Repeat("word ", 120) // ~600 chars
	input := strings.Repeat(strings.TrimSpace(para)+"\n\n", 8)

	doc, err := OpenText(strings.NewReader(input), "long.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.PageCount() < 2 {
		t.Errorf("expected body budget to paginate long input, got %d pages", doc.PageCount())
	}
}

func TestOpenText_EmptyInput(t *testing.T) {
	doc, err := OpenText(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.PageCount() != 0 {
		t.Errorf("expected 0 pages for empty input, got %d", doc.PageCount())
	}
}

func TestOpenText_PageOutOfRange(t *testing.T) {
	doc, err := OpenText(strings.NewReader("hello"), "one.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := doc.Page(context.Background(), 2); err == nil {
		t.Error("expected error for out-of-range page")
	}
	if _, err := doc.Page(context.Background(), 0); err == nil {
		t.Error("expected error for page 0")
	}
}
