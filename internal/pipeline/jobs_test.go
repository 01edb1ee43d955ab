package pipeline

import (
	"testing"
	"time"

	"github.com/dgallion1/docstruct/internal/structure"
)

func TestContentHashHex_Consistency(t *testing.T) {
	data := []byte("hello world")
	h1 := ContentHashHex(data)
	h2 := ContentHashHex(data)
	if h1 != h2 {
		t.Errorf("expected identical hashes, got %q and %q", h1, h2)
	}
	// SHA-256 of "hello world" is well-known.
	want := "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"
	if h1 != want {
		t.Errorf("expected hash %q, got %q", want, h1)
	}
}

func TestContentHashHex_DifferentInputs(t *testing.T) {
	h1 := ContentHashHex([]byte("aaa"))
	h2 := ContentHashHex([]byte("bbb"))
	if h1 == h2 {
		t.Error("expected different hashes for different inputs")
	}
}

func TestNewJob_Defaults(t *testing.T) {
	data := []byte("file content here")
	job := NewJob("report.pdf", data)

	if job.ID == "" {
		t.Fatal("expected a generated job ID")
	}
	if job.Status != StatusQueued {
		t.Errorf("expected status %q, got %q", StatusQueued, job.Status)
	}
	if job.Filename != "report.pdf" {
		t.Errorf("expected filename %q, got %q", "report.pdf", job.Filename)
	}
	if job.ContentHash != ContentHashHex(data) {
		t.Error("expected content hash of the upload bytes")
	}
	if string(job.FileData()) != string(data) {
		t.Errorf("expected file data %q, got %q", data, job.FileData())
	}
}

func TestNewJob_UniqueIDs(t *testing.T) {
	a := NewJob("a.txt", []byte("same"))
	b := NewJob("a.txt", []byte("same"))
	if a.ID == b.ID {
		t.Errorf("expected distinct job IDs, both were %q", a.ID)
	}
}

func TestJob_StateTransitions(t *testing.T) {
	job := NewJob("doc.md", []byte("x"))

	transitions := []struct {
		status JobStatus
		phase  string
	}{
		{StatusParsing, "parsing document"},
		{StatusExtracting, "extracting structure"},
		{StatusCompleted, "done"},
	}

	for _, tr := range transitions {
		before := job.UpdatedAt
		// Small sleep to ensure time difference is detectable.
		time.Sleep(time.Millisecond)
		job.SetStatus(tr.status, tr.phase)

		if job.Status != tr.status {
			t.Errorf("expected status %q, got %q", tr.status, job.Status)
		}
		if job.Phase != tr.phase {
			t.Errorf("expected phase %q, got %q", tr.phase, job.Phase)
		}
		if !job.UpdatedAt.After(before) {
			t.Errorf("expected UpdatedAt to advance after SetStatus(%q)", tr.status)
		}
	}
}

func TestJob_SetStatusFailed(t *testing.T) {
	job := NewJob("doc.md", []byte("x"))
	job.SetStatus(StatusFailed, "extraction error")
	if job.Status != StatusFailed {
		t.Errorf("expected status %q, got %q", StatusFailed, job.Status)
	}
}

func TestJob_AddError(t *testing.T) {
	job := NewJob("doc.md", []byte("x"))
	job.AddError("page 3 unreadable")
	job.AddError("page 7 unreadable")

	snap := job.Snapshot()
	if len(snap.Progress.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(snap.Progress.Errors))
	}
	if snap.Progress.Errors[0] != "page 3 unreadable" {
		t.Errorf("expected first error %q, got %q", "page 3 unreadable", snap.Progress.Errors[0])
	}
}

func TestJob_SetResult(t *testing.T) {
	job := NewJob("doc.md", []byte("x"))
	doc := &structure.DocumentStructure{
		Title:      "Biology",
		TotalPages: 10,
		Chapters: []structure.Chapter{
			{ID: "chapter-1", Sections: []structure.Section{{ID: "chapter-1-section-0"}, {ID: "chapter-1-section-1"}}},
			{ID: "chapter-2", Sections: []structure.Section{{ID: "chapter-2-section-0"}}},
		},
	}
	job.SetResult(doc)

	if job.Result() != doc {
		t.Fatal("expected Result to return the stored structure")
	}
	if job.FileData() != nil {
		t.Error("expected upload bytes to be released after SetResult")
	}

	snap := job.Snapshot()
	if snap.Progress.TotalPages != 10 {
		t.Errorf("expected 10 total pages, got %d", snap.Progress.TotalPages)
	}
	if snap.Progress.Chapters != 2 {
		t.Errorf("expected 2 chapters, got %d", snap.Progress.Chapters)
	}
	if snap.Progress.Sections != 3 {
		t.Errorf("expected 3 sections, got %d", snap.Progress.Sections)
	}
}

func TestJob_SnapshotErrorsNotNil(t *testing.T) {
	// Snapshot should always return non-nil errors slice.
	job := NewJob("doc.md", []byte("x"))
	snap := job.Snapshot()
	if snap.Progress.Errors == nil {
		t.Error("expected non-nil errors slice in snapshot")
	}
	if len(snap.Progress.Errors) != 0 {
		t.Errorf("expected empty errors, got %d", len(snap.Progress.Errors))
	}
}

func TestJobStore_PutGet(t *testing.T) {
	store := NewJobStore(time.Hour)
	job := NewJob("doc.md", []byte("x"))
	store.Put(job)

	got := store.Get(job.ID)
	if got == nil {
		t.Fatal("expected to get job back")
	}
	if got.ID != job.ID {
		t.Errorf("expected ID %q, got %q", job.ID, got.ID)
	}
}

func TestJobStore_GetMissing(t *testing.T) {
	store := NewJobStore(time.Hour)
	if store.Get("nonexistent") != nil {
		t.Error("expected nil for missing job")
	}
}

func TestJobStore_ListNewestFirst(t *testing.T) {
	store := NewJobStore(time.Hour)
	first := NewJob("first.md", []byte("a"))
	store.Put(first)
	time.Sleep(time.Millisecond)
	second := NewJob("second.md", []byte("b"))
	store.Put(second)

	jobs := store.List()
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}
	if jobs[0].ID != second.ID {
		t.Errorf("expected newest job first, got %q", jobs[0].Filename)
	}
	if jobs[1].ID != first.ID {
		t.Errorf("expected oldest job last, got %q", jobs[1].Filename)
	}
}

func TestJobStore_Delete(t *testing.T) {
	store := NewJobStore(time.Hour)
	job := NewJob("doc.md", []byte("x"))
	store.Put(job)

	if !store.Delete(job.ID) {
		t.Fatal("expected delete of existing job to succeed")
	}
	if store.Get(job.ID) != nil {
		t.Error("expected job to be gone after delete")
	}
	if store.Delete(job.ID) {
		t.Error("expected second delete to report missing")
	}
}

func TestJobStore_TTLCleanup(t *testing.T) {
	store := NewJobStore(50 * time.Millisecond)

	expired := NewJob("old.md", []byte("a"))
	store.Put(expired)

	// Wait for the TTL to pass.
	time.Sleep(100 * time.Millisecond)

	// Add a fresh job.
	fresh := NewJob("new.md", []byte("b"))
	store.Put(fresh)

	store.Cleanup()

	if store.Get(expired.ID) != nil {
		t.Error("expected expired job to be cleaned up")
	}
	if store.Get(fresh.ID) == nil {
		t.Error("expected fresh job to survive cleanup")
	}
}

func TestJobStore_CleanupEmpty(t *testing.T) {
	store := NewJobStore(time.Hour)
	// Should not panic on empty store.
	store.Cleanup()
}
