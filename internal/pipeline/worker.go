package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgallion1/docstruct/internal/provider"
	"github.com/dgallion1/docstruct/internal/structure"
)

// Worker processes a single extraction job: open the document, run the
// extractor, publish the result on the job.
type Worker struct {
	extractor *structure.Extractor
	stats     *RunStats
	log       *slog.Logger
}

func NewWorker(extractor *structure.Extractor, stats *RunStats, log *slog.Logger) *Worker {
	return &Worker{
		extractor: extractor,
		stats:     stats,
		log:       log,
	}
}

// Process runs the full extraction pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	// Phase 1: open the document through its format adapter.
	job.SetStatus(StatusParsing, "parsing")
	doc, err := provider.Open(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("open failed", "error", err)
		job.AddError(fmt.Sprintf("open: %s", err))
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	// Phase 2: extract the structure.
	job.SetStatus(StatusExtracting, "extracting")
	start := time.Now()
	result, err := w.extractor.Extract(ctx, doc)
	if err != nil {
		log.Error("extraction failed", "error", err)
		job.AddError(fmt.Sprintf("extract: %s", err))
		job.SetStatus(StatusFailed, "extracting")
		return
	}
	w.stats.Record(time.Since(start).Milliseconds())

	job.SetResult(result)
	job.SetStatus(StatusCompleted, "done")
	log.Info("extraction complete",
		"pages", result.TotalPages,
		"chapters", len(result.Chapters),
		"estimated_tokens", result.EstimatedTokens,
		"duration_ms", time.Since(start).Milliseconds())
}
