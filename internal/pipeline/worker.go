package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/rosterly/candex/internal/document"
	"github.com/rosterly/candex/internal/fields"
	"github.com/rosterly/candex/internal/reader"
	"github.com/rosterly/candex/internal/segment"
)

// Worker processes a single document job: read paragraphs, segment into
// candidate sections, extract one record per section.
type Worker struct {
	log    *slog.Logger
	segCfg segment.Config
	stats  *Stats

	maxConcurrentExtract int
}

func NewWorker(log *slog.Logger, segCfg segment.Config, maxExtract int, stats *Stats) *Worker {
	if maxExtract <= 0 {
		maxExtract = 1
	}
	return &Worker{
		log:                  log,
		segCfg:               segCfg,
		stats:                stats,
		maxConcurrentExtract: maxExtract,
	}
}

// Process runs the full extraction pipeline for a job. An unreadable input
// fails the whole job with no partial records; everything downstream is
// total and cannot fail.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "doc_id", job.DocID, "filename", job.Filename)
	start := time.Now()

	if ctx.Err() != nil {
		job.AddError(ctx.Err().Error())
		job.SetStatus(StatusFailed, "canceled")
		return
	}

	// Phase 1: Read paragraphs.
	job.SetStatus(StatusParsing, "parsing")
	rd, err := reader.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	paras, err := rd.Read(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("read failed", "error", err)
		job.AddError(fmt.Sprintf("read: %s", err))
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	job.SetContentHash(ContentHashHex([]byte(flattenParagraphs(paras))))

	// Phase 2: Segment.
	job.SetStatus(StatusSegmenting, "segmenting")
	sections := segment.Split(paras, w.segCfg)
	job.SetTotalSections(len(sections))
	log.Info("segmented document", "paragraphs", len(paras), "sections", len(sections))

	// A document with no retained paragraphs yields an empty record set.
	if len(sections) == 0 {
		job.SetRecords(nil)
		job.SetStatus(StatusCompleted, "done")
		w.recordStats(start, 0, 0)
		return
	}

	// Phase 3: Extract, bounded concurrency. Sections are immutable and
	// each record slot is owned by one goroutine, so output order tracks
	// input order with no further synchronization.
	job.SetStatus(StatusExtracting, "extracting")
	records := make([]document.CandidateRecord, len(sections))
	sem := make(chan struct{}, w.maxConcurrentExtract)
	var wg sync.WaitGroup

	for i, sec := range sections {
		sem <- struct{}{}
		wg.Add(1)
		go func(i int, sec document.Section) {
			defer func() {
				<-sem
				wg.Done()
			}()
			records[i] = fields.Extract(sec)
			job.IncrSectionsExtracted()
		}(i, sec)
	}
	wg.Wait()

	job.SetRecords(records)
	job.SetStatus(StatusCompleted, "done")
	log.Info("extraction complete", "records", len(records), "duration_ms", time.Since(start).Milliseconds())
	w.recordStats(start, len(sections), len(records))
}

func (w *Worker) recordStats(start time.Time, sections, records int) {
	if w.stats != nil {
		w.stats.Record(time.Since(start), sections, records)
	}
}

// flattenParagraphs joins the retained paragraph text for content hashing.
func flattenParagraphs(paras []document.Paragraph) string {
	var sb strings.Builder
	for _, p := range paras {
		if p.Blank() {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(p.Text)
	}
	return sb.String()
}
