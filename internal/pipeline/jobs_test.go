package pipeline

import (
	"testing"
	"time"

	"github.com/rosterly/candex/internal/document"
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

func TestJob_StateTransitions(t *testing.T) {
	job := &Job{
		ID:        "test-1",
		Status:    StatusQueued,
		Phase:     "queued",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	transitions := []struct {
		status JobStatus
		phase  string
	}{
		{StatusParsing, "parsing document"},
		{StatusSegmenting, "splitting into sections"},
		{StatusExtracting, "extracting records"},
		{StatusCompleted, "done"},
	}

	for _, tr := range transitions {
		before := job.UpdatedAt
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

func TestJob_AddError(t *testing.T) {
	job := &Job{ID: "err-test", UpdatedAt: time.Now()}
	job.AddError("parse failed")
	job.AddError("second problem")

	snap := job.Snapshot()
	if len(snap.Progress.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(snap.Progress.Errors))
	}
	if snap.Progress.Errors[0] != "parse failed" {
		t.Errorf("expected first error %q, got %q", "parse failed", snap.Progress.Errors[0])
	}
}

func TestJob_SectionProgress(t *testing.T) {
	job := &Job{ID: "progress-test", UpdatedAt: time.Now()}
	job.SetTotalSections(3)
	job.IncrSectionsExtracted()
	job.IncrSectionsExtracted()

	snap := job.Snapshot()
	if snap.Progress.TotalSections != 3 {
		t.Errorf("expected 3 total sections, got %d", snap.Progress.TotalSections)
	}
	if snap.Progress.SectionsExtracted != 2 {
		t.Errorf("expected 2 sections extracted, got %d", snap.Progress.SectionsExtracted)
	}
}

func TestJob_RecordsReleaseFileData(t *testing.T) {
	job := &Job{ID: "records-test", UpdatedAt: time.Now()}
	job.SetFileData([]byte("raw bytes"))

	records := []document.CandidateRecord{
		{FirstName: "JOHN DOE"},
		{FirstName: "JANE SMITH"},
	}
	job.SetRecords(records)

	if got := job.FileData(); got != nil {
		t.Errorf("expected file data to be released, got %d bytes", len(got))
	}

	out := job.Records()
	if len(out) != 2 {
		t.Fatalf("expected 2 records, got %d", len(out))
	}
	// The returned slice is a copy.
	out[0].FirstName = "changed"
	if job.Records()[0].FirstName != "JOHN DOE" {
		t.Error("expected Records to return a copy")
	}

	if job.Snapshot().Progress.Records != 2 {
		t.Errorf("expected record count 2 in progress, got %d", job.Snapshot().Progress.Records)
	}
}

func TestJob_SnapshotErrorsNotNil(t *testing.T) {
	job := &Job{ID: "snap-test", UpdatedAt: time.Now()}
	snap := job.Snapshot()
	if snap.Progress.Errors == nil {
		t.Error("expected non-nil errors slice in snapshot")
	}
}

func TestJobStore_PutGetDelete(t *testing.T) {
	store := NewJobStore(time.Hour)
	job := &Job{ID: "store-1", UpdatedAt: time.Now()}
	store.Put(job)

	if got := store.Get("store-1"); got == nil || got.ID != "store-1" {
		t.Fatalf("expected to get job back, got %+v", got)
	}
	if !store.Delete("store-1") {
		t.Error("expected delete to report success")
	}
	if store.Get("store-1") != nil {
		t.Error("expected job gone after delete")
	}
	if store.Delete("store-1") {
		t.Error("expected delete of missing job to report failure")
	}
}

func TestJobStore_ListNewestFirst(t *testing.T) {
	store := NewJobStore(time.Hour)
	old := &Job{ID: "old", CreatedAt: time.Now().Add(-time.Minute), UpdatedAt: time.Now()}
	fresh := &Job{ID: "new", CreatedAt: time.Now(), UpdatedAt: time.Now()}
	store.Put(old)
	store.Put(fresh)

	snaps := store.List()
	if len(snaps) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(snaps))
	}
	if snaps[0].ID != "new" || snaps[1].ID != "old" {
		t.Errorf("expected newest first, got %q then %q", snaps[0].ID, snaps[1].ID)
	}
}

func TestJobStore_TTLCleanup(t *testing.T) {
	store := NewJobStore(50 * time.Millisecond)

	expired := &Job{ID: "old", UpdatedAt: time.Now()}
	store.Put(expired)

	time.Sleep(100 * time.Millisecond)

	fresh := &Job{ID: "new", UpdatedAt: time.Now()}
	store.Put(fresh)

	store.Cleanup()

	if store.Get("old") != nil {
		t.Error("expected expired job to be cleaned up")
	}
	if store.Get("new") == nil {
		t.Error("expected fresh job to survive cleanup")
	}
}
