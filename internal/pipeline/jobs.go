package pipeline

import (
	"crypto/sha256"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rosterly/candex/internal/document"
)

// JobStatus represents the state of an extraction job.
type JobStatus string

const (
	StatusQueued     JobStatus = "queued"
	StatusParsing    JobStatus = "parsing"
	StatusSegmenting JobStatus = "segmenting"
	StatusExtracting JobStatus = "extracting"
	StatusCompleted  JobStatus = "completed"
	StatusFailed     JobStatus = "failed"
)

// Job tracks the state of a single document extraction.
type Job struct {
	mu sync.Mutex

	ID    string `json:"job_id"`
	DocID string `json:"doc_id"`

	Status   JobStatus `json:"status"`
	Phase    string    `json:"phase"`
	Filename string    `json:"filename"`

	Progress Progress `json:"progress"`

	ContentHash string    `json:"content_hash,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Internal: not serialized.
	fileData []byte
	records  []document.CandidateRecord
	errors   []string
}

// Progress tracks processing progress.
type Progress struct {
	TotalSections     int      `json:"total_sections"`
	SectionsExtracted int      `json:"sections_extracted"`
	Records           int      `json:"records"`
	Errors            []string `json:"errors"`
}

// JobStore is a thread-safe in-memory job registry with TTL eviction.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

// Delete removes a job and reports whether it existed.
func (s *JobStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.jobs[id]; !ok {
		return false
	}
	delete(s.jobs, id)
	return true
}

// List returns snapshots of all live jobs, newest first.
func (s *JobStore) List() []JobSnapshot {
	s.mu.Lock()
	jobs := make([]*Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		jobs = append(jobs, j)
	}
	s.mu.Unlock()

	snaps := make([]JobSnapshot, 0, len(jobs))
	for _, j := range jobs {
		snaps = append(snaps, j.Snapshot())
	}
	sort.Slice(snaps, func(i, k int) bool {
		return snaps[i].CreatedAt.After(snaps[k].CreatedAt)
	})
	return snaps
}

// Cleanup removes expired jobs.
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		if now.Sub(job.UpdatedAt) > s.ttl {
			delete(s.jobs, id)
		}
	}
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status JobStatus, phase string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.Phase = phase
	j.UpdatedAt = time.Now()
}

// AddError records an error.
func (j *Job) AddError(err string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.errors = append(j.errors, err)
	j.Progress.Errors = j.errors
	j.UpdatedAt = time.Now()
}

// IncrSectionsExtracted atomically increments the extracted-section count.
func (j *Job) IncrSectionsExtracted() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.SectionsExtracted++
	j.UpdatedAt = time.Now()
}

// SetTotalSections records the section count found by the segmenter.
func (j *Job) SetTotalSections(n int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.TotalSections = n
	j.UpdatedAt = time.Now()
}

// SetContentHash records the hash of the retained document text.
func (j *Job) SetContentHash(h string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.ContentHash = h
	j.UpdatedAt = time.Now()
}

// SetFileData sets the raw file bytes for processing.
func (j *Job) SetFileData(data []byte) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.fileData = data
}

// FileData returns the raw file bytes.
func (j *Job) FileData() []byte {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.fileData
}

// SetRecords stores the extraction output and releases the file bytes.
func (j *Job) SetRecords(records []document.CandidateRecord) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.records = records
	j.Progress.Records = len(records)
	j.fileData = nil
	j.UpdatedAt = time.Now()
}

// Records returns a copy of the extraction output.
func (j *Job) Records() []document.CandidateRecord {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]document.CandidateRecord, len(j.records))
	copy(out, j.records)
	return out
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID        string    `json:"job_id"`
	DocID     string    `json:"doc_id"`
	Status    JobStatus `json:"status"`
	Phase     string    `json:"phase"`
	Filename  string    `json:"filename"`
	Progress  Progress  `json:"progress"`
	CreatedAt time.Time `json:"created_at"`
}

// Snapshot returns a JSON-safe copy of the job state.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	errs := j.Progress.Errors
	if errs == nil {
		errs = []string{}
	}
	return JobSnapshot{
		ID:       j.ID,
		DocID:    j.DocID,
		Status:   j.Status,
		Phase:    j.Phase,
		Filename: j.Filename,
		Progress: Progress{
			TotalSections:     j.Progress.TotalSections,
			SectionsExtracted: j.Progress.SectionsExtracted,
			Records:           j.Progress.Records,
			Errors:            errs,
		},
		CreatedAt: j.CreatedAt,
	}
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
