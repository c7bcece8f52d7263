package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rosterly/candex/internal/export"
	"github.com/rosterly/candex/internal/pipeline"
	"github.com/rosterly/candex/internal/reader"
)

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	// Limit total request size.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !reader.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	now := time.Now()
	job := &pipeline.Job{
		ID:        uuid.NewString(),
		DocID:     pipeline.ContentHashHex(data)[:16],
		Status:    pipeline.StatusQueued,
		Phase:     "queued",
		Filename:  filename,
		CreatedAt: now,
		UpdatedAt: now,
	}
	job.SetFileData(data)

	if err := s.orchestrator.Submit(job); err != nil {
		jsonError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]any{
		"job_id":   job.ID,
		"doc_id":   job.DocID,
		"status":   job.Status,
		"poll_url": fmt.Sprintf("/api/extract/%s/status", job.ID),
	})
}

func (s *Server) handleExtractStatus(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job := s.orchestrator.GetJob(jobID)
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}
	snap := job.Snapshot()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"job_id":   snap.ID,
		"doc_id":   snap.DocID,
		"status":   snap.Status,
		"phase":    snap.Phase,
		"progress": snap.Progress,
	})
}

// completedJob fetches a job and verifies extraction finished; it writes the
// error response itself when not.
func (s *Server) completedJob(w http.ResponseWriter, jobID string) *pipeline.Job {
	job := s.orchestrator.GetJob(jobID)
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return nil
	}
	snap := job.Snapshot()
	if snap.Status != pipeline.StatusCompleted {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]any{
			"error":  "job not completed",
			"status": snap.Status,
			"errors": snap.Progress.Errors,
		})
		return nil
	}
	return job
}

func (s *Server) handleExtractRecords(w http.ResponseWriter, r *http.Request) {
	job := s.completedJob(w, chi.URLParam(r, "jobID"))
	if job == nil {
		return
	}
	records := job.Records()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"job_id":  job.ID,
		"count":   len(records),
		"records": records,
	})
}

func (s *Server) handleExtractDownload(w http.ResponseWriter, r *http.Request) {
	job := s.completedJob(w, chi.URLParam(r, "jobID"))
	if job == nil {
		return
	}

	base := strings.TrimSuffix(job.Filename, filepath.Ext(job.Filename))
	if base == "" {
		base = "candidates"
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", base+".xlsx"))

	if err := export.WriteXLSX(w, job.Records()); err != nil {
		s.log.Error("xlsx export failed", "job_id", job.ID, "error", err)
	}
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
