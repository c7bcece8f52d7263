package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleListJobs lists all live jobs, newest first.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	snaps := s.orchestrator.Jobs().List()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"jobs":        snaps,
		"queue_depth": s.orchestrator.QueueDepth(),
	})
}

// handleDeleteJob drops a job and its extracted records from the store.
func (s *Server) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	if !s.orchestrator.Jobs().Delete(jobID) {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"deleted": jobID})
}
