package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/jonathan/recruitment-workbench/internal/extract"
	"github.com/jonathan/recruitment-workbench/internal/model"
	"github.com/jonathan/recruitment-workbench/internal/parser"
)

// maxUploadSize bounds résumé uploads; matches the plain-text extractor cap.
const maxUploadSize = extract.MaxTextFileSize

// handleParseResume accepts a multipart upload under "file" and returns the
// parsed candidate.
func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart request: %v", err)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field: %v", err)
		return
	}
	defer file.Close()

	if !extract.IsSupported(header.Filename) {
		writeError(w, http.StatusUnsupportedMediaType, "unsupported file type %q", filepath.Ext(header.Filename))
		return
	}

	// The extractors work on paths, so spool the upload to a temp file with
	// the original extension preserved.
	tmp, err := os.CreateTemp("", "resume-*"+filepath.Ext(header.Filename))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to buffer upload")
		return
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()
	if _, err := io.Copy(tmp, file); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to buffer upload")
		return
	}
	if err := tmp.Close(); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to buffer upload")
		return
	}

	candidate, err := s.parser.ParseFile(tmp.Name())
	if err != nil {
		s.log.Warn("resume parse failed", zap.String("file", header.Filename), zap.Error(err))
		writeError(w, extractStatus(err), "failed to parse resume: %v", err)
		return
	}

	writeJSON(w, http.StatusOK, candidate)
}

// extractStatus maps extraction failure kinds onto HTTP status codes.
func extractStatus(err error) int {
	switch {
	case errors.Is(err, extract.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, extract.ErrWrongFormat), errors.Is(err, extract.ErrEncrypted):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, extract.ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, extract.ErrEmpty), errors.Is(err, extract.ErrInvalidArgument),
		errors.Is(err, parser.ErrEmptyInput):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

type matchRequest struct {
	Candidate *model.Candidate  `json:"candidate"`
	Job       *model.JobPosting `json:"job"`
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if !decodeBody(w, r, &req) {
		return
	}
	result, err := s.engine.Match(req.Candidate, req.Job)
	if err != nil {
		writeError(w, http.StatusBadRequest, "%v", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type topKRequest struct {
	Job        *model.JobPosting  `json:"job"`
	Candidates []*model.Candidate `json:"candidates"`
	K          int                `json:"k"`
}

func (s *Server) handleTopK(w http.ResponseWriter, r *http.Request) {
	var req topKRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Job == nil {
		writeError(w, http.StatusBadRequest, "job is required")
		return
	}
	writeJSON(w, http.StatusOK, s.engine.TopK(req.Job, req.Candidates, req.K))
}

type thresholdRequest struct {
	Job        *model.JobPosting  `json:"job"`
	Candidates []*model.Candidate `json:"candidates"`
	MinScore   float64            `json:"min_score"`
}

func (s *Server) handleAboveThreshold(w http.ResponseWriter, r *http.Request) {
	var req thresholdRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Job == nil {
		writeError(w, http.StatusBadRequest, "job is required")
		return
	}
	writeJSON(w, http.StatusOK, s.engine.AboveThreshold(req.Job, req.Candidates, req.MinScore))
}

type suitableJobsRequest struct {
	Candidate *model.Candidate    `json:"candidate"`
	Jobs      []*model.JobPosting `json:"jobs"`
	K         int                 `json:"k"`
}

func (s *Server) handleSuitableJobs(w http.ResponseWriter, r *http.Request) {
	var req suitableJobsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Candidate == nil {
		writeError(w, http.StatusBadRequest, "candidate is required")
		return
	}
	writeJSON(w, http.StatusOK, s.engine.SuitableJobs(req.Candidate, req.Jobs, req.K))
}

type statsRequest struct {
	Job        *model.JobPosting  `json:"job"`
	Candidates []*model.Candidate `json:"candidates"`
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	var req statsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Job == nil {
		writeError(w, http.StatusBadRequest, "job is required")
		return
	}
	writeJSON(w, http.StatusOK, s.engine.MatchingStats(req.Job, req.Candidates))
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: %v", err)
		return false
	}
	return true
}
