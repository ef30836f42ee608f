package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/jonathan/interview-prep/internal/analyzer"
	"github.com/jonathan/interview-prep/internal/ingestion"
	"github.com/jonathan/interview-prep/internal/types"
)

const maxUploadBytes = 10 << 20 // 10 MB

// handleHealth reports service liveness and catalog size.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"roles":     len(s.catalog.Roles()),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// handleRoles lists the roles the catalog knows about, with their
// required skills.
func (s *Server) handleRoles(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]any{
		"roles": s.catalog.Roles(),
	})
}

// handleAnalyze runs a full analysis from a JSON request body.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	s.runAnalysis(w, r, &req)
}

// handleAnalyzeUpload runs a full analysis from an uploaded resume file.
// Expects multipart form data with a "resume" file field plus "role" and
// optional "category" / "top_n" fields.
func (s *Server) handleAnalyzeUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing resume file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read upload: "+err.Error())
		return
	}

	text, err := ingestion.ExtractText(header.Filename, data)
	if err != nil {
		var unsupported *ingestion.UnsupportedFormatError
		if errors.As(err, &unsupported) {
			writeAppError(w, &ErrUnsupportedUpload{Filename: header.Filename})
			return
		}
		writeAppError(w, &ErrExtraction{Filename: header.Filename, Cause: err})
		return
	}

	req := types.AnalyzeRequest{
		ResumeText: text,
		Role:       r.FormValue("role"),
		Category:   r.FormValue("category"),
	}
	if raw := r.FormValue("top_n"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "top_n must be an integer")
			return
		}
		req.TopN = n
	}

	s.runAnalysis(w, r, &req)
}

// handleAnalyzeExport runs an analysis and streams the ranked questions
// as a CSV attachment instead of JSON.
func (s *Server) handleAnalyzeExport(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	analysis, ok := s.analyze(w, r, &req)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", "interview_prep_"+analysis.SessionID+".csv"))
	w.WriteHeader(http.StatusOK)
	if err := analyzer.WriteCSV(w, analysis); err != nil {
		// Headers are already sent; all we can do is log.
		log.Printf("csv export write failed: %v", err)
	}
}

// runAnalysis validates the request, runs the analyzer, and writes the
// result as JSON.
func (s *Server) runAnalysis(w http.ResponseWriter, r *http.Request, req *types.AnalyzeRequest) {
	analysis, ok := s.analyze(w, r, req)
	if !ok {
		return
	}
	jsonResponse(w, http.StatusOK, analysis)
}

// analyze validates and executes the request, writing the error response
// itself on failure.
func (s *Server) analyze(w http.ResponseWriter, r *http.Request, req *types.AnalyzeRequest) (*types.Analysis, bool) {
	if err := req.Validate(); err != nil {
		writeAppError(w, &ErrValidation{Field: "request", Message: err.Error()})
		return nil, false
	}

	analysis, err := s.analyzer.Analyze(r.Context(), req.ResumeText, req.Role, types.Category(req.Category), req.TopN)
	if err != nil {
		writeError(w, HTTPStatus(err), err.Error())
		return nil, false
	}
	return analysis, true
}

func jsonResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

func writeAppError(w http.ResponseWriter, err error) {
	writeError(w, HTTPStatus(err), err.Error())
}
