package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/dnovais/cvlens"
)

type handler struct {
	analyzer cvlens.Analyzer
}

func newHandler(a cvlens.Analyzer) *handler {
	return &handler{analyzer: a}
}

// POST /analyze
// Accepts multipart file upload or JSON with file path.
func (h *handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Minute)
	defer cancel()

	// Try multipart upload first
	if err := r.ParseMultipartForm(20 << 20); err == nil { // 20MB max
		file, header, err := r.FormFile("file")
		if err == nil {
			defer file.Close()

			data, err := io.ReadAll(file)
			if err != nil {
				writeError(w, http.StatusInternalServerError, "failed to read file")
				slog.Error("reading uploaded file", "error", err)
				return
			}

			// Sanitise filename to prevent path traversal.
			safeName := filepath.Base(header.Filename)

			doc, err := h.analyzer.ParseBytes(ctx, data, safeName, parseOptions(r)...)
			if err != nil {
				writeParseError(w, safeName, err)
				return
			}

			writeJSON(w, http.StatusOK, doc)
			return
		}
	}

	// Try JSON body with path
	var req struct {
		Path    string            `json:"path"`
		Options map[string]string `json:"options,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request: expected multipart file or JSON with 'path'")
		return
	}

	if req.Path == "" {
		writeError(w, http.StatusBadRequest, "path is required")
		return
	}

	// Validate that path is a real file (prevents directory traversal probing).
	absPath, err := filepath.Abs(req.Path)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid path")
		return
	}
	info, err := os.Stat(absPath)
	if err != nil || info.IsDir() {
		writeError(w, http.StatusBadRequest, "path must be an existing file")
		return
	}

	var opts []cvlens.ParseOption
	if _, ok := req.Options["no_cache"]; ok {
		opts = append(opts, cvlens.WithoutCache())
	}

	doc, err := h.analyzer.Parse(ctx, absPath, opts...)
	if err != nil {
		writeParseError(w, absPath, err)
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

func parseOptions(r *http.Request) []cvlens.ParseOption {
	var opts []cvlens.ParseOption
	if r.FormValue("no_cache") != "" {
		opts = append(opts, cvlens.WithoutCache())
	}
	return opts
}

func writeParseError(w http.ResponseWriter, name string, err error) {
	switch {
	case errors.Is(err, cvlens.ErrUnsupportedFormat):
		writeError(w, http.StatusUnsupportedMediaType, "unsupported document format")
	case errors.Is(err, cvlens.ErrDecodeFailed), errors.Is(err, cvlens.ErrEmptyDocument):
		writeError(w, http.StatusUnprocessableEntity, "document could not be parsed")
	default:
		writeError(w, http.StatusInternalServerError, "analysis failed")
	}
	slog.Error("analyze error", "file", name, "error", err)
}

// GET /documents
func (h *handler) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := h.analyzer.Documents(r.Context())
	if err != nil {
		if errors.Is(err, cvlens.ErrStoreDisabled) {
			writeError(w, http.StatusNotImplemented, "result store is disabled")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to list documents")
		slog.Error("list documents error", "error", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"documents": docs,
	})
}

// GET /documents/{id}
func (h *handler) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	doc, err := h.analyzer.Document(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, cvlens.ErrStoreDisabled):
			writeError(w, http.StatusNotImplemented, "result store is disabled")
		case errors.Is(err, cvlens.ErrDocumentNotFound):
			writeError(w, http.StatusNotFound, "document not found")
		default:
			writeError(w, http.StatusInternalServerError, "failed to load document")
			slog.Error("get document error", "document_id", id, "error", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

// DELETE /documents/{id}
func (h *handler) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.analyzer.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, cvlens.ErrStoreDisabled):
			writeError(w, http.StatusNotImplemented, "result store is disabled")
		case errors.Is(err, cvlens.ErrDocumentNotFound):
			writeError(w, http.StatusNotFound, "document not found")
		default:
			writeError(w, http.StatusInternalServerError, "delete failed")
			slog.Error("delete error", "document_id", id, "error", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// GET /health
func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid document id")
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": fmt.Sprintf("%s", msg)})
}
