package updates

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/weekly/pkg/handlers"
	"github.com/JaimeStill/weekly/pkg/routes"
)

// Handler provides HTTP endpoints for composing updates.
type Handler struct {
	sys              System
	logger           *slog.Logger
	maxBodySize      int64
	batchConcurrency int
}

// BatchRequest is the body of the batch endpoint.
type BatchRequest struct {
	Requests []Request `json:"requests" yaml:"requests"`
}

// NewHandler creates a Handler. Request bodies larger than maxBodySize are
// rejected with 413.
func NewHandler(sys System, logger *slog.Logger, maxBodySize int64, batchConcurrency int) *Handler {
	return &Handler{
		sys:              sys,
		logger:           logger.With("handler", "updates"),
		maxBodySize:      maxBodySize,
		batchConcurrency: batchConcurrency,
	}
}

// Routes returns the update route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/updates",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Compose},
			{Method: "POST", Pattern: "/preview", Handler: h.Preview},
			{Method: "POST", Pattern: "/batch", Handler: h.Batch},
			{Method: "GET", Pattern: "/catalog", Handler: h.Catalog},
		},
	}
}

// Compose returns the four document views as JSON.
func (h *Handler) Compose(w http.ResponseWriter, r *http.Request) {
	req, err := DecodeRequest(http.MaxBytesReader(w, r.Body, h.maxBodySize))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	doc, err := h.sys.Compose(r.Context(), req)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, doc)
}

// Preview returns the composed document rendered as HTML.
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	req, err := DecodeRequest(http.MaxBytesReader(w, r.Body, h.maxBodySize))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	doc, err := h.sys.Compose(r.Context(), req)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	body, err := doc.HTML()
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondHTML(w, http.StatusOK, body)
}

// Batch composes every request in the body and returns per-item results.
// Items that fail to decode are reported in their own result.
func (h *Handler) Batch(w http.ResponseWriter, r *http.Request) {
	var batch struct {
		Requests []json.RawMessage `json:"requests"`
	}
	if err := decodeJSON(http.MaxBytesReader(w, r.Body, h.maxBodySize), &batch); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	if len(batch.Requests) == 0 {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrEmptyBatch)
		return
	}

	results := make([]BatchResult, len(batch.Requests))
	var (
		reqs    []Request
		indexes []int
	)
	for i, raw := range batch.Requests {
		var req Request
		if err := json.Unmarshal(raw, &req); err != nil {
			results[i] = BatchResult{Index: i, Error: decodeError(err).Error()}
			continue
		}
		reqs = append(reqs, req)
		indexes = append(indexes, i)
	}

	composed, err := ComposeBatch(r.Context(), h.sys, reqs, h.batchConcurrency)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusServiceUnavailable, err)
		return
	}
	for j, res := range composed {
		res.Index = indexes[j]
		results[indexes[j]] = res
	}

	handlers.RespondJSON(w, http.StatusOK, results)
}

// Catalog lists the accepted template and tone names.
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.sys.Catalog())
}
