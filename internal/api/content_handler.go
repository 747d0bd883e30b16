package api

import (
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/inspiro-ai/inspiro-api/internal/api/shared"
	"github.com/inspiro-ai/inspiro-api/internal/domain"
	"github.com/inspiro-ai/inspiro-api/internal/platform/logger"
	"github.com/inspiro-ai/inspiro-api/internal/service"
)

// ContentHandler handles content-related HTTP requests
type ContentHandler struct {
	contentService service.ContentService
	logger         *slog.Logger
	now            func() time.Time
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(contentService service.ContentService, logger *slog.Logger) *ContentHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ContentHandler")
	}

	return &ContentHandler{
		contentService: contentService,
		logger:         logger.With(slog.String("component", "content_handler")),
		now:            time.Now,
	}
}

// Routes mounts the content endpoints on r.
func (h *ContentHandler) Routes(r chi.Router) {
	r.Post("/", h.GenerateContent)
	r.Post("/explain", h.ExplainWord)
	r.Post("/download", h.DownloadContent)
}

// GenerateContent handles POST /api/content requests
func (h *ContentHandler) GenerateContent(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req GenerateContentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	genReq, err := domain.NewGenerationRequest(domain.GenerationParams{
		Topic:     req.Topic,
		Format:    req.Format,
		Tone:      req.Tone,
		Style:     req.Style,
		WordCount: req.WordCount,
		Language:  req.Language,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	sessionKey := r.Header.Get(shared.SessionKeyHeader)
	composition, err := h.contentService.Compose(r.Context(), sessionKey, genReq)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to generate content")
		return
	}

	log.Debug("content composed",
		slog.String("composition_id", composition.ID.String()),
		slog.String("source", string(composition.Source)))

	shared.RespondWithJSON(w, r, http.StatusOK, ContentResponse{
		ID:        composition.ID.String(),
		Content:   composition.Text,
		Source:    string(composition.Source),
		Format:    string(composition.Request.Format),
		Language:  string(composition.Request.Language),
		WordCount: composition.Request.WordCount,
		Sequence:  composition.Sequence,
		CreatedAt: composition.CreatedAt,
	})
}

// ExplainWord handles POST /api/content/explain requests
func (h *ContentHandler) ExplainWord(w http.ResponseWriter, r *http.Request) {
	var req ExplainWordRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	expReq, err := domain.NewExplanationRequest(req.Word, req.Language, req.Context)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	explanation, err := h.contentService.Explain(r.Context(), r.Header.Get(shared.SessionKeyHeader), expReq)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to explain word")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ExplanationResponse{
		Word:        explanation.Word,
		Explanation: explanation.Text,
		Source:      string(explanation.Source),
	})
}

// DownloadContent handles POST /api/content/download requests. It returns the
// content as a plain text attachment named <format>-<timestamp>.txt.
func (h *ContentHandler) DownloadContent(w http.ResponseWriter, r *http.Request) {
	var req DownloadRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if strings.TrimSpace(req.Content) == "" {
		HandleAPIError(w, r, domain.NewValidationError("content", "is required", domain.ErrValidation), "")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	format, err := domain.ParseFormat(req.Format)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	filename := DownloadFilename(format, h.now())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(req.Content)); err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).Warn("failed to write download", "error", err)
	}
}

// DownloadFilename names a downloaded text file after its format and the
// moment it was produced, in UTC RFC 3339.
func DownloadFilename(format domain.Format, at time.Time) string {
	return fmt.Sprintf("%s-%s.txt", format, at.UTC().Format(time.RFC3339))
}
