package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/slang-backend/internal/domain"
	"github.com/heartmarshall/slang-backend/internal/matcher"
)

const maxRequestBody = 64 << 10

// translatorService defines the minimal interface needed by TranslateHandler.
type translatorService interface {
	Translate(ctx context.Context, phrase string) (*domain.Translation, error)
	Suggest(ctx context.Context, query string, limit int) ([]string, error)
	Entry(ctx context.Context, term string) (*domain.Entry, error)
	Categories(ctx context.Context) ([]domain.Category, error)
}

// TranslateHandler serves the slang lookup endpoints.
type TranslateHandler struct {
	svc          translatorService
	log          *slog.Logger
	maxSuggested int
}

// NewTranslateHandler creates a TranslateHandler. maxSuggestions caps the
// limit query parameter of the suggestions endpoint.
func NewTranslateHandler(svc translatorService, logger *slog.Logger, maxSuggestions int) *TranslateHandler {
	return &TranslateHandler{
		svc:          svc,
		log:          logger.With("handler", "translate"),
		maxSuggested: matcher.ClampLimit(maxSuggestions),
	}
}

type translateRequest struct {
	Phrase string `json:"phrase"`
}

// TranslationResponse is the data payload of POST /api/translate.
type TranslationResponse struct {
	OriginalPhrase string   `json:"originalPhrase"`
	Translation    string   `json:"translation"`
	Confidence     float64  `json:"confidence"`
	Alternatives   []string `json:"alternatives"`
	Kind           string   `json:"kind"`
	MatchedTerm    string   `json:"matchedTerm,omitempty"`
}

// EntryResponse is the data payload of GET /api/entries/{term}.
type EntryResponse struct {
	Term            string   `json:"term"`
	Translation     string   `json:"translation"`
	Category        string   `json:"category"`
	CategoryLabel   string   `json:"categoryLabel"`
	CulturalContext string   `json:"culturalContext,omitempty"`
	Examples        []string `json:"examples"`
}

// Translate handles POST /api/translate.
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.svc.Translate(r.Context(), req.Phrase)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	alternatives := result.Alternatives
	if alternatives == nil {
		alternatives = []string{}
	}
	writeSuccess(w, r, TranslationResponse{
		OriginalPhrase: result.OriginalPhrase,
		Translation:    result.DisplayText(),
		Confidence:     result.Confidence,
		Alternatives:   alternatives,
		Kind:           result.Kind.String(),
		MatchedTerm:    result.MatchedTerm,
	})
}

// Suggestions handles GET /api/suggestions?query=...&limit=...
func (h *TranslateHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit, err := strconv.Atoi(q.Get("limit"))
	if err != nil || limit <= 0 || limit > h.maxSuggested {
		limit = h.maxSuggested
	}

	suggestions, err := h.svc.Suggest(r.Context(), q.Get("query"), limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeSuccess(w, r, suggestions)
}

// Entry handles GET /api/entries/{term}.
func (h *TranslateHandler) Entry(w http.ResponseWriter, r *http.Request) {
	entry, err := h.svc.Entry(r.Context(), r.PathValue("term"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	category := entry.CategorySlug()
	examples := entry.Examples
	if examples == nil {
		examples = []string{}
	}
	writeSuccess(w, r, EntryResponse{
		Term:            entry.Term,
		Translation:     entry.Translation,
		Category:        category,
		CategoryLabel:   domain.CategoryLabel(category),
		CulturalContext: entry.CulturalContext,
		Examples:        examples,
	})
}

// Categories handles GET /api/categories.
func (h *TranslateHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.Categories(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeSuccess(w, r, categories)
}

func (h *TranslateHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, r, http.StatusBadRequest, validationMessage(err))
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "Entry not found")
	case errors.Is(err, domain.ErrDictionaryUnavailable):
		writeError(w, r, http.StatusInternalServerError, "Slang dictionary not loaded")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, r, http.StatusInternalServerError, "Internal server error")
	}
}

func validationMessage(err error) string {
	var ve *domain.ValidationError
	if errors.As(err, &ve) && len(ve.Errors) == 1 {
		return ve.Errors[0].Message
	}
	return err.Error()
}
