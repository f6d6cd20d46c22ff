package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"textrank/internal/domain/entity"
	"textrank/internal/handler/http/requestid"
	"textrank/internal/handler/http/respond"
	"textrank/internal/observability/logging"
	"textrank/internal/usecase/summary"
)

var errMethodNotAllowed = errors.New("method not allowed")

// SummarizeRequest is the JSON body of POST /summarize.
//
// Ratio, WordCount and NbSentences select the summary length. At most one
// of WordCount and NbSentences may be set; either overrides Ratio.
type SummarizeRequest struct {
	Text        string   `json:"text"`
	Ratio       *float64 `json:"ratio,omitempty"`
	WordCount   *int     `json:"word_count,omitempty"`
	NbSentences *int     `json:"nb_sentences,omitempty"`
	Split       bool     `json:"split,omitempty"`
}

// SummarizeResponse is the JSON body returned by POST /summarize. Exactly
// one of Summary and Sentences is set, depending on the split flag.
type SummarizeResponse struct {
	Summary   *string  `json:"summary,omitempty"`
	Sentences []string `json:"sentences,omitempty"`
}

// Summarizer produces an extractive summary of a text.
type Summarizer interface {
	Summarize(ctx context.Context, text string, opts summary.Options) (*summary.Summary, error)
}

// SummarizeHandler handles POST /summarize requests.
type SummarizeHandler struct {
	Service Summarizer
	Logger  *slog.Logger
}

// NewSummarizeHandler creates a summarize handler. A nil logger falls back
// to slog.Default.
func NewSummarizeHandler(service Summarizer, logger *slog.Logger) *SummarizeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SummarizeHandler{Service: service, Logger: logger}
}

// ServeHTTP implements http.Handler.
func (h *SummarizeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		respond.Error(w, http.StatusMethodNotAllowed, errMethodNotAllowed)
		return
	}

	var req SummarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, errors.New("invalid JSON body"))
		return
	}

	if req.Text == "" {
		respond.Error(w, http.StatusBadRequest, errors.New("text is required"))
		return
	}

	opts := summary.Options{
		WordCount:     req.WordCount,
		SentenceCount: req.NbSentences,
	}
	if req.Ratio != nil {
		opts.Ratio = *req.Ratio
	}

	logger := logging.WithRequestID(r.Context(), h.Logger)

	sum, err := h.Service.Summarize(r.Context(), req.Text, opts)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidInput) {
			respond.Error(w, http.StatusBadRequest, err)
			return
		}
		logger.Error("summarization failed",
			slog.String("request_id", requestid.FromContext(r.Context())),
			slog.Any("error", err))
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	if req.Split {
		respond.JSON(w, http.StatusOK, SummarizeResponse{Sentences: sum.Lines()})
		return
	}

	text := sum.Text()
	respond.JSON(w, http.StatusOK, SummarizeResponse{Summary: &text})
}

// NewRouter builds the application's HTTP routes with the standard
// middleware chain applied to the summarize endpoint.
func NewRouter(service Summarizer, logger *slog.Logger, maxBodySize int64, version string) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	mux := http.NewServeMux()

	summarize := Chain(
		NewSummarizeHandler(service, logger),
		requestid.Middleware,
		Logging(logger),
		Recover(logger),
		MetricsMiddleware,
		MaxBody(maxBodySize),
	)

	mux.Handle("/summarize", summarize)
	mux.Handle("/healthz", &HealthHandler{Version: version})
	mux.Handle("/metrics", MetricsHandler())

	return mux
}
