package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/cours-de-latin/corrector"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ---- JSON types ---------------------------------------------------------

type textRequest struct {
	Text string `json:"text"`
}

type correctResponse struct {
	Text      string `json:"text"`
	Corrected string `json:"corrected"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

// holder gives handlers the current corrector; the lexicon watcher
// swaps in a new one after a reload.
type holder struct {
	p atomic.Pointer[corrector.Corrector]
}

func (h *holder) get() *corrector.Corrector {
	return h.p.Load()
}

func (h *holder) set(c *corrector.Corrector) {
	h.p.Store(c)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeCorrectionError maps a correction failure to a response.
func writeCorrectionError(w http.ResponseWriter, err error) {
	var invalid *corrector.InvalidFormError
	if errors.As(err, &invalid) {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}

func decodeText(w http.ResponseWriter, r *http.Request) (string, bool) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return "", false
	}
	var body textRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Text == "" {
		writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
		return "", false
	}
	return body.Text, true
}

// ---- handlers -----------------------------------------------------------

func handleCorrectParagraph(h *holder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		text, ok := decodeText(w, r)
		if !ok {
			return
		}
		corrected, err := h.get().CorrectParagraph(text)
		if err != nil {
			writeCorrectionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, correctResponse{Text: text, Corrected: corrected})
	}
}

func handleCorrectSentence(h *holder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		text, ok := decodeText(w, r)
		if !ok {
			return
		}
		corrected, err := h.get().CorrectSentence(text)
		if err != nil {
			writeCorrectionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, correctResponse{Text: text, Corrected: corrected})
	}
}

func handleCheck(h *holder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		text, ok := decodeText(w, r)
		if !ok {
			return
		}
		report, err := h.get().Check(text)
		if err != nil {
			writeCorrectionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

func handleVocabulary(h *holder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		writeJSON(w, http.StatusOK, h.get().Vocabulary())
	}
}

// ---- routing ------------------------------------------------------------

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withRequestLog tags every request with an id and logs its outcome.
func withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-Id")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", reqID)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		log.Info().
			Str("requestId", reqID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("took", time.Since(start)).
			Msg("request")
	})
}

func newMux(h *holder) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/correct/sentence", handleCorrectSentence(h))
	mux.HandleFunc("/api/correct", handleCorrectParagraph(h))
	mux.HandleFunc("/api/check", handleCheck(h))
	mux.HandleFunc("/api/vocabulary", handleVocabulary(h))
	return mux
}
