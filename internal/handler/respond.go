package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/johndosdos/chirp/internal/service"
)

// decodeBody rejects fields the entity does not declare.
func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("handler: malformed request body: %w", err)
	}
	return nil
}

// pathID rejects ids that are not int32 decimals; callers answer 400.
func pathID(r *http.Request) (int32, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("handler: invalid id %q: %w", raw, err)
	}
	return int32(id), nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.ErrorContext(r.Context(), "failed to encode response", slog.Any("error", err))
	}
}

func badRequest(w http.ResponseWriter, r *http.Request, err error) {
	slog.WarnContext(r.Context(), "bad request", slog.Any("error", err))
	w.WriteHeader(http.StatusBadRequest)
}

// writeError maps rule violations to 400 and everything else to 500. No
// detail is written to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, service.ErrRegistration) || errors.Is(err, service.ErrMessageValidation) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	slog.ErrorContext(r.Context(), "request failed", slog.Any("error", err))
	w.WriteHeader(http.StatusInternalServerError)
}
