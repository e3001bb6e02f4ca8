package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/anuj140/hireengine/internal/domain"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

type ErrorResponse struct {
	BaseResponse
	Error     string `json:"error"`
	ErrorCode string `json:"error_code,omitempty"`
}

type BaseResponse struct {
	Ok bool `json:"ok"`
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// domainErrors maps sentinel kinds to a status and a stable code clients can
// branch on, for instance to show an upgrade prompt. First match wins.
var domainErrors = []struct {
	err  error
	code int
	name string
}{
	{domain.ErrUnauthenticated, http.StatusUnauthorized, "unauthenticated"},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials"},
	{domain.ErrForbidden, http.StatusForbidden, "forbidden"},
	{domain.ErrNoSubscription, http.StatusPaymentRequired, "no_subscription"},
	{domain.ErrExpired, http.StatusPaymentRequired, "subscription_expired"},
	{domain.ErrLimitExceeded, http.StatusForbidden, "limit_exceeded"},
	{domain.ErrNotAllowed, http.StatusForbidden, "not_allowed"},
	{domain.ErrInvalidInput, http.StatusBadRequest, "invalid_input"},
	{domain.ErrEmailAlreadyExists, http.StatusConflict, "email_exists"},
	{domain.ErrAccountNotFound, http.StatusNotFound, "not_found"},
	{domain.ErrNotFound, http.StatusNotFound, "not_found"},
}

// respondWithDomainError maps service errors onto status codes. Policy
// errors carry their user-facing message; anything unrecognised is logged
// and reported as a 500.
func respondWithDomainError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	for _, m := range domainErrors {
		if errors.Is(err, m.err) {
			respondWithJSON(w, m.code, ErrorResponse{Error: domain.Message(err), ErrorCode: m.name})
			return
		}
	}

	logger.ErrorContext(r.Context(), "request failed",
		"error", err,
		"path", r.URL.Path,
		"requestID", chimw.GetReqID(r.Context()),
	)
	respondWithJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error", ErrorCode: "internal"})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return false
	}
	return true
}

func parseID(w http.ResponseWriter, raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid id format")
		return uuid.Nil, false
	}
	return id, true
}
