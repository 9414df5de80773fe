package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/AbbasAli4ever/FinanxBackend-sub001/internal/ledger"
	"go.uber.org/zap"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func mapError(err error) int {
	switch {
	case errors.Is(err, ledger.ErrAccountNotFound),
		errors.Is(err, ledger.ErrEntryNotFound):
		return http.StatusNotFound
	case errors.Is(err, ledger.ErrDuplicateAccountNumber),
		errors.Is(err, ledger.ErrDuplicateName):
		return http.StatusConflict
	case errors.Is(err, ledger.ErrInvalidAccountType),
		errors.Is(err, ledger.ErrInvalidDetailType),
		errors.Is(err, ledger.ErrNameRequired),
		errors.Is(err, ledger.ErrInvalidDate),
		errors.Is(err, ledger.ErrEmptyDescription),
		errors.Is(err, ledger.ErrTooFewLines),
		errors.Is(err, ledger.ErrUnbalancedEntry):
		return http.StatusBadRequest
	case errors.Is(err, ledger.ErrParentTypeMismatch),
		errors.Is(err, ledger.ErrDepthExceeded),
		errors.Is(err, ledger.ErrSystemAccount),
		errors.Is(err, ledger.ErrHasSubAccounts),
		errors.Is(err, ledger.ErrNonZeroBalance):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			log.Debug("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Duration("took", time.Since(start)))
		})
	}
}
