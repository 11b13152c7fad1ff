package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"puntos-store/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: model.ErrCodeInternalError, Message: message})
}

// domainError unwraps err into a DomainError, if it is one.
func domainError(err error) (*model.DomainError, bool) {
	var de *model.DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// redirectWithReason redirects to path carrying the failure reason in
// query parameters. Domain failures are recovered here: the user sees the
// reason and no state has been mutated.
func redirectWithReason(w http.ResponseWriter, r *http.Request, path string, de *model.DomainError) {
	q := url.Values{}
	q.Set("error", de.Code)
	q.Set("message", de.Message)
	http.Redirect(w, r, path+"?"+q.Encode(), http.StatusSeeOther)
}
