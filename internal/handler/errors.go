package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"care-info-api/internal/store"
)

// ValidationError is a missing or malformed field; its message goes to the client as is.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

var errInvalidCredentials = errors.New("invalid credentials")

const (
	msgInvalidCredentials = "Invalid email or password"
	msgDuplicateEmail     = "Email already registered"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"message": msg})
}

// fail maps err onto the response. Unclassified errors are storage failures:
// 500 with {error: storageMsg}, or the raw error text when storageMsg is empty.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, storageMsg string) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		writeMessage(w, http.StatusBadRequest, verr.Msg)
	case errors.Is(err, store.ErrDuplicateEmail):
		writeMessage(w, http.StatusBadRequest, msgDuplicateEmail)
	case errors.Is(err, errInvalidCredentials):
		writeMessage(w, http.StatusUnauthorized, msgInvalidCredentials)
	case errors.Is(err, store.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "Not found")
	default:
		h.log.WithError(err).WithField("path", r.URL.Path).Error("storage error")
		if storageMsg == "" {
			storageMsg = err.Error()
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": storageMsg})
	}
}

// decode reads a JSON body into v. An empty body leaves v zeroed.
func decode(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return &ValidationError{Msg: "Invalid request body"}
}
