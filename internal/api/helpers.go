package api

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"

	"github.com/vytor/dialoguedeck/internal/errors"
	"github.com/vytor/dialoguedeck/internal/logger"
)

const maxBodyBytes = 64 << 10

type envelope struct {
	Data    any    `json:"data"`
	Warning string `json:"warning,omitempty"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromContext(r.Context()).Warn("failed to encode response: %v", err)
	}
}

// respond writes data in the standard envelope. A persistence warning is
// reported alongside the data instead of replacing it.
func respond(w http.ResponseWriter, r *http.Request, status int, data any, err error) {
	if err != nil && !errors.IsWarning(err) {
		handleError(w, r, err)
		return
	}
	body := envelope{Data: data}
	if err != nil {
		logger.FromContext(r.Context()).Warn("mutation applied but not saved: %v", err)
		body.Warning = err.Error()
		var appErr *errors.AppError
		if stderrors.As(err, &appErr) {
			body.Warning = appErr.Message
		}
	}
	writeJSON(w, r, status, body)
}

// decodeOptionalJSON is decodeJSON that leaves dst untouched when the body is
// empty, whatever the request's Content-Length says.
func decodeOptionalJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	err := dec.Decode(dst)
	if err == nil || stderrors.Is(err, io.EOF) {
		return nil
	}
	return errors.NewBadRequestError("invalid JSON body: " + err.Error())
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return errors.NewBadRequestError("invalid JSON body: " + err.Error())
	}
	return nil
}
