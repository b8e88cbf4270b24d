// Package respond is the single place that serializes JSON responses,
// including the {error: {message, status}} body.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/MrJamesThe3rd/biztime/internal/apperror"
)

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// Error maps err onto an HTTP status and writes the error body. Errors that
// do not carry a status are treated as internal with their raw message.
func Error(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := err.Error()

	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		status = appErr.Status
		message = appErr.Message
	}

	JSON(w, status, errorBody{Error: errorDetail{Message: message, Status: status}})
}
