// Package response provides helpers for writing consistent JSON HTTP
// responses from the schools API handlers.
//
// Success responses may be any JSON shape (a school, a list of schools).
// Error responses always look like:
//
//	{ "status": "error", "error": "field name is required" }
package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Response is the envelope returned for error cases.
type Response struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// StatusError is the status of every error envelope.
const StatusError = "error"

// WriteJSON writes data as JSON with the given HTTP status code.
//
// Order matters: Header() → WriteHeader() → body. Headers are locked once
// the status line is written.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// GeneralError wraps any error into the error envelope.
func GeneralError(err error) Response {
	return Response{
		Status: StatusError,
		Error:  err.Error(),
	}
}

// ValidationError turns validator field errors into one readable message,
// joined with ", ".
//
//	{ "status": "error", "error": "field name is required, field email_id is required" }
func ValidationError(errs validator.ValidationErrors) Response {
	var errMessages []string

	for _, e := range errs {
		if e.ActualTag() == "required" {
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is required", e.Field()))
			continue
		}
		errMessages = append(errMessages,
			fmt.Sprintf("field %s is invalid", e.Field()))
	}

	return Response{
		Status: StatusError,
		Error:  strings.Join(errMessages, ", "),
	}
}
