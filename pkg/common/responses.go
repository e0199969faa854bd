// Package common holds the response envelope and the request-scoped
// helpers shared by every HTTP handler.
package common

import (
	"encoding/json"
	"net/http"
	"time"
)

// Metadata is attached to every response body.
type Metadata struct {
	RequestID  string `json:"requestId"`
	Timestamp  string `json:"timestamp"`
	DurationMs *int64 `json:"durationMs,omitempty"`
}

// Pagination describes the window of a list response. Total counts the
// filtered set before pagination, not just the returned page.
type Pagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

// ErrorInfo is the error half of the envelope.
type ErrorInfo struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// Envelope is the uniform JSON response wrapper.
type Envelope struct {
	Data       interface{} `json:"data,omitempty"`
	Error      *ErrorInfo  `json:"error,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Metadata   Metadata    `json:"metadata"`
}

// SuccessResult is the body of mutation responses.
type SuccessResult struct {
	Success bool `json:"success"`
}

// RespondJSON writes a success envelope.
func RespondJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	writeEnvelope(w, r, status, Envelope{Data: data})
}

// RespondPage writes a success envelope carrying pagination details.
func RespondPage(w http.ResponseWriter, r *http.Request, status int, data interface{}, page *Pagination) {
	writeEnvelope(w, r, status, Envelope{Data: data, Pagination: page})
}

// RespondError writes an error envelope.
func RespondError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeEnvelope(w, r, status, Envelope{Error: &ErrorInfo{Code: code, Message: message}})
}

// writeEnvelope stamps metadata from the request context and writes the
// body. It must not fail the request: encoding errors after the header is
// written are dropped, the envelope itself always marshals.
func writeEnvelope(w http.ResponseWriter, r *http.Request, status int, env Envelope) {
	env.Metadata = buildMetadata(r)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

func buildMetadata(r *http.Request) Metadata {
	meta := Metadata{Timestamp: time.Now().UTC().Format(time.RFC3339Nano)}

	if r == nil {
		return meta
	}
	if requestID, ok := GetRequestID(r.Context()); ok {
		meta.RequestID = requestID
	}
	if start, ok := GetStartTime(r.Context()); ok {
		elapsed := time.Since(start).Milliseconds()
		meta.DurationMs = &elapsed
	}
	return meta
}
