package dto

import "time"

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse acknowledges a mutation that returns no record.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ClientsResponse lists distinct client names.
type ClientsResponse struct {
	Clientes []string `json:"clientes"`
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
