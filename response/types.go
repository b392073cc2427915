package response

import "encoding/json"

// Envelope is the uniform wrapper returned for every dispatched query
type Envelope struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data,omitempty"`
	Error     string          `json:"error,omitempty"`
	Timestamp string          `json:"timestamp"`
}

// ErrorBody is returned for requests rejected before dispatch
type ErrorBody struct {
	Error string `json:"error"`
}

// Health describes gateway liveness and whether credentials were configured
type Health struct {
	Status      string `json:"status"`
	Version     string `json:"version"`
	Credentials bool   `json:"credentials"`
}
