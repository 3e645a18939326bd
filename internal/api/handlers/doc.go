// Package handlers implements the HTTP handlers of the storefront catalog
// API. Storefront reads and job history are huma operations and appear in
// the generated OpenAPI document. Admin CRUD and the probes are plain echo
// handlers because they take multipart uploads or must stay outside the
// API surface.
package handlers

// ErrorResponse is the body of every admin error response.
type ErrorResponse struct {
	Error string `json:"error" example:"brand not found"`
}

// StatusResponse is the body of the probe endpoints. Error is set only when
// a dependency check failed.
type StatusResponse struct {
	Status string `json:"status" example:"ready"`
	Error  string `json:"error,omitempty" example:"context deadline exceeded"`
}
