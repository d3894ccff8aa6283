package services

import "fmt"

// UpstreamError marks a collaborator (Resend, Gemini) failure so handlers can
// map it to a 5xx instead of blaming the client.
type UpstreamError struct {
	Provider string
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s request failed: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
