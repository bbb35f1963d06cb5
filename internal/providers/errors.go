package providers

import "errors"

var (
	// ErrCSRFTokenNotFound indicates the shutdowns page has no csrf-token meta tag.
	ErrCSRFTokenNotFound = errors.New("csrf token not found")

	// ErrUnexpectedResponse indicates the ajax endpoint answered with result=false.
	ErrUnexpectedResponse = errors.New("unexpected ajax response")
)
