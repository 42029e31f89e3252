// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The planoespecialindividualizado Authors

package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	ErrRequestFailed = errors.New("request failed")
	ErrInvalidBody   = errors.New("invalid response body")
)

// HTTPError is a non-2xx server response.
type HTTPError struct {
	StatusCode int
	Kind       string
	Message    string
	Fields     []string

	status error
}

func (e *HTTPError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%v: %s", e.status, msg)
}

// Unwrap returns the status sentinel.
func (e *HTTPError) Unwrap() error {
	return e.status
}
