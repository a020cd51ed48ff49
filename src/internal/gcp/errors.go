// Copyright (c) 2026 kamxnet All rights reserved.
//
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.

package gcp

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
)

var (
	// ErrAuth indicates invalid or expired credentials.
	ErrAuth = errors.New("gcp: authentication failed")

	// ErrPermission indicates the caller lacks read access to the resource.
	ErrPermission = errors.New("gcp: permission denied")

	// ErrNotFound indicates the resource vanished between listing and fetch.
	ErrNotFound = errors.New("gcp: resource not found")

	// ErrTransient indicates a retryable network or service fault.
	ErrTransient = errors.New("gcp: transient upstream fault")
)

// classifyError wraps an upstream API error with the matching sentinel so
// callers can branch on the failure mode with errors.Is. Errors that carry
// no HTTP status are treated as transient network faults.
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("%w: %v", ErrTransient, err)
	}

	switch {
	case apiErr.Code == http.StatusUnauthorized:
		return fmt.Errorf("%w: %v", ErrAuth, err)
	case apiErr.Code == http.StatusForbidden:
		return fmt.Errorf("%w: %v", ErrPermission, err)
	case apiErr.Code == http.StatusNotFound:
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= 500:
		return fmt.Errorf("%w: %v", ErrTransient, err)
	default:
		return err
	}
}

// retryable reports whether a classified error is worth retrying.
func retryable(err error) bool {
	return errors.Is(err, ErrTransient)
}
