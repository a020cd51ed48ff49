// Copyright (c) 2026 kamxnet All rights reserved.
//
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.

package scanpipe

import (
	"time"

	scancerts "github.com/kamxnet/tls-cert-tracker/src/internal/scan/certs"
)

// Severity is the five-way classification of one finding.
type Severity string

const (
	// SeverityOK means the certificate expires 30 days or more from now.
	SeverityOK Severity = "OK"
	// SeverityWarning means the certificate expires in the 10 to 30 day band.
	SeverityWarning Severity = "WARNING"
	// SeverityExpiringSoon means the certificate expires in under 10 days,
	// including certificates that have already expired.
	SeverityExpiringSoon Severity = "EXPIRING_SOON"
	// SeverityError means the certificate material could not be fetched or parsed.
	SeverityError Severity = "ERROR"
	// SeverityNotApplicable means the certificate is platform-managed and
	// renewal is not the operator's concern.
	SeverityNotApplicable Severity = "NOT_APPLICABLE"
)

// Default classification windows. Thresholds compare remaining duration,
// not truncated calendar days: an expiry exactly 10 days out is WARNING,
// one second short of that is EXPIRING_SOON.
const (
	DefaultSoonWindow = 10 * 24 * time.Hour
	DefaultWarnWindow = 30 * 24 * time.Hour
)

// Classifier maps parser verdicts to severities. The zero value is not
// usable; construct with NewClassifier.
type Classifier struct {
	// SoonWindow is the remaining-duration bound below which a certificate
	// is EXPIRING_SOON.
	SoonWindow time.Duration
	// WarnWindow is the remaining-duration bound below which a certificate
	// is at least WARNING.
	WarnWindow time.Duration
}

// NewClassifier creates a Classifier with the default 10/30 day windows.
func NewClassifier() *Classifier {
	return &Classifier{
		SoonWindow: DefaultSoonWindow,
		WarnWindow: DefaultWarnWindow,
	}
}

// Classify returns the severity for one parser verdict at the given instant.
//
// Classify is total: every outcome maps to exactly one severity. The
// EXPIRING_SOON band is checked before WARNING since it is the narrower,
// more urgent band nested inside it. Already-expired certificates fall into
// EXPIRING_SOON; there is no separate expired severity.
func (c *Classifier) Classify(res scancerts.ExpiryResult, now time.Time) Severity {
	switch res.Outcome {
	case scancerts.OutcomeNotApplicable:
		return SeverityNotApplicable
	case scancerts.OutcomeMissing, scancerts.OutcomeUnparseable:
		return SeverityError
	}

	remaining := res.NotAfter.Sub(now)
	switch {
	case remaining < c.SoonWindow:
		return SeverityExpiringSoon
	case remaining < c.WarnWindow:
		return SeverityWarning
	default:
		return SeverityOK
	}
}
