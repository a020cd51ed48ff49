// Copyright (c) 2026 kamxnet All rights reserved.
//
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.

package scancerts

import (
	"crypto/x509"
	"encoding/pem"
	"errors"
	"time"

	"github.com/cloudflare/cfssl/crypto/pkcs7"
)

var (
	// ErrInvalidPEMBlock indicates that the provided data does not contain a valid PEM block.
	ErrInvalidPEMBlock = errors.New("scancerts: invalid PEM block")

	// ErrInvalidBlockType indicates that the PEM block type is not the expected certificate type.
	ErrInvalidBlockType = errors.New("scancerts: invalid block type")

	// ErrParseCertificate indicates a failure to parse the certificate from the provided data.
	ErrParseCertificate = errors.New("scancerts: failed to parse certificate")

	// ErrParsePKCS7 indicates a failure to parse PKCS7 formatted data.
	ErrParsePKCS7 = errors.New("scancerts: failed to parse PKCS7 data")

	// ErrNoCertificatesInPKCS indicates that no certificates were found in the PKCS7 data.
	ErrNoCertificatesInPKCS = errors.New("scancerts: no certificates found in PKCS7 data")
)

// Record describes one certificate resource as returned by the control plane.
type Record struct {
	// Name is the certificate resource name.
	Name string
	// Managed is true when the platform controls renewal of the certificate.
	Managed bool
	// Material is the raw certificate body, typically PEM. It may be empty
	// for managed certificates depending on the API surface.
	Material []byte
}

// Outcome describes the result of extracting an expiry instant from a Record.
type Outcome int

const (
	// OutcomeExpiry means an expiry instant was extracted successfully.
	OutcomeExpiry Outcome = iota
	// OutcomeNotApplicable means the certificate is platform-managed and its
	// expiry is never independently tracked.
	OutcomeNotApplicable
	// OutcomeMissing means the record carries no certificate material.
	OutcomeMissing
	// OutcomeUnparseable means the material could not be decoded.
	OutcomeUnparseable
)

// String returns a short label for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeExpiry:
		return "expiry"
	case OutcomeNotApplicable:
		return "not-applicable"
	case OutcomeMissing:
		return "missing"
	default:
		return "unparseable"
	}
}

// ExpiryResult is the parser verdict for one Record. NotAfter is only
// meaningful when Outcome is OutcomeExpiry and is always in UTC.
type ExpiryResult struct {
	Outcome  Outcome
	NotAfter time.Time
}

// Parser provides methods to decode [X.509] certificate material and extract
// expiry instants. It maintains internal configuration such as the expected
// certificate block type.
//
// [X.509]: https://en.wikipedia.org/wiki/X.509
type Parser struct {
	certBlockType string
}

// New creates a new Parser with default settings.
func New() *Parser {
	return &Parser{
		certBlockType: "CERTIFICATE",
	}
}

// IsPEM checks if the data is in PEM format.
func (p *Parser) IsPEM(data []byte) bool {
	block, _ := pem.Decode(data)
	return block != nil
}

// decodePEMBlock decodes a PEM block and checks its type.
func (p *Parser) decodePEMBlock(data []byte) (*pem.Block, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, ErrInvalidPEMBlock
	}
	if block.Type != p.certBlockType {
		return nil, ErrInvalidBlockType
	}
	return block, nil
}

// Decode decodes a single certificate from PEM, DER, or PKCS7 data.
func (p *Parser) Decode(data []byte) (*x509.Certificate, error) {
	if p.IsPEM(data) {
		block, err := p.decodePEMBlock(data)
		if err != nil {
			return nil, err
		}

		data = block.Bytes
	}

	cert, err := x509.ParseCertificate(data)
	if err == nil {
		return cert, nil
	}

	// Attempt to parse as PKCS7 using Cloudflare's library
	pk, err := pkcs7.ParsePKCS7(data)
	if err != nil {
		return nil, ErrParsePKCS7
	}
	if len(pk.Content.SignedData.Certificates) == 0 {
		return nil, ErrNoCertificatesInPKCS
	}

	return pk.Content.SignedData.Certificates[0], nil
}

// ParseExpiry extracts an expiry instant from the record.
//
// Managed records always yield OutcomeNotApplicable: the platform renews the
// certificate, so even perfectly valid material is never inspected. Records
// without material yield OutcomeMissing, undecodable material yields
// OutcomeUnparseable. ParseExpiry is a pure function of the record content
// and performs no I/O.
func (p *Parser) ParseExpiry(rec Record) ExpiryResult {
	if rec.Managed {
		return ExpiryResult{Outcome: OutcomeNotApplicable}
	}

	if len(rec.Material) == 0 {
		return ExpiryResult{Outcome: OutcomeMissing}
	}

	cert, err := p.Decode(rec.Material)
	if err != nil {
		return ExpiryResult{Outcome: OutcomeUnparseable}
	}

	return ExpiryResult{
		Outcome:  OutcomeExpiry,
		NotAfter: cert.NotAfter.UTC(),
	}
}
