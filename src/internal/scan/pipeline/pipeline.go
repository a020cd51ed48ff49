// Copyright (c) 2026 kamxnet All rights reserved.
//
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.

package scanpipe

import (
	"context"
	"path"
	"sync"
	"time"

	scancerts "github.com/kamxnet/tls-cert-tracker/src/internal/scan/certs"
)

// Fetcher resolves a certificate reference to its record. Implementations
// talk to the control plane; tests substitute canned records.
type Fetcher interface {
	FetchCertificate(ctx context.Context, ref string) (scancerts.Record, error)
}

// Finding is one reportable row of the scan: the state of one certificate
// on one specific front end. Findings are immutable once produced and are
// not persisted across runs.
type Finding struct {
	FrontEnd    string     `json:"frontEnd"`
	Certificate string     `json:"certificate"`
	Managed     bool       `json:"managed"`
	NotAfter    *time.Time `json:"notAfter,omitempty"`
	Severity    Severity   `json:"severity"`
	// Detail carries the fetch or parse failure text for ERROR findings.
	Detail string `json:"detail,omitempty"`
}

// Pipeline drives one scan pass: resolve front ends into work items, fetch
// each certificate record, parse it, classify it, and accumulate findings.
type Pipeline struct {
	Parser     *scancerts.Parser
	Classifier *Classifier
	Fetcher    Fetcher

	// Concurrency bounds the number of in-flight fetches. Values below two
	// degrade to a sequential scan.
	Concurrency int
	// FetchTimeout bounds each upstream fetch. A timeout is treated the same
	// as any other fetch failure: one ERROR finding, scan continues.
	FetchTimeout time.Duration
}

// New creates a Pipeline around the given fetcher with default parser,
// classifier, concurrency, and timeout.
func New(fetcher Fetcher) *Pipeline {
	return &Pipeline{
		Parser:       scancerts.New(),
		Classifier:   NewClassifier(),
		Fetcher:      fetcher,
		Concurrency:  4,
		FetchTimeout: 10 * time.Second,
	}
}

// Run performs one scan pass and returns one finding per (front end,
// certificate reference) link, in resolver order.
//
// Faults are isolated per finding: a reference that fails to fetch (deleted
// between list and get, permission denied, transient fault, timeout) becomes
// an ERROR finding and never aborts the scan or cancels sibling fetches.
// Fetches run on a bounded worker pool; findings are written into their
// resolver slot so the output order is deterministic regardless of
// completion order.
func (p *Pipeline) Run(ctx context.Context, frontEnds []FrontEnd, now time.Time) []Finding {
	items := Resolve(frontEnds)
	if len(items) == 0 {
		return nil
	}

	findings := make([]Finding, len(items))

	workers := p.Concurrency
	if workers < 1 {
		workers = 1
	}
	if workers > len(items) {
		workers = len(items)
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	for i, item := range items {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, item WorkItem) {
			defer wg.Done()
			defer func() { <-sem }()
			findings[i] = p.scanOne(ctx, item, now)
		}(i, item)
	}
	wg.Wait()

	return findings
}

// scanOne produces the finding for a single work item.
func (p *Pipeline) scanOne(ctx context.Context, item WorkItem, now time.Time) Finding {
	fetchCtx := ctx
	if p.FetchTimeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, p.FetchTimeout)
		defer cancel()
	}

	rec, err := p.Fetcher.FetchCertificate(fetchCtx, item.CertificateRef)
	if err != nil {
		return Finding{
			FrontEnd:    item.FrontEnd,
			Certificate: CertificateName(item.CertificateRef),
			Severity:    SeverityError,
			Detail:      err.Error(),
		}
	}

	res := p.Parser.ParseExpiry(rec)

	finding := Finding{
		FrontEnd:    item.FrontEnd,
		Certificate: rec.Name,
		Managed:     rec.Managed,
		Severity:    p.Classifier.Classify(res, now),
	}
	if res.Outcome == scancerts.OutcomeExpiry {
		notAfter := res.NotAfter
		finding.NotAfter = &notAfter
	}
	if finding.Severity == SeverityError {
		finding.Detail = "certificate material " + res.Outcome.String()
	}

	return finding
}

// CertificateName extracts the certificate resource name from a reference,
// which the control plane returns as a URL.
func CertificateName(ref string) string {
	return path.Base(ref)
}
