// Copyright (c) 2026 kamxnet All rights reserved.
//
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.

package gcp

import (
	"context"

	"github.com/cenkalti/backoff/v4"
	compute "google.golang.org/api/compute/v1"
	"google.golang.org/api/option"

	scancerts "github.com/kamxnet/tls-cert-tracker/src/internal/scan/certs"
	scanpipe "github.com/kamxnet/tls-cert-tracker/src/internal/scan/pipeline"
)

// certTypeManaged is the control-plane type label for platform-renewed certificates.
const certTypeManaged = "MANAGED"

// Client is the read-only control-plane collaborator. It is constructed
// explicitly and passed down to the pipeline, never held as a package
// singleton, so tests can substitute canned records.
type Client struct {
	svc     *compute.Service
	project string

	// maxRetries bounds backoff retries around each certificate fetch.
	// Only transient faults are retried.
	maxRetries uint64
}

// NewClient creates a control-plane client for the given project. Credentials
// come from Application Default Credentials unless overridden through opts.
func NewClient(ctx context.Context, project string, opts ...option.ClientOption) (*Client, error) {
	svc, err := compute.NewService(ctx, opts...)
	if err != nil {
		return nil, classifyError(err)
	}

	return &Client{
		svc:        svc,
		project:    project,
		maxRetries: 2,
	}, nil
}

// SetMaxRetries overrides the transient-fault retry budget per fetch.
func (c *Client) SetMaxRetries(n int) {
	if n < 0 {
		n = 0
	}
	c.maxRetries = uint64(n)
}

// ListFrontEnds lists the target HTTPS proxies of the project together with
// the certificate references each one carries, in control-plane order.
// A project without proxies yields an empty slice, not an error.
func (c *Client) ListFrontEnds(ctx context.Context) ([]scanpipe.FrontEnd, error) {
	var frontEnds []scanpipe.FrontEnd

	err := c.svc.TargetHttpsProxies.List(c.project).Pages(ctx, func(page *compute.TargetHttpsProxyList) error {
		for _, proxy := range page.Items {
			frontEnds = append(frontEnds, scanpipe.FrontEnd{
				Name:            proxy.Name,
				CertificateRefs: proxy.SslCertificates,
			})
		}
		return nil
	})
	if err != nil {
		return nil, classifyError(err)
	}

	return frontEnds, nil
}

// FetchCertificate resolves one certificate reference to its record.
// Transient upstream faults are retried with exponential backoff up to the
// configured budget; every other failure mode is surfaced immediately.
func (c *Client) FetchCertificate(ctx context.Context, ref string) (scancerts.Record, error) {
	name := scanpipe.CertificateName(ref)

	var cert *compute.SslCertificate
	operation := func() error {
		var err error
		cert, err = c.svc.SslCertificates.Get(c.project, name).Context(ctx).Do()
		if err == nil {
			return nil
		}

		err = classifyError(err)
		if !retryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return scancerts.Record{}, err
	}

	return scancerts.Record{
		Name:     cert.Name,
		Managed:  cert.Type == certTypeManaged,
		Material: []byte(cert.Certificate),
	}, nil
}
