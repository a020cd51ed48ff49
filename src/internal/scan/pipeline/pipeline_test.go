// Copyright (c) 2026 kamxnet All rights reserved.
//
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.

package scanpipe_test

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scancerts "github.com/kamxnet/tls-cert-tracker/src/internal/scan/certs"
	scanpipe "github.com/kamxnet/tls-cert-tracker/src/internal/scan/pipeline"
)

// fakeFetcher serves canned records keyed by reference and injects failures.
type fakeFetcher struct {
	records map[string]scancerts.Record
	fail    map[string]error
}

func (f *fakeFetcher) FetchCertificate(_ context.Context, ref string) (scancerts.Record, error) {
	if err, ok := f.fail[ref]; ok {
		return scancerts.Record{}, err
	}
	rec, ok := f.records[ref]
	if !ok {
		return scancerts.Record{}, errors.New("fake: no such record")
	}
	return rec, nil
}

// selfManagedPEM generates an ephemeral self-signed certificate expiring at
// notAfter and returns its PEM encoding.
func selfManagedPEM(t *testing.T, notAfter time.Time) []byte {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err, "generate key")

	template := &x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: "pipeline-test.local"},
		NotBefore:             notAfter.Add(-365 * 24 * time.Hour),
		NotAfter:              notAfter,
		KeyUsage:              x509.KeyUsageDigitalSignature,
		BasicConstraintsValid: true,
	}

	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err, "create certificate")

	return pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
}

func TestRunEndToEnd(t *testing.T) {
	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
	fiveDays := now.Add(5 * 24 * time.Hour)

	fetcher := &fakeFetcher{
		records: map[string]scancerts.Record{
			"certs/self-managed": {
				Name:     "self-managed",
				Material: selfManagedPEM(t, fiveDays),
			},
			"certs/managed": {
				Name:    "managed",
				Managed: true,
			},
		},
	}

	t.Run("Self-Managed Expiring In Five Days", func(t *testing.T) {
		pipeline := scanpipe.New(fetcher)
		findings := pipeline.Run(context.Background(), []scanpipe.FrontEnd{
			{Name: "web-proxy", CertificateRefs: []string{"certs/self-managed"}},
		}, now)

		require.Len(t, findings, 1)
		assert.Equal(t, "web-proxy", findings[0].FrontEnd)
		assert.Equal(t, "self-managed", findings[0].Certificate)
		assert.False(t, findings[0].Managed)
		assert.Equal(t, scanpipe.SeverityExpiringSoon, findings[0].Severity)
		require.NotNil(t, findings[0].NotAfter)
		assert.Equal(t, fiveDays, *findings[0].NotAfter)
	})

	t.Run("Managed Certificate Is Not Applicable", func(t *testing.T) {
		pipeline := scanpipe.New(fetcher)
		findings := pipeline.Run(context.Background(), []scanpipe.FrontEnd{
			{Name: "web-proxy", CertificateRefs: []string{"certs/managed"}},
		}, now)

		require.Len(t, findings, 1)
		assert.Equal(t, scanpipe.SeverityNotApplicable, findings[0].Severity)
		assert.True(t, findings[0].Managed)
		assert.Nil(t, findings[0].NotAfter, "managed certificate must not carry an expiry")
	})

	t.Run("No Front Ends", func(t *testing.T) {
		pipeline := scanpipe.New(fetcher)
		assert.Empty(t, pipeline.Run(context.Background(), nil, now))
	})
}

func TestRunFaultIsolation(t *testing.T) {
	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)

	fetcher := &fakeFetcher{
		records: map[string]scancerts.Record{
			"certs/ok":      {Name: "ok", Material: selfManagedPEM(t, now.Add(90*24*time.Hour))},
			"certs/managed": {Name: "managed", Managed: true},
			"certs/garbled": {Name: "garbled", Material: []byte("garbage")},
		},
		fail: map[string]error{
			"certs/vanished": errors.New("gcp: resource not found"),
		},
	}

	frontEnds := []scanpipe.FrontEnd{
		{Name: "proxy-a", CertificateRefs: []string{"certs/ok", "certs/vanished"}},
		{Name: "proxy-b", CertificateRefs: []string{"certs/garbled", "certs/managed"}},
	}

	pipeline := scanpipe.New(fetcher)
	findings := pipeline.Run(context.Background(), frontEnds, now)

	// One finding per link, in resolver order, regardless of the failure.
	require.Len(t, findings, 4)

	assert.Equal(t, scanpipe.SeverityOK, findings[0].Severity)

	assert.Equal(t, scanpipe.SeverityError, findings[1].Severity)
	assert.Equal(t, "vanished", findings[1].Certificate)
	assert.Contains(t, findings[1].Detail, "not found")
	assert.Nil(t, findings[1].NotAfter)

	assert.Equal(t, scanpipe.SeverityError, findings[2].Severity)
	assert.Contains(t, findings[2].Detail, "unparseable")

	assert.Equal(t, scanpipe.SeverityNotApplicable, findings[3].Severity)
}

// TestRunDeterministicOrder runs a wide scan through the worker pool many
// times and verifies findings always come back in resolver order.
func TestRunDeterministicOrder(t *testing.T) {
	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)

	fetcher := &fakeFetcher{records: map[string]scancerts.Record{}}
	var frontEnds []scanpipe.FrontEnd
	for i := 0; i < 8; i++ {
		fe := scanpipe.FrontEnd{Name: string(rune('a' + i))}
		for j := 0; j < 4; j++ {
			ref := fe.Name + "/" + string(rune('0'+j))
			fe.CertificateRefs = append(fe.CertificateRefs, ref)
			fetcher.records[ref] = scancerts.Record{Name: ref, Managed: true}
		}
		frontEnds = append(frontEnds, fe)
	}

	want := scanpipe.Resolve(frontEnds)

	for run := 0; run < 10; run++ {
		pipeline := scanpipe.New(fetcher)
		pipeline.Concurrency = 8
		findings := pipeline.Run(context.Background(), frontEnds, now)

		require.Len(t, findings, len(want))
		for i, item := range want {
			assert.Equal(t, item.FrontEnd, findings[i].FrontEnd)
			assert.Equal(t, item.CertificateRef, findings[i].Certificate)
		}
	}
}

func TestRunSequentialFallback(t *testing.T) {
	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
	fetcher := &fakeFetcher{
		records: map[string]scancerts.Record{
			"certs/managed": {Name: "managed", Managed: true},
		},
	}

	pipeline := scanpipe.New(fetcher)
	pipeline.Concurrency = 0 // degrades to one worker

	findings := pipeline.Run(context.Background(), []scanpipe.FrontEnd{
		{Name: "proxy", CertificateRefs: []string{"certs/managed", "certs/managed"}},
	}, now)

	require.Len(t, findings, 2)
	assert.Equal(t, findings[0], findings[1], "duplicate links must classify identically")
}
