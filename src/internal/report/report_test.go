// Copyright (c) 2026 kamxnet All rights reserved.
//
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.

package report_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamxnet/tls-cert-tracker/src/internal/report"
	scanpipe "github.com/kamxnet/tls-cert-tracker/src/internal/scan/pipeline"
)

func sampleFindings() []scanpipe.Finding {
	notAfter := time.Date(2026, time.September, 4, 12, 0, 0, 0, time.UTC)
	return []scanpipe.Finding{
		{
			FrontEnd:    "web-proxy",
			Certificate: "storefront",
			NotAfter:    &notAfter,
			Severity:    scanpipe.SeverityExpiringSoon,
		},
		{
			FrontEnd:    "web-proxy",
			Certificate: "api-managed",
			Managed:     true,
			Severity:    scanpipe.SeverityNotApplicable,
		},
		{
			FrontEnd:    "admin-proxy",
			Certificate: "vanished",
			Severity:    scanpipe.SeverityError,
			Detail:      "gcp: resource not found",
		},
	}
}

func TestRenderText(t *testing.T) {
	out := report.RenderText(sampleFindings())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// One line per finding, a blank separator, then the summary line.
	require.Len(t, lines, 5)

	assert.Contains(t, lines[0], "EXPIRING_SOON")
	assert.Contains(t, lines[0], "Proxy: web-proxy")
	assert.Contains(t, lines[0], "Cert: storefront")
	assert.Contains(t, lines[0], "2026-09-04")

	assert.Contains(t, lines[1], "NOT_APPLICABLE")
	assert.Contains(t, lines[1], "Managed: true")
	assert.Contains(t, lines[1], "Expiry: -")

	assert.Contains(t, lines[2], "ERROR")
	assert.Contains(t, lines[2], "resource not found")

	assert.Contains(t, lines[4], "Findings: 3")
	assert.Contains(t, lines[4], "EXPIRING_SOON: 1")
	assert.Contains(t, lines[4], "ERROR: 1")
}

func TestRenderTable(t *testing.T) {
	out := report.RenderTable(sampleFindings())

	assert.Contains(t, out, "Severity")
	assert.Contains(t, out, "storefront")
	assert.Contains(t, out, "EXPIRING_SOON")

	assert.Equal(t, "No certificates to display", report.RenderTable(nil))
}

func TestRenderJSON(t *testing.T) {
	out, err := report.RenderJSON(sampleFindings())
	require.NoError(t, err)

	var decoded []scanpipe.Finding
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 3)
	assert.Equal(t, scanpipe.SeverityExpiringSoon, decoded[0].Severity)
	assert.Nil(t, decoded[1].NotAfter)

	empty, err := report.RenderJSON(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", empty)
}
