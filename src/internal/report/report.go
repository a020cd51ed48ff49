// Copyright (c) 2026 kamxnet All rights reserved.
//
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.

package report

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/kamxnet/tls-cert-tracker/src/internal/helper/gc"
	scanpipe "github.com/kamxnet/tls-cert-tracker/src/internal/scan/pipeline"
)

// absentExpiry is the sentinel rendered when a finding carries no expiry instant.
const absentExpiry = "-"

// glyphs maps each severity to its report marker.
var glyphs = map[scanpipe.Severity]string{
	scanpipe.SeverityOK:            "🟢",
	scanpipe.SeverityWarning:       "🟡",
	scanpipe.SeverityExpiringSoon:  "🔴",
	scanpipe.SeverityError:         "❌",
	scanpipe.SeverityNotApplicable: "🔵",
}

// expiry renders the finding's expiry instant or the absent sentinel.
func expiry(f scanpipe.Finding) string {
	if f.NotAfter == nil {
		return absentExpiry
	}
	return f.NotAfter.Format("2006-01-02 15:04:05 MST")
}

// RenderText renders one line per finding in scan order, followed by a
// severity summary. This is the default CLI output format.
func RenderText(findings []scanpipe.Finding) string {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	for _, f := range findings {
		fmt.Fprintf(buf, "%s %s | Proxy: %s | Cert: %s | Managed: %t | Expiry: %s",
			glyphs[f.Severity], f.Severity, f.FrontEnd, f.Certificate, f.Managed, expiry(f))
		if f.Detail != "" {
			fmt.Fprintf(buf, " | %s", f.Detail)
		}
		buf.WriteByte('\n')
	}

	buf.WriteByte('\n')
	buf.WriteString(renderSummary(findings))

	return buf.String()
}

// renderSummary renders per-severity counts in a fixed order.
func renderSummary(findings []scanpipe.Finding) string {
	counts := make(map[scanpipe.Severity]int)
	for _, f := range findings {
		counts[f.Severity]++
	}

	order := []scanpipe.Severity{
		scanpipe.SeverityExpiringSoon,
		scanpipe.SeverityWarning,
		scanpipe.SeverityOK,
		scanpipe.SeverityNotApplicable,
		scanpipe.SeverityError,
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Findings: %d", len(findings)))
	for _, sev := range order {
		if counts[sev] > 0 {
			sb.WriteString(fmt.Sprintf(" | %s: %d", sev, counts[sev]))
		}
	}
	sb.WriteByte('\n')
	return sb.String()
}

// RenderTable renders the findings as a markdown table using tablewriter.
func RenderTable(findings []scanpipe.Finding) string {
	if len(findings) == 0 {
		return "No certificates to display"
	}

	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)

	table.Header([]string{"#", "Severity", "Front End", "Certificate", "Managed", "Expiry"})

	var rows [][]string
	for i, f := range findings {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			glyphs[f.Severity] + " " + string(f.Severity),
			f.FrontEnd,
			f.Certificate,
			strconv.FormatBool(f.Managed),
			expiry(f),
		})
	}

	table.Bulk(rows)
	table.Render()
	return buf.String()
}

// RenderJSON renders the findings as an indented JSON array for
// programmatic consumers.
func RenderJSON(findings []scanpipe.Finding) (string, error) {
	if findings == nil {
		findings = []scanpipe.Finding{}
	}

	data, err := json.MarshalIndent(findings, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}
