// Copyright (c) 2026 kamxnet All rights reserved.
//
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.

package mcpserver

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kamxnet/tls-cert-tracker/src/config"
	"github.com/kamxnet/tls-cert-tracker/src/internal/gcp"
	"github.com/kamxnet/tls-cert-tracker/src/internal/report"
	scancerts "github.com/kamxnet/tls-cert-tracker/src/internal/scan/certs"
	scanpipe "github.com/kamxnet/tls-cert-tracker/src/internal/scan/pipeline"
	"github.com/kamxnet/tls-cert-tracker/src/logger"
)

// handlers holds the shared state the tool handlers need.
type handlers struct {
	cfg *config.Config
	log logger.Logger
}

// handleScanProject runs a full scan of the requested project and renders
// the findings in the requested format.
//
// Scan-fatal faults (authentication, permission, proxy listing) surface as
// tool errors; per-certificate faults are ERROR findings inside the report,
// matching the CLI contract.
func (h *handlers) handleScanProject(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	project, err := request.RequireString("project")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("project parameter required: %v", err)), nil
	}
	format := request.GetString("format", "text")

	client, err := gcp.NewClient(ctx, project)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to create control-plane client: %v", err)), nil
	}
	client.SetMaxRetries(h.cfg.Fetch.MaxRetries)

	frontEnds, err := client.ListFrontEnds(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list HTTPS front ends: %v", err)), nil
	}

	pipeline := scanpipe.New(client)
	pipeline.Classifier = classifierFromConfig(h.cfg)
	pipeline.Concurrency = h.cfg.Fetch.Concurrency
	pipeline.FetchTimeout = time.Duration(h.cfg.Fetch.TimeoutSeconds) * time.Second

	findings := pipeline.Run(ctx, frontEnds, time.Now().UTC())
	h.log.Printf("scan_project: project=%s findings=%d", project, len(findings))

	var rendered string
	switch format {
	case "table":
		rendered = report.RenderTable(findings)
	case "json":
		rendered, err = report.RenderJSON(findings)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to render findings: %v", err)), nil
		}
	default:
		rendered = report.RenderText(findings)
	}

	return mcp.NewToolResultText(rendered), nil
}

// handleCheckCertExpiry classifies certificate material supplied directly,
// without touching any control plane. The input is a file path or
// base64-encoded PEM/DER data.
func (h *handlers) handleCheckCertExpiry(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	certInput, err := request.RequireString("certificate")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("certificate parameter required: %v", err)), nil
	}

	classifier := classifierFromConfig(h.cfg)
	if days := request.GetFloat("soon_days", 0); days > 0 {
		classifier.SoonWindow = time.Duration(days) * 24 * time.Hour
	}
	if days := request.GetFloat("warn_days", 0); days > 0 {
		classifier.WarnWindow = time.Duration(days) * 24 * time.Hour
	}

	// Read certificate data: file path first, then base64.
	var certData []byte
	if fileData, err := os.ReadFile(certInput); err == nil {
		certData = fileData
	} else if decoded, err := base64.StdEncoding.DecodeString(certInput); err == nil {
		certData = decoded
	} else {
		return mcp.NewToolResultError("failed to read certificate: not a valid file path or base64 data"), nil
	}

	parser := scancerts.New()
	res := parser.ParseExpiry(scancerts.Record{Name: "input", Material: certData})
	severity := classifier.Classify(res, time.Now().UTC())

	result := fmt.Sprintf("Severity: %s\n", severity)
	if res.Outcome == scancerts.OutcomeExpiry {
		result += fmt.Sprintf("Expires: %s\n", res.NotAfter.Format("2006-01-02 15:04:05 MST"))
	} else {
		result += fmt.Sprintf("Outcome: %s\n", res.Outcome)
	}

	return mcp.NewToolResultText(result), nil
}

// classifierFromConfig builds a Classifier from the configured day windows.
func classifierFromConfig(cfg *config.Config) *scanpipe.Classifier {
	return &scanpipe.Classifier{
		SoonWindow: time.Duration(cfg.Thresholds.SoonDays) * 24 * time.Hour,
		WarnWindow: time.Duration(cfg.Thresholds.WarnDays) * 24 * time.Hour,
	}
}
