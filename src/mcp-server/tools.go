// Copyright (c) 2026 kamxnet All rights reserved.
//
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kamxnet/tls-cert-tracker/src/config"
	"github.com/kamxnet/tls-cert-tracker/src/logger"
)

// mcpTool aliases the MCP tool type to keep ToolDefinition readable.
type mcpTool = mcp.Tool

// createTools creates the MCP tool definitions with their handlers.
//
// The function defines the following tools:
//   - scan_project: scans a project's HTTPS front ends for certificate expiry
//   - check_cert_expiry: classifies supplied certificate material offline
func createTools(cfg *config.Config, log logger.Logger) []ToolDefinition {
	h := &handlers{cfg: cfg, log: log}

	return []ToolDefinition{
		{
			Tool: mcp.NewTool("scan_project",
				mcp.WithDescription("Scan the HTTPS load-balancer front ends of a project and report TLS certificate expiry findings"),
				mcp.WithString("project",
					mcp.Required(),
					mcp.Description("Project ID to scan"),
				),
				mcp.WithString("format",
					mcp.Description("Report format: text, table, or json"),
					mcp.DefaultString("text"),
				),
			),
			Handler: h.handleScanProject,
		},
		{
			Tool: mcp.NewTool("check_cert_expiry",
				mcp.WithDescription("Classify the expiry of a certificate supplied as a file path or base64-encoded PEM/DER data"),
				mcp.WithString("certificate",
					mcp.Required(),
					mcp.Description("Certificate file path or base64-encoded certificate data"),
				),
				mcp.WithNumber("soon_days",
					mcp.Description("Remaining days below which the certificate is EXPIRING_SOON"),
				),
				mcp.WithNumber("warn_days",
					mcp.Description("Remaining days below which the certificate is WARNING"),
				),
			),
			Handler: h.handleCheckCertExpiry,
		},
	}
}
