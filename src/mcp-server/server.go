// Copyright (c) 2026 kamxnet All rights reserved.
//
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.

package mcpserver

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/kamxnet/tls-cert-tracker/src/config"
	"github.com/kamxnet/tls-cert-tracker/src/logger"
)

// ToolDefinition pairs an MCP tool with its handler.
type ToolDefinition struct {
	Tool    mcpTool
	Handler server.ToolHandlerFunc
}

// Run starts the MCP stdio server with the certificate tracking tools.
//
// Configuration is loaded from the TLS_CERT_TRACKER_CONFIG environment
// variable when set; defaults apply otherwise. The stdio transport owns
// stdout, so logging goes through a silent JSONLogger unless redirected.
func Run(version string) error {
	cfg, err := config.Load(os.Getenv(config.EnvConfigFile))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.NewJSONLogger(os.Stderr, true)

	s := server.NewMCPServer(
		"tls-cert-tracker",
		version,
		server.WithToolCapabilities(false),
		server.WithInstructions(serverInstructions),
	)

	for _, def := range createTools(cfg, log) {
		s.AddTool(def.Tool, def.Handler)
	}

	// ServeStdio handles SIGINT/SIGTERM internally and returns on shutdown.
	if err := server.ServeStdio(s); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

const serverInstructions = `This server tracks TLS certificate expiry for HTTPS load balancers.

Tools:
- scan_project: scan a project's HTTPS front ends and report certificate expiry findings.
- check_cert_expiry: classify the expiry of certificate material supplied directly (file path or base64).`
