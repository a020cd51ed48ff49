// Copyright (c) 2026 kamxnet All rights reserved.
//
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.

// mcp-server exposes the TLS certificate tracker over the Model Context
// Protocol so agent clients can trigger scans and expiry checks.
package main

import (
	"fmt"
	"os"

	mcpserver "github.com/kamxnet/tls-cert-tracker/src/mcp-server"
	verpkg "github.com/kamxnet/tls-cert-tracker/src/version"
)

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = verpkg.Version
	}
}

func main() {
	if err := mcpserver.Run(version); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
