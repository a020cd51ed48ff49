// Copyright (c) 2026 kamxnet All rights reserved.
//
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.

// Package logger provides logging for the TLS certificate tracker.
//
// Two implementations are available: CLILogger for plain command-line output
// and JSONLogger for structured logging when the tool runs as an MCP server
// and stdout belongs to the protocol transport.
package logger
