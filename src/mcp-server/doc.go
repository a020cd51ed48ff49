// Copyright (c) 2026 kamxnet All rights reserved.
//
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.

// Package mcpserver exposes the TLS certificate tracker over the Model
// Context Protocol. It serves two tools on stdio: scan_project, which runs
// the full front-end scan against the control plane, and check_cert_expiry,
// which classifies certificate material supplied by the caller.
package mcpserver
