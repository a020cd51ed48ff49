// Copyright (c) 2026 kamxnet All rights reserved.
//
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.

// Package cli implements the tls-cert-tracker command-line interface on top
// of cobra. It wires configuration, the control-plane client, the scan
// pipeline, and the report renderers together for a single scan invocation.
package cli
