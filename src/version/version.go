// Copyright (c) 2026 kamxnet All rights reserved.
//
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.

// Package version provides centralized version information for the TLS certificate tracker.
package version

// Version holds the current version of the TLS certificate tracker.
// This value can be overridden at build time using ldflags.
var Version = "1.1.0"
