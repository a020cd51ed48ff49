// Copyright (c) 2026 kamxnet All rights reserved.
//
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.

// Package gcp wraps the Compute Engine API surface the tracker reads from:
// target HTTPS proxy listing and SSL certificate retrieval. Upstream failure
// modes are normalized into sentinel errors so the pipeline and CLI can
// distinguish scan-fatal faults from finding-local ones.
package gcp
