// Copyright (c) 2026 kamxnet All rights reserved.
//
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.

// Package scanpipe implements the certificate discovery-and-classification
// pipeline: resolving front ends to the certificate links they carry,
// classifying each certificate's remaining lifetime into a severity, and
// orchestrating the per-link fetch-parse-classify pass that produces the
// scan findings.
package scanpipe
