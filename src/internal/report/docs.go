// Copyright (c) 2026 kamxnet All rights reserved.
//
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.

// Package report renders scan findings for human and machine consumers:
// glyph-prefixed text lines with a summary, a markdown table, and JSON.
package report
