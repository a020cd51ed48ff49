// Copyright (c) 2026 kamxnet All rights reserved.
//
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.

// Package scancerts decodes certificate material fetched from the control
// plane and extracts expiry instants. It understands [PEM], DER, and [PKCS7]
// encodings and resolves the managed/self-managed split exactly once, at the
// parser boundary.
//
// [PEM]: https://en.wikipedia.org/wiki/Privacy-Enhanced_Mail
// [PKCS7]: https://en.wikipedia.org/wiki/PKCS_7
package scancerts
