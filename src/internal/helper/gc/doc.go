// Copyright (c) 2026 kamxnet All rights reserved.
//
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.

// Package gc provides pooled byte buffers that reduce allocation churn when
// assembling report output. It wraps [github.com/valyala/bytebufferpool]
// behind small interfaces so the rest of the tracker stays decoupled from
// the pooling library.
package gc
