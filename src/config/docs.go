// Copyright (c) 2026 kamxnet All rights reserved.
//
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.

// Package config loads tracker settings from JSON or YAML files, with
// defaults applied for anything the file leaves out.
package config
