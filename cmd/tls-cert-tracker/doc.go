// Copyright (c) 2026 kamxnet All rights reserved.
//
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.

// tls-cert-tracker is a command-line tool that inventories the TLS
// certificates attached to HTTPS load-balancer front-ends in a project and
// reports which ones are approaching expiry.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/kamxnet/tls-cert-tracker/cmd/tls-cert-tracker@latest
//
// # Usage
//
//	tls-cert-tracker --project PROJECT_ID [FLAGS]
//
// # Flags
//
//	-p, --project     Project ID to scan [required unless set in config]
//	-c, --config      Config file (.json, .yaml, or .yml)
//	-f, --format      Output format: text, table, or json (default: text)
//	-o, --output      Destination file (default: stdout)
//	    --concurrency Max in-flight certificate fetches
//	    --timeout     Per-fetch timeout in seconds
//
// # Examples
//
// Scan a project and print the report:
//
//	tls-cert-tracker --project my-project
//
// Produce a markdown table:
//
//	tls-cert-tracker --project my-project --format table
//
// Emit JSON for further processing:
//
//	tls-cert-tracker --project my-project --format json > findings.json
//
// The exit code is 0 for any completed scan, even one containing ERROR
// findings; a nonzero exit means the scan could not be completed at all
// (authentication, permission, or listing failure).
package main
