// Copyright (c) 2026 kamxnet All rights reserved.
//
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.

package scanpipe

// FrontEnd represents one HTTPS-serving entry point, fetched fresh per scan.
type FrontEnd struct {
	// Name is the front-end resource name, unique within project scope.
	Name string
	// CertificateRefs holds opaque identifiers of the certificates the front
	// end terminates TLS with, in control-plane order. May be empty.
	CertificateRefs []string
}

// WorkItem is one (front end, certificate reference) link to be scanned.
type WorkItem struct {
	FrontEnd       string
	CertificateRef string
}

// Resolve flattens front ends into the per-link work list.
//
// Every reference on every front end becomes one WorkItem, preserving the
// reference order within a front end and the listing order across front
// ends. Nothing is deduplicated: a certificate linked from two front ends
// (or twice from the same one) is at risk on each link and is reported per
// link. An empty input yields an empty work list.
func Resolve(frontEnds []FrontEnd) []WorkItem {
	var items []WorkItem
	for _, fe := range frontEnds {
		for _, ref := range fe.CertificateRefs {
			items = append(items, WorkItem{
				FrontEnd:       fe.Name,
				CertificateRef: ref,
			})
		}
	}
	return items
}
