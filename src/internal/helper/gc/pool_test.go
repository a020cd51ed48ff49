// Copyright (c) 2026 kamxnet All rights reserved.
//
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.

package gc_test

import (
	"strings"
	"testing"

	"github.com/kamxnet/tls-cert-tracker/src/internal/helper/gc"
)

func TestPoolRoundTrip(t *testing.T) {
	buf := gc.Default.Get()

	if _, err := buf.WriteString("hello"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	if err := buf.WriteByte('!'); err != nil {
		t.Fatalf("WriteByte: %v", err)
	}
	if got := buf.String(); got != "hello!" {
		t.Errorf("got %q, want %q", got, "hello!")
	}

	buf.Reset()
	if len(buf.Bytes()) != 0 {
		t.Error("buffer not empty after Reset")
	}
	gc.Default.Put(buf)
}

func TestPoolReadFrom(t *testing.T) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	n, err := buf.ReadFrom(strings.NewReader("certificate data"))
	if err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	if n != int64(len("certificate data")) {
		t.Errorf("read %d bytes, want %d", n, len("certificate data"))
	}
	if buf.String() != "certificate data" {
		t.Errorf("unexpected content %q", buf.String())
	}
}
