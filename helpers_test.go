// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package xrefcheck

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// pdfBuilder assembles small classic PDFs with byte-exact offsets.
type pdfBuilder struct {
	buf     bytes.Buffer
	offsets []int64
}

func newPDF() *pdfBuilder {
	b := &pdfBuilder{}
	b.buf.WriteString("%PDF-1.4\n")
	return b
}

// object appends "num 0 obj\nbody\nendobj\n" and remembers where it starts.
func (b *pdfBuilder) object(num int, body string) *pdfBuilder {
	b.offsets = append(b.offsets, int64(b.buf.Len()))
	fmt.Fprintf(&b.buf, "%d 0 obj\n%s\nendobj\n", num, body)
	return b
}

func (b *pdfBuilder) raw(s string) *pdfBuilder {
	b.buf.WriteString(s)
	return b
}

// xref appends an xref section whose records are given verbatim, then the
// trailer and a startxref pointing at the section. It returns the section offset.
func (b *pdfBuilder) xref(records ...string) int64 {
	start := int64(b.buf.Len())
	fmt.Fprintf(&b.buf, "xref\n0 %d\n", len(records))
	for _, r := range records {
		b.buf.WriteString(r)
		b.buf.WriteString(" \n")
	}
	fmt.Fprintf(&b.buf, "trailer\n<< /Size %d >>\nstartxref\n%d\n%%%%EOF\n", len(records), start)
	return start
}

func (b *pdfBuilder) bytes() []byte {
	return b.buf.Bytes()
}

func inUse(off int64) string {
	return fmt.Sprintf("%010d 00000 n", off)
}

func free() string {
	return "0000000000 65535 f"
}

// validPDF has objects 0..2 and a table whose entry k points at object k-1.
func validPDF() []byte {
	b := newPDF().
		object(0, "<< /Type /Catalog /Pages 1 0 R >>").
		object(1, "<< /Type /Pages /Kids [2 0 R] /Count 1 >>").
		object(2, "<< /Type /Page /Parent 1 0 R >>")
	b.xref(inUse(b.offsets[0]), inUse(b.offsets[1]), inUse(b.offsets[2]))
	return b.bytes()
}

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func ptr(n int64) *int64 {
	return &n
}
