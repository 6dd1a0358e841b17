// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package xrefcheck

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_Normal(t *testing.T) {
	rep := Analyze(validPDF())

	assert.Equal(t, StatusNormal, rep.Verdict.Status)
	assert.Empty(t, rep.Wrong)
	assert.Len(t, rep.Correct, 3)
	assert.Equal(t, "File Status: Normal", rep.Verdict.StatusLine())
}

func TestAnalyze_MinimalNormal(t *testing.T) {
	// "0 0 obj" starts right after the 9-byte header; the table at 9 has one
	// record for object 1, which must point at object 0.
	buf := []byte("%PDF-1.4\n0 0 obj\n<<>>\nendobj\nxref\n0000000009 00000 n\ntrailer\n<<>>\nstartxref\n9\n%%EOF")

	rep := Analyze(buf)

	assert.Equal(t, []int64{9}, rep.Offsets)
	require.Len(t, rep.Tables, 1)
	assert.Equal(t, []XrefEntry{{ObjNum: 1, Offset: 9}}, rep.Tables[0].Entries)
	assert.Equal(t, []MatchRecord{{Correct: true, ObjNum: 1, Offset: 9, Actual: ptr(0)}}, rep.Correct)
	assert.Empty(t, rep.Wrong)
	assert.Equal(t, StatusNormal, rep.Verdict.Status)
}

func TestAnalyze_EntryOneBytePastDeclaration(t *testing.T) {
	// "1 0 obj" starts at 9, so a record claiming offset 10 lands on " 0 obj".
	buf := []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\nxref\n0000000010 00000 n\ntrailer\n<<>>\nstartxref\n9\n%%EOF")

	rep := Analyze(buf)

	assert.Equal(t, []MatchRecord{{ObjNum: 1, Offset: 10}}, rep.Wrong)
	assert.Equal(t, StatusCorrupt, rep.Verdict.Status)
	assert.Empty(t, rep.Verdict.Diagnostics)
	assert.Equal(t, "File Status: Corrupt", rep.Verdict.StatusLine())
}

func TestAnalyze_OffsetNotAtObject(t *testing.T) {
	b := newPDF().object(0, "<< >>")
	b.xref(inUse(b.offsets[0]), inUse(3))

	rep := Analyze(b.bytes())

	assert.Equal(t, StatusCorrupt, rep.Verdict.Status)
	require.Len(t, rep.Wrong, 1)
	assert.Nil(t, rep.Wrong[0].Actual)
	assert.Equal(t, []string{"object 2 at offset 3: no object declaration"}, rep.Findings())
}

func TestAnalyze_AllFree(t *testing.T) {
	b := newPDF().object(0, "<< >>")
	b.xref(free(), free())

	rep := Analyze(b.bytes())

	require.Len(t, rep.Tables, 1)
	assert.Zero(t, rep.Tables[0].Len())
	assert.Equal(t, StatusCorrupt, rep.Verdict.Status)
	assert.Equal(t, []string{"No valid objects found"}, rep.Verdict.Diagnostics)
	assert.Equal(t, "File Status: ['No valid objects found']", rep.Verdict.StatusLine())
}

func TestAnalyze_Encrypted(t *testing.T) {
	tests := map[string][]byte{
		"valid file":   append(validPDF(), []byte("trailer << /Encrypt 9 0 R >>")...),
		"no header":    []byte("junk /Encrypt junk"),
		"only the key": []byte("/Encrypt"),
	}
	for name, buf := range tests {
		t.Run(name, func(t *testing.T) {
			rep := Analyze(buf)
			assert.Equal(t, StatusEncrypted, rep.Verdict.Status)
			assert.Equal(t, "File Status: Encrypted", rep.Verdict.StatusLine())
			assert.Empty(t, rep.Offsets, "no further stages run")
		})
	}
}

func TestAnalyze_InvalidHeader(t *testing.T) {
	for _, prefix := range []string{"", "%PDF", "%pdf-", "\n%PDF-", "PK\x03\x04"} {
		buf := append([]byte(prefix), bytes.TrimPrefix(validPDF(), []byte("%PDF-"))...)
		rep := Analyze(buf)
		assert.Equal(t, "Corrupted - Invalid header", rep.Verdict.String(), "prefix %q", prefix)
	}
}

func TestAnalyze_NoStartxref(t *testing.T) {
	buf := bytes.ReplaceAll(validPDF(), []byte("startxref"), []byte("startref"))

	rep := Analyze(buf)

	assert.Equal(t, StatusCorrupted, rep.Verdict.Status)
	assert.Equal(t, "Corrupted - No xref table found", rep.Verdict.String())
	assert.Nil(t, rep.Tables, "table parsing must not run")
}

func TestAnalyze_Revisions(t *testing.T) {
	b := newPDF().object(0, "<< >>")
	first := b.xref(inUse(b.offsets[0]))
	b.object(1, "<< /Rev 2 >>")
	b.xref(inUse(b.offsets[0]), inUse(b.offsets[1]))

	rep := Analyze(b.bytes())

	require.Len(t, rep.Offsets, 2)
	assert.Equal(t, first, rep.Offsets[0])
	require.Len(t, rep.Tables, 2)
	// the first table runs on into the second revision's records
	assert.Equal(t, 3, rep.Tables[0].Len())
	assert.Equal(t, 2, rep.Tables[1].Len())
	assert.Equal(t, StatusCorrupt, rep.Verdict.Status)
	assert.Len(t, rep.Correct, 3)
	assert.Len(t, rep.Wrong, 2)
}

func TestAnalyze_Idempotent(t *testing.T) {
	for _, buf := range [][]byte{validPDF(), []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\nxref\n0000000010 00000 n\ntrailer\n<<>>\nstartxref\n9\n%%EOF")} {
		orig := append([]byte(nil), buf...)

		first := Analyze(buf)
		second := Analyze(buf)

		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("reports differ (-first +second):\n%s", diff)
		}
		assert.Equal(t, orig, buf, "input must not be modified")
	}
}

func TestAnalyzeFile(t *testing.T) {
	path := writeTemp(t, "ok.pdf", validPDF())

	rep := AnalyzeFile(path)

	assert.Equal(t, path, rep.Path)
	assert.Equal(t, StatusNormal, rep.Verdict.Status)
}

func TestAnalyzeFile_ReadError(t *testing.T) {
	rep := AnalyzeFile(filepath.Join(t.TempDir(), "missing.pdf"))

	assert.Equal(t, StatusError, rep.Verdict.Status)
	assert.Equal(t, "File Status: Error reading PDF file", rep.Verdict.StatusLine())
}

func TestAnalyze_MultipleObjectsWithText(t *testing.T) {
	b := newPDF().
		object(0, "<< /Type /Catalog >>").
		object(1, "<< /Length 20 >>\nstream\nBT (Hello) Tj ET\nendstream")
	b.xref(free(), inUse(b.offsets[0]), inUse(b.offsets[1]))

	rep := Analyze(b.bytes())

	// the free record takes number 1 and shifts every in-use entry by one
	assert.Equal(t, StatusCorrupt, rep.Verdict.Status)
	assert.True(t, strings.HasPrefix(rep.Findings()[0], "object 2 at offset"))
}
