// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package xrefcheck

import (
	"bytes"
	"fmt"

	"github.com/sassoftware/pdf-xrefcheck/logger"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// IntegrityOK is the result of CheckIntegrity when every check passes.
const IntegrityOK = "Normal"

// A Check is one structural predicate over the whole file.
type Check struct {
	Name   string
	Reason string
	Passes func(buf []byte) bool
}

var essentialKeywords = [][]byte{
	[]byte("obj"),
	[]byte("endobj"),
	[]byte("xref"),
	[]byte("trailer"),
	[]byte("startxref"),
}

// Checks lists the structural checks in the order they run.
var Checks = []Check{
	{Name: "header", Reason: "Invalid header", Passes: hasHeader},
	{Name: "objects", Reason: "No objects found", Passes: hasObjects},
	{Name: "xref", Reason: "No xref table found", Passes: hasStartxref},
	{Name: "trailer", Reason: "No trailer found", Passes: hasTrailer},
	{Name: "numbers", Reason: "Malformed numbers", Passes: hasNoMalformedNumbers},
	{Name: "encoding", Reason: "Invalid character encoding", Passes: hasValidTextEncoding},
	{Name: "keywords", Reason: "Missing essential keywords", Passes: hasKeywords},
}

// CheckIntegrity runs Checks in order and stops at the first failure.
// It returns IntegrityOK or "Corrupted - <reason>".
func CheckIntegrity(buf []byte) string {
	for _, c := range Checks {
		if !c.Passes(buf) {
			logger.Debug(fmt.Sprintf("integrity: check failed: name=%s", c.Name), true)
			return corruptedPrefix + c.Reason
		}
	}
	logger.Debug("integrity: all checks passed", true)
	return IntegrityOK
}

// IsEncrypted reports whether the file references an /Encrypt dictionary.
func IsEncrypted(buf []byte) bool {
	return bytes.Contains(buf, []byte("/Encrypt"))
}

func hasHeader(buf []byte) bool {
	return bytes.HasPrefix(buf, []byte("%PDF-"))
}

func hasObjects(buf []byte) bool {
	return objBodyRe.Match(buf)
}

func hasStartxref(buf []byte) bool {
	return startxrefRe.Match(buf)
}

func hasTrailer(buf []byte) bool {
	return trailerRe.Match(buf)
}

func hasNoMalformedNumbers(buf []byte) bool {
	return !malformedNumRe.Match(buf)
}

// hasValidTextEncoding requires every BT ... ET span to be valid UTF-8.
func hasValidTextEncoding(buf []byte) bool {
	for _, m := range FindAll(buf, textBlockRe) {
		if _, _, err := transform.Bytes(encoding.UTF8Validator, m.Group(1)); err != nil {
			logger.Debug(fmt.Sprintf("integrity: invalid UTF-8 in text block: pos=%d err=%v", m.Start, err), true)
			return false
		}
	}
	return true
}

func hasKeywords(buf []byte) bool {
	for _, kw := range essentialKeywords {
		if !bytes.Contains(buf, kw) {
			return false
		}
	}
	return true
}
