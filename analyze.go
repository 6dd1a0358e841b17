// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

// Package xrefcheck checks the cross-reference tables of classic PDF files.
//
// # Overview
//
// A PDF file ends with a "startxref" directive giving the byte offset of its
// cross-reference table, and the table lists the byte offset of every indirect
// object. This package does not build a PDF object model. It scans the raw
// bytes with regular expressions, parses every table a startxref points at,
// and checks that each in-use entry lands on an "N G obj" declaration.
//
// Analysis runs in stages and stops at the first terminal verdict:
//
//	read      -> Error     ("Error reading PDF file")
//	/Encrypt  -> Encrypted
//	integrity -> Corrupted (header, objects, xref, trailer, numbers, encoding, keywords)
//	startxref -> Corrupted ("XRef table not found")
//	validate  -> Corrupt if any entry is wrong, Normal if some entry is right,
//	             Corrupt with diagnostic "No valid objects found" otherwise.
//
// Entry k of a table is expected to point at object k-1. Tables are numbered
// from 1 in parse order with subsection headers ignored, and tables of an
// incrementally updated file are validated independently rather than merged.
// Cross-reference streams are not supported.
package xrefcheck

import (
	"fmt"
	"os"

	"github.com/sassoftware/pdf-xrefcheck/logger"
)

const (
	reasonReadError    = "Error reading PDF file"
	reasonXrefNotFound = "XRef table not found"
	diagNoValidObjects = "No valid objects found"
)

// Report carries a verdict together with the intermediate results that produced it.
// Stages that did not run leave their fields empty.
type Report struct {
	Path    string        `json:"path,omitempty"`
	Verdict Verdict       `json:"-"`
	Offsets []int64       `json:"offsets"`
	Tables  []XrefTable   `json:"tables"`
	Correct []MatchRecord `json:"correct"`
	Wrong   []MatchRecord `json:"wrong"`
}

// Analyze classifies buf. buf is never modified, and repeated calls on the
// same bytes return equal reports.
func Analyze(buf []byte) *Report {
	rep := &Report{}

	if IsEncrypted(buf) {
		logger.Debug("analyze: /Encrypt present", true)
		rep.Verdict = Verdict{Status: StatusEncrypted}
		return rep
	}

	if status := CheckIntegrity(buf); status != IntegrityOK {
		rep.Verdict = corruptedVerdict(status)
		return rep
	}

	rep.Offsets = FindXrefOffsets(buf)
	if len(rep.Offsets) == 0 {
		rep.Verdict = corruptedVerdict(reasonXrefNotFound)
		return rep
	}

	rep.Tables = ParseXrefTables(buf, rep.Offsets)
	rep.Correct, rep.Wrong = Validate(buf, rep.Tables)

	switch {
	case len(rep.Wrong) > 0:
		rep.Verdict = Verdict{Status: StatusCorrupt}
	case len(rep.Correct) > 0:
		rep.Verdict = Verdict{Status: StatusNormal}
	default:
		rep.Verdict = Verdict{Status: StatusCorrupt, Diagnostics: []string{diagNoValidObjects}}
	}
	logger.Debug(fmt.Sprintf("analyze: verdict=%s correct=%d wrong=%d", rep.Verdict, len(rep.Correct), len(rep.Wrong)), true)
	return rep
}

// AnalyzeFile reads path and analyses it. A read failure becomes an Error verdict.
func AnalyzeFile(path string) *Report {
	buf, err := os.ReadFile(path)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to read PDF: path=%s err=%v", path, err))
		return &Report{Path: path, Verdict: errorVerdict(reasonReadError)}
	}
	rep := Analyze(buf)
	rep.Path = path
	return rep
}

// Findings describes every wrong entry, for diagnostics beyond the verdict.
func (r *Report) Findings() []string {
	out := make([]string, 0, len(r.Wrong))
	for _, m := range r.Wrong {
		out = append(out, m.String())
	}
	return out
}
