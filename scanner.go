// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package xrefcheck

import (
	"regexp"
)

// ws is the whitespace class used by every pattern: space, HT, LF, CR, FF and VT.
const ws = `[ \t\n\r\f\v]`

var (
	startxrefRe    = regexp.MustCompile(`startxref` + ws + `+(\d+)`)
	xrefEntryRe    = regexp.MustCompile(`(\d{10}) (\d{5}) ([nf])`)
	objDeclRe      = regexp.MustCompile(`(\d+) \d+ obj`)
	objAtOffsetRe  = regexp.MustCompile(`^(\d+)` + ws + `+\d+` + ws + `+obj`)
	objBodyRe      = regexp.MustCompile(`(?s)\d+ \d+ obj(.*?)endobj`)
	trailerRe      = regexp.MustCompile(`(?s)trailer` + ws + `*<<.*?>>`)
	malformedNumRe = regexp.MustCompile(`\d+\.\d+\.\d+`)
	textBlockRe    = regexp.MustCompile(`(?s)BT` + ws + `(.*?)` + ws + `ET`)
)

// A Match is one occurrence of a pattern in a buffer.
// Groups holds the capture groups as sub-slices of the scanned buffer;
// a group that did not participate in the match is nil.
type Match struct {
	Start  int
	End    int
	Groups [][]byte
}

// Group returns capture group i (1-based), or nil when absent.
func (m Match) Group(i int) []byte {
	if i < 1 || i > len(m.Groups) {
		return nil
	}
	return m.Groups[i-1]
}

func newMatch(buf []byte, loc []int) Match {
	m := Match{Start: loc[0], End: loc[1]}
	for i := 2; i+1 < len(loc); i += 2 {
		if loc[i] < 0 {
			m.Groups = append(m.Groups, nil)
			continue
		}
		m.Groups = append(m.Groups, buf[loc[i]:loc[i+1]])
	}
	return m
}

// FindAll returns every non-overlapping match of re in buf, left to right.
func FindAll(buf []byte, re *regexp.Regexp) []Match {
	locs := re.FindAllSubmatchIndex(buf, -1)
	if len(locs) == 0 {
		return nil
	}
	out := make([]Match, 0, len(locs))
	for _, loc := range locs {
		out = append(out, newMatch(buf, loc))
	}
	return out
}

// FindFirst returns the leftmost match of re in buf.
func FindFirst(buf []byte, re *regexp.Regexp) (Match, bool) {
	loc := re.FindSubmatchIndex(buf)
	if loc == nil {
		return Match{}, false
	}
	return newMatch(buf, loc), true
}

// MatchPrefix reports a match of re that begins at buf[0].
func MatchPrefix(buf []byte, re *regexp.Regexp) (Match, bool) {
	m, ok := FindFirst(buf, re)
	if !ok || m.Start != 0 {
		return Match{}, false
	}
	return m, true
}
