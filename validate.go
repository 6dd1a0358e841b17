// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package xrefcheck

import (
	"fmt"
	"strconv"

	"github.com/sassoftware/pdf-xrefcheck/logger"
)

// objectWindow is how many bytes at a claimed offset may hold the object declaration.
const objectWindow = 20

// MatchRecord is the outcome of checking one xref entry against the file.
// Actual is the object number found at Offset, or nil when no declaration starts there.
type MatchRecord struct {
	Correct bool   `json:"correct"`
	ObjNum  int    `json:"objNum"`
	Offset  int64  `json:"offset"`
	Actual  *int64 `json:"actual"`
}

func (m MatchRecord) String() string {
	if m.Correct {
		return fmt.Sprintf("object %d at offset %d: ok", m.ObjNum, m.Offset)
	}
	if m.Actual == nil {
		return fmt.Sprintf("object %d at offset %d: no object declaration", m.ObjNum, m.Offset)
	}
	return fmt.Sprintf("object %d at offset %d: found object %d", m.ObjNum, m.Offset, *m.Actual)
}

// objectAt returns the object number declared at the start of buf[offset:offset+20].
func objectAt(buf []byte, offset int64) (int64, bool) {
	if offset < 0 || offset > int64(len(buf)) {
		return 0, false
	}
	end := offset + objectWindow
	if end > int64(len(buf)) {
		end = int64(len(buf))
	}
	m, ok := MatchPrefix(buf[offset:end], objAtOffsetRe)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(string(m.Group(1)), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Validate checks every entry of every table against the declaration found at its offset.
//
// Entry k is correct when the declaration at its offset names object k-1 and
// that object is declared somewhere in buf. Records keep table-then-entry order.
func Validate(buf []byte, tables []XrefTable) (correct, wrong []MatchRecord) {
	objects := FindObjects(buf)

	for ti, table := range tables {
		for _, e := range table.Entries {
			actual, ok := objectAt(buf, e.Offset)
			if !ok {
				wrong = append(wrong, MatchRecord{ObjNum: e.ObjNum, Offset: e.Offset})
				continue
			}
			if actual == int64(e.ObjNum)-1 && objects.Has(actual) {
				correct = append(correct, MatchRecord{Correct: true, ObjNum: e.ObjNum, Offset: e.Offset, Actual: &actual})
				continue
			}
			wrong = append(wrong, MatchRecord{ObjNum: e.ObjNum, Offset: e.Offset, Actual: &actual})
		}
		logger.Debug(fmt.Sprintf("validate: table=%d offset=%d entries=%d", ti, table.Offset, table.Len()), true)
	}
	logger.Debug(fmt.Sprintf("validate: correct=%d wrong=%d", len(correct), len(wrong)), true)
	return correct, wrong
}
