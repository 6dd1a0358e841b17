// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package xrefcheck

import (
	"fmt"
	"strconv"

	"github.com/sassoftware/pdf-xrefcheck/logger"
)

// InvalidOffset marks a startxref value that could not be represented as a byte offset.
const InvalidOffset int64 = -1

// XrefEntry is one in-use record of an xref table.
type XrefEntry struct {
	ObjNum int   `json:"objNum"`
	Offset int64 `json:"offset"`
}

// XrefTable maps sequential object numbers to byte offsets, in parse order.
//
// Object numbers are assigned 1, 2, 3, ... to every entry-shaped record found
// after Offset, free records included; only in-use records appear in Entries.
// Subsection headers are not interpreted, so anything record-shaped after the
// table (a later revision's table, or a trailer that happens to contain a
// 10-5-1 digit run) is read as more entries.
type XrefTable struct {
	Offset  int64       `json:"offset"`
	Entries []XrefEntry `json:"entries"`
}

// Len returns the number of in-use entries.
func (t XrefTable) Len() int {
	return len(t.Entries)
}

// Lookup returns the byte offset recorded for objNum.
func (t XrefTable) Lookup(objNum int) (int64, bool) {
	for _, e := range t.Entries {
		if e.ObjNum == objNum {
			return e.Offset, true
		}
	}
	return 0, false
}

// FindXrefOffsets returns the offset following every "startxref" directive in buf,
// in file order. Duplicates are kept. A digit run too large for an int64
// is reported as InvalidOffset.
func FindXrefOffsets(buf []byte) []int64 {
	var offsets []int64
	for _, m := range FindAll(buf, startxrefRe) {
		off, err := strconv.ParseInt(string(m.Group(1)), 10, 64)
		if err != nil {
			logger.Debug(fmt.Sprintf("xref: startxref value out of range: pos=%d value=%s", m.Start, m.Group(1)), true)
			off = InvalidOffset
		}
		offsets = append(offsets, off)
	}
	logger.Debug(fmt.Sprintf("xref: FindXrefOffsets -- found=%d", len(offsets)), true)
	return offsets
}

// ParseXrefTable reads every "nnnnnnnnnn ggggg n|f" record from offset to the end of buf.
// An offset outside buf yields an empty table.
func ParseXrefTable(buf []byte, offset int64) XrefTable {
	table := XrefTable{Offset: offset}
	if offset < 0 || offset > int64(len(buf)) {
		logger.Debug(fmt.Sprintf("xref: offset outside file: offset=%d size=%d", offset, len(buf)), true)
		return table
	}

	objNum := 0
	for _, m := range FindAll(buf[offset:], xrefEntryRe) {
		objNum++
		if m.Group(3)[0] != 'n' {
			continue
		}
		// ten digits always fit
		byteOffset, _ := strconv.ParseInt(string(m.Group(1)), 10, 64)
		table.Entries = append(table.Entries, XrefEntry{ObjNum: objNum, Offset: byteOffset})
	}
	logger.Debug(fmt.Sprintf("xref: parsed table: offset=%d records=%d in_use=%d", offset, objNum, len(table.Entries)), true)
	return table
}

// ParseXrefTables parses one table per offset, keeping the order of offsets.
func ParseXrefTables(buf []byte, offsets []int64) []XrefTable {
	tables := make([]XrefTable, 0, len(offsets))
	for _, off := range offsets {
		tables = append(tables, ParseXrefTable(buf, off))
	}
	return tables
}
