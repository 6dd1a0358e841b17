// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package xrefcheck

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/sassoftware/pdf-xrefcheck/logger"
)

// ObjectSet holds the object numbers declared anywhere in a file.
type ObjectSet map[int64]struct{}

// Has reports whether n was declared.
func (s ObjectSet) Has(n int64) bool {
	_, ok := s[n]
	return ok
}

func (s ObjectSet) Len() int {
	return len(s)
}

// Sorted returns the members in ascending order.
func (s ObjectSet) Sorted() []int64 {
	out := make([]int64, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// FindObjects collects the object number of every "N G obj" declaration in buf.
// Generation numbers are discarded, and so are numbers too large for an int64.
func FindObjects(buf []byte) ObjectSet {
	set := make(ObjectSet)
	for _, m := range FindAll(buf, objDeclRe) {
		n, err := strconv.ParseInt(string(m.Group(1)), 10, 64)
		if err != nil {
			continue
		}
		set[n] = struct{}{}
	}
	logger.Debug(fmt.Sprintf("inventory: declared objects=%d", len(set)), true)
	return set
}
