// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package xrefcheck

import (
	"encoding/json"
	"io"
)

type reportAlias Report

type reportJSON struct {
	Status      Status   `json:"status"`
	Verdict     string   `json:"verdict"`
	Diagnostics []string `json:"diagnostics"`
	Findings    []string `json:"findings"`
	reportAlias
}

// MarshalJSON flattens the verdict into the report object.
func (r *Report) MarshalJSON() ([]byte, error) {
	diags := r.Verdict.Diagnostics
	if diags == nil {
		diags = []string{}
	}
	return json.Marshal(reportJSON{
		Status:      r.Verdict.Status,
		Verdict:     r.Verdict.String(),
		Diagnostics: diags,
		Findings:    r.Findings(),
		reportAlias: reportAlias(*r),
	})
}

// WriteJSON writes the report as pretty JSON to the provided writer.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
