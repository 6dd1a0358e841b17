// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package xrefcheck

import (
	"encoding/json"
	"strings"
)

const corruptedPrefix = "Corrupted - "

// Status is the terminal classification of a file.
type Status int

const (
	StatusError Status = iota
	StatusEncrypted
	StatusCorrupted
	StatusNormal
	StatusCorrupt
)

var statusNames = map[Status]string{
	StatusError:     "error",
	StatusEncrypted: "encrypted",
	StatusCorrupted: "corrupted",
	StatusNormal:    "normal",
	StatusCorrupt:   "corrupt",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Verdict is the result of analysing one file.
// Reason is set for StatusError and StatusCorrupted.
type Verdict struct {
	Status      Status
	Reason      string
	Diagnostics []string
}

// String returns the verdict as printed on the status line.
func (v Verdict) String() string {
	switch v.Status {
	case StatusError:
		return v.Reason
	case StatusEncrypted:
		return "Encrypted"
	case StatusCorrupted:
		return corruptedPrefix + v.Reason
	case StatusNormal:
		return "Normal"
	case StatusCorrupt:
		return "Corrupt"
	}
	return "Unknown"
}

// StatusLine renders "File Status: <value>". A non-empty diagnostic list
// replaces the verdict, formatted as ['first', 'second'].
func (v Verdict) StatusLine() string {
	if len(v.Diagnostics) == 0 {
		return "File Status: " + v.String()
	}
	quoted := make([]string, len(v.Diagnostics))
	for i, d := range v.Diagnostics {
		quoted[i] = "'" + d + "'"
	}
	return "File Status: [" + strings.Join(quoted, ", ") + "]"
}

func errorVerdict(reason string) Verdict {
	return Verdict{Status: StatusError, Reason: reason}
}

// corruptedVerdict accepts either a bare reason or a full "Corrupted - reason" string.
func corruptedVerdict(reason string) Verdict {
	return Verdict{Status: StatusCorrupted, Reason: strings.TrimPrefix(reason, corruptedPrefix)}
}
