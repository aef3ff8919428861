// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package report assembles per-file result records and writes the final
// report in CSV or JSON form.
package report

import (
	"sort"

	"extcheck/internal/decision"
	"extcheck/internal/sniff"
)

// Record is one row of the report. Field order mirrors the CSV columns.
type Record struct {
	Path         string  `json:"path"`
	SizeBytes    int64   `json:"size_bytes"`
	CurrentExt   string  `json:"current_ext"`
	DetectedExt  string  `json:"detected_ext"`
	DetectedMIME string  `json:"detected_mime"`
	Confidence   float64 `json:"confidence"`
	IsMatch      bool    `json:"is_match"`
	Action       string  `json:"action"`
	NewPath      string  `json:"new_path,omitempty"`
	Error        string  `json:"error,omitempty"`
	Reason       string  `json:"reason"`
}

// Build assembles the record for a successfully sniffed file.
func Build(path string, size int64, currentExt string, det sniff.DetectionResult, verdict decision.Verdict) Record {
	return Record{
		Path:         path,
		SizeBytes:    size,
		CurrentExt:   currentExt,
		DetectedExt:  det.Ext,
		DetectedMIME: det.MIME,
		Confidence:   det.Confidence,
		IsMatch:      verdict.IsMatch,
		Action:       string(verdict.Action),
		NewPath:      verdict.NewPath,
		Reason:       verdict.Reason,
	}
}

// BuildError assembles the record for a file whose processing failed.
// The batch continues; the failure is isolated to this row.
func BuildError(path string, size int64, currentExt string, err error, reason string) Record {
	return Record{
		Path:       path,
		SizeBytes:  size,
		CurrentExt: currentExt,
		IsMatch:    false,
		Action:     string(decision.ActionError),
		Error:      err.Error(),
		Reason:     reason,
	}
}

// SortByPath orders records by path for a deterministic report,
// regardless of worker scheduling.
func SortByPath(records []Record) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].Path < records[j].Path
	})
}
