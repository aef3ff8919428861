// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package decision turns a (current extension, detection result) pair
// into a per-file verdict, including a collision-free rename target.
package decision

import (
	"fmt"
	"path/filepath"
	"strings"

	"extcheck/internal/family"
	"extcheck/internal/sniff"
)

// Action is what the caller should do with the file.
type Action string

const (
	ActionNone   Action = "none"
	ActionRename Action = "rename"
	ActionError  Action = "error"
)

// Verdict reasons.
const (
	ReasonUnreadable   = "unreadable"
	ReasonInconclusive = "inconclusive"
	ReasonMatch        = "match"
	ReasonReportOnly   = "mismatch-report-only"
	ReasonMismatch     = "mismatch"
)

// Verdict is the decision for one file. Derived deterministically and
// never mutated after creation.
type Verdict struct {
	IsMatch bool
	Action  Action
	Reason  string
	NewPath string // set only when Action == ActionRename
}

// ExistsFunc probes whether a file already exists at a path. Collision
// resolution goes through this probe, never by attempting a move and
// catching the failure.
type ExistsFunc func(path string) bool

// Unreadable is the verdict for a file whose prefix could not be read.
func Unreadable() Verdict {
	return Verdict{IsMatch: false, Action: ActionError, Reason: ReasonUnreadable}
}

// Decide maps a detection result to a verdict. It never fails: every
// input produces a Verdict.
//
// Rules, in order: an inconclusive detection (generic binary, zero
// confidence) gets the benefit of the doubt and is treated as a match;
// equal extension families are a match; unequal families are a mismatch,
// reported or renamed depending on renameEnabled.
func Decide(path, currentExt string, det sniff.DetectionResult, renameEnabled bool, exists ExistsFunc) Verdict {
	if det.Ext == "bin" && det.Confidence == 0 {
		return Verdict{IsMatch: true, Action: ActionNone, Reason: ReasonInconclusive}
	}

	if family.Of(currentExt) == family.Of(det.Ext) {
		return Verdict{IsMatch: true, Action: ActionNone, Reason: ReasonMatch}
	}

	if !renameEnabled {
		return Verdict{IsMatch: false, Action: ActionNone, Reason: ReasonReportOnly}
	}

	return Verdict{
		IsMatch: false,
		Action:  ActionRename,
		Reason:  ReasonMismatch,
		NewPath: RenameTarget(path, det.Ext, exists),
	}
}

// RenameTarget computes a collision-free path carrying the canonical
// extension of the detected family. If the candidate exists, suffixes
// _1, _2, ... are tried before the extension until a free path is found,
// so no pre-existing file is ever overwritten.
func RenameTarget(path, detectedExt string, exists ExistsFunc) string {
	ext := family.Canonical(detectedExt)
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	stem := base
	if cur := filepath.Ext(base); cur != "" {
		stem = strings.TrimSuffix(base, cur)
	}

	candidate := filepath.Join(dir, fmt.Sprintf("%s.%s", stem, ext))
	for i := 1; exists(candidate); i++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s_%d.%s", stem, i, ext))
	}
	return candidate
}
