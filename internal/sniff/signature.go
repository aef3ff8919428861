// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package sniff

import "bytes"

// Signature defines a file type signature: a byte pattern expected at a
// fixed offset from the start of the file.
type Signature struct {
	Ext     string // canonical extension (no dot)
	MIME    string
	Offset  int    // offset from start of file
	Pattern []byte // magic bytes to match
}

// Candidate is a signature that matched a prefix, with its specificity.
// Longer patterns are more specific.
type Candidate struct {
	Signature   Signature
	Specificity int
}

// Table is an immutable set of signatures. Construct it once at startup
// and share it freely; it is safe for unsynchronized concurrent reads.
type Table struct {
	signatures []Signature
	maxWindow  int
}

// NewTable builds a Table from the given signatures. Declaration order is
// preserved and used to break specificity ties, so results stay
// deterministic.
func NewTable(signatures []Signature) *Table {
	t := &Table{signatures: make([]Signature, len(signatures))}
	copy(t.signatures, signatures)
	for _, sig := range t.signatures {
		if end := sig.Offset + len(sig.Pattern); end > t.maxWindow {
			t.maxWindow = end
		}
	}
	return t
}

// MaxWindow returns the smallest prefix length that can evaluate every
// signature in the table.
func (t *Table) MaxWindow() int {
	return t.maxWindow
}

// Extensions returns the distinct extensions the table can produce, in
// declaration order.
func (t *Table) Extensions() []string {
	seen := make(map[string]bool)
	var exts []string
	for _, sig := range t.signatures {
		if !seen[sig.Ext] {
			seen[sig.Ext] = true
			exts = append(exts, sig.Ext)
		}
	}
	return exts
}

// Match returns the signatures whose pattern appears at their offset in
// prefix, ordered by descending specificity. Ties keep declaration order.
// Signatures that need more bytes than prefix provides are skipped, never
// treated as an error.
func (t *Table) Match(prefix []byte) []Candidate {
	var candidates []Candidate
	for _, sig := range t.signatures {
		end := sig.Offset + len(sig.Pattern)
		if end > len(prefix) {
			continue
		}
		if bytes.Equal(prefix[sig.Offset:end], sig.Pattern) {
			candidates = append(candidates, Candidate{Signature: sig, Specificity: len(sig.Pattern)})
		}
	}
	// Stable insertion sort: candidates arrive in declaration order, so
	// equal specificities keep it.
	for i := 1; i < len(candidates); i++ {
		for j := i; j > 0 && candidates[j].Specificity > candidates[j-1].Specificity; j-- {
			candidates[j], candidates[j-1] = candidates[j-1], candidates[j]
		}
	}
	return candidates
}
