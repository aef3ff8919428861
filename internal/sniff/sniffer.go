// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package sniff determines a file's actual type from its binary content.
// Detection runs a signature table over a bounded prefix of the file,
// then falls back to a chain of text heuristics, then to generic binary.
package sniff

import "fmt"

// Confidence constants for each detection path.
const (
	ConfidenceSignature = 1.0
	ConfidenceJSON      = 0.7
	ConfidenceHTML      = 0.6
	ConfidenceText      = 0.4
	ConfidenceNone      = 0.0
)

// DefaultWindow is the bounded prefix read size. Large enough to cover
// every built-in signature offset and the ZIP entry-name refinement.
const DefaultWindow = 16 * 1024

// DetectionResult is the outcome of sniffing one file. Produced fresh per
// file and never mutated afterwards.
type DetectionResult struct {
	Ext        string  // detected extension (no dot), "bin" when unknown
	MIME       string  // best-effort MIME type
	Confidence float64 // in [0,1]
	Reason     string  // which detection path fired
}

// Source is the capability the sniffer needs from a file: one bounded
// prefix read plus the declared extension. Real filesystem access is
// supplied by the caller.
type Source interface {
	ReadPrefix(maxBytes int) ([]byte, error)
	Extension() string
}

// ReadError indicates the file could not be read for sniffing. It is
// distinct from a "no signal" detection: detection is aborted and the
// caller records the error, it never silently becomes "bin".
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Heuristic classifies a prefix when no binary signature matched.
// It reports ok=false to pass control to the next heuristic in the chain.
type Heuristic func(prefix []byte) (DetectionResult, bool)

// Sniffer maps file content to a DetectionResult. Safe for concurrent use:
// the table and heuristic chain are immutable after construction.
type Sniffer struct {
	table      *Table
	heuristics []Heuristic
	window     int
}

// NewSniffer creates a Sniffer over the given signature table with the
// default heuristic chain (JSON, then HTML, then plain text).
func NewSniffer(table *Table) *Sniffer {
	return &Sniffer{
		table:      table,
		heuristics: []Heuristic{jsonHeuristic, htmlHeuristic, textHeuristic},
		window:     DefaultWindow,
	}
}

// Detect reads a bounded prefix from src and classifies it. A failed read
// surfaces as *ReadError.
func (s *Sniffer) Detect(src Source, path string) (DetectionResult, error) {
	prefix, err := src.ReadPrefix(s.window)
	if err != nil {
		return DetectionResult{}, &ReadError{Path: path, Err: err}
	}
	return s.DetectBytes(prefix), nil
}

// DetectBytes classifies an already-read prefix. First signature match
// wins (highest specificity); then the heuristic chain; then generic
// binary with zero confidence.
func (s *Sniffer) DetectBytes(prefix []byte) DetectionResult {
	if candidates := s.table.Match(prefix); len(candidates) > 0 {
		sig := candidates[0].Signature
		if sig.Ext == "zip" {
			return refineZip(prefix)
		}
		return DetectionResult{
			Ext:        sig.Ext,
			MIME:       sig.MIME,
			Confidence: ConfidenceSignature,
			Reason:     sig.Ext + "-signature",
		}
	}

	for _, h := range s.heuristics {
		if det, ok := h(prefix); ok {
			return det
		}
	}

	return DetectionResult{
		Ext:        "bin",
		MIME:       "application/octet-stream",
		Confidence: ConfidenceNone,
		Reason:     "no-signal",
	}
}
