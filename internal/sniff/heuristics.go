// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package sniff

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// jsonHeuristic detects JSON documents: valid UTF-8 whose first
// non-whitespace byte opens an object or array.
func jsonHeuristic(prefix []byte) (DetectionResult, bool) {
	trimmed := bytes.TrimLeft(prefix, " \t\r\n")
	if len(trimmed) == 0 {
		return DetectionResult{}, false
	}
	if trimmed[0] != '{' && trimmed[0] != '[' {
		return DetectionResult{}, false
	}
	if !utf8.Valid(prefix) {
		return DetectionResult{}, false
	}
	return DetectionResult{
		Ext:        "json",
		MIME:       "application/json",
		Confidence: ConfidenceJSON,
		Reason:     "json-heuristic",
	}, true
}

// htmlHeuristic detects HTML by case-insensitive tag markers near the
// start of the file.
func htmlHeuristic(prefix []byte) (DetectionResult, bool) {
	head := prefix
	if len(head) > 512 {
		head = head[:512]
	}
	lower := strings.ToLower(string(bytes.TrimLeft(head, " \t\r\n")))
	if strings.HasPrefix(lower, "<!doctype html") ||
		strings.HasPrefix(lower, "<html") ||
		strings.Contains(lower, "<html") ||
		strings.Contains(lower, "<!doctype html") {
		return DetectionResult{
			Ext:        "html",
			MIME:       "text/html",
			Confidence: ConfidenceHTML,
			Reason:     "html-heuristic",
		}, true
	}
	return DetectionResult{}, false
}

// textHeuristic detects plain text: valid UTF-8, no null bytes, and a
// high ratio of printable or whitespace runes.
func textHeuristic(prefix []byte) (DetectionResult, bool) {
	if len(prefix) == 0 {
		return DetectionResult{}, false
	}
	if !utf8.Valid(prefix) || bytes.IndexByte(prefix, 0) >= 0 {
		return DetectionResult{}, false
	}

	var printable, total int
	for _, r := range string(prefix) {
		total++
		if r == '\n' || r == '\r' || r == '\t' || r >= 0x20 {
			printable++
		}
	}
	if total == 0 || float64(printable)/float64(total) <= 0.95 {
		return DetectionResult{}, false
	}
	return DetectionResult{
		Ext:        "txt",
		MIME:       "text/plain",
		Confidence: ConfidenceText,
		Reason:     "text-heuristic",
	}, true
}
