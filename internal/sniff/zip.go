// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package sniff

import "bytes"

// zipSubtype pairs an indicator visible in the sniffed prefix with the
// more specific container type it implies.
type zipSubtype struct {
	indicator []byte
	ext       string
	mime      string
}

// Office and OpenDocument containers store well-known entry names (or the
// ODF "mimetype" entry, stored uncompressed first) close to the start of
// the archive, so they are usually visible inside the sniffed window.
var zipSubtypes = []zipSubtype{
	{[]byte("word/"), "docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
	{[]byte("xl/"), "xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
	{[]byte("ppt/"), "pptx", "application/vnd.openxmlformats-officedocument.presentationml.presentation"},
	{[]byte("application/vnd.oasis.opendocument.text"), "odt", "application/vnd.oasis.opendocument.text"},
	{[]byte("application/vnd.oasis.opendocument.spreadsheet"), "ods", "application/vnd.oasis.opendocument.spreadsheet"},
	{[]byte("application/vnd.oasis.opendocument.presentation"), "odp", "application/vnd.oasis.opendocument.presentation"},
	{[]byte("application/epub+zip"), "epub", "application/epub+zip"},
	{[]byte("META-INF/MANIFEST.MF"), "jar", "application/java-archive"},
}

// refineZip narrows a generic ZIP match using indicators present in the
// sniffed prefix. No ZIP directory parsing happens here: when nothing
// recognizable is visible in the window the result stays generic zip.
// That is a documented limitation of prefix-only sniffing.
func refineZip(prefix []byte) DetectionResult {
	for _, sub := range zipSubtypes {
		if bytes.Contains(prefix, sub.indicator) {
			return DetectionResult{
				Ext:        sub.ext,
				MIME:       sub.mime,
				Confidence: ConfidenceSignature,
				Reason:     "zip-entry-name",
			}
		}
	}
	return DetectionResult{
		Ext:        "zip",
		MIME:       "application/zip",
		Confidence: ConfidenceSignature,
		Reason:     "zip-signature",
	}
}
