// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package sniff

// defaultSignatures contains the built-in file signatures.
// Ordered roughly by how common the formats are; order only matters for
// breaking specificity ties.
var defaultSignatures = []Signature{
	// Documents
	{Ext: "pdf", MIME: "application/pdf", Offset: 0, Pattern: []byte("%PDF-")},

	// Images
	{Ext: "png", MIME: "image/png", Offset: 0, Pattern: []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	{Ext: "jpg", MIME: "image/jpeg", Offset: 0, Pattern: []byte{0xFF, 0xD8, 0xFF}},
	{Ext: "gif", MIME: "image/gif", Offset: 0, Pattern: []byte("GIF87a")},
	{Ext: "gif", MIME: "image/gif", Offset: 0, Pattern: []byte("GIF89a")},
	{Ext: "tiff", MIME: "image/tiff", Offset: 0, Pattern: []byte{0x49, 0x49, 0x2A, 0x00}}, // little endian
	{Ext: "tiff", MIME: "image/tiff", Offset: 0, Pattern: []byte{0x4D, 0x4D, 0x00, 0x2A}}, // big endian
	{Ext: "bmp", MIME: "image/bmp", Offset: 0, Pattern: []byte("BM")},
	{Ext: "webp", MIME: "image/webp", Offset: 8, Pattern: []byte("WEBP")}, // after RIFF header
	{Ext: "ico", MIME: "image/x-icon", Offset: 0, Pattern: []byte{0x00, 0x00, 0x01, 0x00}},

	// Archives - ZIP-based
	// Office docs (docx/xlsx/pptx), ODF and EPUB all share the ZIP
	// signature. Detected as generic zip first, refined from entry names
	// visible in the sniffed prefix by refineZip.
	{Ext: "zip", MIME: "application/zip", Offset: 0, Pattern: []byte{0x50, 0x4B, 0x03, 0x04}},
	{Ext: "zip", MIME: "application/zip", Offset: 0, Pattern: []byte{0x50, 0x4B, 0x05, 0x06}}, // empty ZIP
	{Ext: "zip", MIME: "application/zip", Offset: 0, Pattern: []byte{0x50, 0x4B, 0x07, 0x08}}, // spanned ZIP

	// Archives - other
	{Ext: "7z", MIME: "application/x-7z-compressed", Offset: 0, Pattern: []byte{'7', 'z', 0xBC, 0xAF, 0x27, 0x1C}},
	{Ext: "rar", MIME: "application/vnd.rar", Offset: 0, Pattern: []byte("Rar!\x1a\x07\x00")},
	{Ext: "rar", MIME: "application/vnd.rar", Offset: 0, Pattern: []byte("Rar!\x1a\x07\x01\x00")}, // RAR5
	{Ext: "gz", MIME: "application/gzip", Offset: 0, Pattern: []byte{0x1F, 0x8B, 0x08}},
	{Ext: "bz2", MIME: "application/x-bzip2", Offset: 0, Pattern: []byte("BZh")},
	{Ext: "xz", MIME: "application/x-xz", Offset: 0, Pattern: []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}},
	{Ext: "tar", MIME: "application/x-tar", Offset: 257, Pattern: []byte("ustar")}, // POSIX tar

	// Audio
	{Ext: "mp3", MIME: "audio/mpeg", Offset: 0, Pattern: []byte("ID3")}, // ID3v2 header
	{Ext: "mp3", MIME: "audio/mpeg", Offset: 0, Pattern: []byte{0xFF, 0xFB}}, // frame sync
	{Ext: "mp3", MIME: "audio/mpeg", Offset: 0, Pattern: []byte{0xFF, 0xFA}},
	{Ext: "mp3", MIME: "audio/mpeg", Offset: 0, Pattern: []byte{0xFF, 0xF3}},
	{Ext: "mp3", MIME: "audio/mpeg", Offset: 0, Pattern: []byte{0xFF, 0xF2}},
	{Ext: "flac", MIME: "audio/flac", Offset: 0, Pattern: []byte("fLaC")},
	{Ext: "ogg", MIME: "audio/ogg", Offset: 0, Pattern: []byte("OggS")},
	{Ext: "wav", MIME: "audio/wav", Offset: 8, Pattern: []byte("WAVE")}, // after RIFF header
	{Ext: "mid", MIME: "audio/midi", Offset: 0, Pattern: []byte("MThd")},

	// Video
	{Ext: "mp4", MIME: "video/mp4", Offset: 4, Pattern: []byte("ftyp")},
	{Ext: "avi", MIME: "video/x-msvideo", Offset: 8, Pattern: []byte("AVI ")}, // after RIFF header
	{Ext: "webm", MIME: "video/webm", Offset: 0, Pattern: []byte{0x1A, 0x45, 0xDF, 0xA3}}, // EBML (also MKV)
	{Ext: "flv", MIME: "video/x-flv", Offset: 0, Pattern: []byte("FLV")},

	// Executables
	{Ext: "exe", MIME: "application/x-msdownload", Offset: 0, Pattern: []byte("MZ")},
	{Ext: "elf", MIME: "application/x-executable", Offset: 0, Pattern: []byte{0x7F, 'E', 'L', 'F'}},

	// Fonts
	{Ext: "woff", MIME: "font/woff", Offset: 0, Pattern: []byte("wOFF")},
	{Ext: "woff2", MIME: "font/woff2", Offset: 0, Pattern: []byte("wOF2")},
	{Ext: "otf", MIME: "font/otf", Offset: 0, Pattern: []byte("OTTO")},
}

// DefaultTable returns the built-in signature table.
func DefaultTable() *Table {
	return NewTable(defaultSignatures)
}
