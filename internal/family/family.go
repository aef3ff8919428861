// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package family groups interchangeable file extensions so jpg and jpeg
// are never flagged as mismatches against each other.
package family

import "strings"

// ID identifies an extension family. Known families are named after the
// family's canonical extension; unknown extensions map to a synthetic
// "unknown-<ext>" ID that never equals a known family.
type ID string

// families maps each known extension to its canonical extension. Every
// extension the signature table can produce appears here; the canonical
// extension always maps to itself.
var families = map[string]string{
	"pdf": "pdf",

	"jpg": "jpg", "jpeg": "jpg", "jpe": "jpg",
	"png":  "png",
	"gif":  "gif",
	"tiff": "tiff", "tif": "tiff",
	"bmp":  "bmp",
	"webp": "webp",
	"ico":  "ico",

	"zip":  "zip",
	"docx": "docx",
	"xlsx": "xlsx",
	"pptx": "pptx",
	"odt":  "odt",
	"ods":  "ods",
	"odp":  "odp",
	"epub": "epub",
	"jar":  "jar",
	"7z":   "7z",
	"rar":  "rar",
	"gz":   "gz",
	"bz2":  "bz2",
	"xz":   "xz",
	"tar":  "tar",

	"mp3":  "mp3",
	"flac": "flac",
	"ogg":  "ogg",
	"wav":  "wav",
	"mid":  "mid", "midi": "mid",

	"mp4": "mp4", "m4v": "mp4",
	"webm": "webm", "mkv": "webm",
	"avi": "avi",
	"flv": "flv",

	"exe": "exe", "dll": "exe",
	"elf": "elf",

	"woff":  "woff",
	"woff2": "woff2",
	"otf":   "otf",

	"html": "html", "htm": "html",
	"json": "json",
	"txt":  "txt", "text": "txt", "log": "txt", "md": "txt",
	"bin": "bin",
}

// Normalize lowercases an extension and strips a leading dot.
func Normalize(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// Of returns the family of an extension. Unknown extensions get a
// synthetic family so they always compare unequal to any known family
// and a mismatch is reported rather than silently skipped.
func Of(ext string) ID {
	norm := Normalize(ext)
	if canonical, ok := families[norm]; ok {
		return ID(canonical)
	}
	return ID("unknown-" + norm)
}

// Canonical returns the extension files of this family should carry.
// For unknown extensions the normalized input is returned unchanged.
func Canonical(ext string) string {
	norm := Normalize(ext)
	if canonical, ok := families[norm]; ok {
		return canonical
	}
	return norm
}

// Known reports whether the extension belongs to a registered family.
func Known(ext string) bool {
	_, ok := families[Normalize(ext)]
	return ok
}
