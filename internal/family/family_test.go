// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package family

import "testing"

func TestOf_CaseInsensitive(t *testing.T) {
	if Of("JPG") != Of("jpg") {
		t.Error("JPG and jpg must normalize to the same family")
	}
	if Of(".PNG") != Of("png") {
		t.Error("leading dot and case must not affect the family")
	}
}

func TestOf_EquivalentExtensions(t *testing.T) {
	pairs := [][2]string{
		{"jpg", "jpeg"},
		{"tiff", "tif"},
		{"html", "htm"},
		{"mid", "midi"},
		{"mp4", "m4v"},
	}
	for _, p := range pairs {
		if Of(p[0]) != Of(p[1]) {
			t.Errorf("%s and %s should share a family", p[0], p[1])
		}
	}
}

func TestOf_DistinctFamilies(t *testing.T) {
	if Of("jpg") == Of("png") {
		t.Error("jpg and png must not share a family")
	}
	if Of("zip") == Of("docx") {
		t.Error("zip and docx are distinct families even though they share a signature")
	}
}

func TestOf_UnknownExtensionSynthetic(t *testing.T) {
	id := Of("xyz123")
	if id != ID("unknown-xyz123") {
		t.Errorf("unexpected synthetic family: %s", id)
	}
	// A synthetic family never equals a known one, so unknown extensions
	// are always reported as mismatches rather than silently skipped.
	if id == Of("bin") || id == Of("txt") {
		t.Error("synthetic family collided with a known family")
	}
}

func TestOf_EmptyExtension(t *testing.T) {
	if Of("") != ID("unknown-") {
		t.Errorf("unexpected family for empty extension: %s", Of(""))
	}
}

func TestCanonical(t *testing.T) {
	cases := map[string]string{
		"jpeg": "jpg",
		"JPEG": "jpg",
		".tif": "tiff",
		"htm":  "html",
		"png":  "png",
		"zzz":  "zzz", // unknown passes through normalized
	}
	for in, want := range cases {
		if got := Canonical(in); got != want {
			t.Errorf("Canonical(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFamiliesDisjointAndCanonicalSelfMapping(t *testing.T) {
	// Every canonical extension must map to itself, otherwise a rename
	// could produce an extension outside its own family.
	for ext, canonical := range families {
		if families[canonical] != canonical {
			t.Errorf("canonical %q of %q does not map to itself", canonical, ext)
		}
	}
}

func TestKnown(t *testing.T) {
	if !Known("pdf") || !Known(".PDF") {
		t.Error("pdf should be a known extension")
	}
	if Known("not-an-ext") {
		t.Error("unexpected known extension")
	}
}
