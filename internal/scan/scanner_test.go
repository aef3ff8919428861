// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"extcheck/internal/family"
	"extcheck/internal/sniff"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func writeFile(t *testing.T, path string, content []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, content, 0o644))
}

func newScanner(opts Options) *Scanner {
	return New(sniff.DefaultTable(), opts)
}

func TestProcessFile_MismatchReportOnly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.txt")
	writeFile(t, path, pngMagic)

	record := newScanner(Options{}).ProcessFile(path)

	assert.Equal(t, "png", record.DetectedExt)
	assert.Equal(t, "image/png", record.DetectedMIME)
	assert.Equal(t, 1.0, record.Confidence)
	assert.False(t, record.IsMatch)
	assert.Equal(t, "none", record.Action)
	assert.Equal(t, "mismatch-report-only", record.Reason)
	assert.Empty(t, record.NewPath)

	// Dry run: file untouched.
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestProcessFile_RenameNoCollision(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.txt")
	writeFile(t, path, pngMagic)

	record := newScanner(Options{Rename: true}).ProcessFile(path)

	target := filepath.Join(dir, "photo.png")
	assert.Equal(t, "rename", record.Action)
	assert.Equal(t, target, record.NewPath)

	_, err := os.Stat(target)
	assert.NoError(t, err, "renamed file should exist")
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "original path should be gone")
}

func TestProcessFile_JSONHeuristicMatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.json")
	writeFile(t, path, []byte(`{"a":1}`))

	record := newScanner(Options{}).ProcessFile(path)

	assert.Equal(t, "json", record.DetectedExt)
	assert.Equal(t, 0.7, record.Confidence)
	assert.True(t, record.IsMatch)
	assert.Equal(t, "none", record.Action)
	assert.Equal(t, "match", record.Reason)
}

func TestProcessFile_RenameCollisions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.bin")
	writeFile(t, path, pngMagic)
	writeFile(t, filepath.Join(dir, "data.png"), []byte("taken"))
	writeFile(t, filepath.Join(dir, "data_1.png"), []byte("also taken"))

	record := newScanner(Options{Rename: true}).ProcessFile(path)

	target := filepath.Join(dir, "data_2.png")
	assert.Equal(t, "rename", record.Action)
	assert.Equal(t, target, record.NewPath)

	moved, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, pngMagic, moved)

	// Pre-existing files survive untouched.
	taken, err := os.ReadFile(filepath.Join(dir, "data.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("taken"), taken)
}

func TestProcessFile_Inconclusive(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mystery.xyz")
	writeFile(t, path, []byte{0x01, 0x02, 0xfe, 0xff})

	record := newScanner(Options{Rename: true}).ProcessFile(path)

	assert.Equal(t, "bin", record.DetectedExt)
	assert.Equal(t, 0.0, record.Confidence)
	assert.True(t, record.IsMatch, "no signal gets the benefit of the doubt")
	assert.Equal(t, "none", record.Action)
	assert.Equal(t, "inconclusive", record.Reason)
}

func TestProcessFile_Unreadable(t *testing.T) {
	record := newScanner(Options{}).ProcessFile(filepath.Join(t.TempDir(), "missing.dat"))

	assert.Equal(t, "error", record.Action)
	assert.Equal(t, "unreadable", record.Reason)
	assert.False(t, record.IsMatch)
	assert.NotEmpty(t, record.Error)
	assert.Empty(t, record.DetectedExt, "a read failure must not become a bin detection")
}

func TestProcessFile_MinConfidenceGatesRename(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.weird")
	writeFile(t, path, []byte("plain text content\nsecond line\n"))

	record := newScanner(Options{Rename: true, MinConfidence: 0.8}).ProcessFile(path)

	assert.Equal(t, "txt", record.DetectedExt)
	assert.False(t, record.IsMatch)
	assert.Equal(t, "none", record.Action, "low-confidence mismatch is reported, not renamed")
	assert.Equal(t, "mismatch-report-only", record.Reason)

	_, err := os.Stat(path)
	assert.NoError(t, err, "file must not be moved")
}

func TestProcessFile_Idempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.txt")
	writeFile(t, path, pngMagic)

	scanner := newScanner(Options{})
	first := scanner.ProcessFile(path)
	second := scanner.ProcessFile(path)
	assert.Equal(t, first, second)
}

func TestRun_SortedRecordsAndSummary(t *testing.T) {
	dir := t.TempDir()
	okJSON := filepath.Join(dir, "a.json")
	mismatch := filepath.Join(dir, "b.txt")
	missing := filepath.Join(dir, "c.gone")
	writeFile(t, okJSON, []byte(`[1,2,3]`))
	writeFile(t, mismatch, pngMagic)

	records, summary := newScanner(Options{Workers: 4}).Run([]string{mismatch, missing, okJSON})

	require.Len(t, records, 3)
	assert.Equal(t, okJSON, records[0].Path)
	assert.Equal(t, mismatch, records[1].Path)
	assert.Equal(t, missing, records[2].Path)

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 1, summary.Mismatches)
	assert.Equal(t, 0, summary.Renamed)
	assert.Equal(t, 1, summary.Errors)
}

func TestRun_RenameCountsInSummary(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "img.dat")
	writeFile(t, path, pngMagic)

	_, summary := newScanner(Options{Rename: true}).Run([]string{path})

	assert.Equal(t, 1, summary.Renamed)
	assert.Equal(t, 1, summary.Mismatches)
	assert.Equal(t, 0, summary.Errors)
}

func TestFileSource_ShortFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tiny")
	writeFile(t, path, []byte("hi"))

	prefix, err := fileSource{path: path}.ReadPrefix(sniff.DefaultWindow)
	require.NoError(t, err)
	assert.Equal(t, []byte("hi"), prefix)
}

func TestEveryTableExtensionHasFamily(t *testing.T) {
	// The decision engine assumes every extension the sniffer can produce
	// belongs to a registered family.
	for _, ext := range sniff.DefaultTable().Extensions() {
		assert.True(t, family.Known(ext), "extension %s has no family", ext)
	}
}

func TestFileSource_Extension(t *testing.T) {
	assert.Equal(t, "jpg", fileSource{path: "/tmp/Photo.JPG"}.Extension())
	assert.Equal(t, "", fileSource{path: "/tmp/noext"}.Extension())
}
