// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package walk collects the files to audit from a file or directory
// input, honoring exclude patterns.
package walk

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
)

// Walker lists regular files under an input path. Exclude patterns are
// glob expressions matched against both the full path and the base name.
type Walker struct {
	excludes []glob.Glob
}

// New compiles the exclude patterns into a Walker.
func New(excludePatterns []string) (*Walker, error) {
	w := &Walker{}
	for _, pattern := range excludePatterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		w.excludes = append(w.excludes, g)
	}
	return w, nil
}

// Files returns the regular files under input. A regular-file input is
// returned as-is; a directory is walked, recursively when recursive is
// set. Entries that disappear or deny listing mid-walk are skipped.
func (w *Walker) Files(input string, recursive bool) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("input not accessible: %w", err)
	}
	if info.Mode().IsRegular() {
		return []string{input}, nil
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("input is neither a regular file nor a directory: %s", input)
	}

	var files []string
	err = filepath.WalkDir(input, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == input {
				return walkErr
			}
			return nil
		}
		if d.IsDir() {
			if path != input && (!recursive || w.excluded(path)) {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || w.excluded(path) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", input, err)
	}
	return files, nil
}

func (w *Walker) excluded(path string) bool {
	base := filepath.Base(path)
	for _, g := range w.excludes {
		if g.Match(path) || g.Match(base) {
			return true
		}
	}
	return false
}
