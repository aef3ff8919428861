// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package scan wires the sniffer, decision engine and rename executor
// into the per-file pipeline and aggregates the batch.
package scan

import (
	"io"
	"os"
	"path/filepath"

	"extcheck/internal/decision"
	"extcheck/internal/family"
	"extcheck/internal/parallel"
	"extcheck/internal/report"
	"extcheck/internal/sniff"
)

// Options controls batch behavior.
type Options struct {
	// Rename moves mismatched files to the detected extension instead of
	// only reporting them.
	Rename bool

	// MinConfidence gates renames: a mismatch below this confidence is
	// reported but never renamed. Zero applies no gate.
	MinConfidence float64

	// Workers is the parallel worker count. Values below 1 mean one.
	Workers int
}

// Summary aggregates batch counters.
type Summary struct {
	Total      int
	Mismatches int
	Renamed    int
	Errors     int
}

// Scanner runs the detection-and-decision pipeline over files.
type Scanner struct {
	sniffer *sniff.Sniffer
	opts    Options
}

// New creates a Scanner over the given signature table.
func New(table *sniff.Table, opts Options) *Scanner {
	return &Scanner{sniffer: sniff.NewSniffer(table), opts: opts}
}

// fileSource adapts a filesystem path to the sniffer's Source capability.
type fileSource struct {
	path string
}

func (f fileSource) ReadPrefix(maxBytes int) ([]byte, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	// An empty or short file yields a short prefix, not a read failure.
	buf := make([]byte, maxBytes)
	n, err := io.ReadFull(file, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, err
	}
	return buf[:n], nil
}

func (f fileSource) Extension() string {
	return family.Normalize(filepath.Ext(f.path))
}

// ProcessFile runs the whole pipeline for one file: bounded prefix read,
// detection, decision, optional rename, record assembly. It never fails;
// errors are isolated into the returned record.
func (s *Scanner) ProcessFile(path string) report.Record {
	src := fileSource{path: path}
	currentExt := src.Extension()
	size := fileSize(path)

	det, err := s.sniffer.Detect(src, path)
	if err != nil {
		return report.BuildError(path, size, currentExt, err, decision.ReasonUnreadable)
	}

	renameFile := s.opts.Rename && det.Confidence >= s.opts.MinConfidence
	verdict := decision.Decide(path, currentExt, det, renameFile, fileExists)
	record := report.Build(path, size, currentExt, det, verdict)

	if verdict.Action == decision.ActionRename {
		if err := executeRename(path, verdict.NewPath); err != nil {
			record.Action = string(decision.ActionError)
			record.NewPath = ""
			record.Error = err.Error()
		}
	}
	return record
}

// Run processes all paths across the worker pool and returns the records
// sorted by path, plus the batch summary.
func (s *Scanner) Run(paths []string) ([]report.Record, Summary) {
	pool := parallel.NewPool(s.opts.Workers, s.ProcessFile)
	pool.Start()
	go func() {
		for _, p := range paths {
			pool.Submit(p)
		}
		pool.Finish()
	}()

	records := make([]report.Record, 0, len(paths))
	for record := range pool.Results() {
		records = append(records, record)
	}
	report.SortByPath(records)

	var sum Summary
	for _, r := range records {
		sum.Total++
		switch r.Action {
		case string(decision.ActionError):
			sum.Errors++
		case string(decision.ActionRename):
			sum.Renamed++
		}
		if !r.IsMatch && r.Action != string(decision.ActionError) {
			sum.Mismatches++
		}
	}
	return records, sum
}

func fileExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

func fileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}
