// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// Format selects the report output format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatCSV, FormatJSON:
		return Format(name), nil
	default:
		return "", fmt.Errorf("unknown report format %q (expected csv or json)", name)
	}
}

// csvHeader is the fixed column set, in order.
var csvHeader = []string{
	"path", "size_bytes", "current_ext", "detected_ext", "detected_mime",
	"confidence", "is_match", "action", "new_path", "error", "reason",
}

// WriteCSV writes records as CSV with the fixed header row.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.Path,
			strconv.FormatInt(r.SizeBytes, 10),
			r.CurrentExt,
			r.DetectedExt,
			r.DetectedMIME,
			strconv.FormatFloat(r.Confidence, 'f', 2, 64),
			strconv.FormatBool(r.IsMatch),
			r.Action,
			r.NewPath,
			r.Error,
			r.Reason,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes records as an indented JSON array.
func WriteJSON(w io.Writer, records []Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// WriteFile writes the report to path in the given format, creating
// parent directories as needed.
func WriteFile(path string, format Format, records []Record) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating report directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}

	switch format {
	case FormatJSON:
		err = WriteJSON(f, records)
	default:
		err = WriteCSV(f, records)
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("writing report: %w", err)
	}
	return f.Close()
}
