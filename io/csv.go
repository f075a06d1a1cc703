// Package io moves frames across process boundaries: CSV files, JSONL
// streams and Arrow records. Ingestion is forgiving where the format is
// (short CSV rows pad with nulls); export is strict.
package io

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/strataframe/strata/dataframe"
	"github.com/strataframe/strata/errors"
	"github.com/strataframe/strata/value"
)

// CSVOptions controls CSV parsing and rendering.
type CSVOptions struct {
	// HasHeader treats the first record as column names. Without it,
	// columns are named by their zero-based position: "0", "1", ...
	HasHeader bool
	// Comma is the field delimiter; zero means ','.
	Comma rune
}

// FromCSV reads an entire CSV document into a weakly typed frame. Every
// cell imports as a String value, with empty cells becoming Null; callers
// tighten types afterwards with CastColumn or DeriveSchema. Records shorter
// than the first one pad with Null, longer records fail the whole read.
func FromCSV(r io.Reader, opts CSVOptions) (*dataframe.DataFrame, error) {
	cr := csv.NewReader(r)
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return dataframe.Empty(), nil
	}

	var names []string
	if opts.HasHeader {
		names = records[0]
		records = records[1:]
	} else {
		names = make([]string, len(records[0]))
		for i := range names {
			names[i] = strconv.Itoa(i)
		}
	}

	df, err := dataframe.WithColumns(names)
	if err != nil {
		return nil, err
	}
	rows := make([][]value.Value, 0, len(records))
	for _, record := range records {
		if len(record) > len(names) {
			return nil, &errors.InvalidDataLengthError{Expected: len(names), Actual: len(record)}
		}
		row := make([]value.Value, len(names))
		for i := range row {
			if i >= len(record) || record[i] == "" {
				row[i] = value.Null
				continue
			}
			row[i] = value.String(record[i])
		}
		rows = append(rows, row)
	}
	if _, err := df.Extend(rows); err != nil {
		return nil, err
	}
	return df, nil
}

// FromCSVFile reads a CSV file from disk.
func FromCSVFile(path string, opts CSVOptions) (*dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return FromCSV(f, opts)
}

// ToCSV writes the frame as CSV. Null cells render as empty fields so a
// round-trip through FromCSV reproduces them.
func ToCSV(w io.Writer, df *dataframe.DataFrame, opts CSVOptions) error {
	cw := csv.NewWriter(w)
	if opts.Comma != 0 {
		cw.Comma = opts.Comma
	}
	if opts.HasHeader {
		if err := cw.Write(df.Columns()); err != nil {
			return err
		}
	}
	_, rows := df.Shape()
	record := make([]string, df.NumCols())
	for i := 0; i < rows; i++ {
		for j, v := range df.Index(i) {
			if v.IsNull() {
				record[j] = ""
				continue
			}
			record[j] = v.String()
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ToCSVFile writes the frame to a CSV file, truncating any existing file.
func ToCSVFile(path string, df *dataframe.DataFrame, opts CSVOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := ToCSV(f, df, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
