package dataframe

import (
	"fmt"
	"io"
	"strings"

	"github.com/strataframe/strata/internal/config"
)

// String renders a debug table of the frame, capped at the configured
// maximum number of display rows.
func (df *DataFrame) String() string {
	var sb strings.Builder
	df.Debug(&sb, config.GetConfig().MaxDisplayRows)
	return sb.String()
}

// Debug prints the frame to w as a bordered text table for debugging. At
// most numRows rows are shown, with a continuation marker when the frame
// holds more; numRows <= 0 prints every row.
func (df *DataFrame) Debug(w io.Writer, numRows int) {
	cols, rows := df.dim.Shape()
	fmt.Fprintf(w, "DataFrame[%dx%d]\n", cols, rows)
	if cols == 0 {
		return
	}

	shown := rows
	truncated := false
	if numRows > 0 && numRows < rows {
		shown = numRows
		truncated = true
	}

	names := df.schema.FieldNames()
	widths := make([]int, cols)
	for i, name := range names {
		widths[i] = len(name)
	}
	cells := make([][]string, shown)
	for row := 0; row < shown; row++ {
		start, end := df.dim.RowRange(row)
		line := make([]string, cols)
		for i, v := range df.data[start:end] {
			line[i] = v.String()
			if len(line[i]) > widths[i] {
				widths[i] = len(line[i])
			}
		}
		cells[row] = line
	}
	if truncated {
		for i := range widths {
			if widths[i] < len(ellipsis) {
				widths[i] = len(ellipsis)
			}
		}
	}

	border := tableBorder(widths)
	fmt.Fprintln(w, border)
	fmt.Fprintln(w, tableLine(names, widths))
	fmt.Fprintln(w, border)
	for _, line := range cells {
		fmt.Fprintln(w, tableLine(line, widths))
	}
	if truncated {
		fmt.Fprintln(w, tableLine(ellipsisRow(cols), widths))
	}
	fmt.Fprintln(w, border)
}

func tableBorder(widths []int) string {
	var sb strings.Builder
	for _, w := range widths {
		sb.WriteString("+")
		sb.WriteString(strings.Repeat("-", w+2))
	}
	sb.WriteString("+")
	return sb.String()
}

func tableLine(cells []string, widths []int) string {
	var sb strings.Builder
	for i, c := range cells {
		sb.WriteString("| ")
		sb.WriteString(c)
		sb.WriteString(strings.Repeat(" ", widths[i]-len(c)+1))
	}
	sb.WriteString("|")
	return sb.String()
}

const ellipsis = "..."

func ellipsisRow(cols int) []string {
	row := make([]string, cols)
	for i := range row {
		row[i] = ellipsis
	}
	return row
}
