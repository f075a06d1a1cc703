package io

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	multierror "github.com/hashicorp/go-multierror"
	"github.com/tidwall/gjson"

	"github.com/strataframe/strata/dataframe"
	"github.com/strataframe/strata/value"
)

// InvalidJSONError reports a JSONL line that failed to parse or was not an
// object.
type InvalidJSONError struct {
	Line int
}

func (e *InvalidJSONError) Error() string {
	return fmt.Sprintf("line %d is not a valid JSON object", e.Line)
}

// ValueFromJSON converts a parsed JSON result into a Value. Objects map to
// the Map variant, arrays to Array; JSON numbers import as Int64 when the
// literal is integral (Uint64 when only an unsigned width fits), Double
// otherwise.
func ValueFromJSON(res gjson.Result) value.Value {
	switch res.Type {
	case gjson.Null:
		return value.Null
	case gjson.False:
		return value.Bool(false)
	case gjson.True:
		return value.Bool(true)
	case gjson.String:
		return value.String(res.Str)
	case gjson.Number:
		return numberFromJSON(res)
	default:
		if res.IsArray() {
			var elems []value.Value
			res.ForEach(func(_, el gjson.Result) bool {
				elems = append(elems, ValueFromJSON(el))
				return true
			})
			return value.Array(elems...)
		}
		if res.IsObject() {
			m := value.NewMap()
			res.ForEach(func(k, el gjson.Result) bool {
				m.Set(k.String(), ValueFromJSON(el))
				return true
			})
			return value.Object(m)
		}
		return value.Null
	}
}

func numberFromJSON(res gjson.Result) value.Value {
	raw := res.Raw
	if !strings.ContainsAny(raw, ".eE") {
		if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return value.Int64(i)
		}
		if u, err := strconv.ParseUint(raw, 10, 64); err == nil {
			return value.Uint64(u)
		}
	}
	return value.Double(res.Num)
}

// FrameFromJSONL reads one JSON object per line and projects the given
// gjson paths into columns. A nil columns slice derives the column set from
// the first object's keys in document order. Blank lines are skipped;
// missing paths yield Null. All malformed lines are reported together and
// no frame is returned when any line is bad.
func FrameFromJSONL(r io.Reader, columns []string) (*dataframe.DataFrame, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var (
		rows     [][]value.Value
		batchErr *multierror.Error
		lineNo   int
	)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parsed := gjson.Parse(line)
		if !gjson.Valid(line) || !parsed.IsObject() {
			batchErr = multierror.Append(batchErr, &InvalidJSONError{Line: lineNo})
			continue
		}
		if columns == nil {
			parsed.ForEach(func(k, _ gjson.Result) bool {
				columns = append(columns, k.String())
				return true
			})
		}
		row := make([]value.Value, len(columns))
		for i, col := range columns {
			row[i] = ValueFromJSON(parsed.Get(col))
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if err := batchErr.ErrorOrNil(); err != nil {
		return nil, err
	}

	df, err := dataframe.WithColumns(columns)
	if err != nil {
		return nil, err
	}
	if _, err := df.Extend(rows); err != nil {
		return nil, err
	}
	return df, nil
}
