package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strataframe/strata/errors"
	"github.com/strataframe/strata/value"
)

func TestFromCSVWithHeader(t *testing.T) {
	in := "id,name,score\n1,alice,9.5\n2,bob,\n"

	df, err := FromCSV(strings.NewReader(in), CSVOptions{HasHeader: true})
	require.NoError(t, err)

	cols, rows := df.Shape()
	assert.Equal(t, 3, cols)
	assert.Equal(t, 2, rows)
	assert.Equal(t, []string{"id", "name", "score"}, df.Columns())

	// cells import as strings, empty cells as null
	assert.True(t, df.Index(0)[0].Equal(value.String("1")))
	assert.True(t, df.Index(0)[2].Equal(value.String("9.5")))
	assert.True(t, df.Index(1)[2].IsNull())
}

func TestFromCSVHeaderless(t *testing.T) {
	df, err := FromCSV(strings.NewReader("a,b\nc,d\n"), CSVOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"0", "1"}, df.Columns())
	assert.Equal(t, 2, df.NumRows())
	assert.True(t, df.Index(0)[0].Equal(value.String("a")))
}

func TestFromCSVShortRowsPadWithNull(t *testing.T) {
	df, err := FromCSV(strings.NewReader("a,b,c\n1,2\n"), CSVOptions{HasHeader: true})
	require.NoError(t, err)

	row := df.Index(0)
	require.Len(t, row, 3)
	assert.True(t, row[2].IsNull())
}

func TestFromCSVLongRowsFail(t *testing.T) {
	_, err := FromCSV(strings.NewReader("a,b\n1,2,3\n"), CSVOptions{HasHeader: true})
	require.Error(t, err)
	var il *errors.InvalidDataLengthError
	require.ErrorAs(t, err, &il)
	assert.Equal(t, 2, il.Expected)
	assert.Equal(t, 3, il.Actual)
}

func TestFromCSVEmptyInput(t *testing.T) {
	df, err := FromCSV(strings.NewReader(""), CSVOptions{HasHeader: true})
	require.NoError(t, err)
	cols, rows := df.Shape()
	assert.Equal(t, 0, cols)
	assert.Equal(t, 0, rows)
}

func TestFromCSVCustomDelimiter(t *testing.T) {
	df, err := FromCSV(strings.NewReader("a;b\n1;2\n"), CSVOptions{HasHeader: true, Comma: ';'})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, df.Columns())
}

func TestCSVRoundTrip(t *testing.T) {
	in := "id,name\n1,alice\n2,\n"
	df, err := FromCSV(strings.NewReader(in), CSVOptions{HasHeader: true})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ToCSV(&buf, df, CSVOptions{HasHeader: true}))
	assert.Equal(t, in, buf.String())

	again, err := FromCSV(strings.NewReader(buf.String()), CSVOptions{HasHeader: true})
	require.NoError(t, err)
	assert.True(t, again.Index(1)[1].IsNull())
}

func TestCSVFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.csv")
	df, err := FromCSV(strings.NewReader("x,y\n1,2\n"), CSVOptions{HasHeader: true})
	require.NoError(t, err)

	require.NoError(t, ToCSVFile(path, df, CSVOptions{HasHeader: true}))

	again, err := FromCSVFile(path, CSVOptions{HasHeader: true})
	require.NoError(t, err)
	assert.Equal(t, df.Columns(), again.Columns())
	assert.Equal(t, df.NumRows(), again.NumRows())

	_, err = FromCSVFile(filepath.Join(t.TempDir(), "absent.csv"), CSVOptions{})
	assert.True(t, os.IsNotExist(err))
}
