package strata_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strataframe/strata"
)

func TestBuildTransformExport(t *testing.T) {
	// ingest a raw CSV extract
	csvIn := strings.Join([]string{
		"id,name,score,signup",
		"1,alice,9.5,2024-01-15",
		"2,bob,,2024-02-20",
		"3,carol,7.25,2024-03-05",
	}, "\n") + "\n"

	df, err := strata.FromCSV(strings.NewReader(csvIn), strata.CSVOptions{HasHeader: true})
	require.NoError(t, err)

	cols, rows := df.Shape()
	assert.Equal(t, 4, cols)
	assert.Equal(t, 3, rows)

	// tighten the raw string columns into real types
	require.NoError(t, df.CastColumn("id", strata.Int64Type))
	require.NoError(t, df.CastColumn("score", strata.DoubleType))
	_, err = df.ConvertColumn("signup", strata.ParseDateTime("2006-01-02"))
	require.NoError(t, err)

	f, ok := df.Schema().Field("signup")
	require.True(t, ok)
	assert.Equal(t, strata.DateType, f.DType)

	// nulls survive the casts untouched
	v, ok := df.At(1, 2)
	require.True(t, ok)
	assert.True(t, v.IsNull())

	// project and filter
	scored, err := df.Where("score", strata.GtEq, strata.Double(8))
	require.NoError(t, err)
	assert.Equal(t, 1, scored.NumRows())

	out, err := df.Select(strata.Col("name"), strata.ColAs("score", "points"))
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "points"}, out.Columns())

	// iterate rows through copy-on-write views
	it := df.Iter()
	total := 0.0
	for {
		row, more := it.Next()
		if !more {
			break
		}
		s, ok := row.Get("score")
		require.True(t, ok)
		if s.IsNull() {
			continue
		}
		n, ok := s.Number()
		require.True(t, ok)
		d, err := n.Double()
		require.NoError(t, err)
		total += d
	}
	assert.InDelta(t, 16.75, total, 1e-9)

	// export back out
	var buf bytes.Buffer
	require.NoError(t, strata.ToCSV(&buf, out, strata.CSVOptions{HasHeader: true}))
	assert.Contains(t, buf.String(), "name,points")
	assert.Contains(t, buf.String(), "alice,9.5")
}

func TestValueConstructionAndCasting(t *testing.T) {
	v := strata.Uint8(200)
	assert.Equal(t, strata.Uint8Type, v.TypeOf())

	widened, err := strata.TryCast(v, strata.Int64Type)
	require.NoError(t, err)
	assert.True(t, widened.Equal(strata.Int64(200)))

	_, err = strata.TryCast(strata.Int32(300), strata.Uint8Type)
	assert.Error(t, err)
	assert.True(t, strata.SafeCast(strata.Int32(300), strata.Uint8Type).IsNull())

	d, err := strata.NewDecimal("19.99")
	require.NoError(t, err)
	assert.Equal(t, strata.DecimalType, strata.Decimal(d).TypeOf())
}

func TestJSONLIngestion(t *testing.T) {
	in := `{"user":"alice","visits":3}` + "\n" + `{"user":"bob","visits":5}` + "\n"

	df, err := strata.FrameFromJSONL(strings.NewReader(in), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"user", "visits"}, df.Columns())

	df.DeriveSchema()
	f, ok := df.Schema().Field("visits")
	require.True(t, ok)
	assert.Equal(t, strata.Int64Type, f.DType)
	assert.False(t, f.Nullable)
}
