package cast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strataframe/strata/errors"
	"github.com/strataframe/strata/internal/config"
	"github.com/strataframe/strata/value"
)

func mustDate(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
}

func TestParseDateTime(t *testing.T) {
	conv := ParseDateTime("2006-01-02")
	assert.Equal(t, value.DateType, conv.ResultType())

	out, err := conv.Apply(value.String("2024-03-01"))
	require.NoError(t, err)
	d, ok := out.Date()
	require.True(t, ok)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 1, d.Day())
}

func TestParseDateTimeFailure(t *testing.T) {
	conv := ParseDateTime("2006-01-02")
	_, err := conv.Apply(value.String("not a date"))
	require.Error(t, err)

	var pd *errors.ParseDateError
	require.ErrorAs(t, err, &pd)
	assert.Equal(t, "not a date", pd.Value)
	assert.Equal(t, "2006-01-02", pd.Layout)
	assert.Error(t, pd.Unwrap())
}

func TestParseDateTimeDefaultLayout(t *testing.T) {
	defer config.Reset()
	c := config.NewConfig()
	c.DateLayout = "02/01/2006"
	require.NoError(t, config.SetConfig(c))

	out, err := ParseDateTime("").Apply(value.String("01/03/2024"))
	require.NoError(t, err)
	d, ok := out.Date()
	require.True(t, ok)
	assert.Equal(t, time.March, d.Month())
}
