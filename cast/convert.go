package cast

import (
	"time"

	"github.com/strataframe/strata/errors"
	"github.com/strataframe/strata/internal/config"
	"github.com/strataframe/strata/value"
)

// Conversion is a cast that needs ancillary configuration, such as a date
// layout. Applying one yields the transformed value; ResultType is the
// DataType the caller writes back into the schema on success.
type Conversion interface {
	Apply(v value.Value) (value.Value, error)
	ResultType() value.DataType
}

type parseDateTime struct {
	layout string
}

// ParseDateTime returns a Conversion that parses string values into Date
// values using a Go reference layout. An empty layout falls back to the
// configured default.
func ParseDateTime(layout string) Conversion {
	return parseDateTime{layout: layout}
}

func (p parseDateTime) resolve() string {
	if p.layout != "" {
		return p.layout
	}
	return config.GetConfig().DateLayout
}

func (p parseDateTime) Apply(v value.Value) (value.Value, error) {
	layout := p.resolve()
	s := v.String()
	t, err := time.Parse(layout, s)
	if err != nil {
		return value.Null, &errors.ParseDateError{Value: s, Layout: layout, Cause: err}
	}
	return value.Date(t), nil
}

func (p parseDateTime) ResultType() value.DataType {
	return value.DateType
}
