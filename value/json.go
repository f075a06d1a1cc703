package value

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// DateWireLayout is the naive timestamp layout used by the JSON codec.
const DateWireLayout = "2006-01-02T15:04:05.999999999"

type envelope struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value,omitempty"`
}

// MarshalJSON encodes the value as a structure-preserving tagged pair:
// {"type": "<datatype>", "value": <payload>}. Integer payloads are written
// verbatim so 64-bit widths round-trip exactly; decimals travel as strings.
func (v Value) MarshalJSON() ([]byte, error) {
	payload, err := v.marshalPayload()
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelope{Type: v.kind.String(), Value: payload})
}

func (v Value) marshalPayload() (json.RawMessage, error) {
	switch v.kind {
	case NullType:
		return nil, nil
	case BoolType:
		return json.Marshal(v.b)
	case StringType:
		return json.Marshal(v.s)
	case DateType:
		return json.Marshal(v.t.Format(DateWireLayout))
	case BinaryType:
		return json.Marshal(base64.StdEncoding.EncodeToString(v.bin))
	case ArrayType:
		items := make([]json.RawMessage, len(v.arr))
		for i, elem := range v.arr {
			raw, err := elem.MarshalJSON()
			if err != nil {
				return nil, err
			}
			items[i] = raw
		}
		return json.Marshal(items)
	case MapType:
		obj := make(map[string]json.RawMessage, v.m.Len())
		var mapErr error
		v.m.Range(func(key string, elem Value) bool {
			raw, err := elem.MarshalJSON()
			if err != nil {
				mapErr = err
				return false
			}
			obj[key] = raw
			return true
		})
		if mapErr != nil {
			return nil, mapErr
		}
		return json.Marshal(obj)
	case Uint8Type, Uint16Type, Uint32Type, Uint64Type:
		return json.RawMessage(strconv.FormatUint(v.num.u, 10)), nil
	case Int8Type, Int16Type, Int32Type, Int64Type:
		return json.RawMessage(strconv.FormatInt(v.num.i, 10)), nil
	case FloatType, DoubleType:
		return json.Marshal(v.num.f)
	case DecimalType:
		return json.Marshal(v.num.d.String())
	default:
		return nil, fmt.Errorf("cannot serialize a value of type %s", v.kind)
	}
}

// UnmarshalJSON decodes the tagged pair produced by MarshalJSON.
func (v *Value) UnmarshalJSON(data []byte) error {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	dt, ok := DataTypeFromString(env.Type)
	if !ok {
		return fmt.Errorf("%s is not a valid type", env.Type)
	}
	decoded, err := decodePayload(dt, env.Value)
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}

func decodePayload(dt DataType, raw json.RawMessage) (Value, error) {
	switch dt {
	case NullType, AnyType:
		return Null, nil
	case BoolType:
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return Null, err
		}
		return Bool(b), nil
	case StringType:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return Null, err
		}
		return String(s), nil
	case DateType:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return Null, err
		}
		t, err := time.Parse(DateWireLayout, s)
		if err != nil {
			return Null, err
		}
		return Date(t), nil
	case BinaryType:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return Null, err
		}
		b, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return Null, err
		}
		return Binary(b), nil
	case ArrayType:
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return Null, err
		}
		arr := make([]Value, len(items))
		for i, item := range items {
			if err := arr[i].UnmarshalJSON(item); err != nil {
				return Null, err
			}
		}
		return Array(arr...), nil
	case MapType:
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			return Null, err
		}
		m := NewMap()
		for key, item := range obj {
			var elem Value
			if err := elem.UnmarshalJSON(item); err != nil {
				return Null, err
			}
			m.Set(key, elem)
		}
		return Object(m), nil
	case DecimalType:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return Null, err
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return Null, err
		}
		return Decimal(d), nil
	case FloatType, DoubleType:
		var f float64
		if err := json.Unmarshal(raw, &f); err != nil {
			return Null, err
		}
		if dt == FloatType {
			return Float(float32(f)), nil
		}
		return Double(f), nil
	case Uint8Type, Uint16Type, Uint32Type, Uint64Type:
		// parse with the tag's own width so an oversized payload cannot
		// produce a Number whose storage exceeds its tag
		u, err := strconv.ParseUint(string(raw), 10, integerBitSize(dt))
		if err != nil {
			return Null, err
		}
		return NewNumber(Number{tag: dt, u: u}), nil
	case Int8Type, Int16Type, Int32Type, Int64Type:
		i, err := strconv.ParseInt(string(raw), 10, integerBitSize(dt))
		if err != nil {
			return Null, err
		}
		return NewNumber(Number{tag: dt, i: i}), nil
	default:
		return Null, fmt.Errorf("cannot deserialize a value of type %s", dt)
	}
}

func integerBitSize(dt DataType) int {
	switch dt {
	case Uint8Type, Int8Type:
		return 8
	case Uint16Type, Int16Type:
		return 16
	case Uint32Type, Int32Type:
		return 32
	default:
		return 64
	}
}
