package value

import (
	"encoding/binary"
	"math"

	xxhash "github.com/cespare/xxhash/v2"
)

// Hash returns a 64-bit content hash of the value, covering both the
// variant tag and the payload. Same-variant equal values hash equally;
// values of different variants never share a preimage layout.
func Hash(v Value) uint64 {
	d := xxhash.New()
	writeValue(d, v)
	return d.Sum64()
}

// WriteHash feeds the value's canonical bytes into an existing digest so
// callers can fold many values into one fingerprint.
func WriteHash(d *xxhash.Digest, v Value) {
	writeValue(d, v)
}

func writeValue(d *xxhash.Digest, v Value) {
	var scratch [8]byte
	_, _ = d.Write([]byte{byte(v.kind)})
	switch v.kind {
	case NullType:
	case BoolType:
		if v.b {
			_, _ = d.Write([]byte{1})
		} else {
			_, _ = d.Write([]byte{0})
		}
	case StringType:
		writeBytes(d, []byte(v.s))
	case DateType:
		binary.LittleEndian.PutUint64(scratch[:], uint64(v.t.UnixNano()))
		_, _ = d.Write(scratch[:])
	case BinaryType:
		writeBytes(d, v.bin)
	case ArrayType:
		binary.LittleEndian.PutUint64(scratch[:], uint64(len(v.arr)))
		_, _ = d.Write(scratch[:])
		for _, elem := range v.arr {
			writeValue(d, elem)
		}
	case MapType:
		binary.LittleEndian.PutUint64(scratch[:], uint64(v.m.Len()))
		_, _ = d.Write(scratch[:])
		v.m.Range(func(key string, elem Value) bool {
			writeBytes(d, []byte(key))
			writeValue(d, elem)
			return true
		})
	case Uint8Type, Uint16Type, Uint32Type, Uint64Type:
		binary.LittleEndian.PutUint64(scratch[:], v.num.u)
		_, _ = d.Write(scratch[:])
	case Int8Type, Int16Type, Int32Type, Int64Type:
		binary.LittleEndian.PutUint64(scratch[:], uint64(v.num.i))
		_, _ = d.Write(scratch[:])
	case FloatType, DoubleType:
		binary.LittleEndian.PutUint64(scratch[:], math.Float64bits(v.num.f))
		_, _ = d.Write(scratch[:])
	case DecimalType:
		writeBytes(d, []byte(v.num.d.String()))
	}
}

func writeBytes(d *xxhash.Digest, b []byte) {
	var scratch [8]byte
	binary.LittleEndian.PutUint64(scratch[:], uint64(len(b)))
	_, _ = d.Write(scratch[:])
	_, _ = d.Write(b)
}
