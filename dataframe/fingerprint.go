package dataframe

import (
	"encoding/binary"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/strataframe/strata/value"
)

// Fingerprint returns a 64-bit content hash covering the frame's
// dimensions, schema and buffer, useful for cheap change detection between
// pipeline stages. Frames with equal schemas and equal values fingerprint
// equally.
func (df *DataFrame) Fingerprint() uint64 {
	d := xxhash.New()
	var scratch [8]byte

	binary.LittleEndian.PutUint64(scratch[:], uint64(df.dim.cols))
	_, _ = d.Write(scratch[:])
	binary.LittleEndian.PutUint64(scratch[:], uint64(df.dim.rows))
	_, _ = d.Write(scratch[:])

	for _, f := range df.schema.Fields() {
		_, _ = d.WriteString(f.Name)
		_, _ = d.Write([]byte{byte(f.DType), boolByte(f.Nullable)})
	}
	for _, v := range df.data {
		value.WriteHash(d, v)
	}
	return d.Sum64()
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
