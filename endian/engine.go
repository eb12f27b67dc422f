// Package endian provides the byte order used to decode point buffers.
//
// PCL records the byte order of a point buffer in the is_bigendian flag of
// PCLPointCloud2. The EndianEngine selected from that flag is what the field
// extractor uses to turn raw bytes into float32 and uint32 values, and what
// the cloud builder uses to pack them.
//
//	engine := endian.Select(cloud.IsBigEndian)
//	x := endian.Float32(engine, row[field.Offset:])
//
// All functions in this package are safe for concurrent use. The returned
// engines are stateless.
package endian

import (
	"encoding/binary"
	"math"
)

// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder.
//
// binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Select returns the engine for a buffer flagged as big endian or not.
func Select(bigEndian bool) EndianEngine {
	if bigEndian {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// Float32 decodes an IEEE-754 float32 from the first four bytes of b.
func Float32(engine EndianEngine, b []byte) float32 {
	return math.Float32frombits(engine.Uint32(b))
}

// PutFloat32 encodes v into the first four bytes of b.
func PutFloat32(engine EndianEngine, b []byte, v float32) {
	engine.PutUint32(b, math.Float32bits(v))
}
