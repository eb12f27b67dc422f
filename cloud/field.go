// Package cloud describes point buffers and polygon meshes and decodes values
// from them.
//
// A PointCloud is a flat byte buffer of Width*Height fixed-size rows. The row
// layout is self-describing: each PointField names a byte offset and a
// datatype within a row. The stride of a row is not stored; it is derived
// from the buffer length and the point count.
//
// Only single-valued fields are supported. A field with Count > 1 is accepted
// but only its first element is ever read, and Count 0 (written by older PCD
// converters) is treated as 1.
package cloud

import (
	"github.com/arloliu/vtkio/format"
)

// Well-known field names. Lookups are exact and case-sensitive.
const (
	FieldX         = "x"
	FieldY         = "y"
	FieldZ         = "z"
	FieldRGB       = "rgb"
	FieldIntensity = "intensity"
	FieldLabel     = "label"
	FieldNormalX   = "normal_x"
	FieldNormalY   = "normal_y"
	FieldNormalZ   = "normal_z"
)

// PointField describes one column of a point row.
type PointField struct {
	// Name identifies the field, e.g. "x" or "intensity".
	Name string
	// Offset is the byte offset of the field from the start of a row.
	Offset uint32
	// DataType is the datatype of a single element.
	DataType format.DataType
	// Count is the number of consecutive elements stored at Offset.
	Count uint32
}

// Elements returns the effective element count, mapping 0 to 1.
func (f PointField) Elements() uint32 {
	if f.Count == 0 {
		return 1
	}

	return f.Count
}

// Size returns the number of bytes the field occupies in a row.
func (f PointField) Size() int {
	return f.DataType.Size() * int(f.Elements())
}

// end returns the offset just past the first element, which is the only one
// decoded.
func (f PointField) end() int {
	return int(f.Offset) + f.DataType.Size()
}
