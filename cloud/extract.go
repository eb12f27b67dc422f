package cloud

import (
	"fmt"

	"github.com/arloliu/vtkio/endian"
	"github.com/arloliu/vtkio/errs"
	"github.com/arloliu/vtkio/format"
)

// RGB holds the channels of a packed PCL rgb field.
type RGB struct {
	R, G, B, A uint8
}

// Normalized returns the color channels scaled to [0, 1].
func (c RGB) Normalized() (r, g, b float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}

// Extractor decodes single field values from the rows of a point buffer.
//
// The caller is responsible for passing row < NumPoints and fields that passed
// CheckBounds; the accessors do no range checks of their own.
type Extractor struct {
	data   []byte
	stride int
	engine endian.EndianEngine
}

// NewExtractor derives the point stride of c and returns an extractor over its
// buffer. See PointCloud.PointStride for the errors returned.
func NewExtractor(c *PointCloud) (*Extractor, error) {
	stride, err := c.PointStride()
	if err != nil {
		return nil, err
	}

	return &Extractor{
		data:   c.Data,
		stride: stride,
		engine: endian.Select(c.IsBigEndian),
	}, nil
}

// Stride returns the derived size of one row in bytes.
func (e *Extractor) Stride() int {
	return e.stride
}

// CheckBounds verifies that the first element of f lies within a row.
func (e *Extractor) CheckBounds(f PointField) error {
	if f.DataType.Size() == 0 {
		return fmt.Errorf("%w: field %q has unknown datatype %d", errs.ErrFieldTypeMismatch, f.Name, f.DataType)
	}

	if f.end() > e.stride {
		return fmt.Errorf("%w: field %q ends at byte %d, stride is %d", errs.ErrFieldOutOfRange, f.Name, f.end(), e.stride)
	}

	return nil
}

func (e *Extractor) at(row int, f PointField) []byte {
	addr := row*e.stride + int(f.Offset)
	return e.data[addr : addr+4]
}

// Float32 decodes element 0 of f at row. It reports false when f is not a
// float32 field.
func (e *Extractor) Float32(row int, f PointField) (float32, bool) {
	if f.DataType != format.TypeFloat32 {
		return 0, false
	}

	return endian.Float32(e.engine, e.at(row, f)), true
}

// Uint32 decodes element 0 of f at row. It reports false when f is not a
// uint32 field.
func (e *Extractor) Uint32(row int, f PointField) (uint32, bool) {
	if f.DataType != format.TypeUint32 {
		return 0, false
	}

	return e.engine.Uint32(e.at(row, f)), true
}

// RGB reinterprets the float32 rgb field f at row as packed 0xAARRGGBB
// channels. It reports false when f is not a float32 field.
func (e *Extractor) RGB(row int, f PointField) (RGB, bool) {
	if f.DataType != format.TypeFloat32 {
		return RGB{}, false
	}

	v := e.engine.Uint32(e.at(row, f))

	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: uint8(v >> 24),
	}, true
}
