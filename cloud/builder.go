package cloud

import (
	"fmt"

	"github.com/arloliu/vtkio/endian"
	"github.com/arloliu/vtkio/format"
)

// Builder packs fields into a point buffer.
//
// Fields are laid out back to back in the order they are added. Padding can be
// inserted with AddPadding to mimic the SSE-aligned layouts PCL produces.
//
//	b := cloud.NewBuilder(false).
//	    AddField(cloud.FieldX, format.TypeFloat32).
//	    AddField(cloud.FieldY, format.TypeFloat32).
//	    AddField(cloud.FieldZ, format.TypeFloat32)
//	b.AddPoint().SetFloat32(cloud.FieldX, 1).SetFloat32(cloud.FieldY, 2).SetFloat32(cloud.FieldZ, 3)
//	pc := b.Cloud()
type Builder struct {
	fields    []PointField
	index     map[string]int
	stride    int
	data      []byte
	points    int
	bigEndian bool
	engine    endian.EndianEngine
}

// NewBuilder creates an empty builder producing a buffer in the given byte
// order.
func NewBuilder(bigEndian bool) *Builder {
	return &Builder{
		index:     make(map[string]int),
		bigEndian: bigEndian,
		engine:    endian.Select(bigEndian),
	}
}

// AddField appends a single-element field to the row layout. Fields must be
// added before the first point.
func (b *Builder) AddField(name string, dt format.DataType) *Builder {
	if b.points > 0 {
		panic("cloud: AddField after AddPoint")
	}

	if _, ok := b.index[name]; !ok {
		b.index[name] = len(b.fields)
	}
	b.fields = append(b.fields, PointField{
		Name:     name,
		Offset:   uint32(b.stride),
		DataType: dt,
		Count:    1,
	})
	b.stride += dt.Size()

	return b
}

// AddPadding appends n unused bytes to the row layout.
func (b *Builder) AddPadding(n int) *Builder {
	if b.points > 0 {
		panic("cloud: AddPadding after AddPoint")
	}
	b.stride += n

	return b
}

// Stride returns the current row size.
func (b *Builder) Stride() int {
	return b.stride
}

// AddPoint appends a zeroed row and returns a handle for setting its values.
func (b *Builder) AddPoint() Point {
	b.data = append(b.data, make([]byte, b.stride)...)
	b.points++

	return Point{b: b, row: b.points - 1}
}

// Cloud returns the built cloud as a single row of Width points. The returned
// cloud shares the builder's buffer.
func (b *Builder) Cloud() PointCloud {
	fields := make([]PointField, len(b.fields))
	copy(fields, b.fields)

	return PointCloud{
		Width:       uint32(b.points),
		Height:      1,
		Fields:      fields,
		Data:        b.data,
		IsBigEndian: b.bigEndian,
	}
}

// Point is a row being filled by a Builder.
type Point struct {
	b   *Builder
	row int
}

func (p Point) slot(name string) []byte {
	i, ok := p.b.index[name]
	if !ok {
		panic(fmt.Sprintf("cloud: unknown field %q", name))
	}
	addr := p.row*p.b.stride + int(p.b.fields[i].Offset)

	return p.b.data[addr : addr+4]
}

// SetFloat32 stores the bits of v in field name, whatever its declared
// datatype. It panics if name was never added.
func (p Point) SetFloat32(name string, v float32) Point {
	endian.PutFloat32(p.b.engine, p.slot(name), v)
	return p
}

// SetUint32 stores v in field name, whatever its declared datatype.
func (p Point) SetUint32(name string, v uint32) Point {
	p.b.engine.PutUint32(p.slot(name), v)
	return p
}

// SetRGB packs c into field name the way PCL stores rgb in a float.
func (p Point) SetRGB(name string, c RGB) Point {
	v := uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
	p.b.engine.PutUint32(p.slot(name), v)

	return p
}
