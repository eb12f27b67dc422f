package cloud

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/vtkio/errs"
	"github.com/arloliu/vtkio/format"
)

func TestExtractorFloat32(t *testing.T) {
	for _, bigEndian := range []bool{false, true} {
		b := xyzBuilder(bigEndian)
		b.AddPoint().SetFloat32(FieldX, 1.5).SetFloat32(FieldY, -2).SetFloat32(FieldZ, 0.25)
		b.AddPoint().SetFloat32(FieldX, 10).SetFloat32(FieldY, 20).SetFloat32(FieldZ, 30)
		pc := b.Cloud()

		ex, err := NewExtractor(&pc)
		require.NoError(t, err)
		require.Equal(t, 12, ex.Stride())

		ix := NewFieldIndex(pc.Fields)
		x, _ := ix.Lookup(FieldX)
		z, _ := ix.Lookup(FieldZ)

		v, ok := ex.Float32(0, x)
		require.True(t, ok)
		require.Equal(t, float32(1.5), v)

		v, ok = ex.Float32(1, z)
		require.True(t, ok)
		require.Equal(t, float32(30), v)
	}
}

func TestExtractorTypeMismatch(t *testing.T) {
	b := NewBuilder(false).
		AddField(FieldIntensity, format.TypeUint32).
		AddField(FieldLabel, format.TypeFloat32)
	b.AddPoint().SetUint32(FieldIntensity, 5).SetFloat32(FieldLabel, 1)
	pc := b.Cloud()

	ex, err := NewExtractor(&pc)
	require.NoError(t, err)

	_, ok := ex.Float32(0, pc.Fields[0])
	require.False(t, ok)

	_, ok = ex.Uint32(0, pc.Fields[1])
	require.False(t, ok)

	_, ok = ex.RGB(0, pc.Fields[0])
	require.False(t, ok)

	label, ok := ex.Uint32(0, pc.Fields[0])
	require.True(t, ok)
	require.Equal(t, uint32(5), label)
}

func TestExtractorRGB(t *testing.T) {
	for _, bigEndian := range []bool{false, true} {
		b := NewBuilder(bigEndian).AddField(FieldRGB, format.TypeFloat32)
		b.AddPoint().SetRGB(FieldRGB, RGB{R: 255, G: 128, B: 0, A: 255})
		pc := b.Cloud()

		ex, err := NewExtractor(&pc)
		require.NoError(t, err)

		c, ok := ex.RGB(0, pc.Fields[0])
		require.True(t, ok)
		require.Equal(t, RGB{R: 255, G: 128, B: 0, A: 255}, c)

		r, g, bl := c.Normalized()
		require.InDelta(t, 1.0, r, 1e-6)
		require.InDelta(t, 0.50196, g, 1e-5)
		require.InDelta(t, 0.0, bl, 1e-6)
	}
}

func TestExtractorRGBMemoryLayout(t *testing.T) {
	// PCL little-endian layout: b, g, r, a.
	pc := PointCloud{
		Width:  1,
		Height: 1,
		Fields: []PointField{{Name: FieldRGB, DataType: format.TypeFloat32, Count: 1}},
		Data:   []byte{0x10, 0x20, 0x30, 0xFF},
	}
	ex, err := NewExtractor(&pc)
	require.NoError(t, err)

	c, ok := ex.RGB(0, pc.Fields[0])
	require.True(t, ok)
	require.Equal(t, RGB{R: 0x30, G: 0x20, B: 0x10, A: 0xFF}, c)
}

func TestExtractorCheckBounds(t *testing.T) {
	pc := PointCloud{Width: 1, Height: 1, Data: make([]byte, 8)}
	ex, err := NewExtractor(&pc)
	require.NoError(t, err)

	require.NoError(t, ex.CheckBounds(PointField{Name: "a", Offset: 4, DataType: format.TypeFloat32}))

	err = ex.CheckBounds(PointField{Name: "b", Offset: 6, DataType: format.TypeFloat32})
	require.ErrorIs(t, err, errs.ErrFieldOutOfRange)

	err = ex.CheckBounds(PointField{Name: "c", Offset: 0, DataType: format.DataType(0)})
	require.ErrorIs(t, err, errs.ErrFieldTypeMismatch)
}

func TestExtractorMultiValuedFieldReadsFirstElement(t *testing.T) {
	engineData := []byte{
		0x00, 0x00, 0x80, 0x3F, // 1.0
		0x00, 0x00, 0x00, 0x40, // 2.0
	}
	pc := PointCloud{Width: 1, Height: 1, Data: engineData}
	ex, err := NewExtractor(&pc)
	require.NoError(t, err)

	v, ok := ex.Float32(0, PointField{Name: "pair", DataType: format.TypeFloat32, Count: 2})
	require.True(t, ok)
	require.Equal(t, float32(1), v)
}

func TestNewExtractorErrors(t *testing.T) {
	_, err := NewExtractor(&PointCloud{Width: 1, Height: 1})
	require.ErrorIs(t, err, errs.ErrEmptyInput)

	_, err = NewExtractor(&PointCloud{Width: 3, Height: 1, Data: make([]byte, 4)})
	require.ErrorIs(t, err, errs.ErrInvalidPointStride)
}
