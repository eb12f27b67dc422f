package vtk

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/vtkio/cloud"
	"github.com/arloliu/vtkio/format"
)

type testPoint struct {
	x, y, z   float32
	rgb       cloud.RGB
	intensity float32
	label     uint32
	normal    [3]float32
}

var twoPoints = []testPoint{
	{x: 1.5, y: -2, z: 0.25, rgb: cloud.RGB{R: 255, G: 128, B: 0}, intensity: 0.5, label: 7, normal: [3]float32{0, 0, 1}},
	{x: 10, y: 20, z: 30, rgb: cloud.RGB{B: 255}, intensity: 100.25, label: 42, normal: [3]float32{0.6, 0.8, 0}},
}

// fullCloud builds a cloud carrying every field the writers understand.
func fullCloud(t *testing.T, bigEndian bool, points []testPoint) cloud.PointCloud {
	t.Helper()

	b := cloud.NewBuilder(bigEndian).
		AddField(cloud.FieldX, format.TypeFloat32).
		AddField(cloud.FieldY, format.TypeFloat32).
		AddField(cloud.FieldZ, format.TypeFloat32).
		AddPadding(4).
		AddField(cloud.FieldRGB, format.TypeFloat32).
		AddField(cloud.FieldIntensity, format.TypeFloat32).
		AddField(cloud.FieldLabel, format.TypeUint32).
		AddField(cloud.FieldNormalX, format.TypeFloat32).
		AddField(cloud.FieldNormalY, format.TypeFloat32).
		AddField(cloud.FieldNormalZ, format.TypeFloat32)

	for _, p := range points {
		b.AddPoint().
			SetFloat32(cloud.FieldX, p.x).
			SetFloat32(cloud.FieldY, p.y).
			SetFloat32(cloud.FieldZ, p.z).
			SetRGB(cloud.FieldRGB, p.rgb).
			SetFloat32(cloud.FieldIntensity, p.intensity).
			SetUint32(cloud.FieldLabel, p.label).
			SetFloat32(cloud.FieldNormalX, p.normal[0]).
			SetFloat32(cloud.FieldNormalY, p.normal[1]).
			SetFloat32(cloud.FieldNormalZ, p.normal[2])
	}

	return b.Cloud()
}

// customCloud builds a cloud from an arbitrary list of 4-byte fields. Every
// float32 field of point i is set to i+1, every uint32 field to i+1.
func customCloud(t *testing.T, points int, fields ...cloud.PointField) cloud.PointCloud {
	t.Helper()

	b := cloud.NewBuilder(false)
	for _, f := range fields {
		b.AddField(f.Name, f.DataType)
	}
	for i := range points {
		p := b.AddPoint()
		for _, f := range fields {
			if f.DataType == format.TypeUint32 {
				p.SetUint32(f.Name, uint32(i+1))
			} else {
				p.SetFloat32(f.Name, float32(i+1))
			}
		}
	}

	return b.Cloud()
}

func f32(name string) cloud.PointField {
	return cloud.PointField{Name: name, DataType: format.TypeFloat32}
}

func u32(name string) cloud.PointField {
	return cloud.PointField{Name: name, DataType: format.TypeUint32}
}

func newTestWriter(t *testing.T, opts ...WriterOption) *Writer {
	t.Helper()

	w, err := NewWriter(opts...)
	require.NoError(t, err)

	return w
}

func renderCloud(t *testing.T, w *Writer, pc *cloud.PointCloud) (string, Stats) {
	t.Helper()

	var out bytes.Buffer
	stats, err := w.WriteCloud(&out, pc)
	require.NoError(t, err)

	return out.String(), stats
}

func renderMesh(t *testing.T, w *Writer, mesh *cloud.PolygonMesh) (string, Stats) {
	t.Helper()

	var out bytes.Buffer
	stats, err := w.WriteMesh(&out, mesh)
	require.NoError(t, err)

	return out.String(), stats
}

func lines(doc string) []string {
	return strings.Split(strings.TrimSuffix(doc, "\n"), "\n")
}

// sectionIndex returns the line number of the first line starting with
// prefix, or -1.
func sectionIndex(doc, prefix string) int {
	for i, l := range lines(doc) {
		if strings.HasPrefix(l, prefix) {
			return i
		}
	}

	return -1
}
