package vtk

import (
	"github.com/arloliu/vtkio/cloud"
	"github.com/arloliu/vtkio/internal/pool"
)

const header = "# vtk DataFile Version 3.0\nvtk output\nASCII\nDATASET POLYDATA\n"

// document renders the sections of a legacy VTK file into a buffer.
type document struct {
	buf       *pool.ByteBuffer
	precision int
}

func (d *document) float(v float32) {
	d.buf.WriteFloat(v, d.precision)
}

func (d *document) sp() {
	_ = d.buf.WriteByte(' ')
}

func (d *document) nl() {
	_ = d.buf.WriteByte('\n')
}

// writePoints emits the header and the POINTS section.
func (d *document) writePoints(l *layout) {
	// Rough per-point estimate: three floats plus a vertex line.
	d.buf.Grow(len(header) + l.points*(3*(d.precision+8)+12))

	d.buf.WriteString(header)
	d.buf.WriteString("POINTS ")
	d.buf.WriteInt(l.points)
	d.buf.WriteString(" float\n")

	for i := range l.points {
		x, _ := l.ex.Float32(i, l.xyz[0])
		y, _ := l.ex.Float32(i, l.xyz[1])
		z, _ := l.ex.Float32(i, l.xyz[2])
		d.float(x)
		d.sp()
		d.float(y)
		d.sp()
		d.float(z)
		d.nl()
	}
}

// writeVertices emits one single-vertex cell per point.
func (d *document) writeVertices(n int) {
	d.buf.WriteString("\nVERTICES ")
	d.buf.WriteInt(n)
	d.sp()
	d.buf.WriteInt(2 * n)
	d.nl()

	for i := range n {
		d.buf.WriteString("1 ")
		d.buf.WriteInt(i)
		d.nl()
	}
}

// writePolygons emits the POLYGONS section. An empty polygon is written as a
// bare zero count.
func (d *document) writePolygons(mesh *cloud.PolygonMesh) {
	d.buf.WriteString("\nPOLYGONS ")
	d.buf.WriteInt(len(mesh.Polygons))
	d.sp()
	d.buf.WriteInt(mesh.IndexCount())
	d.nl()

	for _, p := range mesh.Polygons {
		d.buf.WriteInt(len(p.Vertices))
		for _, v := range p.Vertices {
			d.sp()
			d.buf.WriteUint(uint64(v))
		}
		d.nl()
	}
}

// writeAttributes emits the resolved POINT_DATA blocks under a single
// POINT_DATA header. Nothing is written when there are no blocks.
func (d *document) writeAttributes(l *layout) {
	if len(l.blocks) == 0 {
		return
	}

	d.buf.WriteString("\nPOINT_DATA ")
	d.buf.WriteInt(l.points)
	d.nl()

	for _, b := range l.blocks {
		switch b.kind {
		case AttributeRGB:
			d.writeColors(l, b.fields[0])
		case AttributeIntensity:
			d.writeIntensity(l, b.fields[0])
		case AttributeLabel:
			d.writeLabels(l, b.fields[0])
		case AttributeNormals:
			d.writeNormals(l, b.fields)
		}
	}
}

func (d *document) writeColors(l *layout, f cloud.PointField) {
	d.buf.WriteString("COLOR_SCALARS scalars 3\n")
	for i := range l.points {
		c, _ := l.ex.RGB(i, f)
		r, g, b := c.Normalized()
		d.float(r)
		d.sp()
		d.float(g)
		d.sp()
		d.float(b)
		d.nl()
	}
}

func (d *document) writeIntensity(l *layout, f cloud.PointField) {
	d.buf.WriteString("SCALARS intensity_scalars float 1\nLOOKUP_TABLE my_table\n")
	for i := range l.points {
		v, _ := l.ex.Float32(i, f)
		d.float(v)
		d.nl()
	}
}

func (d *document) writeLabels(l *layout, f cloud.PointField) {
	d.buf.WriteString("SCALARS labels unsigned_int 1\nLOOKUP_TABLE label_table\n")
	for i := range l.points {
		v, _ := l.ex.Uint32(i, f)
		d.buf.WriteUint(uint64(v))
		d.nl()
	}
}

func (d *document) writeNormals(l *layout, fields []cloud.PointField) {
	d.buf.WriteString("NORMALS point_normals float\n")
	for i := range l.points {
		for j, f := range fields {
			if j > 0 {
				d.sp()
			}
			v, _ := l.ex.Float32(i, f)
			d.float(v)
		}
		d.nl()
	}
}
