package cloud

import (
	"fmt"

	"github.com/arloliu/vtkio/errs"
)

// PointCloud is a row-major point buffer with its field layout.
type PointCloud struct {
	// Width and Height give the organised dimensions; only their product is
	// meaningful to the writers.
	Width  uint32
	Height uint32
	// Fields lists the row layout in declaration order.
	Fields []PointField
	// Data holds Width*Height rows of equal stride.
	Data []byte
	// IsBigEndian marks Data as big endian. The zero value is little endian.
	IsBigEndian bool
}

// NumPoints returns Width*Height.
func (c *PointCloud) NumPoints() int {
	return int(c.Width) * int(c.Height)
}

// PointStride derives the size of a row from the buffer length.
//
// It returns errs.ErrEmptyInput when the buffer is empty or the cloud declares
// zero points, and errs.ErrInvalidPointStride when the buffer length is not a
// multiple of the point count.
func (c *PointCloud) PointStride() (int, error) {
	if len(c.Data) == 0 {
		return 0, errs.ErrEmptyInput
	}

	n := c.NumPoints()
	if n == 0 {
		return 0, fmt.Errorf("%w: %d bytes for %dx%d points", errs.ErrEmptyInput, len(c.Data), c.Width, c.Height)
	}

	if len(c.Data)%n != 0 {
		return 0, fmt.Errorf("%w: %d bytes for %d points", errs.ErrInvalidPointStride, len(c.Data), n)
	}

	return len(c.Data) / n, nil
}

// Polygon is an ordered list of vertex indices into the point buffer.
type Polygon struct {
	Vertices []uint32
}

// PolygonMesh pairs a point cloud with its face topology.
type PolygonMesh struct {
	Cloud    PointCloud
	Polygons []Polygon
}

// IndexCount returns the POLYGONS size value of the legacy VTK format: the sum
// of all vertex counts plus one length prefix per polygon.
func (m *PolygonMesh) IndexCount() int {
	total := len(m.Polygons)
	for i := range m.Polygons {
		total += len(m.Polygons[i].Vertices)
	}

	return total
}
