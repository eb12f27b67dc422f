package vtk

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/arloliu/vtkio/cloud"
	"github.com/arloliu/vtkio/errs"
	"github.com/arloliu/vtkio/internal/hash"
	"github.com/arloliu/vtkio/internal/pool"
)

var (
	meshAttributes  = []AttributeKind{AttributeRGB}
	cloudAttributes = []AttributeKind{AttributeRGB, AttributeIntensity, AttributeLabel, AttributeNormals}
)

// WriteMesh writes mesh to dst as POLYDATA with POINTS, VERTICES and
// POLYGONS sections, followed by a COLOR_SCALARS block if the cloud has an
// rgb field.
//
// Polygon vertex indices are written as given; they are not checked against
// the point count.
//
// Nothing is written to dst when an error is returned.
func (w *Writer) WriteMesh(dst io.Writer, mesh *cloud.PolygonMesh) (Stats, error) {
	buf, stats, err := w.encodeMesh(mesh)
	if err != nil {
		return Stats{}, err
	}
	defer pool.PutDocumentBuffer(buf)

	return w.commit(dst, buf, stats)
}

// WriteCloud writes pc to dst as POLYDATA with every point turned into a
// single-vertex cell, followed by the rgb, intensity, label and normal
// attribute blocks the schema provides.
//
// Nothing is written to dst when an error is returned.
func (w *Writer) WriteCloud(dst io.Writer, pc *cloud.PointCloud) (Stats, error) {
	buf, stats, err := w.encodeCloud(pc)
	if err != nil {
		return Stats{}, err
	}
	defer pool.PutDocumentBuffer(buf)

	return w.commit(dst, buf, stats)
}

// encodeMesh renders mesh into a pooled buffer. The caller owns the returned
// buffer and must release it with pool.PutDocumentBuffer.
func (w *Writer) encodeMesh(mesh *cloud.PolygonMesh) (*pool.ByteBuffer, Stats, error) {
	if mesh == nil {
		return nil, Stats{}, fmt.Errorf("%w: mesh", errs.ErrNilInput)
	}

	l, err := w.resolveLayout(&mesh.Cloud, meshAttributes)
	if err != nil {
		return nil, Stats{}, err
	}

	buf := pool.GetDocumentBuffer()
	d := document{buf: buf, precision: w.precision}
	d.writePoints(l)
	d.writeVertices(l.points)
	d.writePolygons(mesh)
	d.writeAttributes(l)

	stats := w.newStats(l, buf)
	stats.Polygons = len(mesh.Polygons)

	w.logger.Debug("rendered vtk mesh",
		zap.Int("points", stats.Points),
		zap.Int("polygons", stats.Polygons),
		zap.Int("size", stats.Size))

	return buf, stats, nil
}

// encodeCloud renders pc into a pooled buffer. The caller owns the returned
// buffer and must release it with pool.PutDocumentBuffer.
func (w *Writer) encodeCloud(pc *cloud.PointCloud) (*pool.ByteBuffer, Stats, error) {
	if pc == nil {
		return nil, Stats{}, fmt.Errorf("%w: point cloud", errs.ErrNilInput)
	}

	l, err := w.resolveLayout(pc, cloudAttributes)
	if err != nil {
		return nil, Stats{}, err
	}

	buf := pool.GetDocumentBuffer()
	d := document{buf: buf, precision: w.precision}
	d.writePoints(l)
	d.writeVertices(l.points)
	d.writeAttributes(l)

	stats := w.newStats(l, buf)

	w.logger.Debug("rendered vtk cloud",
		zap.Int("points", stats.Points),
		zap.Strings("attributes", attributeNames(stats.Attributes)),
		zap.Strings("skipped", stats.Skipped),
		zap.Int("size", stats.Size))

	return buf, stats, nil
}

func (w *Writer) newStats(l *layout, buf *pool.ByteBuffer) Stats {
	return Stats{
		Points:     l.points,
		Attributes: l.attributeKinds(),
		Skipped:    l.skipped,
		Size:       buf.Len(),
		Checksum:   hash.Digest(buf.Bytes()),
	}
}

// compressed returns the bytes to hand to the destination.
func (w *Writer) compressed(buf *pool.ByteBuffer) ([]byte, error) {
	out, err := w.codec.Compress(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("compress document (%s): %w", w.compression, err)
	}

	return out, nil
}

func (w *Writer) commit(dst io.Writer, buf *pool.ByteBuffer, stats Stats) (Stats, error) {
	out, err := w.compressed(buf)
	if err != nil {
		return Stats{}, err
	}

	n, err := dst.Write(out)
	stats.Written = int64(n)
	if err != nil {
		return stats, fmt.Errorf("write document: %w", err)
	}

	return stats, nil
}
