package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/arloliu/vtkio/cloud"
	"github.com/arloliu/vtkio/errs"
	"github.com/arloliu/vtkio/format"
	"github.com/arloliu/vtkio/vtk"
)

// PointFields resolves the field list into descriptors. Fields without an
// explicit offset are packed after the previous field.
func (c *Config) PointFields() ([]cloud.PointField, error) {
	if len(c.Fields) == 0 {
		return nil, fmt.Errorf("%w: no fields", errs.ErrInvalidConfig)
	}

	fields := make([]cloud.PointField, 0, len(c.Fields))
	var next uint32
	for i, fc := range c.Fields {
		if fc.Name == "" {
			return nil, fmt.Errorf("%w: field %d has no name", errs.ErrInvalidConfig, i)
		}

		dt, err := format.ParseDataType(fc.Type)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: %w", errs.ErrInvalidConfig, fc.Name, err)
		}

		offset := next
		if fc.Offset != nil {
			offset = *fc.Offset
		}

		f := cloud.PointField{Name: fc.Name, Offset: offset, DataType: dt, Count: fc.Count}
		fields = append(fields, f)
		next = offset + uint32(f.Size())
	}

	return fields, nil
}

// rowSize returns the configured stride, or the end of the furthest field.
func rowSize(stride int, fields []cloud.PointField) int {
	if stride > 0 {
		return stride
	}

	var end int
	for _, f := range fields {
		end = max(end, int(f.Offset)+f.Size())
	}

	return end
}

// LoadCloud reads the data file and assembles the point cloud it describes.
//
// A zero width is derived from the buffer length, the row size and the
// height.
func (c *Config) LoadCloud() (cloud.PointCloud, error) {
	fields, err := c.PointFields()
	if err != nil {
		return cloud.PointCloud{}, err
	}

	data, err := os.ReadFile(c.DataPath())
	if err != nil {
		return cloud.PointCloud{}, fmt.Errorf("read point data: %w", err)
	}

	width := c.Width
	if width == 0 {
		row := rowSize(c.Stride, fields) * int(c.Height)
		if row == 0 || len(data)%row != 0 {
			return cloud.PointCloud{}, fmt.Errorf("%w: %d bytes is not a whole number of %d-byte rows",
				errs.ErrInvalidConfig, len(data), row)
		}
		width = uint32(len(data) / row)
	}

	return cloud.PointCloud{
		Width:       width,
		Height:      c.Height,
		Fields:      fields,
		Data:        data,
		IsBigEndian: c.BigEndian,
	}, nil
}

// LoadMesh reads the data file and pairs the cloud with the configured
// polygons.
func (c *Config) LoadMesh() (cloud.PolygonMesh, error) {
	pc, err := c.LoadCloud()
	if err != nil {
		return cloud.PolygonMesh{}, err
	}

	polygons := make([]cloud.Polygon, len(c.Polygons))
	for i, p := range c.Polygons {
		polygons[i] = cloud.Polygon{Vertices: p}
	}

	return cloud.PolygonMesh{Cloud: pc, Polygons: polygons}, nil
}

// CompressionType returns the parsed output compression.
func (c *Config) CompressionType() (format.CompressionType, error) {
	ct, err := format.ParseCompressionType(c.Compression)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errs.ErrInvalidConfig, err)
	}

	return ct, nil
}

// OutputPath returns the output path with the compression suffix appended
// when it is missing.
func (c *Config) OutputPath() string {
	ct, err := c.CompressionType()
	if err != nil {
		return c.Output
	}

	ext := ct.Extension()
	if ext == "" || strings.HasSuffix(c.Output, ext) {
		return c.Output
	}

	return c.Output + ext
}

// WriterOptions translates the output settings into vtk writer options.
func (c *Config) WriterOptions() ([]vtk.WriterOption, error) {
	ct, err := c.CompressionType()
	if err != nil {
		return nil, err
	}

	opts := []vtk.WriterOption{
		vtk.WithPrecision(c.Precision),
		vtk.WithStrictFieldTypes(c.StrictFieldTypes),
		vtk.WithCompression(ct),
	}
	if c.FileMode != 0 {
		opts = append(opts, vtk.WithFileMode(os.FileMode(c.FileMode)))
	}

	return opts, nil
}
