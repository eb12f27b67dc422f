// Package vtkio converts PCL-style point clouds and polygon meshes into legacy
// VTK ASCII POLYDATA files.
//
// A point cloud is a flat byte buffer of Width*Height equally sized rows plus
// a list of named fields describing where each value lives in a row. The
// writers look up the fields they understand by name:
//
//   - x, y, z (float32, required): the POINTS section
//   - rgb (float32 holding packed 0xAARRGGBB): COLOR_SCALARS
//   - intensity (float32): SCALARS intensity_scalars
//   - label (uint32): SCALARS labels
//   - normal_x, normal_y, normal_z (float32): NORMALS
//
// Meshes only carry the rgb attribute; clouds carry all of them.
//
// # Basic Usage
//
// Building a cloud and saving it:
//
//	import (
//	    "github.com/arloliu/vtkio"
//	    "github.com/arloliu/vtkio/cloud"
//	    "github.com/arloliu/vtkio/format"
//	    "github.com/arloliu/vtkio/vtk"
//	)
//
//	b := cloud.NewBuilder(false).
//	    AddField(cloud.FieldX, format.TypeFloat32).
//	    AddField(cloud.FieldY, format.TypeFloat32).
//	    AddField(cloud.FieldZ, format.TypeFloat32)
//	b.AddPoint().SetFloat32(cloud.FieldX, 1).SetFloat32(cloud.FieldY, 2).SetFloat32(cloud.FieldZ, 3)
//	pc := b.Cloud()
//
//	stats, err := vtkio.SaveCloudFile("cloud.vtk", &pc)
//
// Writing to any io.Writer with a custom precision:
//
//	stats, err := vtkio.WriteCloud(os.Stdout, &pc, vtk.WithPrecision(8))
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the vtk package.
// Create a vtk.Writer directly to reuse one configuration across many writes.
package vtkio

import (
	"io"

	"github.com/arloliu/vtkio/cloud"
	"github.com/arloliu/vtkio/vtk"
)

// WriteMesh writes mesh to dst using a writer configured with opts.
//
// See vtk.Writer.WriteMesh for the document layout and errors.
func WriteMesh(dst io.Writer, mesh *cloud.PolygonMesh, opts ...vtk.WriterOption) (vtk.Stats, error) {
	w, err := vtk.NewWriter(opts...)
	if err != nil {
		return vtk.Stats{}, err
	}

	return w.WriteMesh(dst, mesh)
}

// WriteCloud writes pc to dst using a writer configured with opts.
//
// See vtk.Writer.WriteCloud for the document layout and errors.
func WriteCloud(dst io.Writer, pc *cloud.PointCloud, opts ...vtk.WriterOption) (vtk.Stats, error) {
	w, err := vtk.NewWriter(opts...)
	if err != nil {
		return vtk.Stats{}, err
	}

	return w.WriteCloud(dst, pc)
}

// SaveMeshFile writes mesh to the file at path, replacing it atomically.
func SaveMeshFile(path string, mesh *cloud.PolygonMesh, opts ...vtk.WriterOption) (vtk.Stats, error) {
	w, err := vtk.NewWriter(opts...)
	if err != nil {
		return vtk.Stats{}, err
	}

	return w.SaveMeshFile(path, mesh)
}

// SaveCloudFile writes pc to the file at path, replacing it atomically.
func SaveCloudFile(path string, pc *cloud.PointCloud, opts ...vtk.WriterOption) (vtk.Stats, error) {
	w, err := vtk.NewWriter(opts...)
	if err != nil {
		return vtk.Stats{}, err
	}

	return w.SaveCloudFile(path, pc)
}
