// Package vtk writes point clouds and polygon meshes as legacy VTK ASCII
// POLYDATA documents.
//
// Two entry points share one rendering pipeline:
//
//   - Writer.WriteMesh emits POINTS, VERTICES and POLYGONS, plus a
//     COLOR_SCALARS block when the cloud has an rgb field.
//   - Writer.WriteCloud emits POINTS and VERTICES followed by whichever of the
//     rgb, intensity, label and normal attribute blocks the schema provides,
//     always in that order and under a single POINT_DATA header.
//
// The field layout is resolved once per call, before any text is produced, so
// a schema error (missing x/y/z, incomplete normals, a mismatched attribute
// datatype) never yields partial output. The document is rendered into a
// pooled buffer and handed to the destination only on success; the Save*File
// variants additionally commit through a temporary file and a rename.
//
// A Writer is immutable once created and may be shared between goroutines.
//
//	w, err := vtk.NewWriter(vtk.WithPrecision(7))
//	if err != nil {
//	    return err
//	}
//	stats, err := w.SaveCloudFile("scan.vtk", &pc)
package vtk
