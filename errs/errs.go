// Package errs defines the sentinel errors returned by vtkio.
//
// Call sites wrap these values with context using fmt.Errorf("%w: ...") so
// callers can match them with errors.Is.
package errs

import "errors"

// Input errors.
var (
	// ErrNilInput is returned when a nil cloud or mesh is passed to a writer.
	ErrNilInput = errors.New("nil input")
	// ErrEmptyInput is returned when the point buffer holds no data or the
	// cloud declares zero points.
	ErrEmptyInput = errors.New("input point cloud has no data")
	// ErrInvalidPointStride is returned when the buffer length is not a
	// multiple of the point count.
	ErrInvalidPointStride = errors.New("point buffer length is not a multiple of the point count")
	// ErrFieldOutOfRange is returned when a field descriptor addresses bytes
	// beyond the derived point stride.
	ErrFieldOutOfRange = errors.New("field exceeds point stride")
)

// Schema errors.
var (
	// ErrMissingGeometry is returned when x, y and z cannot all be resolved
	// as float32 fields.
	ErrMissingGeometry = errors.New("input point cloud has no XYZ data")
	// ErrMissingNormal is returned when normal_x is present but normal_x,
	// normal_y and normal_z cannot all be resolved as float32 fields.
	ErrMissingNormal = errors.New("input point cloud has no NORMAL_XYZ data")
	// ErrFieldTypeMismatch is returned in strict mode when an attribute field
	// is present with a datatype the writer cannot emit.
	ErrFieldTypeMismatch = errors.New("field datatype mismatch")
)

// Configuration errors.
var (
	ErrInvalidPrecision   = errors.New("invalid precision")
	ErrInvalidCompression = errors.New("invalid compression")
	// ErrInvalidConfig is returned by the converter when a manifest cannot
	// describe a valid cloud.
	ErrInvalidConfig = errors.New("invalid configuration")
)
