package vtk

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/arloliu/vtkio/compress"
	"github.com/arloliu/vtkio/errs"
	"github.com/arloliu/vtkio/format"
	"github.com/arloliu/vtkio/internal/options"
)

const (
	// DefaultPrecision is the number of significant digits used for floats,
	// matching the PCL default.
	DefaultPrecision = 5
	// MaxPrecision is the largest precision accepted by WithPrecision.
	MaxPrecision = 17

	defaultFileMode os.FileMode = 0o644
)

// Writer renders VTK documents. Create it with NewWriter.
type Writer struct {
	precision   int
	strict      bool
	compression format.CompressionType
	codec       compress.Codec
	fileMode    os.FileMode
	logger      *zap.Logger
}

// WriterOption configures a Writer.
type WriterOption = options.Option[*Writer]

// NewWriter creates a Writer with the given options applied over the
// defaults: precision 5, strict field types, no compression, mode 0644 and
// no logging.
func NewWriter(opts ...WriterOption) (*Writer, error) {
	w := &Writer{
		precision:   DefaultPrecision,
		strict:      true,
		compression: format.CompressionNone,
		codec:       compress.NewNoOpCompressor(),
		fileMode:    defaultFileMode,
		logger:      zap.NewNop(),
	}

	if err := options.Apply(w, opts...); err != nil {
		return nil, err
	}

	return w, nil
}

// Precision returns the configured number of significant digits.
func (w *Writer) Precision() int {
	return w.precision
}

// Compression returns the configured output compression.
func (w *Writer) Compression() format.CompressionType {
	return w.compression
}

// WithPrecision sets the number of significant digits of every float in the
// document. Precision 0 behaves like 1.
func WithPrecision(precision int) WriterOption {
	return options.New(func(w *Writer) error {
		if precision < 0 || precision > MaxPrecision {
			return fmt.Errorf("%w: %d not in [0, %d]", errs.ErrInvalidPrecision, precision, MaxPrecision)
		}
		w.precision = precision

		return nil
	})
}

// WithStrictFieldTypes controls how an attribute field with an unexpected
// datatype is handled. When strict (the default) the write fails with
// errs.ErrFieldTypeMismatch; otherwise the attribute block is left out, a
// warning is logged and the field is listed in Stats.Skipped.
//
// Geometry and normals are not affected: they always fail with
// errs.ErrMissingGeometry and errs.ErrMissingNormal.
func WithStrictFieldTypes(strict bool) WriterOption {
	return options.NoError(func(w *Writer) {
		w.strict = strict
	})
}

// WithCompression compresses the rendered document before it reaches the
// destination.
func WithCompression(compression format.CompressionType) WriterOption {
	return options.New(func(w *Writer) error {
		codec, err := compress.GetCodec(compression)
		if err != nil {
			return err
		}
		w.compression = compression
		w.codec = codec

		return nil
	})
}

// WithLogger sets the logger used for debug traces and skipped-field
// warnings. A nil logger disables logging.
func WithLogger(logger *zap.Logger) WriterOption {
	return options.NoError(func(w *Writer) {
		if logger == nil {
			logger = zap.NewNop()
		}
		w.logger = logger
	})
}

// WithFileMode sets the permission bits of files created by the Save*File
// methods.
func WithFileMode(mode os.FileMode) WriterOption {
	return options.NoError(func(w *Writer) {
		w.fileMode = mode.Perm()
	})
}
