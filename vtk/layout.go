package vtk

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/arloliu/vtkio/cloud"
	"github.com/arloliu/vtkio/errs"
	"github.com/arloliu/vtkio/format"
)

var (
	geometryFields = [3]string{cloud.FieldX, cloud.FieldY, cloud.FieldZ}
	normalFields   = [3]string{cloud.FieldNormalX, cloud.FieldNormalY, cloud.FieldNormalZ}
)

// attributeBlock is a resolved POINT_DATA block.
type attributeBlock struct {
	kind   AttributeKind
	fields []cloud.PointField
}

// layout is the resolved projection of a point schema onto the document.
type layout struct {
	ex      *cloud.Extractor
	points  int
	xyz     [3]cloud.PointField // in declaration order
	blocks  []attributeBlock
	skipped []string
}

// resolveLayout derives the stride of pc and resolves its geometry and the
// requested attribute kinds. Nothing is decoded here; every error the write
// can produce is raised before the first byte of output.
func (w *Writer) resolveLayout(pc *cloud.PointCloud, kinds []AttributeKind) (*layout, error) {
	ex, err := cloud.NewExtractor(pc)
	if err != nil {
		return nil, err
	}

	ix := cloud.NewFieldIndex(pc.Fields)
	l := &layout{ex: ex, points: pc.NumPoints()}

	xyz, err := w.resolveTriplet(pc.Fields, ex, geometryFields, errs.ErrMissingGeometry)
	if err != nil {
		return nil, err
	}
	l.xyz = xyz

	for _, kind := range kinds {
		if err := w.resolveAttribute(l, pc, ix, kind); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// resolveTriplet scans fields in declaration order and collects the first
// three float32 fields named in names. Values are later written in the order
// collected, so a cloud declaring z, y, x yields "z y x" lines. Fields with a
// matching name but another datatype are passed over.
func (w *Writer) resolveTriplet(fields []cloud.PointField, ex *cloud.Extractor, names [3]string, missing error) ([3]cloud.PointField, error) {
	var out [3]cloud.PointField
	n := 0
	for _, f := range fields {
		if n == len(out) {
			break
		}
		if f.DataType != format.TypeFloat32 || !slices.Contains(names[:], f.Name) {
			continue
		}
		if err := w.checkField(ex, f); err != nil {
			return out, err
		}
		out[n] = f
		n++
	}

	if n < len(out) {
		return out, fmt.Errorf("%w: found %d float32 fields among %s, %s, %s, want 3",
			missing, n, names[0], names[1], names[2])
	}

	return out, nil
}

func (w *Writer) resolveAttribute(l *layout, pc *cloud.PointCloud, ix cloud.FieldIndex, kind AttributeKind) error {
	var name string
	var want format.DataType

	switch kind {
	case AttributeRGB:
		name, want = cloud.FieldRGB, format.TypeFloat32
	case AttributeIntensity:
		name, want = cloud.FieldIntensity, format.TypeFloat32
	case AttributeLabel:
		name, want = cloud.FieldLabel, format.TypeUint32
	case AttributeNormals:
		// normal_x alone gates the block; the rest must then be complete.
		if !ix.Has(cloud.FieldNormalX) {
			return nil
		}
		normals, err := w.resolveTriplet(pc.Fields, l.ex, normalFields, errs.ErrMissingNormal)
		if err != nil {
			return err
		}
		l.blocks = append(l.blocks, attributeBlock{kind: kind, fields: normals[:]})

		return nil
	default:
		return fmt.Errorf("unknown attribute kind %d", kind)
	}

	f, ok := ix.Lookup(name)
	if !ok {
		return nil
	}

	if f.DataType != want {
		if w.strict {
			return fmt.Errorf("%w: field %q is %s, want %s", errs.ErrFieldTypeMismatch, name, f.DataType, want)
		}
		w.logger.Warn("skipping attribute with unexpected datatype",
			zap.String("field", name),
			zap.Stringer("datatype", f.DataType),
			zap.Stringer("want", want))
		l.skipped = append(l.skipped, name)

		return nil
	}

	if err := w.checkField(l.ex, f); err != nil {
		return err
	}
	l.blocks = append(l.blocks, attributeBlock{kind: kind, fields: []cloud.PointField{f}})

	return nil
}

func (w *Writer) checkField(ex *cloud.Extractor, f cloud.PointField) error {
	if err := ex.CheckBounds(f); err != nil {
		return err
	}
	if f.Elements() > 1 {
		w.logger.Debug("multi-valued field, only the first element is written",
			zap.String("field", f.Name),
			zap.Uint32("count", f.Count))
	}

	return nil
}

func (l *layout) attributeKinds() []AttributeKind {
	if len(l.blocks) == 0 {
		return nil
	}

	kinds := make([]AttributeKind, len(l.blocks))
	for i, b := range l.blocks {
		kinds[i] = b.kind
	}

	return kinds
}
