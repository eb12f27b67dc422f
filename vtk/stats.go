package vtk

// AttributeKind identifies a POINT_DATA block.
type AttributeKind uint8

// Attribute blocks in emission order.
const (
	AttributeRGB AttributeKind = iota + 1
	AttributeIntensity
	AttributeLabel
	AttributeNormals
)

func (k AttributeKind) String() string {
	switch k {
	case AttributeRGB:
		return "rgb"
	case AttributeIntensity:
		return "intensity"
	case AttributeLabel:
		return "label"
	case AttributeNormals:
		return "normals"
	default:
		return "unknown"
	}
}

func attributeNames(kinds []AttributeKind) []string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}

	return names
}

// Stats describes a successfully written document.
type Stats struct {
	// Points is the number of points written.
	Points int
	// Polygons is the number of polygons written (mesh variant only).
	Polygons int
	// Attributes lists the POINT_DATA blocks in the order they were written.
	Attributes []AttributeKind
	// Skipped lists attribute fields left out because of their datatype.
	Skipped []string
	// Size is the length of the plain text document in bytes.
	Size int
	// Written is the number of bytes handed to the destination, which
	// differs from Size when compression is enabled.
	Written int64
	// Checksum is the xxHash64 of the plain text document.
	Checksum uint64
}
