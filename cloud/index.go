package cloud

// FieldIndex maps field names to descriptors.
//
// It is built once per write so attribute lookups do not rescan the field
// list. When a name is declared more than once the first declaration wins,
// whatever its datatype.
type FieldIndex struct {
	byName map[string]PointField
}

// NewFieldIndex indexes fields by name.
func NewFieldIndex(fields []PointField) FieldIndex {
	byName := make(map[string]PointField, len(fields))
	for _, f := range fields {
		if _, ok := byName[f.Name]; ok {
			continue
		}
		byName[f.Name] = f
	}

	return FieldIndex{byName: byName}
}

// Lookup returns the descriptor for name.
func (ix FieldIndex) Lookup(name string) (PointField, bool) {
	f, ok := ix.byName[name]
	return f, ok
}

// Has reports whether a field called name exists.
func (ix FieldIndex) Has(name string) bool {
	_, ok := ix.byName[name]
	return ok
}
