package domain

// RawRecord is an immutable snapshot of a store record: loosely typed
// field data keyed by remote field names (including "table::field"
// qualified names for joined data) plus the store's record identifier.
type RawRecord struct {
	ID     string
	Fields map[string]string
}

// Field returns the named field value, or the empty string when absent.
func (r RawRecord) Field(name string) string {
	return r.Fields[name]
}

// FieldMetadata describes one field of a layout.
type FieldMetadata struct {
	Name   string
	Type   string
	Result string
	Global bool
}

// LayoutMetadata describes a queryable layout.
type LayoutMetadata struct {
	Fields []FieldMetadata
}
