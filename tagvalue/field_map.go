package tagvalue

import (
	"github.com/finlib/fixcore/datatype"
	"github.com/finlib/fixcore/errs"
)

// FieldMap is a random-access, order-preserving index over a Frame's (or a
// repeating group entry's) fields. It never copies field values: both the
// ordered Fields slice and every Raw lookup alias the Frame's backing
// buffer.
//
// Per spec Open Question 1, a tag repeated in the same flat scope is
// resolved first-occurrence-wins: later duplicates remain visible via
// Fields (iteration order is preserved exactly as scanned) but are not
// reachable through Raw or the typed FV/FVL helpers.
type FieldMap struct {
	fields []Field
	index  map[Tag]int
}

// NewFieldMap scans payload into a FieldMap using sep as the field
// separator.
func NewFieldMap(payload []byte, sep byte) (*FieldMap, error) {
	fields, err := scanFields(payload, sep)
	if err != nil {
		return nil, err
	}

	return newFieldMapFromFields(fields), nil
}

func newFieldMapFromFields(fields []Field) *FieldMap {
	index := make(map[Tag]int, len(fields))
	for i, f := range fields {
		if _, exists := index[f.Tag]; !exists {
			index[f.Tag] = i
		}
	}

	return &FieldMap{fields: fields, index: index}
}

// Fields returns every field in wire order, including later duplicates of
// a tag already seen.
func (m *FieldMap) Fields() []Field {
	return m.fields
}

// Raw returns the first occurrence of tag's raw value and true, or
// (nil, false) if tag is absent.
func (m *FieldMap) Raw(tag Tag) ([]byte, bool) {
	i, ok := m.index[tag]
	if !ok {
		return nil, false
	}

	return m.fields[i].Value, true
}

// Group builds a RepeatingGroup view over the entries following the field
// named by countTag, whose value gives the number of entries, each one
// starting with delimiterTag.
func (m *FieldMap) Group(countTag, delimiterTag Tag) (*RepeatingGroup, error) {
	countIdx, ok := m.index[countTag]
	if !ok {
		return nil, errs.ErrFieldMissing
	}

	count, err := datatype.UInt.Deserialize(m.fields[countIdx].Value)
	if err != nil {
		return nil, err
	}

	return newRepeatingGroup(m.fields[countIdx+1:], delimiterTag, int(count))
}
