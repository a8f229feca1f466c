package tagvalue

import (
	"fmt"

	"github.com/finlib/fixcore/errs"
)

// RepeatingGroup is a lazily-addressable view over a sequence of entries
// sharing one delimiter tag, found inside a FieldMap's (or an outer
// group's) fields. It never copies the underlying fields: each Entry
// wraps a subslice of the same []Field backing the owning FieldMap.
//
// Grounded on
// original_source/crates/fefix/src/tagvalue/field_access.rs's
// RepeatingGroup trait (len/entry/entries).
type RepeatingGroup struct {
	fields []Field
	bounds [][2]int // [start,end) index ranges into fields, one per entry
}

// newRepeatingGroup locates count entries within fields, each one starting
// at an occurrence of delimiterTag. Since this codec has no field
// dictionary, an entry's tag set is inferred from the first entry itself:
// the first entry runs from its delimiter to the next occurrence of
// delimiterTag (or the end of fields); every following entry runs until
// either delimiterTag recurs or a tag appears that was not part of the
// first entry's inferred tag set, at which point the group has ended.
func newRepeatingGroup(fields []Field, delimiterTag Tag, count int) (*RepeatingGroup, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative group count", errs.ErrInvalid)
	}
	if count == 0 {
		return &RepeatingGroup{}, nil
	}

	bounds := make([][2]int, 0, count)
	var entryTagSet map[Tag]bool

	i := 0
	for e := 0; e < count; e++ {
		if i >= len(fields) || fields[i].Tag != delimiterTag {
			return nil, fmt.Errorf("%w: expected delimiter tag %d for entry %d", errs.ErrGroupDelimiterMismatch, delimiterTag, e)
		}
		start := i
		i++

		if e == 0 {
			entryTagSet = map[Tag]bool{delimiterTag: true}
			for i < len(fields) && fields[i].Tag != delimiterTag {
				entryTagSet[fields[i].Tag] = true
				i++
			}
		} else {
			for i < len(fields) && fields[i].Tag != delimiterTag && entryTagSet[fields[i].Tag] {
				i++
			}
		}

		bounds = append(bounds, [2]int{start, i})
	}

	return &RepeatingGroup{fields: fields, bounds: bounds}, nil
}

// Len returns the number of entries in the group.
func (g *RepeatingGroup) Len() int {
	return len(g.bounds)
}

// Entry returns the i-th entry. It panics if i is out of range, matching
// the source's Entry(i) contract: callers iterate within Len() or use
// Iter, not speculative indices.
func (g *RepeatingGroup) Entry(i int) Entry {
	b := g.bounds[i]
	return Entry{fields: g.fields[b[0]:b[1]]}
}

// Iter returns a fused, double-ended, exact-size iterator over the
// group's entries, mirroring the source's Entries iterator (next/
// next_back/size_hint/ExactSizeIterator) without the stray debug-print
// statements the source carried.
func (g *RepeatingGroup) Iter() *GroupIter {
	return &GroupIter{group: g, lo: 0, hi: g.Len()}
}

// Entry is one repeating-group entry: a FieldMap-shaped view over the
// fields between its delimiter and the next entry's delimiter (or the
// group's end).
type Entry struct {
	fields []Field
}

// Fields returns the entry's fields in wire order.
func (e Entry) Fields() []Field {
	return e.fields
}

// Raw implements FieldAccessor, returning the first occurrence of tag's
// raw value within this entry.
func (e Entry) Raw(tag Tag) ([]byte, bool) {
	for _, f := range e.fields {
		if f.Tag == tag {
			return f.Value, true
		}
	}

	return nil, false
}

// GroupIter walks a RepeatingGroup's entries from both ends. Once lo
// reaches hi the iterator is exhausted and stays exhausted (fused): Next
// and NextBack both keep returning ok=false.
type GroupIter struct {
	group  *RepeatingGroup
	lo, hi int
}

// Next returns the next entry from the front, or ok=false if exhausted.
func (it *GroupIter) Next() (Entry, bool) {
	if it.lo >= it.hi {
		return Entry{}, false
	}
	e := it.group.Entry(it.lo)
	it.lo++

	return e, true
}

// NextBack returns the next entry from the back, or ok=false if exhausted.
func (it *GroupIter) NextBack() (Entry, bool) {
	if it.lo >= it.hi {
		return Entry{}, false
	}
	it.hi--

	return it.group.Entry(it.hi), true
}

// Len returns the number of entries not yet consumed from either end.
func (it *GroupIter) Len() int {
	return it.hi - it.lo
}

// All returns a range-over-func iterator over the remaining entries, for
// callers that prefer Go 1.23+ for-range iteration over manual Next calls.
func (it *GroupIter) All() func(yield func(Entry) bool) {
	return func(yield func(Entry) bool) {
		for {
			e, ok := it.Next()
			if !ok {
				return
			}
			if !yield(e) {
				return
			}
		}
	}
}
