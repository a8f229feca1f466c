package tagvalue

import (
	"github.com/finlib/fixcore/datatype"
	"github.com/finlib/fixcore/errs"
)

// FieldAccessor is the minimal contract FieldMap and a repeating group's
// Entry both satisfy: random-access lookup of a field's raw, still-encoded
// value by tag. It is grounded on
// original_source/crates/fefix/src/tagvalue/field_access.rs's FieldAccess
// trait, redesigned around Go's single-error-return idiom: a trait method
// returning Result<Option<Result<T, E>>, ...> becomes a single error the
// caller distinguishes with errors.Is(err, errs.ErrFieldMissing).
type FieldAccessor interface {
	Raw(tag Tag) ([]byte, bool)
}

// FV performs a strict typed field lookup: it returns errs.ErrFieldMissing
// if tag is absent, a type-specific error (wrapping one of the sentinels
// in errs) if present but malformed, and the decoded value otherwise.
//
// This is a free generic function rather than a method on FieldAccessor
// because Go methods cannot themselves be generic; it plays the role of
// the source's FieldAccess::fv<V>.
func FV[T any](fa FieldAccessor, tag Tag, codec datatype.Codec[T]) (T, error) {
	var zero T

	raw, ok := fa.Raw(tag)
	if !ok {
		return zero, errs.ErrFieldMissing
	}

	v, err := codec.Deserialize(raw)
	if err != nil {
		return zero, err
	}

	return v, nil
}

// FVL performs a lossy typed field lookup: absence is still reported via
// errs.ErrFieldMissing, but a present value is always accepted via
// codec.DeserializeLossy, which never itself returns an error.
func FVL[T any](fa FieldAccessor, tag Tag, codec datatype.Codec[T]) (T, error) {
	var zero T

	raw, ok := fa.Raw(tag)
	if !ok {
		return zero, errs.ErrFieldMissing
	}

	return codec.DeserializeLossy(raw), nil
}
