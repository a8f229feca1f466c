// Package errs collects the sentinel errors returned across the module.
// Callers should compare against these with errors.Is; call sites wrap them
// with fmt.Errorf("%w: ...") to attach positional or value detail.
package errs

import "errors"

// Framing errors, returned by RawDecoder and BufferedDecoder.
var (
	// ErrLength indicates the supplied bytes are too short to contain a
	// complete frame, or a field's declared/observed length disagrees.
	ErrLength = errors.New("fixcore: length error")
	// ErrInvalid indicates the header fields (BeginString, BodyLength) could
	// not be located or parsed from the input.
	ErrInvalid = errors.New("fixcore: invalid frame")
	// ErrCheckSum indicates the trailing CheckSum field does not match the
	// computed checksum of the preceding bytes.
	ErrCheckSum = errors.New("fixcore: checksum mismatch")
	// ErrDecoderPoisoned indicates more bytes were supplied to a
	// BufferedDecoder whose previous parse failed; it must be Clear'd
	// before reuse.
	ErrDecoderPoisoned = errors.New("fixcore: decoder poisoned by previous error")
)

// Field-value errors, returned by the datatype codecs and FieldAccess.
var (
	// ErrFieldMissing indicates a tag has no entry in the field map or
	// group entry being queried.
	ErrFieldMissing = errors.New("fixcore: field missing")
	// ErrWrongLength indicates a fixed-width type (e.g. bool, a char) was
	// given a byte span of the wrong length.
	ErrWrongLength = errors.New("fixcore: wrong length")
	// ErrInvalidCharacter indicates a byte outside the type's accepted
	// alphabet (e.g. neither 'Y' nor 'N' for bool).
	ErrInvalidCharacter = errors.New("fixcore: invalid character")
	// ErrInvalidUTF8 indicates a String field is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("fixcore: invalid utf-8")
	// ErrOutOfRange indicates a numeric value lies outside the range its
	// type allows (e.g. a month of 13, or a CheckSum above 255).
	ErrOutOfRange = errors.New("fixcore: value out of range")
	// ErrEmpty indicates a value that must be non-empty was empty.
	ErrEmpty = errors.New("fixcore: empty value")
)

// Group and encoding errors.
var (
	// ErrGroupCountMismatch indicates a repeating group's declared count
	// does not match the number of delimiter occurrences actually found.
	ErrGroupCountMismatch = errors.New("fixcore: group count mismatch")
	// ErrGroupDelimiterMismatch indicates the field at a group entry's
	// expected start is not the group's delimiter tag.
	ErrGroupDelimiterMismatch = errors.New("fixcore: group delimiter mismatch")
	// ErrNoActiveMessage indicates an EncoderHandle operation was attempted
	// without a message started via Encoder.StartMessage.
	ErrNoActiveMessage = errors.New("fixcore: no active message")
	// ErrBodyTooLarge indicates an encoded body length exceeds the 6 ASCII
	// digits reserved for the BodyLength field.
	ErrBodyTooLarge = errors.New("fixcore: body length exceeds 6 digits")
)
