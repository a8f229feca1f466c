package datatype

import "github.com/finlib/fixcore/buffer"

// Padding describes how to left-pad a serialized numeric field out to a
// fixed total width, as FIX's BodyLength and CheckSum fields require
// (always 6 and 3 digits respectively, zero-padded).
type Padding struct {
	// Len is the total width, in bytes, the padded value must occupy.
	Len int
	// Byte is the pad byte written to fill any width the value itself
	// does not occupy, typically '0'.
	Byte byte
}

// Zeros returns a Padding that left-pads with '0' to len bytes.
func Zeros(len int) Padding {
	return Padding{Len: len, Byte: '0'}
}

// SerializeUintPadded writes v left-padded with p to a total width of
// p.Len. If v's decimal representation is already p.Len bytes or longer,
// it is written verbatim with no padding and no truncation: padding only
// ever adds bytes, it never drops digits a correct encoder must preserve.
//
// An earlier revision of this routine wrote p.Len copies of a single,
// incorrectly-derived digit before the value itself, producing output
// such as "444444004" instead of "000004" for a 6-wide encoding of 4: the
// padding computation reused a throwaway expression instead of the pad
// byte, and was never actually skipped even when no padding was needed.
// This version computes the value's width up front and only ever emits
// real pad bytes followed by the value's own digits, exactly once.
func SerializeUintPadded(buf *buffer.Buffer, v uint64, p Padding) {
	digits := decimalDigitCount(v)
	if digits < p.Len {
		for i := 0; i < p.Len-digits; i++ {
			buf.AppendByte(p.Byte)
		}
	}
	serializeUint64(buf, v)
}

func decimalDigitCount(v uint64) int {
	n := 1
	for v >= 10 {
		v /= 10
		n++
	}

	return n
}
