// Package datatype implements the serialize/deserialize contract for every
// FIX tag-value data type this module supports: integers, decimals,
// booleans, strings, raw data, single and multiple characters, country/
// currency/exchange codes, calendar and timestamp types, and the CheckSum
// field itself.
//
// Each type is represented not as a Go type implementing a shared
// interface (Go has no trait dispatch keyed on a function's return type,
// unlike the Rust FixFieldValue trait this package is modeled on) but as a
// Codec[T] value: a small struct of functions bundling a type's wire
// encoding and both its strict and lossy decoding rules. Callers needing
// a typed field lookup pass the matching Codec to the generic helpers in
// the tagvalue package (tagvalue.FV, tagvalue.FVL).
package datatype

import "github.com/finlib/fixcore/buffer"

// Codec bundles the serialize/deserialize/deserialize-lossy behavior for
// one FIX data type represented by the Go type T.
//
// Serialize must append the wire representation of v to buf and never
// fail: every value of T that this package hands out is representable on
// the wire by construction.
//
// Deserialize performs the strict parse: it validates length, character
// set, and numeric range, returning a typed error (see the errs package)
// on any violation.
//
// DeserializeLossy performs the best-effort parse used on a hot decode
// path that has already trusted the producer: it skips redundant
// validation a strict parse would perform, but must never panic and must
// agree with Deserialize on every input Deserialize accepts.
type Codec[T any] struct {
	Serialize        func(buf *buffer.Buffer, v T)
	Deserialize      func(data []byte) (T, error)
	DeserializeLossy func(data []byte) T
}
