// Package tagvalue implements the core of FIX's tag-value wire format: a
// message is a sequence of "tag=value" fields separated by a single byte
// (ASCII SOH, 0x01, by default), opening with BeginString and BodyLength
// and closing with CheckSum.
//
// # Decoding
//
// RawDecoder validates an already-complete, in-memory byte slice and
// returns a Frame. BufferedDecoder does the same incrementally, for bytes
// arriving off a stream in arbitrary-sized chunks:
//
//	dec := tagvalue.NewBufferedDecoder(cfg)
//	for {
//		tail, _ := dec.SupplyBuffer(dec.NeededLength())
//		if _, err := io.ReadFull(conn, tail); err != nil { // tail must be filled completely
//			break
//		}
//		if frame, err := dec.Parse(); frame != nil || err != nil {
//			break
//		}
//	}
//
// # Field access
//
// A Frame's Payload is turned into a FieldMap for random-access lookup by
// tag, or walked field-by-field in wire order via Fields. Typed lookups go
// through the generic FV (strict) and FVL (lossy) functions together with
// a datatype.Codec value for the field's FIX data type. A tag absent from
// the message is reported via errs.ErrFieldMissing, distinguishable from a
// present-but-malformed value's own error by errors.Is.
//
// # Repeating groups
//
// FieldMap.Group locates a NumInGroup-counted run of entries sharing one
// delimiter tag and returns a RepeatingGroup, whose Iter supports forward,
// backward, and exact-size iteration without allocating a slice of
// entries up front.
//
// # Encoding
//
// Encoder.StartMessage begins a message and returns an EncoderHandle; the
// handle's SetRaw/Set/SetPadded/Raw methods (and the package-level Set/
// SetPadded functions) add fields, and Wrap finalizes the message,
// patching in BodyLength and appending CheckSum.
package tagvalue
