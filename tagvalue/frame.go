package tagvalue

// Frame is a validated view over one complete FIX message: a BeginString
// field, a body of fields bounded by the declared BodyLength, and a
// trailing CheckSum field. Frame never copies data; every accessor returns
// a slice aliasing the byte slice the Frame was built from, so the Frame
// (and anything derived from it, such as a FieldMap) must not outlive that
// buffer.
type Frame struct {
	data       []byte
	beginRange [2]int
	bodyRange  [2]int
}

// Bytes returns the Frame's entire backing slice, from the start of
// BeginString's tag through the trailing separator of CheckSum.
func (f Frame) Bytes() []byte {
	return f.data
}

// BeginString returns the value of the BeginString field (e.g. "FIX.4.2").
func (f Frame) BeginString() []byte {
	return f.data[f.beginRange[0]:f.beginRange[1]]
}

// Payload returns the message body: every field after BodyLength up to,
// but not including, the CheckSum field.
func (f Frame) Payload() []byte {
	return f.data[f.bodyRange[0]:f.bodyRange[1]]
}
