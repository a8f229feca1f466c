package tagvalue

import (
	"strconv"

	"github.com/finlib/fixcore/buffer"
	"github.com/finlib/fixcore/datatype"
	"github.com/finlib/fixcore/errs"
)

// Encoder builds one FIX message at a time into its own reusable buffer, grounded
// on original_source/fefix/src/tagvalue/encoder.rs's Encoder/EncoderHandle
// and on blob/numeric_encoder.go's reserve-a-placeholder-then-patch-it
// lifecycle (there used for an offset-index entry, here for the
// BodyLength field).
type Encoder struct {
	config            Config
	buf               *buffer.Buffer
	bodyLenValueStart int
	bodyStart         int
	active            bool
}

// NewEncoder creates an Encoder with the given configuration.
func NewEncoder(cfg Config) *Encoder {
	return &Encoder{config: cfg, buf: buffer.New(buffer.DefaultSize)}
}

// StartMessage clears the encoder's buffer and begins a new message: it
// writes BeginString, reserves a 6-digit zero-padded placeholder for
// BodyLength (patched by Wrap once the body's length is known, avoiding a
// two-pass encode), and writes MsgType as the body's first field. The
// returned EncoderHandle is used to add the remaining fields and finish
// the message.
func (e *Encoder) StartMessage(beginString, msgType []byte) *EncoderHandle {
	e.buf.Reset()
	e.active = true

	e.writeField(TagBeginString, beginString)

	e.buf.Append([]byte("9="))
	e.bodyLenValueStart = e.buf.Len()
	for i := 0; i < BodyLengthFieldWidth; i++ {
		e.buf.AppendByte('0')
	}
	e.buf.AppendByte(e.config.separator)
	e.bodyStart = e.buf.Len()

	h := &EncoderHandle{enc: e}
	h.SetRaw(TagMsgType, msgType)

	return h
}

func (e *Encoder) writeField(tag Tag, value []byte) {
	e.buf.Append(strconv.AppendUint(nil, uint64(tag), 10))
	e.buf.AppendByte('=')
	e.buf.Append(value)
	e.buf.AppendByte(e.config.separator)
}

// EncoderHandle is the live handle to the message an Encoder is currently
// building. It becomes invalid once Wrap is called.
type EncoderHandle struct {
	enc *Encoder
}

// SetRaw appends tag=value (already serialized by the caller) followed by
// the separator.
func (h *EncoderHandle) SetRaw(tag Tag, value []byte) {
	h.enc.writeField(tag, value)
}

// Raw appends data to the buffer verbatim, with no tag/separator framing
// added — an escape hatch for callers assembling a pre-encoded repeating
// group or other raw byte span.
func (h *EncoderHandle) Raw(data []byte) {
	h.enc.buf.Append(data)
}

// Set serializes v with codec and writes it as tag's value. It is a free
// function (not a method) for the same reason FV/FVL are: Go methods
// cannot themselves be generic.
func Set[T any](h *EncoderHandle, tag Tag, v T, codec datatype.Codec[T]) {
	tmp := buffer.Get()
	codec.Serialize(tmp, v)
	h.SetRaw(tag, tmp.Bytes())
	buffer.Put(tmp)
}

// SetPadded serializes an unsigned integer left-padded to p's width (e.g.
// for fields that, unlike BodyLength/CheckSum, a caller wants zero-padded
// for fixed-width presentation) and writes it as tag's value.
func SetPadded(h *EncoderHandle, tag Tag, v uint64, p datatype.Padding) {
	tmp := buffer.Get()
	datatype.SerializeUintPadded(tmp, v, p)
	h.SetRaw(tag, tmp.Bytes())
	buffer.Put(tmp)
}

// Wrap finalizes the message: it patches the BodyLength placeholder with
// the body's actual length, appends the CheckSum field computed over
// every byte written so far, and returns the complete frame. The handle
// must not be used again afterward.
func (h *EncoderHandle) Wrap() ([]byte, error) {
	e := h.enc
	if !e.active {
		return nil, errs.ErrNoActiveMessage
	}

	bodyLength := e.buf.Len() - e.bodyStart
	if bodyLength >= 1_000_000 {
		return nil, errs.ErrBodyTooLarge
	}

	patchDigits(e.buf.Slice(e.bodyLenValueStart, e.bodyLenValueStart+BodyLengthFieldWidth), uint64(bodyLength))

	checksum := datatype.Compute(e.buf.Bytes())
	var csDigits [CheckSumFieldWidth]byte
	patchDigits(csDigits[:], uint64(checksum))
	e.writeField(TagCheckSum, csDigits[:])

	e.active = false

	return e.buf.Bytes(), nil
}

// patchDigits writes v's decimal digits into dst right-aligned, assuming
// the caller has already verified v fits in len(dst) digits.
func patchDigits(dst []byte, v uint64) {
	for i := len(dst) - 1; i >= 0; i-- {
		dst[i] = byte('0' + v%10)
		v /= 10
	}
}
