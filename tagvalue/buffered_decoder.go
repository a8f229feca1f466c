package tagvalue

import (
	"fmt"

	"github.com/finlib/fixcore/buffer"
	"github.com/finlib/fixcore/errs"
)

// BufferedDecoder decodes a single Frame out of bytes that arrive
// incrementally (e.g. read off a socket in arbitrary-sized chunks),
// grounded on original_source/crates/fefix/src/tagvalue/raw_decoder.rs's
// RawDecoderBuffered.
//
// It moves through four states: empty (nothing supplied yet), header-
// present (enough bytes to know the declared BodyLength but not yet the
// full frame), complete (Parse has produced a Frame), and poisoned (Parse
// returned an error, which it keeps returning until Clear is called).
// Supplying more bytes while poisoned returns errs.ErrDecoderPoisoned, and
// calling Parse again returns the stored error rather than silently
// ignoring it — the caller must explicitly Clear to reuse the decoder, matching the
// source's panic-on-misuse contract translated into Go's error-return
// idiom rather than a panic, since this is an ordinary, expected state a
// long-lived decoder loop checks every iteration.
type BufferedDecoder struct {
	config     Config
	buf        *buffer.Buffer
	parsingErr error
	frame      *Frame
}

// NewBufferedDecoder creates a BufferedDecoder with the given configuration.
func NewBufferedDecoder(cfg Config) *BufferedDecoder {
	return &BufferedDecoder{config: cfg, buf: buffer.New(buffer.DefaultSize)}
}

// Clear discards all accumulated bytes and any poisoned error, returning
// the decoder to its empty state for the next frame.
func (d *BufferedDecoder) Clear() {
	d.buf.Reset()
	d.parsingErr = nil
	d.frame = nil
}

// Len returns the number of bytes currently accumulated.
func (d *BufferedDecoder) Len() int {
	return d.buf.Len()
}

// Bytes returns every byte currently accumulated, including any trailing
// data belonging to a subsequent frame. The returned slice aliases the
// decoder's internal buffer and is only valid until the next mutating
// call.
func (d *BufferedDecoder) Bytes() []byte {
	return d.buf.Bytes()
}

// SupplyBuffer grows the accumulation buffer so its total length is at
// least totalLen and returns the newly exposed tail (uninitialized bytes)
// for the caller to fill with data just read off the wire. If totalLen is
// already satisfied it returns a nil, nil no-op.
func (d *BufferedDecoder) SupplyBuffer(totalLen int) ([]byte, error) {
	if d.parsingErr != nil {
		return nil, errs.ErrDecoderPoisoned
	}

	cur := d.buf.Len()
	if totalLen <= cur {
		return nil, nil
	}

	start := d.buf.Grow(totalLen - cur)

	return d.buf.Bytes()[start:], nil
}

// NeededLength reports the total accumulated length (counted from offset
// zero) Parse needs before it can make further progress: MinFrameLen
// until the header has been scanned successfully, and the exact length of
// the complete frame once BodyLength is known. Callers drive the
// supply-parse loop with: grow to NeededLength(), fill the returned tail,
// call Parse, and repeat if Parse reports "need more data".
func (d *BufferedDecoder) NeededLength() int {
	data := d.buf.Bytes()
	if len(data) >= MinFrameLen {
		if h, err := parseHeaderInfo(data, d.config.separator); err == nil {
			_, bodyEnd := h.bodyRange()
			return bodyEnd + CheckSumFieldLen
		}
	}

	return MinFrameLen
}

// Parse attempts to decode the accumulated bytes into a complete Frame.
// It returns (nil, nil) when more bytes are needed — call NeededLength,
// SupplyBuffer, fill in the tail, and Parse again — a non-nil Frame once
// decoding succeeds, or a non-nil error for malformed input, which
// poisons the decoder until Clear is called.
func (d *BufferedDecoder) Parse() (*Frame, error) {
	if d.parsingErr != nil {
		return nil, d.parsingErr
	}
	if d.frame != nil {
		return d.frame, nil
	}

	data := d.buf.Bytes()
	if len(data) < MinFrameLen {
		return nil, nil
	}

	h, err := parseHeaderInfo(data, d.config.separator)
	if err != nil {
		d.parsingErr = err
		return nil, err
	}

	if h.bodyLength < 0 {
		d.parsingErr = fmt.Errorf("%w: negative body length", errs.ErrInvalid)
		return nil, d.parsingErr
	}

	bodyStart, bodyEnd := h.bodyRange()
	checksumEnd := bodyEnd + CheckSumFieldLen
	if len(data) < checksumEnd {
		return nil, nil
	}

	if err := verifyCheckSumField(data, bodyEnd, checksumEnd, d.config); err != nil {
		d.parsingErr = err
		return nil, err
	}

	beginStart, beginEnd := h.beginStringRange()
	frame := Frame{
		data:       data[:checksumEnd],
		beginRange: [2]int{beginStart, beginEnd},
		bodyRange:  [2]int{bodyStart, bodyEnd},
	}
	d.frame = &frame

	return d.frame, nil
}
