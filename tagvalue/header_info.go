package tagvalue

import "github.com/finlib/fixcore/errs"

// headerInfo records the byte offsets of the two header fields every FIX
// message starts with (BeginString, BodyLength) plus the BodyLength value
// itself, scanned in a single forward pass. It is grounded directly on
// original_source/crates/fefix/src/tagvalue/raw_decoder.rs's HeaderInfo.
type headerInfo struct {
	// iEqualSign[i] is the byte offset of the '=' in header field i (0 =
	// BeginString, 1 = BodyLength). Zero means "not yet found": a valid
	// '=' can never sit at offset 0 since at least one tag digit and
	// (for field 1) a preceding separator must come first.
	iEqualSign [2]int
	// iSep[i] is the byte offset of the separator terminating header
	// field i.
	iSep [2]int
	// bodyLength accumulates (with wraparound, matching the source) while
	// scanning field 1's value; it is only meaningful once both fields
	// have been located.
	bodyLength int
}

func (h headerInfo) startOfBody() int {
	return h.iSep[1] + 1
}

func (h headerInfo) beginStringRange() (int, int) {
	return h.iEqualSign[0] + 1, h.iSep[0]
}

func (h headerInfo) bodyRange() (int, int) {
	start := h.startOfBody()
	return start, start + h.bodyLength
}

// parseHeaderInfo scans data for the BeginString and BodyLength fields,
// returning their offsets and BodyLength's decoded value. It stops as soon
// as both fields have been located and never reads past the second
// separator.
//
// '=' resets the running bodyLength accumulator to 0 regardless of which
// field it belongs to; since BodyLength's own '=' is always the last one
// seen before its value digits accumulate, any partial (and meaningless)
// accumulation from BeginString's value is discarded automatically — no
// extra field-index gating is needed. Every other byte folds in as
// (byte - '0') with signed int wraparound, digit or not; a BodyLength
// value that is not purely numeric is not rejected here. It is caught only
// when the resulting number is negative or does not match the bytes
// actually present, matching the "fast scan first, validate second" shape
// of the original source's parser.
func parseHeaderInfo(data []byte, sep byte) (headerInfo, error) {
	var h headerInfo
	fieldI := 0

	for i, b := range data {
		switch {
		case b == '=':
			h.iEqualSign[fieldI] = i
			h.bodyLength = 0
		case b == sep:
			h.iSep[fieldI] = i
			fieldI++
			if fieldI == 2 {
				return validateHeaderInfo(h)
			}
		default:
			h.bodyLength = h.bodyLength*10 + int(b) - int('0')
		}
	}

	return headerInfo{}, errs.ErrInvalid
}

func validateHeaderInfo(h headerInfo) (headerInfo, error) {
	if h.iEqualSign[0] == 0 || h.iSep[0] == 0 || h.iEqualSign[1] == 0 || h.iSep[1] == 0 {
		return headerInfo{}, errs.ErrInvalid
	}

	return h, nil
}
