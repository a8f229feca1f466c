package tagvalue

import (
	"fmt"
	"strconv"

	"github.com/finlib/fixcore/errs"
)

// scanFields splits payload into an ordered list of tag=value fields on
// sep, validating that every field has a non-empty numeric tag and a
// terminating separator. It is shared by FieldMap construction and group
// entry parsing.
func scanFields(payload []byte, sep byte) ([]Field, error) {
	fields := make([]Field, 0, 16)

	start := 0
	for start < len(payload) {
		eq := indexByte(payload, start, '=')
		if eq < 0 {
			return nil, fmt.Errorf("%w: field missing '='", errs.ErrInvalid)
		}

		tagBytes := payload[start:eq]
		if len(tagBytes) == 0 {
			return nil, fmt.Errorf("%w: empty tag", errs.ErrInvalid)
		}
		tagNum, err := strconv.ParseUint(string(tagBytes), 10, 16)
		if err != nil {
			return nil, fmt.Errorf("%w: non-numeric tag %q", errs.ErrInvalid, tagBytes)
		}

		end := indexByte(payload, eq+1, sep)
		if end < 0 {
			return nil, fmt.Errorf("%w: field missing separator", errs.ErrInvalid)
		}

		fields = append(fields, Field{Tag: Tag(tagNum), Value: payload[eq+1 : end]})
		start = end + 1
	}

	return fields, nil
}

func indexByte(data []byte, from int, b byte) int {
	for i := from; i < len(data); i++ {
		if data[i] == b {
			return i
		}
	}

	return -1
}
