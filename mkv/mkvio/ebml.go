package mkvio

import (
	"errors"
	"fmt"
)

// ErrNeedMoreData is returned when the byte window ends before the
// current element does. The caller is expected to refill its buffer
// and retry with a larger window; no bytes have been consumed.
var ErrNeedMoreData = errors.New("need more data")

// DecodeError reports malformed EBML framing.
type DecodeError struct {
	Detail string
}

func (e *DecodeError) Error() string {
	return e.Detail
}

func decodeErrorf(format string, args ...interface{}) error {
	return &DecodeError{Detail: fmt.Sprintf(format, args...)}
}

func pack(n int, b []byte) uint64 {
	var v uint64
	var k uint64 = (uint64(n) - 1) * 8

	for i := 0; i < n; i++ {
		v |= uint64(b[i]) << k
		k -= 8
	}

	return v
}

// readElementID decodes one element ID at the start of b. IDs keep
// their class marker bits, so they compare directly against the
// registry constants.
func readElementID(b []byte) (uint32, int, error) {
	if len(b) == 0 {
		return 0, 0, ErrNeedMoreData
	}

	var width int
	switch {
	case b[0]&0x80 != 0: // Class A ID (on 1 byte)
		width = 1
	case b[0]&0x40 != 0: // Class B ID (on 2 bytes)
		width = 2
	case b[0]&0x20 != 0: // Class C ID (on 3 bytes)
		width = 3
	case b[0]&0x10 != 0: // Class D ID (on 4 bytes)
		width = 4
	default:
		return 0, 0, decodeErrorf("invalid element ID lead byte %#02x", b[0])
	}

	if len(b) < width {
		return 0, 0, ErrNeedMoreData
	}

	return uint32(pack(width, b)), width, nil
}

// readElementSize decodes one size vint at the start of b. The size
// marker bit is stripped from the value. known is false when the
// element declares the reserved all-ones "unknown size" value.
func readElementSize(b []byte) (size uint64, known bool, n int, err error) {
	if len(b) == 0 {
		return 0, false, 0, ErrNeedMoreData
	}

	var mask byte
	var width int

	switch {
	case b[0] >= 0x80:
		width, mask = 1, 0x7f
	case b[0] >= 0x40:
		width, mask = 2, 0x3f
	case b[0] >= 0x20:
		width, mask = 3, 0x1f
	case b[0] >= 0x10:
		width, mask = 4, 0x0f
	case b[0] >= 0x08:
		width, mask = 5, 0x07
	case b[0] >= 0x04:
		width, mask = 6, 0x03
	case b[0] >= 0x02:
		width, mask = 7, 0x01
	case b[0] >= 0x01:
		width, mask = 8, 0x00
	default:
		return 0, false, 0, decodeErrorf("invalid size lead byte %#02x", b[0])
	}

	if len(b) < width {
		return 0, false, 0, ErrNeedMoreData
	}

	var bb [8]byte
	copy(bb[:], b[:width])
	bb[0] &= mask
	size = pack(width, bb[:])

	return size, size != maxSizeValue(width), width, nil
}

// maxSizeValue is the reserved unknown-size value for a given vint width.
func maxSizeValue(width int) uint64 {
	return 1<<(7*uint(width)) - 1
}

// readElement decodes the ID and size header of the element at the
// start of b.
func readElement(b []byte) (id uint32, size uint64, known bool, headerLen int, err error) {
	id, n, err := readElementID(b)
	if err != nil {
		return 0, 0, false, 0, err
	}

	size, known, m, err := readElementSize(b[n:])
	if err != nil {
		return 0, 0, false, 0, err
	}

	return id, size, known, n + m, nil
}

// eachChild walks the children of a fully windowed master payload.
// Truncation inside the payload is malformed framing, not a retry
// case, since the payload length was already declared. CRC-32 and
// Void filler children are skipped.
func eachChild(payload []byte, fn func(reg ElementRegister, body []byte) error) error {
	for len(payload) > 0 {
		id, size, known, n, err := readElement(payload)
		if errors.Is(err, ErrNeedMoreData) {
			return decodeErrorf("truncated child element header")
		}
		if err != nil {
			return err
		}
		if !known {
			return decodeErrorf("child element %#x has unknown size", id)
		}
		if size > uint64(len(payload)-n) {
			return decodeErrorf("child element %#x of size %d overruns its parent", id, size)
		}

		body := payload[n : uint64(n)+size]
		payload = payload[uint64(n)+size:]

		if id == ElementVoid.ID || id == ElementCRC32.ID {
			continue
		}
		if err := fn(GetElementRegister(id), body); err != nil {
			return err
		}
	}

	return nil
}
