package mkvio

import (
	"encoding/binary"
	"math"
	"strings"
)

// Typed element bodies are big-endian and use the declared width, which
// may be shorter than the natural width of the Go type.

func decodeUint(b []byte) (uint64, error) {
	if len(b) > 8 {
		return 0, decodeErrorf("uint body of %d bytes is too wide", len(b))
	}
	if len(b) == 0 {
		return 0, nil
	}
	return pack(len(b), b), nil
}

func decodeInt(b []byte) (int64, error) {
	if len(b) > 8 {
		return 0, decodeErrorf("int body of %d bytes is too wide", len(b))
	}
	if len(b) == 0 {
		return 0, nil
	}
	v := int64(int8(b[0]))
	for _, c := range b[1:] {
		v = v<<8 | int64(c)
	}
	return v, nil
}

func decodeFloat(b []byte) (float64, error) {
	switch len(b) {
	case 0:
		return 0, nil
	case 4:
		return float64(math.Float32frombits(binary.BigEndian.Uint32(b))), nil
	case 8:
		return math.Float64frombits(binary.BigEndian.Uint64(b)), nil
	default:
		return 0, decodeErrorf("float body of %d bytes", len(b))
	}
}

func decodeString(b []byte) string {
	// Matroska strings may carry zero padding at the tail.
	return strings.TrimRight(string(b), "\x00")
}

// decodeDate returns nanoseconds relative to 2001-01-01T00:00:00 UTC.
func decodeDate(b []byte) (int64, error) {
	return decodeInt(b)
}
