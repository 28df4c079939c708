package mkvio

// Encoded-size arithmetic and element writers. The scanner itself never
// writes Matroska data; these exist so reported seek entries can state
// the sizes their elements occupy on disk, and so tests can build
// synthetic streams.

// IDWidth returns the number of bytes the element ID occupies on disk.
func IDWidth(id uint32) int {
	switch {
	case id <= 0xff:
		return 1
	case id <= 0xffff:
		return 2
	case id <= 0xffffff:
		return 3
	default:
		return 4
	}
}

// SizeWidth returns the number of bytes the shortest size vint for v
// occupies on disk. The all-ones value of each width is reserved for
// "unknown size" and skipped.
func SizeWidth(v uint64) int {
	for w := 1; w < 8; w++ {
		if v < maxSizeValue(w) {
			return w
		}
	}
	return 8
}

// UintPayloadLen returns the number of bytes the shortest big-endian
// encoding of v occupies, at least one.
func UintPayloadLen(v uint64) uint64 {
	var n uint64 = 1
	for v > 0xff {
		v >>= 8
		n++
	}
	return n
}

// EncodedSize returns the total on-disk size of an element with the
// given ID and payload length: ID bytes + size vint bytes + payload.
func EncodedSize(id uint32, payloadLen uint64) uint64 {
	return uint64(IDWidth(id)) + uint64(SizeWidth(payloadLen)) + payloadLen
}

// AppendID appends the big-endian bytes of an element ID.
func AppendID(b []byte, id uint32) []byte {
	w := IDWidth(id)
	for i := w - 1; i >= 0; i-- {
		b = append(b, byte(id>>(8*uint(i))))
	}
	return b
}

// AppendSize appends the shortest size vint for v.
func AppendSize(b []byte, v uint64) []byte {
	w := SizeWidth(v)
	marker := uint64(1) << (7 * uint(w))
	v |= marker
	for i := w - 1; i >= 0; i-- {
		b = append(b, byte(v>>(8*uint(i))))
	}
	return b
}

// AppendUnknownSize appends the one-byte reserved "unknown size" vint.
func AppendUnknownSize(b []byte) []byte {
	return append(b, 0xff)
}

// AppendElement appends a whole element: ID, size vint and payload.
func AppendElement(b []byte, id uint32, payload []byte) []byte {
	b = AppendID(b, id)
	b = AppendSize(b, uint64(len(payload)))
	return append(b, payload...)
}

// AppendUintElement appends an element whose payload is the shortest
// big-endian encoding of v.
func AppendUintElement(b []byte, id uint32, v uint64) []byte {
	payload := make([]byte, 0, 8)
	for i := int(UintPayloadLen(v)) - 1; i >= 0; i-- {
		payload = append(payload, byte(v>>(8*uint(i))))
	}
	return AppendElement(b, id, payload)
}

// AppendStringElement appends an element with a string payload.
func AppendStringElement(b []byte, id uint32, s string) []byte {
	return AppendElement(b, id, []byte(s))
}
