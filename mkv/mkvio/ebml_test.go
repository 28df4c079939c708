package mkvio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadElementID(t *testing.T) {
	tests := []struct {
		name  string
		in    []byte
		id    uint32
		width int
	}{
		{"class A", []byte{0xec}, 0xec, 1},
		{"class B", []byte{0x42, 0x86}, 0x4286, 2},
		{"class C", []byte{0x2a, 0xd7, 0xb1}, 0x2ad7b1, 3},
		{"class D", []byte{0x1a, 0x45, 0xdf, 0xa3}, 0x1a45dfa3, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, n, err := readElementID(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.id, id)
			assert.Equal(t, tt.width, n)
		})
	}
}

func TestReadElementIDShortWindow(t *testing.T) {
	_, _, err := readElementID(nil)
	require.ErrorIs(t, err, ErrNeedMoreData)

	// Class D ID cut after two bytes.
	_, _, err = readElementID([]byte{0x1a, 0x45})
	require.ErrorIs(t, err, ErrNeedMoreData)
}

func TestReadElementIDInvalidLeadByte(t *testing.T) {
	_, _, err := readElementID([]byte{0x00, 0x01})
	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
}

func TestReadElementSize(t *testing.T) {
	tests := []struct {
		name  string
		in    []byte
		size  uint64
		known bool
		width int
	}{
		{"one byte", []byte{0x81}, 1, true, 1},
		{"one byte max known", []byte{0xfe}, 0x7e, true, 1},
		{"two bytes", []byte{0x41, 0x23}, 0x123, true, 2},
		{"three bytes", []byte{0x20, 0x12, 0x34}, 0x1234, true, 3},
		{"eight bytes", []byte{0x01, 0, 0, 0, 0, 0, 0x12, 0x34}, 0x1234, true, 8},
		{"unknown one byte", []byte{0xff}, 0x7f, false, 1},
		{"unknown two bytes", []byte{0x7f, 0xff}, 0x3fff, false, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size, known, n, err := readElementSize(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.size, size)
			assert.Equal(t, tt.known, known)
			assert.Equal(t, tt.width, n)
		})
	}
}

func TestReadElementSizeShortWindow(t *testing.T) {
	_, _, _, err := readElementSize([]byte{0x41})
	require.ErrorIs(t, err, ErrNeedMoreData)
}

func TestReadElementSizeInvalidLeadByte(t *testing.T) {
	_, _, _, err := readElementSize([]byte{0x00})
	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
}

func TestAppendRoundTrip(t *testing.T) {
	for _, id := range []uint32{0xec, 0x4286, 0x2ad7b1, 0x1a45dfa3} {
		b := AppendElement(nil, id, []byte{1, 2, 3})
		gotID, size, known, n, err := readElement(b)
		require.NoError(t, err)
		assert.Equal(t, id, gotID)
		assert.Equal(t, uint64(3), size)
		assert.True(t, known)
		assert.Equal(t, len(b)-3, n)
	}
}

func TestAppendSizeWidths(t *testing.T) {
	// Values at the edge of each width must not collide with the
	// reserved unknown-size encoding.
	for _, v := range []uint64{0, 0x7e, 0x7f, 0x3ffe, 0x3fff, 1 << 21} {
		b := AppendSize(nil, v)
		size, known, n, err := readElementSize(b)
		require.NoError(t, err)
		assert.True(t, known, "value %#x decoded as unknown size", v)
		assert.Equal(t, v, size)
		assert.Equal(t, len(b), n)
	}
}

func TestEncodedSize(t *testing.T) {
	assert.Equal(t, 1, IDWidth(0xec))
	assert.Equal(t, 2, IDWidth(0x4dbb))
	assert.Equal(t, 4, IDWidth(0x114d9b74))

	assert.Equal(t, 1, SizeWidth(0x7e))
	assert.Equal(t, 2, SizeWidth(0x7f))

	assert.Equal(t, uint64(1), UintPayloadLen(0))
	assert.Equal(t, uint64(2), UintPayloadLen(0x100))

	// Seek entry pointing at Info: 2-byte Seek ID + sizes + children.
	idElem := EncodedSize(ElementSeekID.ID, 4)
	posElem := EncodedSize(ElementSeekPosition.ID, UintPayloadLen(0x1234))
	assert.Equal(t, uint64(2+1+4), idElem)
	assert.Equal(t, uint64(2+1+2), posElem)
	assert.Equal(t, uint64(2+1)+idElem+posElem, EncodedSize(ElementSeek.ID, idElem+posElem))
}

func TestDecodeValues(t *testing.T) {
	v, err := decodeUint([]byte{0x12, 0x34})
	require.NoError(t, err)
	assert.Equal(t, uint64(0x1234), v)

	v, err = decodeUint(nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), v)

	_, err = decodeUint(make([]byte, 9))
	var derr *DecodeError
	require.ErrorAs(t, err, &derr)

	i, err := decodeInt([]byte{0xff, 0xfe})
	require.NoError(t, err)
	assert.Equal(t, int64(-2), i)

	f, err := decodeFloat([]byte{0x40, 0x49, 0x0f, 0xdb})
	require.NoError(t, err)
	assert.InDelta(t, 3.14159, f, 1e-5)

	_, err = decodeFloat(make([]byte, 3))
	require.ErrorAs(t, err, &derr)

	assert.Equal(t, "matroska", decodeString([]byte("matroska\x00\x00")))
}
