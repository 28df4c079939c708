package mkv

// Buffer is the fixed-capacity window the scanner slides over the
// file. Bytes enter through Space/Fill, leave through Consume, and
// Shift reclaims the room held by already-consumed bytes once the
// tail capacity runs out. Invariant: consumed + unread + free space
// equals the capacity at all times.
type Buffer struct {
	data  []byte
	start int // first unread byte
	end   int // one past the last valid byte
}

// NewBuffer allocates a buffer of the given fixed capacity.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{data: make([]byte, capacity)}
}

// Space returns the writable tail of the buffer. The caller reads file
// bytes into it and then records the count with Fill.
func (b *Buffer) Space() []byte {
	return b.data[b.end:]
}

// Fill marks n freshly written bytes as valid readable data.
func (b *Buffer) Fill(n int) {
	if n < 0 || n > len(b.data)-b.end {
		panic("mkv: Fill count out of range")
	}
	b.end += n
}

// Data returns the valid unread bytes in file order.
func (b *Buffer) Data() []byte {
	return b.data[b.start:b.end]
}

// Consume advances the read cursor by n. Bytes before the cursor
// become inaccessible until Shift reclaims their space.
func (b *Buffer) Consume(n int) {
	if n < 0 || n > b.end-b.start {
		panic("mkv: Consume count out of range")
	}
	b.start += n
}

// AvailableData returns the number of valid unread bytes.
func (b *Buffer) AvailableData() int {
	return b.end - b.start
}

// AvailableSpace returns the number of free bytes in the writable tail.
func (b *Buffer) AvailableSpace() int {
	return len(b.data) - b.end
}

// Capacity returns the fixed size of the backing region.
func (b *Buffer) Capacity() int {
	return len(b.data)
}

// Shift compacts the unread bytes to the front of the backing region,
// recovering the space held by consumed bytes. A no-op when nothing
// has been consumed since the last shift; in that case a full buffer
// stays full.
func (b *Buffer) Shift() {
	if b.start == 0 {
		return
	}
	copy(b.data, b.data[b.start:b.end])
	b.end -= b.start
	b.start = 0
}
