package mkv

import (
	"errors"
	"fmt"
)

// Every scan error is terminal: the scanner surfaces the first one it
// hits and stops. Buffer saturation is deliberately absent here; an
// element larger than the buffer ends the current phase with a logged
// warning, not an error.
var (
	// ErrNoMoreData is returned when the file ends, or the buffer
	// saturates, before the seek table, info block and track list have
	// all been seen.
	ErrNoMoreData = errors.New("no more data to read or parse")

	// ErrParseHeader is returned when the EBML head or the Segment
	// declaration cannot be decoded from the first read.
	ErrParseHeader = errors.New("unable to parse header")

	ErrSeekHeadElement = errors.New("already got a SeekHead element")
	ErrInfoElement     = errors.New("already got an Info element")
	ErrTracksElement   = errors.New("already got a Tracks element")
)

// UnexpectedElementError reports a sequencing violation: a cluster
// before the metadata resolved, or a singleton metadata element after
// the metadata phase closed.
type UnexpectedElementError struct {
	Name string
}

func (e *UnexpectedElementError) Error() string {
	return "unexpected element: " + e.Name
}

// UnknownElementError reports an element ID the grammar does not
// recognize, surfaced during the cluster phase. Offset is the byte
// position of the element's first byte from the start of the file.
// Size is nil when the element declared an unknown size.
type UnknownElementError struct {
	Offset uint64
	ID     uint32
	Size   *uint64
}

func (e *UnknownElementError) Error() string {
	if e.Size == nil {
		return fmt.Sprintf("offset %#x: got unknown element: %#x (unknown size)", e.Offset, e.ID)
	}
	return fmt.Sprintf("offset %#x: got unknown element: %#x size %d", e.Offset, e.ID, *e.Size)
}

// ParseError wraps a grammar rejection of bytes it did receive.
type ParseError struct {
	Detail string
}

func (e *ParseError) Error() string {
	return "failed parsing: " + e.Detail
}
