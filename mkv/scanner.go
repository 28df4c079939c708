package mkv

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mediakit/mkvscan/mkv/mkvio"
)

// DefaultCapacity is the scan buffer size: any single top-level
// element larger than this soft-stops the scan.
const DefaultCapacity = 5242880

// Scanner walks a Matroska stream through a bounded buffer and reports
// its structure. The scan runs in two phases: a strict metadata phase
// that accepts the seek table, info block and track list exactly once
// each, then a tolerant cluster phase for the rest of the segment.
type Scanner struct {
	r   io.Reader
	buf *Buffer
	rep Reporter
	log *slog.Logger

	pos uint64 // bytes consumed from the start of the file
	eof bool

	seekHead *mkvio.SeekHead
	info     *mkvio.Info
	tracks   *mkvio.Tracks
}

type Option func(*Scanner)

// WithCapacity sets the scan buffer capacity in bytes.
func WithCapacity(n int) Option {
	return func(s *Scanner) { s.buf = NewBuffer(n) }
}

// WithReporter replaces the default stdout text reporter.
func WithReporter(r Reporter) Option {
	return func(s *Scanner) { s.rep = r }
}

// WithLogger routes scan diagnostics through the given logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scanner) { s.log = l }
}

func NewScanner(r io.Reader, opts ...Option) *Scanner {
	s := &Scanner{
		r:   r,
		buf: NewBuffer(DefaultCapacity),
		rep: NewTextReporter(os.Stdout),
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Position returns the number of bytes consumed so far. It advances by
// exactly the encoded size of each dispatched element and never moves
// on a short window.
func (s *Scanner) Position() uint64 {
	return s.pos
}

// Scan runs the whole scan and returns the first error encountered.
// A nil return means the prologue parsed, the metadata phase resolved
// its three elements, and the cluster phase reached a clean end of
// file or a logged soft stop.
func (s *Scanner) Scan() error {
	if err := s.refill(); err != nil {
		return err
	}

	n, header, err := mkvio.ParseHeader(s.buf.Data())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrParseHeader, err)
	}
	s.rep.EBMLHeader(header)
	s.advance(n)

	n, segment, err := mkvio.ParseSegment(s.buf.Data())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrParseHeader, err)
	}
	s.rep.Segment(segment)
	s.advance(n)

	complete, err := s.metadataPhase()
	if err != nil {
		return err
	}
	if !complete {
		// Saturated before the metadata resolved. The stop itself was
		// logged, but the scan cannot claim a resolved segment.
		return ErrNoMoreData
	}

	return s.clusterPhase()
}

func (s *Scanner) advance(n int) {
	s.buf.Consume(n)
	s.pos += uint64(n)
}

// refill reads once from the file into the buffer's writable tail.
// End of file is not an error here; the phase loops decide what an
// empty buffer means.
func (s *Scanner) refill() error {
	n, err := s.r.Read(s.buf.Space())
	if n > 0 {
		s.buf.Fill(n)
	}
	if err == io.EOF {
		s.eof = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not read the file: %w", err)
	}
	return nil
}

// makeRoom prepares the buffer for a refill. It reports false when the
// buffer stays saturated after a shift, meaning the element under the
// cursor is larger than the whole buffer.
func (s *Scanner) makeRoom() bool {
	if s.buf.AvailableSpace() > 0 {
		return true
	}
	s.buf.Shift()
	if s.buf.AvailableSpace() == 0 {
		s.log.Warn("buffer is already full, cannot refill",
			"capacity", s.buf.Capacity(), "position", s.pos)
		return false
	}
	return true
}

// metadataPhase consumes top-level elements until the seek table, info
// block and track list have each been seen once. complete is false on
// a saturation soft stop.
func (s *Scanner) metadataPhase() (complete bool, err error) {
	for {
		if s.seekHead != nil && s.info != nil && s.tracks != nil {
			return true, nil
		}

		if !s.makeRoom() {
			return false, nil
		}
		if err := s.refill(); err != nil {
			return false, err
		}
		if s.buf.AvailableData() == 0 {
			return false, ErrNoMoreData
		}

		n, element, err := mkvio.ParseSegmentElement(s.buf.Data())
		if errors.Is(err, mkvio.ErrNeedMoreData) {
			if s.eof {
				// The file ended inside an element; no refill can
				// complete it.
				return false, ErrNoMoreData
			}
			continue
		}
		if err != nil {
			return false, &ParseError{Detail: err.Error()}
		}

		switch el := element.(type) {
		case *mkvio.SeekHead:
			if s.seekHead != nil {
				return false, ErrSeekHeadElement
			}
			s.seekHead = el
			s.rep.SeekHead(el, n)
		case *mkvio.Info:
			if s.info != nil {
				return false, ErrInfoElement
			}
			s.info = el
			s.rep.Info(el)
		case *mkvio.Tracks:
			if s.tracks != nil {
				return false, ErrTracksElement
			}
			s.tracks = el
			s.rep.Tracks(el)
		case mkvio.Void:
			s.rep.Void(el.Size)
		default:
			return false, &UnexpectedElementError{Name: elementName(element)}
		}

		s.advance(n)
	}
}

// clusterPhase consumes the rest of the segment, accepting only
// clusters and filler. A clean end of file ends the scan; a singleton
// metadata element or an unrecognized ID ends it with an error.
func (s *Scanner) clusterPhase() error {
	for {
		if !s.makeRoom() {
			return nil
		}
		if err := s.refill(); err != nil {
			return err
		}
		if s.buf.AvailableData() == 0 {
			return nil
		}

		n, element, err := mkvio.ParseSegmentElement(s.buf.Data())
		if errors.Is(err, mkvio.ErrNeedMoreData) {
			if s.eof {
				return &ParseError{Detail: "truncated element at end of file"}
			}
			continue
		}
		if err != nil {
			return &ParseError{Detail: err.Error()}
		}

		switch el := element.(type) {
		case *mkvio.Cluster:
			s.rep.Cluster(el)
		case mkvio.Void:
			s.rep.Void(el.Size)
		case mkvio.Unknown:
			return &UnknownElementError{Offset: s.pos, ID: el.ID, Size: el.Size}
		default:
			// SeekHead, Info or Tracks after the metadata phase closed.
			return &UnexpectedElementError{Name: elementName(element)}
		}

		s.advance(n)
	}
}

func elementName(el mkvio.SegmentElement) string {
	switch el := el.(type) {
	case *mkvio.SeekHead:
		return "SeekHead"
	case *mkvio.Info:
		return "Info"
	case *mkvio.Tracks:
		return "Tracks"
	case *mkvio.Cluster:
		return "Cluster"
	case mkvio.Void:
		return "Void"
	case mkvio.Unknown:
		return fmt.Sprintf("Unknown(%#x)", el.ID)
	default:
		return fmt.Sprintf("%T", el)
	}
}
