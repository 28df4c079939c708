package mkvio

// Header carries the fields of the EBML head that opens every
// Matroska/WebM file.
type Header struct {
	Version            uint64
	ReadVersion        uint64
	MaxIDLength        uint64
	MaxSizeLength      uint64
	DocType            string
	DocTypeVersion     uint64
	DocTypeReadVersion uint64
}

// Segment is the declaration of the single top-level container. Its
// children are streamed one at a time through ParseSegmentElement, so
// only the ID and size header are consumed here. Size is nil when the
// file declares the segment as unknown-sized.
type Segment struct {
	Size *uint64
}

// ParseHeader decodes the EBML head at the start of b. The whole head,
// payload included, must already be in the window; there is no retry
// protocol for the file prologue.
func ParseHeader(b []byte) (int, *Header, error) {
	id, size, known, n, err := readElement(b)
	if err != nil {
		return 0, nil, err
	}
	if id != ElementEBML.ID {
		return 0, nil, decodeErrorf("expected EBML head, got element %#x", id)
	}
	if !known {
		return 0, nil, decodeErrorf("EBML head has unknown size")
	}
	if size > uint64(len(b)-n) {
		return 0, nil, ErrNeedMoreData
	}

	h := &Header{
		Version:            1,
		ReadVersion:        1,
		MaxIDLength:        4,
		MaxSizeLength:      8,
		DocTypeVersion:     1,
		DocTypeReadVersion: 1,
	}

	err = eachChild(b[n:uint64(n)+size], func(reg ElementRegister, body []byte) error {
		var err error
		switch reg.ID {
		case ElementEBMLVersion.ID:
			h.Version, err = decodeUint(body)
		case ElementEBMLReadVersion.ID:
			h.ReadVersion, err = decodeUint(body)
		case ElementEBMLMaxIDLength.ID:
			h.MaxIDLength, err = decodeUint(body)
		case ElementEBMLMaxSizeLength.ID:
			h.MaxSizeLength, err = decodeUint(body)
		case ElementDocType.ID:
			h.DocType = decodeString(body)
		case ElementDocTypeVersion.ID:
			h.DocTypeVersion, err = decodeUint(body)
		case ElementDocTypeReadVersion.ID:
			h.DocTypeReadVersion, err = decodeUint(body)
		}
		return err
	})
	if err != nil {
		return 0, nil, err
	}

	return n + int(size), h, nil
}

// ParseSegment decodes the Segment declaration at the start of b and
// consumes only its ID and size header.
func ParseSegment(b []byte) (int, *Segment, error) {
	id, size, known, n, err := readElement(b)
	if err != nil {
		return 0, nil, err
	}
	if id != ElementSegment.ID {
		return 0, nil, decodeErrorf("expected Segment, got element %#x", id)
	}

	s := &Segment{}
	if known {
		s.Size = &size
	}

	return n, s, nil
}
