package mkvio

import (
	"github.com/google/uuid"
)

// SegmentElement is one decoded top-level child of the Segment. The
// concrete type is one of *SeekHead, *Info, *Tracks, *Cluster, Void or
// Unknown.
type SegmentElement interface {
	segmentElement()
}

// Seek is one entry of the seek table, pointing at a top-level element
// by raw ID and byte position inside the segment.
type Seek struct {
	ID       []byte
	Position uint64
}

// SeekHead is the seek table.
type SeekHead struct {
	Positions []Seek
}

// Info is the segment information block.
type Info struct {
	SegmentUID      *uuid.UUID
	SegmentFilename *string
	PrevUID         *uuid.UUID
	NextUID         *uuid.UUID
	TimecodeScale   uint64
	Duration        *float64
	DateUTC         *int64
	Title           *string
	MuxingApp       string
	WritingApp      string
}

// VideoTrack is the video settings of a track entry.
type VideoTrack struct {
	FlagInterlaced uint64
	StereoMode     uint64
	PixelWidth     uint64
	PixelHeight    uint64
	DisplayWidth   *uint64
	DisplayHeight  *uint64
	DisplayUnit    uint64
}

// AudioTrack is the audio settings of a track entry.
type AudioTrack struct {
	SamplingFrequency       float64
	OutputSamplingFrequency *float64
	Channels                uint64
	BitDepth                *uint64
}

// TrackEntry describes one track.
type TrackEntry struct {
	Number          uint64
	UID             uint64
	Type            uint64
	FlagEnabled     uint64
	FlagDefault     uint64
	FlagForced      uint64
	FlagLacing      uint64
	DefaultDuration *uint64
	Name            *string
	Language        string
	CodecID         string
	CodecPrivate    []byte
	CodecName       *string
	Video           *VideoTrack
	Audio           *AudioTrack
}

// Tracks is the track list.
type Tracks struct {
	Entries []TrackEntry
}

// Cluster is the structural summary of one cluster. Block payloads are
// counted, never decoded.
type Cluster struct {
	Timecode         uint64
	Position         *uint64
	PrevSize         *uint64
	SimpleBlockCount int
	BlockGroupCount  int
}

// Void is top-level filler of the given payload size.
type Void struct {
	Size uint64
}

// Unknown is a top-level element whose ID the grammar does not handle.
// Size is nil when the element declares an unknown size. Only the ID
// and size header have been examined; the payload may not be in the
// window.
type Unknown struct {
	ID   uint32
	Size *uint64
}

func (*SeekHead) segmentElement() {}
func (*Info) segmentElement()     {}
func (*Tracks) segmentElement()   {}
func (*Cluster) segmentElement()  {}
func (Void) segmentElement()      {}
func (Unknown) segmentElement()   {}

// ParseSegmentElement decodes one top-level segment child at the start
// of b. Three outcomes: (consumed, element, nil) on success;
// ErrNeedMoreData when the window ends before the element does (no
// bytes consumed, refill and retry); *DecodeError on malformed framing.
func ParseSegmentElement(b []byte) (int, SegmentElement, error) {
	id, size, known, n, err := readElement(b)
	if err != nil {
		return 0, nil, err
	}

	switch id {
	case ElementSeekHead.ID, ElementInfo.ID, ElementTracks.ID,
		ElementCluster.ID, ElementVoid.ID:
		if !known {
			return 0, nil, decodeErrorf("element %#x has unknown size", id)
		}
		if size > uint64(len(b)-n) {
			return 0, nil, ErrNeedMoreData
		}
	default:
		// Both scan phases terminate on unknown elements, so the
		// payload is never needed.
		el := Unknown{ID: id}
		if known {
			el.Size = &size
		}
		return n, el, nil
	}

	payload := b[n : uint64(n)+size]
	consumed := n + int(size)

	switch id {
	case ElementSeekHead.ID:
		el, err := parseSeekHead(payload)
		return consumed, el, err
	case ElementInfo.ID:
		el, err := parseInfo(payload)
		return consumed, el, err
	case ElementTracks.ID:
		el, err := parseTracks(payload)
		return consumed, el, err
	case ElementCluster.ID:
		el, err := parseCluster(payload)
		return consumed, el, err
	default: // ElementVoid
		return consumed, Void{Size: size}, nil
	}
}

func parseSeekHead(payload []byte) (*SeekHead, error) {
	sh := &SeekHead{}
	err := eachChild(payload, func(reg ElementRegister, body []byte) error {
		if reg.ID != ElementSeek.ID {
			return nil
		}
		var seek Seek
		err := eachChild(body, func(reg ElementRegister, body []byte) error {
			var err error
			switch reg.ID {
			case ElementSeekID.ID:
				seek.ID = append([]byte(nil), body...)
			case ElementSeekPosition.ID:
				seek.Position, err = decodeUint(body)
			}
			return err
		})
		if err != nil {
			return err
		}
		sh.Positions = append(sh.Positions, seek)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sh, nil
}

func parseInfo(payload []byte) (*Info, error) {
	info := &Info{TimecodeScale: 1000000}
	err := eachChild(payload, func(reg ElementRegister, body []byte) error {
		var err error
		switch reg.ID {
		case ElementSegmentUID.ID:
			info.SegmentUID, err = decodeUID(body)
		case ElementSegmentFilename.ID:
			s := decodeString(body)
			info.SegmentFilename = &s
		case ElementPrevUID.ID:
			info.PrevUID, err = decodeUID(body)
		case ElementNextUID.ID:
			info.NextUID, err = decodeUID(body)
		case ElementTimecodeScale.ID:
			info.TimecodeScale, err = decodeUint(body)
		case ElementDuration.ID:
			var f float64
			if f, err = decodeFloat(body); err == nil {
				info.Duration = &f
			}
		case ElementDateUTC.ID:
			var d int64
			if d, err = decodeDate(body); err == nil {
				info.DateUTC = &d
			}
		case ElementTitle.ID:
			s := decodeString(body)
			info.Title = &s
		case ElementMuxingApp.ID:
			info.MuxingApp = decodeString(body)
		case ElementWritingApp.ID:
			info.WritingApp = decodeString(body)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return info, nil
}

func decodeUID(body []byte) (*uuid.UUID, error) {
	u, err := uuid.FromBytes(body)
	if err != nil {
		return nil, decodeErrorf("segment UID of %d bytes", len(body))
	}
	return &u, nil
}

func parseTracks(payload []byte) (*Tracks, error) {
	t := &Tracks{}
	err := eachChild(payload, func(reg ElementRegister, body []byte) error {
		if reg.ID != ElementTrackEntry.ID {
			return nil
		}
		entry, err := parseTrackEntry(body)
		if err != nil {
			return err
		}
		t.Entries = append(t.Entries, *entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func parseTrackEntry(payload []byte) (*TrackEntry, error) {
	entry := &TrackEntry{
		FlagEnabled: 1,
		FlagDefault: 1,
		FlagLacing:  1,
		Language:    "eng",
	}
	err := eachChild(payload, func(reg ElementRegister, body []byte) error {
		var err error
		switch reg.ID {
		case ElementTrackNumber.ID:
			entry.Number, err = decodeUint(body)
		case ElementTrackUID.ID:
			entry.UID, err = decodeUint(body)
		case ElementTrackType.ID:
			entry.Type, err = decodeUint(body)
		case ElementFlagEnabled.ID:
			entry.FlagEnabled, err = decodeUint(body)
		case ElementFlagDefault.ID:
			entry.FlagDefault, err = decodeUint(body)
		case ElementFlagForced.ID:
			entry.FlagForced, err = decodeUint(body)
		case ElementFlagLacing.ID:
			entry.FlagLacing, err = decodeUint(body)
		case ElementDefaultDuration.ID:
			var v uint64
			if v, err = decodeUint(body); err == nil {
				entry.DefaultDuration = &v
			}
		case ElementName.ID:
			s := decodeString(body)
			entry.Name = &s
		case ElementLanguage.ID:
			entry.Language = decodeString(body)
		case ElementCodecID.ID:
			entry.CodecID = decodeString(body)
		case ElementCodecPrivate.ID:
			entry.CodecPrivate = append([]byte(nil), body...)
		case ElementCodecName.ID:
			s := decodeString(body)
			entry.CodecName = &s
		case ElementVideo.ID:
			entry.Video, err = parseVideoTrack(body)
		case ElementAudio.ID:
			entry.Audio, err = parseAudioTrack(body)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func parseVideoTrack(payload []byte) (*VideoTrack, error) {
	v := &VideoTrack{}
	err := eachChild(payload, func(reg ElementRegister, body []byte) error {
		var err error
		switch reg.ID {
		case ElementFlagInterlaced.ID:
			v.FlagInterlaced, err = decodeUint(body)
		case ElementStereoMode.ID:
			v.StereoMode, err = decodeUint(body)
		case ElementPixelWidth.ID:
			v.PixelWidth, err = decodeUint(body)
		case ElementPixelHeight.ID:
			v.PixelHeight, err = decodeUint(body)
		case ElementDisplayWidth.ID:
			var w uint64
			if w, err = decodeUint(body); err == nil {
				v.DisplayWidth = &w
			}
		case ElementDisplayHeight.ID:
			var h uint64
			if h, err = decodeUint(body); err == nil {
				v.DisplayHeight = &h
			}
		case ElementDisplayUnit.ID:
			v.DisplayUnit, err = decodeUint(body)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

func parseAudioTrack(payload []byte) (*AudioTrack, error) {
	a := &AudioTrack{SamplingFrequency: 8000, Channels: 1}
	err := eachChild(payload, func(reg ElementRegister, body []byte) error {
		var err error
		switch reg.ID {
		case ElementSamplingFrequency.ID:
			a.SamplingFrequency, err = decodeFloat(body)
		case ElementOutputSamplingFrequency.ID:
			var f float64
			if f, err = decodeFloat(body); err == nil {
				a.OutputSamplingFrequency = &f
			}
		case ElementChannels.ID:
			a.Channels, err = decodeUint(body)
		case ElementBitDepth.ID:
			var v uint64
			if v, err = decodeUint(body); err == nil {
				a.BitDepth = &v
			}
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

func parseCluster(payload []byte) (*Cluster, error) {
	c := &Cluster{}
	err := eachChild(payload, func(reg ElementRegister, body []byte) error {
		var err error
		switch reg.ID {
		case ElementTimecode.ID:
			c.Timecode, err = decodeUint(body)
		case ElementPosition.ID:
			var v uint64
			if v, err = decodeUint(body); err == nil {
				c.Position = &v
			}
		case ElementPrevSize.ID:
			var v uint64
			if v, err = decodeUint(body); err == nil {
				c.PrevSize = &v
			}
		case ElementSimpleBlock.ID:
			c.SimpleBlockCount++
		case ElementBlockGroup.ID:
			c.BlockGroupCount++
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}
