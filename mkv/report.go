package mkv

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mediakit/mkvscan/mkv/mkvio"
)

// Reporter renders decoded elements. Calls arrive in file order, one
// per dispatched element; nothing the reporter does feeds back into
// the scan.
type Reporter interface {
	EBMLHeader(h *mkvio.Header)
	Segment(s *mkvio.Segment)
	SeekHead(sh *mkvio.SeekHead, size int)
	Info(i *mkvio.Info)
	Tracks(t *mkvio.Tracks)
	Cluster(c *mkvio.Cluster)
	Void(size uint64)
}

// TextReporter writes mkvinfo-style structure lines to a writer.
type TextReporter struct {
	w io.Writer
}

func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

func (r *TextReporter) EBMLHeader(h *mkvio.Header) {
	fmt.Fprintln(r.w, "+ EBML head")
	fmt.Fprintf(r.w, "|+ EBML version: %d\n", h.Version)
	fmt.Fprintf(r.w, "|+ EBML read version: %d\n", h.ReadVersion)
	fmt.Fprintf(r.w, "|+ Maximum EBML ID length: %d\n", h.MaxIDLength)
	fmt.Fprintf(r.w, "|+ Maximum EBML size length: %d\n", h.MaxSizeLength)
	fmt.Fprintf(r.w, "|+ Document type: %s\n", h.DocType)
	fmt.Fprintf(r.w, "|+ Document type version: %d\n", h.DocTypeVersion)
	fmt.Fprintf(r.w, "|+ Document type read version: %d\n", h.DocTypeReadVersion)
}

func (r *TextReporter) Segment(s *mkvio.Segment) {
	var size uint64
	if s.Size != nil {
		size = *s.Size
	}
	fmt.Fprintf(r.w, "+ Segment, size %d\n", size)
}

func (r *TextReporter) SeekHead(sh *mkvio.SeekHead, size int) {
	fmt.Fprintf(r.w, "|+ Seek head, size %d\n", size)
	for _, seek := range sh.Positions {
		idSize := mkvio.EncodedSize(mkvio.ElementSeekID.ID, uint64(len(seek.ID)))
		posSize := mkvio.EncodedSize(mkvio.ElementSeekPosition.ID, mkvio.UintPayloadLen(seek.Position))
		entrySize := mkvio.EncodedSize(mkvio.ElementSeek.ID, idSize+posSize)

		fmt.Fprintf(r.w, "| + Seek entry size %d\n", entrySize)
		fmt.Fprintf(r.w, "|  + Seek ID: %s%s size %d\n",
			formatBytes(seek.ID), seekTargetSuffix(seek.ID), idSize)
		fmt.Fprintf(r.w, "|  + Seek position: %d size %d\n", seek.Position, posSize)
	}
}

func (r *TextReporter) Info(i *mkvio.Info) {
	fmt.Fprintln(r.w, "|+ Segment information")
	uid := ""
	if i.SegmentUID != nil {
		uid = formatUID(*i.SegmentUID)
	}
	fmt.Fprintf(r.w, "| + Segment UID: %s\n", uid)
	fmt.Fprintf(r.w, "| + Timestamp scale: %d\n", i.TimecodeScale)
	if i.Duration != nil {
		nanos := *i.Duration * float64(i.TimecodeScale)
		d := time.Duration(math.Round(nanos))
		fmt.Fprintf(r.w, "| + Duration: %s\n", formatDuration(d))
	}
	fmt.Fprintf(r.w, "| + Multiplexing application: %s\n", i.MuxingApp)
	fmt.Fprintf(r.w, "| + Writing application: %s\n", i.WritingApp)
	if i.DateUTC != nil {
		fmt.Fprintf(r.w, "| + Date: %s\n", formatDate(*i.DateUTC))
	}
	if i.Title != nil {
		fmt.Fprintf(r.w, "| + Title: %s\n", *i.Title)
	}
}

func (r *TextReporter) Tracks(t *mkvio.Tracks) {
	fmt.Fprintln(r.w, "|+ Tracks")
	for _, tr := range t.Entries {
		fmt.Fprintln(r.w, "| + Track")
		fmt.Fprintf(r.w, "|  + Track number: %d\n", tr.Number)
		fmt.Fprintf(r.w, "|  + Track UID: %d\n", tr.UID)
		fmt.Fprintf(r.w, "|  + Track type: %d\n", tr.Type)
		fmt.Fprintf(r.w, "|  + Lacing flag: %d\n", tr.FlagLacing)
		fmt.Fprintf(r.w, "|  + Default flag: %d\n", tr.FlagDefault)
		fmt.Fprintf(r.w, "|  + Language: %s\n", tr.Language)
		fmt.Fprintf(r.w, "|  + Codec ID: %s\n", tr.CodecID)
		fmt.Fprintf(r.w, "|  + Codec private: length %d\n", len(tr.CodecPrivate))

		if v := tr.Video; v != nil {
			fmt.Fprintln(r.w, "|  + Video track")
			fmt.Fprintf(r.w, "|    + Pixel width: %d\n", v.PixelWidth)
			fmt.Fprintf(r.w, "|    + Pixel height: %d\n", v.PixelHeight)
			fmt.Fprintf(r.w, "|    + Interlaced: %d\n", v.FlagInterlaced)
			if v.DisplayWidth != nil {
				fmt.Fprintf(r.w, "|    + Display width: %d\n", *v.DisplayWidth)
			}
			if v.DisplayHeight != nil {
				fmt.Fprintf(r.w, "|    + Display height: %d\n", *v.DisplayHeight)
			}
			fmt.Fprintf(r.w, "|    + Display unit: %d\n", v.DisplayUnit)
		}

		if a := tr.Audio; a != nil {
			fmt.Fprintln(r.w, "|  + Audio track")
			fmt.Fprintf(r.w, "|    + Sampling frequency: %g\n", a.SamplingFrequency)
			if a.OutputSamplingFrequency != nil {
				fmt.Fprintf(r.w, "|    + Output sampling frequency: %g\n", *a.OutputSamplingFrequency)
			}
			fmt.Fprintf(r.w, "|    + Channels: %d\n", a.Channels)
			if a.BitDepth != nil {
				fmt.Fprintf(r.w, "|    + Bit depth: %d\n", *a.BitDepth)
			}
		}
	}
}

func (r *TextReporter) Cluster(c *mkvio.Cluster) {
	fmt.Fprintln(r.w, "|+ Cluster")
	fmt.Fprintf(r.w, "|+   Timestamp: %d\n", c.Timecode)
	fmt.Fprintf(r.w, "|+   Position: %s\n", formatOptUint(c.Position))
	fmt.Fprintf(r.w, "|+   Prev size: %s\n", formatOptUint(c.PrevSize))
	fmt.Fprintf(r.w, "|+   Simple block: %d elements\n", c.SimpleBlockCount)
	fmt.Fprintf(r.w, "|+   Block group: %d elements\n", c.BlockGroupCount)
}

func (r *TextReporter) Void(size uint64) {
	fmt.Fprintf(r.w, "|+ EbmlVoid (size: %d)\n", size)
}

func seekTargetSuffix(id []byte) string {
	if name := mkvio.SeekTargetName(id); name != "" {
		return " (" + name + ")"
	}
	return ""
}

func formatBytes(b []byte) string {
	parts := make([]string, len(b))
	for i, c := range b {
		parts[i] = fmt.Sprintf("%d", c)
	}
	return strings.Join(parts, " ")
}

func formatUID(uid uuid.UUID) string {
	parts := make([]string, len(uid))
	for i, b := range uid {
		parts[i] = fmt.Sprintf("%#x", b)
	}
	return strings.Join(parts, " ")
}

func formatDuration(d time.Duration) string {
	total := d.Seconds()
	hrs := int(total) / 3600
	mins := (int(total) % 3600) / 60
	secs := total - float64(hrs*3600+mins*60)
	return fmt.Sprintf("%02d:%02d:%012.9f", hrs, mins, secs)
}

// Matroska dates count nanoseconds from 2001-01-01T00:00:00 UTC.
func formatDate(nanos int64) string {
	base := time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)
	return base.Add(time.Duration(nanos)).Format(time.RFC3339)
}

func formatOptUint(v *uint64) string {
	if v == nil {
		return "none"
	}
	return fmt.Sprintf("%d", *v)
}
