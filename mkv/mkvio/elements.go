package mkvio

const (
	ElementTypeUnknown uint8 = 0x0
	ElementTypeMaster  uint8 = 0x1
	ElementTypeUint    uint8 = 0x2
	ElementTypeInt     uint8 = 0x3
	ElementTypeString  uint8 = 0x4
	ElementTypeUnicode uint8 = 0x5
	ElementTypeBinary  uint8 = 0x6
	ElementTypeFloat   uint8 = 0x7
	ElementTypeDate    uint8 = 0x8
)

// ElementRegister contains the ID, type and name of the
// standard WebM/Matroska elements
type ElementRegister struct {
	ID   uint32
	Type uint8
	Name string
}

var (
	ElementUnknown            = ElementRegister{0x0, ElementTypeUnknown, "Unknown"}
	ElementEBML               = ElementRegister{0x1a45dfa3, ElementTypeMaster, "EBML"}
	ElementEBMLVersion        = ElementRegister{0x4286, ElementTypeUint, "EBMLVersion"}
	ElementEBMLReadVersion    = ElementRegister{0x42f7, ElementTypeUint, "EBMLReadVersion"}
	ElementEBMLMaxIDLength    = ElementRegister{0x42f2, ElementTypeUint, "EBMLMaxIDLength"}
	ElementEBMLMaxSizeLength  = ElementRegister{0x42f3, ElementTypeUint, "EBMLMaxSizeLength"}
	ElementDocType            = ElementRegister{0x4282, ElementTypeString, "DocType"}
	ElementDocTypeVersion     = ElementRegister{0x4287, ElementTypeUint, "DocTypeVersion"}
	ElementDocTypeReadVersion = ElementRegister{0x4285, ElementTypeUint, "DocTypeReadVersion"}
	ElementVoid               = ElementRegister{0xec, ElementTypeBinary, "Void"}
	ElementCRC32              = ElementRegister{0xbf, ElementTypeBinary, "CRC-32"}

	ElementSegment      = ElementRegister{0x18538067, ElementTypeMaster, "Segment"}
	ElementSeekHead     = ElementRegister{0x114d9b74, ElementTypeMaster, "SeekHead"}
	ElementSeek         = ElementRegister{0x4dbb, ElementTypeMaster, "Seek"}
	ElementSeekID       = ElementRegister{0x53ab, ElementTypeBinary, "SeekID"}
	ElementSeekPosition = ElementRegister{0x53ac, ElementTypeUint, "SeekPosition"}

	ElementInfo            = ElementRegister{0x1549a966, ElementTypeMaster, "Info"}
	ElementSegmentUID      = ElementRegister{0x73a4, ElementTypeBinary, "SegmentUID"}
	ElementSegmentFilename = ElementRegister{0x7384, ElementTypeUnicode, "SegmentFilename"}
	ElementPrevUID         = ElementRegister{0x3cb923, ElementTypeBinary, "PrevUID"}
	ElementNextUID         = ElementRegister{0x3eb923, ElementTypeBinary, "NextUID"}
	ElementTimecodeScale   = ElementRegister{0x2ad7b1, ElementTypeUint, "TimecodeScale"}
	ElementDuration        = ElementRegister{0x4489, ElementTypeFloat, "Duration"}
	ElementDateUTC         = ElementRegister{0x4461, ElementTypeDate, "DateUTC"}
	ElementTitle           = ElementRegister{0x7ba9, ElementTypeUnicode, "Title"}
	ElementMuxingApp       = ElementRegister{0x4d80, ElementTypeUnicode, "MuxingApp"}
	ElementWritingApp      = ElementRegister{0x5741, ElementTypeUnicode, "WritingApp"}

	ElementCluster     = ElementRegister{0x1f43b675, ElementTypeMaster, "Cluster"}
	ElementTimecode    = ElementRegister{0xe7, ElementTypeUint, "Timecode"}
	ElementPosition    = ElementRegister{0xa7, ElementTypeUint, "Position"}
	ElementPrevSize    = ElementRegister{0xab, ElementTypeUint, "PrevSize"}
	ElementSimpleBlock = ElementRegister{0xa3, ElementTypeBinary, "SimpleBlock"}
	ElementBlockGroup  = ElementRegister{0xa0, ElementTypeMaster, "BlockGroup"}

	ElementTracks          = ElementRegister{0x1654ae6b, ElementTypeMaster, "Tracks"}
	ElementTrackEntry      = ElementRegister{0xae, ElementTypeMaster, "TrackEntry"}
	ElementTrackNumber     = ElementRegister{0xd7, ElementTypeUint, "TrackNumber"}
	ElementTrackUID        = ElementRegister{0x73c5, ElementTypeUint, "TrackUID"}
	ElementTrackType       = ElementRegister{0x83, ElementTypeUint, "TrackType"}
	ElementFlagEnabled     = ElementRegister{0xb9, ElementTypeUint, "FlagEnabled"}
	ElementFlagDefault     = ElementRegister{0x88, ElementTypeUint, "FlagDefault"}
	ElementFlagForced      = ElementRegister{0x55aa, ElementTypeUint, "FlagForced"}
	ElementFlagLacing      = ElementRegister{0x9c, ElementTypeUint, "FlagLacing"}
	ElementDefaultDuration = ElementRegister{0x23e383, ElementTypeUint, "DefaultDuration"}
	ElementName            = ElementRegister{0x536e, ElementTypeUnicode, "Name"}
	ElementLanguage        = ElementRegister{0x22b59c, ElementTypeString, "Language"}
	ElementCodecID         = ElementRegister{0x86, ElementTypeString, "CodecID"}
	ElementCodecPrivate    = ElementRegister{0x63a2, ElementTypeBinary, "CodecPrivate"}
	ElementCodecName       = ElementRegister{0x258688, ElementTypeUnicode, "CodecName"}

	ElementVideo          = ElementRegister{0xe0, ElementTypeMaster, "Video"}
	ElementFlagInterlaced = ElementRegister{0x9a, ElementTypeUint, "FlagInterlaced"}
	ElementStereoMode     = ElementRegister{0x53b8, ElementTypeUint, "StereoMode"}
	ElementPixelWidth     = ElementRegister{0xb0, ElementTypeUint, "PixelWidth"}
	ElementPixelHeight    = ElementRegister{0xba, ElementTypeUint, "PixelHeight"}
	ElementDisplayWidth   = ElementRegister{0x54b0, ElementTypeUint, "DisplayWidth"}
	ElementDisplayHeight  = ElementRegister{0x54ba, ElementTypeUint, "DisplayHeight"}
	ElementDisplayUnit    = ElementRegister{0x54b2, ElementTypeUint, "DisplayUnit"}

	ElementAudio                   = ElementRegister{0xe1, ElementTypeMaster, "Audio"}
	ElementSamplingFrequency       = ElementRegister{0xb5, ElementTypeFloat, "SamplingFrequency"}
	ElementOutputSamplingFrequency = ElementRegister{0x78b5, ElementTypeFloat, "OutputSamplingFrequency"}
	ElementChannels                = ElementRegister{0x9f, ElementTypeUint, "Channels"}
	ElementBitDepth                = ElementRegister{0x6264, ElementTypeUint, "BitDepth"}
)

var registry = map[uint32]ElementRegister{}

func init() {
	for _, reg := range []ElementRegister{
		ElementEBML, ElementEBMLVersion, ElementEBMLReadVersion,
		ElementEBMLMaxIDLength, ElementEBMLMaxSizeLength, ElementDocType,
		ElementDocTypeVersion, ElementDocTypeReadVersion, ElementVoid,
		ElementCRC32, ElementSegment, ElementSeekHead, ElementSeek,
		ElementSeekID, ElementSeekPosition, ElementInfo, ElementSegmentUID,
		ElementSegmentFilename, ElementPrevUID, ElementNextUID,
		ElementTimecodeScale, ElementDuration, ElementDateUTC, ElementTitle,
		ElementMuxingApp, ElementWritingApp, ElementCluster, ElementTimecode,
		ElementPosition, ElementPrevSize, ElementSimpleBlock,
		ElementBlockGroup, ElementTracks, ElementTrackEntry,
		ElementTrackNumber, ElementTrackUID, ElementTrackType,
		ElementFlagEnabled, ElementFlagDefault, ElementFlagForced,
		ElementFlagLacing, ElementDefaultDuration, ElementName,
		ElementLanguage, ElementCodecID, ElementCodecPrivate,
		ElementCodecName, ElementVideo, ElementFlagInterlaced,
		ElementStereoMode, ElementPixelWidth, ElementPixelHeight,
		ElementDisplayWidth, ElementDisplayHeight, ElementDisplayUnit,
		ElementAudio, ElementSamplingFrequency,
		ElementOutputSamplingFrequency, ElementChannels, ElementBitDepth,
	} {
		registry[reg.ID] = reg
	}
}

// GetElementRegister returns the infos concerning the provided element ID
func GetElementRegister(id uint32) ElementRegister {
	if reg, ok := registry[id]; ok {
		return reg
	}
	return ElementUnknown
}

// SeekTargetName returns the libmatroska class name for a seek target
// ID, or the empty string when the target is not one of the well-known
// top-level elements.
func SeekTargetName(id []byte) string {
	if len(id) != 4 {
		return ""
	}
	switch uint32(pack(4, id)) {
	case ElementSeekHead.ID:
		return "KaxSeekHead"
	case 0x1254c367:
		return "KaxTags"
	case ElementInfo.ID:
		return "KaxInfo"
	case ElementTracks.ID:
		return "KaxTracks"
	case 0x1c53bb6b:
		return "KaxCues"
	case ElementCluster.ID:
		return "KaxCluster"
	default:
		return ""
	}
}
