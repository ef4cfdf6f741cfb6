// Package vc2 implements a conformance-checking decoder for SMPTE ST
// 2042-1 (VC-2) bitstreams.
//
// The decoder parses the stream -> sequence -> data unit -> picture /
// fragment -> slice hierarchy bit by bit and checks every structural,
// numeric and sequencing rule the standard imposes. Rather than a
// generic "parse failed", each violation is reported as a distinct typed
// error carrying the offending values and stream offsets needed to
// explain exactly which rule was broken, where, and why.
//
// Basic usage:
//
//	f, _ := os.Open("stream.vc2")
//	d := vc2.NewDecoder(f, &vc2.DecoderOptions{
//	    OnPicture: func(p *vc2.Picture) error {
//	        fmt.Println("picture", p.Number)
//	        return nil
//	    },
//	})
//	if err := d.DecodeStream(); err != nil {
//	    var cerr vc2.ConformanceError
//	    if errors.As(err, &cerr) {
//	        fmt.Println("stream is not conformant:", err)
//	    }
//	}
package vc2

// ParseInfoPrefix is the 4-byte magic identifying a parse_info header
// ("BBCD" in ASCII).
const ParseInfoPrefix = 0x42424344

// ParseInfoHeaderBytes is the encoded size of a parse_info header.
const ParseInfoHeaderBytes = 13

// ParseCode identifies the kind of a data unit (Table 10.1).
type ParseCode uint8

// Parse code constants from (Table 10.1).
const (
	ParseCodeSequenceHeader             ParseCode = 0x00
	ParseCodeEndOfSequence              ParseCode = 0x10
	ParseCodeAuxiliaryData              ParseCode = 0x20
	ParseCodePaddingData                ParseCode = 0x30
	ParseCodeLowDelayPicture            ParseCode = 0xC8
	ParseCodeHighQualityPicture         ParseCode = 0xE8
	ParseCodeLowDelayPictureFragment    ParseCode = 0xCC
	ParseCodeHighQualityPictureFragment ParseCode = 0xEC
)

// IsValid reports whether the parse code is one of the recognized
// values.
func (c ParseCode) IsValid() bool {
	switch c {
	case ParseCodeSequenceHeader, ParseCodeEndOfSequence,
		ParseCodeAuxiliaryData, ParseCodePaddingData,
		ParseCodeLowDelayPicture, ParseCodeHighQualityPicture,
		ParseCodeLowDelayPictureFragment, ParseCodeHighQualityPictureFragment:
		return true
	}
	return false
}

// Classification predicates from (Table 10.2).

// IsSequenceHeader reports whether the unit is a sequence header.
func (c ParseCode) IsSequenceHeader() bool { return c == ParseCodeSequenceHeader }

// IsEndOfSequence reports whether the unit terminates a sequence.
func (c ParseCode) IsEndOfSequence() bool { return c == ParseCodeEndOfSequence }

// IsAuxiliaryData reports whether the unit carries auxiliary data.
func (c ParseCode) IsAuxiliaryData() bool { return c&0xF8 == 0x20 }

// IsPaddingData reports whether the unit is padding.
func (c ParseCode) IsPaddingData() bool { return c == ParseCodePaddingData }

// IsPicture reports whether the unit is a (non-fragment) picture.
func (c ParseCode) IsPicture() bool { return c&0x8C == 0x88 }

// IsLowDelayPicture reports whether the unit is a low-delay picture.
func (c ParseCode) IsLowDelayPicture() bool { return c&0xFC == 0xC8 }

// IsHighQualityPicture reports whether the unit is a high-quality
// picture.
func (c ParseCode) IsHighQualityPicture() bool { return c&0xFC == 0xE8 }

// IsFragment reports whether the unit is a picture fragment.
func (c ParseCode) IsFragment() bool { return c&0x0C == 0x0C }

// IsLowDelayFragment reports whether the unit is a low-delay fragment.
func (c ParseCode) IsLowDelayFragment() bool { return c&0xFC == 0xCC }

// IsHighQualityFragment reports whether the unit is a high-quality
// fragment.
func (c ParseCode) IsHighQualityFragment() bool { return c&0xFC == 0xEC }

// IsLowDelay reports whether the unit carries low-delay slices.
func (c ParseCode) IsLowDelay() bool { return c.IsLowDelayPicture() || c.IsLowDelayFragment() }

// IsHighQuality reports whether the unit carries high-quality slices.
func (c ParseCode) IsHighQuality() bool { return c.IsHighQualityPicture() || c.IsHighQualityFragment() }

// UsingDCPrediction reports whether pictures with this parse code apply
// DC coefficient prediction.
func (c ParseCode) UsingDCPrediction() bool { return c&0x28 == 0x08 }

// Symbol returns the name used for this parse code in sequence
// restriction patterns.
func (c ParseCode) Symbol() string {
	switch c {
	case ParseCodeSequenceHeader:
		return "sequence_header"
	case ParseCodeEndOfSequence:
		return "end_of_sequence"
	case ParseCodeAuxiliaryData:
		return "auxiliary_data"
	case ParseCodePaddingData:
		return "padding_data"
	case ParseCodeLowDelayPicture:
		return "low_delay_picture"
	case ParseCodeHighQualityPicture:
		return "high_quality_picture"
	case ParseCodeLowDelayPictureFragment:
		return "low_delay_picture_fragment"
	case ParseCodeHighQualityPictureFragment:
		return "high_quality_picture_fragment"
	default:
		return "unknown"
	}
}

// String returns the human-readable name of the parse code.
func (c ParseCode) String() string { return c.Symbol() }

// Profile identifies a VC-2 profile (C.2).
type Profile uint64

// Profiles from (C.2).
const (
	ProfileLowDelay    Profile = 0
	ProfileHighQuality Profile = 3
)

// IsValid reports whether the profile is a supported value.
func (p Profile) IsValid() bool {
	return p == ProfileLowDelay || p == ProfileHighQuality
}

// String returns the profile's name.
func (p Profile) String() string {
	switch p {
	case ProfileLowDelay:
		return "low_delay"
	case ProfileHighQuality:
		return "high_quality"
	default:
		return "unknown"
	}
}

// Level identifies a VC-2 conformance level (C.3).
type Level uint64

// Levels from (SMPTE ST 2042-2) and the specialized level recommended
// practices (SMPTE RP 2047-1, -3, -5).
const (
	LevelUnconstrained Level = 0

	LevelSubSD           Level = 1
	LevelSD              Level = 2
	LevelHD              Level = 3
	LevelDigitalCinema2K Level = 4
	LevelDigitalCinema4K Level = 5
	LevelUHDTV4K         Level = 6
	LevelUHDTV8K         Level = 7

	LevelP60HDOverSingleLinkSDI Level = 64
	LevelHDOverSDSDI            Level = 65
	LevelUHDOverHDSDI           Level = 66
)

// IsValid reports whether the level is a supported value.
func (l Level) IsValid() bool {
	switch l {
	case LevelUnconstrained, LevelSubSD, LevelSD, LevelHD,
		LevelDigitalCinema2K, LevelDigitalCinema4K,
		LevelUHDTV4K, LevelUHDTV8K,
		LevelP60HDOverSingleLinkSDI, LevelHDOverSDSDI, LevelUHDOverHDSDI:
		return true
	}
	return false
}

// String returns the level's name.
func (l Level) String() string {
	switch l {
	case LevelUnconstrained:
		return "unconstrained"
	case LevelSubSD:
		return "sub_sd"
	case LevelSD:
		return "sd"
	case LevelHD:
		return "hd"
	case LevelDigitalCinema2K:
		return "digital_cinema_2k"
	case LevelDigitalCinema4K:
		return "digital_cinema_4k"
	case LevelUHDTV4K:
		return "uhdtv_4k"
	case LevelUHDTV8K:
		return "uhdtv_8k"
	case LevelP60HDOverSingleLinkSDI:
		return "p60_hd_over_single_link_sdi"
	case LevelHDOverSDSDI:
		return "hd_over_sd_sdi"
	case LevelUHDOverHDSDI:
		return "uhd_over_hd_sdi"
	default:
		return "unknown"
	}
}

// BaseVideoFormat indexes the base video format table (Table 11.1).
type BaseVideoFormat uint64

// Base video formats from (Table 11.1).
const (
	BaseFormatCustom BaseVideoFormat = iota
	BaseFormatQSIF525
	BaseFormatQCIF
	BaseFormatSIF525
	BaseFormatCIF
	BaseFormat4SIF525
	BaseFormat4CIF
	BaseFormatSD480I60
	BaseFormatSD576I50
	BaseFormatHD720P60
	BaseFormatHD720P50
	BaseFormatHD1080I60
	BaseFormatHD1080I50
	BaseFormatHD1080P60
	BaseFormatHD1080P50
	BaseFormatDC2K
	BaseFormatDC4K
	BaseFormatUHDTV4K60
	BaseFormatUHDTV4K50
	BaseFormatUHDTV8K60
	BaseFormatUHDTV8K50
	BaseFormatHD1080P24
	BaseFormatSDPro486
)

// IsValid reports whether the index is a defined base video format.
func (f BaseVideoFormat) IsValid() bool { return f <= BaseFormatSDPro486 }

// PictureCodingMode states whether pictures are frames or fields
// (11.5).
type PictureCodingMode uint64

// Picture coding modes.
const (
	PicturesAreFrames PictureCodingMode = 0
	PicturesAreFields PictureCodingMode = 1
)

// IsValid reports whether the mode is defined.
func (m PictureCodingMode) IsValid() bool { return m <= PicturesAreFields }

// ColorDiffFormat indexes the color difference sampling formats
// (Table 11.2).
type ColorDiffFormat uint64

// Color difference sampling formats.
const (
	ColorDiff444 ColorDiffFormat = 0
	ColorDiff422 ColorDiffFormat = 1
	ColorDiff420 ColorDiffFormat = 2
)

// IsValid reports whether the index is defined.
func (f ColorDiffFormat) IsValid() bool { return f <= ColorDiff420 }

// SourceSampling states whether the source is progressive or
// interlaced (11.4.5).
type SourceSampling uint64

// Source sampling modes.
const (
	SamplingProgressive SourceSampling = 0
	SamplingInterlaced  SourceSampling = 1
)

// IsValid reports whether the mode is defined.
func (s SourceSampling) IsValid() bool { return s <= SamplingInterlaced }

// WaveletFilter indexes the wavelet filter types (Table 12.1).
type WaveletFilter uint64

// Wavelet filters.
const (
	WaveletDeslauriersDubuc97  WaveletFilter = 0
	WaveletLeGall53            WaveletFilter = 1
	WaveletDeslauriersDubuc137 WaveletFilter = 2
	WaveletHaarNoShift         WaveletFilter = 3
	WaveletHaarWithShift       WaveletFilter = 4
	WaveletFidelity            WaveletFilter = 5
	WaveletDaubechies97        WaveletFilter = 6
)

// IsValid reports whether the index is a defined wavelet filter.
func (w WaveletFilter) IsValid() bool { return w <= WaveletDaubechies97 }

// String returns the filter's name.
func (w WaveletFilter) String() string {
	switch w {
	case WaveletDeslauriersDubuc97:
		return "deslauriers_dubuc_9_7"
	case WaveletLeGall53:
		return "le_gall_5_3"
	case WaveletDeslauriersDubuc137:
		return "deslauriers_dubuc_13_7"
	case WaveletHaarNoShift:
		return "haar_no_shift"
	case WaveletHaarWithShift:
		return "haar_with_shift"
	case WaveletFidelity:
		return "fidelity"
	case WaveletDaubechies97:
		return "daubechies_9_7"
	default:
		return "unknown"
	}
}

// Preset index types for the source parameter override tables (11.4).

// PresetFrameRate indexes (Table 11.3).
type PresetFrameRate uint64

// IsValid reports whether the index is defined. Index 0 selects a
// custom rate and is valid only where the syntax allows it.
func (p PresetFrameRate) IsValid() bool { return p >= 1 && p <= 16 }

// PresetPixelAspectRatio indexes (Table 11.4).
type PresetPixelAspectRatio uint64

// IsValid reports whether the index is defined.
func (p PresetPixelAspectRatio) IsValid() bool { return p >= 1 && p <= 6 }

// PresetSignalRange indexes (Table 11.5).
type PresetSignalRange uint64

// IsValid reports whether the index is defined.
func (p PresetSignalRange) IsValid() bool { return p >= 1 && p <= 8 }

// PresetColorSpec indexes (Table 11.6).
type PresetColorSpec uint64

// IsValid reports whether the index is defined.
func (p PresetColorSpec) IsValid() bool { return p <= 7 }

// PresetColorPrimaries indexes (Table 11.7).
type PresetColorPrimaries uint64

// IsValid reports whether the index is defined.
func (p PresetColorPrimaries) IsValid() bool { return p <= 4 }

// PresetColorMatrix indexes (Table 11.8).
type PresetColorMatrix uint64

// IsValid reports whether the index is defined.
func (p PresetColorMatrix) IsValid() bool { return p <= 4 }

// PresetTransferFunction indexes (Table 11.9).
type PresetTransferFunction uint64

// IsValid reports whether the index is defined.
func (p PresetTransferFunction) IsValid() bool { return p <= 5 }
