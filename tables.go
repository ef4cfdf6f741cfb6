package vc2

// Rational is an exact num/denom ratio, used for frame rates and pixel
// aspect ratios.
type Rational struct {
	Num, Den int
}

// profileParams describes a profile (C.2).
type profileParams struct {
	allowedDataUnits []ParseCode
}

// Allows reports whether the profile permits data units with the given
// parse code.
func (p profileParams) Allows(code ParseCode) bool {
	for _, c := range p.allowedDataUnits {
		if c == code {
			return true
		}
	}
	return false
}

// profiles lists the supported profiles (C.2.2, C.2.3).
var profiles = map[Profile]profileParams{
	ProfileLowDelay: {allowedDataUnits: []ParseCode{
		ParseCodeSequenceHeader,
		ParseCodeEndOfSequence,
		ParseCodeAuxiliaryData,
		ParseCodePaddingData,
		ParseCodeLowDelayPicture,
		ParseCodeLowDelayPictureFragment,
	}},
	ProfileHighQuality: {allowedDataUnits: []ParseCode{
		ParseCodeSequenceHeader,
		ParseCodeEndOfSequence,
		ParseCodeAuxiliaryData,
		ParseCodePaddingData,
		ParseCodeHighQualityPicture,
		ParseCodeHighQualityPictureFragment,
	}},
}

// presetFrameRates holds the frame-rate presets (Table 11.3).
var presetFrameRates = map[PresetFrameRate]Rational{
	1:  {24000, 1001},
	2:  {24, 1},
	3:  {25, 1},
	4:  {30000, 1001},
	5:  {30, 1},
	6:  {50, 1},
	7:  {60000, 1001},
	8:  {60, 1},
	9:  {15000, 1001},
	10: {25, 2},
	11: {48, 1},
	12: {48000, 1001},
	13: {96, 1},
	14: {100, 1},
	15: {120000, 1001},
	16: {120, 1},
}

// presetPixelAspectRatios holds the pixel aspect ratio presets
// (Table 11.4).
var presetPixelAspectRatios = map[PresetPixelAspectRatio]Rational{
	1: {1, 1},
	2: {10, 11},
	3: {12, 11},
	4: {40, 33},
	5: {16, 11},
	6: {4, 3},
}

// SignalRange is an entry in (Table 11.5).
type SignalRange struct {
	LumaOffset         uint64
	LumaExcursion      uint64
	ColorDiffOffset    uint64
	ColorDiffExcursion uint64
}

// presetSignalRanges holds the signal range presets (Table 11.5).
var presetSignalRanges = map[PresetSignalRange]SignalRange{
	1: {0, 255, 128, 255},
	2: {16, 219, 128, 224},
	3: {64, 876, 512, 896},
	4: {256, 3504, 2048, 3584},
	5: {0, 1023, 512, 1023},
	6: {0, 4095, 2048, 4095},
	7: {4096, 56064, 32768, 57344},
	8: {0, 65535, 32768, 65535},
}

// colorSpecEntry is an entry in (Table 11.6): a bundle of primaries,
// matrix and transfer function indices.
type colorSpecEntry struct {
	primaries        PresetColorPrimaries
	matrix           PresetColorMatrix
	transferFunction PresetTransferFunction
}

// presetColorSpecs holds the preset color specifications (Table 11.6).
var presetColorSpecs = map[PresetColorSpec]colorSpecEntry{
	0: {0, 0, 0}, // custom (defaults to HDTV)
	1: {1, 1, 0}, // SDTV 525
	2: {2, 1, 0}, // SDTV 625
	3: {0, 0, 0}, // HDTV
	4: {3, 2, 3}, // D-Cinema
	5: {4, 4, 0}, // UHDTV
	6: {4, 4, 4}, // HDR TV (PQ)
	7: {4, 4, 5}, // HDR TV (HLG)
}

// baseVideoFormatParams is an entry in (Table B.1a, B.1b or B.1c).
type baseVideoFormatParams struct {
	frameWidth           uint64
	frameHeight          uint64
	colorDiffFormatIndex ColorDiffFormat
	sourceSampling       SourceSampling
	topFieldFirst        bool
	frameRateIndex       PresetFrameRate
	pixelAspectRatio     PresetPixelAspectRatio
	cleanWidth           uint64
	cleanHeight          uint64
	leftOffset           uint64
	topOffset            uint64
	signalRangeIndex     PresetSignalRange
	colorSpecIndex       PresetColorSpec
}

// baseVideoFormats holds the base video format specifications
// (Table B.1a, B.1b, B.1c).
var baseVideoFormats = map[BaseVideoFormat]baseVideoFormatParams{
	BaseFormatCustom: {
		frameWidth: 640, frameHeight: 480,
		colorDiffFormatIndex: ColorDiff420,
		sourceSampling:       SamplingProgressive,
		topFieldFirst:        false,
		frameRateIndex:       1, pixelAspectRatio: 1,
		cleanWidth: 640, cleanHeight: 480, leftOffset: 0, topOffset: 0,
		signalRangeIndex: 1, colorSpecIndex: 0,
	},
	BaseFormatQSIF525: {
		frameWidth: 176, frameHeight: 120,
		colorDiffFormatIndex: ColorDiff420,
		sourceSampling:       SamplingProgressive,
		topFieldFirst:        false,
		frameRateIndex:       9, pixelAspectRatio: 2,
		cleanWidth: 176, cleanHeight: 120, leftOffset: 0, topOffset: 0,
		signalRangeIndex: 1, colorSpecIndex: 1,
	},
	BaseFormatQCIF: {
		frameWidth: 176, frameHeight: 144,
		colorDiffFormatIndex: ColorDiff420,
		sourceSampling:       SamplingProgressive,
		topFieldFirst:        true,
		frameRateIndex:       10, pixelAspectRatio: 2,
		cleanWidth: 176, cleanHeight: 144, leftOffset: 0, topOffset: 0,
		signalRangeIndex: 1, colorSpecIndex: 2,
	},
	BaseFormatSIF525: {
		frameWidth: 352, frameHeight: 240,
		colorDiffFormatIndex: ColorDiff420,
		sourceSampling:       SamplingProgressive,
		topFieldFirst:        false,
		frameRateIndex:       9, pixelAspectRatio: 2,
		cleanWidth: 352, cleanHeight: 240, leftOffset: 0, topOffset: 0,
		signalRangeIndex: 1, colorSpecIndex: 1,
	},
	BaseFormatCIF: {
		frameWidth: 352, frameHeight: 288,
		colorDiffFormatIndex: ColorDiff420,
		sourceSampling:       SamplingProgressive,
		topFieldFirst:        true,
		frameRateIndex:       10, pixelAspectRatio: 2,
		cleanWidth: 352, cleanHeight: 288, leftOffset: 0, topOffset: 0,
		signalRangeIndex: 1, colorSpecIndex: 2,
	},
	BaseFormat4SIF525: {
		frameWidth: 704, frameHeight: 480,
		colorDiffFormatIndex: ColorDiff420,
		sourceSampling:       SamplingProgressive,
		topFieldFirst:        false,
		frameRateIndex:       9, pixelAspectRatio: 2,
		cleanWidth: 704, cleanHeight: 480, leftOffset: 0, topOffset: 0,
		signalRangeIndex: 1, colorSpecIndex: 1,
	},
	BaseFormat4CIF: {
		frameWidth: 704, frameHeight: 576,
		colorDiffFormatIndex: ColorDiff420,
		sourceSampling:       SamplingProgressive,
		topFieldFirst:        true,
		frameRateIndex:       10, pixelAspectRatio: 2,
		cleanWidth: 704, cleanHeight: 576, leftOffset: 0, topOffset: 0,
		signalRangeIndex: 1, colorSpecIndex: 2,
	},
	BaseFormatSD480I60: {
		frameWidth: 720, frameHeight: 480,
		colorDiffFormatIndex: ColorDiff422,
		sourceSampling:       SamplingInterlaced,
		topFieldFirst:        false,
		frameRateIndex:       4, pixelAspectRatio: 2,
		cleanWidth: 704, cleanHeight: 480, leftOffset: 8, topOffset: 0,
		signalRangeIndex: 3, colorSpecIndex: 1,
	},
	BaseFormatSD576I50: {
		frameWidth: 720, frameHeight: 576,
		colorDiffFormatIndex: ColorDiff422,
		sourceSampling:       SamplingInterlaced,
		topFieldFirst:        true,
		frameRateIndex:       3, pixelAspectRatio: 2,
		cleanWidth: 704, cleanHeight: 576, leftOffset: 8, topOffset: 0,
		signalRangeIndex: 3, colorSpecIndex: 2,
	},
	BaseFormatHD720P60: {
		frameWidth: 1280, frameHeight: 720,
		colorDiffFormatIndex: ColorDiff422,
		sourceSampling:       SamplingProgressive,
		topFieldFirst:        true,
		frameRateIndex:       7, pixelAspectRatio: 1,
		cleanWidth: 1280, cleanHeight: 720, leftOffset: 0, topOffset: 0,
		signalRangeIndex: 3, colorSpecIndex: 3,
	},
	BaseFormatHD720P50: {
		frameWidth: 1280, frameHeight: 720,
		colorDiffFormatIndex: ColorDiff422,
		sourceSampling:       SamplingProgressive,
		topFieldFirst:        true,
		frameRateIndex:       6, pixelAspectRatio: 1,
		cleanWidth: 1280, cleanHeight: 720, leftOffset: 0, topOffset: 0,
		signalRangeIndex: 3, colorSpecIndex: 3,
	},
	BaseFormatHD1080I60: {
		frameWidth: 1920, frameHeight: 1080,
		colorDiffFormatIndex: ColorDiff422,
		sourceSampling:       SamplingInterlaced,
		topFieldFirst:        true,
		frameRateIndex:       4, pixelAspectRatio: 1,
		cleanWidth: 1920, cleanHeight: 1080, leftOffset: 0, topOffset: 0,
		signalRangeIndex: 3, colorSpecIndex: 3,
	},
	BaseFormatHD1080I50: {
		frameWidth: 1920, frameHeight: 1080,
		colorDiffFormatIndex: ColorDiff422,
		sourceSampling:       SamplingInterlaced,
		topFieldFirst:        true,
		frameRateIndex:       3, pixelAspectRatio: 1,
		cleanWidth: 1920, cleanHeight: 1080, leftOffset: 0, topOffset: 0,
		signalRangeIndex: 3, colorSpecIndex: 3,
	},
	BaseFormatHD1080P60: {
		frameWidth: 1920, frameHeight: 1080,
		colorDiffFormatIndex: ColorDiff422,
		sourceSampling:       SamplingProgressive,
		topFieldFirst:        true,
		frameRateIndex:       7, pixelAspectRatio: 1,
		cleanWidth: 1920, cleanHeight: 1080, leftOffset: 0, topOffset: 0,
		signalRangeIndex: 3, colorSpecIndex: 3,
	},
	BaseFormatHD1080P50: {
		frameWidth: 1920, frameHeight: 1080,
		colorDiffFormatIndex: ColorDiff422,
		sourceSampling:       SamplingProgressive,
		topFieldFirst:        true,
		frameRateIndex:       6, pixelAspectRatio: 1,
		cleanWidth: 1920, cleanHeight: 1080, leftOffset: 0, topOffset: 0,
		signalRangeIndex: 3, colorSpecIndex: 3,
	},
	BaseFormatDC2K: {
		frameWidth: 2048, frameHeight: 1080,
		colorDiffFormatIndex: ColorDiff444,
		sourceSampling:       SamplingProgressive,
		topFieldFirst:        true,
		frameRateIndex:       2, pixelAspectRatio: 1,
		cleanWidth: 2048, cleanHeight: 1080, leftOffset: 0, topOffset: 0,
		signalRangeIndex: 4, colorSpecIndex: 4,
	},
	BaseFormatDC4K: {
		frameWidth: 4096, frameHeight: 2160,
		colorDiffFormatIndex: ColorDiff444,
		sourceSampling:       SamplingProgressive,
		topFieldFirst:        true,
		frameRateIndex:       2, pixelAspectRatio: 1,
		cleanWidth: 4096, cleanHeight: 2160, leftOffset: 0, topOffset: 0,
		signalRangeIndex: 4, colorSpecIndex: 4,
	},
	BaseFormatUHDTV4K60: {
		frameWidth: 3840, frameHeight: 2160,
		colorDiffFormatIndex: ColorDiff422,
		sourceSampling:       SamplingProgressive,
		topFieldFirst:        true,
		frameRateIndex:       7, pixelAspectRatio: 1,
		cleanWidth: 3840, cleanHeight: 2160, leftOffset: 0, topOffset: 0,
		signalRangeIndex: 3, colorSpecIndex: 5,
	},
	BaseFormatUHDTV4K50: {
		frameWidth: 3840, frameHeight: 2160,
		colorDiffFormatIndex: ColorDiff422,
		sourceSampling:       SamplingProgressive,
		topFieldFirst:        true,
		frameRateIndex:       6, pixelAspectRatio: 1,
		cleanWidth: 3840, cleanHeight: 2160, leftOffset: 0, topOffset: 0,
		signalRangeIndex: 3, colorSpecIndex: 5,
	},
	BaseFormatUHDTV8K60: {
		frameWidth: 7680, frameHeight: 4320,
		colorDiffFormatIndex: ColorDiff422,
		sourceSampling:       SamplingProgressive,
		topFieldFirst:        true,
		frameRateIndex:       7, pixelAspectRatio: 1,
		cleanWidth: 7680, cleanHeight: 4320, leftOffset: 0, topOffset: 0,
		signalRangeIndex: 3, colorSpecIndex: 5,
	},
	BaseFormatUHDTV8K50: {
		frameWidth: 7680, frameHeight: 4320,
		colorDiffFormatIndex: ColorDiff422,
		sourceSampling:       SamplingProgressive,
		topFieldFirst:        true,
		frameRateIndex:       6, pixelAspectRatio: 1,
		cleanWidth: 7680, cleanHeight: 4320, leftOffset: 0, topOffset: 0,
		signalRangeIndex: 3, colorSpecIndex: 5,
	},
	BaseFormatHD1080P24: {
		frameWidth: 1920, frameHeight: 1080,
		colorDiffFormatIndex: ColorDiff422,
		sourceSampling:       SamplingProgressive,
		topFieldFirst:        true,
		frameRateIndex:       1, pixelAspectRatio: 1,
		cleanWidth: 1920, cleanHeight: 1080, leftOffset: 0, topOffset: 0,
		signalRangeIndex: 3, colorSpecIndex: 3,
	},
	BaseFormatSDPro486: {
		frameWidth: 720, frameHeight: 486,
		colorDiffFormatIndex: ColorDiff422,
		sourceSampling:       SamplingInterlaced,
		topFieldFirst:        false,
		frameRateIndex:       4, pixelAspectRatio: 2,
		cleanWidth: 720, cleanHeight: 486, leftOffset: 0, topOffset: 0,
		signalRangeIndex: 3, colorSpecIndex: 3,
	},
}
