package vc2

import (
	"github.com/kwahlin/go-vc2/internal/bits"
	"github.com/kwahlin/go-vc2/internal/constraint"
	"github.com/kwahlin/go-vc2/internal/symbolre"
)

// VideoParameters describes the video format a sequence carries,
// assembled from the base video format defaults and any custom
// overrides in the sequence header (11.4).
type VideoParameters struct {
	FrameWidth  uint64
	FrameHeight uint64

	ColorDiffFormat ColorDiffFormat
	SourceSampling  SourceSampling
	TopFieldFirst   bool

	FrameRateNumer uint64
	FrameRateDenom uint64

	PixelAspectRatioNumer uint64
	PixelAspectRatioDenom uint64

	CleanWidth  uint64
	CleanHeight uint64
	LeftOffset  uint64
	TopOffset   uint64

	LumaOffset         uint64
	LumaExcursion      uint64
	ColorDiffOffset    uint64
	ColorDiffExcursion uint64

	ColorPrimaries   PresetColorPrimaries
	ColorMatrix      PresetColorMatrix
	TransferFunction PresetTransferFunction
}

// setSourceDefaults returns the video parameters of a base video
// format (11.4.2).
func setSourceDefaults(format BaseVideoFormat) VideoParameters {
	base := baseVideoFormats[format]
	rate := presetFrameRates[base.frameRateIndex]
	ratio := presetPixelAspectRatios[base.pixelAspectRatio]
	sr := presetSignalRanges[base.signalRangeIndex]
	cs := presetColorSpecs[base.colorSpecIndex]
	return VideoParameters{
		FrameWidth:            base.frameWidth,
		FrameHeight:           base.frameHeight,
		ColorDiffFormat:       base.colorDiffFormatIndex,
		SourceSampling:        base.sourceSampling,
		TopFieldFirst:         base.topFieldFirst,
		FrameRateNumer:        uint64(rate.Num),
		FrameRateDenom:        uint64(rate.Den),
		PixelAspectRatioNumer: uint64(ratio.Num),
		PixelAspectRatioDenom: uint64(ratio.Den),
		CleanWidth:            base.cleanWidth,
		CleanHeight:           base.cleanHeight,
		LeftOffset:            base.leftOffset,
		TopOffset:             base.topOffset,
		LumaOffset:            sr.LumaOffset,
		LumaExcursion:         sr.LumaExcursion,
		ColorDiffOffset:       sr.ColorDiffOffset,
		ColorDiffExcursion:    sr.ColorDiffExcursion,
		ColorPrimaries:        cs.primaries,
		ColorMatrix:           cs.matrix,
		TransferFunction:      cs.transferFunction,
	}
}

// streamState holds the little state which persists across sequence
// boundaries within one stream: the profile and level may not change
// between sequences, so the values (and where they were declared) are
// kept.
type streamState struct {
	haveParseParams   bool
	parseParamsOffset int64
	profile           Profile
	level             Level
}

// sequenceState is reset at the start of every sequence.
type sequenceState struct {
	parseCode           ParseCode
	nextParseOffset     uint64
	previousParseOffset uint64

	majorVersion uint64
	minorVersion uint64
	profile      Profile
	level        Level

	// Grammar matchers: the generic one applies to every sequence, the
	// level one is created when the first parse_parameters declares the
	// level.
	genericMatcher *symbolre.Matcher
	levelMatcher   *symbolre.Matcher

	// Ordered history of level-constrained values read so far.
	constrainedValues *constraint.History

	haveParseInfo       bool
	lastParseInfoOffset int64

	haveSequenceHeader       bool
	lastSequenceHeaderOffset int64
	lastSequenceHeaderBytes  []byte

	video                 VideoParameters
	pictureCodingMode     PictureCodingMode
	numPicturesInSequence int

	havePictureNumber       bool
	lastPictureNumber       uint32
	lastPictureNumberOffset int64

	// Lowest major_version that would support the features seen so far.
	minimumMajorVersion uint64
}

// pictureState holds values declared by the most recent transform
// parameters, shared by whole pictures and fragmented pictures.
type pictureState struct {
	pictureNumber uint32

	lumaWidth       uint64
	lumaHeight      uint64
	colorDiffWidth  uint64
	colorDiffHeight uint64
	lumaDepth       int
	colorDiffDepth  int

	waveletIndex   WaveletFilter
	waveletIndexHO WaveletFilter
	dwtDepth       int
	dwtDepthHO     int

	slicesX int
	slicesY int

	sliceBytesNumerator   uint64
	sliceBytesDenominator uint64
	slicePrefixBytes      uint64
	sliceSizeScaler       uint64

	quantMatrix QuantMatrix
	quantizer   QuantMatrix

	yTransform  *TransformData
	c1Transform *TransformData
	c2Transform *TransformData
}

// fragmentState tracks an in-progress fragmented picture (14). A
// picture is being accumulated whenever slicesRemaining is non-zero.
type fragmentState struct {
	dataLength uint64
	sliceCount int
	xOffset    int
	yOffset    int

	initialOffset   int64
	slicesReceived  int
	slicesRemaining int
	done            bool
}

// State is the full decoder context threaded through every parsing
// operation: the bit reader plus stream, sequence, picture and
// fragment scoped values.
type State struct {
	r *bits.Reader

	// Level conformance data, fixed for the life of the decoder.
	levelTable    constraint.Table
	levelPatterns map[Level]string

	stream streamState
	seq    sequenceState
	pic    pictureState
	frag   fragmentState
}

// resetSequenceScope clears everything except the reader and the
// fields retained across sequences in a stream.
func (s *State) resetSequenceScope() {
	s.seq = sequenceState{}
	s.pic = pictureState{}
	s.frag = fragmentState{}
}

// tell returns the reader's position for diagnostics.
func (s *State) tell() StreamOffset {
	b, n := s.r.Tell()
	return StreamOffset{Byte: b, Bit: n}
}
