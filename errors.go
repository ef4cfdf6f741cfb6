package vc2

import (
	"bytes"
	"fmt"
	"strings"
)

// ConformanceError is implemented by every bitstream conformance
// violation reported by this package. Conformance errors are fatal:
// the decoder does not attempt recovery and a single violation aborts
// the current parse call.
type ConformanceError interface {
	error
	isConformanceError()
}

// conformanceError is embedded by every violation type to mark it as a
// ConformanceError.
type conformanceError struct{}

func (conformanceError) isConformanceError() {}

// StreamOffset is a bit-precise position in the stream: the byte
// offset plus the index of the next bit to be read (7 = most
// significant).
type StreamOffset struct {
	Byte int64
	Bit  int
}

func (o StreamOffset) String() string {
	return fmt.Sprintf("byte %d, bit %d", o.Byte, o.Bit)
}

// LevelConstraintEntry is one step of the level constraint history: a
// named bitstream value in the order it was encountered.
type LevelConstraintEntry struct {
	Key   string
	Value int64
}

// UnexpectedEndOfStream reports that the stream ended in the middle of
// a read.
type UnexpectedEndOfStream struct {
	conformanceError
	Offset StreamOffset
}

func (e *UnexpectedEndOfStream) Error() string {
	return fmt.Sprintf("unexpected end of stream at %s", e.Offset)
}

// TrailingBytesAfterEndOfSequence reports bytes remaining after the
// end of the only sequence of a stream.
type TrailingBytesAfterEndOfSequence struct {
	conformanceError
	Offset int64
}

func (e *TrailingBytesAfterEndOfSequence) Error() string {
	return fmt.Sprintf("trailing bytes after end of sequence at byte %d", e.Offset)
}

// BadParseInfoPrefix reports a parse_info header whose magic prefix is
// not 0x42424344.
type BadParseInfoPrefix struct {
	conformanceError
	Prefix uint32
	Offset int64
}

func (e *BadParseInfoPrefix) Error() string {
	return fmt.Sprintf("bad parse_info prefix 0x%08X at byte %d (expected 0x%08X)",
		e.Prefix, e.Offset, uint32(ParseInfoPrefix))
}

// BadParseCode reports an unrecognized parse code.
type BadParseCode struct {
	conformanceError
	Code   ParseCode
	Offset int64
}

func (e *BadParseCode) Error() string {
	return fmt.Sprintf("bad parse code 0x%02X at byte %d", uint8(e.Code), e.Offset)
}

// InconsistentNextParseOffset reports a next_parse_offset that does not
// match the actual distance to the next parse_info header.
type InconsistentNextParseOffset struct {
	conformanceError
	ParseInfoOffset int64
	NextParseOffset uint64
	TrueOffset      uint64
}

func (e *InconsistentNextParseOffset) Error() string {
	return fmt.Sprintf("next_parse_offset %d in parse_info at byte %d is inconsistent: actual offset %d",
		e.NextParseOffset, e.ParseInfoOffset, e.TrueOffset)
}

// InvalidNextParseOffset reports a next_parse_offset pointing inside
// its own parse_info header (1..12).
type InvalidNextParseOffset struct {
	conformanceError
	Offset          int64
	NextParseOffset uint64
}

func (e *InvalidNextParseOffset) Error() string {
	return fmt.Sprintf("invalid next_parse_offset %d at byte %d", e.NextParseOffset, e.Offset)
}

// MissingNextParseOffset reports a zero next_parse_offset on a data
// unit that requires one.
type MissingNextParseOffset struct {
	conformanceError
	Offset int64
	Code   ParseCode
}

func (e *MissingNextParseOffset) Error() string {
	return fmt.Sprintf("missing next_parse_offset for %s unit at byte %d", e.Code, e.Offset)
}

// NonZeroNextParseOffsetAtEndOfSequence reports a non-zero
// next_parse_offset on an end_of_sequence unit.
type NonZeroNextParseOffsetAtEndOfSequence struct {
	conformanceError
	Offset          int64
	NextParseOffset uint64
}

func (e *NonZeroNextParseOffsetAtEndOfSequence) Error() string {
	return fmt.Sprintf("non-zero next_parse_offset %d on end_of_sequence at byte %d",
		e.NextParseOffset, e.Offset)
}

// NonZeroPreviousParseOffsetAtStartOfSequence reports a non-zero
// previous_parse_offset on the first data unit of a sequence.
type NonZeroPreviousParseOffsetAtStartOfSequence struct {
	conformanceError
	Offset              int64
	PreviousParseOffset uint64
}

func (e *NonZeroPreviousParseOffsetAtStartOfSequence) Error() string {
	return fmt.Sprintf("non-zero previous_parse_offset %d at start of sequence at byte %d",
		e.PreviousParseOffset, e.Offset)
}

// InconsistentPreviousParseOffset reports a previous_parse_offset that
// does not match the distance back to the previous parse_info header.
type InconsistentPreviousParseOffset struct {
	conformanceError
	LastParseInfoOffset int64
	PreviousParseOffset uint64
	TrueOffset          uint64
}

func (e *InconsistentPreviousParseOffset) Error() string {
	return fmt.Sprintf("previous_parse_offset %d is inconsistent: previous parse_info at byte %d, actual offset %d",
		e.PreviousParseOffset, e.LastParseInfoOffset, e.TrueOffset)
}

// GenericInvalidSequence reports a data unit not permitted at this
// point by the sequence grammar common to all streams.
type GenericInvalidSequence struct {
	conformanceError
	Code            ParseCode
	ExpectedSymbols []string
	ExpectedEnd     bool
}

func (e *GenericInvalidSequence) Error() string {
	return fmt.Sprintf("data unit %s not allowed here: expected %s",
		e.Code, expectedSymbolList(e.ExpectedSymbols, e.ExpectedEnd))
}

// LevelInvalidSequence reports a data unit not permitted at this point
// by the current level's sequence restrictions.
type LevelInvalidSequence struct {
	conformanceError
	Code            ParseCode
	ExpectedSymbols []string
	ExpectedEnd     bool
	Level           Level
}

func (e *LevelInvalidSequence) Error() string {
	return fmt.Sprintf("data unit %s not allowed here by level %s: expected %s",
		e.Code, e.Level, expectedSymbolList(e.ExpectedSymbols, e.ExpectedEnd))
}

func expectedSymbolList(symbols []string, end bool) string {
	parts := append([]string{}, symbols...)
	if end {
		parts = append(parts, "<end of sequence>")
	}
	if len(parts) == 0 {
		return "<nothing>"
	}
	return strings.Join(parts, ", ")
}

// ParseCodeNotAllowedInProfile reports a data unit kind the current
// profile does not permit.
type ParseCodeNotAllowedInProfile struct {
	conformanceError
	Code    ParseCode
	Profile Profile
}

func (e *ParseCodeNotAllowedInProfile) Error() string {
	return fmt.Sprintf("data unit %s not allowed in %s profile", e.Code, e.Profile)
}

// ParseCodeNotSupportedByVersion reports a data unit kind requiring a
// higher major_version than the sequence declares.
type ParseCodeNotSupportedByVersion struct {
	conformanceError
	Code         ParseCode
	MajorVersion uint64
}

func (e *ParseCodeNotSupportedByVersion) Error() string {
	return fmt.Sprintf("data unit %s not supported by major_version %d", e.Code, e.MajorVersion)
}

// SequenceHeaderChangedMidSequence reports a sequence header that is
// not byte-for-byte identical to the previous one in the same
// sequence.
type SequenceHeaderChangedMidSequence struct {
	conformanceError
	LastOffset int64
	LastBytes  []byte
	Offset     int64
	Bytes      []byte
}

// FirstDifference returns the index of the first differing byte, or
// the shorter length if one header is a prefix of the other.
func (e *SequenceHeaderChangedMidSequence) FirstDifference() int {
	n := len(e.LastBytes)
	if len(e.Bytes) < n {
		n = len(e.Bytes)
	}
	for i := 0; i < n; i++ {
		if e.LastBytes[i] != e.Bytes[i] {
			return i
		}
	}
	return n
}

func (e *SequenceHeaderChangedMidSequence) Error() string {
	if bytes.Equal(e.LastBytes, e.Bytes) {
		return fmt.Sprintf("sequence header at byte %d differs from header at byte %d",
			e.Offset, e.LastOffset)
	}
	return fmt.Sprintf("sequence header at byte %d differs from header at byte %d (first difference at byte %d)",
		e.Offset, e.LastOffset, e.FirstDifference())
}

// MajorVersionTooLow reports a major_version below 1.
type MajorVersionTooLow struct {
	conformanceError
	MajorVersion uint64
}

func (e *MajorVersionTooLow) Error() string {
	return fmt.Sprintf("major_version %d is too low (must be at least 1)", e.MajorVersion)
}

// MinorVersionNotZero reports a non-zero minor_version.
type MinorVersionNotZero struct {
	conformanceError
	MinorVersion uint64
}

func (e *MinorVersionNotZero) Error() string {
	return fmt.Sprintf("minor_version %d is not zero", e.MinorVersion)
}

// MajorVersionTooHigh reports a declared major_version above the
// minimum version implied by the features actually used.
type MajorVersionTooHigh struct {
	conformanceError
	MajorVersion    uint64
	RequiredVersion uint64
}

func (e *MajorVersionTooHigh) Error() string {
	return fmt.Sprintf("major_version %d is too high: the features used require only version %d",
		e.MajorVersion, e.RequiredVersion)
}

// BadProfile reports an unrecognized profile number.
type BadProfile struct {
	conformanceError
	Profile uint64
}

func (e *BadProfile) Error() string {
	return fmt.Sprintf("bad profile %d", e.Profile)
}

// ProfileChanged reports a profile differing from the one declared
// earlier in the stream.
type ProfileChanged struct {
	conformanceError
	LastOffset  int64
	LastProfile Profile
	Offset      int64
	Profile     Profile
}

func (e *ProfileChanged) Error() string {
	return fmt.Sprintf("profile changed from %s (parse parameters at byte %d) to %s (at byte %d)",
		e.LastProfile, e.LastOffset, e.Profile, e.Offset)
}

// BadLevel reports an unrecognized level number.
type BadLevel struct {
	conformanceError
	Level uint64
}

func (e *BadLevel) Error() string {
	return fmt.Sprintf("bad level %d", e.Level)
}

// LevelChanged reports a level differing from the one declared earlier
// in the stream.
type LevelChanged struct {
	conformanceError
	LastOffset int64
	LastLevel  Level
	Offset     int64
	Level      Level
}

func (e *LevelChanged) Error() string {
	return fmt.Sprintf("level changed from %s (parse parameters at byte %d) to %s (at byte %d)",
		e.LastLevel, e.LastOffset, e.Level, e.Offset)
}

// ValueNotAllowedInLevel reports a bitstream value outside the set the
// current level permits, given the values seen so far.
type ValueNotAllowedInLevel struct {
	conformanceError
	Key           string
	Value         int64
	AllowedValues string
	History       []LevelConstraintEntry
	Level         Level
}

func (e *ValueNotAllowedInLevel) Error() string {
	return fmt.Sprintf("%s value %d not allowed by level %s (allowed: %s, after %d prior values)",
		e.Key, e.Value, e.Level, e.AllowedValues, len(e.History))
}

// BadBaseVideoFormat reports an unrecognized base video format index.
type BadBaseVideoFormat struct {
	conformanceError
	Index uint64
}

func (e *BadBaseVideoFormat) Error() string {
	return fmt.Sprintf("bad base video format %d", e.Index)
}

// BadPictureCodingMode reports an unrecognized picture coding mode.
type BadPictureCodingMode struct {
	conformanceError
	Mode uint64
}

func (e *BadPictureCodingMode) Error() string {
	return fmt.Sprintf("bad picture coding mode %d", e.Mode)
}

// ZeroPixelFrameSize reports a custom frame size with a zero
// dimension.
type ZeroPixelFrameSize struct {
	conformanceError
	Width  uint64
	Height uint64
}

func (e *ZeroPixelFrameSize) Error() string {
	return fmt.Sprintf("frame size %dx%d contains zero pixels", e.Width, e.Height)
}

// BadColorDifferenceSamplingFormat reports an unrecognized color
// difference sampling format index.
type BadColorDifferenceSamplingFormat struct {
	conformanceError
	Index uint64
}

func (e *BadColorDifferenceSamplingFormat) Error() string {
	return fmt.Sprintf("bad color difference sampling format %d", e.Index)
}

// BadSourceSamplingMode reports an unrecognized source sampling mode.
type BadSourceSamplingMode struct {
	conformanceError
	Index uint64
}

func (e *BadSourceSamplingMode) Error() string {
	return fmt.Sprintf("bad source sampling mode %d", e.Index)
}

// BadPresetFrameRateIndex reports an unrecognized frame rate preset.
type BadPresetFrameRateIndex struct {
	conformanceError
	Index uint64
}

func (e *BadPresetFrameRateIndex) Error() string {
	return fmt.Sprintf("bad preset frame rate index %d", e.Index)
}

// FrameRateHasZeroNumerator reports a custom frame rate of zero.
type FrameRateHasZeroNumerator struct {
	conformanceError
	Denominator uint64
}

func (e *FrameRateHasZeroNumerator) Error() string {
	return fmt.Sprintf("frame rate 0/%d has a zero numerator", e.Denominator)
}

// FrameRateHasZeroDenominator reports a custom frame rate with a zero
// denominator.
type FrameRateHasZeroDenominator struct {
	conformanceError
	Numerator uint64
}

func (e *FrameRateHasZeroDenominator) Error() string {
	return fmt.Sprintf("frame rate %d/0 has a zero denominator", e.Numerator)
}

// BadPresetPixelAspectRatio reports an unrecognized pixel aspect ratio
// preset.
type BadPresetPixelAspectRatio struct {
	conformanceError
	Index uint64
}

func (e *BadPresetPixelAspectRatio) Error() string {
	return fmt.Sprintf("bad preset pixel aspect ratio index %d", e.Index)
}

// PixelAspectRatioContainsZeros reports a custom pixel aspect ratio
// with a zero term.
type PixelAspectRatioContainsZeros struct {
	conformanceError
	Numerator   uint64
	Denominator uint64
}

func (e *PixelAspectRatioContainsZeros) Error() string {
	return fmt.Sprintf("pixel aspect ratio %d:%d contains a zero", e.Numerator, e.Denominator)
}

// CleanAreaOutOfRange reports a clean area extending beyond the frame.
type CleanAreaOutOfRange struct {
	conformanceError
	CleanWidth  uint64
	CleanHeight uint64
	LeftOffset  uint64
	TopOffset   uint64
	FrameWidth  uint64
	FrameHeight uint64
}

func (e *CleanAreaOutOfRange) Error() string {
	return fmt.Sprintf("clean area %dx%d at offset (%d, %d) extends beyond the %dx%d frame",
		e.CleanWidth, e.CleanHeight, e.LeftOffset, e.TopOffset, e.FrameWidth, e.FrameHeight)
}

// BadCustomSignalRangeIndex reports an unrecognized signal range
// preset.
type BadCustomSignalRangeIndex struct {
	conformanceError
	Index uint64
}

func (e *BadCustomSignalRangeIndex) Error() string {
	return fmt.Sprintf("bad custom signal range index %d", e.Index)
}

// LumaExcursionOutOfRange reports a luma excursion below 1.
type LumaExcursionOutOfRange struct {
	conformanceError
	Excursion uint64
}

func (e *LumaExcursionOutOfRange) Error() string {
	return fmt.Sprintf("luma excursion %d is out of range (must be at least 1)", e.Excursion)
}

// ColorDiffExcursionOutOfRange reports a color difference excursion
// below 1.
type ColorDiffExcursionOutOfRange struct {
	conformanceError
	Excursion uint64
}

func (e *ColorDiffExcursionOutOfRange) Error() string {
	return fmt.Sprintf("color difference excursion %d is out of range (must be at least 1)", e.Excursion)
}

// BadPresetColorSpec reports an unrecognized color specification
// preset.
type BadPresetColorSpec struct {
	conformanceError
	Index uint64
}

func (e *BadPresetColorSpec) Error() string {
	return fmt.Sprintf("bad preset color spec index %d", e.Index)
}

// BadPresetColorPrimaries reports an unrecognized color primaries
// preset.
type BadPresetColorPrimaries struct {
	conformanceError
	Index uint64
}

func (e *BadPresetColorPrimaries) Error() string {
	return fmt.Sprintf("bad preset color primaries index %d", e.Index)
}

// BadPresetColorMatrix reports an unrecognized color matrix preset.
type BadPresetColorMatrix struct {
	conformanceError
	Index uint64
}

func (e *BadPresetColorMatrix) Error() string {
	return fmt.Sprintf("bad preset color matrix index %d", e.Index)
}

// BadPresetTransferFunction reports an unrecognized transfer function
// preset.
type BadPresetTransferFunction struct {
	conformanceError
	Index uint64
}

func (e *BadPresetTransferFunction) Error() string {
	return fmt.Sprintf("bad preset transfer function index %d", e.Index)
}

// PictureDimensionsNotMultipleOfFrameDimensions reports component
// picture dimensions that do not evenly divide the frame dimensions.
type PictureDimensionsNotMultipleOfFrameDimensions struct {
	conformanceError
	LumaWidth       uint64
	LumaHeight      uint64
	ColorDiffWidth  uint64
	ColorDiffHeight uint64
	FrameWidth      uint64
	FrameHeight     uint64
}

func (e *PictureDimensionsNotMultipleOfFrameDimensions) Error() string {
	return fmt.Sprintf("picture dimensions (luma %dx%d, color difference %dx%d) do not evenly divide the %dx%d frame",
		e.LumaWidth, e.LumaHeight, e.ColorDiffWidth, e.ColorDiffHeight, e.FrameWidth, e.FrameHeight)
}

// NonConsecutivePictureNumbers reports a picture number that is not
// one greater (mod 2^32) than the previous picture's.
type NonConsecutivePictureNumbers struct {
	conformanceError
	LastOffset int64
	LastNumber uint32
	Offset     int64
	Number     uint32
}

func (e *NonConsecutivePictureNumbers) Error() string {
	return fmt.Sprintf("picture number %d at byte %d does not follow picture number %d at byte %d",
		e.Number, e.Offset, e.LastNumber, e.LastOffset)
}

// EarliestFieldHasOddPictureNumber reports a field-coded sequence
// whose earliest field of a frame has an odd picture number.
type EarliestFieldHasOddPictureNumber struct {
	conformanceError
	Number uint32
}

func (e *EarliestFieldHasOddPictureNumber) Error() string {
	return fmt.Sprintf("earliest field of a frame has odd picture number %d", e.Number)
}

// OddNumberOfFieldsInSequence reports a field-coded sequence
// containing an odd number of fields.
type OddNumberOfFieldsInSequence struct {
	conformanceError
	FieldCount int
}

func (e *OddNumberOfFieldsInSequence) Error() string {
	return fmt.Sprintf("sequence contains an odd number of fields (%d)", e.FieldCount)
}

// PictureInterleavedWithFragmentedPicture reports a non-fragment
// picture arriving while a fragmented picture is still being
// reassembled.
type PictureInterleavedWithFragmentedPicture struct {
	conformanceError
	FragmentOffset int64
	FragmentNumber uint32
	Offset         int64
	Number         uint32
}

func (e *PictureInterleavedWithFragmentedPicture) Error() string {
	return fmt.Sprintf("picture %d at byte %d interleaved with fragmented picture %d started at byte %d",
		e.Number, e.Offset, e.FragmentNumber, e.FragmentOffset)
}

// BadWaveletIndex reports an unrecognized wavelet filter index.
type BadWaveletIndex struct {
	conformanceError
	Index uint64
}

func (e *BadWaveletIndex) Error() string {
	return fmt.Sprintf("bad wavelet index %d", e.Index)
}

// BadHOWaveletIndex reports an unrecognized horizontal-only wavelet
// filter index.
type BadHOWaveletIndex struct {
	conformanceError
	Index uint64
}

func (e *BadHOWaveletIndex) Error() string {
	return fmt.Sprintf("bad horizontal-only wavelet index %d", e.Index)
}

// ZeroSlicesInCodedPicture reports a picture declaring zero slices in
// either dimension.
type ZeroSlicesInCodedPicture struct {
	conformanceError
	SlicesX uint64
	SlicesY uint64
}

func (e *ZeroSlicesInCodedPicture) Error() string {
	return fmt.Sprintf("picture declares %dx%d slices", e.SlicesX, e.SlicesY)
}

// SliceBytesHasZeroDenominator reports a low-delay slice size ratio
// with a zero denominator.
type SliceBytesHasZeroDenominator struct {
	conformanceError
	Numerator uint64
}

func (e *SliceBytesHasZeroDenominator) Error() string {
	return fmt.Sprintf("slice bytes ratio %d/0 has a zero denominator", e.Numerator)
}

// SliceBytesIsLessThanOne reports a low-delay slice size ratio below
// one byte per slice.
type SliceBytesIsLessThanOne struct {
	conformanceError
	Numerator   uint64
	Denominator uint64
}

func (e *SliceBytesIsLessThanOne) Error() string {
	return fmt.Sprintf("slice bytes ratio %d/%d is less than one", e.Numerator, e.Denominator)
}

// SliceSizeScalerIsZero reports a high-quality slice size scaler of
// zero.
type SliceSizeScalerIsZero struct {
	conformanceError
}

func (e *SliceSizeScalerIsZero) Error() string {
	return "slice size scaler is zero"
}

// NoQuantisationMatrixAvailable reports a transform shape for which no
// default quantisation matrix is defined and no custom matrix was
// supplied.
type NoQuantisationMatrixAvailable struct {
	conformanceError
	WaveletIndex   WaveletFilter
	HOWaveletIndex WaveletFilter
	DWTDepth       int
	DWTDepthHO     int
}

func (e *NoQuantisationMatrixAvailable) Error() string {
	return fmt.Sprintf("no default quantisation matrix for wavelets %s/%s with depths %d/%d",
		e.HOWaveletIndex, e.WaveletIndex, e.DWTDepthHO, e.DWTDepth)
}

// QuantisationMatrixValueNotAllowedInLevel reports a custom
// quantisation matrix value outside the current level's allowed set.
type QuantisationMatrixValueNotAllowedInLevel struct {
	conformanceError
	Value         uint64
	AllowedValues string
	Level         Level
}

func (e *QuantisationMatrixValueNotAllowedInLevel) Error() string {
	return fmt.Sprintf("quantisation matrix value %d not allowed by level %s (allowed: %s)",
		e.Value, e.Level, e.AllowedValues)
}

// InvalidSliceYLength reports a low-delay slice_y_length exceeding the
// bits available in its slice.
type InvalidSliceYLength struct {
	conformanceError
	Length uint64
	Max    uint64
	SliceX int
	SliceY int
}

func (e *InvalidSliceYLength) Error() string {
	return fmt.Sprintf("slice_y_length %d in slice (%d, %d) exceeds maximum %d",
		e.Length, e.SliceX, e.SliceY, e.Max)
}

// FragmentedPictureRestarted reports a fragment starting a new picture
// while a previous fragmented picture is incomplete.
type FragmentedPictureRestarted struct {
	conformanceError
	InitialOffset   int64
	Offset          int64
	SlicesReceived  int
	SlicesRemaining int
}

func (e *FragmentedPictureRestarted) Error() string {
	return fmt.Sprintf("fragmented picture started at byte %d restarted at byte %d with %d slices received and %d remaining",
		e.InitialOffset, e.Offset, e.SlicesReceived, e.SlicesRemaining)
}

// SequenceContainsIncompleteFragmentedPicture reports a sequence
// ending while a fragmented picture is incomplete.
type SequenceContainsIncompleteFragmentedPicture struct {
	conformanceError
	InitialOffset   int64
	SlicesReceived  int
	SlicesRemaining int
}

func (e *SequenceContainsIncompleteFragmentedPicture) Error() string {
	return fmt.Sprintf("sequence ended with incomplete fragmented picture started at byte %d (%d slices received, %d remaining)",
		e.InitialOffset, e.SlicesReceived, e.SlicesRemaining)
}

// PictureNumberChangedMidFragmentedPicture reports a fragment carrying
// a different picture number than the fragmented picture it continues.
type PictureNumberChangedMidFragmentedPicture struct {
	conformanceError
	LastOffset int64
	LastNumber uint32
	Offset     int64
	Number     uint32
}

func (e *PictureNumberChangedMidFragmentedPicture) Error() string {
	return fmt.Sprintf("fragment at byte %d carries picture number %d but the fragmented picture (last fragment at byte %d) has number %d",
		e.Offset, e.Number, e.LastOffset, e.LastNumber)
}

// TooManySlicesInFragmentedPicture reports a fragment delivering more
// slices than remain in its picture.
type TooManySlicesInFragmentedPicture struct {
	conformanceError
	InitialOffset   int64
	Offset          int64
	SlicesReceived  int
	SlicesRemaining int
	SliceCount      int
}

func (e *TooManySlicesInFragmentedPicture) Error() string {
	return fmt.Sprintf("fragment at byte %d delivers %d slices but only %d remain (%d received, picture started at byte %d)",
		e.Offset, e.SliceCount, e.SlicesRemaining, e.SlicesReceived, e.InitialOffset)
}

// FragmentSlicesNotContiguous reports a fragment whose slices do not
// begin at the next expected raster-order slice position.
type FragmentSlicesNotContiguous struct {
	conformanceError
	InitialOffset int64
	Offset        int64
	SliceX        int
	SliceY        int
	ExpectedX     int
	ExpectedY     int
}

func (e *FragmentSlicesNotContiguous) Error() string {
	return fmt.Sprintf("fragment at byte %d starts at slice (%d, %d) but slice (%d, %d) was expected",
		e.Offset, e.SliceX, e.SliceY, e.ExpectedX, e.ExpectedY)
}
