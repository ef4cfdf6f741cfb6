package vc2

import (
	"bytes"
	"fmt"

	"github.com/kwahlin/go-vc2/internal/symbolre"
)

// sequenceHeader parses a sequence_header data unit (11.1). Every
// sequence header after the first in a sequence must be byte-for-byte
// identical to it.
func (d *Decoder) sequenceHeader() error {
	s := &d.s
	s.r.ByteAlign()
	offset, _ := s.r.Tell()
	s.r.StartRecording()
	err := d.sequenceHeaderBody()
	headerBytes := s.r.FinishRecording()
	if err != nil {
		return err
	}

	if s.seq.haveSequenceHeader && !bytes.Equal(headerBytes, s.seq.lastSequenceHeaderBytes) {
		return &SequenceHeaderChangedMidSequence{
			LastOffset: s.seq.lastSequenceHeaderOffset,
			LastBytes:  s.seq.lastSequenceHeaderBytes,
			Offset:     offset,
			Bytes:      headerBytes,
		}
	}
	s.seq.haveSequenceHeader = true
	s.seq.lastSequenceHeaderOffset = offset
	s.seq.lastSequenceHeaderBytes = headerBytes
	return nil
}

func (d *Decoder) sequenceHeaderBody() error {
	s := &d.s
	if err := d.parseParameters(); err != nil {
		return err
	}

	format, err := s.readUint()
	if err != nil {
		return err
	}
	if err := s.assertLevelConstraint("base_video_format", int64(format)); err != nil {
		return err
	}
	baseFormat := BaseVideoFormat(format)
	if !baseFormat.IsValid() {
		return &BadBaseVideoFormat{Index: format}
	}

	if err := d.sourceParameters(baseFormat); err != nil {
		return err
	}

	mode, err := s.readUint()
	if err != nil {
		return err
	}
	if err := s.assertLevelConstraint("picture_coding_mode", int64(mode)); err != nil {
		return err
	}
	codingMode := PictureCodingMode(mode)
	if !codingMode.IsValid() {
		return &BadPictureCodingMode{Mode: mode}
	}
	s.seq.pictureCodingMode = codingMode

	return s.setCodingParameters()
}

// parseParameters parses the version, profile and level declaration
// (11.2.1). Profile and level may not change between the sequences of
// a stream.
func (d *Decoder) parseParameters() error {
	s := &d.s
	offset, _ := s.r.Tell()

	major, err := s.readUint()
	if err != nil {
		return err
	}
	if err := s.assertLevelConstraint("major_version", int64(major)); err != nil {
		return err
	}
	if major < 1 {
		return &MajorVersionTooLow{MajorVersion: major}
	}
	s.seq.majorVersion = major

	minor, err := s.readUint()
	if err != nil {
		return err
	}
	if err := s.assertLevelConstraint("minor_version", int64(minor)); err != nil {
		return err
	}
	if minor != 0 {
		return &MinorVersionNotZero{MinorVersion: minor}
	}
	s.seq.minorVersion = minor

	profileValue, err := s.readUint()
	if err != nil {
		return err
	}
	if err := s.assertLevelConstraint("profile", int64(profileValue)); err != nil {
		return err
	}
	profile := Profile(profileValue)
	if !profile.IsValid() {
		return &BadProfile{Profile: profileValue}
	}
	s.seq.profile = profile
	s.recordMinimumVersion(profileVersion(profile))

	levelValue, err := s.readUint()
	if err != nil {
		return err
	}
	if err := s.assertLevelConstraint("level", int64(levelValue)); err != nil {
		return err
	}
	level := Level(levelValue)
	if !level.IsValid() {
		return &BadLevel{Level: levelValue}
	}
	s.seq.level = level

	if s.seq.levelMatcher == nil {
		matcher, err := symbolre.Compile(s.levelSequencePattern(level))
		if err != nil {
			return fmt.Errorf("level %s sequence restriction: %w", level, err)
		}
		s.seq.levelMatcher = matcher
		// This sequence_header was already announced by its parse_info
		// before the matcher existed.
		if !s.seq.levelMatcher.MatchSymbol("sequence_header") {
			symbols, end := splitEndOfSequence(s.seq.levelMatcher.ValidNextSymbols())
			return &LevelInvalidSequence{
				Code:            ParseCodeSequenceHeader,
				ExpectedSymbols: symbols,
				ExpectedEnd:     end,
				Level:           level,
			}
		}
	}

	if s.stream.haveParseParams {
		if profile != s.stream.profile {
			return &ProfileChanged{
				LastOffset:  s.stream.parseParamsOffset,
				LastProfile: s.stream.profile,
				Offset:      offset,
				Profile:     profile,
			}
		}
		if level != s.stream.level {
			return &LevelChanged{
				LastOffset: s.stream.parseParamsOffset,
				LastLevel:  s.stream.level,
				Offset:     offset,
				Level:      level,
			}
		}
	}
	s.stream.haveParseParams = true
	s.stream.parseParamsOffset = offset
	s.stream.profile = profile
	s.stream.level = level
	return nil
}

// sourceParameters parses the video format overrides on top of the
// base video format defaults (11.4.1).
func (d *Decoder) sourceParameters(format BaseVideoFormat) error {
	s := &d.s
	s.seq.video = setSourceDefaults(format)
	steps := []func() error{
		d.frameSize,
		d.colorDiffSamplingFormat,
		d.scanFormat,
		d.frameRate,
		d.pixelAspectRatio,
		d.cleanArea,
		d.signalRange,
		d.colorSpec,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// frameSize overrides the frame dimensions (11.4.3).
func (d *Decoder) frameSize() error {
	s := &d.s
	custom, err := s.readBool()
	if err != nil {
		return err
	}
	if err := s.assertLevelConstraintBool("custom_dimensions_flag", custom); err != nil {
		return err
	}
	if !custom {
		return nil
	}
	width, err := s.readUint()
	if err != nil {
		return err
	}
	if err := s.assertLevelConstraint("frame_width", int64(width)); err != nil {
		return err
	}
	height, err := s.readUint()
	if err != nil {
		return err
	}
	if err := s.assertLevelConstraint("frame_height", int64(height)); err != nil {
		return err
	}
	if width == 0 || height == 0 {
		return &ZeroPixelFrameSize{Width: width, Height: height}
	}
	s.seq.video.FrameWidth = width
	s.seq.video.FrameHeight = height
	return nil
}

// colorDiffSamplingFormat overrides the color difference sampling
// (11.4.4).
func (d *Decoder) colorDiffSamplingFormat() error {
	s := &d.s
	custom, err := s.readBool()
	if err != nil {
		return err
	}
	if err := s.assertLevelConstraintBool("custom_color_diff_format_flag", custom); err != nil {
		return err
	}
	if !custom {
		return nil
	}
	index, err := s.readUint()
	if err != nil {
		return err
	}
	if err := s.assertLevelConstraint("color_diff_format_index", int64(index)); err != nil {
		return err
	}
	cdf := ColorDiffFormat(index)
	if !cdf.IsValid() {
		return &BadColorDifferenceSamplingFormat{Index: index}
	}
	s.seq.video.ColorDiffFormat = cdf
	return nil
}

// scanFormat overrides the source sampling mode (11.4.5).
func (d *Decoder) scanFormat() error {
	s := &d.s
	custom, err := s.readBool()
	if err != nil {
		return err
	}
	if err := s.assertLevelConstraintBool("custom_scan_format_flag", custom); err != nil {
		return err
	}
	if !custom {
		return nil
	}
	index, err := s.readUint()
	if err != nil {
		return err
	}
	if err := s.assertLevelConstraint("source_sampling", int64(index)); err != nil {
		return err
	}
	sampling := SourceSampling(index)
	if !sampling.IsValid() {
		return &BadSourceSamplingMode{Index: index}
	}
	s.seq.video.SourceSampling = sampling
	return nil
}

// frameRate overrides the frame rate, either by preset index or with
// explicit numerator and denominator (11.4.6).
func (d *Decoder) frameRate() error {
	s := &d.s
	custom, err := s.readBool()
	if err != nil {
		return err
	}
	if err := s.assertLevelConstraintBool("custom_frame_rate_flag", custom); err != nil {
		return err
	}
	if !custom {
		return nil
	}
	index, err := s.readUint()
	if err != nil {
		return err
	}
	if err := s.assertLevelConstraint("frame_rate_index", int64(index)); err != nil {
		return err
	}
	if index == 0 {
		numer, err := s.readUint()
		if err != nil {
			return err
		}
		if err := s.assertLevelConstraint("frame_rate_numer", int64(numer)); err != nil {
			return err
		}
		denom, err := s.readUint()
		if err != nil {
			return err
		}
		if err := s.assertLevelConstraint("frame_rate_denom", int64(denom)); err != nil {
			return err
		}
		if numer == 0 {
			return &FrameRateHasZeroNumerator{Denominator: denom}
		}
		if denom == 0 {
			return &FrameRateHasZeroDenominator{Numerator: numer}
		}
		s.seq.video.FrameRateNumer = numer
		s.seq.video.FrameRateDenom = denom
		return nil
	}
	preset := PresetFrameRate(index)
	if !preset.IsValid() {
		return &BadPresetFrameRateIndex{Index: index}
	}
	s.recordMinimumVersion(presetFrameRateVersion(index))
	rate := presetFrameRates[preset]
	s.seq.video.FrameRateNumer = uint64(rate.Num)
	s.seq.video.FrameRateDenom = uint64(rate.Den)
	return nil
}

// pixelAspectRatio overrides the pixel aspect ratio (11.4.7).
func (d *Decoder) pixelAspectRatio() error {
	s := &d.s
	custom, err := s.readBool()
	if err != nil {
		return err
	}
	if err := s.assertLevelConstraintBool("custom_pixel_aspect_ratio_flag", custom); err != nil {
		return err
	}
	if !custom {
		return nil
	}
	index, err := s.readUint()
	if err != nil {
		return err
	}
	if err := s.assertLevelConstraint("pixel_aspect_ratio_index", int64(index)); err != nil {
		return err
	}
	if index == 0 {
		numer, err := s.readUint()
		if err != nil {
			return err
		}
		if err := s.assertLevelConstraint("pixel_aspect_ratio_numer", int64(numer)); err != nil {
			return err
		}
		denom, err := s.readUint()
		if err != nil {
			return err
		}
		if err := s.assertLevelConstraint("pixel_aspect_ratio_denom", int64(denom)); err != nil {
			return err
		}
		if numer == 0 || denom == 0 {
			return &PixelAspectRatioContainsZeros{Numerator: numer, Denominator: denom}
		}
		s.seq.video.PixelAspectRatioNumer = numer
		s.seq.video.PixelAspectRatioDenom = denom
		return nil
	}
	preset := PresetPixelAspectRatio(index)
	if !preset.IsValid() {
		return &BadPresetPixelAspectRatio{Index: index}
	}
	ratio := presetPixelAspectRatios[preset]
	s.seq.video.PixelAspectRatioNumer = uint64(ratio.Num)
	s.seq.video.PixelAspectRatioDenom = uint64(ratio.Den)
	return nil
}

// cleanArea overrides the clean area, which must lie within the frame
// (11.4.8).
func (d *Decoder) cleanArea() error {
	s := &d.s
	custom, err := s.readBool()
	if err != nil {
		return err
	}
	if err := s.assertLevelConstraintBool("custom_clean_area_flag", custom); err != nil {
		return err
	}
	if !custom {
		return nil
	}
	var cleanWidth, cleanHeight, leftOffset, topOffset uint64
	for _, f := range []struct {
		key string
		dst *uint64
	}{
		{"clean_width", &cleanWidth},
		{"clean_height", &cleanHeight},
		{"left_offset", &leftOffset},
		{"top_offset", &topOffset},
	} {
		v, err := s.readUint()
		if err != nil {
			return err
		}
		if err := s.assertLevelConstraint(f.key, int64(v)); err != nil {
			return err
		}
		*f.dst = v
	}
	if cleanWidth+leftOffset > s.seq.video.FrameWidth ||
		cleanHeight+topOffset > s.seq.video.FrameHeight {
		return &CleanAreaOutOfRange{
			CleanWidth:  cleanWidth,
			CleanHeight: cleanHeight,
			LeftOffset:  leftOffset,
			TopOffset:   topOffset,
			FrameWidth:  s.seq.video.FrameWidth,
			FrameHeight: s.seq.video.FrameHeight,
		}
	}
	s.seq.video.CleanWidth = cleanWidth
	s.seq.video.CleanHeight = cleanHeight
	s.seq.video.LeftOffset = leftOffset
	s.seq.video.TopOffset = topOffset
	return nil
}

// signalRange overrides the signal offsets and excursions, by preset
// index or explicitly (11.4.9).
func (d *Decoder) signalRange() error {
	s := &d.s
	custom, err := s.readBool()
	if err != nil {
		return err
	}
	if err := s.assertLevelConstraintBool("custom_signal_range_flag", custom); err != nil {
		return err
	}
	if !custom {
		return nil
	}
	index, err := s.readUint()
	if err != nil {
		return err
	}
	if err := s.assertLevelConstraint("custom_signal_range_index", int64(index)); err != nil {
		return err
	}
	if index == 0 {
		var lumaOffset, lumaExcursion, colorDiffOffset, colorDiffExcursion uint64
		for _, f := range []struct {
			key string
			dst *uint64
		}{
			{"luma_offset", &lumaOffset},
			{"luma_excursion", &lumaExcursion},
			{"color_diff_offset", &colorDiffOffset},
			{"color_diff_excursion", &colorDiffExcursion},
		} {
			v, err := s.readUint()
			if err != nil {
				return err
			}
			if err := s.assertLevelConstraint(f.key, int64(v)); err != nil {
				return err
			}
			*f.dst = v
		}
		if lumaExcursion < 1 {
			return &LumaExcursionOutOfRange{Excursion: lumaExcursion}
		}
		if colorDiffExcursion < 1 {
			return &ColorDiffExcursionOutOfRange{Excursion: colorDiffExcursion}
		}
		s.seq.video.LumaOffset = lumaOffset
		s.seq.video.LumaExcursion = lumaExcursion
		s.seq.video.ColorDiffOffset = colorDiffOffset
		s.seq.video.ColorDiffExcursion = colorDiffExcursion
		return nil
	}
	preset := PresetSignalRange(index)
	if !preset.IsValid() {
		return &BadCustomSignalRangeIndex{Index: index}
	}
	s.recordMinimumVersion(presetSignalRangeVersion(index))
	sr := presetSignalRanges[preset]
	s.seq.video.LumaOffset = sr.LumaOffset
	s.seq.video.LumaExcursion = sr.LumaExcursion
	s.seq.video.ColorDiffOffset = sr.ColorDiffOffset
	s.seq.video.ColorDiffExcursion = sr.ColorDiffExcursion
	return nil
}

// colorSpec overrides the color specification, either with a preset or
// with individually overridden primaries, matrix and transfer function
// (11.4.10).
func (d *Decoder) colorSpec() error {
	s := &d.s
	custom, err := s.readBool()
	if err != nil {
		return err
	}
	if err := s.assertLevelConstraintBool("custom_color_spec_flag", custom); err != nil {
		return err
	}
	if !custom {
		return nil
	}
	index, err := s.readUint()
	if err != nil {
		return err
	}
	if err := s.assertLevelConstraint("color_spec_index", int64(index)); err != nil {
		return err
	}
	preset := PresetColorSpec(index)
	if !preset.IsValid() {
		return &BadPresetColorSpec{Index: index}
	}
	s.recordMinimumVersion(presetColorSpecVersion(index))
	cs := presetColorSpecs[preset]
	s.seq.video.ColorPrimaries = cs.primaries
	s.seq.video.ColorMatrix = cs.matrix
	s.seq.video.TransferFunction = cs.transferFunction
	if index != 0 {
		return nil
	}
	if err := d.colorPrimaries(); err != nil {
		return err
	}
	if err := d.colorMatrix(); err != nil {
		return err
	}
	return d.transferFunction()
}

// colorPrimaries overrides the color primaries (11.4.10.2).
func (d *Decoder) colorPrimaries() error {
	s := &d.s
	custom, err := s.readBool()
	if err != nil {
		return err
	}
	if err := s.assertLevelConstraintBool("custom_color_primaries_flag", custom); err != nil {
		return err
	}
	if !custom {
		return nil
	}
	index, err := s.readUint()
	if err != nil {
		return err
	}
	if err := s.assertLevelConstraint("color_primaries_index", int64(index)); err != nil {
		return err
	}
	preset := PresetColorPrimaries(index)
	if !preset.IsValid() {
		return &BadPresetColorPrimaries{Index: index}
	}
	s.recordMinimumVersion(presetColorPrimariesVersion(index))
	s.seq.video.ColorPrimaries = preset
	return nil
}

// colorMatrix overrides the color matrix (11.4.10.3).
func (d *Decoder) colorMatrix() error {
	s := &d.s
	custom, err := s.readBool()
	if err != nil {
		return err
	}
	if err := s.assertLevelConstraintBool("custom_color_matrix_flag", custom); err != nil {
		return err
	}
	if !custom {
		return nil
	}
	index, err := s.readUint()
	if err != nil {
		return err
	}
	if err := s.assertLevelConstraint("color_matrix_index", int64(index)); err != nil {
		return err
	}
	preset := PresetColorMatrix(index)
	if !preset.IsValid() {
		return &BadPresetColorMatrix{Index: index}
	}
	s.recordMinimumVersion(presetColorMatrixVersion(index))
	s.seq.video.ColorMatrix = preset
	return nil
}

// transferFunction overrides the transfer function (11.4.10.4).
func (d *Decoder) transferFunction() error {
	s := &d.s
	custom, err := s.readBool()
	if err != nil {
		return err
	}
	if err := s.assertLevelConstraintBool("custom_transfer_function_flag", custom); err != nil {
		return err
	}
	if !custom {
		return nil
	}
	index, err := s.readUint()
	if err != nil {
		return err
	}
	if err := s.assertLevelConstraint("transfer_function_index", int64(index)); err != nil {
		return err
	}
	preset := PresetTransferFunction(index)
	if !preset.IsValid() {
		return &BadPresetTransferFunction{Index: index}
	}
	s.recordMinimumVersion(presetTransferFunctionVersion(index))
	s.seq.video.TransferFunction = preset
	return nil
}

// setCodingParameters derives the coded picture component dimensions
// and bit depths from the video parameters and picture coding mode
// (11.6.2). The frame dimensions must divide exactly into the picture
// components.
func (s *State) setCodingParameters() error {
	video := &s.seq.video

	lumaWidth, lumaHeight, colorDiffWidth, colorDiffHeight := pictureDimensions(video, s.seq.pictureCodingMode)

	// Halving must have been exact for each division applied above.
	ok := true
	if s.seq.pictureCodingMode == PicturesAreFields && video.FrameHeight%2 != 0 {
		ok = false
	}
	switch video.ColorDiffFormat {
	case ColorDiff422:
		if video.FrameWidth%2 != 0 {
			ok = false
		}
	case ColorDiff420:
		if video.FrameWidth%2 != 0 || lumaHeight%2 != 0 {
			ok = false
		}
	}
	if !ok {
		return &PictureDimensionsNotMultipleOfFrameDimensions{
			LumaWidth:       lumaWidth,
			LumaHeight:      lumaHeight,
			ColorDiffWidth:  colorDiffWidth,
			ColorDiffHeight: colorDiffHeight,
			FrameWidth:      video.FrameWidth,
			FrameHeight:     video.FrameHeight,
		}
	}

	s.pic.lumaWidth = lumaWidth
	s.pic.lumaHeight = lumaHeight
	s.pic.colorDiffWidth = colorDiffWidth
	s.pic.colorDiffHeight = colorDiffHeight
	s.pic.lumaDepth = intlog2(video.LumaExcursion + 1)
	s.pic.colorDiffDepth = intlog2(video.ColorDiffExcursion + 1)
	return nil
}
