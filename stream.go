package vc2

import (
	"github.com/kwahlin/go-vc2/internal/constraint"
	"github.com/kwahlin/go-vc2/internal/symbolre"
)

// genericSequencePattern is the data unit ordering every sequence must
// follow regardless of level (10.4.1): it starts with a sequence
// header and ends with an end of sequence unit.
const genericSequencePattern = "sequence_header .* end_of_sequence"

// parseSequence parses one complete sequence (10.4.1): parse_info
// headers and the data units they announce, up to and including the
// end_of_sequence unit, then applies the checks that can only be made
// once the sequence is complete.
func (d *Decoder) parseSequence() error {
	s := &d.s
	s.resetSequenceScope()
	s.seq.genericMatcher = symbolre.MustCompile(genericSequencePattern)
	s.seq.constrainedValues = &constraint.History{}
	s.seq.minimumMajorVersion = minimumMajorVersion

	if err := d.parseInfo(); err != nil {
		return err
	}
	for !s.seq.parseCode.IsEndOfSequence() {
		code := s.seq.parseCode
		var err error
		switch {
		case code.IsSequenceHeader():
			err = d.sequenceHeader()
		case code.IsPicture():
			err = d.pictureParse()
		case code.IsFragment():
			err = d.fragmentParse()
		case code.IsAuxiliaryData():
			err = d.auxiliaryData()
		case code.IsPaddingData():
			err = d.padding()
		}
		if err != nil {
			return err
		}
		if err := d.parseInfo(); err != nil {
			return err
		}
	}

	// The end_of_sequence symbol has been fed to the matchers; both
	// must now be in an accepting state.
	if !s.seq.genericMatcher.IsComplete() {
		symbols, end := splitEndOfSequence(s.seq.genericMatcher.ValidNextSymbols())
		return &GenericInvalidSequence{
			Code:            ParseCodeEndOfSequence,
			ExpectedSymbols: symbols,
			ExpectedEnd:     end,
		}
	}
	if s.seq.levelMatcher != nil && !s.seq.levelMatcher.IsComplete() {
		symbols, end := splitEndOfSequence(s.seq.levelMatcher.ValidNextSymbols())
		return &LevelInvalidSequence{
			Code:            ParseCodeEndOfSequence,
			ExpectedSymbols: symbols,
			ExpectedEnd:     end,
			Level:           s.seq.level,
		}
	}

	if s.frag.slicesRemaining != 0 {
		return &SequenceContainsIncompleteFragmentedPicture{
			InitialOffset:   s.frag.initialOffset,
			SlicesReceived:  s.frag.slicesReceived,
			SlicesRemaining: s.frag.slicesRemaining,
		}
	}

	if s.seq.pictureCodingMode == PicturesAreFields && s.seq.numPicturesInSequence%2 != 0 {
		return &OddNumberOfFieldsInSequence{FieldCount: s.seq.numPicturesInSequence}
	}

	return s.assertVersionIsMinimal()
}

// auxiliaryData skips over an auxiliary data unit (10.4.4).
func (d *Decoder) auxiliaryData() error {
	return d.skipDataUnit()
}

// padding skips over a padding unit (10.4.5).
func (d *Decoder) padding() error {
	return d.skipDataUnit()
}

func (d *Decoder) skipDataUnit() error {
	s := &d.s
	s.r.ByteAlign()
	for i := uint64(0); i < s.seq.nextParseOffset-ParseInfoHeaderBytes; i++ {
		if _, err := s.readUintLit(1); err != nil {
			return err
		}
	}
	return nil
}

// parseInfo reads and checks a parse_info header (10.5.1): prefix,
// parse code, and the forward and backward offsets chaining the data
// units of the sequence together.
func (d *Decoder) parseInfo() error {
	s := &d.s
	s.r.ByteAlign()
	thisOffset, _ := s.r.Tell()

	// The previous parse_info's next_parse_offset, if declared, must
	// point exactly here.
	if s.seq.haveParseInfo && s.seq.nextParseOffset != 0 {
		trueOffset := uint64(thisOffset - s.seq.lastParseInfoOffset)
		if s.seq.nextParseOffset != trueOffset {
			return &InconsistentNextParseOffset{
				ParseInfoOffset: s.seq.lastParseInfoOffset,
				NextParseOffset: s.seq.nextParseOffset,
				TrueOffset:      trueOffset,
			}
		}
	}

	prefix, err := s.readUintLit(4)
	if err != nil {
		return err
	}
	if prefix != ParseInfoPrefix {
		return &BadParseInfoPrefix{Prefix: uint32(prefix), Offset: thisOffset}
	}

	codeValue, err := s.readUintLit(1)
	if err != nil {
		return err
	}
	code := ParseCode(codeValue)
	if !code.IsValid() {
		return &BadParseCode{Code: code, Offset: thisOffset}
	}
	s.seq.parseCode = code

	// Data unit ordering: the generic grammar always applies, the
	// level's grammar once a level has been declared.
	if !s.seq.genericMatcher.MatchSymbol(code.Symbol()) {
		symbols, end := splitEndOfSequence(s.seq.genericMatcher.ValidNextSymbols())
		return &GenericInvalidSequence{Code: code, ExpectedSymbols: symbols, ExpectedEnd: end}
	}
	if s.seq.levelMatcher != nil {
		if !s.seq.levelMatcher.MatchSymbol(code.Symbol()) {
			symbols, end := splitEndOfSequence(s.seq.levelMatcher.ValidNextSymbols())
			return &LevelInvalidSequence{
				Code:            code,
				ExpectedSymbols: symbols,
				ExpectedEnd:     end,
				Level:           s.seq.level,
			}
		}
	}

	// Profile and version gates apply once a sequence header has
	// declared them (C.2, 11.2.2).
	if s.seq.haveSequenceHeader {
		if !profiles[s.seq.profile].Allows(code) {
			return &ParseCodeNotAllowedInProfile{Code: code, Profile: s.seq.profile}
		}
		if code.IsFragment() && s.seq.majorVersion < 3 {
			return &ParseCodeNotSupportedByVersion{Code: code, MajorVersion: s.seq.majorVersion}
		}
	}
	s.recordMinimumVersion(parseCodeVersion(code))

	nextParseOffset, err := s.readUintLit(4)
	if err != nil {
		return err
	}
	s.seq.nextParseOffset = nextParseOffset
	switch {
	case code.IsEndOfSequence():
		if nextParseOffset != 0 {
			return &NonZeroNextParseOffsetAtEndOfSequence{
				Offset:          thisOffset,
				NextParseOffset: nextParseOffset,
			}
		}
	case !code.IsPicture() && !code.IsFragment():
		// Only picture-bearing units may omit the offset.
		if nextParseOffset == 0 {
			return &MissingNextParseOffset{Offset: thisOffset, Code: code}
		}
	}
	if nextParseOffset >= 1 && nextParseOffset < ParseInfoHeaderBytes {
		return &InvalidNextParseOffset{Offset: thisOffset, NextParseOffset: nextParseOffset}
	}

	previousParseOffset, err := s.readUintLit(4)
	if err != nil {
		return err
	}
	s.seq.previousParseOffset = previousParseOffset
	if !s.seq.haveParseInfo {
		if previousParseOffset != 0 {
			return &NonZeroPreviousParseOffsetAtStartOfSequence{
				Offset:              thisOffset,
				PreviousParseOffset: previousParseOffset,
			}
		}
	} else {
		trueOffset := uint64(thisOffset - s.seq.lastParseInfoOffset)
		if previousParseOffset != trueOffset {
			return &InconsistentPreviousParseOffset{
				LastParseInfoOffset: s.seq.lastParseInfoOffset,
				PreviousParseOffset: previousParseOffset,
				TrueOffset:          trueOffset,
			}
		}
	}

	s.seq.haveParseInfo = true
	s.seq.lastParseInfoOffset = thisOffset
	return nil
}

// splitEndOfSequence separates the end-of-sequence marker from a
// matcher's valid next symbols.
func splitEndOfSequence(symbols []string) ([]string, bool) {
	out := symbols[:0]
	end := false
	for _, sym := range symbols {
		if sym == symbolre.EndOfSequence {
			end = true
		} else {
			out = append(out, sym)
		}
	}
	return out, end
}
