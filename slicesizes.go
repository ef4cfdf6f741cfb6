package vc2

// component selects one of the three picture planes.
type component int

const (
	compY component = iota
	compC1
	compC2
)

// subbandWidth returns the width of a subband at the given transform
// level (13.2.3). The picture width is padded up to a multiple of the
// transform's horizontal scale.
func (s *State) subbandWidth(level int, comp component) int {
	w := int(s.pic.lumaWidth)
	if comp != compY {
		w = int(s.pic.colorDiffWidth)
	}

	scaleW := 1 << uint(s.pic.dwtDepthHO+s.pic.dwtDepth)
	pw := scaleW * ((w + scaleW - 1) / scaleW)

	if level == 0 {
		return pw / (1 << uint(s.pic.dwtDepthHO+s.pic.dwtDepth))
	}
	return pw / (1 << uint(s.pic.dwtDepthHO+s.pic.dwtDepth-level+1))
}

// subbandHeight returns the height of a subband at the given transform
// level (13.2.3). The picture height is padded up to a multiple of the
// transform's vertical scale; horizontal-only levels do not divide the
// height.
func (s *State) subbandHeight(level int, comp component) int {
	h := int(s.pic.lumaHeight)
	if comp != compY {
		h = int(s.pic.colorDiffHeight)
	}

	scaleH := 1 << uint(s.pic.dwtDepth)
	ph := scaleH * ((h + scaleH - 1) / scaleH)

	if level <= s.pic.dwtDepthHO {
		return ph / (1 << uint(s.pic.dwtDepth))
	}
	return ph / (1 << uint(s.pic.dwtDepthHO+s.pic.dwtDepth-level+1))
}

// sliceBytes returns the byte count of a low-delay slice (13.5.3.2).
// The cumulative-difference form distributes the rounding error so
// that slice sizes sum exactly to the picture's total allotment.
func (s *State) sliceBytes(sx, sy int) int {
	sliceNumber := uint64(sy*s.pic.slicesX + sx)
	num := s.pic.sliceBytesNumerator
	den := s.pic.sliceBytesDenominator
	return int((sliceNumber+1)*num/den - sliceNumber*num/den)
}

// Slice coordinate bounds within a subband (13.5.6.2).

func (s *State) sliceLeft(sx int, comp component, level int) int {
	return s.subbandWidth(level, comp) * sx / s.pic.slicesX
}

func (s *State) sliceRight(sx int, comp component, level int) int {
	return s.subbandWidth(level, comp) * (sx + 1) / s.pic.slicesX
}

func (s *State) sliceTop(sy int, comp component, level int) int {
	return s.subbandHeight(level, comp) * sy / s.pic.slicesY
}

func (s *State) sliceBottom(sy int, comp component, level int) int {
	return s.subbandHeight(level, comp) * (sy + 1) / s.pic.slicesY
}
