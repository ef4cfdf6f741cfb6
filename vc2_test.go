package vc2

import (
	"testing"
)

func TestParseCodePredicates(t *testing.T) {
	tests := []struct {
		code         ParseCode
		picture      bool
		fragment     bool
		lowDelay     bool
		highQuality  bool
		dcPrediction bool
	}{
		{ParseCodeSequenceHeader, false, false, false, false, false},
		{ParseCodeEndOfSequence, false, false, false, false, false},
		{ParseCodeAuxiliaryData, false, false, false, false, false},
		{ParseCodePaddingData, false, false, false, false, false},
		{ParseCodeLowDelayPicture, true, false, true, false, true},
		{ParseCodeHighQualityPicture, true, false, false, true, false},
		{ParseCodeLowDelayPictureFragment, false, true, true, false, true},
		{ParseCodeHighQualityPictureFragment, false, true, false, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.IsPicture(); got != tt.picture {
				t.Errorf("IsPicture() = %v, want %v", got, tt.picture)
			}
			if got := tt.code.IsFragment(); got != tt.fragment {
				t.Errorf("IsFragment() = %v, want %v", got, tt.fragment)
			}
			if got := tt.code.IsLowDelay(); got != tt.lowDelay {
				t.Errorf("IsLowDelay() = %v, want %v", got, tt.lowDelay)
			}
			if got := tt.code.IsHighQuality(); got != tt.highQuality {
				t.Errorf("IsHighQuality() = %v, want %v", got, tt.highQuality)
			}
			if got := tt.code.UsingDCPrediction(); got != tt.dcPrediction {
				t.Errorf("UsingDCPrediction() = %v, want %v", got, tt.dcPrediction)
			}
			if !tt.code.IsValid() {
				t.Error("IsValid() = false, want true")
			}
		})
	}
}

func TestParseCodeIsValidRejectsUnknownCodes(t *testing.T) {
	for _, code := range []ParseCode{0x01, 0x11, 0x55, 0xC0, 0xFF} {
		if code.IsValid() {
			t.Errorf("ParseCode(0x%02X).IsValid() = true, want false", uint8(code))
		}
	}
}

func TestIntlog2(t *testing.T) {
	tests := []struct {
		n    uint64
		want int
	}{
		{1, 0}, {2, 1}, {3, 2}, {4, 2}, {5, 3}, {8, 3}, {9, 4}, {256, 8}, {257, 9},
	}
	for _, tt := range tests {
		if got := intlog2(tt.n); got != tt.want {
			t.Errorf("intlog2(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{7, 2, 3}, {-7, 2, -4}, {7, -2, -4}, {-7, -2, 3}, {6, 3, 2}, {0, 5, 0},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestMean(t *testing.T) {
	tests := []struct {
		vs   []int
		want int
	}{
		{[]int{1, 2, 3}, 2},
		{[]int{1, 2}, 2},
		{[]int{0, 0, 1}, 0},
		{[]int{-1, -2}, -1},
		{[]int{4, 1, 3}, 3},
	}
	for _, tt := range tests {
		if got := mean(tt.vs...); got != tt.want {
			t.Errorf("mean(%v) = %d, want %d", tt.vs, got, tt.want)
		}
	}
}

func TestQuantFactor(t *testing.T) {
	tests := []struct {
		index, want int
	}{
		{0, 4}, {1, 5}, {2, 6}, {3, 7}, {4, 8}, {5, 10}, {8, 16},
	}
	for _, tt := range tests {
		if got := quantFactor(tt.index); got != tt.want {
			t.Errorf("quantFactor(%d) = %d, want %d", tt.index, got, tt.want)
		}
	}
	// The factor approximates 2^(index/4) scaled by 4, so it is
	// strictly increasing in the index.
	for index := 0; index < 40; index++ {
		if quantFactor(index+1) <= quantFactor(index) {
			t.Errorf("quantFactor(%d) = %d is not above quantFactor(%d) = %d",
				index+1, quantFactor(index+1), index, quantFactor(index))
		}
	}
}

func TestQuantOffset(t *testing.T) {
	tests := []struct {
		index, want int
	}{
		{0, 1}, {1, 2}, {2, 3}, {4, 4}, {8, 8},
	}
	for _, tt := range tests {
		if got := quantOffset(tt.index); got != tt.want {
			t.Errorf("quantOffset(%d) = %d, want %d", tt.index, got, tt.want)
		}
	}
}

func TestInverseQuantIdentityAtIndexZero(t *testing.T) {
	for _, v := range []int{-17, -1, 0, 1, 5, 213} {
		if got := inverseQuant(v, 0); got != v {
			t.Errorf("inverseQuant(%d, 0) = %d, want %d", v, got, v)
		}
	}
}

func TestInverseQuantSymmetry(t *testing.T) {
	for index := 0; index < 20; index++ {
		for _, v := range []int{1, 3, 100} {
			if pos, neg := inverseQuant(v, index), inverseQuant(-v, index); pos != -neg {
				t.Errorf("inverseQuant(±%d, %d) = %d and %d, want negations",
					v, index, pos, neg)
			}
		}
		if got := inverseQuant(0, index); got != 0 {
			t.Errorf("inverseQuant(0, %d) = %d, want 0", index, got)
		}
	}
}

func TestQuantRoundTripBound(t *testing.T) {
	// Quantizing and reconstructing may not move a coefficient by more
	// than one quantization step.
	for index := 0; index < 24; index++ {
		step := quantFactor(index)
		for _, coeff := range []int{-1000, -37, -1, 0, 1, 42, 999} {
			got := inverseQuant(forwardQuant(coeff, index), index)
			diff := got - coeff
			if diff < 0 {
				diff = -diff
			}
			if 4*diff > step {
				t.Errorf("index %d: coefficient %d reconstructed as %d (step %d/4)",
					index, coeff, got, step)
			}
		}
	}
}

func TestSliceQuantizers(t *testing.T) {
	var s State
	s.pic.quantMatrix = QuantMatrix{DC: 5, HL: []int{3}, LH: []int{3}, HH: []int{0}}
	s.sliceQuantizers(4)
	q := s.pic.quantizer
	if q.DC != 0 {
		t.Errorf("DC = %d, want 0", q.DC)
	}
	if q.HL[0] != 1 || q.LH[0] != 1 {
		t.Errorf("HL/LH = %d/%d, want 1/1", q.HL[0], q.LH[0])
	}
	if q.HH[0] != 4 {
		t.Errorf("HH = %d, want 4", q.HH[0])
	}
}

func TestSliceBytesSumToAllotment(t *testing.T) {
	var s State
	s.pic.slicesX = 3
	s.pic.slicesY = 2
	s.pic.sliceBytesNumerator = 17
	s.pic.sliceBytesDenominator = 6
	total := 0
	for sy := 0; sy < s.pic.slicesY; sy++ {
		for sx := 0; sx < s.pic.slicesX; sx++ {
			n := s.sliceBytes(sx, sy)
			if n < 2 || n > 3 {
				t.Errorf("sliceBytes(%d, %d) = %d, want 2 or 3", sx, sy, n)
			}
			total += n
		}
	}
	if total != 17 {
		t.Errorf("slice bytes sum to %d, want 17", total)
	}
}

func TestSubbandDimensions(t *testing.T) {
	var s State
	s.pic.lumaWidth = 1920
	s.pic.lumaHeight = 1080
	s.pic.colorDiffWidth = 960
	s.pic.colorDiffHeight = 1080
	s.pic.dwtDepth = 2

	tests := []struct {
		level         int
		width, height int
	}{
		{0, 480, 270},
		{1, 480, 270},
		{2, 960, 540},
	}
	for _, tt := range tests {
		if got := s.subbandWidth(tt.level, compY); got != tt.width {
			t.Errorf("subbandWidth(%d) = %d, want %d", tt.level, got, tt.width)
		}
		if got := s.subbandHeight(tt.level, compY); got != tt.height {
			t.Errorf("subbandHeight(%d) = %d, want %d", tt.level, got, tt.height)
		}
	}
	if got := s.subbandWidth(0, compC1); got != 240 {
		t.Errorf("subbandWidth(0, chroma) = %d, want 240", got)
	}
}

func TestSubbandDimensionsPadded(t *testing.T) {
	// Dimensions which do not divide by the transform scale are padded
	// up before the split.
	var s State
	s.pic.lumaWidth = 1921
	s.pic.lumaHeight = 1079
	s.pic.dwtDepth = 2
	if got := s.subbandWidth(0, compY); got != 481 {
		t.Errorf("subbandWidth(0) = %d, want 481", got)
	}
	if got := s.subbandHeight(0, compY); got != 270 {
		t.Errorf("subbandHeight(0) = %d, want 270", got)
	}
}

func TestSubbandDimensionsHorizontalOnly(t *testing.T) {
	// Horizontal-only levels split the width but never the height.
	var s State
	s.pic.lumaWidth = 64
	s.pic.lumaHeight = 8
	s.pic.dwtDepthHO = 2
	tests := []struct {
		level, width int
	}{
		{0, 16}, {1, 16}, {2, 32},
	}
	for _, tt := range tests {
		if got := s.subbandWidth(tt.level, compY); got != tt.width {
			t.Errorf("subbandWidth(%d) = %d, want %d", tt.level, got, tt.width)
		}
		if got := s.subbandHeight(tt.level, compY); got != 8 {
			t.Errorf("subbandHeight(%d) = %d, want 8", tt.level, got)
		}
	}
}

func TestSliceBoundsCoverSubband(t *testing.T) {
	var s State
	s.pic.lumaWidth = 100
	s.pic.lumaHeight = 50
	s.pic.slicesX = 7
	s.pic.slicesY = 3

	covered := 0
	for sy := 0; sy < s.pic.slicesY; sy++ {
		for sx := 0; sx < s.pic.slicesX; sx++ {
			w := s.sliceRight(sx, compY, 0) - s.sliceLeft(sx, compY, 0)
			h := s.sliceBottom(sy, compY, 0) - s.sliceTop(sy, compY, 0)
			if w <= 0 || h <= 0 {
				t.Errorf("slice (%d, %d) is %dx%d, want positive dimensions", sx, sy, w, h)
			}
			covered += w * h
		}
	}
	if covered != 100*50 {
		t.Errorf("slices cover %d coefficients, want %d", covered, 100*50)
	}
}

func TestDCPrediction(t *testing.T) {
	band := Plane{{1, 2}, {3, 4}}
	dcPrediction(band)
	want := Plane{{1, 3}, {4, 7}}
	for y := range want {
		for x := range want[y] {
			if band[y][x] != want[y][x] {
				t.Errorf("band[%d][%d] = %d, want %d", y, x, band[y][x], want[y][x])
			}
		}
	}
}

func TestDefaultQuantMatrixShapes(t *testing.T) {
	for key, matrix := range defaultQuantMatrices {
		if len(matrix.H) != key.depthHO {
			t.Errorf("matrix %v has %d H entries, want %d", key, len(matrix.H), key.depthHO)
		}
		if len(matrix.HL) != key.depth || len(matrix.LH) != key.depth || len(matrix.HH) != key.depth {
			t.Errorf("matrix %v has %d/%d/%d 2D entries, want %d each",
				key, len(matrix.HL), len(matrix.LH), len(matrix.HH), key.depth)
		}
	}
}

func TestSetSourceDefaults(t *testing.T) {
	video := setSourceDefaults(BaseFormatHD1080I60)
	if video.FrameWidth != 1920 || video.FrameHeight != 1080 {
		t.Errorf("frame = %dx%d, want 1920x1080", video.FrameWidth, video.FrameHeight)
	}
	if video.ColorDiffFormat != ColorDiff422 {
		t.Errorf("ColorDiffFormat = %d, want 4:2:2", video.ColorDiffFormat)
	}
	if video.FrameRateNumer != 30000 || video.FrameRateDenom != 1001 {
		t.Errorf("frame rate = %d/%d, want 30000/1001", video.FrameRateNumer, video.FrameRateDenom)
	}
	if video.LumaExcursion != 876 {
		t.Errorf("LumaExcursion = %d, want 876", video.LumaExcursion)
	}
}
