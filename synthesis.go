package vc2

import "github.com/kwahlin/go-vc2/internal/synthesis"

// WaveletSynthesizer is a Synthesizer reconstructing picture samples
// with the integer lifting filters of Tables 15.1 to 15.6.
type WaveletSynthesizer struct{}

// Synthesize applies the inverse wavelet transform to all three
// picture components and removes the transform padding (15.3, 15.4).
func (WaveletSynthesizer) Synthesize(p *Picture) (*Samples, error) {
	lumaWidth, lumaHeight, colorDiffWidth, colorDiffHeight := pictureDimensions(&p.Video, p.CodingMode)
	return &Samples{
		Y:  synthesizeComponent(p.Y, p.Transform, lumaWidth, lumaHeight),
		C1: synthesizeComponent(p.C1, p.Transform, colorDiffWidth, colorDiffHeight),
		C2: synthesizeComponent(p.C2, p.Transform, colorDiffWidth, colorDiffHeight),
	}, nil
}

// DeclipAndReoffset clips each component to the signed range of its
// declared bit depth and adds the mid-range offset back (15.5).
func (WaveletSynthesizer) DeclipAndReoffset(samples *Samples, video *VideoParameters) error {
	clipAndOffset(samples.Y, intlog2(video.LumaExcursion+1))
	clipAndOffset(samples.C1, intlog2(video.ColorDiffExcursion+1))
	clipAndOffset(samples.C2, intlog2(video.ColorDiffExcursion+1))
	return nil
}

// synthesizeComponent runs the horizontal-only levels, then the
// two-dimensional levels, of the inverse transform and trims the
// result to the coded component dimensions (15.4.1, 15.4.5).
func synthesizeComponent(t *TransformData, tp TransformParameters, width, height uint64) Plane {
	band := [][]int(t.DC)
	for n := 0; n < tp.DepthHO; n++ {
		band = synthesis.HSynthesis(band, t.H[n], int(tp.WaveletIndexHO))
	}
	for n := 0; n < tp.Depth; n++ {
		band = synthesis.VHSynthesis(band, t.HL[n], t.LH[n], t.HH[n],
			int(tp.WaveletIndex), int(tp.WaveletIndexHO))
	}
	band = band[:height]
	for y := range band {
		band[y] = band[y][:width]
	}
	return Plane(band)
}

func clipAndOffset(p Plane, depth int) {
	offset := 0
	if depth > 0 {
		offset = 1 << (depth - 1)
	}
	max := offset - 1
	if max < 0 {
		max = 0
	}
	for _, row := range p {
		for x, v := range row {
			row[x] = clip(v, -offset, max) + offset
		}
	}
}

// pictureDimensions derives the coded component dimensions from the
// video parameters and picture coding mode (11.6.2).
func pictureDimensions(video *VideoParameters, mode PictureCodingMode) (lumaWidth, lumaHeight, colorDiffWidth, colorDiffHeight uint64) {
	lumaWidth = video.FrameWidth
	lumaHeight = video.FrameHeight
	if mode == PicturesAreFields {
		lumaHeight /= 2
	}
	colorDiffWidth = lumaWidth
	colorDiffHeight = lumaHeight
	switch video.ColorDiffFormat {
	case ColorDiff422:
		colorDiffWidth /= 2
	case ColorDiff420:
		colorDiffWidth /= 2
		colorDiffHeight /= 2
	}
	return
}
