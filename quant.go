package vc2

// quantFactor returns the quantization factor for a quantization index
// (13.3.2): an integer approximation of 2^(index/4) scaled by 4.
func quantFactor(index int) int {
	base := 1 << uint(index/4)
	switch index % 4 {
	case 0:
		return 4 * base
	case 1:
		return (503829*base + 52958) / 105917
	case 2:
		return (665857*base + 58854) / 117708
	default:
		return (440253*base + 32722) / 65444
	}
}

// quantOffset returns the rounding offset paired with a quantization
// factor (13.3.2).
func quantOffset(index int) int {
	switch index {
	case 0:
		return 1
	case 1:
		return 2
	}
	return (quantFactor(index) + 1) / 2
}

// inverseQuant reconstructs a coefficient from its quantized value
// (13.3.1).
func inverseQuant(quantized, index int) int {
	magnitude := quantized
	if magnitude < 0 {
		magnitude = -magnitude
	}
	if magnitude != 0 {
		magnitude *= quantFactor(index)
		magnitude += quantOffset(index)
		magnitude += 2
		magnitude /= 4
	}
	return sign(quantized) * magnitude
}

// forwardQuant quantizes a coefficient, the encoder-side inverse of
// inverseQuant. Round-trip error is bounded by the quantization
// factor.
func forwardQuant(coeff, index int) int {
	magnitude := coeff
	if magnitude < 0 {
		magnitude = -magnitude
	}
	quantized := 4 * magnitude / quantFactor(index)
	return sign(coeff) * quantized
}

// sliceQuantizers derives the per-subband quantizers for a slice from
// its quantization index and the picture's quantization matrix
// (13.5.5).
func (s *State) sliceQuantizers(qindex int) {
	q := QuantMatrix{
		DC: maxInt(qindex-s.pic.quantMatrix.DC, 0),
		H:  make([]int, len(s.pic.quantMatrix.H)),
		HL: make([]int, len(s.pic.quantMatrix.HL)),
		LH: make([]int, len(s.pic.quantMatrix.LH)),
		HH: make([]int, len(s.pic.quantMatrix.HH)),
	}
	for i, m := range s.pic.quantMatrix.H {
		q.H[i] = maxInt(qindex-m, 0)
	}
	for i, m := range s.pic.quantMatrix.HL {
		q.HL[i] = maxInt(qindex-m, 0)
	}
	for i, m := range s.pic.quantMatrix.LH {
		q.LH[i] = maxInt(qindex-m, 0)
	}
	for i, m := range s.pic.quantMatrix.HH {
		q.HH[i] = maxInt(qindex-m, 0)
	}
	s.pic.quantizer = q
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
