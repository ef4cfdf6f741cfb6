package vc2

// Plane is a two dimensional array of coefficients indexed [y][x].
type Plane [][]int

func newPlane(width, height int) Plane {
	rows := make(Plane, height)
	cells := make([]int, width*height)
	for y := range rows {
		rows[y] = cells[y*width : (y+1)*width : (y+1)*width]
	}
	return rows
}

func (p Plane) width() int {
	if len(p) == 0 {
		return 0
	}
	return len(p[0])
}

func (p Plane) height() int { return len(p) }

// TransformData holds the decoded wavelet coefficients of one picture
// component. DC is the residual low-pass band. H holds one band per
// horizontal-only transform level, lowest frequency first; it is empty
// for symmetric transforms. HL, LH and HH hold one band per
// two-dimensional level, lowest frequency first.
type TransformData struct {
	DC Plane
	H  []Plane
	HL []Plane
	LH []Plane
	HH []Plane
}

// initializeWaveletData allocates the coefficient bands for one
// picture component (13.2.2).
func (s *State) initializeWaveletData(comp component) *TransformData {
	t := &TransformData{
		DC: newPlane(s.subbandWidth(0, comp), s.subbandHeight(0, comp)),
	}
	for level := 1; level <= s.pic.dwtDepthHO; level++ {
		t.H = append(t.H, newPlane(s.subbandWidth(level, comp), s.subbandHeight(level, comp)))
	}
	for level := s.pic.dwtDepthHO + 1; level <= s.pic.dwtDepthHO+s.pic.dwtDepth; level++ {
		w := s.subbandWidth(level, comp)
		h := s.subbandHeight(level, comp)
		t.HL = append(t.HL, newPlane(w, h))
		t.LH = append(t.LH, newPlane(w, h))
		t.HH = append(t.HH, newPlane(w, h))
	}
	return t
}

// subbandSlice is one band of one component in coefficient reading
// order, paired with the quantizer derived for the current slice.
type subbandSlice struct {
	level     int
	plane     Plane
	quantizer int
}

// subbandOrder returns a component's bands in the order slices code
// them: DC, horizontal-only bands, then HL, LH, HH per 2D level
// (13.5.6.1).
func (s *State) subbandOrder(t *TransformData) []subbandSlice {
	q := &s.pic.quantizer
	out := []subbandSlice{{0, t.DC, q.DC}}
	for i, p := range t.H {
		out = append(out, subbandSlice{i + 1, p, q.H[i]})
	}
	for i := range t.HL {
		level := s.pic.dwtDepthHO + 1 + i
		out = append(out,
			subbandSlice{level, t.HL[i], q.HL[i]},
			subbandSlice{level, t.LH[i], q.LH[i]},
			subbandSlice{level, t.HH[i], q.HH[i]})
	}
	return out
}

// transformData parses every slice of a whole coded picture (13.5.2)
// and applies DC prediction where the parse code calls for it.
func (d *Decoder) transformData() error {
	s := &d.s
	s.pic.yTransform = s.initializeWaveletData(compY)
	s.pic.c1Transform = s.initializeWaveletData(compC1)
	s.pic.c2Transform = s.initializeWaveletData(compC2)
	for sy := 0; sy < s.pic.slicesY; sy++ {
		for sx := 0; sx < s.pic.slicesX; sx++ {
			if err := d.slice(sx, sy); err != nil {
				return err
			}
		}
	}
	if s.seq.parseCode.UsingDCPrediction() {
		s.predictDCBands()
	}
	return nil
}

func (s *State) predictDCBands() {
	dcPrediction(s.pic.yTransform.DC)
	dcPrediction(s.pic.c1Transform.DC)
	dcPrediction(s.pic.c2Transform.DC)
}

// slice parses one coded slice (13.5.2).
func (d *Decoder) slice(sx, sy int) error {
	if d.s.seq.parseCode.IsLowDelay() {
		return d.ldSlice(sx, sy)
	}
	return d.hqSlice(sx, sy)
}

// ldSlice parses one low-delay slice (13.5.3.1). The slice occupies a
// fixed byte budget split between the luma and color difference
// coefficients by an explicit length field.
func (d *Decoder) ldSlice(sx, sy int) error {
	s := &d.s
	sliceBitsLeft := 8 * s.sliceBytes(sx, sy)

	qindex, err := s.readNBits(7)
	if err != nil {
		return err
	}
	sliceBitsLeft -= 7
	if err := s.assertLevelConstraint("qindex", int64(qindex)); err != nil {
		return err
	}
	s.sliceQuantizers(int(qindex))

	lengthBits := intlog2(uint64(8*s.sliceBytes(sx, sy) - 7))
	sliceYLength, err := s.readNBits(lengthBits)
	if err != nil {
		return err
	}
	sliceBitsLeft -= lengthBits
	if sliceYLength > uint64(sliceBitsLeft) {
		return &InvalidSliceYLength{
			Length: sliceYLength,
			Max:    uint64(sliceBitsLeft),
			SliceX: sx,
			SliceY: sy,
		}
	}

	s.r.SetBounded(int(sliceYLength))
	for _, band := range s.subbandOrder(s.pic.yTransform) {
		if err := s.sliceBand(band, compY, sx, sy); err != nil {
			return err
		}
	}
	if err := s.flushBounded(); err != nil {
		return err
	}

	sliceBitsLeft -= int(sliceYLength)
	s.r.SetBounded(sliceBitsLeft)
	if err := s.colorDiffSlice(sx, sy); err != nil {
		return err
	}
	return s.flushBounded()
}

// hqSlice parses one high-quality slice (13.5.4). Each component has
// its own length field, in units of the slice size scaler.
func (d *Decoder) hqSlice(sx, sy int) error {
	s := &d.s
	startByte, _ := s.r.Tell()

	for i := uint64(0); i < s.pic.slicePrefixBytes; i++ {
		if _, err := s.readUintLit(1); err != nil {
			return err
		}
	}

	qindex, err := s.readUintLit(1)
	if err != nil {
		return err
	}
	if err := s.assertLevelConstraint("qindex", int64(qindex)); err != nil {
		return err
	}
	s.sliceQuantizers(int(qindex))

	for _, t := range []*TransformData{s.pic.yTransform, s.pic.c1Transform, s.pic.c2Transform} {
		lengthUnits, err := s.readUintLit(1)
		if err != nil {
			return err
		}
		length := s.pic.sliceSizeScaler * lengthUnits
		comp := compY
		if t != s.pic.yTransform {
			comp = compC1
		}
		s.r.SetBounded(int(8 * length))
		for _, band := range s.subbandOrder(t) {
			if err := s.sliceBand(band, comp, sx, sy); err != nil {
				return err
			}
		}
		if err := s.flushBounded(); err != nil {
			return err
		}
	}

	endByte, _ := s.r.Tell()
	return s.assertLevelConstraint("total_slice_bytes", endByte-startByte)
}

// sliceBand reads one slice's worth of coefficients from one band
// (13.5.6.3).
func (s *State) sliceBand(band subbandSlice, comp component, sx, sy int) error {
	y1 := s.sliceTop(sy, comp, band.level)
	y2 := s.sliceBottom(sy, comp, band.level)
	x1 := s.sliceLeft(sx, comp, band.level)
	x2 := s.sliceRight(sx, comp, band.level)
	for y := y1; y < y2; y++ {
		for x := x1; x < x2; x++ {
			v, err := s.readSintB()
			if err != nil {
				return err
			}
			band.plane[y][x] = inverseQuant(int(v), band.quantizer)
		}
	}
	return nil
}

// colorDiffSlice reads one slice's worth of interleaved C1 and C2
// coefficients, band by band (13.5.6.4).
func (s *State) colorDiffSlice(sx, sy int) error {
	c1Bands := s.subbandOrder(s.pic.c1Transform)
	c2Bands := s.subbandOrder(s.pic.c2Transform)
	for i, band := range c1Bands {
		y1 := s.sliceTop(sy, compC1, band.level)
		y2 := s.sliceBottom(sy, compC1, band.level)
		x1 := s.sliceLeft(sx, compC1, band.level)
		x2 := s.sliceRight(sx, compC1, band.level)
		for y := y1; y < y2; y++ {
			for x := x1; x < x2; x++ {
				v, err := s.readSintB()
				if err != nil {
					return err
				}
				band.plane[y][x] = inverseQuant(int(v), band.quantizer)
				v, err = s.readSintB()
				if err != nil {
					return err
				}
				c2Bands[i].plane[y][x] = inverseQuant(int(v), band.quantizer)
			}
		}
	}
	return nil
}

// dcPrediction undoes the DC band's spatial prediction in place
// (13.4): each coefficient was coded as a residual against the mean of
// its left, above-left and above neighbours.
func dcPrediction(band Plane) {
	for y := 0; y < band.height(); y++ {
		for x := 0; x < band.width(); x++ {
			var prediction int
			switch {
			case x > 0 && y > 0:
				prediction = mean(band[y][x-1], band[y-1][x-1], band[y-1][x])
			case x > 0:
				prediction = band[0][x-1]
			case y > 0:
				prediction = band[y-1][0]
			}
			band[y][x] += prediction
		}
	}
}
