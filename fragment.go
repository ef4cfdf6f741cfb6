package vc2

// fragmentParse parses one fragment data unit (14.1). A fragment with
// a slice count of zero carries the transform parameters and starts a
// new fragmented picture; every other fragment carries slices of the
// picture in progress.
func (d *Decoder) fragmentParse() error {
	s := &d.s
	s.r.ByteAlign()
	if err := d.fragmentHeader(); err != nil {
		return err
	}
	if s.frag.sliceCount == 0 {
		s.r.ByteAlign()
		if err := d.transformParameters(); err != nil {
			return err
		}
		s.initializeFragmentState()
		return nil
	}
	s.r.ByteAlign()
	return d.fragmentData()
}

// fragmentHeader parses a fragment header (14.2) and checks the rules
// stitching fragments into pictures: a picture may not restart, its
// number may not change, and its slices arrive contiguously in raster
// scan order without excess.
func (d *Decoder) fragmentHeader() error {
	s := &d.s
	fragmentOffset, _ := s.r.Tell()

	number, err := s.readUintLit(4)
	if err != nil {
		return err
	}
	numberOffset, _ := s.r.Tell()

	dataLength, err := s.readUintLit(2)
	if err != nil {
		return err
	}
	s.frag.dataLength = dataLength
	sliceCount, err := s.readUintLit(2)
	if err != nil {
		return err
	}
	s.frag.sliceCount = int(sliceCount)

	if sliceCount == 0 {
		if s.frag.slicesRemaining != 0 {
			return &FragmentedPictureRestarted{
				InitialOffset:   s.frag.initialOffset,
				Offset:          fragmentOffset,
				SlicesReceived:  s.frag.slicesReceived,
				SlicesRemaining: s.frag.slicesRemaining,
			}
		}
		if err := s.assertPictureNumber(uint32(number), numberOffset); err != nil {
			return err
		}
		s.frag.initialOffset = fragmentOffset
		return nil
	}

	if uint32(number) != s.seq.lastPictureNumber {
		return &PictureNumberChangedMidFragmentedPicture{
			LastOffset: s.seq.lastPictureNumberOffset,
			LastNumber: s.seq.lastPictureNumber,
			Offset:     numberOffset,
			Number:     uint32(number),
		}
	}
	if int(sliceCount) > s.frag.slicesRemaining {
		return &TooManySlicesInFragmentedPicture{
			InitialOffset:   s.frag.initialOffset,
			Offset:          fragmentOffset,
			SlicesReceived:  s.frag.slicesReceived,
			SlicesRemaining: s.frag.slicesRemaining,
			SliceCount:      int(sliceCount),
		}
	}

	xOffset, err := s.readUintLit(2)
	if err != nil {
		return err
	}
	yOffset, err := s.readUintLit(2)
	if err != nil {
		return err
	}
	expectedX := s.frag.slicesReceived % s.pic.slicesX
	expectedY := s.frag.slicesReceived / s.pic.slicesX
	if int(xOffset) != expectedX || int(yOffset) != expectedY {
		return &FragmentSlicesNotContiguous{
			InitialOffset: s.frag.initialOffset,
			Offset:        fragmentOffset,
			SliceX:        int(xOffset),
			SliceY:        int(yOffset),
			ExpectedX:     expectedX,
			ExpectedY:     expectedY,
		}
	}
	s.frag.xOffset = int(xOffset)
	s.frag.yOffset = int(yOffset)
	return nil
}

// initializeFragmentState allocates the coefficient arrays for a new
// fragmented picture (14.3).
func (s *State) initializeFragmentState() {
	s.pic.yTransform = s.initializeWaveletData(compY)
	s.pic.c1Transform = s.initializeWaveletData(compC1)
	s.pic.c2Transform = s.initializeWaveletData(compC2)
	s.frag.slicesReceived = 0
	s.frag.slicesRemaining = s.pic.slicesX * s.pic.slicesY
	s.frag.done = false
}

// fragmentData parses the slices carried by one fragment (14.4). The
// final slice of a picture completes it.
func (d *Decoder) fragmentData() error {
	s := &d.s
	total := s.pic.slicesX * s.pic.slicesY
	start := s.frag.yOffset*s.pic.slicesX + s.frag.xOffset
	for i := 0; i < s.frag.sliceCount; i++ {
		sx := (start + i) % s.pic.slicesX
		sy := (start + i) / s.pic.slicesX
		if err := d.slice(sx, sy); err != nil {
			return err
		}
		s.frag.slicesReceived++
		s.frag.slicesRemaining--
		if s.frag.slicesReceived == total {
			s.frag.done = true
			if s.seq.parseCode.UsingDCPrediction() {
				s.predictDCBands()
			}
			if err := d.emitPicture(); err != nil {
				return err
			}
		}
	}
	return nil
}
