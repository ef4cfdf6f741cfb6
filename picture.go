package vc2

import (
	"github.com/kwahlin/go-vc2/internal/constraint"
)

// pictureParse parses a whole (unfragmented) coded picture (12.1).
func (d *Decoder) pictureParse() error {
	s := &d.s
	s.r.ByteAlign()
	if err := d.pictureHeader(); err != nil {
		return err
	}
	s.r.ByteAlign()
	if err := d.transformParameters(); err != nil {
		return err
	}
	s.r.ByteAlign()
	if err := d.transformData(); err != nil {
		return err
	}
	return d.emitPicture()
}

// pictureHeader parses the picture number (12.2) and checks it against
// the numbering rules: numbers increment by one (wrapping at 32 bits)
// and the earlier field of each frame is even-numbered.
func (d *Decoder) pictureHeader() error {
	s := &d.s
	number, err := s.readUintLit(4)
	if err != nil {
		return err
	}
	offset, _ := s.r.Tell()

	if s.frag.slicesRemaining != 0 {
		return &PictureInterleavedWithFragmentedPicture{
			FragmentOffset: s.frag.initialOffset,
			FragmentNumber: s.seq.lastPictureNumber,
			Offset:         offset,
			Number:         uint32(number),
		}
	}

	return s.assertPictureNumber(uint32(number), offset)
}

// assertPictureNumber applies the picture numbering rules shared by
// picture headers and the first fragment of a fragmented picture, then
// records the number as the latest in the sequence.
func (s *State) assertPictureNumber(number uint32, offset int64) error {
	if s.seq.havePictureNumber && number != s.seq.lastPictureNumber+1 {
		return &NonConsecutivePictureNumbers{
			LastOffset: s.seq.lastPictureNumberOffset,
			LastNumber: s.seq.lastPictureNumber,
			Offset:     offset,
			Number:     number,
		}
	}
	if s.seq.pictureCodingMode == PicturesAreFields &&
		s.seq.numPicturesInSequence%2 == 0 && number%2 == 1 {
		return &EarliestFieldHasOddPictureNumber{Number: number}
	}

	s.pic.pictureNumber = number
	s.seq.havePictureNumber = true
	s.seq.lastPictureNumber = number
	s.seq.lastPictureNumberOffset = offset
	s.seq.numPicturesInSequence++
	return nil
}

// transformParameters parses the wavelet transform declaration, the
// slice layout and the quantization matrix (12.4.1).
func (d *Decoder) transformParameters() error {
	s := &d.s

	index, err := s.readUint()
	if err != nil {
		return err
	}
	wavelet := WaveletFilter(index)
	if !wavelet.IsValid() {
		return &BadWaveletIndex{Index: index}
	}
	if err := s.assertLevelConstraint("wavelet_index", int64(index)); err != nil {
		return err
	}
	s.pic.waveletIndex = wavelet

	depth, err := s.readUint()
	if err != nil {
		return err
	}
	if err := s.assertLevelConstraint("dwt_depth", int64(depth)); err != nil {
		return err
	}
	s.pic.dwtDepth = int(depth)

	s.pic.waveletIndexHO = s.pic.waveletIndex
	s.pic.dwtDepthHO = 0
	if s.seq.majorVersion >= 3 {
		if err := d.extendedTransformParameters(); err != nil {
			return err
		}
	}
	s.recordMinimumVersion(waveletTransformVersion(
		s.pic.waveletIndex, s.pic.waveletIndexHO, s.pic.dwtDepthHO))

	if err := d.sliceParameters(); err != nil {
		return err
	}
	return d.quantMatrix()
}

// extendedTransformParameters parses the asymmetric transform
// extension (12.4.4.1), present from major_version 3.
func (d *Decoder) extendedTransformParameters() error {
	s := &d.s

	asymIndex, err := s.readBool()
	if err != nil {
		return err
	}
	if err := s.assertLevelConstraintBool("asym_transform_index_flag", asymIndex); err != nil {
		return err
	}
	if asymIndex {
		index, err := s.readUint()
		if err != nil {
			return err
		}
		wavelet := WaveletFilter(index)
		if !wavelet.IsValid() {
			return &BadHOWaveletIndex{Index: index}
		}
		if err := s.assertLevelConstraint("wavelet_index_ho", int64(index)); err != nil {
			return err
		}
		s.pic.waveletIndexHO = wavelet
	}

	asymDepth, err := s.readBool()
	if err != nil {
		return err
	}
	if err := s.assertLevelConstraintBool("asym_transform_flag", asymDepth); err != nil {
		return err
	}
	if asymDepth {
		depth, err := s.readUint()
		if err != nil {
			return err
		}
		if err := s.assertLevelConstraint("dwt_depth_ho", int64(depth)); err != nil {
			return err
		}
		s.pic.dwtDepthHO = int(depth)
	}
	return nil
}

// sliceParameters parses the slice layout (12.4.5.2): the slice grid
// plus the size parameters of the profile's slice coding.
func (d *Decoder) sliceParameters() error {
	s := &d.s

	slicesX, err := s.readUint()
	if err != nil {
		return err
	}
	if err := s.assertLevelConstraint("slices_x", int64(slicesX)); err != nil {
		return err
	}
	slicesY, err := s.readUint()
	if err != nil {
		return err
	}
	if err := s.assertLevelConstraint("slices_y", int64(slicesY)); err != nil {
		return err
	}
	if slicesX == 0 || slicesY == 0 {
		return &ZeroSlicesInCodedPicture{SlicesX: slicesX, SlicesY: slicesY}
	}
	s.pic.slicesX = int(slicesX)
	s.pic.slicesY = int(slicesY)

	// Some levels require the slice grid to divide every subband
	// evenly, which holds exactly when it divides the DC band.
	same := s.subbandWidth(0, compY)%s.pic.slicesX == 0 &&
		s.subbandHeight(0, compY)%s.pic.slicesY == 0 &&
		s.subbandWidth(0, compC1)%s.pic.slicesX == 0 &&
		s.subbandHeight(0, compC1)%s.pic.slicesY == 0
	if err := s.assertLevelConstraintBool("slices_have_same_dimensions", same); err != nil {
		return err
	}

	if s.seq.parseCode.IsLowDelay() {
		numerator, err := s.readUint()
		if err != nil {
			return err
		}
		if err := s.assertLevelConstraint("slice_bytes_numerator", int64(numerator)); err != nil {
			return err
		}
		denominator, err := s.readUint()
		if err != nil {
			return err
		}
		if err := s.assertLevelConstraint("slice_bytes_denominator", int64(denominator)); err != nil {
			return err
		}
		if denominator == 0 {
			return &SliceBytesHasZeroDenominator{Numerator: numerator}
		}
		if numerator < denominator {
			return &SliceBytesIsLessThanOne{Numerator: numerator, Denominator: denominator}
		}
		s.pic.sliceBytesNumerator = numerator
		s.pic.sliceBytesDenominator = denominator
	}

	if s.seq.parseCode.IsHighQuality() {
		prefixBytes, err := s.readUint()
		if err != nil {
			return err
		}
		if err := s.assertLevelConstraint("slice_prefix_bytes", int64(prefixBytes)); err != nil {
			return err
		}
		s.pic.slicePrefixBytes = prefixBytes

		scaler, err := s.readUint()
		if err != nil {
			return err
		}
		if scaler == 0 {
			return &SliceSizeScalerIsZero{}
		}
		if err := s.assertLevelConstraint("slice_size_scaler", int64(scaler)); err != nil {
			return err
		}
		s.pic.sliceSizeScaler = scaler
	}
	return nil
}

// quantMatrix parses the quantization matrix selection (12.4.5.3):
// either explicit per-subband values or the default matrix for the
// declared transform shape.
func (d *Decoder) quantMatrix() error {
	s := &d.s

	custom, err := s.readBool()
	if err != nil {
		return err
	}
	if err := s.assertLevelConstraintBool("custom_quant_matrix", custom); err != nil {
		return err
	}

	if !custom {
		key := quantMatrixKey{
			indexHO: s.pic.waveletIndexHO,
			index:   s.pic.waveletIndex,
			depthHO: s.pic.dwtDepthHO,
			depth:   s.pic.dwtDepth,
		}
		matrix, ok := defaultQuantMatrices[key]
		if !ok {
			return &NoQuantisationMatrixAvailable{
				WaveletIndex:   s.pic.waveletIndex,
				HOWaveletIndex: s.pic.waveletIndexHO,
				DWTDepth:       s.pic.dwtDepth,
				DWTDepthHO:     s.pic.dwtDepthHO,
			}
		}
		s.pic.quantMatrix = matrix
		return nil
	}

	allowed := constraint.AllowedValuesFor(s.levelTable, "quant_matrix_values", s.seq.constrainedValues)
	readValue := func() (int, error) {
		v, err := s.readUint()
		if err != nil {
			return 0, err
		}
		if !allowed.Contains(int64(v)) {
			return 0, &QuantisationMatrixValueNotAllowedInLevel{
				Value:         v,
				AllowedValues: allowed.String(),
				Level:         s.seq.level,
			}
		}
		return int(v), nil
	}

	var matrix QuantMatrix
	if matrix.DC, err = readValue(); err != nil {
		return err
	}
	for level := 1; level <= s.pic.dwtDepthHO; level++ {
		v, err := readValue()
		if err != nil {
			return err
		}
		matrix.H = append(matrix.H, v)
	}
	for level := 0; level < s.pic.dwtDepth; level++ {
		hl, err := readValue()
		if err != nil {
			return err
		}
		lh, err := readValue()
		if err != nil {
			return err
		}
		hh, err := readValue()
		if err != nil {
			return err
		}
		matrix.HL = append(matrix.HL, hl)
		matrix.LH = append(matrix.LH, lh)
		matrix.HH = append(matrix.HH, hh)
	}
	s.pic.quantMatrix = matrix
	return nil
}
