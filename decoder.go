package vc2

import (
	"io"

	"github.com/kwahlin/go-vc2/internal/bits"
)

// Picture is one decoded picture: the wavelet coefficients of its
// three components plus the video format it was coded against. When
// the decoder has a Synthesizer, Samples holds its output.
type Picture struct {
	Number     uint32
	Y          *TransformData
	C1         *TransformData
	C2         *TransformData
	Video      VideoParameters
	CodingMode PictureCodingMode
	Transform  TransformParameters
	Samples    *Samples
}

// TransformParameters records the wavelet transform a picture's
// coefficients were coded with (12.4.1).
type TransformParameters struct {
	WaveletIndex   WaveletFilter
	WaveletIndexHO WaveletFilter
	Depth          int
	DepthHO        int
}

// Samples holds reconstructed sample arrays for the three picture
// components.
type Samples struct {
	Y  Plane
	C1 Plane
	C2 Plane
}

// Synthesizer reconstructs picture samples from decoded wavelet
// coefficients (15.3). The decoder itself only checks conformance;
// implementations supply the inverse transform.
type Synthesizer interface {
	// Synthesize applies the inverse wavelet transform to a picture's
	// coefficients.
	Synthesize(p *Picture) (*Samples, error)
	// DeclipAndReoffset clips the samples to the signal range declared
	// by the video parameters and applies its offsets (15.5).
	DeclipAndReoffset(samples *Samples, video *VideoParameters) error
}

// DecoderOptions configures a Decoder. The zero value checks
// conformance without delivering pictures.
type DecoderOptions struct {
	// OnPicture is called once per decoded picture, in stream order.
	// Returning an error aborts decoding.
	OnPicture func(p *Picture) error

	// Synthesizer, if non-nil, reconstructs samples for every decoded
	// picture before OnPicture sees it.
	Synthesizer Synthesizer

	// LevelConstraints overrides the bundled level conformance data.
	LevelConstraints *LevelConstraints
}

// Decoder checks a stream for conformance while decoding it.
type Decoder struct {
	s    State
	opts DecoderOptions
}

// NewDecoder creates a decoder reading from r.
func NewDecoder(r io.Reader, opts *DecoderOptions) *Decoder {
	d := &Decoder{}
	if opts != nil {
		d.opts = *opts
	}
	d.s.r = bits.NewReader(r)
	d.s.levelTable = defaultLevelConstraintTable
	if d.opts.LevelConstraints != nil {
		d.s.levelTable = d.opts.LevelConstraints.toTable()
		d.s.levelPatterns = d.opts.LevelConstraints.SequenceRestrictions
	}
	return d
}

// DecodeStream decodes sequences until the input is exhausted. Streams
// contain at least one sequence, so an empty input fails with
// UnexpectedEndOfStream.
func (d *Decoder) DecodeStream() error {
	if err := d.parseSequence(); err != nil {
		return err
	}
	for !d.s.r.IsEndOfStream() {
		if err := d.parseSequence(); err != nil {
			return err
		}
	}
	return nil
}

// DecodeSequence decodes exactly one sequence and requires the input
// to end with it.
func (d *Decoder) DecodeSequence() error {
	if err := d.parseSequence(); err != nil {
		return err
	}
	if !d.s.r.IsEndOfStream() {
		offset, _ := d.s.r.Tell()
		return &TrailingBytesAfterEndOfSequence{Offset: offset}
	}
	return nil
}

// emitPicture hands a completed picture to the configured
// collaborators.
func (d *Decoder) emitPicture() error {
	s := &d.s
	p := &Picture{
		Number:     s.pic.pictureNumber,
		Y:          s.pic.yTransform,
		C1:         s.pic.c1Transform,
		C2:         s.pic.c2Transform,
		Video:      s.seq.video,
		CodingMode: s.seq.pictureCodingMode,
		Transform: TransformParameters{
			WaveletIndex:   s.pic.waveletIndex,
			WaveletIndexHO: s.pic.waveletIndexHO,
			Depth:          s.pic.dwtDepth,
			DepthHO:        s.pic.dwtDepthHO,
		},
	}
	if d.opts.Synthesizer != nil {
		samples, err := d.opts.Synthesizer.Synthesize(p)
		if err != nil {
			return err
		}
		if err := d.opts.Synthesizer.DeclipAndReoffset(samples, &p.Video); err != nil {
			return err
		}
		p.Samples = samples
	}
	if d.opts.OnPicture != nil {
		return d.opts.OnPicture(p)
	}
	return nil
}
