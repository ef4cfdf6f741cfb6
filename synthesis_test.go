package vc2

import (
	"reflect"
	"testing"
)

func TestWaveletSynthesizerReconstructsSamples(t *testing.T) {
	stream := buildStream(hqHeaderUnit(), hqPictureUnit(0, false), eosUnit())

	var pictures []*Picture
	err := decodeStream(stream, &DecoderOptions{
		Synthesizer: WaveletSynthesizer{},
		OnPicture: func(p *Picture) error {
			pictures = append(pictures, p)
			return nil
		},
	})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(pictures) != 1 {
		t.Fatalf("got %d pictures, want 1", len(pictures))
	}

	// All-zero coefficients at 8 bits deep reconstruct to mid-range.
	samples := pictures[0].Samples
	if samples == nil {
		t.Fatal("Samples = nil, want reconstructed samples")
	}
	wantY := Plane{
		{128, 128, 128, 128},
		{128, 128, 128, 128},
	}
	if !reflect.DeepEqual(samples.Y, wantY) {
		t.Errorf("Y = %v, want %v", samples.Y, wantY)
	}
	wantC := Plane{{128, 128}}
	if !reflect.DeepEqual(samples.C1, wantC) {
		t.Errorf("C1 = %v, want %v", samples.C1, wantC)
	}
	if !reflect.DeepEqual(samples.C2, wantC) {
		t.Errorf("C2 = %v, want %v", samples.C2, wantC)
	}
}

func TestSynthesizeComponentHaarDepthOne(t *testing.T) {
	td := &TransformData{
		DC: Plane{{8}},
		HL: []Plane{{{0}}},
		LH: []Plane{{{0}}},
		HH: []Plane{{{0}}},
	}
	tp := TransformParameters{
		WaveletIndex:   WaveletHaarNoShift,
		WaveletIndexHO: WaveletHaarNoShift,
		Depth:          1,
	}

	got := synthesizeComponent(td, tp, 2, 2)
	want := Plane{{8, 8}, {8, 8}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("synthesizeComponent = %v, want %v", got, want)
	}
}

func TestClipAndOffset(t *testing.T) {
	p := Plane{{-500, -128, 0, 127, 500}}
	clipAndOffset(p, 8)
	want := Plane{{0, 0, 128, 255, 255}}
	if !reflect.DeepEqual(p, want) {
		t.Errorf("clipAndOffset = %v, want %v", p, want)
	}
}
