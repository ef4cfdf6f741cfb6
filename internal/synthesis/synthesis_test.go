package synthesis

import (
	"reflect"
	"testing"
)

func TestShift(t *testing.T) {
	tests := []struct {
		index int
		want  int
	}{
		{DeslauriersDubuc97, 1},
		{LeGall53, 1},
		{DeslauriersDubuc137, 1},
		{HaarNoShift, 0},
		{HaarWithShift, 1},
		{Fidelity, 0},
		{Daubechies97, 1},
	}
	for _, tt := range tests {
		if got := Shift(tt.index); got != tt.want {
			t.Errorf("Shift(%d) = %d, want %d", tt.index, got, tt.want)
		}
	}
}

func TestHaarHSynthesis(t *testing.T) {
	// A Haar low/high pair (L, H) reconstructs to
	// (L - (H+1)>>1, H + that).
	low := [][]int{{5}}
	high := [][]int{{3}}

	got := HSynthesis(low, high, HaarNoShift)
	want := [][]int{{3, 6}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("HSynthesis(haar_no_shift) = %v, want %v", got, want)
	}

	got = HSynthesis(low, high, HaarWithShift)
	want = [][]int{{2, 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("HSynthesis(haar_with_shift) = %v, want %v", got, want)
	}
}

func TestLeGallConstantSignal(t *testing.T) {
	// A constant low band with zero high coefficients synthesizes to a
	// constant signal; the output bit shift then halves it with
	// rounding.
	low := [][]int{{8, 8}}
	high := [][]int{{0, 0}}
	got := HSynthesis(low, high, LeGall53)
	want := [][]int{{4, 4, 4, 4}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("HSynthesis(le_gall_5_3) = %v, want %v", got, want)
	}
}

// haarForward1D is the Haar analysis filter, the exact inverse of the
// haar_no_shift synthesis lifting stages.
func haarForward1D(a []int) {
	for n := 0; n < len(a)/2; n++ {
		a[2*n+1] -= a[2*n]
	}
	for n := 0; n < len(a)/2; n++ {
		a[2*n] += (a[2*n+1] + 1) >> 1
	}
}

func TestHaarRoundTrip2D(t *testing.T) {
	original := [][]int{
		{10, 20, 30, 40},
		{15, 25, 35, 45},
		{-5, 0, 5, 100},
		{7, 7, 7, 7},
	}

	// Analyze: rows first, then columns (the reverse of synthesis).
	data := make([][]int, len(original))
	for y := range original {
		data[y] = append([]int(nil), original[y]...)
	}
	for y := range data {
		haarForward1D(data[y])
	}
	col := make([]int, len(data))
	for x := 0; x < len(data[0]); x++ {
		for y := range data {
			col[y] = data[y][x]
		}
		haarForward1D(col)
		for y := range data {
			data[y][x] = col[y]
		}
	}

	// Deinterleave into the four subbands.
	h := len(data) / 2
	w := len(data[0]) / 2
	ll := newArray(w, h)
	hl := newArray(w, h)
	lh := newArray(w, h)
	hh := newArray(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			ll[y][x] = data[2*y][2*x]
			hl[y][x] = data[2*y][2*x+1]
			lh[y][x] = data[2*y+1][2*x]
			hh[y][x] = data[2*y+1][2*x+1]
		}
	}

	got := VHSynthesis(ll, hl, lh, hh, HaarNoShift, HaarNoShift)
	if !reflect.DeepEqual(got, original) {
		t.Errorf("VHSynthesis round trip = %v, want %v", got, original)
	}
}

func TestOnedShortArray(t *testing.T) {
	// Arrays shorter than one low/high pair are left untouched.
	a := []int{42}
	oned(a, LeGall53)
	if a[0] != 42 {
		t.Errorf("oned on single sample = %d, want 42", a[0])
	}
}
