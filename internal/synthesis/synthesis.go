// Package synthesis implements the inverse discrete wavelet transforms
// used to reconstruct picture samples from subband coefficients (15.4).
//
// All seven coded filters use lifting-based integer implementations.
// Each filter is a short sequence of lifting stages applied in-place to
// an interleaved array, followed for some filters by an output bit
// shift.
package synthesis

import "sync"

// Column buffer pool for the vertical passes.
var colBufPool = sync.Pool{
	New: func() interface{} {
		buf := make([]int, 4096)
		return &buf
	},
}

// getColBuf returns a buffer of at least size n from the pool.
func getColBuf(n int) []int {
	bp := colBufPool.Get().(*[]int)
	buf := *bp
	if cap(buf) < n {
		buf = make([]int, n)
		*bp = buf
	}
	return buf[:n]
}

// putColBuf returns a buffer to the pool.
func putColBuf(buf []int) {
	bp := &buf
	colBufPool.Put(bp)
}

// Filter index constants (Table 12.1).
const (
	DeslauriersDubuc97 = iota
	LeGall53
	DeslauriersDubuc137
	HaarNoShift
	HaarWithShift
	Fidelity
	Daubechies97
)

// A lifting stage updates either the even or the odd samples of an
// interleaved array from a weighted sum of their opposite-parity
// neighbours (15.4.4.1). D is the offset of the first tap, S the
// scale shift of the weighted sum.
type stage struct {
	updateOdd bool
	subtract  bool
	s, l, d   int
	taps      []int
}

type filterParams struct {
	shift  int
	stages []stage
}

// Filter definitions from Tables 15.1 to 15.6, in synthesis order.
var filters = [...]filterParams{
	DeslauriersDubuc97: {
		shift: 1,
		stages: []stage{
			{subtract: true, s: 2, l: 2, d: 0, taps: []int{1, 1}},
			{updateOdd: true, s: 4, l: 4, d: -1, taps: []int{-1, 9, 9, -1}},
		},
	},
	LeGall53: {
		shift: 1,
		stages: []stage{
			{subtract: true, s: 2, l: 2, d: 0, taps: []int{1, 1}},
			{updateOdd: true, s: 1, l: 2, d: 0, taps: []int{1, 1}},
		},
	},
	DeslauriersDubuc137: {
		shift: 1,
		stages: []stage{
			{subtract: true, s: 5, l: 4, d: -1, taps: []int{-1, 9, 9, -1}},
			{updateOdd: true, s: 4, l: 4, d: -1, taps: []int{-1, 9, 9, -1}},
		},
	},
	HaarNoShift: {
		shift: 0,
		stages: []stage{
			{subtract: true, s: 1, l: 1, d: 1, taps: []int{1}},
			{updateOdd: true, s: 0, l: 1, d: 0, taps: []int{1}},
		},
	},
	HaarWithShift: {
		shift: 1,
		stages: []stage{
			{subtract: true, s: 1, l: 1, d: 1, taps: []int{1}},
			{updateOdd: true, s: 0, l: 1, d: 0, taps: []int{1}},
		},
	},
	Fidelity: {
		shift: 0,
		stages: []stage{
			{updateOdd: true, s: 8, l: 8, d: -3, taps: []int{-2, -10, -25, 81, 81, -25, 10, -2}},
			{subtract: true, s: 8, l: 8, d: -3, taps: []int{-8, 21, -46, 161, 161, -46, 21, -8}},
		},
	},
	Daubechies97: {
		shift: 1,
		stages: []stage{
			{subtract: true, s: 12, l: 2, d: 0, taps: []int{1817, 1817}},
			{updateOdd: true, subtract: true, s: 12, l: 2, d: 0, taps: []int{3616, 3616}},
			{s: 12, l: 2, d: 0, taps: []int{217, 217}},
			{updateOdd: true, s: 12, l: 2, d: 0, taps: []int{6497, 6497}},
		},
	},
}

// Shift returns the output bit shift of a filter.
func Shift(index int) int { return filters[index].shift }

// liftEven updates the even samples of a from their odd neighbours.
// Out-of-range tap positions clamp to the nearest odd index.
func liftEven(a []int, st stage) {
	for n := 0; n < len(a)/2; n++ {
		sum := 0
		for i := st.d; i < st.l+st.d; i++ {
			pos := 2*(n+i) - 1
			if pos < 1 {
				pos = 1
			}
			if pos > len(a)-1 {
				pos = len(a) - 1
			}
			sum += st.taps[i-st.d] * a[pos]
		}
		if st.s > 0 {
			sum += 1 << (st.s - 1)
		}
		if st.subtract {
			a[2*n] -= sum >> st.s
		} else {
			a[2*n] += sum >> st.s
		}
	}
}

// liftOdd updates the odd samples of a from their even neighbours.
func liftOdd(a []int, st stage) {
	for n := 0; n < len(a)/2; n++ {
		sum := 0
		for i := st.d; i < st.l+st.d; i++ {
			pos := 2 * (n + i)
			if pos < 0 {
				pos = 0
			}
			if pos > len(a)-2 {
				pos = len(a) - 2
			}
			sum += st.taps[i-st.d] * a[pos]
		}
		if st.s > 0 {
			sum += 1 << (st.s - 1)
		}
		if st.subtract {
			a[2*n+1] -= sum >> st.s
		} else {
			a[2*n+1] += sum >> st.s
		}
	}
}

// oned performs one in-place 1D synthesis pass over an interleaved
// array (even indices low-pass, odd indices high-pass).
func oned(a []int, index int) {
	if len(a) < 2 {
		return
	}
	for _, st := range filters[index].stages {
		if st.updateOdd {
			liftOdd(a, st)
		} else {
			liftEven(a, st)
		}
	}
}

// HSynthesis combines a low band with its horizontal high band into a
// band of twice the width (15.4.2). The output bit shift of the
// horizontal filter is applied to the result.
func HSynthesis(low, high [][]int, filterHO int) [][]int {
	rows := len(low)
	synth := newArray(2*width(low), rows)

	for y := 0; y < rows; y++ {
		for x := 0; x < width(low); x++ {
			synth[y][2*x] = low[y][x]
			synth[y][2*x+1] = high[y][x]
		}
	}

	for y := 0; y < rows; y++ {
		oned(synth[y], filterHO)
	}

	applyShift(synth, filters[filterHO].shift)
	return synth
}

// VHSynthesis combines a low band with its three high bands into a
// band of twice the width and height (15.4.3). Columns are synthesized
// with the vertical filter, then rows with the horizontal one.
func VHSynthesis(ll, hl, lh, hh [][]int, filterV, filterHO int) [][]int {
	synth := newArray(2*width(ll), 2*len(ll))

	for y := 0; y < len(ll); y++ {
		for x := 0; x < width(ll); x++ {
			synth[2*y][2*x] = ll[y][x]
			synth[2*y][2*x+1] = hl[y][x]
			synth[2*y+1][2*x] = lh[y][x]
			synth[2*y+1][2*x+1] = hh[y][x]
		}
	}

	h := len(synth)
	w := width(synth)

	col := getColBuf(h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			col[y] = synth[y][x]
		}
		oned(col, filterV)
		for y := 0; y < h; y++ {
			synth[y][x] = col[y]
		}
	}
	putColBuf(col)

	for y := 0; y < h; y++ {
		oned(synth[y], filterHO)
	}

	applyShift(synth, filters[filterHO].shift)
	return synth
}

// applyShift right-shifts every sample with rounding.
func applyShift(data [][]int, shift int) {
	if shift == 0 {
		return
	}
	half := 1 << (shift - 1)
	for _, row := range data {
		for x, v := range row {
			row[x] = (v + half) >> shift
		}
	}
}

func newArray(w, h int) [][]int {
	rows := make([][]int, h)
	cells := make([]int, w*h)
	for y := range rows {
		rows[y] = cells[y*w : (y+1)*w : (y+1)*w]
	}
	return rows
}

func width(data [][]int) int {
	if len(data) == 0 {
		return 0
	}
	return len(data[0])
}
