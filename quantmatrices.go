package vc2

// QuantMatrix holds per-subband quantization index offsets for a
// particular transform shape. H holds one entry per horizontal-only
// level (lowest first); HL, LH and HH hold one entry per 2D level
// (lowest first).
type QuantMatrix struct {
	DC int
	H  []int
	HL []int
	LH []int
	HH []int
}

// quantMatrixKey selects a default quantization matrix: the pair of
// wavelet filters in use and the transform depths.
type quantMatrixKey struct {
	indexHO WaveletFilter
	index   WaveletFilter
	depthHO int
	depth   int
}

// defaultQuantMatrices holds the default quantization matrices
// (Table D.1 through D.8) for every transform shape they are defined
// for.
var defaultQuantMatrices = map[quantMatrixKey]QuantMatrix{
	{0, 0, 0, 0}: {DC: 0},
	{0, 0, 0, 1}: {DC: 5, HL: []int{3}, LH: []int{3}, HH: []int{0}},
	{0, 0, 0, 2}: {DC: 5, HL: []int{3, 4}, LH: []int{3, 4}, HH: []int{0, 1}},
	{0, 0, 0, 3}: {DC: 5, HL: []int{3, 4, 5}, LH: []int{3, 4, 5}, HH: []int{0, 1, 2}},
	{0, 0, 0, 4}: {DC: 5, HL: []int{3, 4, 5, 6}, LH: []int{3, 4, 5, 6}, HH: []int{0, 1, 2, 3}},
	{0, 0, 1, 0}: {DC: 3, H: []int{0}},
	{0, 0, 1, 1}: {DC: 3, H: []int{0}, HL: []int{3}, LH: []int{3}, HH: []int{0}},
	{0, 0, 1, 2}: {DC: 3, H: []int{0}, HL: []int{3, 4}, LH: []int{3, 4}, HH: []int{0, 1}},
	{0, 0, 1, 3}: {DC: 3, H: []int{0}, HL: []int{3, 4, 5}, LH: []int{3, 4, 5}, HH: []int{0, 1, 2}},
	{0, 0, 1, 4}: {DC: 3, H: []int{0}, HL: []int{3, 4, 5, 6}, LH: []int{3, 4, 5, 6}, HH: []int{0, 1, 2, 3}},
	{0, 0, 2, 0}: {DC: 3, H: []int{0, 3}},
	{0, 0, 2, 1}: {DC: 3, H: []int{0, 3}, HL: []int{5}, LH: []int{5}, HH: []int{3}},
	{0, 0, 2, 2}: {DC: 3, H: []int{0, 3}, HL: []int{5, 6}, LH: []int{5, 6}, HH: []int{3, 4}},
	{0, 0, 2, 3}: {DC: 3, H: []int{0, 3}, HL: []int{5, 6, 7}, LH: []int{5, 6, 7}, HH: []int{3, 4, 5}},
	{0, 0, 3, 0}: {DC: 3, H: []int{0, 3, 5}},
	{0, 0, 3, 1}: {DC: 3, H: []int{0, 3, 5}, HL: []int{8}, LH: []int{8}, HH: []int{5}},
	{0, 0, 3, 2}: {DC: 3, H: []int{0, 3, 5}, HL: []int{8, 9}, LH: []int{8, 9}, HH: []int{5, 6}},
	{0, 0, 4, 0}: {DC: 3, H: []int{0, 3, 5, 8}},
	{0, 0, 4, 1}: {DC: 3, H: []int{0, 3, 5, 8}, HL: []int{10}, LH: []int{10}, HH: []int{8}},
	{1, 1, 0, 0}: {DC: 0},
	{1, 1, 0, 1}: {DC: 4, HL: []int{2}, LH: []int{2}, HH: []int{0}},
	{1, 1, 0, 2}: {DC: 4, HL: []int{2, 4}, LH: []int{2, 4}, HH: []int{0, 2}},
	{1, 1, 0, 3}: {DC: 4, HL: []int{2, 4, 5}, LH: []int{2, 4, 5}, HH: []int{0, 2, 3}},
	{1, 1, 0, 4}: {DC: 4, HL: []int{2, 4, 5, 7}, LH: []int{2, 4, 5, 7}, HH: []int{0, 2, 3, 5}},
	{1, 1, 1, 0}: {DC: 2, H: []int{0}},
	{1, 1, 1, 1}: {DC: 2, H: []int{0}, HL: []int{3}, LH: []int{3}, HH: []int{1}},
	{1, 1, 1, 2}: {DC: 2, H: []int{0}, HL: []int{3, 4}, LH: []int{3, 4}, HH: []int{1, 2}},
	{1, 1, 1, 3}: {DC: 2, H: []int{0}, HL: []int{3, 4, 6}, LH: []int{3, 4, 6}, HH: []int{1, 2, 4}},
	{1, 1, 1, 4}: {DC: 2, H: []int{0}, HL: []int{3, 4, 6, 8}, LH: []int{3, 4, 6, 8}, HH: []int{1, 2, 4, 6}},
	{1, 1, 2, 0}: {DC: 2, H: []int{0, 3}},
	{1, 1, 2, 1}: {DC: 2, H: []int{0, 3}, HL: []int{6}, LH: []int{6}, HH: []int{4}},
	{1, 1, 2, 2}: {DC: 2, H: []int{0, 3}, HL: []int{6, 7}, LH: []int{6, 7}, HH: []int{4, 5}},
	{1, 1, 2, 3}: {DC: 2, H: []int{0, 3}, HL: []int{6, 7, 9}, LH: []int{6, 7, 9}, HH: []int{4, 5, 7}},
	{1, 1, 3, 0}: {DC: 2, H: []int{0, 3, 6}},
	{1, 1, 3, 1}: {DC: 2, H: []int{0, 3, 6}, HL: []int{8}, LH: []int{8}, HH: []int{6}},
	{1, 1, 3, 2}: {DC: 2, H: []int{0, 3, 6}, HL: []int{8, 10}, LH: []int{8, 10}, HH: []int{6, 8}},
	{1, 1, 4, 0}: {DC: 2, H: []int{0, 3, 6, 8}},
	{1, 1, 4, 1}: {DC: 2, H: []int{0, 3, 6, 8}, HL: []int{11}, LH: []int{11}, HH: []int{9}},
	{1, 3, 0, 0}: {DC: 0},
	{1, 3, 0, 1}: {DC: 6, HL: []int{4}, LH: []int{2}, HH: []int{0}},
	{1, 3, 0, 2}: {DC: 6, HL: []int{4, 5}, LH: []int{2, 3}, HH: []int{0, 1}},
	{1, 3, 0, 3}: {DC: 6, HL: []int{4, 5, 6}, LH: []int{2, 3, 4}, HH: []int{0, 1, 2}},
	{1, 3, 0, 4}: {DC: 6, HL: []int{4, 5, 6, 6}, LH: []int{2, 3, 4, 5}, HH: []int{0, 1, 2, 2}},
	{1, 3, 1, 0}: {DC: 2, H: []int{0}},
	{1, 3, 1, 1}: {DC: 3, H: []int{1}, HL: []int{4}, LH: []int{2}, HH: []int{0}},
	{1, 3, 1, 2}: {DC: 3, H: []int{1}, HL: []int{4, 5}, LH: []int{2, 3}, HH: []int{0, 1}},
	{1, 3, 1, 3}: {DC: 3, H: []int{1}, HL: []int{4, 5, 6}, LH: []int{2, 3, 4}, HH: []int{0, 1, 2}},
	{1, 3, 1, 4}: {DC: 3, H: []int{1}, HL: []int{4, 5, 6, 6}, LH: []int{2, 3, 4, 5}, HH: []int{0, 1, 2, 2}},
	{1, 3, 2, 0}: {DC: 2, H: []int{0, 3}},
	{1, 3, 2, 1}: {DC: 2, H: []int{0, 3}, HL: []int{6}, LH: []int{4}, HH: []int{2}},
	{1, 3, 2, 2}: {DC: 2, H: []int{0, 3}, HL: []int{6, 6}, LH: []int{4, 5}, HH: []int{2, 2}},
	{1, 3, 2, 3}: {DC: 2, H: []int{0, 3}, HL: []int{6, 6, 7}, LH: []int{4, 5, 5}, HH: []int{2, 2, 3}},
	{1, 3, 3, 0}: {DC: 2, H: []int{0, 3, 6}},
	{1, 3, 3, 1}: {DC: 2, H: []int{0, 3, 6}, HL: []int{8}, LH: []int{7}, HH: []int{4}},
	{1, 3, 3, 2}: {DC: 2, H: []int{0, 3, 6}, HL: []int{8, 9}, LH: []int{7, 7}, HH: []int{4, 5}},
	{1, 3, 4, 0}: {DC: 2, H: []int{0, 3, 6, 8}},
	{1, 3, 4, 1}: {DC: 2, H: []int{0, 3, 6, 8}, HL: []int{11}, LH: []int{9}, HH: []int{7}},
	{2, 2, 0, 0}: {DC: 0},
	{2, 2, 0, 1}: {DC: 5, HL: []int{3}, LH: []int{3}, HH: []int{0}},
	{2, 2, 0, 2}: {DC: 5, HL: []int{3, 4}, LH: []int{3, 4}, HH: []int{0, 1}},
	{2, 2, 0, 3}: {DC: 5, HL: []int{3, 4, 5}, LH: []int{3, 4, 5}, HH: []int{0, 1, 2}},
	{2, 2, 0, 4}: {DC: 5, HL: []int{3, 4, 5, 6}, LH: []int{3, 4, 5, 6}, HH: []int{0, 1, 2, 3}},
	{2, 2, 1, 0}: {DC: 3, H: []int{0}},
	{2, 2, 1, 1}: {DC: 3, H: []int{0}, HL: []int{3}, LH: []int{3}, HH: []int{0}},
	{2, 2, 1, 2}: {DC: 3, H: []int{0}, HL: []int{3, 4}, LH: []int{3, 4}, HH: []int{0, 1}},
	{2, 2, 1, 3}: {DC: 3, H: []int{0}, HL: []int{3, 4, 5}, LH: []int{3, 4, 5}, HH: []int{0, 1, 2}},
	{2, 2, 1, 4}: {DC: 3, H: []int{0}, HL: []int{3, 4, 5, 6}, LH: []int{3, 4, 5, 6}, HH: []int{0, 1, 2, 3}},
	{2, 2, 2, 0}: {DC: 3, H: []int{0, 3}},
	{2, 2, 2, 1}: {DC: 3, H: []int{0, 3}, HL: []int{5}, LH: []int{5}, HH: []int{2}},
	{2, 2, 2, 2}: {DC: 3, H: []int{0, 3}, HL: []int{5, 6}, LH: []int{5, 6}, HH: []int{2, 4}},
	{2, 2, 2, 3}: {DC: 3, H: []int{0, 3}, HL: []int{5, 6, 7}, LH: []int{5, 6, 7}, HH: []int{2, 4, 5}},
	{2, 2, 3, 0}: {DC: 3, H: []int{0, 3, 5}},
	{2, 2, 3, 1}: {DC: 3, H: []int{0, 3, 5}, HL: []int{8}, LH: []int{8}, HH: []int{5}},
	{2, 2, 3, 2}: {DC: 3, H: []int{0, 3, 5}, HL: []int{8, 9}, LH: []int{8, 9}, HH: []int{5, 6}},
	{2, 2, 4, 0}: {DC: 3, H: []int{0, 3, 5, 8}},
	{2, 2, 4, 1}: {DC: 3, H: []int{0, 3, 5, 8}, HL: []int{10}, LH: []int{10}, HH: []int{8}},
	{3, 3, 0, 0}: {DC: 0},
	{3, 3, 0, 1}: {DC: 8, HL: []int{4}, LH: []int{4}, HH: []int{0}},
	{3, 3, 0, 2}: {DC: 12, HL: []int{8, 4}, LH: []int{8, 4}, HH: []int{4, 0}},
	{3, 3, 0, 3}: {DC: 16, HL: []int{12, 8, 4}, LH: []int{12, 8, 4}, HH: []int{8, 4, 0}},
	{3, 3, 0, 4}: {DC: 20, HL: []int{16, 12, 8, 4}, LH: []int{16, 12, 8, 4}, HH: []int{12, 8, 4, 0}},
	{3, 3, 1, 0}: {DC: 4, H: []int{0}},
	{3, 3, 1, 1}: {DC: 10, H: []int{6}, HL: []int{4}, LH: []int{4}, HH: []int{0}},
	{3, 3, 1, 2}: {DC: 14, H: []int{10}, HL: []int{8, 4}, LH: []int{8, 4}, HH: []int{4, 0}},
	{3, 3, 1, 3}: {DC: 18, H: []int{14}, HL: []int{12, 8, 4}, LH: []int{12, 8, 4}, HH: []int{8, 4, 0}},
	{3, 3, 1, 4}: {DC: 22, H: []int{18}, HL: []int{16, 12, 8, 4}, LH: []int{16, 12, 8, 4}, HH: []int{12, 8, 4, 0}},
	{3, 3, 2, 0}: {DC: 6, H: []int{2, 0}},
	{3, 3, 2, 1}: {DC: 12, H: []int{8, 6}, HL: []int{4}, LH: []int{4}, HH: []int{0}},
	{3, 3, 2, 2}: {DC: 16, H: []int{12, 10}, HL: []int{8, 4}, LH: []int{8, 4}, HH: []int{4, 0}},
	{3, 3, 2, 3}: {DC: 20, H: []int{16, 14}, HL: []int{12, 8, 4}, LH: []int{12, 8, 4}, HH: []int{8, 4, 0}},
	{3, 3, 3, 0}: {DC: 8, H: []int{4, 2, 0}},
	{3, 3, 3, 1}: {DC: 14, H: []int{10, 8, 6}, HL: []int{4}, LH: []int{4}, HH: []int{0}},
	{3, 3, 3, 2}: {DC: 18, H: []int{14, 12, 10}, HL: []int{8, 4}, LH: []int{8, 4}, HH: []int{4, 0}},
	{3, 3, 4, 0}: {DC: 10, H: []int{6, 4, 2, 0}},
	{3, 3, 4, 1}: {DC: 16, H: []int{12, 10, 8, 6}, HL: []int{4}, LH: []int{4}, HH: []int{0}},
	{4, 4, 0, 0}: {DC: 0},
	{4, 4, 0, 1}: {DC: 8, HL: []int{4}, LH: []int{4}, HH: []int{0}},
	{4, 4, 0, 2}: {DC: 8, HL: []int{4, 4}, LH: []int{4, 4}, HH: []int{0, 0}},
	{4, 4, 0, 3}: {DC: 8, HL: []int{4, 4, 4}, LH: []int{4, 4, 4}, HH: []int{0, 0, 0}},
	{4, 4, 0, 4}: {DC: 8, HL: []int{4, 4, 4, 4}, LH: []int{4, 4, 4, 4}, HH: []int{0, 0, 0, 0}},
	{4, 4, 1, 0}: {DC: 4, H: []int{0}},
	{4, 4, 1, 1}: {DC: 6, H: []int{2}, HL: []int{4}, LH: []int{4}, HH: []int{0}},
	{4, 4, 1, 2}: {DC: 6, H: []int{2}, HL: []int{4, 4}, LH: []int{4, 4}, HH: []int{0, 0}},
	{4, 4, 1, 3}: {DC: 6, H: []int{2}, HL: []int{4, 4, 4}, LH: []int{4, 4, 4}, HH: []int{0, 0, 0}},
	{4, 4, 1, 4}: {DC: 6, H: []int{2}, HL: []int{4, 4, 4, 4}, LH: []int{4, 4, 4, 4}, HH: []int{0, 0, 0, 0}},
	{4, 4, 2, 0}: {DC: 4, H: []int{0, 2}},
	{4, 4, 2, 1}: {DC: 4, H: []int{0, 2}, HL: []int{4}, LH: []int{4}, HH: []int{0}},
	{4, 4, 2, 2}: {DC: 4, H: []int{0, 2}, HL: []int{4, 4}, LH: []int{4, 4}, HH: []int{0, 0}},
	{4, 4, 2, 3}: {DC: 4, H: []int{0, 2}, HL: []int{4, 4, 4}, LH: []int{4, 4, 4}, HH: []int{0, 0, 0}},
	{4, 4, 3, 0}: {DC: 4, H: []int{0, 2, 4}},
	{4, 4, 3, 1}: {DC: 4, H: []int{0, 2, 4}, HL: []int{6}, LH: []int{6}, HH: []int{2}},
	{4, 4, 3, 2}: {DC: 4, H: []int{0, 2, 4}, HL: []int{6, 6}, LH: []int{6, 6}, HH: []int{2, 2}},
	{4, 4, 4, 0}: {DC: 4, H: []int{0, 2, 4, 6}},
	{4, 4, 4, 1}: {DC: 4, H: []int{0, 2, 4, 6}, HL: []int{8}, LH: []int{8}, HH: []int{4}},
	{5, 5, 0, 0}: {DC: 0},
	{5, 5, 0, 1}: {DC: 0, HL: []int{4}, LH: []int{4}, HH: []int{8}},
	{5, 5, 0, 2}: {DC: 0, HL: []int{4, 8}, LH: []int{4, 8}, HH: []int{8, 12}},
	{5, 5, 0, 3}: {DC: 0, HL: []int{4, 8, 13}, LH: []int{4, 8, 13}, HH: []int{8, 12, 17}},
	{5, 5, 0, 4}: {DC: 0, HL: []int{4, 8, 13, 17}, LH: []int{4, 8, 13, 17}, HH: []int{8, 12, 17, 21}},
	{5, 5, 1, 0}: {DC: 0, H: []int{4}},
	{5, 5, 1, 1}: {DC: 0, H: []int{4}, HL: []int{6}, LH: []int{6}, HH: []int{10}},
	{5, 5, 1, 2}: {DC: 0, H: []int{4}, HL: []int{6, 11}, LH: []int{6, 11}, HH: []int{10, 15}},
	{5, 5, 1, 3}: {DC: 0, H: []int{4}, HL: []int{6, 11, 15}, LH: []int{6, 11, 15}, HH: []int{10, 15, 19}},
	{5, 5, 1, 4}: {DC: 0, H: []int{4}, HL: []int{6, 11, 15, 19}, LH: []int{6, 11, 15, 19}, HH: []int{10, 15, 19, 23}},
	{5, 5, 2, 0}: {DC: 0, H: []int{4, 6}},
	{5, 5, 2, 1}: {DC: 0, H: []int{4, 6}, HL: []int{8}, LH: []int{8}, HH: []int{12}},
	{5, 5, 2, 2}: {DC: 0, H: []int{4, 6}, HL: []int{8, 13}, LH: []int{8, 13}, HH: []int{12, 17}},
	{5, 5, 2, 3}: {DC: 0, H: []int{4, 6}, HL: []int{8, 13, 17}, LH: []int{8, 13, 17}, HH: []int{12, 17, 21}},
	{5, 5, 3, 0}: {DC: 0, H: []int{4, 6, 8}},
	{5, 5, 3, 1}: {DC: 0, H: []int{4, 6, 8}, HL: []int{11}, LH: []int{11}, HH: []int{15}},
	{5, 5, 3, 2}: {DC: 0, H: []int{4, 6, 8}, HL: []int{11, 15}, LH: []int{11, 15}, HH: []int{15, 19}},
	{5, 5, 4, 0}: {DC: 0, H: []int{4, 6, 8, 11}},
	{6, 6, 0, 0}: {DC: 0},
	{6, 6, 0, 1}: {DC: 3, HL: []int{1}, LH: []int{1}, HH: []int{0}},
	{6, 6, 0, 2}: {DC: 3, HL: []int{1, 4}, LH: []int{1, 4}, HH: []int{0, 2}},
	{6, 6, 0, 3}: {DC: 3, HL: []int{1, 4, 6}, LH: []int{1, 4, 6}, HH: []int{0, 2, 5}},
	{6, 6, 0, 4}: {DC: 3, HL: []int{1, 4, 6, 9}, LH: []int{1, 4, 6, 9}, HH: []int{0, 2, 5, 7}},
	{6, 6, 1, 0}: {DC: 1, H: []int{0}},
	{6, 6, 1, 1}: {DC: 1, H: []int{0}, HL: []int{3}, LH: []int{3}, HH: []int{2}},
	{6, 6, 1, 2}: {DC: 1, H: []int{0}, HL: []int{3, 6}, LH: []int{3, 6}, HH: []int{2, 4}},
	{6, 6, 1, 3}: {DC: 1, H: []int{0}, HL: []int{3, 6, 8}, LH: []int{3, 6, 8}, HH: []int{2, 4, 7}},
	{6, 6, 1, 4}: {DC: 1, H: []int{0}, HL: []int{3, 6, 8, 11}, LH: []int{3, 6, 8, 11}, HH: []int{2, 4, 7, 9}},
	{6, 6, 2, 0}: {DC: 1, H: []int{0, 3}},
	{6, 6, 2, 1}: {DC: 1, H: []int{0, 3}, HL: []int{6}, LH: []int{6}, HH: []int{5}},
	{6, 6, 2, 2}: {DC: 1, H: []int{0, 3}, HL: []int{6, 9}, LH: []int{6, 9}, HH: []int{5, 8}},
	{6, 6, 2, 3}: {DC: 1, H: []int{0, 3}, HL: []int{6, 9, 11}, LH: []int{6, 9, 11}, HH: []int{5, 8, 10}},
	{6, 6, 3, 0}: {DC: 1, H: []int{0, 3, 6}},
	{6, 6, 3, 1}: {DC: 1, H: []int{0, 3, 6}, HL: []int{10}, LH: []int{10}, HH: []int{8}},
	{6, 6, 3, 2}: {DC: 1, H: []int{0, 3, 6}, HL: []int{10, 12}, LH: []int{10, 12}, HH: []int{8, 11}},
	{6, 6, 4, 0}: {DC: 1, H: []int{0, 3, 6, 10}},
}
