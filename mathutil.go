package vc2

// intlog2 returns ceil(log2(n)) for n >= 1, computed without floating
// point (5.5.3).
func intlog2(n uint64) int {
	bits := 0
	for v := n - 1; v > 0; v >>= 1 {
		bits++
	}
	return bits
}

// sign returns -1, 0 or 1 according to the sign of a (5.5.3).
func sign(a int) int {
	switch {
	case a > 0:
		return 1
	case a < 0:
		return -1
	}
	return 0
}

// clip limits a to the range [b, t] (5.5.3).
func clip(a, b, t int) int {
	if a < b {
		return b
	}
	if a > t {
		return t
	}
	return a
}

// mean returns the rounding mean of the given values (5.5.3).
func mean(vs ...int) int {
	n := len(vs)
	sum := 0
	for _, v := range vs {
		sum += v
	}
	return floorDiv(sum+n/2, n)
}

// floorDiv divides rounding toward negative infinity, matching the //
// operator the pseudocode is defined in terms of.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
