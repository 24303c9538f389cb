package gen

// Alphabet of printable bytes used for ASCII fills. Letters and digits only,
// so generated tokens survive whitespace-delimited parsing.
const asciiAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// bound reduces a raw 64-bit draw into the closed interval [lower, upper].
// A degenerate range (upper <= lower) clamps to lower. The full signed
// 64-bit interval has a span of 2^64, which no reduction is needed for: the
// raw draw is returned verbatim.
func bound(raw uint64, lower, upper int64) int64 {
	if upper <= lower {
		return lower
	}
	// Two's complement wraparound makes this exact for any lower < upper.
	span := uint64(upper-lower) + 1
	if span == 0 {
		return int64(raw)
	}
	return int64(uint64(lower) + raw%span)
}
