package gen

import "encoding/binary"

// ByteSource is a Source which derives every value deterministically from an
// input byte buffer, typically the buffer a coverage-guided fuzzing engine
// hands to its entry point. The same buffer always yields the same values in
// the same call order.
//
// The buffer is finite, so exhaustion is part of the contract rather than an
// error: reads past the end see zero bytes. In particular Int64 returns
// exactly lower once the buffer is empty.
type ByteSource struct {
	data []byte
}

// NewByteSource returns a ByteSource consuming data from the front. The
// source does not copy data; the caller must not mutate it mid-session.
func NewByteSource(data []byte) *ByteSource {
	return &ByteSource{data: data}
}

// Remaining reports how many input bytes have not yet been consumed.
func (s *ByteSource) Remaining() int {
	return len(s.data)
}

// Newline consumes one separator byte when any input remains. This keeps
// record boundaries aligned with the flat input buffer; on an exhausted
// source it is a no-op.
func (s *ByteSource) Newline() {
	if len(s.data) > 0 {
		s.data = s.data[1:]
	}
}

// Int64 consumes up to eight bytes, little-endian, and reduces them into
// [lower, upper]. Missing bytes read as zero, so an empty source yields a
// zero draw and the result is exactly lower. A range with lower > upper
// clamps to lower.
func (s *ByteSource) Int64(lower, upper int64) int64 {
	return bound(s.next8(), lower, upper)
}

// Int64Array returns n integers via repeated Int64 calls. n <= 0 returns an
// empty, non-nil slice.
func (s *ByteSource) Int64Array(n int, lower, upper int64) []int64 {
	if n <= 0 {
		return []int64{}
	}
	out := make([]int64, n)
	for i := range out {
		out[i] = s.Int64(lower, upper)
	}
	return out
}

// ASCII fills p with printable bytes, consuming one input byte per output
// byte. Exhausted positions get the first alphabet character so the fill
// stays deterministic.
func (s *ByteSource) ASCII(p []byte) {
	for i := range p {
		if len(s.data) == 0 {
			p[i] = asciiAlphabet[0]
			continue
		}
		p[i] = asciiAlphabet[int(s.data[0])%len(asciiAlphabet)]
		s.data = s.data[1:]
	}
}

func (s *ByteSource) next8() uint64 {
	var buf [8]byte
	n := copy(buf[:], s.data)
	s.data = s.data[n:]
	return binary.LittleEndian.Uint64(buf[:])
}
