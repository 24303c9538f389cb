package gen

// Integer constrains the element types accepted by WriteSequence.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// WriteSequence writes every element of seq through w in order, one
// WriteInt64 call per element. An empty sequence writes nothing. It is built
// purely on the Writer interface and works over any integer slice type.
func WriteSequence[S ~[]E, E Integer](w Writer, seq S) {
	for _, v := range seq {
		w.WriteInt64(int64(v))
	}
}

// RandInt64Array draws n integers within [lower, upper] via w.RandInt64, in
// index order. n <= 0 returns an empty, non-nil slice. Like WriteSequence it
// has no backend binding of its own.
func RandInt64Array(w Writer, n int, lower, upper int64) []int64 {
	if n <= 0 {
		return []int64{}
	}
	out := make([]int64, n)
	for i := range out {
		out[i] = w.RandInt64(lower, upper)
	}
	return out
}
