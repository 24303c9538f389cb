// Package gen is the seam between test-input construction logic and the
// backend which satisfies it. The same construction code can be driven by a
// coverage-guided fuzzing engine (values derived deterministically from the
// engine's input buffer, see ByteSource), by a seeded pseudo-random source
// (see Rand), or serialized to a sink (see TextWriter and Recorder), without
// the construction code knowing which backend it is bound to.
//
// All bounded primitives operate on closed intervals [lower, upper] over the
// signed 64-bit domain. No primitive reports errors: degenerate ranges and
// entropy exhaustion are absorbed by each backend under a documented policy,
// so a fuzzing run never aborts on policy alone.
package gen

// Source produces structured values on demand: the pull model. A Source is
// bound to a single backend for the duration of a generation session and is
// not safe for concurrent use unless the backend says otherwise.
type Source interface {
	// Newline consumes a logical record separator.
	Newline()

	// Int64 returns one integer v with lower <= v <= upper. Backends with a
	// finite entropy source must keep answering after exhaustion; ByteSource
	// documents its fallback. A range with lower > upper yields lower.
	Int64(lower, upper int64) int64

	// Int64Array returns n independent integers, each within [lower, upper].
	// n <= 0 returns an empty, non-nil slice. The returned slice is owned by
	// the caller.
	Int64Array(n int, lower, upper int64) []int64

	// ASCII fills p with printable ASCII bytes. Exactly len(p) bytes are
	// written; a zero-length buffer is a no-op.
	ASCII(p []byte)
}

// Writer accepts structured values the caller produces: the push model. It
// carries the same vocabulary as Source plus a bounded draw, so a single
// piece of construction logic can both synthesize and serialize an input.
type Writer interface {
	// WriteNewline emits a record separator to the sink.
	WriteNewline()

	// WriteInt64 serializes one integer to the sink.
	WriteInt64(v int64)

	// WriteASCII serializes s to the sink.
	WriteASCII(s string)

	// RandInt64 draws one integer from the bound value source, not from the
	// sink. Same range contract as Source.Int64.
	RandInt64(lower, upper int64) int64
}

// GenerateFunc is user-supplied construction logic, driven by an external
// harness through a Writer.
type GenerateFunc func(Writer)

// Generate is the stable entry point through which a driver hands control to
// user construction logic. It performs no work beyond the call-through.
func Generate(w Writer, fn GenerateFunc) {
	fn(w)
}
