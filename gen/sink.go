package gen

import (
	"fmt"
	"io"
)

// TextWriter is a Writer serializing values in the whitespace-delimited
// format competitive-programming solutions read from stdin: integers as
// "<v> ", record separators as '\n', ASCII strings one byte per token.
// Bounded draws are delegated to the attached Source, so the same
// construction logic serializes from a seeded random source or from a
// fuzzing engine's byte buffer.
//
// Sink write errors are swallowed: the Writer contract has no error channel,
// and the sinks used here (in-memory buffers, files checked at close) report
// failures through their owners.
type TextWriter struct {
	w   io.Writer
	src Source
}

// NewTextWriter returns a TextWriter emitting to w and drawing from src.
func NewTextWriter(w io.Writer, src Source) *TextWriter {
	return &TextWriter{w: w, src: src}
}

func (t *TextWriter) WriteNewline() {
	_, _ = io.WriteString(t.w, "\n")
}

func (t *TextWriter) WriteInt64(v int64) {
	_, _ = fmt.Fprintf(t.w, "%d ", v)
}

func (t *TextWriter) WriteASCII(s string) {
	for i := 0; i < len(s); i++ {
		_, _ = t.w.Write([]byte{s[i], ' '})
	}
}

func (t *TextWriter) RandInt64(lower, upper int64) int64 {
	return t.src.Int64(lower, upper)
}

// OpKind identifies a recorded sink operation.
type OpKind int

const (
	OpNewline OpKind = iota
	OpInt64
	OpASCII
)

// RecordedOp is one write captured by a Recorder, with its payload.
type RecordedOp struct {
	Kind OpKind
	Int  int64
	Text string
}

// Recorder is a Writer capturing every write in order instead of
// serializing it. Draws still come from the attached Source and are not
// recorded: a draw is input, not output.
type Recorder struct {
	ops []RecordedOp
	src Source
}

// NewRecorder returns a Recorder drawing from src.
func NewRecorder(src Source) *Recorder {
	return &Recorder{src: src}
}

func (r *Recorder) WriteNewline() {
	r.ops = append(r.ops, RecordedOp{Kind: OpNewline})
}

func (r *Recorder) WriteInt64(v int64) {
	r.ops = append(r.ops, RecordedOp{Kind: OpInt64, Int: v})
}

func (r *Recorder) WriteASCII(s string) {
	r.ops = append(r.ops, RecordedOp{Kind: OpASCII, Text: s})
}

func (r *Recorder) RandInt64(lower, upper int64) int64 {
	return r.src.Int64(lower, upper)
}

// Ops returns the captured operations in write order.
func (r *Recorder) Ops() []RecordedOp {
	return r.ops
}
