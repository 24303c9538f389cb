// Package fuzzutil glues the gen seam to a coverage-guided fuzzing engine.
// The engine hands Fuzz a flat byte buffer; the registered input script is
// rendered from that buffer through a gen.ByteSource, so the engine's byte
// mutations translate directly into structured input mutations.
package fuzzutil

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/cpfuzz/cpfuzz/gen"
	"github.com/cpfuzz/cpfuzz/inputspec"
)

var (
	script *inputspec.Script
	check  func(input []byte) error
)

// SetTarget registers the script Fuzz renders and the check run over each
// rendered input. The check returns an error for application-level failures;
// Fuzz converts that into a panic so the engine records a crasher.
//
// Registration happens once, before fuzzing starts; the engine then calls
// Fuzz serially.
func SetTarget(s *inputspec.Script, checkFn func(input []byte) error) {
	script = s
	check = checkFn
}

// RenderInput renders the registered script deterministically from an
// engine-provided byte buffer.
func RenderInput(data []byte) ([]byte, error) {
	if script == nil {
		return nil, errors.New("no target registered")
	}
	var buf bytes.Buffer
	if err := script.Generate(gen.NewTextWriter(&buf, gen.NewByteSource(data))); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
