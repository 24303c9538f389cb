// Package inputspec parses the line-oriented input script format and renders
// concrete test inputs through the gen seam. A script line is a sequence of
// atoms:
//
//	int <name> <lower> <upper>    one bounded integer, stored under <name>
//	arr <name> <len> <lower> <upper>  <len> bounded integers
//	perm <name> <len>             a shuffled permutation of 1..<len>
//	str <name> <len>              a random lowercase token
//
// Numeric fields are integer literals or references to previously generated
// named integers, so "int n 1 100" followed by "arr a n 0 1000000" sizes the
// array by the generated value of n. Script lines are separated by one
// emitted record separator.
//
// Rendering goes through gen.Writer only: bound the writer to a seeded
// random source and the script seeds a corpus; bound it to a fuzzing
// engine's byte buffer and the same script replays the engine's input.
package inputspec

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"github.com/cpfuzz/cpfuzz/gen"
)

// Script is a parsed input script, ready to be rendered any number of times.
type Script struct {
	atoms []atom
}

// Parse parses the script source. It validates structure only; range and
// length violations surface at generation time, once variables have values.
func Parse(src string) (*Script, error) {
	var atoms []atom
	for i, line := range strings.Split(src, "\n") {
		if i > 0 {
			atoms = append(atoms, newlineAtom{})
		}
		tokens := strings.Fields(line)
		for len(tokens) > 0 {
			kind := tokens[0]
			tokens = tokens[1:]

			var arity int
			switch kind {
			case "int":
				arity = 3
			case "arr":
				arity = 4
			case "perm", "str":
				arity = 2
			default:
				return nil, errors.Errorf("line %d: unknown atom %q", i+1, kind)
			}
			if len(tokens) < arity {
				return nil, errors.Errorf("line %d: %s needs %d fields, got %d", i+1, kind, arity, len(tokens))
			}
			args := tokens[:arity]
			tokens = tokens[arity:]

			switch kind {
			case "int":
				atoms = append(atoms, intAtom{name: args[0], lower: parseNumeric(args[1]), upper: parseNumeric(args[2])})
			case "arr":
				atoms = append(atoms, arrAtom{length: parseNumeric(args[1]), lower: parseNumeric(args[2]), upper: parseNumeric(args[3])})
			case "perm":
				atoms = append(atoms, permAtom{length: parseNumeric(args[1])})
			case "str":
				atoms = append(atoms, strAtom{length: parseNumeric(args[1])})
			}
		}
	}
	return &Script{atoms: atoms}, nil
}

// Generate renders one input through w. Draws come from the writer's bound
// source, so rendering is deterministic exactly when the source is.
func (s *Script) Generate(w gen.Writer) error {
	vars := map[string]int64{}
	for _, a := range s.atoms {
		if err := a.generate(w, vars); err != nil {
			return err
		}
	}
	return nil
}

// numeric is an integer literal or a reference to a named generated value.
type numeric struct {
	literal int64
	ref     string
}

func parseNumeric(tok string) numeric {
	if v, err := cast.ToInt64E(tok); err == nil {
		return numeric{literal: v}
	}
	return numeric{ref: tok}
}

func (n numeric) eval(vars map[string]int64) (int64, error) {
	if n.ref == "" {
		return n.literal, nil
	}
	v, ok := vars[n.ref]
	if !ok {
		return 0, errors.Errorf("undefined variable %q", n.ref)
	}
	return v, nil
}

type atom interface {
	generate(w gen.Writer, vars map[string]int64) error
}

type intAtom struct {
	name         string
	lower, upper numeric
}

func (a intAtom) generate(w gen.Writer, vars map[string]int64) error {
	lower, upper, err := evalRange(a.lower, a.upper, vars)
	if err != nil {
		return err
	}
	v := w.RandInt64(lower, upper)
	vars[a.name] = v
	w.WriteInt64(v)
	return nil
}

type arrAtom struct {
	length, lower, upper numeric
}

func (a arrAtom) generate(w gen.Writer, vars map[string]int64) error {
	n, err := evalLength(a.length, vars)
	if err != nil {
		return err
	}
	lower, upper, err := evalRange(a.lower, a.upper, vars)
	if err != nil {
		return err
	}
	gen.WriteSequence(w, gen.RandInt64Array(w, int(n), lower, upper))
	return nil
}

type permAtom struct {
	length numeric
}

func (a permAtom) generate(w gen.Writer, vars map[string]int64) error {
	n, err := evalLength(a.length, vars)
	if err != nil {
		return err
	}
	perm := make([]int64, n)
	for i := range perm {
		perm[i] = int64(i) + 1
	}
	// Fisher-Yates, driven by the writer's bound source.
	for i := int64(len(perm)) - 1; i > 0; i-- {
		j := w.RandInt64(0, i)
		perm[i], perm[j] = perm[j], perm[i]
	}
	gen.WriteSequence(w, perm)
	return nil
}

type strAtom struct {
	length numeric
}

func (a strAtom) generate(w gen.Writer, vars map[string]int64) error {
	n, err := evalLength(a.length, vars)
	if err != nil {
		return err
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(w.RandInt64('a', 'z'))
	}
	w.WriteASCII(string(b))
	return nil
}

type newlineAtom struct{}

func (newlineAtom) generate(w gen.Writer, _ map[string]int64) error {
	w.WriteNewline()
	return nil
}

func evalRange(lower, upper numeric, vars map[string]int64) (int64, int64, error) {
	lo, err := lower.eval(vars)
	if err != nil {
		return 0, 0, err
	}
	hi, err := upper.eval(vars)
	if err != nil {
		return 0, 0, err
	}
	if hi < lo {
		return 0, 0, errors.Errorf("range [%d, %d] is inverted", lo, hi)
	}
	return lo, hi, nil
}

func evalLength(length numeric, vars map[string]int64) (int64, error) {
	n, err := length.eval(vars)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, errors.Errorf("negative length %d", n)
	}
	return n, nil
}
