package fuzzutil

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cpfuzz/cpfuzz/gen"
	"github.com/cpfuzz/cpfuzz/inputspec"
)

// SeedCorpus writes one corpus entry per seed into dir, rendering script
// from a seeded random source. Entries are reproducible: the same seed
// always yields the same file, named after its seed.
func SeedCorpus(dir string, script *inputspec.Script, seeds []int64) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create corpus directory: %w", err)
	}
	for _, seed := range seeds {
		var buf bytes.Buffer
		if err := script.Generate(gen.NewTextWriter(&buf, gen.NewRand(seed))); err != nil {
			return fmt.Errorf("failed to render entry for seed %d: %w", seed, err)
		}
		path := filepath.Join(dir, fmt.Sprintf("seed-%d", seed))
		if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write entry for seed %d: %w", seed, err)
		}
	}
	return nil
}
