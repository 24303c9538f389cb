// Package cpfuzz drives randomized stress campaigns against competitive
// programming solutions: generate an input through the gen seam, run the
// solution (optionally against a reference solution, a verifier or an
// interactor), and keep going until something breaks. The first failing
// input is persisted so the crash can be replayed outside the campaign.
package cpfuzz

import (
	"bytes"
	"context"
	"os"
	"time"

	"github.com/getlantern/golog"
	"github.com/pkg/errors"

	"github.com/cpfuzz/cpfuzz/gen"
	"github.com/cpfuzz/cpfuzz/inputspec"
	"github.com/cpfuzz/cpfuzz/runner"
)

var log = golog.LoggerFor("cpfuzz")

// Config specifies a campaign.
type Config struct {
	// Language selects the toolchain for every configured program.
	Language runner.Language `mapstructure:"language"`

	// Solution is the program under test.
	Solution string `mapstructure:"solution"`

	// Script is the path of the input script rendered each run.
	Script string `mapstructure:"script"`

	// Compare, Verify and Interact select the failure oracle and are
	// mutually exclusive. Compare names a reference solution whose output
	// must match token-wise. Verify names a checker fed the input and the
	// solution's output. Interact names an interactor run against the
	// solution as a connected pair. With none set, a non-zero exit is the
	// only failure signal.
	Compare  string `mapstructure:"compare"`
	Verify   string `mapstructure:"verify"`
	Interact string `mapstructure:"interact"`

	// Seed seeds the random source; zero picks a time-based seed.
	Seed int64 `mapstructure:"seed"`

	// MaxRuns bounds the campaign; zero or negative means run until failure.
	MaxRuns int `mapstructure:"max-runs"`

	// Artifact is where the first failing input is written.
	Artifact string `mapstructure:"artifact"`

	// Generator overrides Script when set: user construction logic invoked
	// through the gen.Generate entry point instead of a parsed script.
	Generator gen.GenerateFunc `mapstructure:"-"`
}

func (cfg Config) withDefaults() Config {
	newCfg := cfg
	if newCfg.Artifact == "" {
		newCfg.Artifact = "fuzz.in"
	}
	if newCfg.Seed == 0 {
		newCfg.Seed = time.Now().UnixNano()
	}
	return newCfg
}

func (cfg Config) validate() error {
	if cfg.Solution == "" {
		return errors.New("no solution configured")
	}
	if cfg.Script == "" && cfg.Generator == nil {
		return errors.New("either a script or a generator is required")
	}
	oracles := 0
	for _, name := range []string{cfg.Compare, cfg.Verify, cfg.Interact} {
		if name != "" {
			oracles++
		}
	}
	if oracles > 1 {
		return errors.New("compare, verify and interact are mutually exclusive")
	}
	return nil
}

// Failure describes the first input that broke the solution.
type Failure struct {
	// Run is the 1-based iteration which failed.
	Run int
	// Input is the generated input, also written to Config.Artifact.
	Input []byte
	// Reason says which oracle tripped.
	Reason string
}

// Campaign is a validated, built and ready-to-run stress campaign.
type Campaign struct {
	cfg    Config
	script *inputspec.Script
	src    *gen.Rand
}

// NewCampaign validates cfg, parses the input script and builds every
// configured program.
func NewCampaign(ctx context.Context, cfg Config) (*Campaign, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	var script *inputspec.Script
	if cfg.Generator == nil {
		src, err := os.ReadFile(cfg.Script)
		if err != nil {
			return nil, errors.Wrap(err, "reading input script")
		}
		script, err = inputspec.Parse(string(src))
		if err != nil {
			return nil, errors.Wrap(err, "parsing input script")
		}
	}

	for _, name := range []string{cfg.Solution, cfg.Compare, cfg.Verify, cfg.Interact} {
		if name == "" {
			continue
		}
		if err := cfg.Language.Build(ctx, name); err != nil {
			return nil, err
		}
	}

	return &Campaign{cfg: cfg, script: script, src: gen.NewRand(cfg.Seed)}, nil
}

// Run generates and checks inputs until one fails or MaxRuns is reached. A
// nil Failure means the campaign exhausted its run budget cleanly.
func (c *Campaign) Run(ctx context.Context) (*Failure, error) {
	for i := 1; c.cfg.MaxRuns <= 0 || i <= c.cfg.MaxRuns; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		input, err := c.generate()
		if err != nil {
			return nil, err
		}
		reason, err := c.check(ctx, input)
		if err != nil {
			return nil, err
		}
		if reason != "" {
			log.Debugf("run %d: %s", i, reason)
			if err := os.WriteFile(c.cfg.Artifact, input, 0644); err != nil {
				return nil, errors.Wrap(err, "persisting failing input")
			}
			return &Failure{Run: i, Input: input, Reason: reason}, nil
		}
	}
	return nil, nil
}

func (c *Campaign) generate() ([]byte, error) {
	var buf bytes.Buffer
	w := gen.NewTextWriter(&buf, c.src)
	if c.cfg.Generator != nil {
		gen.Generate(w, c.cfg.Generator)
		return buf.Bytes(), nil
	}
	if err := c.script.Generate(w); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// check runs the configured oracle over one input. A non-empty reason means
// the input broke the solution; errors are campaign-level problems.
func (c *Campaign) check(ctx context.Context, input []byte) (string, error) {
	cfg := c.cfg
	if cfg.Interact != "" {
		ok, err := cfg.Language.RunInteractive(ctx, cfg.Solution, cfg.Interact, input)
		if err != nil {
			return "", err
		}
		if !ok {
			return "interactive session failed", nil
		}
		return "", nil
	}

	res, err := cfg.Language.Run(ctx, cfg.Solution, input)
	if err != nil {
		return "", err
	}
	if !res.OK {
		return "solution exited with non-zero code", nil
	}

	switch {
	case cfg.Compare != "":
		ref, err := cfg.Language.Run(ctx, cfg.Compare, input)
		if err != nil {
			return "", err
		}
		if !ref.OK {
			return "reference solution exited with non-zero code", nil
		}
		if !runner.OutputsMatch(res.Stdout, ref.Stdout) {
			return "outputs differ", nil
		}
	case cfg.Verify != "":
		verdict, err := cfg.Language.Run(ctx, cfg.Verify, verifierInput(input, res.Stdout))
		if err != nil {
			return "", err
		}
		if !verdict.OK {
			return "verifier rejected the output", nil
		}
	}
	return "", nil
}

// The verifier reads the generated input followed by the solution's output,
// separated by one newline.
func verifierInput(input []byte, stdout string) []byte {
	joined := make([]byte, 0, len(input)+1+len(stdout))
	joined = append(joined, input...)
	joined = append(joined, '\n')
	return append(joined, stdout...)
}
