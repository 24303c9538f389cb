// Package runner builds and executes candidate solutions. A solution is an
// ordinary program reading its input from stdin; the runner's job is to
// compile it with the right toolchain, feed it a generated input and report
// whether it survived.
package runner

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/getlantern/golog"
	"github.com/pkg/errors"
)

var log = golog.LoggerFor("cpfuzz.runner")

// Language selects the toolchain used to build and locate a solution.
type Language string

const (
	// LanguageCpp compiles <name>.cpp with g++ -O2.
	LanguageCpp Language = "cpp"
	// LanguageGo compiles <name>.go with the go tool.
	LanguageGo Language = "go"
	// LanguageRust builds the named cargo binary in release mode.
	LanguageRust Language = "rust"
	// LanguageRustDebug is accepted as a distinct name but currently builds
	// the same release binary as LanguageRust.
	// TODO: build the debug profile and run from target/debug.
	LanguageRustDebug Language = "rust-debug"
	// LanguageBinary runs a prebuilt executable as-is; Build is a no-op.
	LanguageBinary Language = "bin"
)

// ParseLanguage maps a user-supplied name onto a Language.
func ParseLanguage(s string) (Language, error) {
	switch l := Language(strings.ToLower(s)); l {
	case LanguageCpp, LanguageGo, LanguageRust, LanguageRustDebug, LanguageBinary:
		return l, nil
	default:
		return "", errors.Errorf("unknown language %q", s)
	}
}

// Result is the outcome of a single solution run.
type Result struct {
	// OK is true when the process exited zero.
	OK bool
	// Stdout is everything the solution printed.
	Stdout string
}

// Build compiles name with the language's toolchain. Compiler output is
// folded into the returned error.
func (l Language) Build(ctx context.Context, name string) error {
	var cmd *exec.Cmd
	switch l {
	case LanguageCpp:
		cmd = exec.CommandContext(ctx, "g++", "-O2", name+".cpp", "-o", name)
	case LanguageGo:
		cmd = exec.CommandContext(ctx, "go", "build", "-o", name, name+".go")
	case LanguageRust, LanguageRustDebug:
		cmd = exec.CommandContext(ctx, "cargo", "build", "--bin", name, "--release")
	case LanguageBinary:
		return nil
	default:
		return errors.Errorf("unknown language %q", l)
	}
	log.Debugf("building %s: %s", name, strings.Join(cmd.Args, " "))
	if out, err := cmd.CombinedOutput(); err != nil {
		return errors.Wrapf(err, "build of %s failed:\n%s", name, out)
	}
	return nil
}

// Binary returns the path of the built executable for name.
func (l Language) Binary(name string) string {
	switch l {
	case LanguageRust, LanguageRustDebug:
		return "target/release/" + name
	default:
		if strings.ContainsRune(name, '/') {
			return name
		}
		return "./" + name
	}
}

// Run feeds input to the solution's stdin and captures its stdout. A
// non-zero exit is not an error here: it is exactly the signal a campaign
// hunts for, so it comes back as Result.OK == false.
func (l Language) Run(ctx context.Context, name string, input []byte) (Result, error) {
	return run(exec.CommandContext(ctx, l.Binary(name)), input)
}

func run(cmd *exec.Cmd, input []byte) (Result, error) {
	cmd.Stdin = bytes.NewReader(input)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			log.Debugf("%s exited with %v", cmd.Path, exitErr)
			return Result{OK: false, Stdout: stdout.String()}, nil
		}
		return Result{}, errors.Wrapf(err, "running %s", cmd.Path)
	}
	return Result{OK: true, Stdout: stdout.String()}, nil
}

// OutputsMatch reports whether two outputs agree token-wise. Whitespace is
// insignificant, so trailing newlines or spacing quirks never count as a
// diff.
func OutputsMatch(a, b string) bool {
	at, bt := strings.Fields(a), strings.Fields(b)
	if len(at) != len(bt) {
		return false
	}
	for i := range at {
		if at[i] != bt[i] {
			return false
		}
	}
	return true
}
