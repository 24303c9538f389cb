package runner

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLanguage(t *testing.T) {
	t.Parallel()

	for input, want := range map[string]Language{
		"cpp":        LanguageCpp,
		"go":         LanguageGo,
		"rust":       LanguageRust,
		"RUST-DEBUG": LanguageRustDebug,
		"bin":        LanguageBinary,
	} {
		got, err := ParseLanguage(input)
		require.NoError(t, err, "input %q", input)
		require.Equal(t, want, got)
	}

	_, err := ParseLanguage("cobol")
	require.Error(t, err)
}

func TestBinary(t *testing.T) {
	t.Parallel()

	require.Equal(t, "./sol", LanguageCpp.Binary("sol"))
	require.Equal(t, "target/release/sol", LanguageRust.Binary("sol"))
	require.Equal(t, "target/release/sol", LanguageRustDebug.Binary("sol"))
	require.Equal(t, "/usr/bin/sol", LanguageBinary.Binary("/usr/bin/sol"))
}

func TestOutputsMatch(t *testing.T) {
	t.Parallel()

	assert.True(t, OutputsMatch("1 2 3", "1 2 3"))
	assert.True(t, OutputsMatch("1 2 3\n", "1  2\t3"))
	assert.True(t, OutputsMatch("", "\n  \n"))
	assert.False(t, OutputsMatch("1 2 3", "1 2"))
	assert.False(t, OutputsMatch("1 2 3", "1 2 4"))
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("echoes stdin", func(t *testing.T) {
		t.Parallel()

		res, err := run(exec.Command("cat"), []byte("1 2 3\n"))
		require.NoError(t, err)
		require.True(t, res.OK)
		require.Equal(t, "1 2 3\n", res.Stdout)
	})

	t.Run("non-zero exit is a result, not an error", func(t *testing.T) {
		t.Parallel()

		res, err := run(exec.Command("sh", "-c", "echo partial; exit 3"), nil)
		require.NoError(t, err)
		require.False(t, res.OK)
		require.Equal(t, "partial\n", res.Stdout)
	})

	t.Run("missing binary is an error", func(t *testing.T) {
		t.Parallel()

		_, err := run(exec.Command("./definitely-not-here"), nil)
		require.Error(t, err)
	})
}

func TestRunPrebuiltBinary(t *testing.T) {
	t.Parallel()

	res, err := LanguageBinary.Run(context.Background(), "/bin/cat", []byte("hello\n"))
	require.NoError(t, err)
	require.True(t, res.OK)
	require.Equal(t, "hello\n", res.Stdout)
}

func TestInteract(t *testing.T) {
	t.Parallel()

	t.Run("clean session", func(t *testing.T) {
		t.Parallel()

		ok, err := interact(
			exec.Command("sh", "-c", `read b; echo "$b"`),
			exec.Command("sh", "-c", `read a; echo done`),
			[]byte("ping\n"),
		)
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("solution failure", func(t *testing.T) {
		t.Parallel()

		ok, err := interact(
			exec.Command("sh", "-c", "read b; exit 1"),
			exec.Command("sh", "-c", "read a; echo done"),
			[]byte("ping\n"),
		)
		require.NoError(t, err)
		require.False(t, ok)
	})
}
