package cpfuzz

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cpfuzz/cpfuzz/gen"
	"github.com/cpfuzz/cpfuzz/runner"
)

// writeProgram drops an executable shell script into dir so campaigns can be
// exercised with the prebuilt-binary language.
func writeProgram(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755))
	return path
}

func writeScript(t *testing.T, dir, src string) string {
	t.Helper()
	path := filepath.Join(dir, "input.script")
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))
	return path
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	base := Config{Language: runner.LanguageBinary, Solution: "sol", Script: "s"}

	require.NoError(t, base.validate())

	noSolution := base
	noSolution.Solution = ""
	require.Error(t, noSolution.validate())

	noInput := base
	noInput.Script = ""
	require.Error(t, noInput.validate())

	twoOracles := base
	twoOracles.Compare, twoOracles.Verify = "ref", "chk"
	require.Error(t, twoOracles.validate())
}

func TestCampaignCleanRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	campaign, err := NewCampaign(context.Background(), Config{
		Language: runner.LanguageBinary,
		Solution: writeProgram(t, dir, "sol", "cat >/dev/null; exit 0"),
		Script:   writeScript(t, dir, "int n 1 10"),
		Seed:     1,
		MaxRuns:  5,
		Artifact: filepath.Join(dir, "fuzz.in"),
	})
	require.NoError(t, err)

	failure, err := campaign.Run(context.Background())
	require.NoError(t, err)
	require.Nil(t, failure)
}

func TestCampaignFindsCrash(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	artifact := filepath.Join(dir, "fuzz.in")
	campaign, err := NewCampaign(context.Background(), Config{
		Language: runner.LanguageBinary,
		Solution: writeProgram(t, dir, "sol", "cat >/dev/null; exit 1"),
		Script:   writeScript(t, dir, "int n 1 10\narr a n 0 5"),
		Seed:     7,
		Artifact: artifact,
	})
	require.NoError(t, err)

	failure, err := campaign.Run(context.Background())
	require.NoError(t, err)
	require.NotNil(t, failure)
	require.Equal(t, 1, failure.Run)
	require.Equal(t, "solution exited with non-zero code", failure.Reason)

	persisted, err := os.ReadFile(artifact)
	require.NoError(t, err)
	require.Equal(t, failure.Input, persisted)
}

func TestCampaignCompare(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	script := writeScript(t, dir, "int n 1 10")

	t.Run("outputs differ", func(t *testing.T) {
		t.Parallel()

		campaign, err := NewCampaign(context.Background(), Config{
			Language: runner.LanguageBinary,
			Solution: writeProgram(t, dir, "sol-a", "cat >/dev/null; echo 1"),
			Compare:  writeProgram(t, dir, "ref-a", "cat >/dev/null; echo 2"),
			Script:   script,
			Seed:     1,
			Artifact: filepath.Join(dir, "fuzz-a.in"),
		})
		require.NoError(t, err)

		failure, err := campaign.Run(context.Background())
		require.NoError(t, err)
		require.NotNil(t, failure)
		require.Equal(t, "outputs differ", failure.Reason)
	})

	t.Run("outputs agree modulo whitespace", func(t *testing.T) {
		t.Parallel()

		campaign, err := NewCampaign(context.Background(), Config{
			Language: runner.LanguageBinary,
			Solution: writeProgram(t, dir, "sol-b", `cat >/dev/null; echo "1 2"`),
			Compare:  writeProgram(t, dir, "ref-b", `cat >/dev/null; printf '1\n2\n'`),
			Script:   script,
			Seed:     1,
			MaxRuns:  3,
			Artifact: filepath.Join(dir, "fuzz-b.in"),
		})
		require.NoError(t, err)

		failure, err := campaign.Run(context.Background())
		require.NoError(t, err)
		require.Nil(t, failure)
	})
}

func TestCampaignVerify(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	script := writeScript(t, dir, "int n 1 10")
	solution := writeProgram(t, dir, "sol", "cat >/dev/null; echo ok")

	t.Run("verifier accepts", func(t *testing.T) {
		t.Parallel()

		campaign, err := NewCampaign(context.Background(), Config{
			Language: runner.LanguageBinary,
			Solution: solution,
			Verify:   writeProgram(t, dir, "chk-pass", "grep -q ok"),
			Script:   script,
			Seed:     1,
			MaxRuns:  3,
			Artifact: filepath.Join(dir, "fuzz-pass.in"),
		})
		require.NoError(t, err)

		failure, err := campaign.Run(context.Background())
		require.NoError(t, err)
		require.Nil(t, failure)
	})

	t.Run("verifier rejects", func(t *testing.T) {
		t.Parallel()

		campaign, err := NewCampaign(context.Background(), Config{
			Language: runner.LanguageBinary,
			Solution: solution,
			Verify:   writeProgram(t, dir, "chk-fail", "cat >/dev/null; exit 1"),
			Script:   script,
			Seed:     1,
			Artifact: filepath.Join(dir, "fuzz-fail.in"),
		})
		require.NoError(t, err)

		failure, err := campaign.Run(context.Background())
		require.NoError(t, err)
		require.NotNil(t, failure)
		require.Equal(t, "verifier rejected the output", failure.Reason)
	})
}

func TestCampaignInteract(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	campaign, err := NewCampaign(context.Background(), Config{
		Language: runner.LanguageBinary,
		Solution: writeProgram(t, dir, "sol", `read q; echo "$q"`),
		Interact: writeProgram(t, dir, "judge", "read n; echo probe; read echoed; exit 0"),
		// The trailing newline matters: the judge reads the input line-wise.
		Script:   writeScript(t, dir, "int n 1 10\n"),
		Seed:     1,
		MaxRuns:  2,
		Artifact: filepath.Join(dir, "fuzz.in"),
	})
	require.NoError(t, err)

	failure, err := campaign.Run(context.Background())
	require.NoError(t, err)
	require.Nil(t, failure)
}

func TestCampaignGenerator(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	campaign, err := NewCampaign(context.Background(), Config{
		Language: runner.LanguageBinary,
		Solution: writeProgram(t, dir, "sol", "cat >/dev/null; exit 1"),
		Generator: func(w gen.Writer) {
			w.WriteInt64(7)
			w.WriteNewline()
		},
		Seed:     1,
		Artifact: filepath.Join(dir, "fuzz.in"),
	})
	require.NoError(t, err)

	failure, err := campaign.Run(context.Background())
	require.NoError(t, err)
	require.NotNil(t, failure)
	require.Equal(t, []byte("7 \n"), failure.Input)
}
