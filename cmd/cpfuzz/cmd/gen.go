package cmd

import (
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/cpfuzz/cpfuzz/gen"
	"github.com/cpfuzz/cpfuzz/inputspec"
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Render one generated input to stdout",
	Run: func(cmd *cobra.Command, args []string) {
		scriptPath, _ := cmd.Flags().GetString("script")
		seed, _ := cmd.Flags().GetInt64("seed")
		if scriptPath == "" {
			log.Fatal().Msg("--script is required")
		}
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		src, err := os.ReadFile(scriptPath)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot read script")
		}
		script, err := inputspec.Parse(string(src))
		if err != nil {
			log.Fatal().Err(err).Msg("cannot parse script")
		}
		if err := script.Generate(gen.NewTextWriter(os.Stdout, gen.NewRand(seed))); err != nil {
			log.Fatal().Err(err).Msg("generation failed")
		}
	},
}

func init() {
	genCmd.Flags().String("script", "", "input script path")
	genCmd.Flags().Int64("seed", 0, "random seed; 0 picks a time-based one")
}
