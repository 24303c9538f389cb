package cmd

import (
	"os"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cpfuzz/cpfuzz"
	"github.com/cpfuzz/cpfuzz/runner"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Generate inputs and run the solution until one breaks it",
	Run: func(cmd *cobra.Command, args []string) {
		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			log.Fatal().Err(err).Msg("")
		}
		var cfg cpfuzz.Config
		if err := viper.Unmarshal(&cfg, viper.DecodeHook(languageDecodeHook())); err != nil {
			log.Fatal().Err(err).Msg("cannot parse config")
		}

		campaign, err := cpfuzz.NewCampaign(cmd.Context(), cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot set up campaign")
		}
		failure, err := campaign.Run(cmd.Context())
		if err != nil {
			log.Fatal().Err(err).Msg("campaign aborted")
		}
		if failure == nil {
			log.Info().Msg("no failing input found")
			return
		}
		log.Error().
			Int("run", failure.Run).
			Str("reason", failure.Reason).
			Msg("found failing input")
		_, _ = os.Stdout.Write(failure.Input)
		os.Exit(1)
	},
}

func init() {
	runCmd.Flags().String("language", "cpp", "toolchain: cpp|go|rust|rust-debug|bin")
	runCmd.Flags().String("solution", "", "program under test")
	runCmd.Flags().String("script", "", "input script path")
	runCmd.Flags().String("compare", "", "reference solution to diff outputs against")
	runCmd.Flags().String("verify", "", "verifier fed the input and the solution's output")
	runCmd.Flags().String("interact", "", "interactor run against the solution")
	runCmd.Flags().Int64("seed", 0, "random seed; 0 picks a time-based one")
	runCmd.Flags().Int("max-runs", 0, "stop after this many clean runs; 0 runs until failure")
	runCmd.Flags().String("artifact", "fuzz.in", "where to write the failing input")
}

// Config files and flags name languages by string; decode them through
// ParseLanguage so typos fail before anything is built.
func languageDecodeHook() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String || to != reflect.TypeOf(runner.Language("")) {
			return data, nil
		}
		return runner.ParseLanguage(data.(string))
	}
}
