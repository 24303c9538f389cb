package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   "cpfuzz",
		Short: "cpfuzz stress-tests competitive programming solutions with generated inputs",
		Long: "cpfuzz renders structured test inputs from a small input script and feeds " +
			"them to a solution until one breaks it. Failures can be detected by exit " +
			"code alone, by diffing against a reference solution, by an output verifier " +
			"or by an interactor. The first failing input is saved for replay.",
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	rootCmd.PersistentFlags().String("log-format", "text", "logging format [text|json]")
	rootCmd.PersistentFlags().String("log-level", zerolog.LevelInfoValue,
		fmt.Sprintf("logging level %s|%s|%s|%s",
			zerolog.LevelDebugValue,
			zerolog.LevelInfoValue,
			zerolog.LevelWarnValue,
			zerolog.LevelErrorValue,
		),
	)

	if err := viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format")); err != nil {
		log.Fatal().Err(err).Msg("")
	}
	if err := viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		log.Fatal().Err(err).Msg("")
	}

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(genCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			log.Fatal().Err(err).Msg("error reading from config file")
		}
	}
	if err := setupLogger(viper.GetString("log.format"), viper.GetString("log.level")); err != nil {
		log.Fatal().Err(err).Msg("cannot set up logger")
	}
}

func setupLogger(format, level string) error {
	switch format {
	case "text":
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	case "json":
	default:
		return fmt.Errorf("unknown log format %q", format)
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}
