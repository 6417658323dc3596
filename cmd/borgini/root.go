package main

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/borgini/borgini/internal/highlight"
	"github.com/borgini/borgini/internal/profile"
)

var (
	// Version is set at build time.
	Version = "dev"

	// Configuration flags.
	profileName string
	dryRun      bool
	verbose     bool
	quiet       bool
	jsonOutput  bool
)

var rootCmd = &cobra.Command{
	Use:   "borgini",
	Short: "A profile-based ini front-end for borgbackup",
	Long: `borgini turns a small set of human-edited configuration files into a
fully-formed borgbackup invocation:
  - config.ini  repository location, SSH transport, create and prune flags
  - include     paths to back up, one per line, # comments
  - exclude     paths to skip, each rendered as an --exclude argument
  - styles      syntax-highlighting style for printed output

Running borgini without a subcommand assembles and runs borg create,
then borg prune when enabled. Each profile keeps its own directory of
these files; the config file is repaired against the default schema on
every run.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
	Version: Version,
	RunE:    runBackup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&profileName, "select", profile.DefaultProfile, "create or select an alternative settings profile")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry", "d", false, "view the commandline arguments that would be run")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose (debug) output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "enable quiet mode (errors only)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output logs in JSON format")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(showCmd)
}

func setupLogging() {
	// Set output format
	if jsonOutput {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	} else {
		output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
		output.FormatLevel = func(i interface{}) string {
			if s, ok := i.(string); ok {
				return strings.ToUpper(s)
			}
			return ""
		}
		log.Logger = zerolog.New(output).With().Timestamp().Logger()
	}

	// Set log level
	switch {
	case quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// profileData resolves the selected profile's directory.
func profileData() *profile.Data {
	return profile.New(profile.Root(), profileName)
}

// newPrinter builds the highlighted printer styled per the profile's
// styles file.
func newPrinter(data *profile.Data) *highlight.Printer {
	return highlight.New(data.Path(profile.StylesFile), os.Stdout)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
