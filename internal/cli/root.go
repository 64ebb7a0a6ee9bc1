// Package cli contains all CLI commands for packq.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/typepack/typepack/internal/config"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"

	// verbose enables diagnostic logging
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// cfg is the resolved configuration, loaded before any command runs.
	cfg *config.Config

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "packq",
	})

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "packq",
		Short: "Inspect and query type packs",
		Long: TitleStyle.Render("packq") + SubtitleStyle.Render(" - type pack inspection and queries") + `

packq parses a type-list expression such as "char, short, int*, long long&"
into an ordered pack of type tokens and runs the pack queries against it:
size, positional access, membership, first-occurrence search, and
uniqueness. Tokens are compared by exact identity; int, int& and int* are
three distinct tokens.

` + SubtitleStyle.Render("Examples:") + `
  packq query "char, short, int, long, long long"
  packq query "double, float, char" --find char --at 1
  packq inspect "int, int&, int&&"
  packq gen packs.toml -o packs_gen.go`,
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/packq/config.toml)")

	// Add subcommands
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(genCmd)
}

// initConfig loads the configuration before any command runs.
func initConfig() {
	c, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+err.Error())
		c = config.Default()
	}
	cfg = c

	// Flags win over config.
	if !verbose {
		verbose = cfg.UI.Verbose
	}
	colorEnabled = cfg.UI.Color

	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
