/*
Package cmd provides the CLI commands for Campaigner.
*/
package cmd

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	verbose   bool
	debug     bool
	limit     int
	delaySecs float64
	assumeYes bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "campaigner",
	Short: "A batch email-marketing campaign runner",
	Long: `Campaigner sends a templated marketing email to every contact in a
semicolon-delimited contact file, embedding images inline through
cid: references in the HTML body.

It processes the list once, start to finish: read contacts, build one
multipart message per recipient, submit each over its own SMTP
connection, and print a final report.

Example:
  campaigner send                  # generic greeting for every contact
  campaigner send --limit 5        # test mode, first 5 contacts only
  campaigner personalized          # greet each contact by name, ask first
  campaigner check                 # validate config and assets, no sends`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initLogging)

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "campaign file (default is .campaigner.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")

	// Add subcommands
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(personalizedCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}

func initLogging() {
	if debug {
		log.SetLevel(log.DebugLevel)
	} else if verbose {
		log.SetLevel(log.InfoLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
}
