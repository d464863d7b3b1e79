package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oarkflow/campaigner"
	"github.com/oarkflow/campaigner/internal/assets"
	"github.com/oarkflow/campaigner/internal/config"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check campaign configuration and assets",
	Long: `Check that the campaign is ready to send.

This validates:
  - Campaign file syntax
  - SMTP credentials in the environment
  - Contact file, HTML template, and every declared image exist

No network connection is opened.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := cfgFile
		if configPath == "" {
			configPath = ".campaigner.yaml"
		}

		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("config validation failed: %w", err)
		}

		if err := assets.Validate(cfg); err != nil {
			return err
		}

		fmt.Printf("✓ Campaign is ready: %d inline images, contacts in %s\n", len(cfg.Images), cfg.Contacts)
		return nil
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new campaign file",
	Long: `Initialize a new .campaigner.yaml campaign file.

This creates a basic campaign file that you can customize
for your contact list, template, and images.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := ".campaigner.yaml"
		if cfgFile != "" {
			configPath = cfgFile
		}

		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("campaign file already exists: %s", configPath)
		}

		template := config.DefaultTemplate()
		if err := os.WriteFile(configPath, []byte(template), 0644); err != nil {
			return fmt.Errorf("failed to write campaign file: %w", err)
		}

		fmt.Printf("✓ Created %s\n", configPath)
		fmt.Println("\nEdit this file to customize your campaign.")
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit, and build date of Campaigner.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Campaigner %s\n", campaigner.Version)
		if campaigner.GitCommit != "" {
			fmt.Printf("  Commit: %s\n", campaigner.GitCommit)
		}
		if campaigner.BuildDate != "" {
			fmt.Printf("  Built:  %s\n", campaigner.BuildDate)
		}
	},
}
