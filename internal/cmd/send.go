package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/oarkflow/campaigner/internal/campaign"
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send the campaign with a generic greeting",
	Long: `Send the campaign to every valid contact in the contact file.

Every {nome} token in the HTML template is replaced with the generic
greeting "Cliente". The contact file needs one column whose header
contains "email" (case-insensitive); any row with a non-empty address
containing "@" qualifies.

Use --limit to send a test batch to the first N contacts only.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCampaign(cmd, false)
	},
}

var personalizedCmd = &cobra.Command{
	Use:   "personalized",
	Short: "Send the campaign greeting each contact by name",
	Long: `Send the campaign, replacing every {nome} token in the template with
the recipient's name.

The contact file must carry columns literally named "Nome" and "Email";
a row qualifies only when both are non-empty and the address contains
"@". Names are title-cased before substitution.

Because this variant addresses people by name, it asks for confirmation
before sending. Use --yes to skip the prompt.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCampaign(cmd, true)
	},
}

func runCampaign(cmd *cobra.Command, personalized bool) error {
	ctx := cmd.Context()

	opts := campaign.Options{
		ConfigFile:   cfgFile,
		Personalized: personalized,
		Limit:        limit,
		Delay:        time.Duration(delaySecs * float64(time.Second)),
		AssumeYes:    assumeYes,
	}

	r, err := campaign.New(opts)
	if err != nil {
		return fmt.Errorf("failed to create campaign: %w", err)
	}

	if err := r.Run(ctx); err != nil {
		return fmt.Errorf("campaign failed: %w", err)
	}

	return nil
}

func init() {
	for _, c := range []*cobra.Command{sendCmd, personalizedCmd} {
		c.Flags().IntVarP(&limit, "limit", "n", 0, "send only to the first N contacts (0 = all)")
		c.Flags().Float64Var(&delaySecs, "delay", 1, "seconds to wait between sends")
	}
	personalizedCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "skip the confirmation prompt")
}
