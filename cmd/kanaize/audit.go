package main

import (
	"fmt"

	"github.com/npillmayer/kanaize/audit"
	"github.com/spf13/cobra"
)

func newAuditCmd() *cobra.Command {
	var failOnHazard bool

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "List sequences the greedy lookup cannot fall back to",
		Long: "Checks the dictionary for dead ends: a registered sequence followed by\n" +
			"an unregistered prefix of a longer sequence. Input ending in such a\n" +
			"prefix is rejected as invalid.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kb, err := loadBuilder(activeCfg)
			if err != nil {
				return err
			}
			hazards := audit.Check(kb.Mappings())
			if err := audit.Report(cmd.OutOrStdout(), hazards); err != nil {
				return err
			}
			if failOnHazard && len(hazards) > 0 {
				return fmt.Errorf("dictionary has %d dead ends", len(hazards))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&failOnHazard, "strict", false, "Exit with an error if dead ends are found")

	return cmd
}
