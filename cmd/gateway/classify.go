package main

import (
	"fmt"

	"github.com/DanielPopoola/payment-orchestrator/internal/core/taxonomy"
	"github.com/spf13/cobra"
)

type classification struct {
	Provider     string `json:"provider" yaml:"provider"`
	ProviderCode string `json:"provider_code" yaml:"provider_code"`
	Mapped       bool   `json:"mapped" yaml:"mapped"`
	Category     string `json:"category" yaml:"category"`
	Code         string `json:"code" yaml:"code"`
}

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify <provider> <code> [message]",
		Short: "Show the canonical error code for a provider code",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("output")
			provider, code := args[0], args[1]

			if taxonomy.Codes(provider) == nil {
				return fmt.Errorf("no error taxonomy for provider %q (known: %v)", provider, taxonomy.Providers())
			}

			var message string
			if len(args) == 3 {
				message = args[2]
			}

			_, mapped := taxonomy.Lookup(provider, code)
			result := taxonomy.Classify(provider, code, message)

			return render(cmd.OutOrStdout(), format, classification{
				Provider:     provider,
				ProviderCode: code,
				Mapped:       mapped,
				Category:     string(result.Category),
				Code:         string(result.Code),
			})
		},
	}

	cmd.Flags().StringP("output", "o", outputJSON, "Output format (json, yaml)")

	return cmd
}
