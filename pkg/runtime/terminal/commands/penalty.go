package commands

import (
	"fmt"

	"github.com/de-tools/compliance-atlas/pkg/format"
	"github.com/de-tools/compliance-atlas/pkg/services/recommendation"
	"github.com/spf13/cobra"
)

func NewPenaltyCmd(env *Env) *cobra.Command {
	var revenue float64

	cmd := &cobra.Command{
		Use:   "penalty",
		Short: "Estimate the maximum privacy penalties for an annual revenue",
		RunE: func(cmd *cobra.Command, args []string) error {
			if revenue < 0 {
				return fmt.Errorf("revenue must not be negative")
			}

			risk := recommendation.EstimatePenaltyRisk(revenue)
			fmt.Fprintf(env.Output, "Annual revenue: %s\n", format.Money(risk.AnnualRevenue))
			fmt.Fprintf(env.Output, "Administrative penalty: up to %s\n", format.Money(risk.AdministrativePenalty))
			fmt.Fprintf(env.Output, "Penal fine: up to %s\n", format.Money(risk.PenalFine))
			return nil
		},
	}

	cmd.Flags().Float64Var(&revenue, "revenue", 0, "Annual revenue")
	_ = cmd.MarkFlagRequired("revenue")

	return cmd
}
