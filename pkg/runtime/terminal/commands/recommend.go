package commands

import (
	"encoding/json"
	"fmt"

	"github.com/de-tools/compliance-atlas/pkg/adapters"
	csvexport "github.com/de-tools/compliance-atlas/pkg/export"
	"github.com/de-tools/compliance-atlas/pkg/models/domain"
	"github.com/de-tools/compliance-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/compliance-atlas/pkg/services/recommendation"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type RecommendCmd struct {
	env          *Env
	catalogPath  string
	profilesPath string
	org          string
	format       string
	savings      []string
	input        domain.ProfileInput
	revenue      float64
}

func NewRecommendCmd(env *Env) *cobra.Command {
	rc := &RecommendCmd{env: env}
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Estimate compliance costs for an organization profile",
		Example: `  compliance recommend --sector health --size small --budget medium \
    --maturity managed --infra onprem,cloud --savings mfa,sauvegardes
  compliance recommend --org acme --format csv`,
		RunE: rc.run,
	}

	cmd.Flags().StringVar(&rc.catalogPath, "catalog", "", "Path to a catalog JSON file (default is the embedded catalog)")
	cmd.Flags().StringVar(&rc.profilesPath, "profiles", "", "Path to the organization profiles file")
	cmd.Flags().StringVar(&rc.org, "org", "", "Organization profile to load from the profiles file")
	cmd.Flags().StringVar(&rc.format, "format", "text", "Output format: text, csv or json")
	cmd.Flags().StringSliceVar(&rc.savings, "savings", nil, "Identifiers of controls already in place")

	cmd.Flags().StringVar(&rc.input.Sector, "sector", "", "Sector: health, finance, public, tech, retail, other")
	cmd.Flags().StringVar(&rc.input.Size, "size", "", "Size: micro, small, medium, large")
	cmd.Flags().StringVar(&rc.input.Budget, "budget", "", "Budget tier: low, medium, high")
	cmd.Flags().StringVar(&rc.input.Maturity, "maturity", "", "Maturity: initial, managed, defined, optimized")
	cmd.Flags().StringSliceVar(&rc.input.Infrastructure, "infra", nil, "Infrastructure: onprem, cloud, hybrid")
	cmd.Flags().Float64Var(&rc.revenue, "revenue", 0, "Annual revenue, enables the penalty risk estimate")

	for _, name := range []string{"sector", "size", "budget", "maturity", "infra"} {
		cmd.MarkFlagsMutuallyExclusive("org", name)
	}

	return cmd
}

func (rc *RecommendCmd) run(cmd *cobra.Command, _ []string) error {
	logger := zerolog.Ctx(cmd.Context())

	engine, err := rc.env.engine(rc.catalogPath)
	if err != nil {
		return err
	}

	profile, err := rc.profile(cmd)
	if err != nil {
		return err
	}

	bundle := engine.Evaluate(profile, rc.savings)
	logger.Debug().
		Int("mandatory", len(bundle.Mandatory)).
		Int("optional", len(bundle.Optional)).
		Float64("total_savings", bundle.TotalSavings).
		Msg("recommendation computed")

	switch rc.format {
	case "text":
		return rc.env.Reporter.Handle(export.NewReport(profile, bundle, engine.Catalog(), rc.env.Config.Currency))
	case "csv":
		return csvexport.WriteCSV(rc.env.Output, bundle)
	case "json":
		response := adapters.MapRecommendationDomainToApi(bundle)
		response.SavingsProgress = recommendation.SavingsProgress(bundle.TotalSavings, engine.Catalog())
		response.Guidance = adapters.MapTierGuidanceDomainToApi(recommendation.Guidance())
		if profile.AnnualRevenue != nil {
			response.PenaltyRisk = adapters.MapPenaltyRiskDomainToApi(recommendation.EstimatePenaltyRisk(*profile.AnnualRevenue))
		}
		enc := json.NewEncoder(rc.env.Output)
		enc.SetIndent("", "  ")
		return enc.Encode(response)
	default:
		return fmt.Errorf("unsupported format %q", rc.format)
	}
}

func (rc *RecommendCmd) profile(cmd *cobra.Command) (domain.Profile, error) {
	var (
		profile domain.Profile
		err     error
	)
	if rc.org != "" {
		profile, err = rc.orgProfile(cmd)
	} else {
		profile, err = rc.input.Parse()
	}
	if err != nil {
		return domain.Profile{}, err
	}

	// --revenue overrides the stored revenue of an organization profile.
	if cmd.Flags().Changed("revenue") {
		if rc.revenue < 0 {
			return domain.Profile{}, fmt.Errorf("%w: annual revenue must not be negative", domain.ErrInvalidProfile)
		}
		revenue := rc.revenue
		profile.AnnualRevenue = &revenue
	}
	return profile, nil
}

func (rc *RecommendCmd) orgProfile(cmd *cobra.Command) (domain.Profile, error) {
	registry, err := rc.env.registry(rc.profilesPath)
	if err != nil {
		return domain.Profile{}, err
	}
	return registry.GetProfile(cmd.Context(), rc.org)
}
