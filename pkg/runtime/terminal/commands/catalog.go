package commands

import (
	"github.com/de-tools/compliance-atlas/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

func NewCatalogCmd(env *Env) *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List existing controls and compliance requirements",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := env.engine(catalogPath)
			if err != nil {
				return err
			}
			return env.Reporter.HandleCatalog(export.NewCatalogReport(engine.Catalog()))
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Path to a catalog JSON file (default is the embedded catalog)")

	return cmd
}
