package main

import (
	"fmt"
	"net"
	"os"

	"github.com/de-tools/compliance-atlas/pkg/config"
	"github.com/de-tools/compliance-atlas/pkg/server"
	"github.com/de-tools/compliance-atlas/pkg/services/recommendation"
	"github.com/de-tools/compliance-atlas/pkg/services/session"
	"github.com/de-tools/compliance-atlas/pkg/store/catalog"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Compliance Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to a configuration file (environment variables and .env are always read)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	logger := zerolog.New(os.Stdout).Level(cfg.Level()).With().Timestamp().Logger()

	c, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	engine, err := recommendation.NewEngine(c)
	if err != nil {
		return fmt.Errorf("failed to create recommendation engine: %w", err)
	}

	source := cfg.CatalogPath
	if source == "" {
		source = "embedded"
	}
	logger.Info().Msgf("Catalog `%s` loaded: %d savings items, %d requirements.",
		source, len(c.Savings), len(c.Requirements))

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	logger.Info().Msgf("starting server on %s", addr)

	return server.NewWebAPI(server.Config{
		Addr:            addr,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Engine:   engine,
			Sessions: session.NewStore(),
			Logger:   logger,
		},
	}).Start()
}
