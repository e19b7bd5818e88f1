package terminal

import (
	"io"
	"os"

	"github.com/de-tools/compliance-atlas/pkg/config"
	"github.com/de-tools/compliance-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/compliance-atlas/pkg/runtime/terminal/export"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	env     *commands.Env
	rootCmd *cobra.Command
	logs    io.Writer
	cfgPath string
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
	// Logs receives diagnostic output. Defaults to stderr.
	Logs io.Writer
	// Config skips loading configuration from the environment when set.
	Config *config.Config
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Logs == nil {
		opts.Logs = os.Stderr
	}

	cli := &CLI{
		env: &commands.Env{
			Config:   opts.Config,
			Output:   opts.Output,
			Reporter: export.NewReporter(opts.Output),
		},
		logs: opts.Logs,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "compliance",
		Short:             "Compliance cost estimation tool",
		SilenceUsage:      true,
		PersistentPreRunE: cli.setup,
	}
	cmd.SetOut(cli.env.Output)

	cmd.PersistentFlags().StringVarP(&cli.cfgPath, "config", "c", "", "Path to a configuration file")

	cmd.AddCommand(commands.NewRecommendCmd(cli.env))
	cmd.AddCommand(commands.NewCatalogCmd(cli.env))
	cmd.AddCommand(commands.NewProfilesCmd(cli.env))
	cmd.AddCommand(commands.NewPenaltyCmd(cli.env))

	return cmd
}

func (cli *CLI) setup(cmd *cobra.Command, _ []string) error {
	if cli.env.Config == nil {
		cfg, err := config.Load(cli.cfgPath)
		if err != nil {
			return err
		}
		cli.env.Config = cfg
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: cli.logs}).
		Level(cli.env.Config.Level()).
		With().Timestamp().Logger()
	cmd.SetContext(logger.WithContext(cmd.Context()))
	return nil
}
