// Package commands implements the CLI commands for viewgraph.
package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/viewgraph/internal/adapters/telemetry"
	"go.trai.ch/viewgraph/internal/app"
	"go.trai.ch/viewgraph/internal/build"
	"go.trai.ch/viewgraph/internal/core/domain"
	"go.trai.ch/viewgraph/internal/core/ports"
	"go.trai.ch/viewgraph/internal/ui/report"
	"go.trai.ch/zerr"
)

const (
	defaultConfigPath = "view.yaml"
	defaultStatePath  = ".viewgraph/ledger.json"
)

// Application represents the application logic interface.
type Application interface {
	Prune(ctx context.Context, opts app.PruneOptions) (*app.PruneReport, error)
	Validity(ctx context.Context, configPath string, at time.Time) (*app.ValidityReport, error)
	Resolve(ctx context.Context, opts app.ResolveOptions) (*app.ResolveReport, error)
}

type reporter interface {
	Prune(rep *app.PruneReport) error
	Validity(rep *app.ValidityReport) error
	Resolve(rep *app.ResolveReport) error
}

// jsonLogger is implemented by loggers that can switch to JSON output.
type jsonLogger interface {
	SetJSON(enable bool)
}

// CLI represents the command line interface for viewgraph.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command

	configPath string
	statePath  string
	jsonOutput bool
	trace      bool

	shutdownTracing func(context.Context) error
}

// New creates a new CLI instance with the given app and logger.
func New(a Application, log ports.Logger) *CLI {
	c := &CLI{app: a, logger: log}

	rootCmd := &cobra.Command{
		Use:               "viewgraph",
		Short:             "Prune, validate and re-resolve compiled dependency graph views",
		SilenceUsage:      true,
		SilenceErrors:     true,
		Version:           build.Version,
		PersistentPreRun:  c.setup,
		PersistentPostRun: c.teardown,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.configPath, "config", "c", defaultConfigPath, "Workspace file describing the compiled view")
	flags.StringVar(&c.statePath, "state", defaultStatePath, "Resolution ledger snapshot")
	flags.BoolVar(&c.jsonOutput, "json", false, "Write reports and logs as JSON")
	flags.BoolVar(&c.trace, "trace", false, "Log a line for every finished span")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newPruneCmd())
	rootCmd.AddCommand(c.newValidityCmd())
	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) setup(*cobra.Command, []string) {
	if l, ok := c.logger.(jsonLogger); ok {
		l.SetJSON(c.jsonOutput)
	}
	if c.trace {
		c.shutdownTracing = telemetry.InstallLogProvider(c.logger)
	}
}

func (c *CLI) teardown(cmd *cobra.Command, _ []string) {
	if c.shutdownTracing != nil {
		_ = c.shutdownTracing(cmd.Context())
		c.shutdownTracing = nil
	}
}

func (c *CLI) reporter(w io.Writer) reporter {
	if c.jsonOutput {
		return report.NewJSON(w)
	}
	return report.New(w)
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// parseInstant parses an RFC 3339 flag value. An empty value yields the zero time.
func parseInstant(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, zerr.With(domain.ErrInvalidInstant, "value", value)
	}
	return t, nil
}
