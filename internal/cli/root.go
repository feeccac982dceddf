package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/idilsaglam/finmetrics/internal/config"
	"github.com/idilsaglam/finmetrics/internal/logging"
	"github.com/idilsaglam/finmetrics/internal/model"
	"github.com/idilsaglam/finmetrics/internal/stub"
	"github.com/idilsaglam/finmetrics/internal/ui"
)

const (
	// configKey is the flag annotation naming the config key a flag overrides.
	configKey = "finmetrics_config_key"
	// sectionsKey is the command annotation listing the config sections it validates.
	sectionsKey = "finmetrics_config_sections"
)

// app holds what PersistentPreRunE resolves for the running subcommand.
type app struct {
	configPath string
	verbose    bool

	cfg     config.Config
	log     *zap.Logger
	restore func()
}

// Execute runs the command line and returns the process exit code
// (0 ok, 1 error, 2 usage).
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return run(ctx, os.Args[1:], os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		ui.Fail(stderr, err.Error())
		return exitCode(err)
	}
	return 0
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	cmd := &cobra.Command{
		Use:           "finmetrics",
		Short:         "Return vs volatility analysis in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageErrorf("unknown command %q for \"finmetrics\"", args[0])
			}
			return nil
		},
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			// the bare invocation stays free of config and logging
			if c == c.Root() {
				return nil
			}
			return a.setup(c)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			a.teardown()
		},
		RunE: func(c *cobra.Command, _ []string) error {
			return stub.Run(c.OutOrStdout())
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/finmetrics/finmetrics.yaml)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging to stderr")
	pf.String("theme", "classic", "output theme: classic, neon or mono")
	pf.Bool("no-color", false, "disable coloured output")
	bindFlag(pf, "theme", "theme")
	bindFlag(pf, "no-color", "no_color")

	cmd.AddCommand(
		placeholderCmd(),
		calcCmd(a),
		uses(simulateCmd(a), config.SectionSimulator),
		runsCmd(a),
		learnCmd(a),
		uses(tuiCmd(a), config.SectionCalculator, config.SectionSimulator),
		versionCmd(),
	)
	return cmd
}

// bindFlag marks a flag as the command line override of a config key.
func bindFlag(fs *pflag.FlagSet, name, key string) {
	_ = fs.SetAnnotation(name, configKey, []string{key})
}

// uses records which config sections c reads, so only those are validated.
func uses(c *cobra.Command, secs ...config.Section) *cobra.Command {
	names := make([]string, len(secs))
	for i, s := range secs {
		names[i] = string(s)
	}
	if c.Annotations == nil {
		c.Annotations = map[string]string{}
	}
	c.Annotations[sectionsKey] = strings.Join(names, ",")
	return c
}

func sections(c *cobra.Command) []config.Section {
	v := c.Annotations[sectionsKey]
	if v == "" {
		return nil
	}
	var out []config.Section
	for _, s := range strings.Split(v, ",") {
		out = append(out, config.Section(s))
	}
	return out
}

func bindings(c *cobra.Command) config.Bindings {
	b := config.Bindings{}
	visit := func(f *pflag.Flag) {
		if keys, ok := f.Annotations[configKey]; ok && len(keys) == 1 {
			b[keys[0]] = f
		}
	}
	c.Flags().VisitAll(visit)
	c.InheritedFlags().VisitAll(visit)
	return b
}

func (a *app) setup(c *cobra.Command) error {
	cfg, err := config.Load(a.configPath, bindings(c), sections(c)...)
	if err != nil {
		return err
	}
	a.cfg = cfg

	ui.SetColorForcing(false, cfg.NoColor)
	ui.SetTheme(cfg.Theme)

	l, err := logging.New(logging.Config{Level: cfg.Log.Level, File: cfg.Log.File, Verbose: a.verbose})
	if err != nil {
		return err
	}
	a.log = l.With(zap.String("command", c.CommandPath()))
	a.restore = logging.Set(a.log)
	a.log.Debug("config loaded", zap.String("file", config.Path(a.configPath)), zap.String("store", cfg.Store.Dir))
	return nil
}

func (a *app) teardown() {
	logging.Sync()
	if a.restore != nil {
		a.restore()
		a.restore = nil
	}
}

// usageError marks errors caused by how the command was invoked.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// usageArgs turns argument validation failures into usage errors.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(c *cobra.Command, args []string) error {
		if err := fn(c, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}

func exitCode(err error) int {
	var ue *usageError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &ue), errors.Is(err, model.ErrInvalidInput):
		return 2
	}
	return 1
}
