// Package main provides the setty binary entry point.
// Setty builds enumerated types from validated blueprints at runtime.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/c360studio/setty/blueprint"
	"github.com/c360studio/setty/config"
	"github.com/c360studio/setty/enum"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "setty"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// cli carries the state the persistent flags resolve to.
type cli struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
}

func rootCmd() *cobra.Command {
	c := &cli{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Runtime enum builder",
		Long: `Setty builds enumerated types at runtime from blueprints.

A blueprint names an enum and maps constant names to unique values:

  name: Compass
  constant:
    NORTH: north
    SOUTH: south

Every blueprint is validated before it is stored. Values are cached so the
same (enum, value) pair always yields the same instance.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		c.demoCmd(),
		c.loadCmd(),
		c.showCmd(),
		c.watchCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
			},
		},
	)

	return cmd
}

func (c *cli) setup(cmd *cobra.Command) error {
	bootstrap := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelWarn}))
	loader := config.NewLoader(bootstrap)

	var err error
	if c.configPath != "" {
		c.cfg, err = loader.LoadExplicit(c.configPath)
	} else {
		c.cfg, err = loader.Load()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if c.logLevel != "" {
		c.cfg.Log.Level = c.logLevel
	}
	level, err := config.ParseLevel(c.cfg.Log.Level)
	if err != nil {
		return err
	}

	c.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return nil
}

func (c *cli) app(cmd *cobra.Command) *App {
	return NewApp(c.cfg, c.logger, cmd.OutOrStdout())
}

func (c *cli) demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Build the Compass enum and show its behaviour",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(c.app(cmd).builder, cmd.OutOrStdout())
		},
	}
}

func runDemo(b *enum.Builder, out io.Writer) error {
	compass := blueprint.New("Compass",
		blueprint.Constant{Name: "NORTH", Value: "north"},
		blueprint.Constant{Name: "SOUTH", Value: "south"},
		blueprint.Constant{Name: "EAST", Value: "east"},
		blueprint.Constant{Name: "WEST", Value: "west"},
	)
	if err := b.Store(compass); err != nil {
		return err
	}

	e, err := b.BuildStored("Compass")
	if err != nil {
		return err
	}
	printEnum(out, e)

	again, err := b.BuildStored("Compass")
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "NORTH is the same instance across builds: %t\n", e.MustMember("NORTH") == again.MustMember("NORTH"))
	fmt.Fprintf(out, "EAST is WEST: %t\n", e.MustMember("EAST").Is(e.MustMember("WEST")))

	yesNo := blueprint.New("YesNo",
		blueprint.Constant{Name: "YES", Value: "y"},
		blueprint.Constant{Name: "NO", Value: "y"},
	)
	if err := b.Store(yesNo); err != nil {
		fmt.Fprintf(out, "YesNo rejected: %v\n", err)
	}

	if _, err := b.BuildStored("Unregistered"); err != nil {
		fmt.Fprintf(out, "Unregistered: %v\n", err)
	}

	return nil
}

func (c *cli) loadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load [files|dirs|globs...]",
		Short: "Store blueprints and print every enum built from them",
		Long: `Store every blueprint found in the given files, directories or globs
(blueprints.paths from the config when none are given) and print the
resulting enums. Rejected blueprints are reported and make the command fail.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			enums, err := c.app(cmd).LoadAll(args)
			for _, e := range enums {
				printEnum(cmd.OutOrStdout(), e)
			}
			return err
		},
	}
}

func (c *cli) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <file> <enum> [member]",
		Short: "Print one enum, or one of its members, from a blueprint file",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := c.app(cmd)
			if _, err := a.StoreFile(args[0]); err != nil && !a.builder.Registry().Has(args[1]) {
				return err
			}

			e, err := a.builder.BuildStored(args[1])
			if err != nil {
				return err
			}
			if len(args) == 2 {
				printEnum(cmd.OutOrStdout(), e)
				return nil
			}

			v, err := e.Member(args[2])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v.String())
			return nil
		},
	}
}

func (c *cli) watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [dir]",
		Short: "Store blueprints from files as they appear in a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := c.cfg.Watch.Dir
			if len(args) == 1 {
				dir = args[0]
			}
			if dir == "" {
				return errors.New("no directory to watch")
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()
			return runWatch(ctx, c.app(cmd), dir)
		},
	}
}

func runWatch(ctx context.Context, a *App, dir string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.Watch(ctx, dir)
	})
	if a.cfg.Metrics.Enabled {
		g.Go(func() error {
			return a.ServeMetrics(ctx, a.cfg.Metrics.Addr)
		})
	}
	return g.Wait()
}
