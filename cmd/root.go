package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fchimpan/ice-cold-beer/internal/config"
	"github.com/fchimpan/ice-cold-beer/internal/game"
	"github.com/fchimpan/ice-cold-beer/internal/levels"
)

type Deps struct {
	LoadOptions func() (config.Options, error)
	NewSession  func(seed uint64) (*game.Session, error)
	RunTUI      func(session *game.Session, opts config.Options) error
	Now         func() time.Time
	Stdout      io.Writer
	Stderr      io.Writer
}

func DefaultDeps() Deps {
	return Deps{
		LoadOptions: config.Load,
		NewSession:  defaultNewSession,
		RunTUI:      defaultRunTUI,
		Now:         time.Now,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
	}
}

func defaultNewSession(seed uint64) (*game.Session, error) {
	return game.NewSession(levels.Default(), game.DefaultGeometry(), game.NewSource(seed))
}

func NewRootCmd(deps Deps) *cobra.Command {
	var seed uint64
	var tps int
	var debugLog string

	c := &cobra.Command{
		Use:          "icebeer",
		Short:        "Tilt the bar and roll the ball into the green hole",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if deps.LoadOptions == nil {
				return fmt.Errorf("deps.LoadOptions is nil")
			}
			opts, err := deps.LoadOptions()
			if err != nil {
				fmt.Fprintln(deps.Stderr, "hint: check the ICEBEER_* environment variables")
				return err
			}

			// Explicit flags win over the environment.
			flags := cmd.Flags()
			if flags.Changed("seed") {
				opts.Seed = seed
			}
			if flags.Changed("tps") {
				opts.TPS = tps
			}
			if flags.Changed("debug-log") {
				opts.DebugLog = debugLog
			}
			// Validate only after the merge so a flag can repair a bad env value.
			if err := opts.Validate(); err != nil {
				if !flags.Changed("tps") {
					fmt.Fprintln(deps.Stderr, "hint: check the ICEBEER_* environment variables")
				}
				return fmt.Errorf("invalid options: %w", err)
			}
			if opts.Seed == 0 {
				opts.Seed = uint64(deps.Now().UnixNano())
			}

			return run(cmd.Context(), deps, opts)
		},
	}

	c.Flags().Uint64VarP(&seed, "seed", "s", 0, "seed for hole layouts (0 picks one from the clock)")
	c.Flags().IntVar(&tps, "tps", 60, "simulation ticks per second")
	c.Flags().StringVar(&debugLog, "debug-log", "", "write diagnostics to this file")

	c.SetOut(deps.Stdout)
	c.SetErr(deps.Stderr)
	return c
}
