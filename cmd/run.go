package cmd

import (
	"context"
	"fmt"

	"github.com/fchimpan/ice-cold-beer/internal/config"
)

func run(ctx context.Context, deps Deps, opts config.Options) error {
	if deps.NewSession == nil {
		return fmt.Errorf("deps.NewSession is nil")
	}
	if deps.RunTUI == nil {
		return fmt.Errorf("deps.RunTUI is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	session, err := deps.NewSession(opts.Seed)
	if err != nil {
		return fmt.Errorf("failed to set up game: %w", err)
	}
	return deps.RunTUI(session, opts)
}
