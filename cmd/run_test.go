package cmd

import (
	"context"
	"errors"
	"testing"

	"github.com/fchimpan/ice-cold-beer/internal/config"
	"github.com/fchimpan/ice-cold-beer/internal/game"
)

func TestRun_Success(t *testing.T) {
	t.Parallel()

	var gotSeed uint64
	var calledTUI bool

	deps := Deps{
		NewSession: func(seed uint64) (*game.Session, error) {
			gotSeed = seed
			return defaultNewSession(seed)
		},
		RunTUI: func(session *game.Session, opts config.Options) error {
			calledTUI = true
			if session == nil {
				t.Fatalf("session is nil")
			}
			if session.Snapshot().State != game.StateWaiting {
				t.Fatalf("session should start waiting")
			}
			if opts.TPS != 30 {
				t.Fatalf("tps mismatch: got %d", opts.TPS)
			}
			return nil
		},
	}

	if err := run(context.Background(), deps, config.Options{Seed: 123, TPS: 30}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if gotSeed != 123 {
		t.Fatalf("seed mismatch: got %d", gotSeed)
	}
	if !calledTUI {
		t.Fatalf("RunTUI not called")
	}
}

func TestRun_SessionError(t *testing.T) {
	t.Parallel()

	want := &game.InvariantError{What: "geometry", Detail: "bar too wide"}
	deps := Deps{
		NewSession: func(seed uint64) (*game.Session, error) {
			return nil, want
		},
		RunTUI: func(session *game.Session, opts config.Options) error {
			t.Fatalf("RunTUI should not be called on setup error")
			return nil
		},
	}

	err := run(context.Background(), deps, config.Options{Seed: 1, TPS: 60})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, want) || !game.IsInvariantViolation(err) {
		t.Fatalf("expected wrapped invariant error, got %v", err)
	}
}

func TestRun_TUIError(t *testing.T) {
	t.Parallel()

	want := errors.New("no tty")
	deps := Deps{
		NewSession: defaultNewSession,
		RunTUI: func(session *game.Session, opts config.Options) error {
			return want
		},
	}
	if err := run(context.Background(), deps, config.Options{Seed: 1, TPS: 60}); !errors.Is(err, want) {
		t.Fatalf("expected %v, got %v", want, err)
	}
}

func TestRun_MissingDeps(t *testing.T) {
	t.Parallel()

	if err := run(context.Background(), Deps{}, config.Options{TPS: 60}); err == nil {
		t.Fatalf("expected error for missing deps")
	}
}

func TestRun_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	deps := Deps{
		NewSession: func(seed uint64) (*game.Session, error) {
			t.Fatalf("NewSession should not be called after cancel")
			return nil, nil
		},
		RunTUI: func(session *game.Session, opts config.Options) error {
			t.Fatalf("RunTUI should not be called after cancel")
			return nil
		},
	}
	if err := run(ctx, deps, config.Options{TPS: 60}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
