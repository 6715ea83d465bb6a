package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/mentalmath/internal/app"
	"github.com/abhisek/mentalmath/internal/config"
	"github.com/abhisek/mentalmath/internal/hints"
	"github.com/abhisek/mentalmath/internal/practice"
	"github.com/abhisek/mentalmath/internal/profile"
	"github.com/abhisek/mentalmath/internal/store"
)

// runtime is what every stateful command needs: settings, a logger and
// the open profile store.
type runtime struct {
	cfg    config.Config
	logger *slog.Logger
	store  *store.Store
	repo   store.ProfileRepo

	logCloser io.Closer
}

// openRuntime loads configuration, builds the logger and opens the store.
// Logs go to the command's stderr unless a log file is configured.
func openRuntime(cmd *cobra.Command) (*runtime, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration:\n%w", err)
	}
	logger, closer, err := cfg.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		closer.Close()
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath, store.WithLogger(logger))
	if err != nil {
		closer.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}
	return &runtime{cfg: cfg, logger: logger, store: st, repo: st.ProfileRepo(), logCloser: closer}, nil
}

func (r *runtime) Close() {
	r.store.Close()
	r.logCloser.Close()
}

func (r *runtime) loadProfile(ctx context.Context, name string) (*profile.LearnerProfile, error) {
	p, err := practice.LoadProfile(ctx, r.repo, name)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return p, nil
}

// practiceEnv wires a profile into a drill environment.
func (r *runtime) practiceEnv(p *profile.LearnerProfile) (*practice.Env, error) {
	src := r.cfg.Source()
	env := &practice.Env{
		Repo:          r.repo,
		Profile:       p,
		Source:        src,
		Logger:        r.logger,
		SessionLength: r.cfg.SessionLength,
		WordProblems:  r.cfg.WordProblems,
	}
	lib, err := hints.New(hints.WithSource(src), hints.WithLogger(r.logger), env.ObserveHints())
	if err != nil {
		return nil, fmt.Errorf("load hints: %w", err)
	}
	env.Hints = lib
	return env, nil
}

// runApp opens the store, loads the profile and launches the TUI.
func runApp(cmd *cobra.Command) error {
	rt, err := openRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	p, err := rt.loadProfile(cmd.Context(), profileName(cmd))
	if err != nil {
		return err
	}
	if !p.HasCompletedDiagnostic {
		rt.logger.Info("no placement on record; starting at level 1", "profile", p.Name)
	}
	env, err := rt.practiceEnv(p)
	if err != nil {
		return err
	}
	return app.Run(env)
}
