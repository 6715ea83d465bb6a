// Package practice ties a drill session to the stored learner profile:
// it builds engines from the profile and folds results back into it.
package practice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/abhisek/mentalmath/internal/hints"
	"github.com/abhisek/mentalmath/internal/mathrand"
	"github.com/abhisek/mentalmath/internal/persona"
	"github.com/abhisek/mentalmath/internal/problemgen"
	"github.com/abhisek/mentalmath/internal/profile"
	"github.com/abhisek/mentalmath/internal/session"
	"github.com/abhisek/mentalmath/internal/skillgraph"
	"github.com/abhisek/mentalmath/internal/store"
)

// Env is what the drill screens need from the rest of the app.
type Env struct {
	Repo    store.ProfileRepo
	Profile *profile.LearnerProfile
	Hints   *hints.Library
	Source  mathrand.Source
	Logger  *slog.Logger
	Now     func() time.Time

	SessionLength int
	WordProblems  bool

	freshHint bool
}

// Outcome is what finishing a session changed on the profile.
type Outcome struct {
	Summary   session.Summary
	LevelUp   bool
	NewLevel  int
	TotalXP   int
	DayStreak int
}

func (e *Env) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return e.Logger
}

// Clock returns the current time from Now, or the wall clock.
func (e *Env) Clock() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

// ObserveHints returns a hints option that flags the first hint the
// library builds for each skill type. TakeFreshHint reads the flag.
func (e *Env) ObserveHints() hints.Option {
	return hints.WithObserver(func(skillgraph.SkillType) { e.freshHint = true })
}

// TakeFreshHint reports whether a hint was built for a new skill type
// since the last call.
func (e *Env) TakeFreshHint() bool {
	fresh := e.freshHint
	e.freshHint = false
	return fresh
}

// NewSession starts an engine for the current profile.
func (e *Env) NewSession() *session.Engine {
	gen := problemgen.NewGenerator(e.Source, problemgen.WithLogger(e.logger()))
	return session.NewEngine(session.StateFromProfile(e.Profile), session.Deps{
		Generator:    gen,
		Hints:        e.Hints,
		Coach:        persona.New(e.Source),
		Source:       e.Source,
		Logger:       e.logger(),
		Now:          e.Now,
		WordProblems: e.WordProblems,
	})
}

// Apply folds one graded answer into the profile: the proficiency delta
// and the answer's XP.
func (e *Env) Apply(res session.Result) {
	if res.SkillKey != "" {
		e.Profile.Apply(res.SkillKey, res.ProficiencyDelta)
	}
	e.Profile.AddXP(res.XP)
}

// Finish records the session, awards the completion bonus, touches the
// daily streak and saves the profile.
func (e *Env) Finish(ctx context.Context, levelBefore int, sum session.Summary) (Outcome, error) {
	now := e.Clock()
	p := e.Profile

	p.AddXP(sum.XPEarned)
	p.TouchStreak(now)
	rec := sum.Record(now)
	p.RecordSession(rec)

	out := Outcome{
		Summary:   sum,
		LevelUp:   p.Level > levelBefore,
		NewLevel:  p.Level,
		TotalXP:   p.XP,
		DayStreak: p.Streak,
	}
	if e.Repo == nil {
		return out, nil
	}
	if err := e.Repo.Save(ctx, p); err != nil {
		return out, fmt.Errorf("save profile: %w", err)
	}
	if err := e.Repo.AppendSession(ctx, p.Name, rec); err != nil {
		return out, fmt.Errorf("record session: %w", err)
	}
	e.logger().Info("session saved",
		"problems", sum.TotalProblems,
		"accuracy", sum.Accuracy,
		"xp", sum.XPEarned,
		"level", p.Level)
	return out, nil
}

// LoadProfile returns the stored profile, or a fresh one when none exists.
func LoadProfile(ctx context.Context, repo store.ProfileRepo, name string) (*profile.LearnerProfile, error) {
	p, err := repo.Load(ctx, name)
	if err == nil {
		return p, nil
	}
	if errors.Is(err, store.ErrNotFound) {
		return profile.New(name), nil
	}
	return nil, err
}
