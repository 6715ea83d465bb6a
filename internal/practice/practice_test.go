package practice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mentalmath/internal/hints"
	"github.com/abhisek/mentalmath/internal/mathrand"
	"github.com/abhisek/mentalmath/internal/problemgen"
	"github.com/abhisek/mentalmath/internal/profile"
	"github.com/abhisek/mentalmath/internal/session"
	"github.com/abhisek/mentalmath/internal/store"
)

var fixedNow = time.Date(2026, 6, 1, 18, 0, 0, 0, time.UTC)

func newEnv(t *testing.T, repo store.ProfileRepo) *Env {
	t.Helper()
	lib, err := hints.New()
	require.NoError(t, err)
	return &Env{
		Repo:          repo,
		Profile:       profile.New("ada"),
		Hints:         lib,
		Source:        mathrand.New(5),
		Now:           func() time.Time { return fixedNow },
		SessionLength: 3,
	}
}

func TestEnv_PlaySessionAndPersist(t *testing.T) {
	ctx := context.Background()
	s, err := store.Open("file:practice_env?mode=memory&cache=shared")
	require.NoError(t, err)
	defer s.Close()

	env := newEnv(t, s.ProfileRepo())
	eng := env.NewSession()
	before := env.Profile.Level

	for i := 0; i < env.SessionLength; i++ {
		p, err := eng.NextProblem()
		require.NoError(t, err)
		env.Apply(eng.Grade(p, p.Answer.String(), 1))
	}

	out, err := env.Finish(ctx, before, eng.Summary())
	require.NoError(t, err)
	assert.Equal(t, 3, out.Summary.CorrectProblems)
	assert.Equal(t, 1, out.DayStreak)
	assert.Equal(t, env.Profile.XP, out.TotalXP)

	loaded, err := LoadProfile(ctx, s.ProfileRepo(), "ada")
	require.NoError(t, err)
	assert.Equal(t, env.Profile.XP, loaded.XP)
	assert.Equal(t, env.Profile.SkillProficiency, loaded.SkillProficiency)
	require.Len(t, loaded.History, 1)
	assert.Equal(t, "2026-06-01", loaded.History[0].Date)
	assert.Equal(t, "2026-06-01", loaded.LastPracticeDate)
}

func TestEnv_ApplyClampsAndAddsXP(t *testing.T) {
	env := newEnv(t, nil)
	env.Apply(session.Result{SkillKey: "add_basic_10", ProficiencyDelta: -5})
	assert.Equal(t, 0, env.Profile.Proficiency("add_basic_10"))

	env.Apply(session.Result{SkillKey: "add_basic_10", ProficiencyDelta: 5, XP: 120})
	assert.Equal(t, 5, env.Profile.Proficiency("add_basic_10"))
	assert.Equal(t, 120, env.Profile.XP)
	assert.Equal(t, 2, env.Profile.Level)
}

func TestEnv_FinishWithoutRepo(t *testing.T) {
	env := newEnv(t, nil)
	out, err := env.Finish(context.Background(), 1, session.Summary{TotalProblems: 2, CorrectProblems: 2, XPEarned: 100})
	require.NoError(t, err)
	assert.True(t, out.LevelUp)
	assert.Equal(t, 2, out.NewLevel)
	assert.Len(t, env.Profile.History, 1)
}

func TestLoadProfile_Missing(t *testing.T) {
	s, err := store.Open("file:practice_missing?mode=memory&cache=shared")
	require.NoError(t, err)
	defer s.Close()

	p, err := LoadProfile(context.Background(), s.ProfileRepo(), "new")
	require.NoError(t, err)
	assert.Equal(t, "new", p.Name)
	assert.Equal(t, 1, p.Level)
}

func TestEnv_FreshHintOncePerSkillType(t *testing.T) {
	env := newEnv(t, nil)
	lib, err := hints.New(hints.WithSource(mathrand.New(1)), env.ObserveHints())
	require.NoError(t, err)
	env.Hints = lib

	add, err := problemgen.ParseExpression("34 + 25")
	require.NoError(t, err)
	mul, err := problemgen.ParseExpression("6 x 7")
	require.NoError(t, err)

	assert.False(t, env.TakeFreshHint())
	lib.Hint(add)
	assert.True(t, env.TakeFreshHint())
	assert.False(t, env.TakeFreshHint(), "flag should clear once read")

	lib.Hint(add)
	assert.False(t, env.TakeFreshHint())
	lib.Hint(mul)
	assert.True(t, env.TakeFreshHint())
}
