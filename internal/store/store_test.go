package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mentalmath/internal/profile"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	db.SetMaxOpenConns(1)

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is checked with a file-based DB below.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
		{"user_version", fmt.Sprint(schemaVersion)},
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestOpenFileDB_WAL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "mm.db")
	require.NoError(t, EnsureDir(path))
	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	var mode string
	require.NoError(t, s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mm.db")
	for i := 0; i < 2; i++ {
		s, err := Open(path)
		require.NoError(t, err, "open %d", i)
		require.NoError(t, s.Close())
	}
}

func TestDefaultDBPath_Env(t *testing.T) {
	want := filepath.Join(t.TempDir(), "x", "profile.db")
	t.Setenv("MENTALMATH_DB", want)
	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.DirExists(t, filepath.Dir(want))
}

func TestDefaultDBPath_XDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MENTALMATH_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)
	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "mentalmath", "mentalmath.db"), got)
}

func TestProfile_LoadMissing(t *testing.T) {
	repo := openTestStore(t).ProfileRepo()
	_, err := repo.Load(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProfile_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).ProfileRepo()

	p := profile.New("ada")
	p.Level = 4
	p.XP = 930
	p.VisualHints = true
	p.HasCompletedDiagnostic = true
	p.Streak, p.LongestStreak, p.LastPracticeDate = 3, 7, "2026-04-02"
	p.Apply("perc_50", 40)
	p.Apply("add_tens", 85)
	plan := &profile.TrainingPlan{
		Name:         "Percents",
		TargetSkills: []string{"perc_10", "perc_50"},
		Goal:         profile.WeeklyGoal{TargetXP: 500, TargetAccuracy: 80},
		StartDate:    "2026-04-01",
	}
	p.SetPlan(plan)
	require.NoError(t, repo.Save(ctx, p))

	got, err := repo.Load(ctx, "ada")
	require.NoError(t, err)
	assert.Equal(t, 4, got.Level)
	assert.Equal(t, 930, got.XP)
	assert.True(t, got.VisualHints)
	assert.False(t, got.AutoPilot)
	assert.True(t, got.HasCompletedDiagnostic)
	assert.Equal(t, 3, got.Streak)
	assert.Equal(t, 7, got.LongestStreak)
	assert.Equal(t, "2026-04-02", got.LastPracticeDate)
	assert.Equal(t, map[string]int{"perc_50": 40, "add_tens": 85}, got.SkillProficiency)
	assert.Equal(t, plan, got.ActivePlan)
	assert.Empty(t, got.History)

	// A second save replaces the proficiency map and clears the plan.
	got.SkillProficiency = map[string]int{"perc_50": 45}
	got.ClearPlan()
	require.NoError(t, repo.Save(ctx, got))

	again, err := repo.Load(ctx, "ada")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"perc_50": 45}, again.SkillProficiency)
	assert.Nil(t, again.ActivePlan)
}

func TestSessions_AppendAndPrune(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).ProfileRepo()
	require.NoError(t, repo.Save(ctx, profile.New("ada")))

	for i := range profile.MaxHistory + 5 {
		rec := profile.SessionRecord{
			Date:           fmt.Sprintf("2026-01-%02d", i%28+1),
			ProblemsSolved: i,
			Correct:        i / 2,
			Accuracy:       50,
			AvgSpeed:       2.5,
			XPEarned:       10 * i,
		}
		require.NoError(t, repo.AppendSession(ctx, "ada", rec))
	}

	recent, err := repo.Sessions(ctx, "ada", 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, []int{32, 33, 34}, []int{recent[0].ProblemsSolved, recent[1].ProblemsSolved, recent[2].ProblemsSolved})

	all, err := repo.Sessions(ctx, "ada", 0)
	require.NoError(t, err)
	require.Len(t, all, profile.MaxHistory)
	assert.Equal(t, 5, all[0].ProblemsSolved)

	var rows int
	require.NoError(t, openRows(ctx, repo, &rows))
	assert.Equal(t, profile.MaxHistory, rows)

	p, err := repo.Load(ctx, "ada")
	require.NoError(t, err)
	assert.Len(t, p.History, profile.MaxHistory)
	assert.Equal(t, 34, p.History[len(p.History)-1].ProblemsSolved)
}

func openRows(ctx context.Context, repo ProfileRepo, n *int) error {
	return repo.(*profileRepo).db.QueryRowContext(ctx, "SELECT COUNT(*) FROM sessions").Scan(n)
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	repo := s.ProfileRepo()

	p := profile.New("ada")
	p.Apply("add_tens", 10)
	require.NoError(t, repo.Save(ctx, p))
	require.NoError(t, repo.AppendSession(ctx, "ada", profile.SessionRecord{Date: "2026-01-01"}))
	require.NoError(t, repo.Save(ctx, profile.New("bob")))

	require.NoError(t, repo.Reset(ctx, "ada"))

	_, err := repo.Load(ctx, "ada")
	assert.ErrorIs(t, err, ErrNotFound)
	for _, table := range []string{"sessions", "skill_proficiency"} {
		var n int
		require.NoError(t, s.DB().QueryRow("SELECT COUNT(*) FROM "+table+" WHERE profile_name = 'ada'").Scan(&n))
		assert.Zero(t, n, table)
	}
	_, err = repo.Load(ctx, "bob")
	assert.NoError(t, err)

	// Resetting a missing profile is not an error.
	assert.NoError(t, repo.Reset(ctx, "ada"))
}
