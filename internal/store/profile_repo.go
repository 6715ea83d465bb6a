package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/abhisek/mentalmath/internal/profile"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

// ProfileRepo loads and saves learner profiles.
type ProfileRepo interface {
	// Load returns the named profile with its recent session history, or
	// ErrNotFound.
	Load(ctx context.Context, name string) (*profile.LearnerProfile, error)

	// Save upserts the profile and replaces its proficiency map. History
	// is written by AppendSession only.
	Save(ctx context.Context, p *profile.LearnerProfile) error

	// AppendSession records a finished session, keeping the most recent
	// profile.MaxHistory records.
	AppendSession(ctx context.Context, name string, r profile.SessionRecord) error

	// Sessions returns up to limit most recent records, oldest first.
	Sessions(ctx context.Context, name string, limit int) ([]profile.SessionRecord, error)

	// Reset deletes the profile and everything recorded for it.
	Reset(ctx context.Context, name string) error
}

type profileRepo struct {
	db     *sql.DB
	logger *slog.Logger
}

var profileColumns = []string{
	"level", "xp", "auto_pilot", "visual_hints", "has_completed_diagnostic",
	"streak", "longest_streak", "last_practice_date",
	"plan_name", "plan_skills", "plan_target_xp", "plan_target_accuracy",
	"plan_target_problems", "plan_start_date",
}

func (r *profileRepo) Load(ctx context.Context, name string) (*profile.LearnerProfile, error) {
	query, args, err := sqlBuilder.Select(profileColumns...).
		From("profiles").
		Where(squirrel.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build profile query: %w", err)
	}

	p := profile.New(name)
	var (
		planName, planSkills, planStart string
		goal                            profile.WeeklyGoal
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&p.Level, &p.XP, &p.AutoPilot, &p.VisualHints, &p.HasCompletedDiagnostic,
		&p.Streak, &p.LongestStreak, &p.LastPracticeDate,
		&planName, &planSkills, &goal.TargetXP, &goal.TargetAccuracy,
		&goal.TargetProblems, &planStart,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("profile %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load profile %q: %w", name, err)
	}
	if planSkills != "" {
		p.ActivePlan = &profile.TrainingPlan{
			Name:         planName,
			TargetSkills: strings.Split(planSkills, ","),
			Goal:         goal,
			StartDate:    planStart,
		}
	}

	if err := r.loadProficiency(ctx, p); err != nil {
		return nil, err
	}
	p.History, err = r.Sessions(ctx, name, profile.MaxHistory)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *profileRepo) loadProficiency(ctx context.Context, p *profile.LearnerProfile) error {
	query, args, err := sqlBuilder.Select("skill_key", "score").
		From("skill_proficiency").
		Where(squirrel.Eq{"profile_name": p.Name}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build proficiency query: %w", err)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("load proficiency: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var key string
		var score int
		if err := rows.Scan(&key, &score); err != nil {
			return fmt.Errorf("scan proficiency: %w", err)
		}
		p.SkillProficiency[key] = score
	}
	return rows.Err()
}

func (r *profileRepo) Save(ctx context.Context, p *profile.LearnerProfile) error {
	var planName, planSkills, planStart string
	var goal profile.WeeklyGoal
	if plan := p.ActivePlan; plan != nil {
		planName, planSkills, planStart = plan.Name, strings.Join(plan.TargetSkills, ","), plan.StartDate
		goal = plan.Goal
	}

	cols := append([]string{"name"}, profileColumns...)
	cols = append(cols, "updated_at")
	var updates []string
	for _, c := range cols[1:] {
		updates = append(updates, c+" = excluded."+c)
	}
	upsert, args, err := sqlBuilder.Insert("profiles").
		Columns(cols...).
		Values(
			p.Name, p.Level, p.XP, p.AutoPilot, p.VisualHints, p.HasCompletedDiagnostic,
			p.Streak, p.LongestStreak, p.LastPracticeDate,
			planName, planSkills, goal.TargetXP, goal.TargetAccuracy,
			goal.TargetProblems, planStart, time.Now().Unix(),
		).
		Suffix("ON CONFLICT(name) DO UPDATE SET " + strings.Join(updates, ", ")).
		ToSql()
	if err != nil {
		return fmt.Errorf("build profile upsert: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, upsert, args...); err != nil {
		return fmt.Errorf("save profile %q: %w", p.Name, err)
	}

	del, args, err := sqlBuilder.Delete("skill_proficiency").Where(squirrel.Eq{"profile_name": p.Name}).ToSql()
	if err != nil {
		return fmt.Errorf("build proficiency delete: %w", err)
	}
	if _, err := tx.ExecContext(ctx, del, args...); err != nil {
		return fmt.Errorf("clear proficiency: %w", err)
	}

	if len(p.SkillProficiency) > 0 {
		ins := sqlBuilder.Insert("skill_proficiency").Columns("profile_name", "skill_key", "score")
		for key, score := range p.SkillProficiency {
			ins = ins.Values(p.Name, key, score)
		}
		query, args, err := ins.ToSql()
		if err != nil {
			return fmt.Errorf("build proficiency insert: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("save proficiency: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit profile: %w", err)
	}
	r.logger.Debug("profile saved", "name", p.Name, "level", p.Level, "skills", len(p.SkillProficiency))
	return nil
}

func (r *profileRepo) AppendSession(ctx context.Context, name string, rec profile.SessionRecord) error {
	ins, args, err := sqlBuilder.Insert("sessions").
		Columns("profile_name", "date", "problems_solved", "correct", "accuracy", "avg_speed", "xp_earned", "struggled_skill").
		Values(name, rec.Date, rec.ProblemsSolved, rec.Correct, rec.Accuracy, rec.AvgSpeed, rec.XPEarned, rec.StruggledSkill).
		ToSql()
	if err != nil {
		return fmt.Errorf("build session insert: %w", err)
	}

	// Everything but the newest MaxHistory rows.
	stale := sqlBuilder.Select("id").
		From("sessions").
		Where(squirrel.Eq{"profile_name": name}).
		OrderBy("id DESC").
		Limit(uint64(1) << 62).
		Offset(uint64(profile.MaxHistory))
	prune, pruneArgs, err := sqlBuilder.Delete("sessions").
		Where(squirrel.Expr("id IN (?)", stale)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build session prune: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, ins, args...); err != nil {
		return fmt.Errorf("append session: %w", err)
	}
	if _, err := tx.ExecContext(ctx, prune, pruneArgs...); err != nil {
		return fmt.Errorf("prune sessions: %w", err)
	}
	return tx.Commit()
}

func (r *profileRepo) Sessions(ctx context.Context, name string, limit int) ([]profile.SessionRecord, error) {
	if limit <= 0 {
		limit = profile.MaxHistory
	}
	query, args, err := sqlBuilder.Select("date", "problems_solved", "correct", "accuracy", "avg_speed", "xp_earned", "struggled_skill").
		From("sessions").
		Where(squirrel.Eq{"profile_name": name}).
		OrderBy("id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sessions query: %w", err)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var out []profile.SessionRecord
	for rows.Next() {
		var rec profile.SessionRecord
		if err := rows.Scan(&rec.Date, &rec.ProblemsSolved, &rec.Correct, &rec.Accuracy, &rec.AvgSpeed, &rec.XPEarned, &rec.StruggledSkill); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	// Newest first from the query; callers want chronological order.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

func (r *profileRepo) Reset(ctx context.Context, name string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Children first: foreign_keys is a per-connection pragma.
	for _, table := range []string{"sessions", "skill_proficiency"} {
		query, args, err := sqlBuilder.Delete(table).Where(squirrel.Eq{"profile_name": name}).ToSql()
		if err != nil {
			return fmt.Errorf("build %s delete: %w", table, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("reset %s: %w", table, err)
		}
	}
	query, args, err := sqlBuilder.Delete("profiles").Where(squirrel.Eq{"name": name}).ToSql()
	if err != nil {
		return fmt.Errorf("build profile delete: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("reset profile: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reset: %w", err)
	}
	r.logger.Info("profile reset", "name", name)
	return nil
}
