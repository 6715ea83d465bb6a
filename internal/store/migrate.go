package store

import (
	"database/sql"
	"fmt"
)

// schemaVersion is bumped with every entry appended to migrations.
const schemaVersion = 1

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS profiles (
		name                     TEXT PRIMARY KEY,
		level                    INTEGER NOT NULL DEFAULT 1,
		xp                       INTEGER NOT NULL DEFAULT 0,
		auto_pilot               INTEGER NOT NULL DEFAULT 0,
		visual_hints             INTEGER NOT NULL DEFAULT 0,
		has_completed_diagnostic INTEGER NOT NULL DEFAULT 0,
		streak                   INTEGER NOT NULL DEFAULT 0,
		longest_streak           INTEGER NOT NULL DEFAULT 0,
		last_practice_date       TEXT NOT NULL DEFAULT '',
		plan_name                TEXT NOT NULL DEFAULT '',
		plan_skills              TEXT NOT NULL DEFAULT '',
		plan_target_xp           INTEGER NOT NULL DEFAULT 0,
		plan_target_accuracy     INTEGER NOT NULL DEFAULT 0,
		plan_target_problems     INTEGER NOT NULL DEFAULT 0,
		plan_start_date          TEXT NOT NULL DEFAULT '',
		updated_at               INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS skill_proficiency (
		profile_name TEXT NOT NULL REFERENCES profiles(name) ON DELETE CASCADE,
		skill_key    TEXT NOT NULL,
		score        INTEGER NOT NULL,
		PRIMARY KEY (profile_name, skill_key)
	)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		profile_name    TEXT NOT NULL REFERENCES profiles(name) ON DELETE CASCADE,
		date            TEXT NOT NULL,
		problems_solved INTEGER NOT NULL,
		correct         INTEGER NOT NULL,
		accuracy        REAL NOT NULL,
		avg_speed       REAL NOT NULL,
		xp_earned       INTEGER NOT NULL,
		struggled_skill TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS sessions_profile ON sessions(profile_name, id)`,
}

// migrate applies the schema idempotently and records its version.
func migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
	}
	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return fmt.Errorf("set user_version: %w", err)
	}
	return nil
}
