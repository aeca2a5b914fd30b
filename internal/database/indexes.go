package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes creates the lookup indexes the hot query paths rely on: token
// resolution, team-code lookup, and per-team jersey scans. The unique
// constraints double as the database backstop for the guards that run at
// READ COMMITTED: concurrent duplicate inserts fail here even when both
// transactions passed their count checks.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
		unique  bool
		where   string
	}{
		{"user_tokens", "idx_user_tokens_token", "token", true, ""},
		{"user_tokens", "idx_user_tokens_user_id", "user_id", false, ""},
		{"teams", "idx_teams_team_code", "team_code", true, ""},
		{"teams", "idx_teams_created_by", "created_by", false, ""},
		{"players", "uniq_players_team_jersey_active", "team_id, jersey_number", true, "is_active"},
		{"team_memberships", "uniq_team_memberships_team_user", "team_id, user_id", true, ""},
	}

	for _, idx := range indexes {
		var count int64
		err := db.Raw(`
			SELECT COUNT(*)
			FROM pg_indexes
			WHERE tablename = ? AND indexname = ?
		`, idx.table, idx.name).Count(&count).Error
		if err != nil {
			return fmt.Errorf("failed to check index %s: %w", idx.name, err)
		}
		if count > 0 {
			continue
		}

		unique := ""
		if idx.unique {
			unique = "UNIQUE "
		}
		sql := fmt.Sprintf("CREATE %sINDEX %s ON %s (%s)", unique, idx.name, idx.table, idx.columns)
		if idx.where != "" {
			sql += " WHERE " + idx.where
		}
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
