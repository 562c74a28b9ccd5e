package migrations

import (
	"context"
	"time"

	"git.radiohub.fm/hub/hub/src/migration/types"
	"github.com/jackc/pgx/v5"
)

func init() {
	registerMigration(AddEpisodeDuration{})
}

type AddEpisodeDuration struct{}

func (m AddEpisodeDuration) Version() types.MigrationVersion {
	return types.MigrationVersion(time.Date(2024, 7, 2, 10, 19, 1, 0, time.UTC))
}

func (m AddEpisodeDuration) Name() string {
	return "AddEpisodeDuration"
}

func (m AddEpisodeDuration) Description() string {
	return "Adds a duration column to episodes, filled in by the backfill job"
}

func (m AddEpisodeDuration) Up(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `
		ALTER TABLE episode ADD COLUMN duration INT;
	`)
	return err
}

func (m AddEpisodeDuration) Down(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `
		ALTER TABLE episode DROP COLUMN duration;
	`)
	return err
}
