package migrations

import (
	"context"
	"time"

	"git.radiohub.fm/hub/hub/src/migration/types"
	"github.com/jackc/pgx/v5"
)

func init() {
	registerMigration(AddLanguageGroupToScripts{})
}

type AddLanguageGroupToScripts struct{}

func (m AddLanguageGroupToScripts) Version() types.MigrationVersion {
	return types.MigrationVersion(time.Date(2024, 5, 14, 17, 35, 22, 0, time.UTC))
}

func (m AddLanguageGroupToScripts) Name() string {
	return "AddLanguageGroupToScripts"
}

func (m AddLanguageGroupToScripts) Description() string {
	return "Adds a language group so translated scripts can be tied together"
}

func (m AddLanguageGroupToScripts) Up(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `
		ALTER TABLE script ADD COLUMN language_group VARCHAR(40);
		CREATE INDEX script_language_group ON script (language_group);
	`)
	return err
}

func (m AddLanguageGroupToScripts) Down(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `
		ALTER TABLE script DROP COLUMN language_group;
	`)
	return err
}
