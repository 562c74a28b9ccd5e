package migrations

import (
	"context"
	"time"

	"git.radiohub.fm/hub/hub/src/migration/types"
	"github.com/jackc/pgx/v5"
)

func init() {
	registerMigration(CreateHubTables{})
}

type CreateHubTables struct{}

func (m CreateHubTables) Version() types.MigrationVersion {
	return types.MigrationVersion(time.Date(2024, 1, 9, 21, 0, 0, 0, time.UTC))
}

func (m CreateHubTables) Name() string {
	return "CreateHubTables"
}

func (m CreateHubTables) Description() string {
	return "Creates the core content tables"
}

func (m CreateHubTables) Up(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `
		CREATE TABLE project (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT,
			theme_id INT,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		);

		CREATE TABLE hub_user (
			id SERIAL PRIMARY KEY,
			name VARCHAR(150) NOT NULL,
			email VARCHAR(254) NOT NULL UNIQUE,
			role INT NOT NULL,
			status INT NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		);

		CREATE TABLE asset (
			id UUID PRIMARY KEY,
			uploader_id INT REFERENCES hub_user (id) ON DELETE SET NULL,
			s3_key VARCHAR(2000) NOT NULL,
			filename VARCHAR(2000) NOT NULL,
			size INT NOT NULL,
			mime_type VARCHAR(100) NOT NULL,
			sha1sum VARCHAR(40) NOT NULL
		);

		CREATE TABLE episode (
			id SERIAL PRIMARY KEY,
			project_id INT NOT NULL REFERENCES project (id) ON DELETE CASCADE,
			title VARCHAR(255) NOT NULL,
			episode_number INT NOT NULL,
			broadcast_date TIMESTAMP WITH TIME ZONE,
			premium BOOLEAN NOT NULL DEFAULT FALSE,
			audio_asset_id UUID REFERENCES asset (id) ON DELETE SET NULL,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		);

		CREATE TABLE script (
			id SERIAL PRIMARY KEY,
			project_id INT NOT NULL REFERENCES project (id) ON DELETE CASCADE,
			episode_id INT REFERENCES episode (id) ON DELETE SET NULL,
			author_id INT NOT NULL REFERENCES hub_user (id) ON DELETE CASCADE,
			title VARCHAR(255) NOT NULL,
			content TEXT NOT NULL,
			status INT NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE
		);

		CREATE INDEX episode_project_id ON episode (project_id);
		CREATE INDEX script_project_id ON script (project_id);
		CREATE INDEX script_author_id ON script (author_id);
		CREATE INDEX script_status ON script (status);
	`)
	return err
}

func (m CreateHubTables) Down(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `
		DROP TABLE script;
		DROP TABLE episode;
		DROP TABLE asset;
		DROP TABLE hub_user;
		DROP TABLE project;
	`)
	return err
}
