package hubdata

import (
	"context"

	"git.radiohub.fm/hub/hub/src/db"
	"git.radiohub.fm/hub/hub/src/models"
	"git.radiohub.fm/hub/hub/src/oops"
)

type ScriptsQuery struct {
	ScriptIDs  []int                 // if empty, all scripts
	ProjectIDs []int                 // if empty, all projects
	EpisodeIDs []int                 // if empty, any episode (or none)
	AuthorIDs  []int                 // if empty, all authors
	Statuses   []models.ScriptStatus // if empty, all statuses

	Limit, Offset int
}

func FetchScripts(
	ctx context.Context,
	dbConn db.ConnOrTx,
	q ScriptsQuery,
) ([]*models.Script, error) {
	var qb db.QueryBuilder
	qb.Add(`
		SELECT $columns
		FROM script
		WHERE TRUE
	`)
	if len(q.ScriptIDs) > 0 {
		qb.Add(`AND script.id = ANY ($?)`, q.ScriptIDs)
	}
	if len(q.ProjectIDs) > 0 {
		qb.Add(`AND script.project_id = ANY ($?)`, q.ProjectIDs)
	}
	if len(q.EpisodeIDs) > 0 {
		qb.Add(`AND script.episode_id = ANY ($?)`, q.EpisodeIDs)
	}
	if len(q.AuthorIDs) > 0 {
		qb.Add(`AND script.author_id = ANY ($?)`, q.AuthorIDs)
	}
	if len(q.Statuses) > 0 {
		qb.Add(`AND script.status = ANY ($?)`, q.Statuses)
	}
	qb.Add(`ORDER BY script.id ASC`)
	if q.Limit > 0 {
		qb.Add(`LIMIT $? OFFSET $?`, q.Limit, q.Offset)
	}

	scripts, err := db.Query[models.Script](ctx, dbConn, qb.String(), qb.Args()...)
	if err != nil {
		return nil, oops.New(err, "failed to fetch scripts")
	}

	return scripts, nil
}

func FetchScript(
	ctx context.Context,
	dbConn db.ConnOrTx,
	scriptID int,
) (*models.Script, error) {
	scripts, err := FetchScripts(ctx, dbConn, ScriptsQuery{
		ScriptIDs: []int{scriptID},
	})
	if err != nil {
		return nil, err
	}
	if len(scripts) == 0 {
		return nil, db.NotFound
	}

	return scripts[0], nil
}
