package hubdata

import (
	"context"

	"git.radiohub.fm/hub/hub/src/aggregate"
	"git.radiohub.fm/hub/hub/src/db"
	"git.radiohub.fm/hub/hub/src/oops"
)

// FetchSnapshot loads every project, episode, script, and user in a single
// transaction, so the aggregation functions always work from one consistent
// point in time. Dashboards re-fetch on every request; there is no cached
// snapshot to invalidate.
func FetchSnapshot(ctx context.Context, dbConn db.ConnOrTx) (aggregate.Snapshot, error) {
	tx, err := dbConn.Begin(ctx)
	if err != nil {
		return aggregate.Snapshot{}, oops.New(err, "failed to start transaction")
	}
	defer tx.Rollback(ctx)

	projects, err := FetchProjects(ctx, tx, ProjectsQuery{})
	if err != nil {
		return aggregate.Snapshot{}, err
	}
	episodes, err := FetchEpisodes(ctx, tx, EpisodesQuery{})
	if err != nil {
		return aggregate.Snapshot{}, err
	}
	scripts, err := FetchScripts(ctx, tx, ScriptsQuery{})
	if err != nil {
		return aggregate.Snapshot{}, err
	}
	users, err := FetchUsers(ctx, tx, UsersQuery{})
	if err != nil {
		return aggregate.Snapshot{}, err
	}

	return aggregate.Snapshot{
		Projects: projects,
		Episodes: episodes,
		Scripts:  scripts,
		Users:    users,
	}, nil
}
