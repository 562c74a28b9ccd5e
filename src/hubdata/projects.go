package hubdata

import (
	"context"

	"git.radiohub.fm/hub/hub/src/db"
	"git.radiohub.fm/hub/hub/src/models"
	"git.radiohub.fm/hub/hub/src/oops"
)

type ProjectsQuery struct {
	ProjectIDs []int // if empty, all projects
	ThemeIDs   []int // if empty, any theme

	Limit, Offset int // if empty, no limit
}

func FetchProjects(
	ctx context.Context,
	dbConn db.ConnOrTx,
	q ProjectsQuery,
) ([]*models.Project, error) {
	var qb db.QueryBuilder
	qb.Add(`
		SELECT $columns
		FROM project
		WHERE TRUE
	`)
	if len(q.ProjectIDs) > 0 {
		qb.Add(`AND project.id = ANY ($?)`, q.ProjectIDs)
	}
	if len(q.ThemeIDs) > 0 {
		qb.Add(`AND project.theme_id = ANY ($?)`, q.ThemeIDs)
	}
	qb.Add(`ORDER BY project.id ASC`)
	if q.Limit > 0 {
		qb.Add(`LIMIT $? OFFSET $?`, q.Limit, q.Offset)
	}

	projects, err := db.Query[models.Project](ctx, dbConn, qb.String(), qb.Args()...)
	if err != nil {
		return nil, oops.New(err, "failed to fetch projects")
	}

	return projects, nil
}

func FetchProject(
	ctx context.Context,
	dbConn db.ConnOrTx,
	projectID int,
) (*models.Project, error) {
	projects, err := FetchProjects(ctx, dbConn, ProjectsQuery{
		ProjectIDs: []int{projectID},
	})
	if err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return nil, db.NotFound
	}

	return projects[0], nil
}

func CountProjects(ctx context.Context, dbConn db.ConnOrTx) (int, error) {
	count, err := db.QueryOneScalar[int](ctx, dbConn, `SELECT COUNT(*) FROM project`)
	if err != nil {
		return 0, oops.New(err, "failed to count projects")
	}
	return count, nil
}
