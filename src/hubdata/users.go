package hubdata

import (
	"context"

	"git.radiohub.fm/hub/hub/src/db"
	"git.radiohub.fm/hub/hub/src/models"
	"git.radiohub.fm/hub/hub/src/oops"
)

type UsersQuery struct {
	UserIDs  []int               // if empty, all users
	Roles    []models.UserRole   // if empty, all roles
	Statuses []models.UserStatus // if empty, all statuses
}

func FetchUsers(
	ctx context.Context,
	dbConn db.ConnOrTx,
	q UsersQuery,
) ([]*models.User, error) {
	var qb db.QueryBuilder
	qb.Add(`
		SELECT $columns
		FROM hub_user
		WHERE TRUE
	`)
	if len(q.UserIDs) > 0 {
		qb.Add(`AND hub_user.id = ANY ($?)`, q.UserIDs)
	}
	if len(q.Roles) > 0 {
		qb.Add(`AND hub_user.role = ANY ($?)`, q.Roles)
	}
	if len(q.Statuses) > 0 {
		qb.Add(`AND hub_user.status = ANY ($?)`, q.Statuses)
	}
	qb.Add(`ORDER BY hub_user.id ASC`)

	users, err := db.Query[models.User](ctx, dbConn, qb.String(), qb.Args()...)
	if err != nil {
		return nil, oops.New(err, "failed to fetch users")
	}

	return users, nil
}

func FetchUser(
	ctx context.Context,
	dbConn db.ConnOrTx,
	userID int,
) (*models.User, error) {
	users, err := FetchUsers(ctx, dbConn, UsersQuery{
		UserIDs: []int{userID},
	})
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, db.NotFound
	}

	return users[0], nil
}
