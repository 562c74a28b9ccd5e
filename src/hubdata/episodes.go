package hubdata

import (
	"context"

	"git.radiohub.fm/hub/hub/src/db"
	"git.radiohub.fm/hub/hub/src/models"
	"git.radiohub.fm/hub/hub/src/oops"
)

type EpisodesQuery struct {
	EpisodeIDs      []int // if empty, all episodes
	ProjectIDs      []int // if empty, all projects
	PremiumOnly     bool
	MissingDuration bool // only episodes with audio but no known duration

	Limit, Offset int
}

type EpisodeAndStuff struct {
	Episode    models.Episode `db:"episode"`
	AudioAsset *models.Asset  `db:"audio_asset"`
}

func FetchEpisodes(
	ctx context.Context,
	dbConn db.ConnOrTx,
	q EpisodesQuery,
) ([]*models.Episode, error) {
	var qb db.QueryBuilder
	qb.Add(`
		SELECT $columns
		FROM episode
		LEFT JOIN asset AS audio_asset ON audio_asset.id = episode.audio_asset_id
		WHERE TRUE
	`)
	if len(q.EpisodeIDs) > 0 {
		qb.Add(`AND episode.id = ANY ($?)`, q.EpisodeIDs)
	}
	if len(q.ProjectIDs) > 0 {
		qb.Add(`AND episode.project_id = ANY ($?)`, q.ProjectIDs)
	}
	if q.PremiumOnly {
		qb.Add(`AND episode.premium`)
	}
	if q.MissingDuration {
		qb.Add(`AND episode.audio_asset_id IS NOT NULL AND episode.duration IS NULL`)
	}
	qb.Add(`ORDER BY episode.id ASC`)
	if q.Limit > 0 {
		qb.Add(`LIMIT $? OFFSET $?`, q.Limit, q.Offset)
	}

	rows, err := db.Query[EpisodeAndStuff](ctx, dbConn, qb.String(), qb.Args()...)
	if err != nil {
		return nil, oops.New(err, "failed to fetch episodes")
	}

	episodes := make([]*models.Episode, len(rows))
	for i, row := range rows {
		episode := row.Episode
		episode.AudioAsset = row.AudioAsset
		episodes[i] = &episode
	}

	return episodes, nil
}

func FetchEpisode(
	ctx context.Context,
	dbConn db.ConnOrTx,
	episodeID int,
) (*models.Episode, error) {
	episodes, err := FetchEpisodes(ctx, dbConn, EpisodesQuery{
		EpisodeIDs: []int{episodeID},
	})
	if err != nil {
		return nil, err
	}
	if len(episodes) == 0 {
		return nil, db.NotFound
	}

	return episodes[0], nil
}
