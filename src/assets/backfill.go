package assets

import (
	"context"
	"errors"
	"time"

	"git.radiohub.fm/hub/hub/src/db"
	"git.radiohub.fm/hub/hub/src/hubdata"
	"git.radiohub.fm/hub/hub/src/jobs"
	"git.radiohub.fm/hub/hub/src/logging"
	"git.radiohub.fm/hub/hub/src/models"
	"git.radiohub.fm/hub/hub/src/oops"
	"git.radiohub.fm/hub/hub/src/utils"
	"github.com/jpillora/backoff"
)

const backfillBatchSize = 10
const backfillInterval = 1 * time.Minute

// BackgroundDurationBackfill periodically finds episodes that have audio
// but no known duration (e.g. uploaded before we probed durations, or whose
// probe failed) and fills the duration in by fetching the audio and walking
// its frames.
func BackgroundDurationBackfill(conn db.ConnOrTx) *jobs.Job {
	job := jobs.New("episode duration backfill")
	log := job.Logger

	go func() {
		defer job.Finish()
		log.Info().Msg("Running episode duration backfill...")

		b := &backoff.Backoff{
			Min: backfillInterval,
			Max: 30 * time.Minute,
		}
		for {
			err := utils.SleepContext(job.Ctx, b.Duration())
			if err != nil {
				return
			}

			processed, err := backfillDurations(job.Ctx, conn)
			if err != nil {
				log.Error().Err(err).Msg("Failed to backfill episode durations")
				continue
			}
			if processed > 0 {
				log.Info().Int("episodes", processed).Msg("Backfilled episode durations")
			}
			if processed == backfillBatchSize {
				// There is probably more waiting; come back quickly.
				b.Reset()
			}
		}
	}()

	return job
}

func backfillDurations(ctx context.Context, conn db.ConnOrTx) (int, error) {
	episodes, err := hubdata.FetchEpisodes(ctx, conn, hubdata.EpisodesQuery{
		MissingDuration: true,
		Limit:           backfillBatchSize,
	})
	if err != nil {
		return 0, err
	}

	processed := 0
	for _, episode := range episodes {
		if episode.AudioAsset == nil {
			continue
		}
		seconds, err := probeDuration(ctx, episode)
		if err != nil {
			// Store a zero so the episode leaves the backfill queue instead
			// of failing on every pass. Zero means "probed, unknown".
			logging.ExtractLogger(ctx).Warn().
				Int("episode", episode.ID).
				Err(err).
				Msg("could not determine episode duration")
			seconds = 0
		}
		_, err = conn.Exec(ctx,
			`UPDATE episode SET duration = $2 WHERE id = $1`,
			episode.ID, seconds,
		)
		if err != nil {
			return processed, oops.New(err, "failed to save episode duration")
		}
		processed++
	}
	return processed, nil
}

func probeDuration(ctx context.Context, episode *models.Episode) (int, error) {
	if episode.AudioAsset.MimeType != "audio/mpeg" {
		return 0, errors.New("episode audio is not an mp3")
	}

	content, err := Download(ctx, episode.AudioAsset)
	if err != nil {
		return 0, err
	}

	return Mp3Duration(content)
}
