package website

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"git.radiohub.fm/hub/hub/src/db"
	"git.radiohub.fm/hub/hub/src/hubdata"
	"git.radiohub.fm/hub/hub/src/oops"
	"github.com/google/uuid"
)

func ListEpisodes(c *RequestContext) ResponseData {
	q := hubdata.EpisodesQuery{}
	if projectStr := c.URL().Query().Get("project"); projectStr != "" {
		projectID, err := strconv.Atoi(projectStr)
		if err != nil {
			return c.RejectRequest("project must be a numeric id")
		}
		q.ProjectIDs = []int{projectID}
	}
	if c.URL().Query().Get("premium") == "true" {
		q.PremiumOnly = true
	}

	episodes, err := hubdata.FetchEpisodes(c, c.Conn, q)
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, err)
	}

	var res ResponseData
	res.WriteJson(episodes)
	return res
}

func GetEpisode(c *RequestContext) ResponseData {
	episode, err := hubdata.FetchEpisode(c, c.Conn, pathParamInt(c, "id"))
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return FourOhFour(c)
		}
		return c.ErrorResponse(http.StatusInternalServerError, err)
	}

	var res ResponseData
	res.WriteJson(episode)
	return res
}

type EpisodeInput struct {
	ProjectID     int        `json:"projectId"`
	Title         string     `json:"title"`
	EpisodeNumber int        `json:"episodeNumber"`
	BroadcastDate *time.Time `json:"broadcastDate"`
	Premium       bool       `json:"isPremium"`
	AudioAssetID  *uuid.UUID `json:"audioAssetId"`
}

func CreateEpisode(c *RequestContext) ResponseData {
	var input EpisodeInput
	if err := readJsonBody(c, &input); err != nil {
		return c.ErrorResponse(http.StatusBadRequest, err)
	}
	if input.Title == "" {
		return c.RejectRequest("an episode needs a title")
	}

	_, err := hubdata.FetchProject(c, c.Conn, input.ProjectID)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return c.RejectRequest("no such project")
		}
		return c.ErrorResponse(http.StatusInternalServerError, err)
	}

	episodeID, err := db.QueryOneScalar[int](c, c.Conn,
		`
		INSERT INTO episode (project_id, title, episode_number, broadcast_date, premium, audio_asset_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
		`,
		input.ProjectID, input.Title, input.EpisodeNumber, input.BroadcastDate, input.Premium, input.AudioAssetID,
	)
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to create episode"))
	}

	episode, err := hubdata.FetchEpisode(c, c.Conn, episodeID)
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, err)
	}

	var res ResponseData
	res.StatusCode = http.StatusCreated
	res.WriteJson(episode)
	return res
}

type EpisodeUpdateInput struct {
	Title         *string    `json:"title"`
	EpisodeNumber *int       `json:"episodeNumber"`
	BroadcastDate *time.Time `json:"broadcastDate"`
	Premium       *bool      `json:"isPremium"`
	AudioAssetID  *uuid.UUID `json:"audioAssetId"`
}

func UpdateEpisode(c *RequestContext) ResponseData {
	episodeID := pathParamInt(c, "id")

	var input EpisodeUpdateInput
	if err := readJsonBody(c, &input); err != nil {
		return c.ErrorResponse(http.StatusBadRequest, err)
	}

	episode, err := hubdata.FetchEpisode(c, c.Conn, episodeID)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return FourOhFour(c)
		}
		return c.ErrorResponse(http.StatusInternalServerError, err)
	}

	if input.Title != nil {
		episode.Title = *input.Title
	}
	if input.EpisodeNumber != nil {
		episode.EpisodeNumber = *input.EpisodeNumber
	}
	if input.BroadcastDate != nil {
		episode.BroadcastDate = input.BroadcastDate
	}
	if input.Premium != nil {
		episode.Premium = *input.Premium
	}
	if input.AudioAssetID != nil {
		episode.AudioAssetID = input.AudioAssetID
		// Changed audio means the stored duration no longer applies; the
		// backfill job will probe the new file.
		episode.Duration = nil
	}

	_, err = c.Conn.Exec(c,
		`
		UPDATE episode
		SET title = $2, episode_number = $3, broadcast_date = $4, premium = $5, audio_asset_id = $6, duration = $7
		WHERE id = $1
		`,
		episodeID, episode.Title, episode.EpisodeNumber, episode.BroadcastDate, episode.Premium, episode.AudioAssetID, episode.Duration,
	)
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to update episode"))
	}

	episode, err = hubdata.FetchEpisode(c, c.Conn, episodeID)
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, err)
	}

	var res ResponseData
	res.WriteJson(episode)
	return res
}

func DeleteEpisode(c *RequestContext) ResponseData {
	tag, err := c.Conn.Exec(c, `DELETE FROM episode WHERE id = $1`, pathParamInt(c, "id"))
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to delete episode"))
	}
	if tag.RowsAffected() == 0 {
		return FourOhFour(c)
	}

	return ResponseData{StatusCode: http.StatusNoContent}
}
