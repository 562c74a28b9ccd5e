package models

import (
	"time"

	"github.com/google/uuid"
)

type Episode struct {
	ID        int `db:"id" json:"id"`
	ProjectID int `db:"project_id" json:"projectId"`

	Title         string     `db:"title" json:"title"`
	EpisodeNumber int        `db:"episode_number" json:"episodeNumber"`
	BroadcastDate *time.Time `db:"broadcast_date" json:"broadcastDate,omitempty"`
	Premium       bool       `db:"premium" json:"isPremium"`

	AudioAssetID *uuid.UUID `db:"audio_asset_id" json:"audioAssetId,omitempty"`
	Duration     *int       `db:"duration" json:"duration,omitempty"` // seconds

	CreatedAt time.Time `db:"created_at" json:"createdAt"`

	// Non-db fields, to be filled in by fetch helpers
	AudioAsset *Asset `json:"-"`
}
