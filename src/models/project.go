package models

import "time"

type Project struct {
	ID int `db:"id" json:"id"`

	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description,omitempty"`
	ThemeID     *int    `db:"theme_id" json:"themeId,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
