package models

import (
	"github.com/google/uuid"
)

type Asset struct {
	ID         uuid.UUID `db:"id" json:"id"`
	UploaderID *int      `db:"uploader_id" json:"uploaderId,omitempty"`

	S3Key    string `db:"s3_key" json:"-"`
	Filename string `db:"filename" json:"filename"`
	Size     int    `db:"size" json:"size"`
	MimeType string `db:"mime_type" json:"mimeType"`
	Sha1Sum  string `db:"sha1sum" json:"sha1sum"`
}
