package models

import (
	"fmt"
	"strconv"
	"time"
)

type ScriptStatus int

// The status set is a flat label space. There is deliberately no transition
// graph; a script may move from any status to any other.
const (
	ScriptStatusDraft ScriptStatus = iota + 1
	ScriptStatusInProgress
	ScriptStatusSubmitted
	ScriptStatusUnderReview
	ScriptStatusNeedsRevision
	ScriptStatusApproved
	ScriptStatusPublished
	ScriptStatusArchived
)

var AllScriptStatuses = []ScriptStatus{
	ScriptStatusDraft,
	ScriptStatusInProgress,
	ScriptStatusSubmitted,
	ScriptStatusUnderReview,
	ScriptStatusNeedsRevision,
	ScriptStatusApproved,
	ScriptStatusPublished,
	ScriptStatusArchived,
}

func (s ScriptStatus) String() string {
	switch s {
	case ScriptStatusDraft:
		return "Draft"
	case ScriptStatusInProgress:
		return "In Progress"
	case ScriptStatusSubmitted:
		return "Submitted"
	case ScriptStatusUnderReview:
		return "Under Review"
	case ScriptStatusNeedsRevision:
		return "Needs Revision"
	case ScriptStatusApproved:
		return "Approved"
	case ScriptStatusPublished:
		return "Published"
	case ScriptStatusArchived:
		return "Archived"
	default:
		return "Unknown"
	}
}

func ParseScriptStatus(str string) (ScriptStatus, error) {
	for _, s := range AllScriptStatuses {
		if s.String() == str {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unrecognized script status: %q", str)
}

// Statuses travel as their display strings on the wire; the integer values
// are a storage detail.
func (s ScriptStatus) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(s.String())), nil
}

func (s *ScriptStatus) UnmarshalJSON(b []byte) error {
	str, err := strconv.Unquote(string(b))
	if err != nil {
		return err
	}
	parsed, err := ParseScriptStatus(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

type Script struct {
	ID        int  `db:"id" json:"id"`
	ProjectID int  `db:"project_id" json:"projectId"`
	EpisodeID *int `db:"episode_id" json:"episodeId,omitempty"`
	AuthorID  int  `db:"author_id" json:"authorId"`

	Title         string       `db:"title" json:"title"`
	Content       string       `db:"content" json:"content"`
	Status        ScriptStatus `db:"status" json:"status"`
	LanguageGroup *string      `db:"language_group" json:"languageGroup,omitempty"`

	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt *time.Time `db:"updated_at" json:"updatedAt,omitempty"`
}

// The most recent time anything happened to the script. Status changes bump
// updated_at, so for approved scripts this approximates the approval time.
func (s *Script) LastTouched() time.Time {
	if s.UpdatedAt != nil {
		return *s.UpdatedAt
	}
	return s.CreatedAt
}
