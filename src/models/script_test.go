package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScriptStatusStrings(t *testing.T) {
	for _, status := range AllScriptStatuses {
		parsed, err := ParseScriptStatus(status.String())
		assert.Nil(t, err)
		assert.Equal(t, status, parsed)
	}

	_, err := ParseScriptStatus("Totally Real Status")
	assert.NotNil(t, err)
}

func TestScriptStatusJSON(t *testing.T) {
	b, err := json.Marshal(ScriptStatusNeedsRevision)
	assert.Nil(t, err)
	assert.Equal(t, `"Needs Revision"`, string(b))

	var status ScriptStatus
	err = json.Unmarshal([]byte(`"Under Review"`), &status)
	assert.Nil(t, err)
	assert.Equal(t, ScriptStatusUnderReview, status)

	err = json.Unmarshal([]byte(`"Bogus"`), &status)
	assert.NotNil(t, err)
}

func TestParseUserRoleContributorAlias(t *testing.T) {
	role, err := ParseUserRole("contributor")
	assert.Nil(t, err)
	assert.Equal(t, UserRoleMember, role)
}

func TestScriptLastTouched(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	updated := created.Add(48 * time.Hour)

	s := Script{CreatedAt: created}
	assert.Equal(t, created, s.LastTouched())

	s.UpdatedAt = &updated
	assert.Equal(t, updated, s.LastTouched())
}
