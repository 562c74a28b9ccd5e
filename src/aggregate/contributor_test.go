package aggregate

import (
	"fmt"
	"testing"
	"time"

	"git.radiohub.fm/hub/hub/src/models"
	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func daysAgo(n int) time.Time {
	return testNow.AddDate(0, 0, -n)
}

func testUser(id int, role models.UserRole) *models.User {
	return &models.User{
		ID:     id,
		Name:   fmt.Sprintf("user%d", id),
		Role:   role,
		Status: models.UserStatusVerified,
	}
}

func testProject(id int, name string) *models.Project {
	return &models.Project{ID: id, Name: name, CreatedAt: daysAgo(100)}
}

func testScript(id int, projectID int, authorID int, status models.ScriptStatus, createdAt time.Time) *models.Script {
	return &models.Script{
		ID:        id,
		ProjectID: projectID,
		AuthorID:  authorID,
		Title:     fmt.Sprintf("Script %d", id),
		Content:   "hello",
		Status:    status,
		CreatedAt: createdAt,
	}
}

func testEpisode(id int, projectID int, createdAt time.Time) *models.Episode {
	return &models.Episode{
		ID:        id,
		ProjectID: projectID,
		Title:     fmt.Sprintf("Episode %d", id),
		CreatedAt: createdAt,
	}
}

func TestContributorEmptySnapshot(t *testing.T) {
	user := testUser(1, models.UserRoleMember)
	dashboard := Contributor(Snapshot{}, user, testNow)

	assert.Empty(t, dashboard.Mine)
	assert.Empty(t, dashboard.Active)
	assert.Empty(t, dashboard.NeedsRevision)
	assert.Empty(t, dashboard.Submitted)
	assert.Empty(t, dashboard.MyProjects)
	assert.Empty(t, dashboard.Highlights)
	assert.Equal(t, 0, dashboard.Stats.ApprovalRate)
	assert.Equal(t, 0, dashboard.Stats.TotalWordCount)
	assert.Equal(t, 0, dashboard.Stats.AvgWordsPerScript)
	assert.Equal(t, 0, dashboard.Stats.WeeklyOutput)
}

func TestContributorSingleApprovedScript(t *testing.T) {
	user := testUser(1, models.UserRoleMember)
	project := testProject(1, "Morning Show")
	script := testScript(1, 1, 1, models.ScriptStatusApproved, daysAgo(2))

	dashboard := Contributor(Snapshot{
		Projects: []*models.Project{project},
		Scripts:  []*models.Script{script},
	}, user, testNow)

	assert.Len(t, dashboard.Mine, 1)
	assert.Contains(t, dashboard.Submitted, script)
	if assert.Len(t, dashboard.MyProjects, 1) {
		assert.Equal(t, project, dashboard.MyProjects[0].Project)
		assert.Equal(t, 1, dashboard.MyProjects[0].ScriptCount)
		assert.Equal(t, 1, dashboard.MyProjects[0].ApprovedCount)
	}
	assert.Equal(t, 100, dashboard.Stats.ApprovalRate)
	assert.Equal(t, len("hello"), dashboard.Stats.TotalWordCount)
	assert.Equal(t, len("hello"), dashboard.Stats.AvgWordsPerScript)
}

// Every script of the user's lands in at most one of the three visible
// buckets, and the bucket matches its status.
func TestContributorPartition(t *testing.T) {
	user := testUser(1, models.UserRoleMember)

	var scripts []*models.Script
	for i, status := range models.AllScriptStatuses {
		scripts = append(scripts, testScript(i+1, 1, 1, status, daysAgo(i)))
	}
	// Someone else's script never shows up anywhere.
	scripts = append(scripts, testScript(100, 1, 2, models.ScriptStatusDraft, daysAgo(1)))

	dashboard := Contributor(Snapshot{
		Projects: []*models.Project{testProject(1, "P")},
		Scripts:  scripts,
	}, user, testNow)

	assert.Len(t, dashboard.Mine, len(models.AllScriptStatuses))

	buckets := map[int]int{}
	for _, s := range dashboard.Active {
		buckets[s.ID] += 1
	}
	for _, s := range dashboard.NeedsRevision {
		buckets[s.ID] += 1
	}
	for _, s := range dashboard.Submitted {
		buckets[s.ID] += 1
	}
	for id, n := range buckets {
		assert.Equalf(t, 1, n, "script %d appeared in %d buckets", id, n)
	}

	assert.Len(t, dashboard.Active, 2)        // Draft, In Progress
	assert.Len(t, dashboard.NeedsRevision, 1) // Needs Revision
	assert.Len(t, dashboard.Submitted, 3)     // Submitted, Under Review, Approved
	// Published and Archived land in no bucket at all.
	assert.Equal(t, len(dashboard.Mine)-2, len(buckets))

	_, foreign := buckets[100]
	assert.False(t, foreign)
}

func TestContributorMyProjects(t *testing.T) {
	user := testUser(1, models.UserRoleMember)
	projects := []*models.Project{
		testProject(1, "Mine"),
		testProject(2, "Also Mine"),
		testProject(3, "Untouched"),
	}
	scripts := []*models.Script{
		testScript(1, 1, 1, models.ScriptStatusDraft, daysAgo(1)),
		testScript(2, 2, 1, models.ScriptStatusApproved, daysAgo(2)),
		testScript(3, 3, 2, models.ScriptStatusDraft, daysAgo(3)), // other author
	}

	dashboard := Contributor(Snapshot{Projects: projects, Scripts: scripts}, user, testNow)

	assert.Len(t, dashboard.MyProjects, 2)
	for _, rollup := range dashboard.MyProjects {
		assert.Contains(t, projects, rollup.Project)
		assert.Greater(t, rollup.ScriptCount, 0)
	}
}

func TestContributorApprovalRateBounds(t *testing.T) {
	user := testUser(1, models.UserRoleMember)

	t.Run("no approvals", func(t *testing.T) {
		scripts := []*models.Script{
			testScript(1, 1, 1, models.ScriptStatusDraft, daysAgo(1)),
			testScript(2, 1, 1, models.ScriptStatusSubmitted, daysAgo(2)),
		}
		dashboard := Contributor(Snapshot{Scripts: scripts}, user, testNow)
		assert.Equal(t, 0, dashboard.Stats.ApprovalRate)
	})
	t.Run("partial approvals round to nearest", func(t *testing.T) {
		scripts := []*models.Script{
			testScript(1, 1, 1, models.ScriptStatusApproved, daysAgo(1)),
			testScript(2, 1, 1, models.ScriptStatusDraft, daysAgo(2)),
			testScript(3, 1, 1, models.ScriptStatusDraft, daysAgo(3)),
		}
		dashboard := Contributor(Snapshot{Scripts: scripts}, user, testNow)
		assert.Equal(t, 33, dashboard.Stats.ApprovalRate)
		assert.GreaterOrEqual(t, dashboard.Stats.ApprovalRate, 0)
		assert.LessOrEqual(t, dashboard.Stats.ApprovalRate, 100)
	})
}

func TestContributorWeeklyOutputBoundary(t *testing.T) {
	user := testUser(1, models.UserRoleMember)
	scripts := []*models.Script{
		testScript(1, 1, 1, models.ScriptStatusDraft, daysAgo(7)), // exactly on the boundary: counted
		testScript(2, 1, 1, models.ScriptStatusDraft, daysAgo(8)), // too old
		testScript(3, 1, 1, models.ScriptStatusDraft, daysAgo(0)),
	}

	dashboard := Contributor(Snapshot{Scripts: scripts}, user, testNow)
	assert.Equal(t, 2, dashboard.Stats.WeeklyOutput)
}

func TestContributorHighlights(t *testing.T) {
	user := testUser(1, models.UserRoleMember)
	project := testProject(1, "Night Waves")

	var episodes []*models.Episode
	for i := 0; i < 6; i++ {
		episodes = append(episodes, testEpisode(i+1, 1, daysAgo(i+1)))
	}
	approvedOld := testScript(10, 1, 2, models.ScriptStatusApproved, daysAgo(30))
	approvedNew := testScript(11, 1, 2, models.ScriptStatusApproved, daysAgo(20))
	newTouch := daysAgo(1).Add(2 * time.Hour)
	approvedNew.UpdatedAt = &newTouch

	dashboard := Contributor(Snapshot{
		Projects: []*models.Project{project},
		Episodes: episodes,
		Scripts:  []*models.Script{approvedOld, approvedNew},
	}, user, testNow)

	highlights := dashboard.Highlights
	assert.LessOrEqual(t, len(highlights), 5)
	for i := 1; i < len(highlights); i++ {
		assert.False(t, highlights[i].When.After(highlights[i-1].When), "highlights must be sorted newest-first")
	}
	// 3 most recent episodes + 2 approved scripts fill all five slots.
	assert.Len(t, highlights, 5)
	assert.Equal(t, "Script approved", highlights[0].Action) // approvedNew's update is the freshest event
	for _, item := range highlights {
		assert.Equal(t, "Night Waves", item.ProjectName)
	}
}

func TestContributorUnknownProject(t *testing.T) {
	user := testUser(1, models.UserRoleMember)
	orphan := testScript(1, 999, 2, models.ScriptStatusApproved, daysAgo(1))

	assert.NotPanics(t, func() {
		dashboard := Contributor(Snapshot{Scripts: []*models.Script{orphan}}, user, testNow)
		if assert.Len(t, dashboard.Highlights, 1) {
			assert.Equal(t, UnknownProjectLabel, dashboard.Highlights[0].ProjectName)
		}
	})
}

func TestContributorIdempotent(t *testing.T) {
	user := testUser(1, models.UserRoleMember)
	snap := Snapshot{
		Projects: []*models.Project{testProject(1, "P")},
		Episodes: []*models.Episode{testEpisode(1, 1, daysAgo(3))},
		Scripts: []*models.Script{
			testScript(1, 1, 1, models.ScriptStatusApproved, daysAgo(1)),
			testScript(2, 1, 1, models.ScriptStatusDraft, daysAgo(2)),
		},
	}

	first := Contributor(snap, user, testNow)
	second := Contributor(snap, user, testNow)
	assert.Equal(t, first, second)
}
