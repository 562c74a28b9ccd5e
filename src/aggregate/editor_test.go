package aggregate

import (
	"testing"

	"git.radiohub.fm/hub/hub/src/models"
	"github.com/stretchr/testify/assert"
)

func TestEditorAwaitingReview(t *testing.T) {
	scripts := []*models.Script{
		testScript(1, 1, 1, models.ScriptStatusSubmitted, daysAgo(1)),
		testScript(2, 1, 2, models.ScriptStatusUnderReview, daysAgo(2)),
		testScript(3, 1, 3, models.ScriptStatusDraft, daysAgo(3)),
		testScript(4, 1, 4, models.ScriptStatusPublished, daysAgo(4)),
	}

	dashboard := Editor(Snapshot{Scripts: scripts})

	if assert.Len(t, dashboard.AwaitingReview, 2) {
		assert.Equal(t, 1, dashboard.AwaitingReview[0].ID)
		assert.Equal(t, 2, dashboard.AwaitingReview[1].ID)
	}
}

func TestEditorWorkflowStats(t *testing.T) {
	var scripts []*models.Script
	id := 0
	add := func(status models.ScriptStatus, n int) {
		for i := 0; i < n; i++ {
			id += 1
			scripts = append(scripts, testScript(id, 1, 1, status, daysAgo(id)))
		}
	}
	add(models.ScriptStatusDraft, 3)
	add(models.ScriptStatusUnderReview, 2)
	add(models.ScriptStatusApproved, 4)
	add(models.ScriptStatusNeedsRevision, 1)
	add(models.ScriptStatusPublished, 5)

	dashboard := Editor(Snapshot{Scripts: scripts})

	assert.Equal(t, WorkflowStats{
		Draft:         3,
		InReview:      2,
		Approved:      4,
		NeedsRevision: 1,
	}, dashboard.WorkflowStats)
}

func TestEditorProjectsWithPending(t *testing.T) {
	projects := []*models.Project{
		testProject(1, "Has Draft"),
		testProject(2, "Has Review"),
		testProject(3, "All Done"),
		testProject(4, "Empty"),
	}
	scripts := []*models.Script{
		testScript(1, 1, 1, models.ScriptStatusDraft, daysAgo(1)),
		testScript(2, 2, 1, models.ScriptStatusUnderReview, daysAgo(2)),
		testScript(3, 3, 1, models.ScriptStatusPublished, daysAgo(3)),
	}

	dashboard := Editor(Snapshot{Projects: projects, Scripts: scripts})

	if assert.Len(t, dashboard.ProjectsWithPending, 2) {
		assert.Equal(t, "Has Draft", dashboard.ProjectsWithPending[0].Name)
		assert.Equal(t, "Has Review", dashboard.ProjectsWithPending[1].Name)
	}
}

// Eleven scripts with distinct timestamps: the activity list is exactly the
// five most recent, newest first.
func TestEditorTeamActivity(t *testing.T) {
	var scripts []*models.Script
	for i := 1; i <= 11; i++ {
		scripts = append(scripts, testScript(i, 1, 1, models.ScriptStatusDraft, daysAgo(i)))
	}

	dashboard := Editor(Snapshot{
		Projects: []*models.Project{testProject(1, "P")},
		Users:    []*models.User{testUser(1, models.UserRoleMember)},
		Scripts:  scripts,
	})

	if assert.Len(t, dashboard.TeamActivity, 5) {
		for i, item := range dashboard.TeamActivity {
			assert.Equal(t, daysAgo(i+1), item.When)
			assert.Equal(t, "user1", item.Author)
			assert.Equal(t, "P", item.ProjectName)
		}
	}
}

func TestEditorTeamActivityUnknownAuthor(t *testing.T) {
	dashboard := Editor(Snapshot{
		Scripts: []*models.Script{testScript(1, 999, 42, models.ScriptStatusDraft, daysAgo(1))},
	})

	if assert.Len(t, dashboard.TeamActivity, 1) {
		assert.Equal(t, UnknownLabel, dashboard.TeamActivity[0].Author)
		assert.Equal(t, UnknownProjectLabel, dashboard.TeamActivity[0].ProjectName)
	}
}

// Top performance keeps input order, not time order.
func TestEditorTopPerformance(t *testing.T) {
	scripts := []*models.Script{
		testScript(1, 1, 1, models.ScriptStatusApproved, daysAgo(9)),
		testScript(2, 1, 1, models.ScriptStatusDraft, daysAgo(1)),
		testScript(3, 1, 1, models.ScriptStatusApproved, daysAgo(2)),
		testScript(4, 1, 1, models.ScriptStatusApproved, daysAgo(1)),
	}

	dashboard := Editor(Snapshot{Scripts: scripts})

	if assert.Len(t, dashboard.TopPerformance, 2) {
		assert.Equal(t, 1, dashboard.TopPerformance[0].ID)
		assert.Equal(t, 3, dashboard.TopPerformance[1].ID)
	}
}

func TestEditorIdempotent(t *testing.T) {
	snap := Snapshot{
		Projects: []*models.Project{testProject(1, "P")},
		Scripts: []*models.Script{
			testScript(1, 1, 1, models.ScriptStatusUnderReview, daysAgo(1)),
			testScript(2, 1, 1, models.ScriptStatusApproved, daysAgo(2)),
		},
	}

	assert.Equal(t, Editor(snap), Editor(snap))
}
