package aggregate

import (
	"testing"

	"git.radiohub.fm/hub/hub/src/models"
	"github.com/stretchr/testify/assert"
)

func TestAdminCounts(t *testing.T) {
	pendingUser := testUser(3, models.UserRoleMember)
	pendingUser.Status = models.UserStatusPending

	snap := Snapshot{
		Projects: []*models.Project{testProject(1, "P1"), testProject(2, "P2")},
		Episodes: []*models.Episode{testEpisode(1, 1, daysAgo(1))},
		Scripts: []*models.Script{
			testScript(1, 1, 1, models.ScriptStatusUnderReview, daysAgo(1)),
			testScript(2, 1, 1, models.ScriptStatusUnderReview, daysAgo(2)),
			testScript(3, 2, 2, models.ScriptStatusNeedsRevision, daysAgo(3)),
			testScript(4, 2, 2, models.ScriptStatusPublished, daysAgo(4)),
		},
		Users: []*models.User{
			testUser(1, models.UserRoleAdmin),
			testUser(2, models.UserRoleEditor),
			pendingUser,
		},
	}

	dashboard := Admin(snap)

	assert.Equal(t, 2, dashboard.TotalProjects)
	assert.Equal(t, 1, dashboard.TotalEpisodes)
	assert.Equal(t, 4, dashboard.TotalScripts)
	assert.Equal(t, 3, dashboard.TotalUsers)
	assert.Equal(t, 2, dashboard.ActiveUsers) // pending user is not active
	assert.Equal(t, 2, dashboard.PendingReviews)
	assert.Equal(t, 1, dashboard.OverdueItems)

	assert.Equal(t, RoleBreakdown{
		Admin:   1,
		Editor:  1,
		Member:  1,
		Pending: 1,
	}, dashboard.Roles)
}

func TestAdminActivityFeed(t *testing.T) {
	// More records than the feed samples: only the first three scripts and
	// first two episodes participate, then the merge is time-sorted.
	var scripts []*models.Script
	for i := 1; i <= 6; i++ {
		scripts = append(scripts, testScript(i, 1, 1, models.ScriptStatusDraft, daysAgo(i*2)))
	}
	episodes := []*models.Episode{
		testEpisode(1, 1, daysAgo(1)),
		testEpisode(2, 1, daysAgo(3)),
		testEpisode(3, 1, daysAgo(0)), // sampled out despite being newest
	}

	dashboard := Admin(Snapshot{
		Projects: []*models.Project{testProject(1, "P")},
		Scripts:  scripts,
		Episodes: episodes,
	})

	feed := dashboard.Activity
	assert.Len(t, feed, 5)
	for i := 1; i < len(feed); i++ {
		assert.False(t, feed[i].When.After(feed[i-1].When), "feed must be sorted newest-first")
	}
	assert.Equal(t, "Episode added", feed[0].Action)
	assert.Equal(t, daysAgo(1), feed[0].When)
}

func TestAdminEmptySnapshot(t *testing.T) {
	dashboard := Admin(Snapshot{})

	assert.Zero(t, dashboard.TotalProjects)
	assert.Zero(t, dashboard.ActiveUsers)
	assert.Zero(t, dashboard.Roles)
	assert.Empty(t, dashboard.Activity)
}

func TestAdminIdempotent(t *testing.T) {
	snap := Snapshot{
		Users: []*models.User{testUser(1, models.UserRoleAdmin)},
		Scripts: []*models.Script{
			testScript(1, 1, 1, models.ScriptStatusUnderReview, daysAgo(1)),
		},
	}

	assert.Equal(t, Admin(snap), Admin(snap))
}
