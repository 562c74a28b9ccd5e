package aggregate

import (
	"git.radiohub.fm/hub/hub/src/models"
)

const (
	adminFeedCap          = 5
	adminFeedScriptCount  = 3
	adminFeedEpisodeCount = 2
)

type AdminDashboard struct {
	TotalProjects  int `json:"totalProjects"`
	TotalEpisodes  int `json:"totalEpisodes"`
	TotalScripts   int `json:"totalScripts"`
	TotalUsers     int `json:"totalUsers"`
	ActiveUsers    int `json:"activeUsers"`
	PendingReviews int `json:"pendingReviews"`
	OverdueItems   int `json:"overdueItems"`

	Roles    RoleBreakdown `json:"roles"`
	Activity []FeedItem    `json:"activity"`
}

type RoleBreakdown struct {
	Admin   int `json:"admin"`
	Editor  int `json:"editor"`
	Member  int `json:"member"`
	Pending int `json:"pending"`
}

// Admin builds the site-wide dashboard: global counts, a role breakdown, and
// a small cross-record activity feed.
func Admin(snap Snapshot) AdminDashboard {
	dashboard := AdminDashboard{
		TotalProjects: len(snap.Projects),
		TotalEpisodes: len(snap.Episodes),
		TotalScripts:  len(snap.Scripts),
		TotalUsers:    len(snap.Users),
	}

	for _, u := range snap.Users {
		if u.IsActive() {
			dashboard.ActiveUsers += 1
		}
		if u.Status == models.UserStatusPending {
			dashboard.Roles.Pending += 1
		}
		switch u.Role {
		case models.UserRoleAdmin:
			dashboard.Roles.Admin += 1
		case models.UserRoleEditor:
			dashboard.Roles.Editor += 1
		case models.UserRoleMember:
			dashboard.Roles.Member += 1
		}
	}

	for _, s := range snap.Scripts {
		switch s.Status {
		case models.ScriptStatusUnderReview:
			dashboard.PendingReviews += 1
		case models.ScriptStatusNeedsRevision:
			dashboard.OverdueItems += 1
		case models.ScriptStatusDraft, models.ScriptStatusInProgress, models.ScriptStatusSubmitted,
			models.ScriptStatusApproved, models.ScriptStatusPublished, models.ScriptStatusArchived:
			// Neither pending nor overdue.
		}
	}

	dashboard.Activity = adminActivity(snap)

	return dashboard
}

// A coarse activity sample: the first few scripts and episodes in fetch
// order, merged and re-sorted by time. Deliberately not the N most recent
// records overall; the admin feed is a vibe check, not an audit log.
func adminActivity(snap Snapshot) []FeedItem {
	var items []FeedItem

	for i, s := range snap.Scripts {
		if i >= adminFeedScriptCount {
			break
		}
		items = append(items, FeedItem{
			Title:       s.Title,
			Action:      "Script created",
			ProjectName: snap.projectName(s.ProjectID),
			When:        s.CreatedAt,
		})
	}
	for i, e := range snap.Episodes {
		if i >= adminFeedEpisodeCount {
			break
		}
		items = append(items, FeedItem{
			Title:       e.Title,
			Action:      "Episode added",
			ProjectName: snap.projectName(e.ProjectID),
			When:        e.CreatedAt,
		})
	}

	return sortAndCapFeed(items, adminFeedCap)
}
