package aggregate

import (
	"math"
	"sort"
	"time"
	"unicode/utf8"

	"git.radiohub.fm/hub/hub/src/models"
)

const highlightsCap = 5

type ContributorDashboard struct {
	Mine          []*models.Script `json:"myScripts"`
	Active        []*models.Script `json:"activeScripts"`
	NeedsRevision []*models.Script `json:"needsRevision"`
	Submitted     []*models.Script `json:"submittedScripts"`

	MyProjects []ProjectRollup  `json:"myProjects"`
	Highlights []FeedItem       `json:"highlights"`
	Stats      ContributorStats `json:"stats"`
}

type ProjectRollup struct {
	Project       *models.Project `json:"project"`
	ScriptCount   int             `json:"scriptCount"`
	ApprovedCount int             `json:"approvedCount"`
}

type ContributorStats struct {
	// Scripts created in the trailing seven days, boundary inclusive.
	WeeklyOutput int `json:"weeklyOutput"`
	// Percentage of the user's scripts that are currently Approved, 0-100.
	ApprovalRate int `json:"approvalRate"`
	// Character count of all script content. This stands in for a real
	// tokenized word count and overstates it accordingly; deliberate for
	// now, since the dashboards only compare it against itself.
	TotalWordCount    int `json:"totalWordCount"`
	AvgWordsPerScript int `json:"avgWordsPerScript"`
}

// Contributor builds the self-scoped dashboard for a single user: their own
// scripts partitioned by workflow state, the projects those scripts touch,
// a site-wide highlights feed, and simple productivity stats.
func Contributor(snap Snapshot, user *models.User, now time.Time) ContributorDashboard {
	var dashboard ContributorDashboard

	var mine []*models.Script
	for _, s := range snap.Scripts {
		if s.AuthorID == user.ID {
			mine = append(mine, s)
		}
	}
	dashboard.Mine = mine

	approvedCount := 0
	for _, s := range mine {
		switch s.Status {
		case models.ScriptStatusDraft, models.ScriptStatusInProgress:
			dashboard.Active = append(dashboard.Active, s)
		case models.ScriptStatusNeedsRevision:
			dashboard.NeedsRevision = append(dashboard.NeedsRevision, s)
		case models.ScriptStatusSubmitted, models.ScriptStatusUnderReview:
			dashboard.Submitted = append(dashboard.Submitted, s)
		case models.ScriptStatusApproved:
			dashboard.Submitted = append(dashboard.Submitted, s)
			approvedCount += 1
		case models.ScriptStatusPublished, models.ScriptStatusArchived:
			// Done and dusted; not surfaced in any contributor bucket.
		}
	}

	for _, p := range snap.Projects {
		rollup := ProjectRollup{Project: p}
		for _, s := range mine {
			if s.ProjectID == p.ID {
				rollup.ScriptCount += 1
				if s.Status == models.ScriptStatusApproved {
					rollup.ApprovedCount += 1
				}
			}
		}
		if rollup.ScriptCount > 0 {
			dashboard.MyProjects = append(dashboard.MyProjects, rollup)
		}
	}

	dashboard.Highlights = contributorHighlights(snap)
	dashboard.Stats = contributorStats(mine, approvedCount, now)

	return dashboard
}

// The highlights feed is site-wide, not self-scoped: the three most recent
// episodes plus the two most recently approved scripts from any author,
// merged and re-sorted.
func contributorHighlights(snap Snapshot) []FeedItem {
	episodes := make([]*models.Episode, len(snap.Episodes))
	copy(episodes, snap.Episodes)
	sort.SliceStable(episodes, func(i, j int) bool {
		return episodes[i].CreatedAt.After(episodes[j].CreatedAt)
	})
	if len(episodes) > 3 {
		episodes = episodes[:3]
	}

	var approved []*models.Script
	for _, s := range snap.Scripts {
		if s.Status == models.ScriptStatusApproved {
			approved = append(approved, s)
		}
	}
	sort.SliceStable(approved, func(i, j int) bool {
		return approved[i].LastTouched().After(approved[j].LastTouched())
	})
	if len(approved) > 2 {
		approved = approved[:2]
	}

	var items []FeedItem
	for _, e := range episodes {
		items = append(items, FeedItem{
			Title:       e.Title,
			Action:      "New episode",
			ProjectName: snap.projectName(e.ProjectID),
			When:        e.CreatedAt,
		})
	}
	for _, s := range approved {
		items = append(items, FeedItem{
			Title:       s.Title,
			Action:      "Script approved",
			ProjectName: snap.projectName(s.ProjectID),
			When:        s.LastTouched(),
		})
	}

	return sortAndCapFeed(items, highlightsCap)
}

func contributorStats(mine []*models.Script, approvedCount int, now time.Time) ContributorStats {
	var stats ContributorStats

	weekAgo := now.AddDate(0, 0, -7)
	totalChars := 0
	for _, s := range mine {
		if !s.CreatedAt.Before(weekAgo) {
			stats.WeeklyOutput += 1
		}
		totalChars += utf8.RuneCountInString(s.Content)
	}
	stats.TotalWordCount = totalChars

	// Both ratios are defined as zero for a user with no scripts.
	if len(mine) > 0 {
		stats.ApprovalRate = int(math.Round(100 * float64(approvedCount) / float64(len(mine))))
		stats.AvgWordsPerScript = int(math.Round(float64(totalChars) / float64(len(mine))))
	}

	return stats
}
