package aggregate

import (
	"sort"
	"time"

	"git.radiohub.fm/hub/hub/src/models"
)

const (
	teamActivityCap   = 5
	topPerformanceCap = 2
)

type EditorDashboard struct {
	AwaitingReview      []*models.Script   `json:"awaitingReview"`
	ProjectsWithPending []*models.Project  `json:"projectsWithPending"`
	WorkflowStats       WorkflowStats      `json:"workflowStats"`
	TeamActivity        []TeamActivityItem `json:"teamActivity"`
	TopPerformance      []*models.Script   `json:"topPerformance"`
}

// Counts over all scripts in the snapshot, not scoped to any project.
type WorkflowStats struct {
	Draft         int `json:"draft"`
	InReview      int `json:"inReview"`
	Approved      int `json:"approved"`
	NeedsRevision int `json:"needsRevision"`
}

type TeamActivityItem struct {
	Title       string              `json:"title"`
	Author      string              `json:"author"`
	Status      models.ScriptStatus `json:"status"`
	ProjectName string              `json:"projectName"`
	When        time.Time           `json:"when"`
}

// Editor builds the project-wide review dashboard. Unlike the contributor
// view it has no user scoping: editors see the whole team's work.
func Editor(snap Snapshot) EditorDashboard {
	var dashboard EditorDashboard

	for _, s := range snap.Scripts {
		switch s.Status {
		case models.ScriptStatusDraft:
			dashboard.WorkflowStats.Draft += 1
		case models.ScriptStatusInProgress:
			// In-progress work is the author's business until submitted.
		case models.ScriptStatusSubmitted:
			dashboard.AwaitingReview = append(dashboard.AwaitingReview, s)
		case models.ScriptStatusUnderReview:
			dashboard.AwaitingReview = append(dashboard.AwaitingReview, s)
			dashboard.WorkflowStats.InReview += 1
		case models.ScriptStatusNeedsRevision:
			dashboard.WorkflowStats.NeedsRevision += 1
		case models.ScriptStatusApproved:
			dashboard.WorkflowStats.Approved += 1
			if len(dashboard.TopPerformance) < topPerformanceCap {
				dashboard.TopPerformance = append(dashboard.TopPerformance, s)
			}
		case models.ScriptStatusPublished, models.ScriptStatusArchived:
			// Nothing left to review or count.
		}
	}

	for _, p := range snap.Projects {
		if projectHasPendingWork(snap.Scripts, p.ID) {
			dashboard.ProjectsWithPending = append(dashboard.ProjectsWithPending, p)
		}
	}

	dashboard.TeamActivity = teamActivity(snap)

	return dashboard
}

func projectHasPendingWork(scripts []*models.Script, projectID int) bool {
	for _, s := range scripts {
		if s.ProjectID != projectID {
			continue
		}
		switch s.Status {
		case models.ScriptStatusDraft, models.ScriptStatusUnderReview, models.ScriptStatusNeedsRevision:
			return true
		case models.ScriptStatusInProgress, models.ScriptStatusSubmitted,
			models.ScriptStatusApproved, models.ScriptStatusPublished, models.ScriptStatusArchived:
			// Not pending from an editor's point of view.
		}
	}
	return false
}

// The most recently created scripts across the whole team, newest first.
// The sort must be stable so that scripts sharing a timestamp keep their
// fetch order.
func teamActivity(snap Snapshot) []TeamActivityItem {
	scripts := make([]*models.Script, len(snap.Scripts))
	copy(scripts, snap.Scripts)
	sort.SliceStable(scripts, func(i, j int) bool {
		return scripts[i].CreatedAt.After(scripts[j].CreatedAt)
	})
	if len(scripts) > teamActivityCap {
		scripts = scripts[:teamActivityCap]
	}

	var items []TeamActivityItem
	for _, s := range scripts {
		items = append(items, TeamActivityItem{
			Title:       s.Title,
			Author:      snap.userName(s.AuthorID),
			Status:      s.Status,
			ProjectName: snap.projectName(s.ProjectID),
			When:        s.CreatedAt,
		})
	}
	return items
}
