/*
Package aggregate derives role-specific dashboard view models from a snapshot
of hub records. Everything in here is a pure function of its inputs: no
database access, no clock reads (callers pass the current time where it
matters), no mutation of the snapshot. Calling any of these twice with the
same inputs yields the same outputs, and it is safe to aggregate the same
snapshot from many goroutines at once.

Missing relations never produce errors. A script whose project is absent
from the snapshot simply renders with a placeholder project name; the
records themselves are the database's problem, not ours.
*/
package aggregate

import (
	"sort"
	"time"

	"git.radiohub.fm/hub/hub/src/models"
)

// Placeholder labels for relations missing from the snapshot.
const (
	UnknownLabel        = "Unknown"
	UnknownProjectLabel = "Unknown Project"
)

// A Snapshot is the full set of fetched records at one point in time. It is
// treated as immutable input; the dashboards recompute from a fresh snapshot
// on every request rather than caching derived state.
type Snapshot struct {
	Projects []*models.Project
	Episodes []*models.Episode
	Scripts  []*models.Script
	Users    []*models.User
}

func (snap *Snapshot) project(id int) *models.Project {
	for _, p := range snap.Projects {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (snap *Snapshot) user(id int) *models.User {
	for _, u := range snap.Users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (snap *Snapshot) projectName(id int) string {
	if p := snap.project(id); p != nil {
		return p.Name
	}
	return UnknownProjectLabel
}

func (snap *Snapshot) userName(id int) string {
	if u := snap.user(id); u != nil {
		return u.Name
	}
	return UnknownLabel
}

// A FeedItem is one entry in a merged, time-sorted summary list drawn from
// multiple record types. It exists for display only.
type FeedItem struct {
	Title       string    `json:"title"`
	Action      string    `json:"action"`
	ProjectName string    `json:"projectName"`
	When        time.Time `json:"when"`
}

// Sorts a feed newest-first and truncates it to the display cap. Ties keep
// their merge order.
func sortAndCapFeed(items []FeedItem, cap int) []FeedItem {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].When.After(items[j].When)
	})
	if len(items) > cap {
		items = items[:cap]
	}
	return items
}
