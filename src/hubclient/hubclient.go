// Package hubclient talks to a running hub over its JSON API. It is used by
// the admin tools to build dashboards without direct database access.
package hubclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"git.radiohub.fm/hub/hub/src/aggregate"
	"git.radiohub.fm/hub/hub/src/models"
	"git.radiohub.fm/hub/hub/src/oops"
	"github.com/hashicorp/go-retryablehttp"
)

type Client struct {
	BaseUrl string

	http *retryablehttp.Client
}

func NewClient(baseUrl string) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.Logger = log.New(io.Discard, "", 0)
	retryClient.RetryMax = 3
	retryClient.HTTPClient.Timeout = 30 * time.Second

	return &Client{
		BaseUrl: baseUrl,
		http:    retryClient,
	}
}

func (c *Client) getJson(ctx context.Context, path string, dest any) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.BaseUrl+path, nil)
	if err != nil {
		return oops.New(err, "failed to create request for %s", path)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return oops.New(err, "request to %s failed", path)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return oops.New(nil, "request to %s returned status %d", path, res.StatusCode)
	}

	bodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		return oops.New(err, "failed to read response from %s", path)
	}
	if err := json.Unmarshal(bodyBytes, dest); err != nil {
		return oops.New(err, "failed to unmarshal response from %s", path)
	}

	return nil
}

func (c *Client) FetchProjects(ctx context.Context) ([]*models.Project, error) {
	var projects []*models.Project
	err := c.getJson(ctx, "/api/projects", &projects)
	return projects, err
}

func (c *Client) FetchEpisodes(ctx context.Context) ([]*models.Episode, error) {
	var episodes []*models.Episode
	err := c.getJson(ctx, "/api/episodes", &episodes)
	return episodes, err
}

func (c *Client) FetchScripts(ctx context.Context) ([]*models.Script, error) {
	var scripts []*models.Script
	err := c.getJson(ctx, "/api/scripts", &scripts)
	return scripts, err
}

func (c *Client) FetchUsers(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	err := c.getJson(ctx, "/api/users", &users)
	return users, err
}

func (c *Client) FetchUser(ctx context.Context, userID int) (*models.User, error) {
	var user models.User
	err := c.getJson(ctx, fmt.Sprintf("/api/users/%d", userID), &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FetchSnapshot pulls all four content collections so dashboards can be
// built locally. The four fetches are not transactional with respect to
// each other; dashboards tolerate dangling references.
func (c *Client) FetchSnapshot(ctx context.Context) (aggregate.Snapshot, error) {
	var snapshot aggregate.Snapshot
	var err error

	snapshot.Projects, err = c.FetchProjects(ctx)
	if err != nil {
		return aggregate.Snapshot{}, err
	}
	snapshot.Episodes, err = c.FetchEpisodes(ctx)
	if err != nil {
		return aggregate.Snapshot{}, err
	}
	snapshot.Scripts, err = c.FetchScripts(ctx)
	if err != nil {
		return aggregate.Snapshot{}, err
	}
	snapshot.Users, err = c.FetchUsers(ctx)
	if err != nil {
		return aggregate.Snapshot{}, err
	}

	return snapshot, nil
}
