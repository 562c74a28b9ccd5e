package hubclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchSnapshot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/projects":
			w.Write([]byte(`[{"id":1,"name":"Morning Show"}]`))
		case "/api/episodes":
			w.Write([]byte(`[{"id":10,"projectId":1,"title":"Pilot","episodeNumber":1,"isPremium":false}]`))
		case "/api/scripts":
			w.Write([]byte(`[{"id":100,"projectId":1,"authorId":7,"title":"Pilot script","content":"hi","status":"Approved"}]`))
		case "/api/users":
			w.Write([]byte(`[{"id":7,"name":"Sam","email":"sam@example.com","role":"member","status":"verified"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"Not Found"}`))
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	snapshot, err := client.FetchSnapshot(context.Background())
	require.Nil(t, err)

	require.Len(t, snapshot.Projects, 1)
	require.Len(t, snapshot.Episodes, 1)
	require.Len(t, snapshot.Scripts, 1)
	require.Len(t, snapshot.Users, 1)

	assert.Equal(t, "Morning Show", snapshot.Projects[0].Name)
	assert.Equal(t, 100, snapshot.Scripts[0].ID)
	assert.Equal(t, "Approved", snapshot.Scripts[0].Status.String())
	assert.Equal(t, "Sam", snapshot.Users[0].Name)
}

func TestFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	client.http.RetryMax = 0

	_, err := client.FetchProjects(context.Background())
	assert.NotNil(t, err)
}
