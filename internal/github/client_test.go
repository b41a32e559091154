package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRepoURL(t *testing.T) {
	cases := []struct {
		name      string
		url       string
		wantOwner string
		wantName  string
		wantOK    bool
	}{
		{"plain", "https://github.com/torvalds/linux", "torvalds", "linux", true},
		{"git suffix", "https://github.com/torvalds/linux.git", "torvalds", "linux", true},
		{"trailing slash", "https://github.com/torvalds/linux/", "torvalds", "linux", true},
		{"extra segments", "https://github.com/torvalds/linux/tree/master", "torvalds", "linux", true},
		{"no scheme", "github.com/gofiber/fiber", "gofiber", "fiber", true},
		{"not github", "https://gitlab.com/foo/bar", "", "", false},
		{"owner only", "https://github.com/torvalds", "", "", false},
		{"garbage", "not a url at all", "", "", false},
		{"empty", "", "", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			owner, name, ok := ParseRepoURL(tc.url)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantOwner, owner)
			assert.Equal(t, tc.wantName, name)
		})
	}
}

func TestFetchRepo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GitMind-App", r.Header.Get("User-Agent"))
		assert.Equal(t, "application/vnd.github.v3+json", r.Header.Get("Accept"))

		switch r.URL.Path {
		case "/repos/octocat/hello-world":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"name": "hello-world",
				"html_url": "https://github.com/octocat/hello-world",
				"description": "My first repo",
				"language": "Go",
				"stargazers_count": 42,
				"forks_count": 7,
				"topics": ["demo", "example"],
				"owner": {"login": "octocat", "avatar_url": "https://avatars.example/octocat"}
			}`))
		case "/repos/octocat/missing":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)

	t.Run("success", func(t *testing.T) {
		info, err := client.FetchRepo(context.Background(), "octocat", "hello-world")
		require.NoError(t, err)
		assert.Equal(t, "hello-world", info.Name)
		assert.Equal(t, "https://github.com/octocat/hello-world", info.HTMLURL)
		require.NotNil(t, info.Description)
		assert.Equal(t, "My first repo", *info.Description)
		assert.Equal(t, 42, info.Stars)
		assert.Equal(t, 7, info.Forks)
		assert.Equal(t, "octocat", info.Owner.Login)
		assert.Equal(t, []string{"demo", "example"}, info.Topics)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := client.FetchRepo(context.Background(), "octocat", "missing")
		assert.ErrorIs(t, err, ErrRepoNotFound)
	})

	t.Run("server error", func(t *testing.T) {
		_, err := client.FetchRepo(context.Background(), "octocat", "broken")
		assert.ErrorIs(t, err, ErrRepoFetch)
	})
}

func TestLookupRepo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)

	assert.Nil(t, client.LookupRepo(context.Background(), "https://gitlab.com/foo/bar"))
	assert.Nil(t, client.LookupRepo(context.Background(), "https://github.com/octocat/missing"))
}

func TestFetchReadme(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/octocat/hello-world/readme" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		assert.Equal(t, "application/vnd.github.v3.raw", r.Header.Get("Accept"))
		w.Write([]byte("# Hello World\n\nA demo readme."))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)

	readme := client.FetchReadme(context.Background(), "https://github.com/octocat/hello-world")
	require.NotNil(t, readme)
	assert.Contains(t, *readme, "A demo readme.")

	assert.Nil(t, client.FetchReadme(context.Background(), "https://github.com/octocat/no-readme"))
	assert.Nil(t, client.FetchReadme(context.Background(), "not a url"))
}
