package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAskMissingKey(t *testing.T) {
	client := NewClient("https://generativelanguage.example", "", "gemini-1.5-flash", time.Second)
	_, err := client.Ask(context.Background(), "what is this?", "some context")
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestAsk(t *testing.T) {
	var gotBody generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/gemini-1.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"It is a demo app."}]}}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", "gemini-1.5-flash", 5*time.Second)

	answer, err := client.Ask(context.Background(), "What does this project do?", "Description: A demo app")
	require.NoError(t, err)
	assert.Equal(t, "It is a demo app.", answer)

	require.Len(t, gotBody.Contents, 1)
	require.Len(t, gotBody.Contents[0].Parts, 1)
	prompt := gotBody.Contents[0].Parts[0].Text
	assert.Contains(t, prompt, "Description: A demo app")
	assert.Contains(t, prompt, "USER QUESTION: What does this project do?")
	assert.Equal(t, 0.7, gotBody.GenerationConfig.Temperature)
	assert.Equal(t, 1024, gotBody.GenerationConfig.MaxOutputTokens)
}

func TestAskNoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", "gemini-1.5-flash", 5*time.Second)

	answer, err := client.Ask(context.Background(), "anything", "")
	require.NoError(t, err)
	assert.Equal(t, "No response generated", answer)
}

func TestAskUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", "gemini-1.5-flash", 5*time.Second)

	_, err := client.Ask(context.Background(), "anything", "")
	assert.ErrorIs(t, err, ErrGenerate)
}
