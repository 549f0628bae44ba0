package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/manthan161203/Leetcode-agent/internal/models"
	apperrors "github.com/manthan161203/Leetcode-agent/pkg/errors"
	"github.com/stretchr/testify/assert"
)

// fakeGithub simulates the slice of the Contents API the client uses:
// GET /user, GET and PUT on /repos/{owner}/{repo}/contents/{path}.
type fakeGithub struct {
	mu         sync.Mutex
	validToken string
	files      map[string]string // path -> sha
	puts       []putRecord
}

type putRecord struct {
	OwnerRepo string
	Path      string
	Message   string
	SHA       string
	Branch    string
}

func newFakeGithub(validToken string) *fakeGithub {
	return &fakeGithub{
		validToken: validToken,
		files:      make(map[string]string),
	}
}

func (f *fakeGithub) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "token "+f.validToken {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"login": "octocat"})
	})

	mux.HandleFunc("/repos/", func(w http.ResponseWriter, r *http.Request) {
		parts := strings.SplitN(strings.TrimPrefix(r.URL.Path, "/repos/"), "/contents/", 2)
		if len(parts) != 2 {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		ownerRepo, path := parts[0], parts[1]

		f.mu.Lock()
		defer f.mu.Unlock()

		switch r.Method {
		case http.MethodGet:
			sha, ok := f.files[path]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(map[string]string{"message": "Not Found"})
				return
			}
			json.NewEncoder(w).Encode(map[string]string{"sha": sha})

		case http.MethodPut:
			var body struct {
				Message string `json:"message"`
				Content string `json:"content"`
				Branch  string `json:"branch"`
				SHA     string `json:"sha"`
			}
			json.NewDecoder(r.Body).Decode(&body)

			existing, exists := f.files[path]
			if exists && body.SHA != existing {
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(map[string]string{"message": "sha mismatch"})
				return
			}

			f.puts = append(f.puts, putRecord{OwnerRepo: ownerRepo, Path: path, Message: body.Message, SHA: body.SHA, Branch: body.Branch})
			newSHA := "sha-" + path + "-v" + string(rune('0'+len(f.puts)))
			status := http.StatusCreated
			if exists {
				status = http.StatusOK
			}
			f.files[path] = newSHA
			w.WriteHeader(status)
			json.NewEncoder(w).Encode(map[string]interface{}{"content": map[string]string{"sha": newSHA}})

		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	return mux
}

func testConfig() models.GithubConfig {
	return models.GithubConfig{Token: "t0ken", Username: "octocat", Repo: "leetcode-solutions"}
}

func TestAuthenticatedUser(t *testing.T) {
	fake := newFakeGithub("t0ken")
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	client := NewGithubClient(testConfig(), srv.URL)
	login, err := client.AuthenticatedUser(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "octocat", login)
}

func TestAuthenticatedUser_BadToken(t *testing.T) {
	fake := newFakeGithub("other")
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	client := NewGithubClient(testConfig(), srv.URL)
	_, err := client.AuthenticatedUser(context.Background())
	assert.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, appErr.Code)
}

func TestUpsertFile_CreatesWithoutSHA(t *testing.T) {
	fake := newFakeGithub("t0ken")
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	client := NewGithubClient(testConfig(), srv.URL)
	path, err := client.UpsertFile(context.Background(), apperrors.StagePushCode,
		"solutions/0001_two_sum/0001_two_sum.py", []byte("code"), "Add solution: Two Sum (python)")

	assert.NoError(t, err)
	assert.Equal(t, "solutions/0001_two_sum/0001_two_sum.py", path)
	assert.Len(t, fake.puts, 1)
	assert.Empty(t, fake.puts[0].SHA)
	assert.Equal(t, "main", fake.puts[0].Branch)
	assert.Equal(t, "Add solution: Two Sum (python)", fake.puts[0].Message)
}

func TestUpsertFile_UpdatesWithSHA(t *testing.T) {
	fake := newFakeGithub("t0ken")
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	client := NewGithubClient(testConfig(), srv.URL)
	ctx := context.Background()

	_, err := client.UpsertFile(ctx, apperrors.StagePushCode, "solutions/x/x.py", []byte("v1"), "Add solution: X (python)")
	assert.NoError(t, err)

	_, err = client.UpsertFile(ctx, apperrors.StagePushCode, "solutions/x/x.py", []byte("v2"), "Add solution: X (python)")
	assert.NoError(t, err)

	assert.Len(t, fake.puts, 2)
	assert.Empty(t, fake.puts[0].SHA)
	assert.NotEmpty(t, fake.puts[1].SHA, "second upsert must carry the version token")
	assert.Equal(t, "Update solution: X (python)", fake.puts[1].Message)
}

func TestUpsertFile_IdempotentOnIdenticalContent(t *testing.T) {
	fake := newFakeGithub("t0ken")
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	client := NewGithubClient(testConfig(), srv.URL)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		path, err := client.UpsertFile(ctx, apperrors.StagePushNotes, "solutions/y/y.md", []byte("same"), "Add notes: Y")
		assert.NoError(t, err)
		assert.Equal(t, "solutions/y/y.md", path)
	}
}

func TestUpsertFile_RemoteWriteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"Invalid request"}`))
	}))
	defer srv.Close()

	client := NewGithubClient(testConfig(), srv.URL)
	_, err := client.UpsertFile(context.Background(), apperrors.StagePushCode, "solutions/z/z.py", []byte("code"), "Add solution: Z (python)")

	assert.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	assert.True(t, ok)
	assert.Equal(t, apperrors.StagePushCode, appErr.Stage)
	assert.Contains(t, appErr.Message, "422")
	assert.Contains(t, appErr.Message, "Invalid request")
}
