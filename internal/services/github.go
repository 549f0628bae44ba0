package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/manthan161203/Leetcode-agent/internal/models"
	apperrors "github.com/manthan161203/Leetcode-agent/pkg/errors"
	"github.com/manthan161203/Leetcode-agent/pkg/logger"
	"github.com/manthan161203/Leetcode-agent/pkg/utils"
)

// GithubClient talks to the GitHub Contents API for one configured
// user/repo pair. Instances are cheap; the pipeline builds one per request
// from its config snapshot.
type GithubClient struct {
	config     models.GithubConfig
	baseURL    string
	httpClient *http.Client
}

// NewGithubClient creates a client for the given credentials. baseURL is
// normally https://api.github.com; tests point it at a local server.
func NewGithubClient(config models.GithubConfig, baseURL string) *GithubClient {
	return &GithubClient{
		config:  config,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (g *GithubClient) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "token "+g.config.Token)
	req.Header.Set("Accept", "application/vnd.github.v3+json")
}

// AuthenticatedUser verifies the token against GET /user and returns the
// login it belongs to.
func (g *GithubClient) AuthenticatedUser(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/user", nil)
	if err != nil {
		return "", err
	}
	g.setHeaders(req)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", apperrors.AuthError("Invalid GitHub token.")
	}

	var user struct {
		Login string `json:"login"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return "", err
	}

	return user.Login, nil
}

func (g *GithubClient) contentsURL(path string) string {
	return fmt.Sprintf("%s/repos/%s/%s/contents/%s", g.baseURL, g.config.Username, g.config.Repo, path)
}

// fileSHA looks up the current blob SHA for path. Returns "" when the file
// does not exist yet.
func (g *GithubClient) fileSHA(ctx context.Context, path string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.contentsURL(path), nil)
	if err != nil {
		return "", err
	}
	g.setHeaders(req)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", nil
	}

	var file struct {
		SHA string `json:"sha"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&file); err != nil {
		return "", err
	}

	return file.SHA, nil
}

type contentsPutRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	Branch  string `json:"branch"`
	SHA     string `json:"sha,omitempty"`
}

// UpsertFile writes content to path on the main branch, creating the file
// or replacing the existing version. It always reads the current SHA
// first, so re-running the same submission updates in place instead of
// tripping a 422. The commit message switches from Add to Update when the
// file already exists.
func (g *GithubClient) UpsertFile(ctx context.Context, stage, path string, content []byte, message string) (string, error) {
	sha, err := g.fileSHA(ctx, path)
	if err != nil {
		return "", err
	}
	if sha != "" {
		message = "Update" + trimPrefixWord(message, "Add")
	}

	payload := contentsPutRequest{
		Message: message,
		Content: base64.StdEncoding.EncodeToString(content),
		Branch:  "main",
		SHA:     sha,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, g.contentsURL(path), bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	g.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return "", apperrors.RemoteWrite(stage, fmt.Sprintf("GitHub push failed (%d): %s", resp.StatusCode, utils.TruncateString(string(body), 500)))
	}

	logger.Info().Str("path", path).Bool("update", sha != "").Msg("File pushed to GitHub")
	return path, nil
}

// trimPrefixWord strips a leading word so "Add solution: X" can become
// "Update solution: X".
func trimPrefixWord(s, word string) string {
	if len(s) >= len(word) && s[:len(word)] == word {
		return s[len(word):]
	}
	return " " + s
}
