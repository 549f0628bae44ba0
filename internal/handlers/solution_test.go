package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/manthan161203/Leetcode-agent/internal/config"
	"github.com/manthan161203/Leetcode-agent/internal/middleware"
	"github.com/manthan161203/Leetcode-agent/internal/services"
	"github.com/stretchr/testify/assert"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandlerMiddleware())
	api := r.Group("/api")
	api.POST("/configure-github", ConfigureGithub)
	api.GET("/github-status", GithubStatus)
	api.POST("/save-solution", SaveSolution)
	r.GET("/health", Health)
	return r
}

func TestHealth(t *testing.T) {
	config.AppConfig = &config.Config{GeminiModel: "gemini-2.5-flash-lite"}
	Pipeline = services.NewPipeline(nil, "http://unused")
	r := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "ok", response["status"])
	assert.Equal(t, "gemini-2.5-flash-lite", response["model"])
}

func TestGithubStatus_NotConfigured(t *testing.T) {
	Pipeline = services.NewPipeline(nil, "http://unused")
	r := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/github-status", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Configured bool `json:"configured"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.False(t, response.Configured)
}

func TestConfigureGithub_MissingFields(t *testing.T) {
	Pipeline = services.NewPipeline(nil, "http://unused")
	r := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/configure-github", strings.NewReader(`{"github_token":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConfigureGithub_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"login": "octocat"})
	}))
	defer srv.Close()

	Pipeline = services.NewPipeline(nil, srv.URL)
	r := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/configure-github",
		strings.NewReader(`{"github_token":"t","github_username":"octocat"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "octocat", response["user"])
	assert.Equal(t, "Connected as octocat", response["message"])
}

func TestConfigureGithub_BadToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	Pipeline = services.NewPipeline(nil, srv.URL)
	r := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/configure-github",
		strings.NewReader(`{"github_token":"bad","github_username":"octocat"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "auth", response["stage"])
}

func TestSaveSolution_NotConfigured(t *testing.T) {
	Pipeline = services.NewPipeline(nil, "http://unused")
	r := setupRouter()

	form := url.Values{}
	form.Set("problem_statement", "1. Two Sum: ...")
	form.Set("code", "def twoSum(): pass")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/save-solution", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "config", response["stage"])
	assert.Contains(t, response["error"], "not configured")
}

func TestSaveSolution_MissingFields(t *testing.T) {
	Pipeline = services.NewPipeline(nil, "http://unused")
	r := setupRouter()

	form := url.Values{}
	form.Set("code", "def twoSum(): pass")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/save-solution", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
