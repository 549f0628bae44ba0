package models

// GithubConfig holds the credentials for the repository solutions are
// pushed to. Set via /configure-github and held by the pipeline until
// reconfigured.
type GithubConfig struct {
	Token    string `json:"github_token" form:"github_token" binding:"required"`
	Username string `json:"github_username" form:"github_username" binding:"required"`
	Repo     string `json:"github_repo" form:"github_repo"`
}

// DefaultRepo is used when no repository name is supplied.
const DefaultRepo = "leetcode-solutions"

// WithDefaults fills in the default repository name.
func (c GithubConfig) WithDefaults() GithubConfig {
	if c.Repo == "" {
		c.Repo = DefaultRepo
	}
	return c
}

// IsZero reports whether the config has not been set yet.
func (c GithubConfig) IsZero() bool {
	return c.Token == "" && c.Username == ""
}
