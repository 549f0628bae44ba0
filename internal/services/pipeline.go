package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/manthan161203/Leetcode-agent/internal/models"
	apperrors "github.com/manthan161203/Leetcode-agent/pkg/errors"
	"github.com/manthan161203/Leetcode-agent/pkg/logger"
	"github.com/manthan161203/Leetcode-agent/pkg/utils"
)

// Pipeline runs the save-solution flow: extract, explain, render, push.
// The GitHub config is the only shared mutable state; Process snapshots it
// once at entry so a reconfigure cannot swap credentials mid-submission.
type Pipeline struct {
	analyzer      *Analyzer
	githubBaseURL string

	mu     sync.RWMutex
	config models.GithubConfig
}

func NewPipeline(completer Completer, githubBaseURL string) *Pipeline {
	return &Pipeline{
		analyzer:      NewAnalyzer(completer),
		githubBaseURL: githubBaseURL,
	}
}

// Configure verifies the token against GitHub and stores the config. On
// failure the previous config is left untouched.
func (p *Pipeline) Configure(ctx context.Context, config models.GithubConfig) (string, error) {
	config = config.WithDefaults()

	if !utils.ValidateUsername(config.Username) {
		return "", apperrors.BadRequest("Invalid GitHub username")
	}

	client := NewGithubClient(config, p.githubBaseURL)
	login, err := client.AuthenticatedUser(ctx)
	if err != nil {
		return "", err
	}

	p.mu.Lock()
	p.config = config
	p.mu.Unlock()

	logger.Info().Str("user", login).Str("repo", config.Repo).Msg("GitHub connected")
	return login, nil
}

// Status reports whether a config is set and for whom.
func (p *Pipeline) Status() (bool, string, string) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.config.IsZero() {
		return false, "", ""
	}
	return true, p.config.Username, p.config.Repo
}

func (p *Pipeline) snapshotConfig() (models.GithubConfig, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.config, !p.config.IsZero()
}

// Process runs one submission end to end. Extraction or explanation
// failure aborts before anything is written. The code file is pushed
// before the notes file; if the notes push fails the code file stays
// behind, which is accepted rather than rolled back. Translation targets
// are best-effort: a failed target is logged and left out of the result.
func (p *Pipeline) Process(ctx context.Context, submission models.SolutionSubmission) (*models.SubmissionResult, error) {
	config, ok := p.snapshotConfig()
	if !ok {
		return nil, apperrors.ConfigMissing("GitHub not configured. Call /configure-github first")
	}

	if submission.Language == "" {
		submission.Language = "python"
	}

	logger.Info().Msg("Extracting problem details...")
	problem, err := p.analyzer.ExtractProblem(ctx, submission.ProblemStatement)
	if err != nil {
		return nil, err
	}

	// The LLM sometimes leaves a "42. " prefix in the name despite the
	// prompt rules; fold it into the number instead.
	problem.ProblemNumber, problem.ProblemName = utils.ExtractProblemNumber(problem.ProblemName, problem.ProblemNumber)

	logger.Info().Msg("Generating explanation...")
	explanation, err := p.analyzer.GenerateExplanation(ctx, submission.ProblemStatement, submission.Code, submission.Language)
	if err != nil {
		return nil, err
	}

	extension := utils.FileExtension(submission.Language)
	folder, filename := utils.FolderAndFilename(problem.ProblemNumber, problem.ProblemName, extension)

	codeFile := utils.FormatSolutionFile(submission.Code, submission.Language)
	notesFile := utils.FormatNotes(problem, explanation)

	github := NewGithubClient(config, p.githubBaseURL)
	filesPushed := []string{}

	codePath := fmt.Sprintf("solutions/%s/%s", folder, filename)
	path, err := github.UpsertFile(ctx, apperrors.StagePushCode, codePath, []byte(codeFile),
		fmt.Sprintf("Add solution: %s (%s)", problem.ProblemName, submission.Language))
	if err != nil {
		return nil, err
	}
	filesPushed = append(filesPushed, path)

	notesPath := fmt.Sprintf("solutions/%s/%s.md", folder, folder)
	path, err = github.UpsertFile(ctx, apperrors.StagePushNotes, notesPath, []byte(notesFile),
		fmt.Sprintf("Add notes: %s", problem.ProblemName))
	if err != nil {
		return nil, err
	}
	filesPushed = append(filesPushed, path)

	filesPushed = append(filesPushed, p.pushTranslations(ctx, github, submission, problem, folder)...)

	logger.Info().Int("files", len(filesPushed)).Msg("Solution saved")
	return &models.SubmissionResult{
		Problem:         problem,
		FilesPushed:     filesPushed,
		FolderStructure: fmt.Sprintf("solutions/%s/", folder),
	}, nil
}

// pushTranslations handles the optional target_languages list. Each target
// gets one completion call and one upsert, strictly in sequence. Failures
// never fail the submission; the primary artifacts are already persisted.
func (p *Pipeline) pushTranslations(ctx context.Context, github *GithubClient, submission models.SolutionSubmission, problem *models.ProblemDetails, folder string) []string {
	var pushed []string

	for _, target := range submission.TargetLanguages {
		if strings.EqualFold(target, submission.Language) {
			continue
		}

		translated, err := p.analyzer.TranslateCode(ctx, submission.Code, submission.Language, target)
		if err != nil {
			logger.Warn().Err(err).Str("language", target).Msg("Translation skipped")
			continue
		}

		extension := utils.FileExtension(target)
		_, filename := utils.FolderAndFilename(problem.ProblemNumber, problem.ProblemName, extension)
		path := fmt.Sprintf("solutions/%s/%s", folder, filename)

		codeFile := utils.FormatSolutionFile(translated, target)
		written, err := github.UpsertFile(ctx, apperrors.StageTranslate, path, []byte(codeFile),
			fmt.Sprintf("Add solution: %s (%s)", problem.ProblemName, target))
		if err != nil {
			logger.Warn().Err(err).Str("language", target).Msg("Translation push skipped")
			continue
		}

		pushed = append(pushed, written)
	}

	return pushed
}
