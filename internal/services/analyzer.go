package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/manthan161203/Leetcode-agent/internal/models"
	apperrors "github.com/manthan161203/Leetcode-agent/pkg/errors"
	"github.com/manthan161203/Leetcode-agent/pkg/logger"
)

const problemPromptTemplate = `You are an expert LeetCode problem analyzer.
Extract and structure data from this problem statement:

%s

IMPORTANT RULES:
1. Extract problem_number if it exists (e.g., 1, 2, 15, 121), else set to null
2. problem_name: Clean name only (e.g., 'Two Sum', 'Best Time to Buy and Sell Stock')
3. difficulty: Must be one of 'Easy', 'Medium', 'Hard'
4. tags: List of specific algorithmic tags (not generic). Examples:
   - 'Array', 'Hash Table', 'Dynamic Programming', 'Two Pointers', 'Greedy'
   - 'Binary Search', 'Graph', 'Tree', 'String', 'Stack', 'Queue'
   - 'Recursion', 'Backtracking', 'Divide and Conquer', 'Trie'
5. original_statement: Reformat the problem description as clean Markdown:
   - Clear, well-structured paragraphs with **bold** for key terms and constraints
   - Examples under headers (### Example 1, ### Example 2, ...), each with
     **Input:**, **Output:** and **Explanation:** (if provided)
   - A ### Constraints header with bullet points
   - Backticks for values (e.g., ` + "`k = 1`, `n = 111`" + `)
6. input_description: What the input represents (1-2 sentences)
7. output_description: What should be output (1-2 sentences)
8. examples: List with 'input' and 'output' fields (simple values only, not full explanations)

Respond ONLY with valid JSON matching this schema:
{
  "problem_number": <int or null>,
  "problem_name": "<string>",
  "difficulty": "Easy|Medium|Hard",
  "tags": ["<string>", ...],
  "original_statement": "<markdown string>",
  "input_description": "<string>",
  "output_description": "<string>",
  "examples": [{"input": "<string>", "output": "<string>"}, ...]
}`

const explanationPromptTemplate = `You are an expert coding educator.
Analyze this LeetCode problem and provide detailed learning material.

Problem:
%s

Solution Code (%s):
%s

CRITICAL REQUIREMENTS:
1. explanation (3-4 lines): what the solution does and its core insight, **bold** key terms
2. key_insights (3-5 items): the 'aha!' observations that make the problem solvable,
   each a complete standalone statement with the main concept in **bold**
3. hints (5-6 items): each highlighting a key concept with **bold** terms,
   e.g. 'Use a **Hash Table** to store seen elements for O(1) lookup'
4. algorithm: full pseudocode with proper indentation, loops and conditionals spelled out
5. approach: step-by-step list, each point concise with the main action in **bold**
6. walkthrough: highly visual step-by-step execution trace; use ASCII art for data
   structures (arrays with pointer arrows, trees, stacks), markdown tables for
   tracking variables across steps, and --- separators between major steps
7. time_complexity: Big O in **bold** plus why
8. space_complexity: Big O in **bold** plus what takes the space
9. edge_cases: actual specific edge cases (e.g. 'Array of size 1', 'All negative
   numbers'), not generic ones, with why each matters

Respond ONLY with valid JSON matching this schema:
{
  "explanation": "<string>",
  "key_insights": ["<string>", ...],
  "hints": ["<string>", ...],
  "algorithm": "<string>",
  "approach": ["<string>", ...],
  "walkthrough": "<string>",
  "time_complexity": "<string>",
  "space_complexity": "<string>",
  "edge_cases": ["<string>", ...]
}`

const translatePromptTemplate = `Translate this %s solution into %s.
Keep the algorithm and variable naming intent identical. Respond ONLY with
the translated code, no explanations, no markdown fences.

%s`

// Analyzer turns raw submissions into structured problem metadata and
// study notes via the completion service.
type Analyzer struct {
	completer Completer
}

func NewAnalyzer(completer Completer) *Analyzer {
	return &Analyzer{completer: completer}
}

// stripCodeFences unwraps ```json ... ``` style fenced responses, which
// Gemini emits even when told to answer with bare JSON.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		// Drop the language tag line ("json", "python", ...)
		first := strings.TrimSpace(s[:idx])
		if len(first) <= 12 && !strings.ContainsAny(first, "{}") {
			s = s[idx+1:]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// ExtractProblem asks the model for structured problem metadata and
// validates the response shape. Validation failures are not retried.
func (a *Analyzer) ExtractProblem(ctx context.Context, problemStatement string) (*models.ProblemDetails, error) {
	prompt := fmt.Sprintf(problemPromptTemplate, problemStatement)

	raw, err := a.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, apperrors.SchemaValidation(apperrors.StageExtract, fmt.Sprintf("Failed to extract problem details: %v", err))
	}

	var details models.ProblemDetails
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &details); err != nil {
		return nil, apperrors.SchemaValidation(apperrors.StageExtract, fmt.Sprintf("Completion response is not valid JSON: %v", err))
	}

	if err := validateProblemDetails(&details); err != nil {
		return nil, apperrors.SchemaValidation(apperrors.StageExtract, err.Error())
	}

	logger.Info().Str("problem", details.ProblemName).Msg("Problem extracted")
	return &details, nil
}

func validateProblemDetails(d *models.ProblemDetails) error {
	if strings.TrimSpace(d.ProblemName) == "" {
		return fmt.Errorf("extraction response missing problem_name")
	}
	switch d.Difficulty {
	case "Easy", "Medium", "Hard":
	default:
		return fmt.Errorf("extraction response has invalid difficulty %q", d.Difficulty)
	}
	if d.OriginalStatement == "" {
		return fmt.Errorf("extraction response missing original_statement")
	}
	return nil
}

// GenerateExplanation asks the model for the full study-notes material.
// Same validation contract as ExtractProblem.
func (a *Analyzer) GenerateExplanation(ctx context.Context, problemStatement, code, language string) (*models.Explanation, error) {
	prompt := fmt.Sprintf(explanationPromptTemplate, problemStatement, language, code)

	raw, err := a.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, apperrors.SchemaValidation(apperrors.StageExplain, fmt.Sprintf("Failed to generate explanation: %v", err))
	}

	var explanation models.Explanation
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &explanation); err != nil {
		return nil, apperrors.SchemaValidation(apperrors.StageExplain, fmt.Sprintf("Completion response is not valid JSON: %v", err))
	}

	if err := validateExplanation(&explanation); err != nil {
		return nil, apperrors.SchemaValidation(apperrors.StageExplain, err.Error())
	}

	logger.Info().Msg("Explanation generated")
	return &explanation, nil
}

func validateExplanation(e *models.Explanation) error {
	if strings.TrimSpace(e.Explanation) == "" {
		return fmt.Errorf("explanation response missing explanation text")
	}
	if e.Algorithm == "" {
		return fmt.Errorf("explanation response missing algorithm")
	}
	if len(e.KeyInsights) == 0 {
		return fmt.Errorf("explanation response missing key_insights")
	}
	return nil
}

// TranslateCode asks the model to port a solution into another language.
// Plain-text completion; fenced output is unwrapped.
func (a *Analyzer) TranslateCode(ctx context.Context, code, fromLang, toLang string) (string, error) {
	prompt := fmt.Sprintf(translatePromptTemplate, fromLang, toLang, code)

	raw, err := a.completer.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("translation to %s failed: %w", toLang, err)
	}

	translated := stripCodeFences(raw)
	if strings.TrimSpace(translated) == "" {
		return "", fmt.Errorf("translation to %s returned empty output", toLang)
	}

	return translated, nil
}
