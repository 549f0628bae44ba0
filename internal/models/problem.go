package models

// Example is a bare input/output pair extracted from a problem statement.
type Example struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// ProblemDetails is the structured metadata the LLM extracts from a raw
// problem statement. Produced once per submission, immutable afterwards.
type ProblemDetails struct {
	ProblemNumber     *int      `json:"problem_number"`
	ProblemName       string    `json:"problem_name"`
	Difficulty        string    `json:"difficulty"` // Easy, Medium, Hard
	Tags              []string  `json:"tags"`
	OriginalStatement string    `json:"original_statement"`
	InputDescription  string    `json:"input_description"`
	OutputDescription string    `json:"output_description"`
	Examples          []Example `json:"examples"`
}

// Explanation is the study-notes material the LLM generates for a solution.
type Explanation struct {
	Explanation     string   `json:"explanation"`
	KeyInsights     []string `json:"key_insights"` // 3-5 items
	Hints           []string `json:"hints"`        // 5-6 items
	Algorithm       string   `json:"algorithm"`    // pseudocode
	Approach        []string `json:"approach"`
	Walkthrough     string   `json:"walkthrough"`
	TimeComplexity  string   `json:"time_complexity"`
	SpaceComplexity string   `json:"space_complexity"`
	EdgeCases       []string `json:"edge_cases"`
}
