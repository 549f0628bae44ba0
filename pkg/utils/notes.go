package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/manthan161203/Leetcode-agent/internal/models"
)

// FormatSolutionFile wraps raw solution code with a language header. The
// code is embedded verbatim, no escaping.
func FormatSolutionFile(code, language string) string {
	return fmt.Sprintf("# Solution - %s\n\n%s\n", strings.ToUpper(language), code)
}

var difficultyEmoji = map[string]string{
	"easy":   "🟢",
	"medium": "🟡",
	"hard":   "🔴",
}

// FormatNotes renders the markdown study-notes document. Section order is
// fixed; every list keeps its given order, numbered from 1. Only the
// trailing timestamp footer is impure.
func FormatNotes(problem *models.ProblemDetails, explanation *models.Explanation) string {
	emoji, ok := difficultyEmoji[strings.ToLower(problem.Difficulty)]
	if !ok {
		emoji = difficultyEmoji["medium"]
	}

	problemNumStr := ""
	if problem.ProblemNumber != nil {
		problemNumStr = fmt.Sprintf("%d. ", *problem.ProblemNumber)
	}

	tags := make([]string, len(problem.Tags))
	for i, tag := range problem.Tags {
		tags[i] = fmt.Sprintf("`%s`", tag)
	}

	var b strings.Builder

	fmt.Fprintf(&b, "# %s%s\n\n", problemNumStr, problem.ProblemName)
	fmt.Fprintf(&b, "**Difficulty:** %s %s\n\n", emoji, strings.ToUpper(problem.Difficulty))
	fmt.Fprintf(&b, "**Topics/Tags:** %s\n\n", strings.Join(tags, ", "))
	b.WriteString("---\n\n")

	fmt.Fprintf(&b, "## 📝 Problem Statement\n\n%s\n\n", problem.OriginalStatement)
	fmt.Fprintf(&b, "### Input\n%s\n\n", problem.InputDescription)
	fmt.Fprintf(&b, "### Output\n%s\n\n", problem.OutputDescription)
	b.WriteString("---\n\n")

	fmt.Fprintf(&b, "## 💡 Explanation\n\n%s\n\n", explanation.Explanation)
	b.WriteString("---\n\n")

	b.WriteString("## 🔑 Key Insights\n\n")
	for i, insight := range explanation.KeyInsights {
		fmt.Fprintf(&b, "%d. %s\n", i+1, insight)
	}
	b.WriteString("\n---\n\n")

	b.WriteString("## 🎯 Hints\n\n")
	for i, hint := range explanation.Hints {
		fmt.Fprintf(&b, "%d. %s\n", i+1, hint)
	}
	b.WriteString("\n---\n\n")

	fmt.Fprintf(&b, "## 🔍 Algorithm\n\n```\n%s\n```\n\n", explanation.Algorithm)
	b.WriteString("---\n\n")

	b.WriteString("## 📋 Approach\n\n")
	for i, step := range explanation.Approach {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	b.WriteString("\n---\n\n")

	fmt.Fprintf(&b, "## 🚶 Step-by-Step Walkthrough\n\n%s\n\n", explanation.Walkthrough)
	b.WriteString("---\n\n")

	b.WriteString("## 📊 Complexity Analysis\n\n")
	fmt.Fprintf(&b, "### Time Complexity\n%s\n\n", explanation.TimeComplexity)
	fmt.Fprintf(&b, "### Space Complexity\n%s\n\n", explanation.SpaceComplexity)
	b.WriteString("---\n\n")

	b.WriteString("## ⚠️ Edge Cases\n\n")
	for _, edgeCase := range explanation.EdgeCases {
		fmt.Fprintf(&b, "- %s\n", edgeCase)
	}
	b.WriteString("\n---\n\n")

	b.WriteString("## 📥 Examples\n\n")
	for i, example := range problem.Examples {
		fmt.Fprintf(&b, "### Example %d\n", i+1)
		fmt.Fprintf(&b, "**Input:** `%s`\n", example.Input)
		fmt.Fprintf(&b, "**Output:** `%s`\n\n", example.Output)
	}

	fmt.Fprintf(&b, "---\n*Generated on %s*\n", time.Now().Format("2006-01-02 15:04:05"))

	return b.String()
}
