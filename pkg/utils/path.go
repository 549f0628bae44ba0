package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// extensions maps the language tags the frontend offers to file extensions.
var extensions = map[string]string{
	"python":     "py",
	"javascript": "js",
	"typescript": "ts",
	"java":       "java",
	"cpp":        "cpp",
	"c":          "c",
	"csharp":     "cs",
	"go":         "go",
	"rust":       "rs",
	"sql":        "sql",
	"swift":      "swift",
}

// FileExtension returns the file extension for a language tag. Unknown
// tags fall back to "txt".
func FileExtension(language string) string {
	if ext, ok := extensions[strings.ToLower(language)]; ok {
		return ext
	}
	return "txt"
}

var numberedNameRe = regexp.MustCompile(`^(\d+)\.\s*(.+)$`)

// ExtractProblemNumber splits a leading "42. Two Sum" style prefix out of
// a problem name. An explicitly provided number wins over the prefix.
func ExtractProblemNumber(problemName string, problemNumber *int) (*int, string) {
	if problemNumber != nil {
		return problemNumber, problemName
	}

	match := numberedNameRe.FindStringSubmatch(strings.TrimSpace(problemName))
	if match != nil {
		n, err := strconv.Atoi(match[1])
		if err == nil {
			return &n, strings.TrimSpace(match[2])
		}
	}

	return nil, problemName
}

// FolderAndFilename derives the repository folder and filename for a
// problem. Deterministic: repeated submissions of the same problem land on
// the same paths, which is what lets the upsert detect pre-existing files.
func FolderAndFilename(problemNumber *int, problemName, extension string) (string, string) {
	cleanName := strings.ToLower(problemName)
	cleanName = strings.ReplaceAll(cleanName, " ", "_")
	cleanName = strings.ReplaceAll(cleanName, "-", "_")

	if problemNumber != nil {
		folder := fmt.Sprintf("%04d_%s", *problemNumber, cleanName)
		return folder, fmt.Sprintf("%s.%s", folder, extension)
	}

	return cleanName, fmt.Sprintf("%s.%s", cleanName, extension)
}
