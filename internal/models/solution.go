package models

// SolutionSubmission is one save-solution request. The frontend posts it
// as form data; JSON is accepted too.
type SolutionSubmission struct {
	ProblemStatement string   `json:"problem_statement" form:"problem_statement" binding:"required"`
	Code             string   `json:"code" form:"code" binding:"required"`
	Language         string   `json:"language" form:"language"`
	ProblemName      string   `json:"problem_name" form:"problem_name"`
	TargetLanguages  []string `json:"target_languages" form:"target_languages"`
}

// SubmissionResult is what a successful pipeline run returns: the extracted
// problem plus every path that was actually written, in write order.
// Translation targets that failed are simply absent from FilesPushed.
type SubmissionResult struct {
	Problem         *ProblemDetails `json:"problem"`
	FilesPushed     []string        `json:"files_pushed"`
	FolderStructure string          `json:"folder_structure"`
}
