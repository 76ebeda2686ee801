package model

// AnalyzeRequest represents a password analysis request.
// Password is a pointer so a missing field can be told apart from "".
type AnalyzeRequest struct {
	Password *string `json:"password"`
}

// AnalyzeResponse represents the scores and advice for one password.
type AnalyzeResponse struct {
	LengthScore     float64 `json:"length_score"`
	ComplexityScore float64 `json:"complexity_score"`
	DictionaryScore float64 `json:"dictionary_score"`
	BruteforceScore float64 `json:"bruteforce_score"`
	TotalScore      float64 `json:"total_score"`
	Rating          string  `json:"rating"`
	// CrackTimeSeconds is omitted when the estimate is unbounded.
	CrackTimeSeconds *float64 `json:"crack_time_seconds,omitempty"`
	CrackTimeDisplay string   `json:"crack_time_display"`
	Suggestions      []string `json:"suggestions"`
}
