package service

import (
	"math"

	"github.com/vaultpass/passcheck-go/internal/model"
	"github.com/vaultpass/passcheck-go/internal/strength"
)

// AnalyzerService turns strength results into API responses.
type AnalyzerService struct {
	analyzer *strength.Analyzer
}

// NewAnalyzerService creates a new AnalyzerService backed by the given
// common-password set.
func NewAnalyzerService(common *strength.CommonPasswordSet) *AnalyzerService {
	return &AnalyzerService{analyzer: strength.NewAnalyzer(common)}
}

// Analyze scores password. It never fails.
func (s *AnalyzerService) Analyze(password string) model.AnalyzeResponse {
	res := s.analyzer.Analyze(password)

	resp := model.AnalyzeResponse{
		LengthScore:      res.Length,
		ComplexityScore:  res.Complexity,
		DictionaryScore:  res.Dictionary,
		BruteforceScore:  res.BruteForce,
		TotalScore:       res.TotalScore,
		Rating:           string(res.Rating),
		CrackTimeDisplay: res.CrackTimeDisplay,
		Suggestions:      res.Suggestions,
	}
	if !math.IsInf(res.CrackTimeSeconds, 0) && !math.IsNaN(res.CrackTimeSeconds) {
		seconds := res.CrackTimeSeconds
		resp.CrackTimeSeconds = &seconds
	}
	return resp
}
