package strength

import (
	"math"
	"unicode/utf8"
)

// Rating is a coarse label for a total score.
type Rating string

const (
	RatingWeak     Rating = "Weak"
	RatingModerate Rating = "Moderate"
	RatingStrong   Rating = "Strong"
)

// RatingFor maps a total score onto a Rating.
func RatingFor(total float64) Rating {
	switch {
	case total < 0.4:
		return RatingWeak
	case total < 0.7:
		return RatingModerate
	default:
		return RatingStrong
	}
}

// Result is the outcome of analyzing one password.
type Result struct {
	Scores
	TotalScore       float64
	Rating           Rating
	CrackTimeSeconds float64
	CrackTimeDisplay string
	Suggestions      []string
}

// Analyzer scores passwords against a fixed common-password set.
// It holds no mutable state and may be shared across goroutines.
type Analyzer struct {
	common *CommonPasswordSet
}

// NewAnalyzer creates an Analyzer. A nil set disables dictionary matches.
func NewAnalyzer(common *CommonPasswordSet) *Analyzer {
	return &Analyzer{common: common}
}

// Analyze scores password. It never fails.
func (a *Analyzer) Analyze(password string) Result {
	classes := Classify(password)
	length := utf8.RuneCountInString(password)

	scores := Scores{
		Length:     LengthScore(password),
		Complexity: ComplexityScore(classes),
		Dictionary: DictionaryScore(a.common, password),
		BruteForce: BruteForceScore(classes, length),
	}

	seconds := math.Inf(1)
	if length <= MaxBruteForceLength {
		seconds = EstimateCrackSeconds(classes, length)
	}

	total := scores.Total()
	return Result{
		Scores:           scores,
		TotalScore:       total,
		Rating:           RatingFor(total),
		CrackTimeSeconds: seconds,
		CrackTimeDisplay: ReadableDuration(seconds),
		Suggestions:      suggestionsFor(classes, scores),
	}
}
