package strength

const (
	SuggestLength     = "increase length (16+ recommended)"
	SuggestUppercase  = "add uppercase"
	SuggestLowercase  = "add lowercase"
	SuggestDigit      = "add digit"
	SuggestSymbol     = "add symbol"
	SuggestCommon     = "avoid common passwords"
	SuggestBruteForce = "increase complexity against brute-force attacks"
)

// Scores holds the four sub-scores of a password.
type Scores struct {
	Length     float64
	Complexity float64
	Dictionary float64
	BruteForce float64
}

// Total returns the mean of the sub-scores.
func (s Scores) Total() float64 {
	return TotalScore(s.Length, s.Complexity, s.Dictionary, s.BruteForce)
}

// Suggestions derives remediation advice from the deficits in scores.
// Checks run in a fixed order and several may fire.
func Suggestions(password string, scores Scores) []string {
	return suggestionsFor(Classify(password), scores)
}

func suggestionsFor(c ClassPresence, scores Scores) []string {
	out := []string{}

	if scores.Length < 1 {
		out = append(out, SuggestLength)
	}

	if scores.Complexity < 1 {
		if !c.Upper {
			out = append(out, SuggestUppercase)
		}
		if !c.Lower {
			out = append(out, SuggestLowercase)
		}
		if !c.Digit {
			out = append(out, SuggestDigit)
		}
		if !c.Symbol {
			out = append(out, SuggestSymbol)
		}
	}

	if scores.Dictionary < 1 {
		out = append(out, SuggestCommon)
	}

	if scores.BruteForce < 0.5 {
		out = append(out, SuggestBruteForce)
	}

	return out
}
