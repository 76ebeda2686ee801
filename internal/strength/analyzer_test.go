package strength

import (
	"math"
	"reflect"
	"strings"
	"sync"
	"testing"
)

func TestCommonPasswordSet(t *testing.T) {
	set := NewCommonPasswordSet("Password", "  letmein ", "")

	if set.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", set.Len())
	}

	tests := []struct {
		password string
		want     bool
	}{
		{"password", true},
		{"PASSWORD", true},
		{"PaSsWoRd", true},
		{"letmein", true},
		{"password1", false},
		{"my password", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := set.Contains(tt.password); got != tt.want {
			t.Errorf("Contains(%q) = %v, want %v", tt.password, got, tt.want)
		}
	}
}

func TestNilCommonPasswordSet(t *testing.T) {
	var set *CommonPasswordSet
	if set.Contains("password") {
		t.Error("nil set should match nothing")
	}
	if DictionaryScore(set, "password") != 1 {
		t.Error("nil set should give dictionary score 1")
	}
}

func TestDefaultCommonPasswords(t *testing.T) {
	set := DefaultCommonPasswords()
	for _, pw := range []string{"password", "123456", "qwerty", "admin", "letmein", "welcome",
		"monkey", "dragon", "baseball", "football", "secret", "abc123"} {
		if !set.Contains(pw) {
			t.Errorf("default set missing %q", pw)
		}
	}
	if set.Contains("Tr0ub4dor&3") {
		t.Error("default set should not contain Tr0ub4dor&3")
	}
}

func TestLoadCommonPasswords(t *testing.T) {
	base := NewCommonPasswordSet("password")

	set, err := LoadCommonPasswords(base, strings.NewReader("Hunter2\n\ncorrecthorse\r\n"))
	if err != nil {
		t.Fatalf("LoadCommonPasswords() unexpected error: %v", err)
	}

	for _, pw := range []string{"password", "hunter2", "CorrectHorse"} {
		if !set.Contains(pw) {
			t.Errorf("merged set missing %q", pw)
		}
	}
	if base.Contains("hunter2") {
		t.Error("LoadCommonPasswords mutated the base set")
	}
}

func TestAnalyzeScenarios(t *testing.T) {
	a := NewAnalyzer(DefaultCommonPasswords())

	tests := []struct {
		name     string
		password string
		scores   Scores
		total    float64
		rating   Rating
		suggest  []string
	}{
		{
			name:     "empty",
			password: "",
			scores:   Scores{Length: 0, Complexity: 0, Dictionary: 1, BruteForce: 0},
			total:    0.25,
			rating:   RatingWeak,
			suggest: []string{SuggestLength, SuggestUppercase, SuggestLowercase,
				SuggestDigit, SuggestSymbol, SuggestBruteForce},
		},
		{
			name:     "common password",
			password: "password",
			scores:   Scores{Length: 0.5, Complexity: 0.25, Dictionary: 0, BruteForce: 0},
			total:    0.1875,
			rating:   RatingWeak,
			suggest: []string{SuggestLength, SuggestUppercase, SuggestDigit,
				SuggestSymbol, SuggestCommon, SuggestBruteForce},
		},
		{
			name:     "common password in caps",
			password: "PASSWORD",
			scores:   Scores{Length: 0.5, Complexity: 0.25, Dictionary: 0, BruteForce: 0},
			total:    0.1875,
			rating:   RatingWeak,
			suggest: []string{SuggestLength, SuggestLowercase, SuggestDigit,
				SuggestSymbol, SuggestCommon, SuggestBruteForce},
		},
		{
			name:     "mixed 11 characters",
			password: "Tr0ub4dor&3",
			scores:   Scores{Length: 0.5, Complexity: 1, Dictionary: 1, BruteForce: 1},
			total:    0.875,
			rating:   RatingStrong,
			suggest:  []string{SuggestLength},
		},
		{
			name:     "16 lowercase",
			password: strings.Repeat("a", 16),
			scores:   Scores{Length: 1, Complexity: 0.25, Dictionary: 1, BruteForce: 1},
			total:    0.8125,
			rating:   RatingStrong,
			suggest:  []string{SuggestUppercase, SuggestDigit, SuggestSymbol},
		},
		{
			name:     "no deficits",
			password: "Xk9#mP2$vL7&nQ4!",
			scores:   Scores{Length: 1, Complexity: 1, Dictionary: 1, BruteForce: 1},
			total:    1,
			rating:   RatingStrong,
			suggest:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Analyze(tt.password)

			if got.Scores != tt.scores {
				t.Errorf("Scores = %+v, want %+v", got.Scores, tt.scores)
			}
			if got.TotalScore != tt.total {
				t.Errorf("TotalScore = %v, want %v", got.TotalScore, tt.total)
			}
			if got.Rating != tt.rating {
				t.Errorf("Rating = %q, want %q", got.Rating, tt.rating)
			}
			if !reflect.DeepEqual(got.Suggestions, tt.suggest) {
				t.Errorf("Suggestions = %q, want %q", got.Suggestions, tt.suggest)
			}
		})
	}
}

func TestAnalyzeShortSingleClassScoresBelowMixed(t *testing.T) {
	a := NewAnalyzer(nil)

	single := a.Analyze("zzzzzzzz")
	mixed := a.Analyze("zQ7!zQ7!")
	if single.BruteForce >= mixed.BruteForce {
		t.Errorf("single-class brute-force %v should be below mixed %v", single.BruteForce, mixed.BruteForce)
	}
}

func TestAnalyzeCrackTime(t *testing.T) {
	a := NewAnalyzer(nil)

	got := a.Analyze("password")
	want := math.Pow(26, 8) / GuessesPerSecond
	if got.CrackTimeSeconds != want {
		t.Errorf("CrackTimeSeconds = %v, want %v", got.CrackTimeSeconds, want)
	}
	if got.CrackTimeDisplay != "3.48 minutes" {
		t.Errorf("CrackTimeDisplay = %q, want %q", got.CrackTimeDisplay, "3.48 minutes")
	}

	long := a.Analyze(strings.Repeat("a", MaxBruteForceLength+1))
	if !math.IsInf(long.CrackTimeSeconds, 1) {
		t.Errorf("CrackTimeSeconds for long password = %v, want +Inf", long.CrackTimeSeconds)
	}
	if long.BruteForce != 1 {
		t.Errorf("BruteForce for long password = %v, want 1", long.BruteForce)
	}
}

func TestAnalyzeTotalInRange(t *testing.T) {
	a := NewAnalyzer(DefaultCommonPasswords())
	inputs := []string{"", " ", "a", "password", "😀😀😀😀😀😀😀😀", "Tr0ub4dor&3",
		strings.Repeat("Ab1!", 50), strings.Repeat("x", 10000)}

	for _, in := range inputs {
		got := a.Analyze(in)
		if got.TotalScore < 0 || got.TotalScore > 1 {
			t.Errorf("TotalScore(%q) = %v out of range", in, got.TotalScore)
		}
		if got.Suggestions == nil {
			t.Errorf("Suggestions(%q) is nil", in)
		}
	}
}

func TestAnalyzeConcurrent(t *testing.T) {
	a := NewAnalyzer(DefaultCommonPasswords())
	want := a.Analyze("Tr0ub4dor&3")

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := a.Analyze("Tr0ub4dor&3")
			if got.TotalScore != want.TotalScore {
				t.Errorf("concurrent TotalScore = %v, want %v", got.TotalScore, want.TotalScore)
			}
		}()
	}
	wg.Wait()
}

func TestSuggestionsAllClassesMissingReported(t *testing.T) {
	got := Suggestions("", Scores{Length: 1, Complexity: 0, Dictionary: 1, BruteForce: 1})
	want := []string{SuggestUppercase, SuggestLowercase, SuggestDigit, SuggestSymbol}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Suggestions = %q, want %q", got, want)
	}
}

func TestSuggestionsBruteForceThreshold(t *testing.T) {
	full := Scores{Length: 1, Complexity: 1, Dictionary: 1}

	full.BruteForce = 0.25
	if got := Suggestions("Ab1!", full); !reflect.DeepEqual(got, []string{SuggestBruteForce}) {
		t.Errorf("BruteForce 0.25: Suggestions = %q", got)
	}

	full.BruteForce = 0.5
	if got := Suggestions("Ab1!", full); len(got) != 0 {
		t.Errorf("BruteForce 0.5: Suggestions = %q, want none", got)
	}
}
