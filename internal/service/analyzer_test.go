package service

import (
	"strings"
	"testing"

	"github.com/vaultpass/passcheck-go/internal/strength"
)

func TestAnalyze_CommonPassword(t *testing.T) {
	svc := NewAnalyzerService(strength.DefaultCommonPasswords())

	resp := svc.Analyze("password")
	if resp.DictionaryScore != 0 {
		t.Errorf("expected dictionary score 0, got %v", resp.DictionaryScore)
	}
	if resp.LengthScore != 0.5 {
		t.Errorf("expected length score 0.5, got %v", resp.LengthScore)
	}
	if resp.ComplexityScore != 0.25 {
		t.Errorf("expected complexity score 0.25, got %v", resp.ComplexityScore)
	}
	if resp.Rating != "Weak" {
		t.Errorf("expected rating Weak, got %q", resp.Rating)
	}
	if resp.CrackTimeSeconds == nil {
		t.Fatal("expected crack time seconds")
	}
}

func TestAnalyze_UnboundedCrackTimeOmitted(t *testing.T) {
	svc := NewAnalyzerService(nil)

	resp := svc.Analyze(strings.Repeat("a", strength.MaxBruteForceLength+1))
	if resp.CrackTimeSeconds != nil {
		t.Errorf("expected nil crack time seconds, got %v", *resp.CrackTimeSeconds)
	}
	if resp.CrackTimeDisplay != "centuries" {
		t.Errorf("expected display %q, got %q", "centuries", resp.CrackTimeDisplay)
	}
}

func TestAnalyze_EmptyPassword(t *testing.T) {
	svc := NewAnalyzerService(strength.DefaultCommonPasswords())

	resp := svc.Analyze("")
	if resp.TotalScore != 0.25 {
		t.Errorf("expected total 0.25, got %v", resp.TotalScore)
	}
	if len(resp.Suggestions) != 6 {
		t.Errorf("expected 6 suggestions, got %q", resp.Suggestions)
	}
}
