package strength

import (
	"math"
	"unicode/utf8"
)

const (
	lowerCharsetSize = 26
	upperCharsetSize = 26
	digitCharsetSize = 10

	// SymbolCharsetSize is the number of printable ASCII punctuation
	// characters an attacker is assumed to try per position.
	SymbolCharsetSize = 32

	// GuessesPerSecond is the assumed attacker throughput.
	GuessesPerSecond = 1e9

	// MaxBruteForceLength is the longest password that is run through the
	// exponentiation. Anything longer scores 1 outright.
	MaxBruteForceLength = 100
)

// Crack-time thresholds in seconds.
const (
	hour  = 3600
	day   = 86400
	month = 30 * day
	year  = 365 * day
)

// LengthScore buckets the length of password, counted in runes.
func LengthScore(password string) float64 {
	n := utf8.RuneCountInString(password)
	switch {
	case n < 8:
		return 0
	case n < 12:
		return 0.5
	case n < 16:
		return 0.75
	default:
		return 1
	}
}

// ComplexityScore adds 0.25 for every class present.
func ComplexityScore(c ClassPresence) float64 {
	return float64(c.Count()) * 0.25
}

// DictionaryScore is 0 when password is a known weak password, else 1.
func DictionaryScore(set *CommonPasswordSet, password string) float64 {
	if set.Contains(password) {
		return 0
	}
	return 1
}

// CharsetSize returns the alphabet an attacker has to cover per position.
func CharsetSize(c ClassPresence) int {
	size := 0
	if c.Lower {
		size += lowerCharsetSize
	}
	if c.Upper {
		size += upperCharsetSize
	}
	if c.Digit {
		size += digitCharsetSize
	}
	if c.Symbol {
		size += SymbolCharsetSize
	}
	return size
}

// EstimateCrackSeconds returns the time needed to exhaust the keyspace of
// a password with the given classes and length. The result saturates to
// +Inf for very large keyspaces.
func EstimateCrackSeconds(c ClassPresence, length int) float64 {
	charset := CharsetSize(c)
	if charset == 0 {
		charset = 1
	}
	combinations := math.Pow(float64(charset), float64(length))
	return combinations / GuessesPerSecond
}

// BruteForceScore buckets the estimated crack time.
func BruteForceScore(c ClassPresence, length int) float64 {
	if length > MaxBruteForceLength {
		return 1
	}
	return crackTimeBucket(EstimateCrackSeconds(c, length))
}

func crackTimeBucket(seconds float64) float64 {
	switch {
	case seconds < hour:
		return 0
	case seconds < day:
		return 0.25
	case seconds < month:
		return 0.5
	case seconds < year:
		return 0.75
	default:
		return 1
	}
}

// TotalScore is the mean of the four sub-scores.
func TotalScore(length, complexity, dictionary, bruteForce float64) float64 {
	return (length + complexity + dictionary + bruteForce) / 4
}
