package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

const (
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	DigitChars     = "0123456789"
	SymbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	allChars = LowercaseChars + UppercaseChars + DigitChars + SymbolChars

	DefaultLength = 16
	MinLength     = 4
)

var (
	// ErrInvalidArgument is wrapped by every validation error from Generate.
	ErrInvalidArgument = errors.New("invalid argument")

	ErrLengthTooShort = fmt.Errorf("%w: password length must be at least %d", ErrInvalidArgument, MinLength)
)

// requiredSets lists the alphabets every generated password draws from at least once.
var requiredSets = []string{LowercaseChars, UppercaseChars, DigitChars, SymbolChars}

// Generate creates a cryptographically secure random password of the given
// length containing at least one lowercase letter, uppercase letter, digit
// and symbol.
func Generate(length int) (string, error) {
	if length < MinLength {
		return "", ErrLengthTooShort
	}

	result := make([]byte, length)

	for i, charset := range requiredSets {
		ch, err := randChar(charset)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	for i := len(requiredSets); i < length; i++ {
		ch, err := randChar(allChars)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	// The required characters sit at the front until shuffled.
	if err := secureShuffle(result); err != nil {
		return "", err
	}

	return string(result), nil
}

// randChar picks a random character from charset using crypto/rand.
func randChar(charset string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, fmt.Errorf("reading random index: %w", err)
	}
	return charset[n.Int64()], nil
}

// secureShuffle performs a Fisher-Yates shuffle using crypto/rand.
func secureShuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return fmt.Errorf("reading shuffle index: %w", err)
		}
		data[i], data[j.Int64()] = data[j.Int64()], data[i]
	}
	return nil
}
