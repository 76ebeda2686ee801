package strength

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"strings"
)

//go:embed common_passwords.txt
var commonPasswordsRaw string

// CommonPasswordSet is an immutable set of known weak passwords, stored
// lowercased. It is safe for concurrent reads.
type CommonPasswordSet struct {
	words map[string]struct{}
}

// NewCommonPasswordSet builds a set from words. Blank entries are skipped.
func NewCommonPasswordSet(words ...string) *CommonPasswordSet {
	s := &CommonPasswordSet{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		s.add(w)
	}
	return s
}

// DefaultCommonPasswords returns the embedded word list.
func DefaultCommonPasswords() *CommonPasswordSet {
	return NewCommonPasswordSet(strings.Split(commonPasswordsRaw, "\n")...)
}

// LoadCommonPasswords reads one password per line from r and returns a new
// set holding those entries merged with the ones in base.
func LoadCommonPasswords(base *CommonPasswordSet, r io.Reader) (*CommonPasswordSet, error) {
	s := &CommonPasswordSet{words: make(map[string]struct{}, base.Len())}
	if base != nil {
		for w := range base.words {
			s.words[w] = struct{}{}
		}
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		s.add(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading common passwords: %w", err)
	}
	return s, nil
}

func (s *CommonPasswordSet) add(w string) {
	w = strings.TrimSpace(w)
	if w == "" {
		return
	}
	s.words[strings.ToLower(w)] = struct{}{}
}

// Contains reports whether password matches an entry, ignoring case.
func (s *CommonPasswordSet) Contains(password string) bool {
	if s == nil {
		return false
	}
	_, ok := s.words[strings.ToLower(password)]
	return ok
}

// Len returns the number of entries.
func (s *CommonPasswordSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}
