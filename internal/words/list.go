package words

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"sync"

	"github.com/samdwyer/wordgrid/internal/gamedata"
)

// ListSource serves answers and validates guesses from in-memory word lists.
type ListSource struct {
	answers []string
	allowed map[string]struct{} // answers ∪ extra guesses

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// NewListSource builds a source from an answers list and extra allowed guesses.
// Words are normalized; answers are always accepted as guesses.
func NewListSource(answers, allowed []string, rng *rand.Rand) (*ListSource, error) {
	answers = gamedata.Normalize(answers)
	if len(answers) == 0 {
		return nil, errors.New("words: answers list is empty")
	}

	set := make(map[string]struct{}, len(answers)+len(allowed))
	for _, w := range answers {
		set[w] = struct{}{}
	}
	for _, w := range gamedata.Normalize(allowed) {
		set[w] = struct{}{}
	}

	return &ListSource{answers: answers, allowed: set, rng: rng}, nil
}

// LoadListSource picks word lists the same way on every start:
//  1. answersPath and allowedPath both set: one file each.
//  2. only allowedPath set: that file serves as both lists.
//  3. neither set: the embedded lists.
func LoadListSource(answersPath, allowedPath string, rng *rand.Rand) (*ListSource, error) {
	switch {
	case answersPath != "" && allowedPath != "":
		answers, err := readWordFile(answersPath)
		if err != nil {
			return nil, err
		}
		allowed, err := readWordFile(allowedPath)
		if err != nil {
			return nil, err
		}
		return NewListSource(answers, allowed, rng)

	case allowedPath != "":
		allowed, err := readWordFile(allowedPath)
		if err != nil {
			return nil, err
		}
		return NewListSource(allowed, nil, rng)

	case answersPath != "":
		return nil, errors.New("words: answers file given without an allowed file")

	default:
		lists, err := gamedata.LoadWordLists()
		if err != nil {
			return nil, err
		}
		return NewListSource(lists.Answers, lists.Allowed, rng)
	}
}

// Answer returns a random answer.
func (s *ListSource) Answer(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	s.mu.Lock()
	i := s.rng.Intn(len(s.answers))
	s.mu.Unlock()
	return s.answers[i], nil
}

// IsValidWord reports whether word is in the allowed set (case-insensitive).
func (s *ListSource) IsValidWord(ctx context.Context, word string) (bool, error) {
	_, ok := s.allowed[strings.ToLower(word)]
	return ok, nil
}

// Stats returns the number of answers and accepted guesses.
func (s *ListSource) Stats() (answers, allowed int) {
	return len(s.answers), len(s.allowed)
}

// readWordFile loads one word per line; malformed lines are dropped later by
// gamedata.Normalize.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	return out, nil
}
