package gamedata

import (
	"errors"
	"strings"
)

// WordLength is the length of every word in the lists.
const WordLength = 5

// WordLists is the structure of words.json.
type WordLists struct {
	Answers []string `json:"answers"` // Words that may be picked as the secret
	Allowed []string `json:"allowed"` // Extra accepted guesses (answers are always accepted)
}

// LoadWordLists loads the embedded word lists, keeping only well-formed words.
func LoadWordLists() (WordLists, error) {
	lists, err := Load[WordLists]("words.json")
	if err != nil {
		return WordLists{}, err
	}
	lists.Answers = Normalize(lists.Answers)
	lists.Allowed = Normalize(lists.Allowed)
	if len(lists.Answers) == 0 {
		return WordLists{}, errors.New("no answers in words.json")
	}
	return lists, nil
}

// Normalize lowercases and trims each word, dropping anything that is not
// exactly WordLength ASCII letters. Duplicates are removed, order kept.
func Normalize(words []string) []string {
	out := make([]string, 0, len(words))
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if !IsWord(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// IsWord reports whether w is exactly WordLength lowercase ASCII letters.
func IsWord(w string) bool {
	if len(w) != WordLength {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}
