// Package words supplies secret answers and decides which guesses count as
// real words.
package words

import (
	"context"
	"errors"
)

// ErrSourceUnavailable is returned once a source has given up on a request.
var ErrSourceUnavailable = errors.New("words: source unavailable")

// Source is the capability the game controller consumes.
//
// Answer returns a lowercase word of gamedata.WordLength letters. Sources may
// retry internally but must eventually fail with ErrSourceUnavailable rather
// than block. IsValidWord may be called from any goroutine.
type Source interface {
	Answer(ctx context.Context) (string, error)
	IsValidWord(ctx context.Context, word string) (bool, error)
}
