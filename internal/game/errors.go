package game

import "errors"

// User-correctable rejections. The board is left exactly as it was.
var (
	ErrIncompleteWord = errors.New("game: word is incomplete")
	ErrInvalidPattern = errors.New("game: guess rejected by rule")
	ErrWordNotFound   = errors.New("game: word not in dictionary")
)

var errNotStarted = errors.New("game: not started")

// Toast messages.
const (
	msgIncomplete  = "Word is incomplete"
	msgInvalid     = "Invalid word!"
	msgNotFound    = "Word not in dictionary!"
	msgUnavailable = "Error fetching word!"
	msgWon         = "Great Job!"
	msgLost        = "OOPs! You Lost. The word was: "
	msgReveal      = "Word: "
)
