// Package gamedata provides the embedded word lists and a loader for them.
package gamedata

import "embed"

// dataFS embeds the word list files at build time.
//
//go:embed *.json
var dataFS embed.FS
