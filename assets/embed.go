// Package assets embeds the default word lists.
package assets

import "embed"

// File names inside FS. The allowed list holds extra guesses only; it does
// not repeat the answers.
const (
	AnswersFile = "answers.txt"
	AllowedFile = "allowed.txt"
)

//go:embed answers.txt allowed.txt
var FS embed.FS
