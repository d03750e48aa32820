// internal/game/types.go
//
// Core type definitions for the wordlet game engine.
// Defines:
//   - Difficulty, Status, RowState: small enums describing a game.
//   - HitAccuracy: per-letter result of a guess, with an explicit ranking.
//   - GuessLetter / WordGuess: an accepted, scored guess.
//   - Dictionary: the word-list collaborator the engine validates against.

package game

const (
	// WordLength is the number of letters in the answer and in every guess.
	WordLength = 5
	// MaxGuesses is the number of rows on the board.
	MaxGuesses = 6
)

// Difficulty is fixed when a game is created.
type Difficulty int

const (
	Easy Difficulty = iota
	// Hard requires every guess to reuse letters that earlier guesses uncovered.
	Hard
)

func (d Difficulty) String() string {
	if d == Hard {
		return "hard"
	}
	return "easy"
}

// ParseDifficulty maps "hard" to Hard and anything else to Easy.
func ParseDifficulty(s string) Difficulty {
	if s == "hard" {
		return Hard
	}
	return Easy
}

// Status is the coarse game state. Won and Lost are terminal.
type Status int

const (
	InProgress Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "playing"
	}
}

// Over reports whether s is terminal.
func (s Status) Over() bool { return s == Won || s == Lost }

// HitAccuracy describes how a guessed letter relates to the answer.
type HitAccuracy int

const (
	NotInWord HitAccuracy = iota + 1
	InWord
	InRightPlace
)

// rank orders accuracies for the letter registry: a letter's entry is only
// ever replaced by one with a strictly higher rank.
func (h HitAccuracy) rank() int {
	switch h {
	case InRightPlace:
		return 3
	case InWord:
		return 2
	case NotInWord:
		return 1
	default:
		return 0
	}
}

// Better reports whether h carries strictly more information than other.
func (h HitAccuracy) Better(other HitAccuracy) bool { return h.rank() > other.rank() }

func (h HitAccuracy) String() string {
	switch h {
	case InRightPlace:
		return "in_right_place"
	case InWord:
		return "in_word"
	case NotInWord:
		return "not_in_word"
	default:
		return "unknown"
	}
}

// RowState is the display state of one board row.
type RowState int

const (
	RowEmpty RowState = iota
	RowCurrent
	RowAlreadyGuessed
)

func (r RowState) String() string {
	switch r {
	case RowCurrent:
		return "current"
	case RowAlreadyGuessed:
		return "already_guessed"
	default:
		return "empty"
	}
}

// GuessLetter is one scored letter of a guess.
type GuessLetter struct {
	Letter   rune
	Accuracy HitAccuracy
}

// WordGuess is an accepted guess. It is never modified after scoring.
type WordGuess struct {
	Letters [WordLength]GuessLetter
}

// Word returns the guessed word.
func (w WordGuess) Word() string {
	rs := make([]rune, WordLength)
	for i, gl := range w.Letters {
		rs[i] = gl.Letter
	}
	return string(rs)
}

// Dictionary is the set of playable words.
// RandomWord is only consulted when a game is created without an explicit answer.
type Dictionary interface {
	Contains(word string) bool
	RandomWord() string
}
