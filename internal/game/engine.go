// internal/game/engine.go
//
// Core game engine for a single wordlet session.
// Responsibilities:
//   - Create new games with fixed dimensions (6 rows x 5 letters).
//   - Validate guesses (game over, length, duplicates, dictionary, hard mode).
//   - Score guesses using the classic two-pass algorithm.
//   - Track letter knowledge, confirmed columns, row states and the
//     playing → won/lost transitions.
//
// Notes:
//   - The engine does no I/O and keeps no global state; the word list and the
//     random answer pick come from the Dictionary passed in Options.
//   - Answers and guesses are lowercased, matching the dictionary lookup.
//   - Callers must serialize calls against one Game.
package game

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Options configures New.
type Options struct {
	// Answer fixes the secret word. Empty means Dictionary.RandomWord().
	Answer     string
	Difficulty Difficulty
	Dictionary Dictionary
}

// Game holds the state of a single game.
type Game struct {
	id         string
	answer     []rune
	difficulty Difficulty
	status     Status
	dict       Dictionary

	guesses          []WordGuess
	letters          map[rune]HitAccuracy
	correctPositions [WordLength]bool
	rows             [MaxGuesses]RowState
}

// New constructs a game. The answer, explicit or picked from the
// dictionary, must be exactly WordLength letters.
func New(opts Options) (*Game, error) {
	if opts.Dictionary == nil {
		return nil, ErrNoDictionary
	}
	ans := opts.Answer
	if ans == "" {
		ans = opts.Dictionary.RandomWord()
	}
	ans = strings.ToLower(ans)
	if utf8.RuneCountInString(ans) != WordLength {
		return nil, ErrInvalidAnswer
	}
	g := &Game{
		id:         uuid.NewString(),
		answer:     []rune(ans),
		difficulty: opts.Difficulty,
		status:     InProgress,
		dict:       opts.Dictionary,
		guesses:    make([]WordGuess, 0, MaxGuesses),
		letters:    make(map[rune]HitAccuracy),
	}
	g.recalculateRowStates()
	return g, nil
}

// ID is a random identifier used to correlate logs and stored sessions.
func (g *Game) ID() string { return g.id }

func (g *Game) Status() Status { return g.status }

func (g *Game) Difficulty() Difficulty { return g.difficulty }

// Answer reveals the answer, but only after the game has been lost.
func (g *Game) Answer() (string, error) {
	if g.status != Lost {
		return "", ErrGameNotLost
	}
	return string(g.answer), nil
}

// Guesses returns the accepted guesses in order.
func (g *Game) Guesses() []WordGuess {
	out := make([]WordGuess, len(g.guesses))
	copy(out, g.guesses)
	return out
}

// RowStates returns the display state of all MaxGuesses rows.
func (g *Game) RowStates() []RowState {
	out := make([]RowState, MaxGuesses)
	copy(out, g.rows[:])
	return out
}

// LetterState returns the best accuracy seen so far for r. ok is false if
// r has never been guessed.
func (g *Game) LetterState(r rune) (acc HitAccuracy, ok bool) {
	acc, ok = g.letters[unicode.ToLower(r)]
	return acc, ok
}

// SubmitGuess validates and scores a guess, mutating the game state only
// when the guess is accepted. Input is lowercased first, so "CRANE" and
// "crane" are the same guess. The returned error is nil for a valid guess;
// otherwise it is one of the Err* sentinels, a *LetterMismatchError or a
// *MissingLetterError.
//
// Validation order:
//   - Game must not be over.
//   - Guess must be exactly WordLength characters.
//   - Guess must not repeat an earlier guess.
//   - Guess must be in the dictionary.
//   - Hard mode: confirmed columns must be repeated, then uncovered letters
//     must be reused.
func (g *Game) SubmitGuess(input string) (Status, error) {
	if g.status.Over() {
		return g.status, ErrGameIsAlreadyOver
	}
	input = strings.ToLower(input)
	guess := []rune(input)
	if len(guess) != WordLength {
		return g.status, ErrIncorrectCharacterCount
	}
	if g.alreadyGuessed(input) {
		return g.status, ErrDuplicateGuess
	}
	if !g.dict.Contains(input) {
		return g.status, ErrNotInDictionary
	}
	if g.difficulty == Hard {
		if err := g.checkHardMode(input, guess); err != nil {
			return g.status, err
		}
	}

	wg := g.score(guess)
	g.guesses = append(g.guesses, wg)
	g.mergeLetters(wg)

	if input == string(g.answer) {
		g.status = Won
	} else if len(g.guesses) == MaxGuesses {
		g.status = Lost
	}
	g.recalculateRowStates()
	return g.status, nil
}

func (g *Game) alreadyGuessed(input string) bool {
	for _, wg := range g.guesses {
		if wg.Word() == input {
			return true
		}
	}
	return false
}

// checkHardMode scans confirmed columns left to right, then the answer's
// letters in answer order.
func (g *Game) checkHardMode(input string, guess []rune) error {
	for i, confirmed := range g.correctPositions {
		if confirmed && guess[i] != g.answer[i] {
			return &LetterMismatchError{Expected: g.answer[i], Position: i + 1}
		}
	}
	for _, r := range g.answer {
		if g.uncovered(r) && !strings.ContainsRune(input, r) {
			return &MissingLetterError{Letter: r}
		}
	}
	return nil
}

// uncovered reports whether r is known to be in the answer.
func (g *Game) uncovered(r rune) bool {
	acc, ok := g.letters[r]
	return ok && acc != NotInWord
}

// score implements the two-pass algorithm.
//
// Pass 1:
//   - Mark exact matches InRightPlace, consume them from the letter counts
//     and record the column as confirmed.
//
// Pass 2:
//   - Left to right over the rest: InWord while the letter still has
//     unconsumed occurrences in the answer, otherwise NotInWord.
//
// Exact matches are consumed first so repeated letters in the guess never
// earn more marks than the answer has occurrences.
func (g *Game) score(guess []rune) WordGuess {
	remaining := make(map[rune]int, WordLength)
	for _, r := range g.answer {
		remaining[r]++
	}

	var wg WordGuess
	var scored [WordLength]bool

	for i, r := range guess {
		if r == g.answer[i] {
			wg.Letters[i] = GuessLetter{Letter: r, Accuracy: InRightPlace}
			remaining[r]--
			scored[i] = true
			g.correctPositions[i] = true
		}
	}

	for i, r := range guess {
		if scored[i] {
			continue
		}
		acc := NotInWord
		if remaining[r] >= 1 {
			acc = InWord
			remaining[r]--
		}
		wg.Letters[i] = GuessLetter{Letter: r, Accuracy: acc}
	}
	return wg
}

// mergeLetters records each letter's accuracy, never downgrading.
func (g *Game) mergeLetters(wg WordGuess) {
	for _, gl := range wg.Letters {
		prev, ok := g.letters[gl.Letter]
		if !ok || gl.Accuracy.Better(prev) {
			g.letters[gl.Letter] = gl.Accuracy
		}
	}
}

// recalculateRowStates must run after the status transition: a won game
// has no Current row.
func (g *Game) recalculateRowStates() {
	n := len(g.guesses)
	for i := range g.rows {
		switch {
		case n == MaxGuesses, i < n:
			g.rows[i] = RowAlreadyGuessed
		case i == n && g.status != Won:
			g.rows[i] = RowCurrent
		default:
			g.rows[i] = RowEmpty
		}
	}
}
