package ui

import (
	"errors"
	"fmt"

	"github.com/robalobadob/wordlet/internal/game"
)

// DisclaimerKind selects the header message.
type DisclaimerKind int

const (
	NoDisclaimer DisclaimerKind = iota
	Welcome
	MoveFeedback
	GameWon
	GameOver
)

// Disclaimer is the message shown above the board.
type Disclaimer struct {
	Kind   DisclaimerKind
	Err    error  // MoveFeedback only
	Answer string // GameOver only
	Replay bool   // GameWon/GameOver: another game can be started
}

// Feedback wraps a rejected guess.
func Feedback(err error) Disclaimer { return Disclaimer{Kind: MoveFeedback, Err: err} }

// Message returns the header text for d.
func Message(d Disclaimer) string {
	switch d.Kind {
	case Welcome:
		return "Welcome to Wordlet. You have six tries to guess the answer. Good luck!"
	case GameWon:
		return "Game is over! You win! " + exitHint(d.Replay)
	case GameOver:
		return fmt.Sprintf("Game over! The answer was '%s'. %s", d.Answer, exitHint(d.Replay))
	case MoveFeedback:
		return feedback(d.Err)
	default:
		return ""
	}
}

func exitHint(replay bool) string {
	if replay {
		return "Press Enter to play again or Esc to exit."
	}
	return "Press any key to exit."
}

func feedback(err error) string {
	var mismatch *game.LetterMismatchError
	var missing *game.MissingLetterError
	switch game.GuessResultOf(err) {
	case game.Valid:
		return ""
	case game.DoesNotIncludeRequiredLetter:
		errors.As(err, &missing)
		return fmt.Sprintf("Does not include the required letter '%c'", missing.Letter)
	case game.LetterDoesNotMatch:
		errors.As(err, &mismatch)
		return fmt.Sprintf("The %s letter must be '%c'", Ordinal(mismatch.Position), mismatch.Expected)
	case game.IncorrectCharacterCount:
		return "Your guess must be 5 characters long!"
	case game.NotInDictionary:
		return "Not a valid word!"
	case game.DuplicateGuess:
		return "You already guessed that!"
	case game.GameIsAlreadyOver:
		return "The game is already over!"
	default:
		return err.Error()
	}
}

// Ordinal formats n as 1st, 2nd, 3rd, 4th, ...
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
