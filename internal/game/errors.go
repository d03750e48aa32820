package game

import (
	"errors"
	"fmt"
)

// Guess validation and query errors. None of them change game state.
var (
	ErrGameIsAlreadyOver       = errors.New("game is already over")
	ErrIncorrectCharacterCount = errors.New("guess must be 5 characters long")
	ErrDuplicateGuess          = errors.New("word already guessed")
	ErrNotInDictionary         = errors.New("not in word list")
	ErrHardModeViolation       = errors.New("hard mode constraint violated")
	ErrGameNotLost             = errors.New("answer is only revealed once the game is lost")

	ErrInvalidAnswer = errors.New("answer must be 5 characters long")
	ErrNoDictionary  = errors.New("no dictionary configured")
)

// LetterMismatchError is returned in hard mode when a guess does not repeat
// a letter already found in its right place.
type LetterMismatchError struct {
	Expected rune
	Position int // 1-based board column
}

func (e *LetterMismatchError) Error() string {
	return fmt.Sprintf("letter %d must be %q", e.Position, e.Expected)
}

func (e *LetterMismatchError) Is(target error) bool { return target == ErrHardModeViolation }

// MissingLetterError is returned in hard mode when a guess leaves out a
// letter already known to be in the answer.
type MissingLetterError struct {
	Letter rune
}

func (e *MissingLetterError) Error() string {
	return fmt.Sprintf("guess must contain %q", e.Letter)
}

func (e *MissingLetterError) Is(target error) bool { return target == ErrHardModeViolation }

// GuessResult is the closed set of outcomes of SubmitGuess.
type GuessResult int

const (
	Valid GuessResult = iota
	GameIsAlreadyOver
	IncorrectCharacterCount
	DuplicateGuess
	NotInDictionary
	LetterDoesNotMatch
	DoesNotIncludeRequiredLetter
	Unknown
)

// GuessResultOf classifies an error returned by SubmitGuess.
func GuessResultOf(err error) GuessResult {
	var mismatch *LetterMismatchError
	var missing *MissingLetterError
	switch {
	case err == nil:
		return Valid
	case errors.Is(err, ErrGameIsAlreadyOver):
		return GameIsAlreadyOver
	case errors.Is(err, ErrIncorrectCharacterCount):
		return IncorrectCharacterCount
	case errors.Is(err, ErrDuplicateGuess):
		return DuplicateGuess
	case errors.Is(err, ErrNotInDictionary):
		return NotInDictionary
	case errors.As(err, &mismatch):
		return LetterDoesNotMatch
	case errors.As(err, &missing):
		return DoesNotIncludeRequiredLetter
	default:
		return Unknown
	}
}
