package app

import (
	"context"
	"testing"

	"github.com/eiannone/keyboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordlet/internal/game"
	"github.com/robalobadob/wordlet/internal/store"
	"github.com/robalobadob/wordlet/internal/ui"
	"github.com/robalobadob/wordlet/internal/words"
)

var dict = func() *words.List {
	l, err := words.New([]string{"crane", "slump", "haste", "adept", "admit", "adorn", "adult", "abbey", "hours"}, nil)
	if err != nil {
		panic(err)
	}
	return l
}()

func gameFor(t *testing.T, answer string, d game.Difficulty) *game.Game {
	t.Helper()
	g, err := game.New(game.Options{Answer: answer, Difficulty: d, Dictionary: dict})
	require.NoError(t, err)
	return g
}

func typeWord(ctx context.Context, a *App, word string) {
	for _, r := range word {
		a.HandleKey(ctx, keyboard.KeyEvent{Rune: r})
	}
}

func enter(ctx context.Context, a *App) {
	a.HandleKey(ctx, keyboard.KeyEvent{Key: keyboard.KeyEnter})
}

func TestTypingAndBackspace(t *testing.T) {
	ctx := context.Background()
	a := New(ctx, gameFor(t, "crane", game.Easy), store.NewMemoryStore(), nil)
	assert.Equal(t, ui.Welcome, a.Disclaimer().Kind)

	typeWord(ctx, a, "SL1um")
	assert.Equal(t, "slum", a.Input())

	typeWord(ctx, a, "pxy")
	assert.Equal(t, "slump", a.Input(), "input stops at five letters")

	a.HandleKey(ctx, keyboard.KeyEvent{Key: keyboard.KeyBackspace2})
	a.HandleKey(ctx, keyboard.KeyEvent{Key: keyboard.KeyBackspace})
	assert.Equal(t, "slu", a.Input())

	// a short word only clears the welcome message
	enter(ctx, a)
	assert.Equal(t, "slu", a.Input())
	assert.Equal(t, ui.NoDisclaimer, a.Disclaimer().Kind)
	assert.Empty(t, a.Game().Guesses())
}

func TestSubmitGuess(t *testing.T) {
	ctx := context.Background()
	a := New(ctx, gameFor(t, "crane", game.Easy), store.NewMemoryStore(), nil)

	typeWord(ctx, a, "slump")
	enter(ctx, a)
	assert.Equal(t, "", a.Input())
	assert.Equal(t, ui.Disclaimer{}, a.Disclaimer())
	assert.Len(t, a.Game().Guesses(), 1)

	typeWord(ctx, a, "zzzzz")
	enter(ctx, a)
	assert.Equal(t, "zzzzz", a.Input(), "rejected input stays for editing")
	assert.Equal(t, ui.MoveFeedback, a.Disclaimer().Kind)
	assert.ErrorIs(t, a.Disclaimer().Err, game.ErrNotInDictionary)

	for i := 0; i < 5; i++ {
		a.HandleKey(ctx, keyboard.KeyEvent{Key: keyboard.KeyBackspace})
	}
	typeWord(ctx, a, "slump")
	enter(ctx, a)
	assert.ErrorIs(t, a.Disclaimer().Err, game.ErrDuplicateGuess)
	assert.Len(t, a.Game().Guesses(), 1)
}

func TestHardModeFeedback(t *testing.T) {
	ctx := context.Background()
	a := New(ctx, gameFor(t, "abbey", game.Hard), store.NewMemoryStore(), nil)

	typeWord(ctx, a, "adept")
	enter(ctx, a)
	require.Len(t, a.Game().Guesses(), 1)

	typeWord(ctx, a, "hours")
	enter(ctx, a)
	assert.Equal(t, "The 1st letter must be 'a'", ui.Message(a.Disclaimer()))
}

func TestWinAndReplay(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	next := gameFor(t, "slump", game.Easy)
	a := New(ctx, gameFor(t, "crane", game.Easy), st, func() (*game.Game, error) { return next, nil })

	typeWord(ctx, a, "crane")
	enter(ctx, a)
	assert.Equal(t, game.Won, a.Game().Status())
	assert.Equal(t, ui.Disclaimer{Kind: ui.GameWon, Replay: true}, a.Disclaimer())
	assert.Equal(t, "", a.Input())

	f := a.Frame(ctx)
	require.NotNil(t, f.Summary)
	assert.Equal(t, 1, f.Summary.Wins)

	enter(ctx, a)
	assert.False(t, a.ShouldQuit())
	assert.Same(t, next, a.Game())
	assert.Equal(t, ui.Welcome, a.Disclaimer().Kind)
	assert.Nil(t, a.Frame(ctx).Summary)

	list, err := st.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestLoseWithoutReplay(t *testing.T) {
	ctx := context.Background()
	a := New(ctx, gameFor(t, "crane", game.Easy), store.NewMemoryStore(), nil)

	for _, w := range []string{"slump", "haste", "adept", "admit", "adorn", "adult"} {
		typeWord(ctx, a, w)
		enter(ctx, a)
	}
	assert.Equal(t, game.Lost, a.Game().Status())
	assert.Equal(t, ui.Disclaimer{Kind: ui.GameOver, Answer: "crane"}, a.Disclaimer())
	assert.False(t, a.ShouldQuit())

	// without a replay function any key ends the session
	enter(ctx, a)
	assert.True(t, a.ShouldQuit())
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []keyboard.Key{keyboard.KeyEsc, keyboard.KeyCtrlC} {
		ctx := context.Background()
		a := New(ctx, gameFor(t, "crane", game.Easy), store.NewMemoryStore(), nil)
		a.HandleKey(ctx, keyboard.KeyEvent{Key: key})
		assert.True(t, a.ShouldQuit())
	}
}
