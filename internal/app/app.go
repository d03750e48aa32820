// internal/app/app.go
//
// Controller that turns key events into game calls.
// Responsibilities:
//   - Buffer typed letters for the Current row (max 5, lowercased).
//   - Submit the buffer on Enter and translate the outcome into a header message.
//   - Record games in the session store and start new games on request.
//
// All methods must be called from one goroutine; the game has no locking.

package app

import (
	"context"
	"unicode"

	"github.com/eiannone/keyboard"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordlet/internal/game"
	"github.com/robalobadob/wordlet/internal/store"
	"github.com/robalobadob/wordlet/internal/ui"
)

// NewGameFunc creates the next game when the player asks for a rematch.
type NewGameFunc func() (*game.Game, error)

// App holds the controller state for one terminal session.
type App struct {
	game       *game.Game
	input      []rune
	disclaimer ui.Disclaimer
	quit       bool

	store   store.Store
	newGame NewGameFunc // nil disables replay
}

// New wraps g. st receives every game played; newGame may be nil.
func New(ctx context.Context, g *game.Game, st store.Store, newGame NewGameFunc) *App {
	a := &App{store: st, newGame: newGame}
	a.start(ctx, g)
	return a
}

func (a *App) start(ctx context.Context, g *game.Game) {
	a.game = g
	a.input = a.input[:0]
	a.disclaimer = ui.Disclaimer{Kind: ui.Welcome}
	a.save(ctx)
	log.Info().Str("game", g.ID()).Str("difficulty", g.Difficulty().String()).Msg("game started")
}

// Game returns the game currently being played.
func (a *App) Game() *game.Game { return a.game }

// Input returns the letters typed for the Current row.
func (a *App) Input() string { return string(a.input) }

func (a *App) Disclaimer() ui.Disclaimer { return a.disclaimer }

// ShouldQuit reports whether the main loop should stop.
func (a *App) ShouldQuit() bool { return a.quit }

// Frame collects what the renderer needs. The session summary is only
// included once the current game is over.
func (a *App) Frame(ctx context.Context) ui.Frame {
	f := ui.Frame{Game: a.game, Input: a.Input(), Disclaimer: a.disclaimer}
	if a.game.Status().Over() {
		if s, err := a.store.Summary(ctx); err == nil {
			f.Summary = &s
		} else {
			log.Warn().Err(err).Msg("session summary")
		}
	}
	return f
}

// HandleKey applies one key event.
func (a *App) HandleKey(ctx context.Context, ev keyboard.KeyEvent) {
	if a.game.Status().Over() {
		if ev.Key == keyboard.KeyEnter && a.newGame != nil {
			a.restart(ctx)
			return
		}
		a.quit = true
		return
	}

	switch ev.Key {
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		a.quit = true
	case keyboard.KeyBackspace, keyboard.KeyBackspace2:
		a.onBackspace()
	case keyboard.KeyEnter:
		a.onEnter(ctx)
	default:
		if ev.Key == 0 && ev.Rune != 0 {
			a.onLetter(ev.Rune)
		}
	}
}

func (a *App) onBackspace() {
	if n := len(a.input); n > 0 {
		a.input = a.input[:n-1]
	}
}

func (a *App) onLetter(r rune) {
	if !unicode.IsLetter(r) || len(a.input) >= game.WordLength {
		return
	}
	a.input = append(a.input, unicode.ToLower(r))
}

func (a *App) onEnter(ctx context.Context) {
	// the welcome message goes away on the first submit attempt
	if a.disclaimer.Kind == ui.Welcome {
		a.disclaimer = ui.Disclaimer{}
	}
	if len(a.input) != game.WordLength {
		return
	}

	word := string(a.input)
	status, err := a.game.SubmitGuess(word)
	switch {
	case status == game.Lost:
		answer, _ := a.game.Answer()
		a.disclaimer = ui.Disclaimer{Kind: ui.GameOver, Answer: answer, Replay: a.newGame != nil}
		a.finish(ctx)
	case status == game.Won:
		a.disclaimer = ui.Disclaimer{Kind: ui.GameWon, Replay: a.newGame != nil}
		a.finish(ctx)
	case err == nil:
		a.input = a.input[:0]
		a.disclaimer = ui.Disclaimer{}
	default:
		log.Debug().Str("game", a.game.ID()).Str("guess", word).Err(err).Msg("guess rejected")
		a.disclaimer = ui.Feedback(err)
	}
}

func (a *App) finish(ctx context.Context) {
	a.input = a.input[:0]
	a.save(ctx)
	log.Info().
		Str("game", a.game.ID()).
		Str("status", a.game.Status().String()).
		Int("guesses", len(a.game.Guesses())).
		Msg("game finished")
}

func (a *App) restart(ctx context.Context) {
	g, err := a.newGame()
	if err != nil {
		log.Error().Err(err).Msg("new game")
		a.quit = true
		return
	}
	a.start(ctx, g)
}

func (a *App) save(ctx context.Context) {
	if err := a.store.Save(ctx, a.game); err != nil {
		log.Warn().Err(err).Str("game", a.game.ID()).Msg("save game")
	}
}
