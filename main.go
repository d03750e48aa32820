package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/eiannone/keyboard"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordlet/internal/app"
	"github.com/robalobadob/wordlet/internal/config"
	"github.com/robalobadob/wordlet/internal/daily"
	"github.com/robalobadob/wordlet/internal/game"
	"github.com/robalobadob/wordlet/internal/store"
	"github.com/robalobadob/wordlet/internal/theme"
	"github.com/robalobadob/wordlet/internal/ui"
	"github.com/robalobadob/wordlet/internal/words"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logOut, closeLog := logWriter(cfg.Logging.File)
	defer closeLog()
	log.Logger = zerolog.New(logOut).With().Timestamp().Logger()
	if lvl, err := zerolog.ParseLevel(cfg.Logging.Level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	list, err := words.Load(cfg.Words.AnswersFile, cfg.Words.AllowedFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}
	answers, allowed := list.Stats()
	log.Info().Int("answers", answers).Int("allowed", allowed).Msg("word lists loaded")

	th := theme.ByName(cfg.Display.Theme)
	if cfg.Display.ThemeFile != "" {
		if th, err = theme.LoadFile(cfg.Display.ThemeFile, th); err != nil {
			log.Warn().Err(err).Msg("using built-in theme")
		}
	}

	newGame := func() (*game.Game, error) {
		var answer string
		if cfg.Game.Daily {
			answer = daily.Answer(list.Answers(), time.Now(), cfg.Game.DailySalt)
		}
		return game.New(game.Options{
			Answer:     answer,
			Difficulty: cfg.Game.Difficulty,
			Dictionary: list,
		})
	}
	g, err := newGame()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create game")
	}

	// the word of the day cannot be replayed
	replay := app.NewGameFunc(newGame)
	if cfg.Game.Daily {
		replay = nil
		log.Info().Str("date", daily.DateKey(time.Now())).Msg("daily game")
	}

	ctx := context.Background()
	a := app.New(ctx, g, store.NewMemoryStore(), replay)
	renderer := ui.NewTerminalRenderer(os.Stdout, th)

	keys, err := keyboard.GetKeys(10)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open keyboard")
	}
	defer keyboard.Close()

	for !a.ShouldQuit() {
		if err := renderer.Draw(a.Frame(ctx)); err != nil {
			log.Error().Err(err).Msg("draw")
			return
		}
		ev := <-keys
		if ev.Err != nil {
			log.Error().Err(ev.Err).Msg("read key")
			return
		}
		a.HandleKey(ctx, ev)
	}
}

// logWriter opens path for appending, or returns stderr when path is empty.
func logWriter(path string) (io.Writer, func()) {
	if path == "" {
		return os.Stderr, func() {}
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("logging to stderr")
		return os.Stderr, func() {}
	}
	return f, func() { _ = f.Close() }
}
