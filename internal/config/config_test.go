package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordlet/internal/game"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, game.Easy, cfg.Game.Difficulty)
	assert.False(t, cfg.Game.Daily)
	assert.Equal(t, "local_dev_salt", cfg.Game.DailySalt)
	assert.Equal(t, "dark", cfg.Display.Theme)
	assert.Equal(t, "", cfg.Words.AnswersFile)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "", cfg.Logging.File)
}

func TestLoadFlags(t *testing.T) {
	cfg, err := Load([]string{
		"-difficulty", "hard",
		"-theme", "light",
		"-daily",
		"-answers_file", "answers.txt",
		"-log_level", "debug",
	})
	require.NoError(t, err)

	assert.Equal(t, game.Hard, cfg.Game.Difficulty)
	assert.Equal(t, "light", cfg.Display.Theme)
	assert.True(t, cfg.Game.Daily)
	assert.Equal(t, "answers.txt", cfg.Words.AnswersFile)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("WORDLET_DIFFICULTY", "hard")
	t.Setenv("WORDLET_THEME", "light")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, game.Hard, cfg.Game.Difficulty)
	assert.Equal(t, "light", cfg.Display.Theme)

	// flags win over the environment
	cfg, err = Load([]string{"-difficulty", "easy"})
	require.NoError(t, err)
	assert.Equal(t, game.Easy, cfg.Game.Difficulty)
}

func TestLoadUnknownValuesFallBack(t *testing.T) {
	cfg, err := Load([]string{"-difficulty", "nightmare", "-theme", "solarized"})
	require.NoError(t, err)
	assert.Equal(t, game.Easy, cfg.Game.Difficulty)
	assert.Equal(t, "dark", cfg.Display.Theme)
}

func TestLoadRejectsUnknownFlags(t *testing.T) {
	_, err := Load([]string{"-bogus"})
	assert.Error(t, err)
}
