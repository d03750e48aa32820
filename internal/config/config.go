package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/namsral/flag"

	"github.com/robalobadob/wordlet/internal/game"
)

// EnvPrefix prefixes the environment variable read for every flag,
// e.g. -difficulty falls back to WORDLET_DIFFICULTY.
const EnvPrefix = "WORDLET"

// Config holds all application configuration
type Config struct {
	Game    GameConfig
	Words   WordsConfig
	Display DisplayConfig
	Logging LoggingConfig
}

// GameConfig holds game-related configuration
type GameConfig struct {
	Difficulty game.Difficulty
	Daily      bool
	DailySalt  string
}

// WordsConfig points at optional word list files. Empty means embedded lists.
type WordsConfig struct {
	AnswersFile string
	AllowedFile string
}

// DisplayConfig holds rendering configuration
type DisplayConfig struct {
	Theme     string // "dark" or "light"
	ThemeFile string // optional Lua overrides
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level string
	File  string // empty logs to stderr
}

// Load reads .env (if present), then parses args. Flags win over
// environment variables, which win over defaults.
func Load(args []string) (*Config, error) {
	_ = godotenv.Load()

	fs := flag.NewFlagSetWithEnvPrefix("wordlet", EnvPrefix, flag.ContinueOnError)
	var (
		difficulty  = fs.String("difficulty", "easy", "Change the game's difficulty. Valid values are easy and hard")
		theme       = fs.String("theme", "dark", "Change the display colors. Valid values are light and dark")
		themeFile   = fs.String("theme_file", "", "Lua file overriding theme colors")
		daily       = fs.Bool("daily", false, "Play the word of the day instead of a random word")
		dailySalt   = fs.String("daily_salt", "local_dev_salt", "Salt mixed into the word of the day")
		answersFile = fs.String("answers_file", "", "Newline-separated answer list")
		allowedFile = fs.String("allowed_file", "", "Newline-separated list of allowed guesses")
		logLevel    = fs.String("log_level", "warn", "zerolog level: debug, info, warn, error, disabled")
		logFile     = fs.String("log_file", "", "Write logs to this file instead of stderr")
	)
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	cfg := &Config{
		Game: GameConfig{
			Difficulty: game.ParseDifficulty(*difficulty),
			Daily:      *daily,
			DailySalt:  *dailySalt,
		},
		Words: WordsConfig{
			AnswersFile: *answersFile,
			AllowedFile: *allowedFile,
		},
		Display: DisplayConfig{
			Theme:     *theme,
			ThemeFile: *themeFile,
		},
		Logging: LoggingConfig{
			Level: *logLevel,
			File:  *logFile,
		},
	}
	if cfg.Display.Theme != "light" {
		cfg.Display.Theme = "dark"
	}
	return cfg, nil
}
