// internal/ui/render.go
//
// Text renderer for the terminal.
// Responsibilities:
//   - Header with the current disclaimer message.
//   - 6x5 board driven by the game's row states and scored guesses; the
//     Current row shows what the player has typed so far.
//   - On-screen keyboard coloured by per-letter knowledge.
//   - Session summary once a game is over.
//
// Colour is only emitted when the output is a terminal. Without colour the
// board still distinguishes accuracies through the cell brackets:
//   =A= right place, ~A~ in word, -A- not in word.

package ui

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/robalobadob/wordlet/internal/game"
	"github.com/robalobadob/wordlet/internal/store"
	"github.com/robalobadob/wordlet/internal/theme"
)

const clearScreen = "\x1b[H\x1b[2J"

var keyboardRows = []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"}

// Frame is everything needed to draw one screen.
type Frame struct {
	Game       *game.Game
	Input      string
	Disclaimer Disclaimer
	Summary    *store.Summary // shown when non-nil
}

// Renderer draws frames to a writer.
type Renderer struct {
	out   io.Writer
	theme theme.Theme
	color bool
	width int
	fd    int // -1 when the width is fixed
}

// NewTerminalRenderer renders to f, enabling colour and centring when f is a TTY.
func NewTerminalRenderer(f *os.File, th theme.Theme) *Renderer {
	fd := f.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	r := &Renderer{theme: th, color: tty, fd: -1}
	if tty {
		r.out = colorable.NewColorable(f)
		r.fd = int(fd)
	} else {
		r.out = colorable.NewNonColorable(f)
	}
	return r
}

// NewRenderer renders to w with a fixed width. A width <= 0 disables centring.
func NewRenderer(w io.Writer, th theme.Theme, color bool, width int) *Renderer {
	return &Renderer{out: w, theme: th, color: color, width: width, fd: -1}
}

// segment is a run of text drawn in one colour.
type segment struct {
	text  string
	color string
}

type line []segment

func (l line) width() int {
	n := 0
	for _, s := range l {
		n += len(s.text)
	}
	return n
}

// Draw writes one full frame.
func (r *Renderer) Draw(f Frame) error {
	var buf bytes.Buffer
	if r.color {
		buf.WriteString(clearScreen)
	}
	width := r.currentWidth()
	for _, l := range r.lines(f) {
		if pad := (width - l.width()) / 2; pad > 0 {
			buf.WriteString(strings.Repeat(" ", pad))
		}
		for _, s := range l {
			buf.WriteString(r.paint(s))
		}
		buf.WriteByte('\n')
	}
	_, err := r.out.Write(buf.Bytes())
	return err
}

func (r *Renderer) currentWidth() int {
	if r.fd >= 0 {
		if w, _, err := term.GetSize(r.fd); err == nil {
			return w
		}
	}
	return r.width
}

func (r *Renderer) paint(s segment) string {
	if !r.color || s.color == "" {
		return s.text
	}
	return "\x1b[" + s.color + "m" + s.text + "\x1b[0m"
}

func (r *Renderer) lines(f Frame) []line {
	var out []line
	out = append(out,
		line{{"W O R D L E T", r.theme.Border}},
		line{},
		r.header(f.Disclaimer),
		line{},
	)
	out = append(out, r.board(f.Game, f.Input)...)
	out = append(out, line{})
	out = append(out, r.keyboard(f.Game)...)
	if f.Summary != nil {
		out = append(out, line{})
		out = append(out, r.summary(*f.Summary)...)
	}
	return out
}

func (r *Renderer) header(d Disclaimer) line {
	color := r.theme.HeaderError
	switch d.Kind {
	case GameWon:
		color = r.theme.HeaderSuccess
	case Welcome:
		color = r.theme.WelcomeMessage
	}
	return line{{Message(d), color}}
}

func (r *Renderer) board(g *game.Game, input string) []line {
	guesses := g.Guesses()
	typed := []rune(input)
	out := make([]line, 0, game.MaxGuesses)
	for i, state := range g.RowStates() {
		var l line
		for col := 0; col < game.WordLength; col++ {
			if col > 0 {
				l = append(l, segment{" ", ""})
			}
			l = append(l, r.cell(state, guesses, i, col, typed))
		}
		out = append(out, l)
	}
	return out
}

func (r *Renderer) cell(state game.RowState, guesses []game.WordGuess, row, col int, typed []rune) segment {
	switch state {
	case game.RowCurrent:
		if col < len(typed) {
			return segment{"[" + string(typed[col]) + "]", r.theme.ActiveInput}
		}
		return segment{"[_]", r.theme.Border}
	case game.RowAlreadyGuessed:
		if row >= len(guesses) {
			break
		}
		gl := guesses[row].Letters[col]
		letter := strings.ToUpper(string(gl.Letter))
		switch gl.Accuracy {
		case game.InRightPlace:
			return segment{"=" + letter + "=", r.theme.GuessInRightPlace}
		case game.InWord:
			return segment{"~" + letter + "~", r.theme.GuessInWord}
		default:
			return segment{"-" + letter + "-", r.theme.GuessNotInWord}
		}
	}
	return segment{"[ ]", r.theme.EmptyRow}
}

func (r *Renderer) keyboard(g *game.Game) []line {
	out := make([]line, 0, len(keyboardRows))
	for _, row := range keyboardRows {
		var l line
		for i, k := range row {
			if i > 0 {
				l = append(l, segment{" ", ""})
			}
			acc, ok := g.LetterState(k)
			switch {
			case !ok:
				l = append(l, segment{string(k), r.theme.KeyNotGuessed})
			case acc == game.InRightPlace:
				l = append(l, segment{strings.ToUpper(string(k)), r.theme.KeyInRightPlace})
			case acc == game.InWord:
				l = append(l, segment{strings.ToUpper(string(k)), r.theme.KeyInWord})
			default:
				l = append(l, segment{".", r.theme.KeyNotInWord})
			}
		}
		out = append(out, l)
	}
	return out
}

func (r *Renderer) summary(s store.Summary) []line {
	out := []line{{{
		fmt.Sprintf("Played %d  Win %% %d  Streak %d  Max %d", s.Played, s.WinRate(), s.CurrentStreak, s.MaxStreak),
		r.theme.Border,
	}}}
	for i, n := range s.Distribution {
		out = append(out, line{
			{fmt.Sprintf("%d ", i+1), r.theme.Border},
			{strings.Repeat("#", n) + fmt.Sprintf(" %d", n), r.theme.GuessInRightPlace},
		})
	}
	return out
}
