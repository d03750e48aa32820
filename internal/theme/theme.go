// Package theme holds the colour schemes used by the terminal renderer.
// Colours are ANSI SGR parameter strings such as "32" or "1;38;5;208".
package theme

import (
	"fmt"
	"strconv"

	lua "github.com/yuin/gopher-lua"
)

// Theme colours every element the renderer draws.
type Theme struct {
	Border            string
	EmptyRow          string
	ActiveInput       string
	GuessInRightPlace string
	GuessInWord       string
	GuessNotInWord    string
	KeyNotGuessed     string
	KeyInRightPlace   string
	KeyInWord         string
	KeyNotInWord      string
	HeaderSuccess     string
	HeaderError       string
	WelcomeMessage    string
}

func Dark() Theme {
	return Theme{
		Border:            "37",
		EmptyRow:          "90",
		ActiveInput:       "1;97",
		GuessInRightPlace: "1;32",
		GuessInWord:       "1;33",
		GuessNotInWord:    "2;37",
		KeyNotGuessed:     "97",
		KeyInRightPlace:   "1;32",
		KeyInWord:         "1;33",
		KeyNotInWord:      "2;90",
		HeaderSuccess:     "1;32",
		HeaderError:       "1;31",
		WelcomeMessage:    "36",
	}
}

func Light() Theme {
	return Theme{
		Border:            "30",
		EmptyRow:          "37",
		ActiveInput:       "1;30",
		GuessInRightPlace: "1;32",
		GuessInWord:       "1;33",
		GuessNotInWord:    "2;90",
		KeyNotGuessed:     "30",
		KeyInRightPlace:   "1;32",
		KeyInWord:         "1;33",
		KeyNotInWord:      "2;37",
		HeaderSuccess:     "1;32",
		HeaderError:       "1;31",
		WelcomeMessage:    "34",
	}
}

// ByName returns Light for "light" and Dark otherwise.
func ByName(name string) Theme {
	if name == "light" {
		return Light()
	}
	return Dark()
}

// fields maps Lua table keys to theme fields.
func (t *Theme) fields() map[string]*string {
	return map[string]*string{
		"border":               &t.Border,
		"empty_row":            &t.EmptyRow,
		"active_input":         &t.ActiveInput,
		"guess_in_right_place": &t.GuessInRightPlace,
		"guess_in_word":        &t.GuessInWord,
		"guess_not_in_word":    &t.GuessNotInWord,
		"key_not_guessed":      &t.KeyNotGuessed,
		"key_in_right_place":   &t.KeyInRightPlace,
		"key_in_word":          &t.KeyInWord,
		"key_not_in_word":      &t.KeyNotInWord,
		"header_success":       &t.HeaderSuccess,
		"header_error":         &t.HeaderError,
		"welcome_message":      &t.WelcomeMessage,
	}
}

// LoadFile runs a Lua script and applies its global `theme` table on top of
// base. String values are used as SGR parameters; numbers select a 256-colour
// foreground. Missing or ill-typed keys keep the base value.
//
//	theme = { guess_in_word = "1;35", key_not_in_word = 240 }
func LoadFile(path string, base Theme) (Theme, error) {
	L := lua.NewState()
	defer L.Close()

	if err := L.DoFile(path); err != nil {
		return base, fmt.Errorf("load theme %s: %w", path, err)
	}
	tbl, ok := L.GetGlobal("theme").(*lua.LTable)
	if !ok {
		return base, fmt.Errorf("load theme %s: no global table named theme", path)
	}

	out := base
	for key, dst := range out.fields() {
		switch v := tbl.RawGetString(key).(type) {
		case lua.LString:
			*dst = string(v)
		case lua.LNumber:
			*dst = "38;5;" + strconv.Itoa(int(v))
		}
	}
	return out, nil
}
