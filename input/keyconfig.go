package input

import (
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
	"plus":      '+',
	"minus":     '-',
}

// keyByName resolves tcell key names ("enter", "ctrl-s", "up") case-insensitively
var keyByName = func() map[string]tcell.Key {
	out := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		out[strings.ToLower(name)] = k
	}
	return out
}()

// keymapFile is the TOML layout:
//
//	[keys]
//	k = "kick_red"
//	space = "start"
//
//	[special_keys]
//	"Ctrl-S" = "save"
type keymapFile struct {
	Keys        map[string]string `toml:"keys"`
	SpecialKeys map[string]string `toml:"special_keys"`
}

// LoadKeymap parses TOML keymap data into a sparse override Keymap
// Returns error on unknown action names, invalid key names, or parse failure
func LoadKeymap(data []byte) (*Keymap, error) {
	var f keymapFile
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, errors.Wrap(err, "keymap parse")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("keymap: unknown section %q", undecoded[0].String())
	}

	km := &Keymap{
		Special: make(map[tcell.Key]IntentType, len(f.SpecialKeys)),
		Runes:   make(map[rune]IntentType, len(f.Keys)),
	}
	for keyStr, action := range f.Keys {
		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, errors.Wrapf(err, "[keys] key %q", keyStr)
		}
		t, err := resolveAction(action)
		if err != nil {
			return nil, errors.Wrapf(err, "[keys] key %q", keyStr)
		}
		km.Runes[r] = t
	}
	for keyStr, action := range f.SpecialKeys {
		k, ok := keyByName[strings.ToLower(keyStr)]
		if !ok {
			return nil, errors.Errorf("[special_keys] unknown key name: %q", keyStr)
		}
		t, err := resolveAction(action)
		if err != nil {
			return nil, errors.Wrapf(err, "[special_keys] key %q", keyStr)
		}
		km.Special[k] = t
	}
	return km, nil
}

// resolveRune converts a TOML key string to a rune
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, errors.Errorf("expected single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

func resolveAction(name string) (IntentType, error) {
	t, ok := actionRegistry[name]
	if !ok {
		return IntentNone, errors.Errorf("unknown action %q", name)
	}
	return t, nil
}
