// Copyright 2015 The TCell Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use file except in compliance with the License.
// You may obtain a copy of the license at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package keyin

import "fmt"

// Key is a generic value identifying a key or a structured event.  Plain
// text is not given a Key: a text Keystroke leaves Code unset (IsSequence
// is false) and carries the character in Keystroke.Text and
// Keystroke.Rune.  Three disjoint ranges are used: the
// curses-compatible application keys (KeyUp .. KeyF36), the extensions
// (KeyTab, the keypad keys, KeyMenu, ...) and the synthetic codes
// generated at init() time for every modifier combination and for the
// protocol-level events (mouse, paste, focus, sync, Kitty, resize).
type Key int32

// ModMask is a bitmask of modifier keys.  Not all terminals or key
// sequences carry modifier information; callers should not depend too
// heavily on its presence.
type ModMask int16

const (
	ModShift ModMask = 1 << iota
	ModAlt
	ModCtrl
	ModMeta
	ModHyper
)

// ModNone means no modifiers were detected.
const ModNone ModMask = 0

// modNameOrder gives the canonical ordering (CTRL, ALT, SHIFT) used when
// generating synthetic key names, per spec: the modifier set is always
// serialized CTRL, ALT, SHIFT regardless of internal bit order.
var modNameOrder = []struct {
	mask ModMask
	name string
}{
	{ModCtrl, "CTRL"},
	{ModAlt, "ALT"},
	{ModShift, "SHIFT"},
}

// Curses-compatible application keys.
const (
	KeyRune Key = iota + 256
	KeyUp
	KeyDown
	KeyRight
	KeyLeft
	KeyUpLeft
	KeyUpRight
	KeyDownLeft
	KeyDownRight
	KeyCenter
	KeyPgUp
	KeyPgDn
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyHelp
	KeyExit
	KeyClear
	KeyCancel
	KeyPrint
	KeyPause
	KeyBacktab
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24
	KeyF25
	KeyF26
	KeyF27
	KeyF28
	KeyF29
	KeyF30
	KeyF31
	KeyF32
	KeyF33
	KeyF34
	KeyF35
	KeyF36
)

// Extensions beyond the base curses set: tab, keypad digits, menu, and
// a few keyboard-state keys reported by the Kitty protocol.
const (
	KeyTab Key = iota + 2000
	KeyMenu
	KeyCapsLock
	KeyScrollLock
	KeyNumLock
	KeyKP0
	KeyKP1
	KeyKP2
	KeyKP3
	KeyKP4
	KeyKP5
	KeyKP6
	KeyKP7
	KeyKP8
	KeyKP9
)

// ASCII control-character keys, matching the defined ASCII values so
// that, e.g., KeyCtrlA == 1.  These double as the KeyCtrl* constants.
const (
	KeyNUL Key = iota
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyBS
	KeyTAB
	KeyLF
	KeyCtrlK
	KeyCtrlL
	KeyCR
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ
	KeyESC
	KeyCtrlBackslash
	KeyCtrlRightSq
	KeyCtrlCarat
	KeyCtrlUnderscore
	KeySP
	KeyDEL Key = 0x7F
)

const (
	KeyBackspace  = KeyBS
	KeyEscape     = KeyESC
	KeyEnter      = KeyCR
	KeySpace      = KeySP
	KeyBackspace2 = KeyDEL
	KeyCtrlSpace  = KeyNUL
)

// protocol event codes: one per structured event kind described in
// spec.md §3.  These never appear in the sequence table; Keystroke.Code
// is set to one of these by the event matchers in matchers.go.
const (
	KeyBracketedPaste Key = iota + 3000
	KeyFocusIn
	KeyFocusOut
	KeyMouseSGR
	KeyMouseLegacy
	KeySyncBegin
	KeySyncEnd
	KeyKitty
	KeyResize
	KeyWin32Input
	KeyClipboard
	KeyDeviceAttrs
	KeyTermName
	KeyModeStatus
)

// keyPasteStart/keyPasteEnd are reserved codes for the "~200"/"~201"
// paste markers. No matcher and not the resolver produce them: a
// bracketed paste is reported as one KeyBracketedPaste Keystroke by
// matchBracketedPaste. They are not part of the public Key namespace.
const (
	keyPasteStart Key = iota + 9000
	keyPasteEnd
)

// synthetic modifier-combined keys are generated at init() time: one
// distinct code per (base application key, non-empty modifier subset)
// and, for letters, per (Ctrl|Alt|Shift subset, rune).  These codes are
// never placed in the sequence table directly -- the event matchers
// assign them once modifiers have been decoded from a CSI/Kitty/modify-
// other-keys report.
var (
	modKeyCode = map[string]Key{}
	modKeyName = map[Key]string{}
)

const firstSyntheticKey = Key(100000)

// baseKeyNames gives the canonical KEY_* name for every base application
// key that can be combined with modifiers.  Letters are handled
// separately (ModifiedRuneName), since there are 26 of them and they are
// not part of the curses constant block.
var baseKeyNames = map[Key]string{
	KeyUp: "UP", KeyDown: "DOWN", KeyLeft: "LEFT", KeyRight: "RIGHT",
	KeyHome: "HOME", KeyEnd: "END", KeyInsert: "INSERT", KeyDelete: "DELETE",
	KeyPgUp: "PGUP", KeyPgDn: "PGDN", KeyBacktab: "BACKTAB", KeyTab: "TAB",
	KeyEnter: "ENTER", KeyEscape: "ESCAPE", KeyBackspace: "BACKSPACE",
	KeySpace: "SPACE",
	KeyF1:    "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4",
	KeyF5: "F5", KeyF6: "F6", KeyF7: "F7", KeyF8: "F8",
	KeyF9: "F9", KeyF10: "F10", KeyF11: "F11", KeyF12: "F12",
	KeyF13: "F13", KeyF14: "F14", KeyF15: "F15", KeyF16: "F16",
	KeyF17: "F17", KeyF18: "F18", KeyF19: "F19", KeyF20: "F20",
	KeyF21: "F21", KeyF22: "F22", KeyF23: "F23", KeyF24: "F24",
}

func init() {
	next := firstSyntheticKey
	alloc := func(name string) Key {
		if k, ok := modKeyCode[name]; ok {
			return k
		}
		k := next
		next++
		modKeyCode[name] = k
		modKeyName[k] = name
		return k
	}

	// KEY_<BASE> for every base key, then every non-empty subset of
	// {CTRL, ALT, SHIFT} in that fixed order, per spec.md §4.3.
	for base, name := range baseKeyNames {
		modKeyName[base] = "KEY_" + name
		modKeyCode["KEY_"+name] = base
		for _, subset := range modSubsets() {
			alloc("KEY_" + modPrefix(subset) + name)
		}
	}
	// letters: KEY_CTRL_A.., KEY_ALT_a.., KEY_SHIFT_A.. and their
	// combinations.
	for c := 'A'; c <= 'Z'; c++ {
		for _, subset := range modSubsets() {
			letter := string(c - 'A' + 'a')
			if subset&(ModCtrl|ModShift) != 0 {
				letter = string(c)
			}
			alloc("KEY_" + modPrefix(subset) + letter)
		}
	}
}

// modSubsets returns every non-empty subset of {CTRL, ALT, SHIFT}.
func modSubsets() []ModMask {
	bits := []ModMask{ModCtrl, ModAlt, ModShift}
	var out []ModMask
	for mask := 1; mask < 8; mask++ {
		var m ModMask
		for i, b := range bits {
			if mask&(1<<i) != 0 {
				m |= b
			}
		}
		out = append(out, m)
	}
	return out
}

// modPrefix renders a modifier mask as the canonical name-segment used
// in synthetic KEY_* names: CTRL, ALT, SHIFT, CTRL_ALT, CTRL_SHIFT,
// ALT_SHIFT, CTRL_ALT_SHIFT, always in CTRL/ALT/SHIFT order, with a
// trailing underscore ready to prefix the base name.
func modPrefix(m ModMask) string {
	s := ""
	for _, e := range modNameOrder {
		if m&e.mask != 0 {
			if s != "" {
				s += "_"
			}
			s += e.name
		}
	}
	if s != "" {
		s += "_"
	}
	return s
}

// ModifiedKeyName returns the synthetic KEY_* name for a base key plus
// a modifier mask, or "" if no such combination was generated.
func ModifiedKeyName(base Key, mod ModMask) string {
	n, ok := baseKeyNames[base]
	if !ok {
		return ""
	}
	if mod == ModNone {
		return "KEY_" + n
	}
	return "KEY_" + modPrefix(mod) + n
}

// ModifiedRuneName returns the synthetic KEY_* name for a letter plus a
// modifier mask (e.g. ModCtrl, 'a' -> "KEY_CTRL_A"); "" if r isn't a
// letter or mod is empty.
func ModifiedRuneName(r rune, mod ModMask) string {
	switch {
	case r >= 'a' && r <= 'z':
	case r >= 'A' && r <= 'Z':
		r = r - 'A' + 'a'
	default:
		return ""
	}
	if mod == ModNone {
		return ""
	}
	letter := string(r)
	if mod&(ModCtrl|ModShift) != 0 {
		letter = string(r - 'a' + 'A')
	}
	return "KEY_" + modPrefix(mod) + letter
}

// KeyByName looks up a synthetic modifier-combined key code by its
// canonical name, as generated above.
func KeyByName(name string) (Key, bool) {
	k, ok := modKeyCode[name]
	return k, ok
}

// NameOfKey returns the canonical KEY_* name for a synthetic modifier
// key code, or "" if k was never generated.
func NameOfKey(k Key) string {
	return modKeyName[k]
}

func (k Key) String() string {
	if n := NameOfKey(k); n != "" {
		return n
	}
	return fmt.Sprintf("Key(%d)", int32(k))
}
