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

import "strings"

// EventPayload is implemented by the structured data carried alongside a
// Keystroke for out-of-band terminal reports (mouse activity, bracketed
// paste, focus changes, synchronized-output markers, Kitty keyboard
// protocol reports).  A Keystroke whose Code is not one of these event
// keys has a nil Payload.
type EventPayload interface {
	eventPayload()
}

// PastePayload is the payload of a KeyBracketedPaste Keystroke.
type PastePayload struct {
	Text string
}

func (PastePayload) eventPayload() {}

// MousePayload is the payload of a KeyMouseSGR or KeyMouseLegacy
// Keystroke.
type MousePayload struct {
	Button   int
	X, Y     int
	Release  bool
	Drag     bool
	Wheel    bool
	Motion   bool // legacy (X10) reports only
	Shift    bool
	Meta     bool
	Ctrl     bool
}

func (MousePayload) eventPayload() {}

// FocusPayload is the payload of a KeyFocusIn/KeyFocusOut Keystroke.
type FocusPayload struct {
	Gained bool
}

func (FocusPayload) eventPayload() {}

// SyncPayload is the payload of a KeySyncBegin/KeySyncEnd Keystroke.
type SyncPayload struct {
	Begin bool
}

func (SyncPayload) eventPayload() {}

// KittyPayload is the payload of a KeyKitty Keystroke, per the Kitty
// keyboard protocol's CSI-u encoding.
type KittyPayload struct {
	UnicodeKey     int
	ShiftedKey     int // 0 if absent
	BaseKey        int // 0 if absent
	Modifiers      int // raw modifier bits (field value minus 1), super included; see decodeKittyMods
	EventType      int // 1 press (default), 2 repeat, 3 release
	TextCodepoints []int
}

func (KittyPayload) eventPayload() {}

// ResizePayload is the payload of a KeyResize Keystroke generated from
// an in-band window-resize report.
type ResizePayload struct {
	Width, Height int
}

func (ResizePayload) eventPayload() {}

// ClipboardPayload is the payload of a KeyClipboard Keystroke (OSC 52).
type ClipboardPayload struct {
	Data []byte
}

func (ClipboardPayload) eventPayload() {}

// TermNamePayload is the payload of a KeyTermName Keystroke, the DCS
// terminal-name-and-version report some terminals send unsolicited or
// in reply to an XTVERSION query.
type TermNamePayload struct {
	Name    string
	Version string
}

func (TermNamePayload) eventPayload() {}

// Keystroke is the immutable value returned by Reader.ReadKey.  It
// either carries literal text (IsSequence false, Code/Name absent) or
// identifies an application key / structured event (IsSequence true).
type Keystroke struct {
	// Text is the raw characters consumed from the input -- exactly
	// what the terminal sent for this keystroke, except that a byte
	// that is not valid UTF-8 is reported as U+FFFD.
	Text string

	// Code is present iff this is an application key or event.
	Code Key
	// Name is the canonical KEY_* name; present iff Code is.
	Name string
	// hasCode distinguishes "KeyRune with code unset" from "an actual
	// application key", since Key(0) ( == KeyNUL) is a legal code.
	hasCode bool

	// Modifiers is the CTRL/ALT/SHIFT bitmask, when known.
	Modifiers ModMask

	// Rune is the decoded character for text keystrokes and for
	// modifyOtherKeys / Kitty key reports; zero otherwise.
	Rune rune

	// Payload carries the parsed event body for structured events; nil
	// for plain text and application keys.
	Payload EventPayload

	// MatchGroups holds raw captured substrings for event keystrokes,
	// enabling a caller to re-derive fields without re-parsing Text.
	MatchGroups []string
}

// IsSequence reports whether this Keystroke identifies an application
// key or event, as opposed to plain decoded text.
func (k Keystroke) IsSequence() bool {
	return k.hasCode
}

// Empty reports whether this is the empty-string Keystroke returned on
// timeout or EOF.
func (k Keystroke) Empty() bool {
	return !k.hasCode && k.Text == ""
}

// String implements Stringer so a Keystroke prints the text that was
// typed, mirroring the source library's behavior of comparing/printing
// keystrokes as plain strings.
func (k Keystroke) String() string {
	return k.Text
}

// Value returns the Unicode character(s) that would have appeared had
// modifiers not been engaged: the bare letter for a Ctrl/Alt/Shift
// letter combination, empty for named application keys, and Text
// itself for plain text keystrokes.
func (k Keystroke) Value() string {
	if !k.hasCode {
		return k.Text
	}
	name := k.Name
	for _, prefix := range []string{"KEY_CTRL_", "KEY_ALT_", "KEY_SHIFT_"} {
		if rest, ok := strings.CutPrefix(name, prefix); ok && len(rest) == 1 {
			if strings.HasPrefix(prefix, "KEY_SHIFT_") {
				return rest
			}
			return strings.ToLower(rest)
		}
	}
	return ""
}

func newKeyKeystroke(text string, code Key, mod ModMask, r rune) Keystroke {
	return Keystroke{
		Text:      text,
		Code:      code,
		Name:      NameOfKey(code),
		hasCode:   true,
		Modifiers: mod,
		Rune:      r,
	}
}

func newTextKeystroke(text string, r rune) Keystroke {
	return Keystroke{Text: text, Rune: r}
}

func newEventKeystroke(text string, code Key, payload EventPayload, groups []string) Keystroke {
	return Keystroke{
		Text:        text,
		Code:        code,
		Name:        NameOfKey(code),
		hasCode:     true,
		Payload:     payload,
		MatchGroups: groups,
	}
}

// Matches is the canonical predicate behind every generated Is*
// shorthand: it returns true iff this Keystroke's Name equals spec,
// compared case-insensitively when ignoreCase is true.
func (k Keystroke) Matches(spec string, ignoreCase bool) bool {
	if !k.hasCode {
		return false
	}
	if ignoreCase {
		return strings.EqualFold(k.Name, spec)
	}
	return k.Name == spec
}

// IsCtrl reports whether this Keystroke is exactly KEY_CTRL_<key> (no
// other modifiers) for the given base key name, e.g. IsCtrl("A").
func (k Keystroke) IsCtrl(key string) bool {
	return k.Matches("KEY_CTRL_"+strings.ToUpper(key), true)
}

// IsAlt reports whether this Keystroke is exactly KEY_ALT_<key>.
func (k Keystroke) IsAlt(key string) bool {
	return k.Matches("KEY_ALT_"+strings.ToUpper(key), true)
}

// IsShift reports whether this Keystroke is exactly KEY_SHIFT_<key>.
func (k Keystroke) IsShift(key string) bool {
	return k.Matches("KEY_SHIFT_"+strings.ToUpper(key), true)
}

// IsCtrlAlt reports whether this Keystroke is exactly KEY_CTRL_ALT_<key>.
func (k Keystroke) IsCtrlAlt(key string) bool {
	return k.Matches("KEY_CTRL_ALT_"+strings.ToUpper(key), true)
}

// Is reports whether this Keystroke is exactly KEY_<key>, with no
// modifiers engaged.
func (k Keystroke) Is(key string) bool {
	return k.Matches("KEY_"+strings.ToUpper(key), true)
}
