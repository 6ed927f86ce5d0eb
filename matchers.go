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

import (
	"encoding/base64"
	"strings"
)

// matchResult is the three-valued outcome of a single event-pattern
// matcher: the buffer definitely isn't this pattern, the buffer is a
// proper prefix of this pattern and more bytes might complete it, or
// the pattern matched outright.
type matchResult int

const (
	noMatch matchResult = iota
	incomplete
	matched
)

// matcher is a pure parser for one out-of-band terminal report. It
// never mutates buf and never blocks; "need more bytes" is reported via
// incomplete rather than by waiting.
type matcher func(buf string) (matchResult, Keystroke, int)

// eventMatchers lists every matcher in the fixed priority order the
// resolver tries them in.
var eventMatchers = []matcher{
	matchBracketedPaste,
	matchMouseSGR,
	matchMouseLegacy,
	matchSyncOutput,
	matchFocus,
	matchResize,
	matchKitty,
	matchModifyOtherKeys,
	matchLegacyCSI,
	matchDeviceAttrs,
	matchTermNameVersion,
	matchClipboard,
	matchWin32Input,
}

// prefixIncomplete reports whether buf is a non-empty proper prefix of
// full -- the standard way a fixed-string matcher reports "need more
// bytes" without claiming a match.
func prefixIncomplete(buf, full string) bool {
	return len(buf) > 0 && len(buf) < len(full) && full[:len(buf)] == buf
}

const (
	pasteBegin = "\x1b[200~"
	pasteEnd   = "\x1b[201~"
)

// matchBracketedPaste recognizes \x1b[200~ ... \x1b[201~, per clause 1
// of the event matcher battery. The payload may be multiline, so the
// closing marker is searched for anywhere after the opening one.
func matchBracketedPaste(buf string) (matchResult, Keystroke, int) {
	if !hasPrefixOrIsPrefixOf(buf, pasteBegin) {
		return noMatch, Keystroke{}, 0
	}
	if len(buf) < len(pasteBegin) {
		return incomplete, Keystroke{}, 0
	}
	rest := buf[len(pasteBegin):]
	idx := indexString(rest, pasteEnd)
	if idx < 0 {
		return incomplete, Keystroke{}, 0
	}
	text := rest[:idx]
	n := len(pasteBegin) + idx + len(pasteEnd)
	ks := newEventKeystroke(buf[:n], KeyBracketedPaste, PastePayload{Text: text}, []string{text})
	return matched, ks, n
}

func hasPrefixOrIsPrefixOf(buf, full string) bool {
	if len(buf) >= len(full) {
		return buf[:len(full)] == full
	}
	return full[:len(buf)] == buf
}

func indexString(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

// matchMouseSGR recognizes \x1b[<Cb;Cx;Cy(M|m), per clause 2.
func matchMouseSGR(buf string) (matchResult, Keystroke, int) {
	const prefix = "\x1b[<"
	if !hasPrefixOrIsPrefixOf(buf, prefix) {
		return noMatch, Keystroke{}, 0
	}
	if len(buf) < len(prefix) {
		return incomplete, Keystroke{}, 0
	}
	body := buf[len(prefix):]
	end := -1
	for i := 0; i < len(body); i++ {
		if body[i] == 'M' || body[i] == 'm' {
			end = i
			break
		}
		if !(body[i] == ';' || (body[i] >= '0' && body[i] <= '9')) {
			return noMatch, Keystroke{}, 0
		}
	}
	if end < 0 {
		return incomplete, Keystroke{}, 0
	}
	release := body[end] == 'm'
	parts := splitParams(body[:end])
	if len(parts) != 3 {
		return noMatch, Keystroke{}, 0
	}
	cb, ok1 := atoiNonNeg(parts[0])
	x, ok2 := atoiPositive(parts[1])
	y, ok3 := atoiPositive(parts[2])
	if !ok1 || !ok2 || !ok3 {
		return noMatch, Keystroke{}, 0
	}
	n := len(prefix) + end + 1
	payload := decodeMouseButton(cb, x, y, release)
	ks := newEventKeystroke(buf[:n], KeyMouseSGR, payload, parts)
	return matched, ks, n
}

// matchMouseLegacy recognizes \x1b[M followed by three raw bytes
// (Cb+32, Cx+32, Cy+32), per clause 3.
func matchMouseLegacy(buf string) (matchResult, Keystroke, int) {
	const prefix = "\x1b[M"
	if !hasPrefixOrIsPrefixOf(buf, prefix) {
		return noMatch, Keystroke{}, 0
	}
	if len(buf) < len(prefix)+3 {
		return incomplete, Keystroke{}, 0
	}
	cb := int(buf[len(prefix)]) - 32
	x := int(buf[len(prefix)+1]) - 32
	y := int(buf[len(prefix)+2]) - 32
	if x <= 0 || y <= 0 {
		return noMatch, Keystroke{}, 0
	}
	n := len(prefix) + 3
	payload := decodeMouseButton(cb, x, y, false)
	payload.Motion = cb&32 != 0
	ks := newEventKeystroke(buf[:n], KeyMouseLegacy, payload, nil)
	return matched, ks, n
}

// decodeMouseButton applies the Cb bit layout shared by SGR and legacy
// mouse reports: low 2 bits button, bit2 shift, bit3 meta, bit4 ctrl,
// bit5 motion, bit6 wheel.
func decodeMouseButton(cb, x, y int, release bool) MousePayload {
	button := cb & 0x3
	shift := cb&0x4 != 0
	meta := cb&0x8 != 0
	ctrl := cb&0x10 != 0
	motion := cb&0x20 != 0
	wheel := cb&0x40 != 0
	if wheel {
		button = cb & 0x1
	}
	return MousePayload{
		Button:  button,
		X:       x,
		Y:       y,
		Release: release,
		Drag:    motion && button != 3,
		Wheel:   wheel,
		Shift:   shift,
		Meta:    meta,
		Ctrl:    ctrl,
	}
}

// matchSyncOutput recognizes \x1b[?2026h / \x1b[?2026l (synchronized
// output begin/end reports), per clause 4.
func matchSyncOutput(buf string) (matchResult, Keystroke, int) {
	const begin = "\x1b[?2026h"
	const end = "\x1b[?2026l"
	if hasPrefixOrIsPrefixOf(buf, begin) {
		if len(buf) < len(begin) {
			return incomplete, Keystroke{}, 0
		}
		ks := newEventKeystroke(buf[:len(begin)], KeySyncBegin, SyncPayload{Begin: true}, nil)
		return matched, ks, len(begin)
	}
	if hasPrefixOrIsPrefixOf(buf, end) {
		if len(buf) < len(end) {
			return incomplete, Keystroke{}, 0
		}
		ks := newEventKeystroke(buf[:len(end)], KeySyncEnd, SyncPayload{Begin: false}, nil)
		return matched, ks, len(end)
	}
	return noMatch, Keystroke{}, 0
}

// matchFocus recognizes \x1b[I / \x1b[O (focus gained/lost), per clause 5.
func matchFocus(buf string) (matchResult, Keystroke, int) {
	const in = "\x1b[I"
	const out = "\x1b[O"
	if hasPrefixOrIsPrefixOf(buf, in) {
		if len(buf) < len(in) {
			return incomplete, Keystroke{}, 0
		}
		ks := newEventKeystroke(buf[:len(in)], KeyFocusIn, FocusPayload{Gained: true}, nil)
		return matched, ks, len(in)
	}
	if hasPrefixOrIsPrefixOf(buf, out) {
		if len(buf) < len(out) {
			return incomplete, Keystroke{}, 0
		}
		ks := newEventKeystroke(buf[:len(out)], KeyFocusOut, FocusPayload{Gained: false}, nil)
		return matched, ks, len(out)
	}
	return noMatch, Keystroke{}, 0
}

// matchResize recognizes \x1b[48;<h>;<w>;<ph>;<pw>t, per clause 6. The
// parsed dimensions are returned as the Keystroke's ResizePayload;
// Reader.ReadKey is responsible for updating the cached window
// dimensions collaborator atomically with delivering the event, so this
// matcher itself stays a pure function like every other one here.
func matchResize(buf string) (matchResult, Keystroke, int) {
	const prefix = "\x1b[48;"
	if !hasPrefixOrIsPrefixOf(buf, prefix) {
		return noMatch, Keystroke{}, 0
	}
	if len(buf) < len(prefix) {
		return incomplete, Keystroke{}, 0
	}
	body := buf[len(prefix):]
	end := -1
	for i := 0; i < len(body); i++ {
		if body[i] == 't' {
			end = i
			break
		}
		if !(body[i] == ';' || (body[i] >= '0' && body[i] <= '9')) {
			return noMatch, Keystroke{}, 0
		}
	}
	if end < 0 {
		return incomplete, Keystroke{}, 0
	}
	parts := splitParams(body[:end])
	if len(parts) != 4 {
		return noMatch, Keystroke{}, 0
	}
	h, ok1 := atoiPositive(parts[0])
	w, ok2 := atoiPositive(parts[1])
	if !ok1 || !ok2 {
		return noMatch, Keystroke{}, 0
	}
	n := len(prefix) + end + 1
	ks := newEventKeystroke(buf[:n], KeyResize, ResizePayload{Width: w, Height: h}, parts)
	return matched, ks, n
}

// kittyModsShift/Alt/Ctrl/Super are the bit positions of the Kitty/
// modifyOtherKeys modifier field, after subtracting 1, per clause 7/8.
const (
	kittyModShift = 1 << 0
	kittyModAlt   = 1 << 1
	kittyModCtrl  = 1 << 2
	kittyModSuper = 1 << 3
)

func decodeKittyMods(field int) ModMask {
	field--
	var m ModMask
	if field&kittyModShift != 0 {
		m |= ModShift
	}
	if field&kittyModAlt != 0 {
		m |= ModAlt
	}
	if field&kittyModCtrl != 0 {
		m |= ModCtrl
	}
	// The "super" bit is retained in the raw Kitty payload's Modifiers
	// field but intentionally not surfaced in the canonical ModMask.
	return m
}

// matchKitty recognizes the Kitty keyboard protocol's CSI-u form, per
// clause 7: \x1b[<unicode>[:<shifted>[:<base>]];<mods>[:<event>][;<codepoints>]u
func matchKitty(buf string) (matchResult, Keystroke, int) {
	body, n, state := scanCSIBody(buf, "\x1b[", 'u')
	if state != matched {
		return state, Keystroke{}, 0
	}
	fields := splitParams(body)
	if len(fields) < 1 {
		return noMatch, Keystroke{}, 0
	}
	keyParts := splitColon(fields[0])
	unicodeKey, ok := atoiNonNeg(keyParts[0])
	if !ok {
		return noMatch, Keystroke{}, 0
	}
	shiftedKey, baseKey := 0, 0
	if len(keyParts) > 1 {
		shiftedKey, _ = atoiNonNeg(keyParts[1])
	}
	if len(keyParts) > 2 {
		baseKey, _ = atoiNonNeg(keyParts[2])
	}

	modField, eventType := 1, 1
	if len(fields) > 1 {
		modParts := splitColon(fields[1])
		modField, _ = atoiPositive(modParts[0])
		if modField == 0 {
			modField = 1
		}
		if len(modParts) > 1 {
			eventType, _ = atoiPositive(modParts[1])
		}
	}

	var codepoints []int
	if len(fields) > 2 {
		for _, p := range splitParams(fields[2]) {
			if v, ok := atoiNonNeg(p); ok {
				codepoints = append(codepoints, v)
			}
		}
	}

	payload := KittyPayload{
		UnicodeKey:     unicodeKey,
		ShiftedKey:     shiftedKey,
		BaseKey:        baseKey,
		Modifiers:      modField - 1,
		EventType:      eventType,
		TextCodepoints: codepoints,
	}
	ks := newEventKeystroke(buf[:n], KeyKitty, payload, fields)
	ks.Modifiers = decodeKittyMods(modField)
	ks.Rune = rune(unicodeKey)
	return matched, ks, n
}

// matchModifyOtherKeys recognizes \x1b[27;<mods>;<keycode>~, per
// clause 8.
func matchModifyOtherKeys(buf string) (matchResult, Keystroke, int) {
	body, n, state := scanCSIBody(buf, "\x1b[", '~')
	if state != matched {
		return state, Keystroke{}, 0
	}
	fields := splitParams(body)
	if len(fields) != 3 || fields[0] != "27" {
		return noMatch, Keystroke{}, 0
	}
	modField, ok1 := atoiPositive(fields[1])
	code, ok2 := atoiNonNeg(fields[2])
	if !ok1 || !ok2 {
		return noMatch, Keystroke{}, 0
	}
	mod := decodeKittyMods(modField)
	r := rune(code)
	name := ModifiedRuneName(r, mod)
	if name == "" {
		return noMatch, Keystroke{}, 0
	}
	k, _ := KeyByName(name)
	ks := newKeyKeystroke(buf[:n], k, mod, r)
	return matched, ks, n
}

// legacyCSILetters maps a CSI final byte to the base application key it
// names for the "\x1b[1;<mods><letter>" form (arrows, Home, End).
var legacyCSILetters = map[byte]Key{
	'A': KeyUp, 'B': KeyDown, 'C': KeyRight, 'D': KeyLeft,
	'H': KeyHome, 'F': KeyEnd,
}

// legacyCSITilde maps the numeric parameter of a "\x1b[<num>~" / "\x1b[<num>;<mods>~"
// form to the base application key.
var legacyCSITilde = map[int]Key{
	1: KeyHome, 2: KeyInsert, 3: KeyDelete, 4: KeyEnd, 5: KeyPgUp, 6: KeyPgDn,
	15: KeyF5, 17: KeyF6, 18: KeyF7, 19: KeyF8, 20: KeyF9, 21: KeyF10,
	23: KeyF11, 24: KeyF12,
}

// matchLegacyCSI recognizes clause 9's three legacy-modifier forms:
// "\x1b[1;<mods><letter>", "\x1b[<num>;<mods>~", and
// "\x1bO<mods><letter>" (SS3).
func matchLegacyCSI(buf string) (matchResult, Keystroke, int) {
	if ks, n, state := matchSS3Modified(buf); state != noMatch {
		return state, ks, n
	}
	body, n, state := scanCSIGeneric(buf, "\x1b[")
	if state != matched {
		return state, Keystroke{}, 0
	}
	final := buf[n-1]
	params := body[:len(body)-1]
	fields := splitParams(params)

	switch final {
	case 'A', 'B', 'C', 'D', 'H', 'F':
		base, ok := legacyCSILetters[final]
		if !ok || len(fields) != 2 {
			return noMatch, Keystroke{}, 0
		}
		modField, ok := atoiPositive(fields[1])
		if !ok {
			return noMatch, Keystroke{}, 0
		}
		mod := decodeKittyMods(modField)
		name := ModifiedKeyName(base, mod)
		if name == "" {
			return noMatch, Keystroke{}, 0
		}
		k, _ := KeyByName(name)
		return matched, newKeyKeystroke(buf[:n], k, mod, 0), n
	case '~':
		if len(fields) != 2 {
			return noMatch, Keystroke{}, 0
		}
		num, ok1 := atoiPositive(fields[0])
		modField, ok2 := atoiPositive(fields[1])
		if !ok1 || !ok2 {
			return noMatch, Keystroke{}, 0
		}
		base, ok := legacyCSITilde[num]
		if !ok {
			return noMatch, Keystroke{}, 0
		}
		mod := decodeKittyMods(modField)
		name := ModifiedKeyName(base, mod)
		if name == "" {
			return noMatch, Keystroke{}, 0
		}
		k, _ := KeyByName(name)
		return matched, newKeyKeystroke(buf[:n], k, mod, 0), n
	}
	return noMatch, Keystroke{}, 0
}

// ss3Letters maps an SS3 final byte to its base application key.
var ss3Letters = map[byte]Key{
	'A': KeyUp, 'B': KeyDown, 'C': KeyRight, 'D': KeyLeft,
	'H': KeyHome, 'F': KeyEnd,
	'P': KeyF1, 'Q': KeyF2, 'R': KeyF3, 'S': KeyF4,
}

// matchSS3Modified recognizes "\x1bO<mods><letter>" -- an SS3 sequence
// carrying a single decimal modifier digit before its final byte.
func matchSS3Modified(buf string) (Keystroke, int, matchResult) {
	const prefix = "\x1bO"
	if !hasPrefixOrIsPrefixOf(buf, prefix) {
		return Keystroke{}, 0, noMatch
	}
	if len(buf) < len(prefix)+2 {
		if len(buf) <= len(prefix) {
			return Keystroke{}, 0, incomplete
		}
		if buf[len(prefix)] >= '1' && buf[len(prefix)] <= '9' {
			return Keystroke{}, 0, incomplete
		}
		return Keystroke{}, 0, noMatch
	}
	digit := buf[len(prefix)]
	final := buf[len(prefix)+1]
	if digit < '1' || digit > '9' {
		return Keystroke{}, 0, noMatch
	}
	base, ok := ss3Letters[final]
	if !ok {
		return Keystroke{}, 0, noMatch
	}
	modField := int(digit - '0')
	mod := decodeKittyMods(modField)
	name := ModifiedKeyName(base, mod)
	if name == "" {
		return Keystroke{}, 0, noMatch
	}
	k, _ := KeyByName(name)
	n := len(prefix) + 2
	return newKeyKeystroke(buf[:n], k, mod, 0), n, matched
}

// matchDeviceAttrs recognizes "\x1b[?...c" and "\x1b[>...c" primary/
// secondary device-attribute responses and DEC private-mode status
// reports shaped "\x1b[?...;...$y", per clause 10. These never surface
// a user-visible Keystroke; Reader routes them to the device-attributes
// bridge instead.
func matchDeviceAttrs(buf string) (matchResult, Keystroke, int) {
	for _, prefix := range []string{"\x1b[?", "\x1b[>"} {
		if !hasPrefixOrIsPrefixOf(buf, prefix) {
			continue
		}
		if len(buf) < len(prefix) {
			return incomplete, Keystroke{}, 0
		}
		body := buf[len(prefix):]
		for i := 0; i < len(body); i++ {
			c := body[i]
			if c >= '0' && c <= '9' || c == ';' || c == '$' {
				continue
			}
			if c == 'c' || c == 'y' {
				n := len(prefix) + i + 1
				raw := buf[:n]
				code := KeyDeviceAttrs
				if c == 'y' {
					code = KeyModeStatus
				}
				ks := newEventKeystroke(raw, code, nil, splitParams(body[:i]))
				return matched, ks, n
			}
			return noMatch, Keystroke{}, 0
		}
		return incomplete, Keystroke{}, 0
	}
	return noMatch, Keystroke{}, 0
}

// matchTermNameVersion recognizes the DCS terminal-name-and-version
// report "\x1bP>|<name> (<version>)\x1b\\", sent unsolicited by some
// terminals or in reply to an XTVERSION query. A supplemental event
// beyond the core battery; Reader routes it to the term-name bridge
// rather than surfacing it as a Keystroke.
func matchTermNameVersion(buf string) (matchResult, Keystroke, int) {
	const prefix = "\x1bP>|"
	const term = "\x1b\\"
	if !hasPrefixOrIsPrefixOf(buf, prefix) {
		return noMatch, Keystroke{}, 0
	}
	if len(buf) < len(prefix) {
		return incomplete, Keystroke{}, 0
	}
	rest := buf[len(prefix):]
	idx := indexString(rest, term)
	if idx < 0 {
		return incomplete, Keystroke{}, 0
	}
	body := rest[:idx]
	n := len(prefix) + idx + len(term)
	name, version := body, ""
	if p := strings.IndexByte(body, '('); p >= 0 && strings.HasSuffix(body, ")") {
		name = strings.TrimSpace(body[:p])
		version = body[p+1 : len(body)-1]
	}
	ks := newEventKeystroke(buf[:n], KeyTermName, TermNamePayload{Name: name, Version: version}, nil)
	return matched, ks, n
}

// matchClipboard recognizes an OSC 52 clipboard report,
// "\x1b]52;<c>;<base64>" terminated by BEL or ST. A supplemental event
// beyond the core battery: it arrives unsolicited on the same wire as
// keystrokes, so it is surfaced to the caller as an ordinary Keystroke
// rather than bridged away.
func matchClipboard(buf string) (matchResult, Keystroke, int) {
	const prefix = "\x1b]52;"
	if !hasPrefixOrIsPrefixOf(buf, prefix) {
		return noMatch, Keystroke{}, 0
	}
	if len(buf) < len(prefix) {
		return incomplete, Keystroke{}, 0
	}
	body := buf[len(prefix):]
	for i := 0; i < len(body); i++ {
		var termLen int
		switch {
		case body[i] == 0x07:
			termLen = 1
		case body[i] == 0x1b && i+1 < len(body) && body[i+1] == '\\':
			termLen = 2
		default:
			continue
		}
		parts := strings.SplitN(body[:i], ";", 2)
		if len(parts) != 2 {
			return noMatch, Keystroke{}, 0
		}
		data, err := base64.StdEncoding.DecodeString(parts[1])
		if err != nil {
			return noMatch, Keystroke{}, 0
		}
		n := len(prefix) + i + termLen
		ks := newEventKeystroke(buf[:n], KeyClipboard, ClipboardPayload{Data: data}, parts)
		return matched, ks, n
	}
	return incomplete, Keystroke{}, 0
}

// matchWin32Input recognizes the Win32-input-mode CSI report's shape,
// "\x1b[<Vk>;<Sc>;<Uc>;<Kd>;<Cs>;<Rc>_". This package targets POSIX
// terminals and never enables win32-input-mode itself, but if a stream
// captured on Windows Terminal is replayed through it, the sequence's
// shape is still recognized as a named event instead of being swallowed
// byte-by-byte as unresolvable noise.
func matchWin32Input(buf string) (matchResult, Keystroke, int) {
	body, n, state := scanCSIBody(buf, "\x1b[", '_')
	if state != matched {
		return state, Keystroke{}, 0
	}
	fields := splitParams(body)
	ks := newEventKeystroke(buf[:n], KeyWin32Input, nil, fields)
	return matched, ks, n
}
