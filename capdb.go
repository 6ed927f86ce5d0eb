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

import "github.com/tinyterm/keyin/terminfo"

// capEntry names one terminfo-derived key capability: cap extracts the
// raw string from a Terminfo, and key is the application key it decodes
// to. Ordering within capTable is significant only in that it is the
// order the sequence table is rebuilt in -- it has no effect on lookup.
type capEntry struct {
	name string
	cap  func(*terminfo.Terminfo) string
	key  Key
}

// capTable is the capability database: the ordered set of standard
// curses-compatible keys this library seeds from terminfo.
var capTable = []capEntry{
	{"key_backspace", func(t *terminfo.Terminfo) string { return t.KeyBackspace }, KeyBackspace},
	{"key_up", func(t *terminfo.Terminfo) string { return t.KeyUp }, KeyUp},
	{"key_down", func(t *terminfo.Terminfo) string { return t.KeyDown }, KeyDown},
	{"key_left", func(t *terminfo.Terminfo) string { return t.KeyLeft }, KeyLeft},
	{"key_right", func(t *terminfo.Terminfo) string { return t.KeyRight }, KeyRight},
	{"key_home", func(t *terminfo.Terminfo) string { return t.KeyHome }, KeyHome},
	{"key_end", func(t *terminfo.Terminfo) string { return t.KeyEnd }, KeyEnd},
	{"key_ic", func(t *terminfo.Terminfo) string { return t.KeyInsert }, KeyInsert},
	{"key_dc", func(t *terminfo.Terminfo) string { return t.KeyDelete }, KeyDelete},
	{"key_help", func(t *terminfo.Terminfo) string { return t.KeyHelp }, KeyHelp},
	{"key_npage", func(t *terminfo.Terminfo) string { return t.KeyPgDn }, KeyPgDn},
	{"key_ppage", func(t *terminfo.Terminfo) string { return t.KeyPgUp }, KeyPgUp},
	{"key_btab", func(t *terminfo.Terminfo) string { return t.KeyBacktab }, KeyBacktab},
	{"key_clear", func(t *terminfo.Terminfo) string { return t.KeyClear }, KeyClear},
	{"key_exit", func(t *terminfo.Terminfo) string { return t.KeyExit }, KeyExit},
	{"key_cancel", func(t *terminfo.Terminfo) string { return t.KeyCancel }, KeyCancel},
	{"key_print", func(t *terminfo.Terminfo) string { return t.KeyPrint }, KeyPrint},
	{"key_f1", func(t *terminfo.Terminfo) string { return t.KeyF1 }, KeyF1},
	{"key_f2", func(t *terminfo.Terminfo) string { return t.KeyF2 }, KeyF2},
	{"key_f3", func(t *terminfo.Terminfo) string { return t.KeyF3 }, KeyF3},
	{"key_f4", func(t *terminfo.Terminfo) string { return t.KeyF4 }, KeyF4},
	{"key_f5", func(t *terminfo.Terminfo) string { return t.KeyF5 }, KeyF5},
	{"key_f6", func(t *terminfo.Terminfo) string { return t.KeyF6 }, KeyF6},
	{"key_f7", func(t *terminfo.Terminfo) string { return t.KeyF7 }, KeyF7},
	{"key_f8", func(t *terminfo.Terminfo) string { return t.KeyF8 }, KeyF8},
	{"key_f9", func(t *terminfo.Terminfo) string { return t.KeyF9 }, KeyF9},
	{"key_f10", func(t *terminfo.Terminfo) string { return t.KeyF10 }, KeyF10},
	{"key_f11", func(t *terminfo.Terminfo) string { return t.KeyF11 }, KeyF11},
	{"key_f12", func(t *terminfo.Terminfo) string { return t.KeyF12 }, KeyF12},
	{"key_f13", func(t *terminfo.Terminfo) string { return t.KeyF13 }, KeyF13},
	{"key_f14", func(t *terminfo.Terminfo) string { return t.KeyF14 }, KeyF14},
	{"key_f15", func(t *terminfo.Terminfo) string { return t.KeyF15 }, KeyF15},
	{"key_f16", func(t *terminfo.Terminfo) string { return t.KeyF16 }, KeyF16},
	{"key_f17", func(t *terminfo.Terminfo) string { return t.KeyF17 }, KeyF17},
	{"key_f18", func(t *terminfo.Terminfo) string { return t.KeyF18 }, KeyF18},
	{"key_f19", func(t *terminfo.Terminfo) string { return t.KeyF19 }, KeyF19},
	{"key_f20", func(t *terminfo.Terminfo) string { return t.KeyF20 }, KeyF20},
}

// literalEntry is a (sequence, keycode) pair seeded independent of
// terminfo: application-mode keypad codes most terminals emit
// regardless of what their terminfo entry claims, plus a few CSI forms
// that are de facto universal. These are applied after the capability
// table and win on collision -- see BuildTables in table.go.
type literalEntry struct {
	seq string
	key Key
}

var literalMixin = []literalEntry{
	// Application-mode cursor keys (SS3), emitted by xterm and
	// compatible terminals once "application cursor keys" mode (DECCKM)
	// is engaged, independent of what the active terminfo entry says.
	{"\x1bOA", KeyUp},
	{"\x1bOB", KeyDown},
	{"\x1bOC", KeyRight},
	{"\x1bOD", KeyLeft},
	{"\x1bOH", KeyHome},
	{"\x1bOF", KeyEnd},

	// Normal-mode (non-application) cursor keys, the de facto universal
	// CSI form that most terminfo entries agree on but which we also
	// seed directly so a misconfigured $TERM still decodes arrows.
	{"\x1b[A", KeyUp},
	{"\x1b[B", KeyDown},
	{"\x1b[C", KeyRight},
	{"\x1b[D", KeyLeft},
	{"\x1b[H", KeyHome},
	{"\x1b[F", KeyEnd},
	{"\x1b[Z", KeyBacktab},

	// CSI-tilde edit keys, as used by xterm and the Linux console alike.
	{"\x1b[1~", KeyHome},
	{"\x1b[2~", KeyInsert},
	{"\x1b[3~", KeyDelete},
	{"\x1b[4~", KeyEnd},
	{"\x1b[5~", KeyPgUp},
	{"\x1b[6~", KeyPgDn},

	// Plain ASCII control characters that are also reachable via a
	// terminfo capability on some terminals but should always decode
	// the same way.
	{"\x7f", KeyBackspace},
	{"\x08", KeyBackspace},
	{"\x1b", KeyEscape},
	{"\r", KeyEnter},
	{"\t", KeyTab},
}

// overrideSeqs lists sequences whose literal form must supersede
// whatever the terminal's own terminfo entry claims, because that
// terminfo entry has been observed to be wrong in practice. xterm's
// "kcbt" (shift-tab) capability is frequently misreported as "\x1b[Z"
// itself by terminals claiming a screen/tmux style TERM while actually
// running inside xterm; the literal mixin above already supplies the
// correct form, so this list documents the case rather than duplicating
// it.
var overrideSeqs = map[string]bool{
	"\x1b[Z": true,
}
