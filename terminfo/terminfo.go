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

// Package terminfo implements the "terminfo lookup" collaborator
// described by the input decoder's spec: given a $TERM name, return the
// key-sequence capability strings the decoder needs to seed its
// sequence table.  It only carries the capabilities relevant to input
// decoding (kcuu1, kf1, kmous, ...) -- it is not a general terminfo
// rendering engine, since emitting output sequences is out of scope.
package terminfo

import (
	"errors"
	"sync"
)

// ErrTermNotFound indicates that no terminfo entry could be located for
// the requested terminal name.
var ErrTermNotFound = errors.New("terminfo: terminal entry not found")

// Terminfo holds the capability strings relevant to decoding input for
// one kind of terminal.  Field names mirror terminfo's own short names
// in the doc comment; an empty string means the terminal does not
// support that capability.
type Terminfo struct {
	Name    string
	Aliases []string

	Columns int
	Lines   int

	KeyBackspace string // kbs
	KeyF1        string // kf1
	KeyF2        string
	KeyF3        string
	KeyF4        string
	KeyF5        string
	KeyF6        string
	KeyF7        string
	KeyF8        string
	KeyF9        string
	KeyF10       string
	KeyF11       string
	KeyF12       string
	KeyF13       string
	KeyF14       string
	KeyF15       string
	KeyF16       string
	KeyF17       string
	KeyF18       string
	KeyF19       string
	KeyF20       string
	KeyInsert    string // kich1
	KeyDelete    string // kdch1
	KeyHome      string // khome
	KeyEnd       string // kend
	KeyHelp      string // khlp
	KeyPgUp      string // kpp
	KeyPgDn      string // knp
	KeyUp        string // kcuu1
	KeyDown      string // kcud1
	KeyLeft      string // kcub1
	KeyRight     string // kcuf1
	KeyBacktab   string // kcbt
	KeyClear     string // kclr
	KeyExit      string // kext
	KeyCancel    string // kcan
	KeyPrint     string // kprt

	// Mouse is the prefix a legacy mouse report is wrapped in (kmous);
	// modern terminals report this as "\x1b[M" regardless of terminfo.
	Mouse string
}

// TParm evaluates a terminfo parameterized capability string against up
// to nine integer parameters. Only a small, commonly used subset of the
// terminfo %-operator language is implemented: %p, %d, %{, %+, %-, and
// %i, which is sufficient for the parameterized strings that appear in
// key capability tables (there are none among the kcuuN-style entries
// above in practice, but TParm exists so terminal-specific overrides can
// use parameterized forms without requiring a second code path).
func (t *Terminfo) TParm(s string, p ...int) string {
	var params [9]int
	for i := 0; i < len(params) && i < len(p); i++ {
		params[i] = p[i]
	}
	var stack []int
	push := func(v int) { stack = append(stack, v) }
	pop := func() int {
		if len(stack) == 0 {
			return 0
		}
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v
	}
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '%' || i+1 >= len(s) {
			out = append(out, s[i])
			continue
		}
		i++
		switch s[i] {
		case '%':
			out = append(out, '%')
		case 'i':
			params[0]++
			params[1]++
		case 'p':
			i++
			if i < len(s) && s[i] >= '1' && s[i] <= '9' {
				push(params[s[i]-'1'])
			}
		case 'd':
			out = append(out, []byte(itoa(pop()))...)
		case '{':
			n := 0
			i++
			for i < len(s) && s[i] >= '0' && s[i] <= '9' {
				n = n*10 + int(s[i]-'0')
				i++
			}
			push(n)
			if i < len(s) && s[i] != '}' {
				i--
			}
		case '+':
			b, a := pop(), pop()
			push(a + b)
		case '-':
			b, a := pop(), pop()
			push(a - b)
		}
	}
	return string(out)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	pos := len(buf)
	for n > 0 {
		pos--
		buf[pos] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}

var (
	dbLock    sync.Mutex
	terminfos = map[string]*Terminfo{}
)

// AddTerminfo registers a Terminfo entry under its Name and Aliases.
// Called from each database entry's init().
func AddTerminfo(t *Terminfo) {
	dbLock.Lock()
	defer dbLock.Unlock()
	terminfos[t.Name] = t
	for _, a := range t.Aliases {
		terminfos[a] = t
	}
}

// LookupTerminfo finds the Terminfo registered for the given $TERM
// value.  If name is unknown, it falls back to "ansi" so callers always
// get a usable (if conservative) set of key sequences, matching the
// behavior of curses-based libraries that degrade gracefully on unknown
// terminals.
func LookupTerminfo(name string) (*Terminfo, error) {
	dbLock.Lock()
	defer dbLock.Unlock()
	if name == "" {
		name = "ansi"
	}
	if t, ok := terminfos[name]; ok {
		return t, nil
	}
	if t, ok := terminfos["ansi"]; ok {
		return t, nil
	}
	return nil, ErrTermNotFound
}
