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
	"sort"

	"github.com/tinyterm/keyin/terminfo"
)

// Tables is the immutable product of the sequence table builder: every
// byte sequence this Terminal's keyboard can send, the name each
// application key answers to, and the set of proper prefixes the
// resolver must treat as "might still grow."  A Tables is built once per
// Reader and never mutated afterward, so it is safe to share across
// goroutines that only read it.
type Tables struct {
	// bySeq holds every (sequence, key) pair, longest sequence first,
	// so a linear scan finds the longest match in one pass.
	bySeq []literalEntry

	// CodeName maps every key this table knows about to its canonical
	// KEY_* name.
	CodeName map[Key]string

	// PrefixSet contains every non-empty proper prefix of every
	// sequence in bySeq.
	PrefixSet map[string]bool

	// HasMouse reports whether the terminal's terminfo entry advertises
	// legacy mouse reporting (kmous) at all. Mouse events themselves are
	// decoded by the event matchers rather than this table, but callers
	// deciding whether to request mouse mode from the terminal need to
	// know whether doing so is meaningful.
	HasMouse bool
}

// BuildTables constructs a Tables from a terminal's capability strings,
// the literal mixin, and the synthetic modifier names recorded in
// key.go's init(). Capabilities that terminfo reports empty are
// skipped, as is any terminfo string listed in overrideSeqs; the
// literal mixin is applied afterward and wins any collision.
func BuildTables(ti *terminfo.Terminfo) *Tables {
	seqs := map[string]Key{}

	for _, e := range capTable {
		s := e.cap(ti)
		if s == "" {
			continue
		}
		if overrideSeqs[s] {
			continue
		}
		seqs[s] = e.key
	}
	for _, e := range literalMixin {
		seqs[e.seq] = e.key
	}
	// The mouse prefix itself is handled by the event matchers, not the
	// plain sequence table, so it is intentionally not inserted into
	// seqs here -- HasMouse only records whether the capability exists.
	hasMouse := ti.Mouse != ""

	codeName := map[Key]string{}
	for name, k := range modKeyCode {
		codeName[k] = name
	}
	for _, k := range seqs {
		if _, ok := codeName[k]; !ok {
			codeName[k] = NameOfKey(k)
		}
	}

	bySeq := make([]literalEntry, 0, len(seqs))
	for s, k := range seqs {
		bySeq = append(bySeq, literalEntry{seq: s, key: k})
	}
	sort.Slice(bySeq, func(i, j int) bool {
		if len(bySeq[i].seq) != len(bySeq[j].seq) {
			return len(bySeq[i].seq) > len(bySeq[j].seq)
		}
		return bySeq[i].seq < bySeq[j].seq
	})

	prefixes := map[string]bool{}
	for _, e := range bySeq {
		s := e.seq
		for k := 1; k < len(s); k++ {
			prefixes[s[:k]] = true
		}
	}

	return &Tables{bySeq: bySeq, CodeName: codeName, PrefixSet: prefixes, HasMouse: hasMouse}
}

// Lookup scans the sequence table longest-first and returns the longest
// entry that buf starts with, if any.
func (t *Tables) Lookup(buf string) (Key, string, bool) {
	for _, e := range t.bySeq {
		if len(e.seq) <= len(buf) && buf[:len(e.seq)] == e.seq {
			return e.key, e.seq, true
		}
	}
	return 0, "", false
}

// IsPrefix reports whether buf is a non-empty proper prefix of some
// sequence in the table (and therefore might still grow into a match).
func (t *Tables) IsPrefix(buf string) bool {
	if buf == "" {
		return false
	}
	return t.PrefixSet[buf]
}
