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
	"reflect"
	"testing"
)

func TestResolveArrowKey(t *testing.T) {
	tables := xtermTables(t)
	ks, n, waiting := Resolve("\x1b[A", tables, false)
	if waiting {
		t.Fatal("did not expect to wait for a complete sequence")
	}
	if n != 3 {
		t.Fatalf("consumed = %d, want 3", n)
	}
	if ks.Name != "KEY_UP" || ks.Text != "\x1b[A" {
		t.Errorf("got %+v, want KEY_UP / \\x1b[A", ks)
	}
}

func TestResolvePlainText(t *testing.T) {
	tables := xtermTables(t)
	ks, n, waiting := Resolve("a", tables, false)
	if waiting {
		t.Fatal("did not expect to wait")
	}
	if n != 1 || ks.IsSequence() || ks.Text != "a" {
		t.Errorf("got %+v / %d, want plain text 'a'", ks, n)
	}
}

func TestResolveLoneEscWaitsUntilFinal(t *testing.T) {
	tables := xtermTables(t)
	_, _, waiting := Resolve("\x1b", tables, false)
	if !waiting {
		t.Fatal("expected a lone ESC to wait for possible continuation")
	}
	ks, n, waiting := Resolve("\x1b", tables, true)
	if waiting {
		t.Fatal("did not expect to wait once is_final is true")
	}
	if n != 1 || ks.Name != "KEY_ESCAPE" {
		t.Errorf("got %+v / %d, want bare KEY_ESCAPE", ks, n)
	}
}

func TestResolveLongestPrefixWins(t *testing.T) {
	tables := xtermTables(t)
	ks, n, waiting := Resolve("\x1b[1;5A", tables, false)
	if waiting {
		t.Fatal("did not expect to wait on a complete sequence")
	}
	if n != len("\x1b[1;5A") {
		t.Fatalf("consumed = %d, want full length", n)
	}
	if ks.Name != "KEY_CTRL_UP" {
		t.Errorf("got name %q, want KEY_CTRL_UP", ks.Name)
	}
}

func TestResolvePrefixOfLongerSequenceNeverPreferred(t *testing.T) {
	// "\x1b[A" is KEY_UP; feeding it as a prefix of a longer (nonexistent)
	// buffer still resolves to KEY_UP when is_final, and waits otherwise
	// only if it remains a genuine prefix -- it is not here, since xterm's
	// table has no sequence beginning "\x1b[A" longer than three bytes.
	tables := xtermTables(t)
	ks, n, waiting := Resolve("\x1b[A", tables, false)
	if waiting {
		t.Fatal("\\x1b[A is a complete, non-extensible sequence in this table")
	}
	if ks.Name != "KEY_UP" || n != 3 {
		t.Errorf("got %+v / %d, want KEY_UP / 3", ks, n)
	}
}

func TestResolveMouseSGREvent(t *testing.T) {
	tables := xtermTables(t)
	ks, n, waiting := Resolve("\x1b[<0;10;20M", tables, false)
	if waiting {
		t.Fatal("did not expect to wait")
	}
	if n != len("\x1b[<0;10;20M") {
		t.Fatalf("consumed = %d, want full length", n)
	}
	p, ok := ks.Payload.(MousePayload)
	if !ok || p.Button != 0 || p.X != 10 || p.Y != 20 || p.Release {
		t.Errorf("got payload %+v, want button=0 x=10 y=20 release=false", ks.Payload)
	}
}

func TestResolveBracketedPasteEvent(t *testing.T) {
	tables := xtermTables(t)
	ks, n, waiting := Resolve("\x1b[200~hello\x1b[201~", tables, false)
	if waiting {
		t.Fatal("did not expect to wait")
	}
	if n != len("\x1b[200~hello\x1b[201~") {
		t.Fatalf("consumed = %d, want full length", n)
	}
	p, ok := ks.Payload.(PastePayload)
	if !ok || p.Text != "hello" {
		t.Errorf("got payload %+v, want text=hello", ks.Payload)
	}
}

func TestResolveFocusEvent(t *testing.T) {
	tables := xtermTables(t)
	ks, n, waiting := Resolve("\x1b[I", tables, false)
	if waiting {
		t.Fatal("did not expect to wait")
	}
	if n != 3 {
		t.Fatalf("consumed = %d, want 3", n)
	}
	p, ok := ks.Payload.(FocusPayload)
	if !ok || !p.Gained {
		t.Errorf("got payload %+v, want Gained=true", ks.Payload)
	}
}

func TestResolveEmptyBuffer(t *testing.T) {
	tables := xtermTables(t)
	ks, n, waiting := Resolve("", tables, false)
	if waiting || n != 0 || !ks.Empty() {
		t.Errorf("got %+v / %d / waiting=%v, want empty/0/false", ks, n, waiting)
	}
}

func TestResolveSplitMultiByteRuneWaitsUntilFinal(t *testing.T) {
	tables := xtermTables(t)
	// "é" (e acute) is 2 bytes (0xc3 0xa9) in UTF-8; truncated to
	// its lead byte, Resolve must wait rather than emit U+FFFD.
	full := "é"
	lead := full[:1]

	_, _, waiting := Resolve(lead, tables, false)
	if !waiting {
		t.Fatal("expected a truncated multi-byte rune to wait for its continuation bytes")
	}

	ks, n, waiting := Resolve(lead, tables, true)
	if waiting {
		t.Fatal("did not expect to wait once is_final is true")
	}
	if n != 1 || ks.Text != "�" {
		t.Errorf("got %+v / %d, want a single replacement rune once final", ks, n)
	}

	ks, n, waiting = Resolve(full, tables, false)
	if waiting {
		t.Fatal("a complete multi-byte rune should resolve immediately")
	}
	if n != len(full) || ks.Text != full {
		t.Errorf("got %+v / %d, want the full rune decoded", ks, n)
	}
}

func TestResolveIsPureAcrossRepeatedCalls(t *testing.T) {
	tables := xtermTables(t)
	ks1, n1, w1 := Resolve("\x1b[A", tables, false)
	ks2, n2, w2 := Resolve("\x1b[A", tables, false)
	if !reflect.DeepEqual(ks1, ks2) || n1 != n2 || w1 != w2 {
		t.Fatal("Resolve should be a pure function of its arguments")
	}
}
