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

import "testing"

func TestMatchBracketedPaste(t *testing.T) {
	state, ks, n := matchBracketedPaste("\x1b[200~hello\x1b[201~")
	if state != matched {
		t.Fatalf("expected matched, got %v", state)
	}
	if n != len("\x1b[200~hello\x1b[201~") {
		t.Errorf("consumed = %d, want full length", n)
	}
	p, ok := ks.Payload.(PastePayload)
	if !ok || p.Text != "hello" {
		t.Errorf("payload = %+v, want PastePayload{Text: hello}", ks.Payload)
	}
}

func TestMatchBracketedPasteIncomplete(t *testing.T) {
	state, _, _ := matchBracketedPaste("\x1b[200~hello")
	if state != incomplete {
		t.Fatalf("expected incomplete without closing marker, got %v", state)
	}
}

func TestMatchMouseSGR(t *testing.T) {
	state, ks, n := matchMouseSGR("\x1b[<0;10;20M")
	if state != matched {
		t.Fatalf("expected matched, got %v", state)
	}
	if n != len("\x1b[<0;10;20M") {
		t.Errorf("consumed = %d, want full length", n)
	}
	p, ok := ks.Payload.(MousePayload)
	if !ok {
		t.Fatalf("expected MousePayload, got %T", ks.Payload)
	}
	if p.Button != 0 || p.X != 10 || p.Y != 20 || p.Release {
		t.Errorf("payload = %+v, want button=0 x=10 y=20 release=false", p)
	}
}

func TestMatchMouseSGRRelease(t *testing.T) {
	_, ks, _ := matchMouseSGR("\x1b[<0;5;5m")
	p := ks.Payload.(MousePayload)
	if !p.Release {
		t.Fatal("expected release=true for 'm' terminator")
	}
}

func TestMatchMouseLegacy(t *testing.T) {
	buf := "\x1b[M" + string([]byte{32, 42, 52})
	state, ks, n := matchMouseLegacy(buf)
	if state != matched {
		t.Fatalf("expected matched, got %v", state)
	}
	if n != len(buf) {
		t.Errorf("consumed = %d, want %d", n, len(buf))
	}
	p := ks.Payload.(MousePayload)
	if p.X != 10 || p.Y != 20 {
		t.Errorf("payload = %+v, want x=10 y=20", p)
	}
}

func TestMatchFocus(t *testing.T) {
	state, ks, n := matchFocus("\x1b[I")
	if state != matched || n != 3 {
		t.Fatalf("expected matched/3, got %v/%d", state, n)
	}
	if !ks.Payload.(FocusPayload).Gained {
		t.Fatal("expected Gained=true for focus in")
	}

	state, ks, n = matchFocus("\x1b[O")
	if state != matched || n != 3 {
		t.Fatalf("expected matched/3, got %v/%d", state, n)
	}
	if ks.Payload.(FocusPayload).Gained {
		t.Fatal("expected Gained=false for focus out")
	}
}

func TestMatchSyncOutput(t *testing.T) {
	state, ks, n := matchSyncOutput("\x1b[?2026h")
	if state != matched || ks.Code != KeySyncBegin || n != len("\x1b[?2026h") {
		t.Fatalf("unexpected result: %v %v %d", state, ks.Code, n)
	}
	state, ks, n = matchSyncOutput("\x1b[?2026l")
	if state != matched || ks.Code != KeySyncEnd || n != len("\x1b[?2026l") {
		t.Fatalf("unexpected result: %v %v %d", state, ks.Code, n)
	}
}

func TestMatchResize(t *testing.T) {
	state, ks, n := matchResize("\x1b[48;40;80;480;960t")
	if state != matched {
		t.Fatalf("expected matched, got %v", state)
	}
	if n != len("\x1b[48;40;80;480;960t") {
		t.Errorf("consumed = %d, want full length", n)
	}
	p := ks.Payload.(ResizePayload)
	if p.Width != 80 || p.Height != 40 {
		t.Errorf("payload = %+v, want width=80 height=40", p)
	}
}

func TestMatchKitty(t *testing.T) {
	state, ks, n := matchKitty("\x1b[97;5u")
	if state != matched {
		t.Fatalf("expected matched, got %v", state)
	}
	if n != len("\x1b[97;5u") {
		t.Errorf("consumed = %d, want full length", n)
	}
	p := ks.Payload.(KittyPayload)
	if p.UnicodeKey != 97 {
		t.Errorf("UnicodeKey = %d, want 97", p.UnicodeKey)
	}
	if ks.Modifiers&ModCtrl == 0 {
		t.Errorf("expected ModCtrl set from mods field 5, got %v", ks.Modifiers)
	}
}

func TestMatchModifyOtherKeys(t *testing.T) {
	state, ks, n := matchModifyOtherKeys("\x1b[27;5;97~")
	if state != matched {
		t.Fatalf("expected matched, got %v", state)
	}
	if n != len("\x1b[27;5;97~") {
		t.Errorf("consumed = %d, want full length", n)
	}
	if ks.Name != "KEY_CTRL_A" {
		t.Errorf("Name = %q, want KEY_CTRL_A", ks.Name)
	}
}

func TestMatchLegacyCSIArrow(t *testing.T) {
	state, ks, n := matchLegacyCSI("\x1b[1;5A")
	if state != matched {
		t.Fatalf("expected matched, got %v", state)
	}
	if n != len("\x1b[1;5A") {
		t.Errorf("consumed = %d, want full length", n)
	}
	if ks.Name != "KEY_CTRL_UP" {
		t.Errorf("Name = %q, want KEY_CTRL_UP", ks.Name)
	}
}

func TestMatchLegacyCSITilde(t *testing.T) {
	state, ks, n := matchLegacyCSI("\x1b[3;5~")
	if state != matched {
		t.Fatalf("expected matched, got %v", state)
	}
	if n != len("\x1b[3;5~") {
		t.Errorf("consumed = %d, want full length", n)
	}
	if ks.Name != "KEY_CTRL_DELETE" {
		t.Errorf("Name = %q, want KEY_CTRL_DELETE", ks.Name)
	}
}

func TestMatchSS3Modified(t *testing.T) {
	ks, n, state := matchSS3Modified("\x1bO5A")
	if state != matched {
		t.Fatalf("expected matched, got %v", state)
	}
	if n != 4 {
		t.Errorf("consumed = %d, want 4", n)
	}
	if ks.Name != "KEY_CTRL_UP" {
		t.Errorf("Name = %q, want KEY_CTRL_UP", ks.Name)
	}
}

func TestMatchDeviceAttrsConsumedSilently(t *testing.T) {
	state, ks, n := matchDeviceAttrs("\x1b[?1;2c")
	if state != matched {
		t.Fatalf("expected matched, got %v", state)
	}
	if n != len("\x1b[?1;2c") {
		t.Errorf("consumed = %d, want full length", n)
	}
	if ks.Code != KeyDeviceAttrs {
		t.Errorf("Code = %v, want KeyDeviceAttrs", ks.Code)
	}
}

func TestMatchMouseSGRRejectsMalformedCoords(t *testing.T) {
	state, _, _ := matchMouseSGR("\x1b[<0;0;0M")
	if state != noMatch {
		t.Fatalf("expected noMatch for zero coordinates, got %v", state)
	}
}

func TestMatchTermNameVersion(t *testing.T) {
	buf := "\x1bP>|tmux 3.4 (build 123)\x1b\\"
	state, ks, n := matchTermNameVersion(buf)
	if state != matched {
		t.Fatalf("expected matched, got %v", state)
	}
	if n != len(buf) {
		t.Errorf("consumed = %d, want full length", n)
	}
	p := ks.Payload.(TermNamePayload)
	if p.Name != "tmux 3.4" || p.Version != "build 123" {
		t.Errorf("payload = %+v, want Name=%q Version=%q", p, "tmux 3.4", "build 123")
	}
}

func TestMatchClipboardBase64(t *testing.T) {
	buf := "\x1b]52;c;aGVsbG8=\x07"
	state, ks, n := matchClipboard(buf)
	if state != matched {
		t.Fatalf("expected matched, got %v", state)
	}
	if n != len(buf) {
		t.Errorf("consumed = %d, want full length", n)
	}
	p := ks.Payload.(ClipboardPayload)
	if string(p.Data) != "hello" {
		t.Errorf("payload = %q, want %q", p.Data, "hello")
	}
}

func TestMatchClipboardRejectsInvalidBase64(t *testing.T) {
	state, _, _ := matchClipboard("\x1b]52;c;not-base64!!\x07")
	if state != noMatch {
		t.Fatalf("expected noMatch for invalid base64, got %v", state)
	}
}

func TestMatchWin32Input(t *testing.T) {
	buf := "\x1b[65;30;97;1;0;1_"
	state, ks, n := matchWin32Input(buf)
	if state != matched {
		t.Fatalf("expected matched, got %v", state)
	}
	if n != len(buf) || ks.Code != KeyWin32Input {
		t.Errorf("got n=%d code=%v, want %d/%v", n, ks.Code, len(buf), KeyWin32Input)
	}
}
