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
	"testing"

	"github.com/tinyterm/keyin/terminfo"
)

func xtermTables(t *testing.T) *Tables {
	t.Helper()
	ti, err := terminfo.LookupTerminfo("xterm")
	if err != nil {
		t.Fatalf("LookupTerminfo: %v", err)
	}
	return BuildTables(ti)
}

func TestBuildTablesLooksUpLongestFirst(t *testing.T) {
	tables := xtermTables(t)
	k, seq, ok := tables.Lookup("\x1b[15~extra")
	if !ok {
		t.Fatal("expected a match for F5")
	}
	if seq != "\x1b[15~" {
		t.Errorf("matched sequence = %q, want \\x1b[15~", seq)
	}
	if tables.CodeName[k] != "KEY_F5" {
		t.Errorf("matched key name = %q, want KEY_F5", tables.CodeName[k])
	}
}

func TestBuildTablesPrefixSet(t *testing.T) {
	tables := xtermTables(t)
	if !tables.IsPrefix("\x1b") {
		t.Fatal("ESC alone should be a prefix of longer sequences")
	}
	if !tables.IsPrefix("\x1b[") {
		t.Fatal("CSI introducer should be a prefix of longer sequences")
	}
	if tables.IsPrefix("") {
		t.Fatal("empty string is never a prefix")
	}
}

func TestBuildTablesHasMouse(t *testing.T) {
	tables := xtermTables(t)
	if !tables.HasMouse {
		t.Error("xterm advertises kmous, want HasMouse=true")
	}

	ti, err := terminfo.LookupTerminfo("linux")
	if err != nil {
		t.Fatalf("LookupTerminfo: %v", err)
	}
	if BuildTables(ti).HasMouse {
		t.Error("linux console has no kmous, want HasMouse=false")
	}
}

func TestBuildTablesEverySequenceHasAName(t *testing.T) {
	tables := xtermTables(t)
	for _, e := range tables.bySeq {
		if tables.CodeName[e.key] == "" {
			t.Errorf("sequence %q (key %d) has no canonical name", e.seq, e.key)
		}
	}
}
