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

package terminfo

func init() {
	// The Linux console uses its own function-key encoding (ESC [ [ A
	// for F1..F5) distinct from xterm's SS3/CSI-tilde forms.
	AddTerminfo(&Terminfo{
		Name:         "linux",
		Columns:      80,
		Lines:        25,
		KeyBackspace: "\x7f",
		KeyF1:        "\x1b[[A",
		KeyF2:        "\x1b[[B",
		KeyF3:        "\x1b[[C",
		KeyF4:        "\x1b[[D",
		KeyF5:        "\x1b[[E",
		KeyF6:        "\x1b[17~",
		KeyF7:        "\x1b[18~",
		KeyF8:        "\x1b[19~",
		KeyF9:        "\x1b[20~",
		KeyF10:       "\x1b[21~",
		KeyF11:       "\x1b[23~",
		KeyF12:       "\x1b[24~",
		KeyInsert:    "\x1b[2~",
		KeyDelete:    "\x1b[3~",
		KeyHome:      "\x1b[1~",
		KeyEnd:       "\x1b[4~",
		KeyPgUp:      "\x1b[5~",
		KeyPgDn:      "\x1b[6~",
		KeyUp:        "\x1b[A",
		KeyDown:      "\x1b[B",
		KeyRight:     "\x1b[C",
		KeyLeft:      "\x1b[D",
	})

	AddTerminfo(&Terminfo{
		Name:         "vt100",
		Columns:      80,
		Lines:        24,
		KeyBackspace: "\x08",
		KeyF1:        "\x1bOP",
		KeyF2:        "\x1bOQ",
		KeyF3:        "\x1bOR",
		KeyF4:        "\x1bOS",
		KeyUp:        "\x1bOA",
		KeyDown:      "\x1bOB",
		KeyRight:     "\x1bOC",
		KeyLeft:      "\x1bOD",
	})

	AddTerminfo(&Terminfo{
		Name:         "vt220",
		Columns:      80,
		Lines:        24,
		KeyBackspace: "\x08",
		KeyF1:        "\x1bOP",
		KeyF2:        "\x1bOQ",
		KeyF3:        "\x1bOR",
		KeyF4:        "\x1bOS",
		KeyInsert:    "\x1b[2~",
		KeyDelete:    "\x1b[3~",
		KeyHome:      "\x1b[1~",
		KeyEnd:       "\x1b[4~",
		KeyPgUp:      "\x1b[5~",
		KeyPgDn:      "\x1b[6~",
		KeyUp:        "\x1b[A",
		KeyDown:      "\x1b[B",
		KeyRight:     "\x1b[C",
		KeyLeft:      "\x1b[D",
	})

	AddTerminfo(&Terminfo{
		Name:    "ansi",
		Columns: 80,
		Lines:   24,
		KeyUp:   "\x1b[A",
		KeyDown: "\x1b[B",
		KeyRight: "\x1b[C",
		KeyLeft: "\x1b[D",
	})

	AddTerminfo(&Terminfo{
		Name:    "dumb",
		Columns: 80,
		Lines:   24,
	})
}
