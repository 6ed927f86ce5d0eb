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

// Package keyin decodes a raw terminal input byte stream into a sequence
// of Keystroke values.  It understands terminfo-derived application key
// sequences, common vendor extensions (Kitty keyboard protocol, SGR and
// legacy X10 mouse reporting, bracketed paste, focus and synchronized
// output reports, in-band resize), and the escape-delay ambiguity that
// arises because a lone ESC may be the prefix of a longer sequence.
//
// The package does not switch the terminal into cbreak/raw mode, draw
// anything, or measure character width; callers supply an already
// prepared byte source (see the termio subpackage for one way to get
// one) and terminal capability strings (see the terminfo subpackage).
package keyin
