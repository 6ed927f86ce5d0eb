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

// Package termio supplies the byte-source abstraction the input decoder
// reads from.  It does not decode anything itself -- it only gets raw
// bytes into and out of a terminal device, in non-blocking/raw mode, and
// reports window size changes.
package termio

import "io"

// WindowSize represents the dimensions of a terminal window.
type WindowSize struct {
	Width       int
	Height      int
	PixelWidth  int
	PixelHeight int
}

// Tty is an abstraction of a terminal device. The consumer (a keyin
// Reader) provides mutual exclusion for its methods; an implementation
// need only be concerned about locking for asynchronous work such as a
// signal handler feeding NotifyResize.
type Tty interface {
	// Start activates the Tty for use: upon return the terminal is in
	// raw, non-blocking mode, with any prior state saved for Stop to
	// restore. Start must be idempotent.
	Start() error

	// Stop restores whatever state Start saved and returns the
	// terminal to ordinary blocking mode. Drain is called first. No
	// more Read or Write calls are made until Start is called again.
	Stop() error

	// Drain unblocks a pending Read so Stop can proceed; implementations
	// may make this a no-op if Read is already non-blocking.
	Drain() error

	// NotifyResize arranges for true to be sent (non-blocking) to ch
	// whenever the window size changes; a nil channel disables
	// notification. Implementations that deliver resizes in-band via
	// Read may stub this out.
	NotifyResize(ch chan<- bool)

	// WindowSize reports the current terminal dimensions.
	WindowSize() (WindowSize, error)

	io.ReadWriteCloser
}
