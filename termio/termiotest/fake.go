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

// Package termiotest provides an in-memory termio.Tty for deterministic
// tests: writers feed it bytes with Feed, readers read them back through
// the normal Tty.Read path, without an OS terminal in the loop.
package termiotest

import (
	"bytes"
	"errors"
	"io"
	"sync"

	"github.com/tinyterm/keyin/termio"
)

// Fake is a termio.Tty backed by an in-memory buffer.
type Fake struct {
	mu       sync.Mutex
	cond     *sync.Cond
	in       bytes.Buffer
	out      bytes.Buffer
	closed   bool
	drained  bool
	started  bool
	size     termio.WindowSize
	resizeCh chan<- bool
}

// New returns a ready-to-use Fake with the given initial window size.
func New(size termio.WindowSize) *Fake {
	f := &Fake{size: size}
	f.cond = sync.NewCond(&f.mu)
	return f
}

// Feed appends bytes as if the terminal had sent them, waking any
// blocked Read.
func (f *Fake) Feed(b []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.in.Write(b)
	f.cond.Broadcast()
}

// Written returns (and clears) everything written to the Tty so far,
// i.e. the bytes the decoder under test sent back to "the terminal".
func (f *Fake) Written() []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	b := append([]byte(nil), f.out.Bytes()...)
	f.out.Reset()
	return b
}

func (f *Fake) Read(b []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for f.in.Len() == 0 && !f.closed && !f.drained {
		f.cond.Wait()
	}
	if f.closed && f.in.Len() == 0 {
		return 0, io.EOF
	}
	if f.drained && f.in.Len() == 0 {
		f.drained = false
		return 0, nil
	}
	f.drained = false
	return f.in.Read(b)
}

func (f *Fake) Write(b []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return 0, errors.New("termiotest: write on closed fake")
	}
	return f.out.Write(b)
}

func (f *Fake) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	f.cond.Broadcast()
	return nil
}

func (f *Fake) Start() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.started = true
	return nil
}

func (f *Fake) Stop() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.started = false
	return nil
}

// Drain wakes a blocked Read, as the real Tty does before Stop: a Read
// that has no buffered bytes to return then returns 0, nil.
func (f *Fake) Drain() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.drained = true
	f.cond.Broadcast()
	return nil
}

func (f *Fake) NotifyResize(ch chan<- bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resizeCh = ch
}

// Resize updates the reported window size and, if a caller is
// registered via NotifyResize, signals it.
func (f *Fake) Resize(size termio.WindowSize) {
	f.mu.Lock()
	ch := f.resizeCh
	f.size = size
	f.mu.Unlock()
	if ch != nil {
		select {
		case ch <- true:
		default:
		}
	}
}

func (f *Fake) WindowSize() (termio.WindowSize, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.size, nil
}

var _ termio.Tty = (*Fake)(nil)
