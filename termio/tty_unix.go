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

//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos
// +build aix darwin dragonfly freebsd linux netbsd openbsd solaris zos

package termio

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// devTty is a Tty implementation backed by /dev/tty.
type devTty struct {
	fd      int
	f       *os.File
	saved   *term.State
	sig     chan os.Signal
	dev     string
	started bool
}

func (tty *devTty) Read(b []byte) (int, error) {
	return tty.f.Read(b)
}

func (tty *devTty) Write(b []byte) (int, error) {
	return tty.f.Write(b)
}

func (tty *devTty) Close() error {
	return tty.f.Close()
}

func (tty *devTty) Start() error {
	if tty.started {
		return nil
	}
	// Re-opening the device (rather than reusing whatever fd we probed
	// with in NewDevTtyFromDev) avoids a macOS quirk where a subshell
	// exiting closes our original /dev/tty descriptor out from under us.
	var err error
	if tty.f, err = os.OpenFile(tty.dev, os.O_RDWR, 0); err != nil {
		return err
	}
	tty.fd = int(tty.f.Fd())

	if !term.IsTerminal(tty.fd) {
		tty.f.Close()
		return errors.New("device is not a terminal")
	}

	_ = tty.f.SetReadDeadline(time.Time{})
	saved, err := term.MakeRaw(tty.fd)
	if err != nil {
		tty.f.Close()
		return err
	}
	tty.saved = saved
	tty.started = true
	return nil
}

func (tty *devTty) Drain() error {
	_ = tty.f.SetReadDeadline(time.Now())
	return tcSetBufParams(tty.fd, 0, 0)
}

// tcSetBufParams sets VMIN/VTIME on the tty's termios so a Read that is
// blocked waiting for the deadline above to take effect returns as soon
// as the kernel notices, instead of potentially absorbing one more
// buffered character first.
func tcSetBufParams(fd int, vmin, vtime int) error {
	t, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return err
	}
	t.Cc[unix.VMIN] = uint8(vmin)
	t.Cc[unix.VTIME] = uint8(vtime)
	return unix.IoctlSetTermios(fd, ioctlSetTermios, t)
}

func (tty *devTty) Stop() error {
	tty.started = false
	if err := term.Restore(tty.fd, tty.saved); err != nil {
		return err
	}
	_ = tty.f.SetReadDeadline(time.Now())
	tty.NotifyResize(nil)
	_ = tty.f.Close()
	return nil
}

func (tty *devTty) WindowSize() (WindowSize, error) {
	size := WindowSize{}
	ws, err := unix.IoctlGetWinsize(tty.fd, unix.TIOCGWINSZ)
	if err != nil {
		return size, err
	}
	w := int(ws.Col)
	h := int(ws.Row)
	if w == 0 {
		w, _ = strconv.Atoi(os.Getenv("COLUMNS"))
	}
	if w == 0 {
		w = 80
	}
	if h == 0 {
		h, _ = strconv.Atoi(os.Getenv("LINES"))
	}
	if h == 0 {
		h = 25
	}
	size.Width = w
	size.Height = h
	size.PixelWidth = int(ws.Xpixel)
	size.PixelHeight = int(ws.Ypixel)
	return size, nil
}

func (tty *devTty) NotifyResize(resizeQ chan<- bool) {
	sigQ := tty.sig
	tty.sig = nil

	if sigQ != nil {
		signal.Stop(sigQ)
		close(sigQ)
	}

	if resizeQ == nil {
		return
	}

	sigQ = make(chan os.Signal, 1)
	signal.Notify(sigQ, syscall.SIGWINCH)
	tty.sig = sigQ

	go func() {
		for range sigQ {
			select {
			case resizeQ <- true:
			default:
			}
		}
	}()
}

// NewDevTty opens /dev/tty as a Tty.
func NewDevTty() (Tty, error) {
	return NewDevTtyFromDev("/dev/tty")
}

// NewDevTtyFromDev opens a tty device at an arbitrary path.
func NewDevTtyFromDev(dev string) (Tty, error) {
	tty := &devTty{dev: dev}
	f, err := os.OpenFile(dev, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, errors.New("not a terminal")
	}
	if tty.saved, err = term.GetState(fd); err != nil {
		return nil, fmt.Errorf("failed to get state: %w", err)
	}
	return tty, nil
}
