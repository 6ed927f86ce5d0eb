// Copyright 2015 The TCell Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command keyin-dump puts the controlling terminal into raw mode and
// prints every decoded Keystroke it receives until ESC is pressed.
// It is a diagnostic tool, not a sample application: run it over a
// serial link or an unfamiliar multiplexer to see exactly what
// sequences a terminal emits and how this package resolves them.
package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/tinyterm/keyin"
	"github.com/tinyterm/keyin/termio"
	"github.com/tinyterm/keyin/terminfo"
)

func main() {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "keyin-dump: stdin is not a terminal")
		os.Exit(1)
	}

	ti, err := terminfo.LookupTerminfo(os.Getenv("TERM"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "keyin-dump: %v\n", err)
		os.Exit(1)
	}

	tty, err := termio.NewDevTty()
	if err != nil {
		fmt.Fprintf(os.Stderr, "keyin-dump: %v\n", err)
		os.Exit(1)
	}
	if err := tty.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "keyin-dump: %v\n", err)
		os.Exit(1)
	}
	defer tty.Stop()

	r, err := keyin.NewReader(tty, ti,
		keyin.WithResizeHandler(func(w, h int) {
			fmt.Fprintf(os.Stderr, "\r\nresize: %dx%d\r\n", w, h)
		}),
		keyin.WithDeviceAttributesHandler(func(da keyin.DeviceAttributes) {
			fmt.Fprintf(os.Stderr, "\r\ndevice attrs: %q\r\n", da.Raw)
		}),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "keyin-dump: %v\n", err)
		os.Exit(1)
	}

	resizeCh := make(chan bool, 1)
	tty.NotifyResize(resizeCh)
	go func() {
		// Notifications are only drained here: the Reader is used
		// solely from the ReadKey loop below.
		for range resizeCh {
		}
	}()

	ctx := context.Background()
	for {
		ks, err := r.ReadKey(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "keyin-dump: %v\r\n", err)
			return
		}
		if ks.Empty() {
			continue
		}
		if ks.IsSequence() {
			fmt.Printf("%s  mods=%v  code=%d\r\n", ks.Name, ks.Modifiers, ks.Code)
		} else {
			fmt.Printf("text %q\r\n", ks.Text)
		}
		if ks.Is("escape") {
			return
		}
	}
}
