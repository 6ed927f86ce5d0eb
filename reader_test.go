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
	"context"
	"testing"
	"time"

	"github.com/tinyterm/keyin/termio"
	"github.com/tinyterm/keyin/termio/termiotest"
	"github.com/tinyterm/keyin/terminfo"
)

func newTestReader(t *testing.T, opts ...Option) (*Reader, *termiotest.Fake) {
	t.Helper()
	ti, err := terminfo.LookupTerminfo("xterm")
	if err != nil {
		t.Fatalf("LookupTerminfo: %v", err)
	}
	fake := termiotest.New(termio.WindowSize{Width: 80, Height: 24})
	r, err := NewReader(fake, ti, opts...)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	return r, fake
}

func TestReadKeyArrow(t *testing.T) {
	r, fake := newTestReader(t)
	fake.Feed([]byte("\x1b[A"))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	ks, err := r.ReadKey(ctx)
	if err != nil {
		t.Fatalf("ReadKey: %v", err)
	}
	if ks.Name != "KEY_UP" {
		t.Errorf("got %+v, want KEY_UP", ks)
	}
}

func TestReadKeyEscDelayResolvesBareEscape(t *testing.T) {
	r, fake := newTestReader(t, WithEscDelay(10*time.Millisecond))
	fake.Feed([]byte("\x1b"))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	start := time.Now()
	ks, err := r.ReadKey(ctx)
	if err != nil {
		t.Fatalf("ReadKey: %v", err)
	}
	if ks.Name != "KEY_ESCAPE" {
		t.Errorf("got %+v, want KEY_ESCAPE", ks)
	}
	if elapsed := time.Since(start); elapsed < 10*time.Millisecond {
		t.Errorf("returned after %v, expected to wait out the esc delay", elapsed)
	}
}

func TestReadKeyEscDelayExtendsOnContinuation(t *testing.T) {
	r, fake := newTestReader(t, WithEscDelay(200*time.Millisecond))
	fake.Feed([]byte("\x1b"))
	go func() {
		time.Sleep(5 * time.Millisecond)
		fake.Feed([]byte("[A"))
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	ks, err := r.ReadKey(ctx)
	if err != nil {
		t.Fatalf("ReadKey: %v", err)
	}
	if ks.Name != "KEY_UP" {
		t.Errorf("got %+v, want KEY_UP once the continuation bytes arrive", ks)
	}
}

func TestUngetchIsConsumedBeforeNewInput(t *testing.T) {
	r, fake := newTestReader(t)
	fake.Feed([]byte("b"))
	r.Ungetch("a")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	ks, err := r.ReadKey(ctx)
	if err != nil {
		t.Fatalf("ReadKey: %v", err)
	}
	if ks.Text != "a" {
		t.Errorf("got %q, want the pushed-back 'a' to come first", ks.Text)
	}
}

func TestFlushinpDiscardsBufferedInput(t *testing.T) {
	r, _ := newTestReader(t)
	r.Ungetch("abc")
	r.Flushinp()
	if r.buf != "" {
		t.Errorf("buf = %q, want empty after Flushinp", r.buf)
	}
	r.Flushinp() // idempotent
}

func TestReadKeyDeviceAttrsBridgeSuppressesEventFromCaller(t *testing.T) {
	var got DeviceAttributes
	r, fake := newTestReader(t, WithDeviceAttributesHandler(func(da DeviceAttributes) {
		got = da
	}))
	fake.Feed([]byte("\x1b[?1;2c"))
	fake.Feed([]byte("\x1b[A")) // so ReadKey has something to surface afterward

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	ks, err := r.ReadKey(ctx)
	if err != nil {
		t.Fatalf("ReadKey: %v", err)
	}
	if ks.Name != "KEY_UP" {
		t.Errorf("expected the device-attrs reply to be swallowed and KEY_UP surfaced, got %+v", ks)
	}
	if got.Kind != KeyDeviceAttrs {
		t.Errorf("device-attrs handler not invoked with the right Kind: %+v", got)
	}
}

func TestReadKeyResizeBridgeAndSurfacedEvent(t *testing.T) {
	var width, height int
	r, fake := newTestReader(t, WithResizeHandler(func(w, h int) {
		width, height = w, h
	}))
	fake.Feed([]byte("\x1b[48;40;80;480;960t"))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	ks, err := r.ReadKey(ctx)
	if err != nil {
		t.Fatalf("ReadKey: %v", err)
	}
	if ks.Code != KeyResize {
		t.Errorf("expected the resize event to also be surfaced to the caller, got %+v", ks)
	}
	if width != 80 || height != 40 {
		t.Errorf("resize handler got %dx%d, want 80x40", width, height)
	}
}

func TestReadKeyTermNameBridgeSuppressesEventFromCaller(t *testing.T) {
	var name, version string
	r, fake := newTestReader(t, WithTermNameHandler(func(n, v string) {
		name, version = n, v
	}))
	fake.Feed([]byte("\x1bP>|tmux 3.4 (build 123)\x1b\\"))
	fake.Feed([]byte("\x1b[A"))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	ks, err := r.ReadKey(ctx)
	if err != nil {
		t.Fatalf("ReadKey: %v", err)
	}
	if ks.Name != "KEY_UP" {
		t.Errorf("expected the term-name report to be swallowed and KEY_UP surfaced, got %+v", ks)
	}
	if name != "tmux 3.4" || version != "build 123" {
		t.Errorf("term-name handler got name=%q version=%q", name, version)
	}
}

func TestReadKeyEOFReturnsEmptyKeystroke(t *testing.T) {
	r, fake := newTestReader(t)
	fake.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	ks, err := r.ReadKey(ctx)
	if err != nil {
		t.Fatalf("ReadKey: %v", err)
	}
	if !ks.Empty() {
		t.Errorf("got %+v, want an empty Keystroke on EOF", ks)
	}

	// Repeated calls must keep returning the same thing, not block forever.
	ks, err = r.ReadKey(ctx)
	if err != nil || !ks.Empty() {
		t.Errorf("second ReadKey after EOF: ks=%+v err=%v", ks, err)
	}
}

func TestReadKeyAfterCloseReturnsErrClosed(t *testing.T) {
	r, _ := newTestReader(t)
	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("second Close should be a no-op, got %v", err)
	}
	_, err := r.ReadKey(context.Background())
	if err != ErrClosed {
		t.Fatalf("ReadKey after Close = %v, want ErrClosed", err)
	}
}

func TestReadKeyAlreadyExpiredContextReturnsImmediately(t *testing.T) {
	r, _ := newTestReader(t)
	ctx, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()
	ks, err := r.ReadKey(ctx)
	if err != nil {
		t.Fatalf("ReadKey: %v", err)
	}
	if !ks.Empty() {
		t.Errorf("got %+v, want empty Keystroke for an already-expired context", ks)
	}
}
