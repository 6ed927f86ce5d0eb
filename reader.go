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
	"io"
	"time"
	"unicode/utf8"

	log "github.com/yanzay/log"

	"github.com/tinyterm/keyin/terminfo"
	"github.com/tinyterm/keyin/termio"
)

// ESCDELAY is the default maximum time a lone ESC waits for
// continuation bytes before being emitted as a bare KEY_ESCAPE
// keystroke. It mirrors the curses tunable of the same name; a Reader
// may override it per-instance with WithEscDelay.
var ESCDELAY = 35 * time.Millisecond

// DeviceAttributes is the parsed payload handed to the capability-query
// bridge when a device-attribute response or DEC private-mode status
// report is consumed by the resolver. It never reaches ReadKey's
// caller directly.
type DeviceAttributes struct {
	Raw    string
	Kind   Key
	Params []string
}

// Option configures a Reader at construction time.
type Option func(*Reader)

// WithEscDelay overrides ESCDELAY for one Reader.
func WithEscDelay(d time.Duration) Option {
	return func(r *Reader) { r.escDelay = d }
}

// WithEncoding selects the terminal's input encoding by name (e.g.
// "ISO8859-1"); the default is UTF-8.
func WithEncoding(name string) Option {
	return func(r *Reader) { r.encodingName = name }
}

// WithLogger routes this package's diagnostic logging (decoding errors,
// malformed events) to w, in addition to any previously configured
// writer.
func WithLogger(w io.Writer) Option {
	return func(r *Reader) { log.AddWriter(w) }
}

// WithDeviceAttributesHandler installs the capability-query bridge:
// fn is called synchronously, and must not block, whenever a device
// attribute response or DEC private-mode status report is decoded.
func WithDeviceAttributesHandler(fn func(DeviceAttributes)) Option {
	return func(r *Reader) { r.onDeviceAttrs = fn }
}

// WithResizeHandler installs a callback invoked whenever an in-band
// resize report is decoded, with the freshly parsed dimensions.
func WithResizeHandler(fn func(width, height int)) Option {
	return func(r *Reader) { r.onResize = fn }
}

// WithTermNameHandler installs the terminal-name-and-version bridge:
// fn is called synchronously, and must not block, whenever a DCS
// terminal-name-and-version report (XTVERSION) is decoded. Like the
// device-attributes bridge, the event is never surfaced to ReadKey's
// caller.
func WithTermNameHandler(fn func(name, version string)) Option {
	return func(r *Reader) { r.onTermName = fn }
}

// Reader is the input read loop: it owns the buffered, partially
// decoded input for one terminal and turns it into a sequence of
// Keystroke values. A Reader is not safe for concurrent use by more
// than one goroutine calling ReadKey; Ungetch/Flushinp are intended to
// be called from the same goroutine that calls ReadKey.
type Reader struct {
	tty    termio.Tty
	tables *Tables
	dec    *decoder

	buf string

	escDelay     time.Duration
	encodingName string

	onDeviceAttrs func(DeviceAttributes)
	onResize      func(width, height int)
	onTermName    func(name, version string)

	readBuf [512]byte
	closed  bool
}

// NewReader builds a Reader that decodes bytes from tty using the key
// sequences described by ti.
func NewReader(tty termio.Tty, ti *terminfo.Terminfo, opts ...Option) (*Reader, error) {
	r := &Reader{tty: tty, escDelay: ESCDELAY}
	for _, o := range opts {
		o(r)
	}
	dec, err := newDecoder(r.encodingName)
	if err != nil {
		return nil, err
	}
	r.dec = dec
	r.tables = BuildTables(ti)
	return r, nil
}

// Tables exposes the built sequence tables, e.g. for diagnostics.
func (r *Reader) Tables() *Tables {
	return r.tables
}

// Ungetch prepends text to the input buffer so the next ReadKey
// resolves from it before reading anything new. Used by tests and by
// the capability-query collaborator to push back bytes consumed while
// awaiting a device-attribute reply.
func (r *Reader) Ungetch(text string) {
	r.buf = text + r.buf
}

// Flushinp discards the buffer and any bytes currently readable without
// blocking. It is idempotent.
func (r *Reader) Flushinp() {
	r.buf = ""
	r.dec.Reset()
	_ = r.tty.Drain()
}

// Close stops the underlying Tty and makes every subsequent ReadKey
// call return ErrClosed immediately. Close is idempotent.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.tty.Stop()
}

// ReadKey returns the next Keystroke, blocking according to ctx's
// deadline: a context with no deadline blocks until a Keystroke can be
// produced; an already-expired context polls once and returns
// immediately, yielding an empty Keystroke if none is ready.
func (r *Reader) ReadKey(ctx context.Context) (Keystroke, error) {
	if r.closed {
		return Keystroke{}, ErrClosed
	}
	for {
		ks, n, waiting := Resolve(r.buf, r.tables, false)
		if !waiting && n > 0 {
			r.buf = r.buf[n:]
			if handled := r.dispatchInternal(ks); handled {
				continue
			}
			return ks, nil
		}

		if waiting && len(r.buf) > 0 && r.buf[0] == escByte {
			sub, cancel := r.escDelayContext(ctx)
			more, err := r.waitForBytes(sub)
			cancel()
			if err != nil && err != context.DeadlineExceeded {
				return Keystroke{}, err
			}
			if more {
				continue
			}
			ks, n, _ := Resolve(r.buf, r.tables, true)
			if n > 0 {
				r.buf = r.buf[n:]
				if handled := r.dispatchInternal(ks); handled {
					continue
				}
				return ks, nil
			}
			return Keystroke{}, nil
		}

		select {
		case <-ctx.Done():
			if len(r.buf) == 0 {
				return Keystroke{}, nil
			}
			ks, n, _ := Resolve(r.buf, r.tables, true)
			if n > 0 {
				r.buf = r.buf[n:]
				if handled := r.dispatchInternal(ks); handled {
					continue
				}
				return ks, nil
			}
			return Keystroke{}, nil
		default:
		}

		more, err := r.waitForBytes(ctx)
		if err != nil {
			if err == context.DeadlineExceeded || err == context.Canceled {
				continue
			}
			if err == io.EOF {
				return Keystroke{}, nil
			}
			return Keystroke{}, err
		}
		if !more {
			continue
		}
	}
}

// escDelayContext derives a sub-context capped at min(escDelay,
// remaining), the nested ESC-delay timeout described by the decoder's
// cancellation design.
func (r *Reader) escDelayContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if dl, ok := ctx.Deadline(); ok {
		remaining := time.Until(dl)
		if remaining < r.escDelay {
			return context.WithDeadline(ctx, dl)
		}
	}
	return context.WithTimeout(ctx, r.escDelay)
}

// waitForBytes performs one blocking read and appends whatever decodes
// to the buffer, returning whether any new text arrived.
func (r *Reader) waitForBytes(ctx context.Context) (bool, error) {
	type result struct {
		n   int
		err error
	}
	done := make(chan result, 1)
	go func() {
		n, err := r.tty.Read(r.readBuf[:])
		done <- result{n, err}
	}()

	select {
	case <-ctx.Done():
		_ = r.tty.Drain()
		res := <-done
		if res.n > 0 {
			r.buf += r.dec.Feed(r.readBuf[:res.n])
			return true, nil
		}
		return false, ctx.Err()
	case res := <-done:
		if res.err == io.EOF {
			return false, io.EOF
		}
		if res.err != nil {
			return false, res.err
		}
		if res.n == 0 {
			return false, nil
		}
		r.buf += r.dec.Feed(r.readBuf[:res.n])
		return true, nil
	}
}

// dispatchInternal routes device-attribute, mode-status, and resize
// events to their registered collaborators instead of returning them to
// ReadKey's caller, reporting whether it consumed the Keystroke.
func (r *Reader) dispatchInternal(ks Keystroke) bool {
	if !ks.hasCode && ks.Rune == utf8.RuneError && ks.Text == string(utf8.RuneError) {
		log.Debugf("keyin: invalid codepoint in input, emitting replacement character")
	}
	switch ks.Code {
	case KeyDeviceAttrs, KeyModeStatus:
		if r.onDeviceAttrs != nil {
			r.onDeviceAttrs(DeviceAttributes{Raw: ks.Text, Kind: ks.Code, Params: ks.MatchGroups})
		}
		return true
	case KeyTermName:
		if r.onTermName != nil {
			if tp, ok := ks.Payload.(TermNamePayload); ok {
				r.onTermName(tp.Name, tp.Version)
			}
		}
		return true
	case KeyResize:
		if r.onResize != nil {
			if rp, ok := ks.Payload.(ResizePayload); ok {
				r.onResize(rp.Width, rp.Height)
			}
		}
		return false
	}
	return false
}
