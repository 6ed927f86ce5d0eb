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
	"sync"

	log "github.com/yanzay/log"
	xencoding "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// wellKnownEncodings covers the legacy locale charsets most often seen
// in $LC_CTYPE/$LANG on systems whose terminal I/O isn't UTF-8.
var wellKnownEncodings = map[string]xencoding.Encoding{
	"ISO8859-1":  charmap.ISO8859_1,
	"ISO8859-2":  charmap.ISO8859_2,
	"ISO8859-15": charmap.ISO8859_15,
	"KOI8-R":     charmap.KOI8R,
	"CP437":      charmap.CodePage437,
}

var (
	encodingLk sync.Mutex
	encodings  = map[string]xencoding.Encoding{}
)

// RegisterEncoding lets an application add a locale encoding beyond the
// built-ins wellKnownEncodings already covers, the same extension point
// the source library offers for golang.org/x/text/encoding.Encoding
// values. This is only needed for the unusual charmaps.
func RegisterEncoding(name string, enc xencoding.Encoding) {
	encodingLk.Lock()
	defer encodingLk.Unlock()
	encodings[name] = enc
}

func lookupEncoding(name string) xencoding.Encoding {
	encodingLk.Lock()
	defer encodingLk.Unlock()
	if enc, ok := encodings[name]; ok {
		return enc
	}
	return nil
}

// decoder incrementally turns raw terminal bytes into text, carrying 1-3
// pending bytes across Feed calls so a UTF-8 (or legacy multi-byte)
// codepoint split across two reads is never prematurely turned into a
// replacement character. For UTF-8 and US-ASCII, decoding is a pure
// byte-identity pass-through (the resolver's own nextRune handles
// replacement-character policy); any other locale charset is routed
// through a golang.org/x/text transform.Transformer.
type decoder struct {
	transformer transform.Transformer
	pending     []byte
}

// newDecoder builds a decoder for the named input encoding. An empty
// name, "UTF-8", or "US-ASCII" selects the pass-through fast path.
func newDecoder(name string) (*decoder, error) {
	switch name {
	case "", "UTF-8", "utf-8", "US-ASCII", "us-ascii", "ASCII":
		return &decoder{}, nil
	}
	enc := lookupEncoding(name)
	if enc == nil {
		enc = wellKnownEncodings[name]
	}
	if enc == nil {
		return nil, ErrNoCharset
	}
	return &decoder{transformer: enc.NewDecoder()}, nil
}

// Feed appends raw bytes and returns as much decoded text as is
// currently available; any incomplete trailing multi-byte sequence is
// retained in pending for the next Feed.
func (d *decoder) Feed(b []byte) string {
	if d.transformer == nil {
		return string(b)
	}
	buf := append(d.pending, b...)
	d.pending = d.pending[:0]

	dst := make([]byte, len(buf)*4+16)
	nDst, nSrc, err := d.transformer.Transform(dst, buf, false)
	if err != nil && err != transform.ErrShortSrc {
		// A genuinely malformed byte: advance one and try again on the
		// next Feed rather than stalling forever on it.
		log.Debugf("keyin: decoding error at byte %d, skipping", nSrc)
		if nSrc < len(buf) {
			d.pending = append(d.pending, buf[nSrc+1:]...)
		}
		return string(dst[:nDst])
	}
	d.pending = append(d.pending, buf[nSrc:]...)
	return string(dst[:nDst])
}

// Reset clears any pending partial-sequence bytes, discarding them.
func (d *decoder) Reset() {
	d.pending = d.pending[:0]
	if d.transformer != nil {
		d.transformer.Reset()
	}
}
