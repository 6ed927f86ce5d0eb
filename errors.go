// Copyright 2025 The TCell Authors
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

package keyin

import (
	"errors"
)

var (
	// ErrNoCharset indicates that the terminal's locale encoding is not
	// supported. This never occurs for UTF-8 or US-ASCII.
	ErrNoCharset = errors.New("character set not supported")

	// ErrClosed is returned by ReadKey once the underlying byte source
	// has been stopped.
	ErrClosed = errors.New("input source closed")
)
