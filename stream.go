/*
 * Copyright 2021 National Library of Norway.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *       http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package warcstream

import (
	"bufio"
	"io"
)

// Stream is the sequential byte source records are parsed from.
// *bufio.Reader implements Stream.
type Stream interface {
	io.Reader
	// ReadBytes reads until the first occurrence of delim, returning the data up to and including delim.
	// If the end of input is reached first it returns the data read and io.EOF.
	ReadBytes(delim byte) ([]byte, error)
	// Peek returns the next n bytes without advancing the stream.
	Peek(n int) ([]byte, error)
}

// NewStream returns r if it already is a Stream. Otherwise r is wrapped in a *bufio.Reader.
func NewStream(r io.Reader) Stream {
	if s, ok := r.(Stream); ok {
		return s
	}
	return bufio.NewReader(r)
}

// Exhausted reports whether no more bytes can be read from s.
func Exhausted(s Stream) bool {
	_, err := s.Peek(1)
	return err != nil
}
