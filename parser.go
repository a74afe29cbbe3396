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
	"bytes"
	"io"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

const versionPrefix = "WARC/"

// bodyChunk caps the up front allocation for a body. Larger bodies grow as data arrives.
const bodyChunk = 64 * 1024

// Parser reads WARC records from a Stream. A Parser holds no per-stream state and can be shared,
// but a single Stream must not be read by more than one goroutine at a time.
type Parser struct {
	opts *options
}

// NewParser creates a new Parser with the supplied options.
func NewParser(opts ...Option) *Parser {
	return &Parser{opts: newOptions(opts...)}
}

var defaultParser = NewParser()

// ReadRecord parses the record starting at the current position of s using default options.
func ReadRecord(s Stream) (*Record, error) {
	return defaultParser.ReadRecord(s)
}

// ReadSubsequentRecord parses the next record in s using default options, discarding anything
// preceding its version line.
func ReadSubsequentRecord(s Stream) (*Record, error) {
	return defaultParser.ReadSubsequentRecord(s)
}

// ReadRecord parses the record starting at the current position of s.
//
// The first line read must be a version line, otherwise InvalidVersion is returned and only that line is consumed.
// If the header lacks mandatory fields, MissingMandatoryFields is returned and s is left right after the header.
func (p *Parser) ReadRecord(s Stream) (*Record, error) {
	record, _, err := p.parse(s, false)
	return record, err
}

// ReadSubsequentRecord is like ReadRecord, but lines preceding the next version line are discarded.
// InvalidVersion is only returned when the end of s is reached without finding a version line.
func (p *Parser) ReadSubsequentRecord(s Stream) (*Record, error) {
	record, _, err := p.parse(s, true)
	return record, err
}

// parse reads one record. skipped is the number of bytes discarded before the version line.
func (p *Parser) parse(s Stream, resync bool) (record *Record, skipped int64, err error) {
	version, skipped, err := readVersion(s, resync)
	if err != nil {
		return nil, skipped, err
	}
	if skipped > 0 {
		log.Debugf("skipped %d bytes before start of record", skipped)
	}

	fields, err := readFields(s)
	if err != nil {
		return nil, skipped, err
	}
	if !fields.Has(WarcType) || !fields.Has(ContentLength) {
		return nil, skipped, newParseError(MissingMandatoryFields, "")
	}

	length, err := p.contentLength(fields.Get(ContentLength))
	if err != nil {
		return nil, skipped, err
	}
	content, err := readBody(s, length)
	if err != nil {
		return nil, skipped, err
	}

	return &Record{
		version:       version,
		fields:        fields,
		content:       content,
		contentLength: length,
	}, skipped, nil
}

// readVersion reads lines until one holds a version line. Without resync only one line is read.
func readVersion(s Stream, resync bool) (version string, skipped int64, err error) {
	for {
		l, e := s.ReadBytes('\n')
		if len(l) == 0 {
			return "", skipped, newWrappedParseError(InvalidVersion, "", readError(e))
		}

		line := strings.TrimSpace(string(l))
		if len(line) > len(versionPrefix) && strings.HasPrefix(line, versionPrefix) {
			return line[len(versionPrefix):], skipped, nil
		}
		if !resync {
			return "", skipped, newWrappedParseError(InvalidVersion, trimEOL(l), readError(e))
		}

		skipped += int64(len(l))
		if e != nil {
			return "", skipped, newWrappedParseError(InvalidVersion, "", readError(e))
		}
	}
}

// readFields reads header lines up to and including the terminating blank line.
// Reaching the end of s ends the header without error.
func readFields(s Stream) (Fields, error) {
	wf := Fields{}
	for {
		l, err := s.ReadBytes('\n')
		line := bytes.TrimSuffix(l, []byte{'\n'})
		if len(line) == 0 || (len(line) == 1 && line[0] == '\r') {
			return wf, nil
		}

		name, value, ok := splitField(line)
		if !ok {
			return nil, newParseError(InvalidField, trimEOL(l))
		}
		wf[name] = value

		if err != nil {
			return wf, nil
		}
	}
}

// splitField splits line at the first colon. Both name and value must be non-empty after trimming.
func splitField(line []byte) (name, value string, ok bool) {
	i := bytes.IndexByte(line, ':')
	if i < 0 {
		return "", "", false
	}
	name = strings.ToLower(strings.TrimSpace(string(line[:i])))
	value = strings.TrimSpace(string(line[i+1:]))
	if name == "" || value == "" {
		return "", "", false
	}
	return name, value, true
}

// contentLength parses value as a base-10 integer made of digits only. Signs are rejected.
func (p *Parser) contentLength(value string) (int64, error) {
	if value == "" || value[0] < '0' || value[0] > '9' {
		return 0, newParseError(InvalidContentLength, value)
	}
	length, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, newParseError(InvalidContentLength, value)
	}
	if p.opts.maxContentLength > 0 && length > p.opts.maxContentLength {
		return 0, newParseError(InvalidContentLength, value)
	}
	return length, nil
}

// readBody reads exactly length bytes and then skips the two line endings closing the record.
func readBody(s Stream, length int64) ([]byte, error) {
	content := []byte{}
	if length > 0 {
		buf := &bytes.Buffer{}
		if length < bodyChunk {
			buf.Grow(int(length))
		} else {
			buf.Grow(bodyChunk)
		}
		n, err := io.CopyN(buf, s, length)
		if n < length {
			return nil, newWrappedParseError(IncompleteRecord, "", readError(err))
		}
		content = buf.Bytes()
	}

	skipLine(s)
	skipLine(s)
	return content, nil
}

// skipLine discards everything up to and including the next newline or until the end of s.
func skipLine(s Stream) {
	_, _ = s.ReadBytes('\n')
}

func trimEOL(l []byte) string {
	return string(bytes.TrimRight(l, "\r\n"))
}

// readError filters out io.EOF, which is reported through the error kind alone.
func readError(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return nil
	}
	return err
}
