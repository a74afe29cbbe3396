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
	"compress/gzip"
	"errors"
	"io"
	"os"

	"github.com/nlnwa/warcstream/internal/countingreader"
	log "github.com/sirupsen/logrus"
)

// Reader reads consecutive records from a WARC file or any other io.Reader.
// A Reader is not safe for concurrent use.
type Reader struct {
	opts           *options
	parser         *Parser
	file           io.Closer
	gz             *gzip.Reader
	countingReader *countingreader.Reader
	bufferedReader *bufio.Reader
}

// OpenFile opens the named file for reading records. The name "-" means stdin.
func OpenFile(filename string, opts ...Option) (*Reader, error) {
	if filename == "-" {
		return NewReader(os.Stdin, opts...)
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	r, err := NewReader(file, opts...)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	r.file = file
	return r, nil
}

// NewReader creates a Reader reading from r. Gzip compressed input is detected and decompressed.
func NewReader(r io.Reader, opts ...Option) (*Reader, error) {
	o := newOptions(opts...)
	wr := &Reader{
		opts:   o,
		parser: &Parser{opts: o},
	}

	var src io.Reader
	b := bufio.NewReader(r)
	if magic, err := b.Peek(2); err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		log.Debug("detected gzip input")
		if wr.gz, err = gzip.NewReader(b); err != nil {
			return nil, err
		}
		src = wr.gz
	} else {
		src = b
	}

	wr.countingReader = countingreader.New(src)
	wr.bufferedReader = bufio.NewReaderSize(wr.countingReader, 64*1024)
	return wr, nil
}

// Next reads the next record.
//
// The returned offset is the position of the record's version line in the uncompressed input.
// Parse failures are returned as *ParseError and reading may continue with another call to Next.
// When the input is exhausted only io.EOF is returned. With resync enabled (the default), junk
// following the last record also results in io.EOF.
func (r *Reader) Next() (*Record, int64, error) {
	offset := r.countingReader.N() - int64(r.bufferedReader.Buffered())
	if _, err := r.bufferedReader.Peek(1); err != nil {
		return nil, offset, err
	}

	record, skipped, err := r.parser.parse(r.bufferedReader, r.opts.resync)
	offset += skipped

	var pe *ParseError
	if r.opts.resync && errors.As(err, &pe) && pe.Kind == InvalidVersion && pe.Err == nil {
		log.Debugf("ignored %d bytes following the last record", skipped)
		return nil, offset, io.EOF
	}
	return record, offset, err
}

// Close closes the Reader and, if it was created with OpenFile, the underlying file.
func (r *Reader) Close() error {
	if r.gz != nil {
		_ = r.gz.Close()
	}
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}
