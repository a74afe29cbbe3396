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

// Package export renders valid WARC response records in line oriented text formats.
package export

import (
	"bufio"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/nlnwa/warcstream"
	"github.com/nlnwa/whatwg-url/url"
)

// Writer writes records to an output.
type Writer interface {
	Write(record *warcstream.Record) error
	// Flush writes any buffered data to the underlying io.Writer.
	Flush() error
}

var formats = map[string]func(w io.Writer, opts Options) Writer{
	"tsv":  func(w io.Writer, opts Options) Writer { return NewTSVWriter(w, opts) },
	"json": func(w io.Writer, opts Options) Writer { return NewJSONWriter(w, opts) },
}

// Formats returns the names of the supported output formats.
func Formats() []string {
	var names []string
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewWriter creates a Writer for the named format.
func NewWriter(format string, w io.Writer, opts Options) (Writer, error) {
	f, ok := formats[format]
	if !ok {
		return nil, unknownFormatError(format)
	}
	return f(w, opts), nil
}

// ValidateFormat returns an error if format is not one of Formats.
func ValidateFormat(format string) error {
	if _, ok := formats[format]; !ok {
		return unknownFormatError(format)
	}
	return nil
}

func unknownFormatError(format string) error {
	return fmt.Errorf("unknown format '%s', expected one of %v", format, Formats())
}

// Line breaks and tabs are escaped so that every record occupies exactly one line.
var tsvEscaper = strings.NewReplacer(
	"\n", `\u000A`,
	"\r", `\u000D`,
	"\t", `\u0009`,
)

// TSVWriter writes one "trec-id<TAB>url<TAB>content" line per record.
type TSVWriter struct {
	w    *bufio.Writer
	opts Options
}

func NewTSVWriter(w io.Writer, opts Options) *TSVWriter {
	return &TSVWriter{w: bufio.NewWriter(w), opts: opts}
}

func (t *TSVWriter) Write(record *warcstream.Record) error {
	_, err := fmt.Fprintf(t.w, "%s\t%s\t%s\n",
		tsvEscaper.Replace(record.TrecID()),
		tsvEscaper.Replace(targetURL(record, t.opts)),
		tsvEscaper.Replace(string(record.Content())))
	return err
}

func (t *TSVWriter) Flush() error {
	return t.w.Flush()
}

type jsonRow struct {
	TrecID  string `json:"trec_id"`
	URL     string `json:"url"`
	Version string `json:"version"`
	Content string `json:"content"`
	// Encoding is "base64" when content is not valid UTF-8.
	Encoding string `json:"content_encoding,omitempty"`
}

// JSONWriter writes one JSON object per line.
// Content which is not valid UTF-8 is base64 encoded and marked with content_encoding.
type JSONWriter struct {
	w    *bufio.Writer
	enc  *json.Encoder
	opts Options
}

func NewJSONWriter(w io.Writer, opts Options) *JSONWriter {
	b := bufio.NewWriter(w)
	enc := json.NewEncoder(b)
	enc.SetEscapeHTML(false)
	return &JSONWriter{w: b, enc: enc, opts: opts}
}

func (j *JSONWriter) Write(record *warcstream.Record) error {
	row := &jsonRow{
		TrecID:  record.TrecID(),
		URL:     targetURL(record, j.opts),
		Version: record.Version(),
	}
	if content := record.Content(); utf8.Valid(content) {
		row.Content = string(content)
	} else {
		row.Content = base64.StdEncoding.EncodeToString(content)
		row.Encoding = "base64"
	}
	return j.enc.Encode(row)
}

func (j *JSONWriter) Flush() error {
	return j.w.Flush()
}

// targetURL returns the record's target URI, normalized if requested and possible.
func targetURL(record *warcstream.Record, opts Options) string {
	u := record.URL()
	if !opts.NormalizeURL {
		return u
	}
	parsed, err := url.Parse(u)
	if err != nil {
		return u
	}
	return parsed.Href(false)
}
