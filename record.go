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
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Response is the WARC-Type of records holding a captured response.
const Response = "response"

// Record is a parsed WARC record. It is never modified after it is returned from the parser.
type Record struct {
	version       string
	fields        Fields
	content       []byte
	contentLength int64
}

// Version returns the version token, e.g. "1.0" for a record starting with WARC/1.0.
func (r *Record) Version() string {
	return r.version
}

// Field returns the value of the named field. The lookup is case insensitive.
// The second return value is false if the field is not present.
func (r *Record) Field(name string) (string, bool) {
	v, ok := r.fields[strings.ToLower(name)]
	return v, ok
}

// Fields returns a copy of all header fields.
func (r *Record) Fields() Fields {
	return r.fields.clone()
}

// Content returns the record body. The returned slice must not be modified.
func (r *Record) Content() []byte {
	return r.content
}

// ContentReader returns a reader over the record body.
func (r *Record) ContentReader() io.Reader {
	return bytes.NewReader(r.content)
}

// ContentLength returns the parsed Content-Length, which is always equal to len(Content()).
func (r *Record) ContentLength() int64 {
	return r.contentLength
}

// Type returns the WARC-Type field.
func (r *Record) Type() string {
	return r.fields[WarcType]
}

// URL returns the WARC-Target-URI field. Only meaningful when ValidResponse is true.
func (r *Record) URL() string {
	return r.fields[WarcTargetURI]
}

// TrecID returns the WARC-TREC-ID field. Only meaningful when ValidResponse is true.
func (r *Record) TrecID() string {
	return r.fields[WarcTrecID]
}

// Valid reports whether the record has both a WARC-Type and a Content-Length field.
func (r *Record) Valid() bool {
	return r.fields.Has(WarcType) && r.fields.Has(ContentLength)
}

// ValidResponse reports whether the record is valid, is of type response and has both
// a WARC-Target-URI and a WARC-TREC-ID field.
func (r *Record) ValidResponse() bool {
	return r.Valid() &&
		r.fields.Has(WarcTargetURI) &&
		r.fields.Has(WarcTrecID) &&
		r.Type() == Response
}

func (r *Record) String() string {
	return fmt.Sprintf("WARC record: version: WARC/%s, type: %s, length: %s", r.version, r.Type(),
		strconv.FormatInt(r.contentLength, 10))
}
