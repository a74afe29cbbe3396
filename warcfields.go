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
	"fmt"
	"io"
	"sort"
	"strings"
)

// Well known field names. Names are stored lower-cased.
const (
	ContentLength = "content-length"
	ContentType   = "content-type"
	WarcDate      = "warc-date"
	WarcRecordID  = "warc-record-id"
	WarcTargetURI = "warc-target-uri"
	WarcTrecID    = "warc-trec-id"
	WarcType      = "warc-type"
)

// Fields maps lower-cased WARC field names to their trimmed values.
type Fields map[string]string

// Get gets the value associated with the given name. It is case insensitive.
// If the name doesn't exist, Get returns "".
func (wf Fields) Get(name string) string {
	return wf[strings.ToLower(name)]
}

// Has reports whether a field with the given name exists. It is case insensitive.
func (wf Fields) Has(name string) bool {
	_, ok := wf[strings.ToLower(name)]
	return ok
}

// Names returns the field names in sorted order.
func (wf Fields) Names() []string {
	names := make([]string, 0, len(wf))
	for name := range wf {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Write writes the fields sorted by name, one "name: value" line each.
func (wf Fields) Write(w io.Writer) (bytesWritten int64, err error) {
	var n int
	for _, name := range wf.Names() {
		n, err = fmt.Fprintf(w, "%s: %s\r\n", name, wf[name])
		bytesWritten += int64(n)
		if err != nil {
			return
		}
	}
	return
}

func (wf Fields) String() string {
	sb := &strings.Builder{}
	if _, err := wf.Write(sb); err != nil {
		panic(err)
	}
	return sb.String()
}

func (wf Fields) clone() Fields {
	r := make(Fields, len(wf))
	for k, v := range wf {
		r[k] = v
	}
	return r
}
