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

type options struct {
	maxContentLength int64 // zero means no limit
	resync           bool
}

// Option configures parsing and reading of WARC records.
type Option interface {
	apply(*options)
}

// EmptyOption does not alter the configuration. It can be embedded in
// another structure to build custom options.
type EmptyOption struct{}

func (EmptyOption) apply(*options) {}

// funcOption wraps a function that modifies options into an
// implementation of the Option interface.
type funcOption struct {
	f func(*options)
}

func (fo *funcOption) apply(po *options) {
	fo.f(po)
}

func newFuncOption(f func(*options)) *funcOption {
	return &funcOption{
		f: f,
	}
}

func defaultOptions() options {
	return options{
		maxContentLength: 0,
		resync:           true,
	}
}

func newOptions(opts ...Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}
	return &o
}

// WithMaxContentLength sets the largest Content-Length a record may declare.
// Records declaring more fail with InvalidContentLength before any of the body is read.
// defaults to 0 (no limit)
func WithMaxContentLength(size int64) Option {
	return newFuncOption(func(o *options) {
		o.maxContentLength = size
	})
}

// WithResync decides if a Reader skips junk preceding a record (ReadSubsequentRecord)
// or requires every record to start exactly where the previous one ended (ReadRecord).
// defaults to true
func WithResync(resync bool) Option {
	return newFuncOption(func(o *options) {
		o.resync = resync
	})
}
