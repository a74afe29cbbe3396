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

package watch

import "time"

type options struct {
	dirs     []string
	depth    int
	delay    time.Duration
	workers  int
	suffixes []string
}

// Option configures the Watcher.
type Option interface {
	apply(*options)
}

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
		dirs:     []string{"."},
		depth:    4,
		delay:    10 * time.Second,
		workers:  4,
		suffixes: []string{".warc", ".warc.gz"},
	}
}

// WithDirs sets the directories to watch.
// defaults to the current directory
func WithDirs(dirs ...string) Option {
	return newFuncOption(func(o *options) {
		o.dirs = dirs
	})
}

// WithDepth sets how many levels of subdirectories are watched.
// defaults to 4
func WithDepth(depth int) Option {
	return newFuncOption(func(o *options) {
		o.depth = depth
	})
}

// WithDelay sets how long a file must stay unmodified before it is handled.
// defaults to 10 seconds
func WithDelay(delay time.Duration) Option {
	return newFuncOption(func(o *options) {
		o.delay = delay
	})
}

// WithWorkers sets the number of files handled concurrently.
// defaults to 4
func WithWorkers(workers int) Option {
	return newFuncOption(func(o *options) {
		o.workers = workers
	})
}

// WithSuffixes sets the file name suffixes of files to handle.
// defaults to .warc and .warc.gz
func WithSuffixes(suffixes ...string) Option {
	return newFuncOption(func(o *options) {
		o.suffixes = suffixes
	})
}
