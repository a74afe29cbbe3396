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

// Package watch hands WARC files to a handler as they are written to a set of directories.
package watch

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

// Handler processes one file. Returned errors are logged.
type Handler func(ctx context.Context, path string) error

// Watcher calls a Handler for every matching file found in the watched directories, and again whenever
// such a file has been written to and then left untouched for the configured delay.
type Watcher struct {
	opts    *options
	handler Handler
	watcher *fsnotify.Watcher
	queue   *queue
	depths  map[string]int
}

// New creates a Watcher. Nothing is watched until Run is called.
func New(handler Handler, opts ...Option) (*Watcher, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		opts:    &o,
		handler: handler,
		watcher: fsw,
		queue:   newQueue(),
		depths:  make(map[string]int),
	}, nil
}

// Run watches the directories until ctx is done and waits for running handlers to return.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() { _ = w.watcher.Close() }()

	var wg sync.WaitGroup
	for i := 0; i < w.opts.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range w.queue.jobs {
				if err := w.handler(ctx, path); err != nil {
					log.WithField("file", path).Errorf("failed handling file: %v", err)
				}
				w.queue.release(path)
			}
		}()
	}
	defer func() {
		w.queue.close()
		wg.Wait()
	}()

	for _, dir := range w.opts.dirs {
		if err := w.addDir(filepath.Clean(dir), 0); err != nil {
			return err
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			log.Errorf("watch error: %v", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&fsnotify.Create == fsnotify.Create {
		fi, err := os.Stat(event.Name)
		if err != nil {
			log.Debugf("could not stat %v: %v", event.Name, err)
			return
		}
		if fi.IsDir() {
			depth := w.depths[filepath.Dir(event.Name)] + 1
			if depth <= w.opts.depth {
				if err := w.addDir(event.Name, depth); err != nil {
					log.Errorf("could not watch new directory '%v': %v", event.Name, err)
				}
			}
			return
		}
	}

	if event.Op&(fsnotify.Create|fsnotify.Write) != 0 && w.matches(event.Name) {
		log.Debugf("modified file: %v", event.Name)
		w.queue.add(event.Name, w.opts.delay)
	}
}

// addDir watches path and queues the matching files already in it. Subdirectories are added up to the max depth.
func (w *Watcher) addDir(path string, depth int) error {
	if err := w.watcher.Add(path); err != nil {
		return err
	}
	w.depths[path] = depth

	files, err := ioutil.ReadDir(path)
	if err != nil {
		return err
	}
	for _, file := range files {
		name := filepath.Join(path, file.Name())
		if file.IsDir() {
			if depth < w.opts.depth {
				if err := w.addDir(name, depth+1); err != nil {
					return err
				}
			}
		} else if w.matches(name) {
			w.queue.add(name, 0)
		}
	}
	return nil
}

func (w *Watcher) matches(name string) bool {
	if strings.HasSuffix(name, "~") || strings.HasSuffix(name, ".open") {
		return false
	}
	for _, suffix := range w.opts.suffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}
