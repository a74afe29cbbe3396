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

import (
	"sync"
	"time"
)

// queue delays paths before they are sent on jobs. Adding a path which is already waiting restarts its delay.
// A path sent on jobs is running until release is called for it. A running path is not sent again; if its
// delay expires meanwhile it is sent once more after release.
type queue struct {
	mu       sync.Mutex
	timers   map[string]*pending
	running  map[string]bool
	dirty    map[string]bool
	jobs     chan string
	closed   bool
	done     chan struct{}
	inflight sync.WaitGroup
}

func newQueue() *queue {
	return &queue{
		timers:  make(map[string]*pending),
		running: make(map[string]bool),
		dirty:   make(map[string]bool),
		jobs:    make(chan string),
		done:    make(chan struct{}),
	}
}

func (q *queue) add(path string, delay time.Duration) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.schedule(path, delay)
}

// pending is a waiting path's timer.
type pending struct {
	timer *time.Timer
}

// schedule must be called with mu held.
func (q *queue) schedule(path string, delay time.Duration) {
	if p, ok := q.timers[path]; ok {
		p.timer.Stop()
	}
	p := &pending{}
	p.timer = time.AfterFunc(delay, func() { q.fire(path, p) })
	q.timers[path] = p
}

func (q *queue) fire(path string, p *pending) {
	q.mu.Lock()
	if q.closed || q.timers[path] != p {
		q.mu.Unlock()
		return
	}
	delete(q.timers, path)
	if q.running[path] {
		q.dirty[path] = true
		q.mu.Unlock()
		return
	}
	q.running[path] = true
	q.inflight.Add(1)
	q.mu.Unlock()
	defer q.inflight.Done()

	select {
	case q.jobs <- path:
	case <-q.done:
		q.mu.Lock()
		delete(q.running, path)
		q.mu.Unlock()
	}
}

// release marks path as no longer running and sends it again if it expired while running.
func (q *queue) release(path string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	delete(q.running, path)
	if !q.dirty[path] {
		return
	}
	delete(q.dirty, path)
	if q.closed {
		return
	}
	if _, waiting := q.timers[path]; !waiting {
		q.schedule(path, 0)
	}
}

// close drops all waiting paths and closes jobs once no timer is sending.
func (q *queue) close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	for _, p := range q.timers {
		p.timer.Stop()
	}
	q.mu.Unlock()

	close(q.done)
	q.inflight.Wait()
	close(q.jobs)
}
