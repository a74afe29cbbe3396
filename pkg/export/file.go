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

package export

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/prometheus/tsdb/fileutil"
)

// OpenFileSuffix is added to the name of an output file while it is being written.
const OpenFileSuffix = ".open"

// Output is where converted records are written.
type Output interface {
	io.WriteCloser
	// Abort discards what has been written so far instead of publishing it.
	Abort() error
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

func (nopCloser) Abort() error { return nil }

// File is an output file which only appears under its final name once it is closed.
type File struct {
	file *os.File
}

// CreateFile creates an output file with the given name. The empty name and "-" mean stdout.
//
// Output is written to name + OpenFileSuffix, which is renamed to name on Close and removed on Abort.
func CreateFile(name string) (Output, error) {
	if name == "" || name == "-" {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(name + OpenFileSuffix)
	if err != nil {
		return nil, err
	}
	return &File{file: f}, nil
}

func (f *File) Write(p []byte) (int, error) {
	return f.file.Write(p)
}

// Close closes the file and moves it to its final name.
func (f *File) Close() error {
	if err := f.file.Close(); err != nil {
		return fmt.Errorf("failed to close file: %s: %w", f.file.Name(), err)
	}
	if err := fileutil.Rename(f.file.Name(), strings.TrimSuffix(f.file.Name(), OpenFileSuffix)); err != nil {
		return fmt.Errorf("failed to rename file: %s: %w", f.file.Name(), err)
	}
	return nil
}

// Abort closes and removes the file. Nothing appears under the final name.
func (f *File) Abort() error {
	_ = f.file.Close()
	if err := os.Remove(f.file.Name()); err != nil {
		return fmt.Errorf("failed to remove file: %s: %w", f.file.Name(), err)
	}
	return nil
}
