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
	"compress/gzip"
	"errors"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_Next(t *testing.T) {
	input := "\r\n" + responseRecord + warcinfoRecord + "junk after last record\n"
	r, err := NewReader(strings.NewReader(input))
	require.NoError(t, err)
	defer r.Close()

	record, offset, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, int64(2), offset)
	assert.Equal(t, Response, record.Type())

	record, offset, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, int64(2+len(responseRecord)), offset)
	assert.Equal(t, "warcinfo", record.Type())

	record, _, err = r.Next()
	assert.Nil(t, record)
	assert.Equal(t, io.EOF, err)

	_, _, err = r.Next()
	assert.Equal(t, io.EOF, err)
}

func TestReader_NextContinuesAfterParseError(t *testing.T) {
	input := "WARC/1.0\r\nWARC-Type response\r\n\r\n" + responseRecord
	r, err := NewReader(strings.NewReader(input))
	require.NoError(t, err)

	_, offset, err := r.Next()
	assert.True(t, errors.Is(err, ErrInvalidField))
	assert.Equal(t, int64(0), offset)

	record, offset, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, int64(len("WARC/1.0\r\nWARC-Type response\r\n\r\n")), offset)
	assert.Equal(t, responseContent, string(record.Content()))

	_, _, err = r.Next()
	assert.Equal(t, io.EOF, err)
}

func TestReader_NextWithoutResync(t *testing.T) {
	r, err := NewReader(strings.NewReader("junk\n"+responseRecord), WithResync(false))
	require.NoError(t, err)

	_, offset, err := r.Next()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidVersion))
	assert.Equal(t, "junk", err.(*ParseError).Line)
	assert.Equal(t, int64(0), offset)

	record, offset, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, int64(5), offset)
	assert.True(t, record.ValidResponse())

	_, _, err = r.Next()
	assert.Equal(t, io.EOF, err)
}

func TestReader_gzip(t *testing.T) {
	buf := &bytes.Buffer{}
	for _, rec := range []string{warcinfoRecord, responseRecord} {
		gz := gzip.NewWriter(buf)
		_, err := gz.Write([]byte(rec))
		require.NoError(t, err)
		require.NoError(t, gz.Close())
	}

	r, err := NewReader(buf)
	require.NoError(t, err)
	defer r.Close()

	var types []string
	for {
		record, _, err := r.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		types = append(types, record.Type())
	}
	assert.Equal(t, []string{"warcinfo", Response}, types)
}

func TestReader_emptyInput(t *testing.T) {
	r, err := NewReader(strings.NewReader(""))
	require.NoError(t, err)

	_, offset, err := r.Next()
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, int64(0), offset)
}

func TestOpenFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "warcstream")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "test.warc")
	require.NoError(t, ioutil.WriteFile(name, []byte(clueweb09Record("1")+"\n\n"+clueweb09Record("2")), 0644))

	r, err := OpenFile(name, WithMaxContentLength(1024))
	require.NoError(t, err)

	count := 0
	for {
		_, _, err := r.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		count++
	}
	assert.Equal(t, 2, count)
	assert.NoError(t, r.Close())

	_, err = OpenFile(filepath.Join(dir, "missing.warc"))
	assert.True(t, os.IsNotExist(err))
}
