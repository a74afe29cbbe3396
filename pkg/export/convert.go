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
	"context"
	"fmt"

	"github.com/nlnwa/warcstream"
	log "github.com/sirupsen/logrus"
)

// ConvertFile reads the WARC file named input and writes its valid responses to the file named output
// in the given format. See OpenFile and CreateFile for the meaning of "-".
//
// If conversion fails, the partial output is removed and nothing is left under the output name.
func ConvertFile(ctx context.Context, input, output, format string, opts Options, readerOpts ...warcstream.Option) (stats Stats, err error) {
	if err = ValidateFormat(format); err != nil {
		return stats, err
	}

	r, err := warcstream.OpenFile(input, readerOpts...)
	if err != nil {
		return stats, err
	}
	defer func() { _ = r.Close() }()

	out, err := CreateFile(output)
	if err != nil {
		return stats, err
	}
	defer func() {
		if err != nil {
			if abortErr := out.Abort(); abortErr != nil {
				log.WithField("file", output).Warn(abortErr)
			}
			return
		}
		err = out.Close()
	}()

	w, err := NewWriter(format, out, opts)
	if err != nil {
		return stats, err
	}

	stats, err = Run(ctx, r, w)
	if err != nil {
		return stats, fmt.Errorf("%s: %w", input, err)
	}
	log.WithField("file", input).Infof("converted %s", stats)
	return stats, nil
}
