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
	"errors"
	"fmt"
	"io"

	"github.com/nlnwa/warcstream"
	log "github.com/sirupsen/logrus"
)

// Stats counts what happened to the records of one Run.
type Stats struct {
	Records int // successfully parsed records
	Written int // records written to the output
	Skipped int // parsed records that were not valid responses
	Errors  int // records that could not be parsed
}

func (s Stats) String() string {
	return fmt.Sprintf("records: %d, written: %d, skipped: %d, errors: %d", s.Records, s.Written, s.Skipped, s.Errors)
}

// Run reads records from r until the input is exhausted and writes every valid response to w.
//
// Records that fail to parse are logged and counted, reading then continues with the next record.
// Run returns early if ctx is done, the input fails with anything other than a parse error or w fails.
func Run(ctx context.Context, r *warcstream.Reader, w Writer) (Stats, error) {
	var stats Stats
	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		record, offset, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *warcstream.ParseError
			if !errors.As(err, &pe) {
				return stats, err
			}
			stats.Errors++
			log.WithFields(log.Fields{"offset": offset, "kind": pe.Kind.String()}).Warn(err)
			continue
		}

		stats.Records++
		if !record.ValidResponse() {
			stats.Skipped++
			continue
		}
		if err := w.Write(record); err != nil {
			return stats, fmt.Errorf("failed writing record at offset %d: %w", offset, err)
		}
		stats.Written++
	}
	return stats, w.Flush()
}
