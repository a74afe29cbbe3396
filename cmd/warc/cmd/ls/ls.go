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

package ls

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/nlnwa/warcstream"
	"github.com/nlnwa/warcstream/cmd/warc/internal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var errorColor = color.New(color.FgRed)

type conf struct {
	recordCount int
	fileName    string
}

func NewCommand() *cobra.Command {
	c := &conf{}
	var cmd = &cobra.Command{
		Use:   "ls <file>",
		Short: "List records from a warc file",
		Long: `List the offset, type, trec id and target URI of every record in a warc file.

Use - to read from stdin. Records which can not be parsed are reported on stderr.`,
		Args:    cobra.ExactArgs(1),
		PreRunE: internal.BindFlags,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.fileName = args[0]
			return readFile(c, os.Stdout, os.Stderr)
		},
	}

	cmd.Flags().IntVarP(&c.recordCount, "record-count", "c", 0, "The maximum number of records to show")
	internal.AddReaderFlags(cmd)

	return cmd
}

func readFile(c *conf, out io.Writer, errOut io.Writer) error {
	r, err := warcstream.OpenFile(c.fileName, internal.ReaderOptions()...)
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()

	strict := viper.GetBool("strict")
	count := 0

	for {
		record, offset, err := r.Next()
		if err == io.EOF {
			break
		}
		var parseErr *warcstream.ParseError
		if errors.As(err, &parseErr) {
			_, _ = errorColor.Fprintf(errOut, "%9d %v\n", offset, err)
			if strict {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}
		count++

		printRecord(out, offset, record)

		if c.recordCount > 0 && count >= c.recordCount {
			break
		}
	}
	_, _ = fmt.Fprintln(errOut, "Count: ", count)
	return nil
}

func printRecord(w io.Writer, offset int64, record *warcstream.Record) {
	targetURI := internal.CropString(record.URL(), 100)
	_, _ = fmt.Fprintf(w, "%9d %-9.9s %-25s %s\n", offset, record.Type(), record.TrecID(), targetURI)
}
