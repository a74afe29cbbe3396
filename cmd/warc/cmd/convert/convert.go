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

package convert

import (
	"context"

	"github.com/nlnwa/warcstream/cmd/warc/internal"
	"github.com/nlnwa/warcstream/pkg/export"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type conf struct {
	input  string
	output string
}

func NewCommand() *cobra.Command {
	c := &conf{}
	var cmd = &cobra.Command{
		Use:   "convert <input> [output]",
		Short: "Export valid response records as text",
		Long: `Parse a warc file and write every valid response record as one line of output.

Use - as input to read from stdin. Output is written to stdout if no output file is given.
Line breaks and tabs in record content are escaped in the tsv format.`,
		Args:    cobra.RangeArgs(1, 2),
		PreRunE: internal.BindFlags,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.input = args[0]
			if len(args) > 1 {
				c.output = args[1]
			}
			return runE(cmd.Context(), c)
		},
	}

	internal.AddExportFlags(cmd)
	internal.AddReaderFlags(cmd)

	return cmd
}

func runE(ctx context.Context, c *conf) error {
	if ctx == nil {
		ctx = context.Background()
	}
	_, err := export.ConvertFile(ctx, c.input, c.output, viper.GetString("format"), internal.ExportOptions(), internal.ReaderOptions()...)
	return err
}
