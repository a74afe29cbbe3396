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

package internal

import (
	"fmt"

	"github.com/nlnwa/warcstream"
	"github.com/nlnwa/warcstream/pkg/export"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// CropString shortens s to at most max runes, marking the cut with "...".
func CropString(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// Format is a flag value accepting the names of the export formats.
type Format struct {
	name string
}

func NewFormat(name string) *Format {
	return &Format{name: name}
}

func (f *Format) String() string {
	return f.name
}

func (f *Format) Set(name string) error {
	if err := export.ValidateFormat(name); err != nil {
		return err
	}
	f.name = name
	return nil
}

func (f *Format) Type() string {
	return "format"
}

// AddReaderFlags adds the flags read by ReaderOptions to cmd.
func AddReaderFlags(cmd *cobra.Command) {
	cmd.Flags().Int64("max-content-length", 0, "records declaring a larger Content-Length are reported as errors (0 means no limit)")
	cmd.Flags().BoolP("strict", "s", false, "require records to follow each other without junk in between")
}

// AddExportFlags adds the flags read by ExportOptions to cmd.
func AddExportFlags(cmd *cobra.Command) {
	cmd.Flags().VarP(NewFormat("tsv"), "format", "f", fmt.Sprintf("output format %v", export.Formats()))
	cmd.Flags().Bool("normalize-url", false, "canonicalize target URIs with the WHATWG URL parser")
}

// BindFlags binds the flags of the command being executed to viper.
// Binding at execution time keeps commands sharing flag names from overriding each other.
func BindFlags(cmd *cobra.Command, args []string) error {
	return viper.BindPFlags(cmd.Flags())
}

// ReaderOptions returns the warcstream options configured in viper.
func ReaderOptions() []warcstream.Option {
	return []warcstream.Option{
		warcstream.WithMaxContentLength(viper.GetInt64("max-content-length")),
		warcstream.WithResync(!viper.GetBool("strict")),
	}
}

// ExportOptions returns the export options configured in viper.
func ExportOptions() export.Options {
	return export.DefaultOptions().WithNormalizedURL(viper.GetBool("normalize-url"))
}
