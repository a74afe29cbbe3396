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
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nlnwa/warcstream/cmd/warc/internal"
	"github.com/nlnwa/warcstream/pkg/export"
	"github.com/nlnwa/warcstream/pkg/watch"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type conf struct {
	dirs []string
}

func NewCommand() *cobra.Command {
	c := &conf{}
	var cmd = &cobra.Command{
		Use:   "watch [dir...]",
		Short: "Export warc files as they appear in directories",
		Long: `Watch directories for new or updated warc files and convert each of them when it has not
changed for the given delay. Files already present are converted at startup.`,
		PreRunE: internal.BindFlags,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.dirs = args
			if len(c.dirs) == 0 {
				c.dirs = []string{"."}
			}
			return runE(cmd.Context(), c)
		},
	}

	cmd.Flags().StringP("output-dir", "o", ".", "directory to write converted files to")
	cmd.Flags().IntP("depth", "d", 4, "maximum depth of subdirectories to watch")
	cmd.Flags().Duration("delay", 10*time.Second, "time a file must be left unchanged before it is converted")
	cmd.Flags().IntP("workers", "w", 4, "number of files converted in parallel")
	internal.AddExportFlags(cmd)
	internal.AddReaderFlags(cmd)

	return cmd
}

func runE(ctx context.Context, c *conf) error {
	if ctx == nil {
		ctx = context.Background()
	}
	outputDir := viper.GetString("output-dir")
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return err
	}

	handler := func(ctx context.Context, path string) error {
		_, err := export.ConvertFile(ctx, path, outputName(path, outputDir, viper.GetString("format")),
			viper.GetString("format"), internal.ExportOptions(), internal.ReaderOptions()...)
		return err
	}

	w, err := watch.New(handler,
		watch.WithDirs(c.dirs...),
		watch.WithDepth(viper.GetInt("depth")),
		watch.WithDelay(viper.GetDuration("delay")),
		watch.WithWorkers(viper.GetInt("workers")),
	)
	if err != nil {
		return err
	}

	log.Infof("Watching %v, writing %s files to %s", c.dirs, viper.GetString("format"), outputDir)
	return w.Run(ctx)
}

// outputName returns the path of the converted file for the warc file at path.
func outputName(path, dir, format string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, ".gz")
	name = strings.TrimSuffix(name, ".warc")
	return filepath.Join(dir, fmt.Sprintf("%s.%s", name, format))
}
