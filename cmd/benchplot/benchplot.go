/*
github.com/tcrain/benchplot - Charts for blockchain node throughput benchmarks.
Copyright (C) 2020 The project authors - tcrain

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.

*/
/*
benchplot draws comparison charts from the logs of blockchain node throughput benchmarks.

Usage:

	benchplot [flags] <logs-path>

The logs path is joined to the log file names of each scenario as is,
so it should end with a path separator.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/tcrain/benchplot/config"
	"github.com/tcrain/benchplot/logging"
	"github.com/tcrain/benchplot/parse"
	"github.com/tcrain/benchplot/scenario"
)

const helpMessage = "Please, provide logs path. Example:\n\t$ benchplot ./logs/"

// usageError is returned for a missing or invalid logs path.
type usageError struct {
	msg string
}

func (ue usageError) Error() string {
	return ue.msg
}

func checkLogsPath(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return usageError{}
	}
	if info, err := os.Stat(args[0]); err != nil || !info.IsDir() {
		return usageError{msg: args[0] + " is not a directory."}
	}
	return nil
}

func newRootCmd(reg *scenario.Registry, stdout io.Writer) *cobra.Command {
	var (
		outPath   string
		tablePath string
		verbose   bool
	)
	cmd := &cobra.Command{
		Use:           "benchplot <logs-path>",
		Short:         "Draw charts from blockchain node benchmark logs",
		Args:          checkLogsPath,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if verbose {
				logging.SetLevel(config.LOGINFO)
			}
			var table io.Writer
			if tablePath != "" {
				var f *os.File
				if f, err = os.Create(tablePath); err != nil {
					return errors.WithStack(err)
				}
				defer func() {
					if closeErr := f.Close(); err == nil {
						err = closeErr
					}
				}()
				table = f
			}
			if err = parse.GenCharts(reg, args[0], outPath, table); err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Images successfully saved to %v folder.\n", outPath)
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stdout)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{msg: err.Error()}
	})
	cmd.Flags().StringVarP(&outPath, "out", "o", config.ImgFolder, "folder the charts are written to")
	cmd.Flags().StringVar(&tablePath, "table", "", "also write a LaTeX summary table per scenario to this file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log progress")
	return cmd
}

// run executes the command and returns the exit code.
// Errors other than bad arguments and mismatched logs panic.
func run(args []string, stdout io.Writer, reg *scenario.Registry) int {
	if args == nil {
		// cobra falls back to os.Args for nil
		args = []string{}
	}
	cmd := newRootCmd(reg, stdout)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		return 0
	}

	var ue usageError
	var me *parse.MismatchError
	switch {
	case errors.As(err, &ue):
		if ue.msg != "" {
			fmt.Fprintln(stdout, ue.msg)
		}
		fmt.Fprintln(stdout, helpMessage)
		return 1
	case errors.As(err, &me):
		fmt.Fprintf(stdout, "Error: file %v has bad DefaultMSPerBlock value. Please, check that all nodes "+
			"configurations has the same MillisecondPerBlock value.\n", me.File)
		return 1
	}
	logging.Error(err)
	panic(err)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, scenario.Default()))
}
