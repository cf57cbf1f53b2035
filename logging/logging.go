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
Basic logging functionality.
*/
package logging

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/tcrain/benchplot/config"
)

var (
	logger zerolog.Logger
	level  atomic.Int32
)

// setup the logger
func init() {
	level.Store(int32(config.LoggingFmtLevel))
	SetOutput(os.Stderr)
}

// SetOutput sends the log output to w.
func SetOutput(w io.Writer) {
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05.000", NoColor: true}
	logger = zerolog.New(out).With().Timestamp().
		CallerWithSkipFrameCount(zerolog.CallerSkipFrameCount + 2).Logger()
}

// SetLevel changes the most verbose level that will be output.
func SetLevel(lvl config.LogFmtLevel) {
	level.Store(int32(lvl))
}

// Level returns the current logging level.
func Level() config.LogFmtLevel {
	return config.LogFmtLevel(level.Load())
}

func enabled(lvl config.LogFmtLevel) bool {
	return Level() >= lvl
}

func output(ev *zerolog.Event, prefix, msg string) {
	switch config.LoggingType {
	case config.ZEROLOG:
		ev.Msg(msg)
	case config.FMT:
		fmt.Println(prefix + msg)
	default:
		panic("Invalid logging type")
	}
}

// Printf logs args accoring to format, independent of the level.
func Printf(format string, args ...interface{}) {
	output(logger.Log(), "", fmt.Sprintf(format, args...))
}

// Print logs args, independent of the level.
func Print(args ...interface{}) {
	output(logger.Log(), "", fmt.Sprint(args...))
}

// Errorf logs an error args using format.
func Errorf(format string, args ...interface{}) {
	if enabled(config.LOGERROR) {
		output(logger.Error(), "ERR: ", fmt.Sprintf(format, args...))
	}
}

// Error logs an error args.
func Error(args ...interface{}) {
	if enabled(config.LOGERROR) {
		output(logger.Error(), "ERR: ", fmt.Sprint(args...))
	}
}

// Warningf logs a warning args using format.
func Warningf(format string, args ...interface{}) {
	if enabled(config.LOGWARNING) {
		output(logger.Warn(), "WARN: ", fmt.Sprintf(format, args...))
	}
}

// Warning logs a warning args.
func Warning(args ...interface{}) {
	if enabled(config.LOGWARNING) {
		output(logger.Warn(), "WARN: ", fmt.Sprint(args...))
	}
}

// Infof logs an info message args using format.
func Infof(format string, args ...interface{}) {
	if enabled(config.LOGINFO) {
		output(logger.Info(), "INFO: ", fmt.Sprintf(format, args...))
	}
}

// Info logs an info message args.
func Info(args ...interface{}) {
	if enabled(config.LOGINFO) {
		output(logger.Info(), "INFO: ", fmt.Sprint(args...))
	}
}
