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

package parse

import (
	"fmt"

	"github.com/pkg/errors"
)

var ErrShortLog = errors.New("log file too short")
var ErrMalformedHeader = errors.New("malformed header line")
var ErrMalformedResource = errors.New("malformed resource sample line")
var ErrMalformedBlock = errors.New("malformed block sample line")
var ErrNoBlockSection = errors.New("no block sample section found")
var ErrMSPerBlockMismatch = errors.New("milliseconds per block mismatch")
var ErrSeriesCount = errors.New("series and log record counts differ")

// MismatchError is returned when a log declares a different milliseconds per block
// value than the first log of the run.
type MismatchError struct {
	File      string // file with the bad value
	FirstFile string // file the expected value was taken from
	Expected  int
	Got       int
}

func (me *MismatchError) Error() string {
	return fmt.Sprintf("file %v has bad DefaultMSPerBlock value %v, %v has %v",
		me.File, me.Got, me.FirstFile, me.Expected)
}

func (me *MismatchError) Unwrap() error {
	return ErrMSPerBlockMismatch
}

// lineError adds the file and 1 based line number to err.
func lineError(err error, fileName string, lineIdx int, line string) error {
	return errors.Wrapf(err, "%v:%v: %q", fileName, lineIdx+1, line)
}
