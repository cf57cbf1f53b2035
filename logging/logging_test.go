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

package logging

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tcrain/benchplot/config"
)

func TestLevels(t *testing.T) {
	buf := &bytes.Buffer{}
	SetOutput(buf)
	defer SetOutput(os.Stderr)
	defer SetLevel(config.LoggingFmtLevel)

	SetLevel(config.LOGERROR)
	Info("hidden info")
	Warningf("hidden %v", "warning")
	Errorf("shown %v", "error")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown error")
	assert.Contains(t, buf.String(), "ERR")

	buf.Reset()
	SetLevel(config.LOGINFO)
	Infof("loaded %v files", 3)
	Warning("odd line")
	assert.Contains(t, buf.String(), "loaded 3 files")
	assert.Contains(t, buf.String(), "odd line")
	assert.Equal(t, config.LOGINFO, Level())
}

func TestPrintIgnoresLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	SetOutput(buf)
	defer SetOutput(os.Stderr)

	SetLevel(config.LOGERROR)
	Printf("rendering %v", "tps")
	assert.Contains(t, buf.String(), "rendering tps")
}
