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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// testLog describes a benchmark log written in the harness layout.
type testLog struct {
	msPerBlock int
	avgTPS     float64
	resources  []ResourceSample
	blocks     []BlockSample
}

func newTestLog(msPerBlock int, avgTPS float64, nResources, nBlocks int) testLog {
	tl := testLog{msPerBlock: msPerBlock, avgTPS: avgTPS}
	for i := 0; i < nResources; i++ {
		tl.resources = append(tl.resources, ResourceSample{Seconds: float64(i) + 0.5,
			CPU: 10 + float64(i), MemMB: 100 + float64(2*i)})
	}
	for i := 0; i < nBlocks; i++ {
		tl.blocks = append(tl.blocks, BlockSample{DeltaMS: msPerBlock + 10*i, TxCount: 20 + i,
			TPS: float64(20+i) * 1000 / float64(msPerBlock+10*i)})
	}
	return tl
}

func (tl testLog) lines() []string {
	ret := []string{
		"go node / 10 wrk / 1m0s",
		"",
		"TXs ≈ 100",
		"RPS ≈ 50.000",
		"RPC Errors  ≈ 2 / 1.961%",
		fmt.Sprintf("TPS ≈ %0.3f", tl.avgTPS),
		fmt.Sprintf("DefaultMSPerBlock = %d", tl.msPerBlock),
		"",
		"CPU ≈ 40.000%",
		"Mem ≈ 120.000MB",
		"",
		"MillisecondsFromStart, CPU, Mem",
	}
	for _, nxt := range tl.resources {
		ret = append(ret, fmt.Sprintf("%0.3f, %0.3f%%, %0.3fMB", nxt.Seconds*1000, nxt.CPU, nxt.MemMB))
	}
	ret = append(ret, "", "DeltaTime, TransactionsCount, TPS")
	for _, nxt := range tl.blocks {
		ret = append(ret, fmt.Sprintf("%d, %d, %0.3f", nxt.DeltaMS, nxt.TxCount, nxt.TPS))
	}
	return ret
}

func (tl testLog) String() string {
	return strings.Join(tl.lines(), "\n") + "\n"
}

// writeLog writes content to dir/name.
func writeLog(t *testing.T, dir, name, content string) {
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

// logDir returns a temp folder path ending with a separator.
func logDir(t *testing.T) string {
	return t.TempDir() + string(filepath.Separator)
}
