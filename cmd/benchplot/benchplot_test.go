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

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcrain/benchplot/scenario"
)

func benchLog(msPerBlock int) string {
	lines := []string{
		"go / 10 wrk / 1m0s", "",
		"TXs ≈ 60", "RPS ≈ 10.000", "RPC Errors  ≈ 0 / 0.000%",
		"TPS ≈ 4.000",
		fmt.Sprintf("DefaultMSPerBlock = %d", msPerBlock), "",
		"CPU ≈ 11.000%", "Mem ≈ 101.000MB", "",
		"MillisecondsFromStart, CPU, Mem",
		"500.000, 10.000%, 100.000MB",
		"1500.000, 12.000%, 102.000MB",
		"",
		"DeltaTime, TransactionsCount, TPS",
	}
	for i := 0; i < 5; i++ {
		lines = append(lines, fmt.Sprintf("%d, %d, %0.3f", msPerBlock, 4+i, float64(4+i)*1000/float64(msPerBlock)))
	}
	return strings.Join(lines, "\n") + "\n"
}

func testSetup(t *testing.T, msPerBlock ...int) (*scenario.Registry, string) {
	reg, err := scenario.New(
		scenario.Scenario{Name: "single 10 wrk", Series: []scenario.SeriesSpec{
			{File: "GoSingle_wrk_10.log", Label: "go", Color: "blueviolet"},
			{File: "SharpSingle_wrk_10.log", Label: "c#", Color: "green"}}},
		scenario.Scenario{Name: "4 nodes 10 wrk", Series: []scenario.SeriesSpec{
			{File: "Go4x1_wrk_10.log", Label: "go", Color: "blueviolet"}}})
	require.NoError(t, err)

	dir := t.TempDir() + string(filepath.Separator)
	for i, nxt := range reg.Files() {
		ms := msPerBlock[0]
		if i < len(msPerBlock) {
			ms = msPerBlock[i]
		}
		require.NoError(t, os.WriteFile(dir+nxt, []byte(benchLog(ms)), 0644))
	}
	return reg, dir
}

func TestMissingPath(t *testing.T) {
	out := &bytes.Buffer{}
	assert.Equal(t, 1, run(nil, out, scenario.Default()))
	assert.Equal(t, helpMessage+"\n", out.String())
}

func TestNotADirectory(t *testing.T) {
	reg, dir := testSetup(t, 1000)
	out := &bytes.Buffer{}
	path := dir + "GoSingle_wrk_10.log"
	assert.Equal(t, 1, run([]string{path}, out, reg))
	assert.Equal(t, path+" is not a directory.\n"+helpMessage+"\n", out.String())

	out.Reset()
	assert.Equal(t, 1, run([]string{dir + "missing"}, out, reg))
	assert.Contains(t, out.String(), "is not a directory.")
}

func TestBadFlag(t *testing.T) {
	out := &bytes.Buffer{}
	assert.Equal(t, 1, run([]string{"--nope", t.TempDir()}, out, scenario.Default()))
	assert.Contains(t, out.String(), helpMessage)
}

func TestRun(t *testing.T) {
	reg, dir := testSetup(t, 15000)
	img := filepath.Join(t.TempDir(), "img")
	tablePath := filepath.Join(t.TempDir(), "summary.tex")
	out := &bytes.Buffer{}

	assert.Equal(t, 0, run([]string{"-o", img, "--table", tablePath, dir}, out, reg))
	assert.Equal(t, "Images successfully saved to "+img+" folder.\n", out.String())

	entries, err := os.ReadDir(img)
	require.NoError(t, err)
	assert.Len(t, entries, 10)
	assert.FileExists(t, filepath.Join(img, "ms_per_block_4_nodes_10_wrk.png"))
	assert.FileExists(t, filepath.Join(img, "tps_single_10_wrk.png"))

	table, err := os.ReadFile(tablePath)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(table), "\\end{table}"))
}

func TestMismatch(t *testing.T) {
	reg, dir := testSetup(t, 15000, 15000, 16000)
	img := filepath.Join(t.TempDir(), "img")
	out := &bytes.Buffer{}

	assert.Equal(t, 1, run([]string{"--out", img, dir}, out, reg))
	assert.Contains(t, out.String(), "Error: file Go4x1_wrk_10.log has bad DefaultMSPerBlock value.")
	_, err := os.Stat(img)
	assert.True(t, os.IsNotExist(err))
}

func TestMissingLogPanics(t *testing.T) {
	reg, dir := testSetup(t, 15000)
	require.NoError(t, os.Remove(dir+"SharpSingle_wrk_10.log"))
	out := &bytes.Buffer{}
	assert.Panics(t, func() {
		run([]string{"--out", filepath.Join(t.TempDir(), "img"), dir}, out, reg)
	})
}
