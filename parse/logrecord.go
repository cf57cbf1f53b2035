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
	"github.com/tcrain/benchplot/utils"
)

// LogHeader is the summary the benchmark harness writes at the top of a log.
// AverageTPS and MSPerBlock are always present, the other values are filled
// when the harness wrote them.
type LogHeader struct {
	Title        string  // run description, first line of the log
	TxCount      int     // "TXs ≈ N"
	RPS          float64 // "RPS ≈ x"
	RPCErrors    int     // "RPC Errors ≈ N / x%"
	RPCErrorRate float64
	AverageTPS   float64 // "TPS ≈ x"
	MSPerBlock   int     // "DefaultMSPerBlock = N", the target block time
	AvgCPU       float64 // "CPU ≈ x%"
	AvgMemMB     float64 // "Mem ≈ xMB"
}

// ResourceSample is a cpu and memory measurement of the node containers.
type ResourceSample struct {
	Seconds float64 // since the start of the benchmark
	CPU     float64 // percent
	MemMB   float64
}

// BlockSample describes one block produced during the benchmark.
type BlockSample struct {
	DeltaMS int // milliseconds since the previous block
	TxCount int // transactions in the block
	TPS     float64
}

// LogRecord is the parsed content of one benchmark log.
type LogRecord struct {
	LogHeader
	FileName  string
	Resources []ResourceSample
	Blocks    []BlockSample
}

// Seconds returns the time of each resource sample.
func (lr *LogRecord) Seconds() []float64 {
	ret := make([]float64, len(lr.Resources))
	for i, nxt := range lr.Resources {
		ret[i] = nxt.Seconds
	}
	return ret
}

// CPU returns the cpu percent of each resource sample.
func (lr *LogRecord) CPU() []float64 {
	ret := make([]float64, len(lr.Resources))
	for i, nxt := range lr.Resources {
		ret[i] = nxt.CPU
	}
	return ret
}

// Mem returns the memory in MB of each resource sample.
func (lr *LogRecord) Mem() []float64 {
	ret := make([]float64, len(lr.Resources))
	for i, nxt := range lr.Resources {
		ret[i] = nxt.MemMB
	}
	return ret
}

// TPS returns the transactions per second of each block.
func (lr *LogRecord) TPS() []float64 {
	ret := make([]float64, len(lr.Blocks))
	for i, nxt := range lr.Blocks {
		ret[i] = nxt.TPS
	}
	return ret
}

// TxCounts returns the number of transactions in each block.
func (lr *LogRecord) TxCounts() []float64 {
	ret := make([]int, len(lr.Blocks))
	for i, nxt := range lr.Blocks {
		ret[i] = nxt.TxCount
	}
	return utils.IntsToFloats(ret)
}

// DeltaMS returns the time in milliseconds taken by each block.
func (lr *LogRecord) DeltaMS() []float64 {
	ret := make([]int, len(lr.Blocks))
	for i, nxt := range lr.Blocks {
		ret[i] = nxt.DeltaMS
	}
	return utils.IntsToFloats(ret)
}
